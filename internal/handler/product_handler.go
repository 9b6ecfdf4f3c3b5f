package handler

import (
	"net/http"

	"mini-erp/internal/model"
	"mini-erp/internal/service"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
)

// ProductHandler handles catalogue and stock HTTP requests.
type ProductHandler struct {
	productSvc service.ProductService
	stockSvc   service.StockService
	logger     zerolog.Logger
}

// NewProductHandler creates a new product handler.
func NewProductHandler(productSvc service.ProductService, stockSvc service.StockService, logger zerolog.Logger) *ProductHandler {
	return &ProductHandler{
		productSvc: productSvc,
		stockSvc:   stockSvc,
		logger:     logger.With().Str("handler", "product").Logger(),
	}
}

// List handles GET /api/products.
func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	products, err := h.productSvc.GetAll(r.Context())
	if err != nil {
		writeDomainError(w, err, h.logger)
		return
	}
	writeJSON(w, http.StatusOK, products)
}

// Create handles POST /api/products.
func (h *ProductHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req model.ProductRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", h.logger)
		return
	}

	product, err := h.productSvc.Create(r.Context(), &req)
	if err != nil {
		writeDomainError(w, err, h.logger)
		return
	}
	writeJSON(w, http.StatusCreated, product)
}

// Get handles GET /api/products/{id}.
func (h *ProductHandler) Get(w http.ResponseWriter, r *http.Request) {
	product, err := h.productSvc.GetByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeDomainError(w, err, h.logger)
		return
	}
	writeJSON(w, http.StatusOK, product)
}

// Update handles PUT /api/products/{id}.
func (h *ProductHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req model.ProductUpdateRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", h.logger)
		return
	}

	product, err := h.productSvc.Update(r.Context(), chi.URLParam(r, "id"), &req)
	if err != nil {
		writeDomainError(w, err, h.logger)
		return
	}
	writeJSON(w, http.StatusOK, product)
}

// UpdateStock handles PUT /api/products/{id}/stock, the administrative
// quantity override.
func (h *ProductHandler) UpdateStock(w http.ResponseWriter, r *http.Request) {
	var req model.StockUpdateRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", h.logger)
		return
	}
	if req.VariationID == "" {
		writeError(w, http.StatusBadRequest, "variation ID is required", h.logger)
		return
	}

	productID := chi.URLParam(r, "id")
	if err := h.stockSvc.SetQuantity(r.Context(), productID, req.VariationID, req.Quantity); err != nil {
		writeDomainError(w, err, h.logger)
		return
	}

	entry, err := h.stockSvc.Get(r.Context(), productID, req.VariationID)
	if err != nil {
		writeDomainError(w, err, h.logger)
		return
	}
	writeJSON(w, http.StatusOK, entry)
}

// ListStock handles GET /api/stock.
func (h *ProductHandler) ListStock(w http.ResponseWriter, r *http.Request) {
	entries, err := h.stockSvc.GetAll(r.Context())
	if err != nil {
		writeDomainError(w, err, h.logger)
		return
	}
	writeJSON(w, http.StatusOK, entries)
}
