package handler

import (
	"net/http"

	"mini-erp/internal/model"
	"mini-erp/internal/service"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
)

// CartHandler handles cart HTTP requests.
type CartHandler struct {
	cartSvc   service.CartService
	couponSvc service.CouponService
	logger    zerolog.Logger
}

// NewCartHandler creates a new cart handler.
func NewCartHandler(cartSvc service.CartService, couponSvc service.CouponService, logger zerolog.Logger) *CartHandler {
	return &CartHandler{
		cartSvc:   cartSvc,
		couponSvc: couponSvc,
		logger:    logger.With().Str("handler", "cart").Logger(),
	}
}

// List handles GET /api/cart.
func (h *CartHandler) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.cartSvc.Items(r.Context())
	if err != nil {
		writeDomainError(w, err, h.logger)
		return
	}
	writeJSON(w, http.StatusOK, items)
}

// Add handles POST /api/cart/items.
func (h *CartHandler) Add(w http.ResponseWriter, r *http.Request) {
	var req model.CartAddRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", h.logger)
		return
	}

	items, err := h.cartSvc.Add(r.Context(), &req)
	if err != nil {
		writeDomainError(w, err, h.logger)
		return
	}
	writeJSON(w, http.StatusOK, items)
}

// SetQuantity handles PUT /api/cart/items/{productID}/{variationID}.
func (h *CartHandler) SetQuantity(w http.ResponseWriter, r *http.Request) {
	var req model.CartQuantityRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", h.logger)
		return
	}

	items, err := h.cartSvc.SetQuantity(
		r.Context(),
		chi.URLParam(r, "productID"),
		chi.URLParam(r, "variationID"),
		req.Quantity,
	)
	if err != nil {
		writeDomainError(w, err, h.logger)
		return
	}
	writeJSON(w, http.StatusOK, items)
}

// Remove handles DELETE /api/cart/items/{productID}/{variationID}.
func (h *CartHandler) Remove(w http.ResponseWriter, r *http.Request) {
	items, err := h.cartSvc.Remove(
		r.Context(),
		chi.URLParam(r, "productID"),
		chi.URLParam(r, "variationID"),
	)
	if err != nil {
		writeDomainError(w, err, h.logger)
		return
	}
	writeJSON(w, http.StatusOK, items)
}

// Clear handles DELETE /api/cart.
func (h *CartHandler) Clear(w http.ResponseWriter, r *http.Request) {
	if err := h.cartSvc.Clear(r.Context()); err != nil {
		writeDomainError(w, err, h.logger)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Totals handles GET /api/cart/totals.
func (h *CartHandler) Totals(w http.ResponseWriter, r *http.Request) {
	totals, err := h.cartSvc.Totals(r.Context())
	if err != nil {
		writeDomainError(w, err, h.logger)
		return
	}
	writeJSON(w, http.StatusOK, totals)
}

// ApplyCoupon handles POST /api/cart/coupon: it previews a coupon
// against the current cart without persisting anything.
func (h *CartHandler) ApplyCoupon(w http.ResponseWriter, r *http.Request) {
	var req model.CouponApplyRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", h.logger)
		return
	}
	if req.Code == "" {
		writeError(w, http.StatusBadRequest, "coupon code is required", h.logger)
		return
	}

	totals, err := h.cartSvc.Totals(r.Context())
	if err != nil {
		writeDomainError(w, err, h.logger)
		return
	}

	coupon, err := h.couponSvc.Validate(r.Context(), req.Code, totals.Subtotal)
	if err != nil {
		writeDomainError(w, err, h.logger)
		return
	}

	discount := h.couponSvc.Discount(coupon, totals.Subtotal)
	writeJSON(w, http.StatusOK, model.CouponApplyResponse{
		Code:     coupon.Code,
		Discount: discount,
		Total:    totals.Total - discount,
	})
}
