package handler

import (
	"net/http"

	"mini-erp/internal/model"
	"mini-erp/internal/service"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
)

// CheckoutHandler handles the checkout flow HTTP requests.
type CheckoutHandler struct {
	checkoutSvc service.CheckoutService
	logger      zerolog.Logger
}

// NewCheckoutHandler creates a new checkout handler.
func NewCheckoutHandler(checkoutSvc service.CheckoutService, logger zerolog.Logger) *CheckoutHandler {
	return &CheckoutHandler{
		checkoutSvc: checkoutSvc,
		logger:      logger.With().Str("handler", "checkout").Logger(),
	}
}

// LookupAddress handles GET /api/cep/{code}, the address step of the
// checkout flow.
func (h *CheckoutHandler) LookupAddress(w http.ResponseWriter, r *http.Request) {
	address, err := h.checkoutSvc.LookupAddress(r.Context(), chi.URLParam(r, "code"))
	if err != nil {
		writeDomainError(w, err, h.logger)
		return
	}
	writeJSON(w, http.StatusOK, address)
}

// PlaceOrder handles POST /api/checkout.
func (h *CheckoutHandler) PlaceOrder(w http.ResponseWriter, r *http.Request) {
	var req model.CheckoutRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", h.logger)
		return
	}

	order, err := h.checkoutSvc.PlaceOrder(r.Context(), &req)
	if err != nil {
		// The order may exist even when the final cart clear failed;
		// surface the failure rather than pretending it did not happen.
		writeDomainError(w, err, h.logger)
		return
	}
	writeJSON(w, http.StatusCreated, order)
}
