package handler

import (
	"net/http"
	"strings"

	"mini-erp/internal/model"
	"mini-erp/internal/service"

	"github.com/rs/zerolog"
)

// CouponHandler handles coupon HTTP requests.
type CouponHandler struct {
	couponSvc service.CouponService
	logger    zerolog.Logger
}

// NewCouponHandler creates a new coupon handler.
func NewCouponHandler(couponSvc service.CouponService, logger zerolog.Logger) *CouponHandler {
	return &CouponHandler{
		couponSvc: couponSvc,
		logger:    logger.With().Str("handler", "coupon").Logger(),
	}
}

// List handles GET /api/coupons.
func (h *CouponHandler) List(w http.ResponseWriter, r *http.Request) {
	coupons, err := h.couponSvc.GetAll(r.Context())
	if err != nil {
		writeDomainError(w, err, h.logger)
		return
	}
	writeJSON(w, http.StatusOK, coupons)
}

// Create handles POST /api/coupons. Codes are upper-cased here at the
// boundary; the registry stores them as received.
func (h *CouponHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req model.CouponRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", h.logger)
		return
	}
	req.Code = strings.ToUpper(strings.TrimSpace(req.Code))

	coupon, err := h.couponSvc.Create(r.Context(), &req)
	if err != nil {
		writeDomainError(w, err, h.logger)
		return
	}
	writeJSON(w, http.StatusCreated, coupon)
}
