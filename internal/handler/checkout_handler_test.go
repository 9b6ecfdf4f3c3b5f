package handler

import (
	"encoding/json"
	"net/http"
	"testing"

	"mini-erp/internal/model"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCheckoutHandler_LookupAddress(t *testing.T) {
	logger := zerolog.Nop()

	t.Run("Resolved", func(t *testing.T) {
		mockCheckout := new(MockCheckoutService)
		mockCheckout.On("LookupAddress", mock.Anything, "01310100").
			Return(&model.Address{CEP: "01310-100", City: "São Paulo", State: "SP"}, nil)

		h := NewCheckoutHandler(mockCheckout, logger)

		rec := serve(t, http.MethodGet, "/api/cep/{code}", "/api/cep/01310100", "", h.LookupAddress)
		assert.Equal(t, http.StatusOK, rec.Code)

		var address model.Address
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &address))
		assert.Equal(t, "São Paulo", address.City)
	})

	t.Run("Unknown code maps to 404", func(t *testing.T) {
		mockCheckout := new(MockCheckoutService)
		mockCheckout.On("LookupAddress", mock.Anything, "99999999").
			Return(nil, model.ErrLookupNotFound)

		h := NewCheckoutHandler(mockCheckout, logger)

		rec := serve(t, http.MethodGet, "/api/cep/{code}", "/api/cep/99999999", "", h.LookupAddress)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("Upstream failure maps to 502", func(t *testing.T) {
		mockCheckout := new(MockCheckoutService)
		mockCheckout.On("LookupAddress", mock.Anything, "01310100").
			Return(nil, model.ErrLookupFailed)

		h := NewCheckoutHandler(mockCheckout, logger)

		rec := serve(t, http.MethodGet, "/api/cep/{code}", "/api/cep/01310100", "", h.LookupAddress)
		assert.Equal(t, http.StatusBadGateway, rec.Code)
	})
}

func TestCheckoutHandler_PlaceOrder(t *testing.T) {
	logger := zerolog.Nop()

	body := `{
		"customerInfo": {
			"name": "Maria Silva",
			"email": "maria@example.com",
			"phone": "11999990000",
			"address": {
				"cep": "01310100",
				"street": "Avenida Paulista",
				"number": "1000",
				"neighborhood": "Bela Vista",
				"city": "São Paulo",
				"state": "SP"
			}
		}
	}`

	t.Run("Created", func(t *testing.T) {
		mockCheckout := new(MockCheckoutService)
		mockCheckout.On("PlaceOrder", mock.Anything, mock.AnythingOfType("*model.CheckoutRequest")).
			Return(&model.Order{ID: "o1", Status: model.StatusPending, Total: 115}, nil)

		h := NewCheckoutHandler(mockCheckout, logger)

		rec := serve(t, http.MethodPost, "/api/checkout", "/api/checkout", body, h.PlaceOrder)
		assert.Equal(t, http.StatusCreated, rec.Code)

		var order model.Order
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &order))
		assert.Equal(t, "o1", order.ID)
		assert.Equal(t, model.StatusPending, order.Status)
	})

	t.Run("Empty cart maps to 400", func(t *testing.T) {
		mockCheckout := new(MockCheckoutService)
		mockCheckout.On("PlaceOrder", mock.Anything, mock.AnythingOfType("*model.CheckoutRequest")).
			Return(nil, model.NewValidationError("Cart is empty"))

		h := NewCheckoutHandler(mockCheckout, logger)

		rec := serve(t, http.MethodPost, "/api/checkout", "/api/checkout", body, h.PlaceOrder)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("Out of stock maps to 409", func(t *testing.T) {
		mockCheckout := new(MockCheckoutService)
		mockCheckout.On("PlaceOrder", mock.Anything, mock.AnythingOfType("*model.CheckoutRequest")).
			Return(nil, model.ErrOutOfStock)

		h := NewCheckoutHandler(mockCheckout, logger)

		rec := serve(t, http.MethodPost, "/api/checkout", "/api/checkout", body, h.PlaceOrder)
		assert.Equal(t, http.StatusConflict, rec.Code)
	})

	t.Run("Invalid body", func(t *testing.T) {
		h := NewCheckoutHandler(new(MockCheckoutService), logger)

		rec := serve(t, http.MethodPost, "/api/checkout", "/api/checkout", `{bad`, h.PlaceOrder)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
