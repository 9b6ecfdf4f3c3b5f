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

func TestProductHandler_Create(t *testing.T) {
	logger := zerolog.Nop()

	t.Run("Created", func(t *testing.T) {
		mockProduct := new(MockProductService)
		mockStock := new(MockStockService)
		mockProduct.On("Create", mock.Anything, mock.AnythingOfType("*model.ProductRequest")).
			Return(&model.Product{ID: "p1", Name: "Camiseta", Price: 59.90}, nil)

		h := NewProductHandler(mockProduct, mockStock, logger)

		rec := serve(t, http.MethodPost, "/api/products", "/api/products",
			`{"name":"Camiseta","price":59.90,"variations":[{"name":"P","stock":5}]}`, h.Create)

		assert.Equal(t, http.StatusCreated, rec.Code)

		var product model.Product
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &product))
		assert.Equal(t, "p1", product.ID)
	})

	t.Run("Invalid body", func(t *testing.T) {
		h := NewProductHandler(new(MockProductService), new(MockStockService), logger)

		rec := serve(t, http.MethodPost, "/api/products", "/api/products", `{not json`, h.Create)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("Validation error surfaces as 400", func(t *testing.T) {
		mockProduct := new(MockProductService)
		mockProduct.On("Create", mock.Anything, mock.AnythingOfType("*model.ProductRequest")).
			Return(nil, model.NewValidationError("Product name is required"))

		h := NewProductHandler(mockProduct, new(MockStockService), logger)

		rec := serve(t, http.MethodPost, "/api/products", "/api/products",
			`{"price":10,"variations":[{"name":"P"}]}`, h.Create)

		assert.Equal(t, http.StatusBadRequest, rec.Code)

		var resp model.ErrorResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, model.ErrCodeValidation, resp.Error)
	})
}

func TestProductHandler_Get(t *testing.T) {
	logger := zerolog.Nop()

	t.Run("Found", func(t *testing.T) {
		mockProduct := new(MockProductService)
		mockProduct.On("GetByID", mock.Anything, "p1").
			Return(&model.Product{ID: "p1", Name: "Camiseta"}, nil)

		h := NewProductHandler(mockProduct, new(MockStockService), logger)

		rec := serve(t, http.MethodGet, "/api/products/{id}", "/api/products/p1", "", h.Get)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("Not found", func(t *testing.T) {
		mockProduct := new(MockProductService)
		mockProduct.On("GetByID", mock.Anything, "missing").
			Return(nil, model.ErrProductNotFound)

		h := NewProductHandler(mockProduct, new(MockStockService), logger)

		rec := serve(t, http.MethodGet, "/api/products/{id}", "/api/products/missing", "", h.Get)
		assert.Equal(t, http.StatusNotFound, rec.Code)

		var resp model.ErrorResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, model.ErrCodeProductNotFound, resp.Error)
	})
}

func TestProductHandler_UpdateStock(t *testing.T) {
	logger := zerolog.Nop()

	t.Run("Override returns the refreshed entry", func(t *testing.T) {
		mockStock := new(MockStockService)
		mockStock.On("SetQuantity", mock.Anything, "p1", "v1", 10).Return(nil)
		mockStock.On("Get", mock.Anything, "p1", "v1").
			Return(&model.Stock{ProductID: "p1", VariationID: "v1", Quantity: 10, Available: 10}, nil)

		h := NewProductHandler(new(MockProductService), mockStock, logger)

		rec := serve(t, http.MethodPut, "/api/products/{id}/stock", "/api/products/p1/stock",
			`{"variationId":"v1","quantity":10}`, h.UpdateStock)

		assert.Equal(t, http.StatusOK, rec.Code)

		var entry model.Stock
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &entry))
		assert.Equal(t, 10, entry.Available)
	})

	t.Run("Missing variation ID", func(t *testing.T) {
		h := NewProductHandler(new(MockProductService), new(MockStockService), logger)

		rec := serve(t, http.MethodPut, "/api/products/{id}/stock", "/api/products/p1/stock",
			`{"quantity":10}`, h.UpdateStock)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("Unknown pair", func(t *testing.T) {
		mockStock := new(MockStockService)
		mockStock.On("SetQuantity", mock.Anything, "p1", "v9", 10).Return(model.ErrStockNotFound)

		h := NewProductHandler(new(MockProductService), mockStock, logger)

		rec := serve(t, http.MethodPut, "/api/products/{id}/stock", "/api/products/p1/stock",
			`{"variationId":"v9","quantity":10}`, h.UpdateStock)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestProductHandler_ListStock(t *testing.T) {
	logger := zerolog.Nop()

	mockStock := new(MockStockService)
	mockStock.On("GetAll", mock.Anything).Return([]model.Stock{
		{ProductID: "p1", VariationID: "v1", Quantity: 5, Available: 5},
	}, nil)

	h := NewProductHandler(new(MockProductService), mockStock, logger)

	rec := serve(t, http.MethodGet, "/api/stock", "/api/stock", "", h.ListStock)
	assert.Equal(t, http.StatusOK, rec.Code)

	var entries []model.Stock
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &entries))
	assert.Len(t, entries, 1)
}
