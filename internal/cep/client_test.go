package cep

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"mini-erp/internal/config"
	"mini-erp/internal/model"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	return NewClient(config.CEPConfig{
		BaseURL: server.URL,
		Timeout: 2 * time.Second,
	}, zerolog.Nop())
}

func TestClient_Lookup_Success(t *testing.T) {
	ctx := context.Background()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/ws/01310100/json/", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"cep": "01310-100",
			"logradouro": "Avenida Paulista",
			"complemento": "de 612 a 1510 - lado par",
			"bairro": "Bela Vista",
			"localidade": "São Paulo",
			"uf": "SP"
		}`))
	})

	address, err := client.Lookup(ctx, "01310100")
	require.NoError(t, err)
	require.NotNil(t, address)
	assert.Equal(t, "01310-100", address.CEP)
	assert.Equal(t, "Avenida Paulista", address.Street)
	assert.Equal(t, "Bela Vista", address.Neighborhood)
	assert.Equal(t, "São Paulo", address.City)
	assert.Equal(t, "SP", address.State)
}

func TestClient_Lookup_StripsFormatting(t *testing.T) {
	ctx := context.Background()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/ws/01310100/json/", r.URL.Path)
		w.Write([]byte(`{"cep": "01310-100", "localidade": "São Paulo", "uf": "SP"}`))
	})

	_, err := client.Lookup(ctx, "01310-100")
	assert.NoError(t, err)
}

func TestClient_Lookup_NotFound(t *testing.T) {
	ctx := context.Background()

	// ViaCEP answers 200 with an error flag for unknown codes.
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"erro": true}`))
	})

	address, err := client.Lookup(ctx, "99999999")
	assert.ErrorIs(t, err, model.ErrLookupNotFound)
	assert.Nil(t, address)
}

func TestClient_Lookup_ServerError(t *testing.T) {
	ctx := context.Background()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	_, err := client.Lookup(ctx, "01310100")
	assert.ErrorIs(t, err, model.ErrLookupFailed)
}

func TestClient_Lookup_MalformedBody(t *testing.T) {
	ctx := context.Background()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<html>not json</html>`))
	})

	_, err := client.Lookup(ctx, "01310100")
	assert.ErrorIs(t, err, model.ErrLookupFailed)
}

func TestClient_Lookup_InvalidCode(t *testing.T) {
	ctx := context.Background()

	requested := false
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		requested = true
	})

	tests := []struct {
		name string
		code string
	}{
		{"Too short", "1234"},
		{"Too long", "123456789"},
		{"Letters only", "abcdefgh"},
		{"Empty", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := client.Lookup(ctx, tt.code)
			require.Error(t, err)

			var domainErr *model.DomainError
			require.ErrorAs(t, err, &domainErr)
			assert.Equal(t, model.ErrCodeValidation, domainErr.Code)
		})
	}

	assert.False(t, requested, "malformed codes must not reach the service")
}

func TestDigitsOnly(t *testing.T) {
	assert.Equal(t, "01310100", digitsOnly("01310-100"))
	assert.Equal(t, "12345678", digitsOnly(" 12.345-678 "))
	assert.Equal(t, "", digitsOnly("abc"))
}
