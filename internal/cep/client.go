// Package cep looks up Brazilian postal addresses through the ViaCEP
// service. The lookup is best-effort: a miss and a transport failure
// both map onto the domain error taxonomy.
package cep

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"mini-erp/internal/config"
	"mini-erp/internal/model"

	"github.com/rs/zerolog"
)

// viaCEPResponse is the wire format of a ViaCEP lookup.
type viaCEPResponse struct {
	CEP          string `json:"cep"`
	Street       string `json:"logradouro"`
	Complement   string `json:"complemento"`
	Neighborhood string `json:"bairro"`
	City         string `json:"localidade"`
	State        string `json:"uf"`
	Error        bool   `json:"erro"`
}

// Client queries the postal-code lookup service.
type Client struct {
	httpClient *http.Client
	baseURL    string
	logger     zerolog.Logger
}

// NewClient creates a new lookup client.
func NewClient(cfg config.CEPConfig, logger zerolog.Logger) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: cfg.Timeout},
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		logger:     logger.With().Str("component", "cep-client").Logger(),
	}
}

// Lookup resolves an 8-digit postal code. Malformed input is rejected
// without issuing the request. A code the service does not know returns
// model.ErrLookupNotFound; timeouts and transport failures return
// model.ErrLookupFailed.
func (c *Client) Lookup(ctx context.Context, code string) (*model.Address, error) {
	clean := digitsOnly(code)
	if len(clean) != 8 {
		return nil, model.NewValidationError("Postal code must have 8 digits")
	}

	url := fmt.Sprintf("%s/ws/%s/json/", c.baseURL, clean)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build lookup request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Warn().Err(err).Str("cep", clean).Msg("postal code lookup failed")
		return nil, model.ErrLookupFailed
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.logger.Warn().Int("status", resp.StatusCode).Str("cep", clean).Msg("postal code lookup returned non-OK status")
		return nil, model.ErrLookupFailed
	}

	var body viaCEPResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		c.logger.Warn().Err(err).Str("cep", clean).Msg("failed to decode lookup response")
		return nil, model.ErrLookupFailed
	}

	if body.Error {
		c.logger.Debug().Str("cep", clean).Msg("postal code not found")
		return nil, model.ErrLookupNotFound
	}

	return &model.Address{
		CEP:          body.CEP,
		Street:       body.Street,
		Complement:   body.Complement,
		Neighborhood: body.Neighborhood,
		City:         body.City,
		State:        body.State,
	}, nil
}

// digitsOnly strips everything that is not a decimal digit.
func digitsOnly(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
