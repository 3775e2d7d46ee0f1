package address

import (
	"encoding/json"
	"fmt"
	"net/http"
	"regexp"
	"time"

	"lumiere/config"
	"lumiere/models"
)

var postalCodeRe = regexp.MustCompile(`^\d{5}-?\d{3}$`)

// Lookup resolves a postal code to street/city/state through the configured
// ViaCEP-compatible API. Best effort: failures surface as errors the handler
// maps to 404/502, never as a fatal condition.
type Lookup interface {
	Resolve(postalCode string) (*models.Address, error)
}

// HTTPLookup is the production implementation.
type HTTPLookup struct {
	BaseURL string
	Client  *http.Client
}

// NewHTTPLookup builds a lookup client against the configured base URL.
func NewHTTPLookup() *HTTPLookup {
	return &HTTPLookup{
		BaseURL: config.AppConfig.PostalLookupBaseURL,
		Client:  &http.Client{Timeout: 5 * time.Second},
	}
}

// NotFoundError signals a syntactically valid but unknown postal code.
type NotFoundError struct {
	PostalCode string
}

func (e NotFoundError) Error() string {
	return "no address found for postal code " + e.PostalCode
}

type lookupResponse struct {
	CEP      string `json:"cep"`
	Street   string `json:"logradouro"`
	District string `json:"bairro"`
	City     string `json:"localidade"`
	State    string `json:"uf"`
	Erro     bool   `json:"erro"`
}

// Resolve fetches the address for a postal code.
func (l *HTTPLookup) Resolve(postalCode string) (*models.Address, error) {
	if !postalCodeRe.MatchString(postalCode) {
		return nil, fmt.Errorf("invalid postal code %q", postalCode)
	}

	url := fmt.Sprintf("%s/%s/json/", l.BaseURL, postalCode)
	resp, err := l.Client.Get(url)
	if err != nil {
		return nil, fmt.Errorf("postal lookup request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("postal lookup returned status %d", resp.StatusCode)
	}

	var body lookupResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("decoding postal lookup response failed: %w", err)
	}
	if body.Erro {
		return nil, NotFoundError{PostalCode: postalCode}
	}

	return &models.Address{
		PostalCode: body.CEP,
		Street:     body.Street,
		District:   body.District,
		City:       body.City,
		State:      body.State,
	}, nil
}
