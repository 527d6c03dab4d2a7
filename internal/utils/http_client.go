package utils

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/MKhiriev/billiard-pos/models"
	"github.com/go-resty/resty/v2"
)

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly and adds
// typed calls against the billiard-pos API.
//
// Example usage:
//
//	client := utils.NewHTTPClient("http://localhost:3000", 10*time.Second)
//	health, err := client.Health(ctx)
type HTTPClient struct {
	*resty.Client
}

// APIError is a non-2xx answer of the API decoded from the error envelope.
type APIError struct {
	StatusCode int
	Envelope   models.ErrorEnvelope
}

func (e *APIError) Error() string {
	if e.Envelope.RequestID != nil {
		return fmt.Sprintf("api error %d: %s (request %s)", e.StatusCode, e.Envelope.Message, *e.Envelope.RequestID)
	}
	return fmt.Sprintf("api error %d: %s", e.StatusCode, e.Envelope.Message)
}

// NewHTTPClient creates an HTTPClient for the API served at baseURL.
//
// Each call returns an independent client instance with its own
// configuration, connection pool, and state.
func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetHeader("Accept", "application/json")
	return &HTTPClient{Client: client}
}

// WithToken returns the client with a bearer credential attached to every
// request.
func (c *HTTPClient) WithToken(token string) *HTTPClient {
	c.SetAuthToken(token)
	return c
}

// Health calls GET /api/v1/health.
func (c *HTTPClient) Health(ctx context.Context) (models.HealthResponse, error) {
	var health models.HealthResponse
	err := c.do(c.R().SetContext(ctx), resty.MethodGet, "/api/v1/health", &health)
	return health, err
}

// Login calls POST /api/v1/auth/login.
func (c *HTTPClient) Login(ctx context.Context, credentials models.Credentials) (models.LoginResponse, error) {
	var login models.LoginResponse
	req := c.R().SetContext(ctx).SetBody(credentials)
	err := c.do(req, resty.MethodPost, "/api/v1/auth/login", &login)
	return login, err
}

// ListProducts calls GET /api/v1/products with the given query parameters.
func (c *HTTPClient) ListProducts(ctx context.Context, query map[string]string) (models.ProductPage, error) {
	var page models.ProductPage
	req := c.R().SetContext(ctx).SetQueryParams(query)
	err := c.do(req, resty.MethodGet, "/api/v1/products", &page)
	return page, err
}

// do executes req and decodes the "data" member of the success envelope
// into out. Non-2xx answers are returned as *APIError.
func (c *HTTPClient) do(req *resty.Request, method, url string, out any) error {
	resp, err := req.Execute(method, url)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, url, err)
	}

	if resp.IsError() {
		apiErr := &APIError{StatusCode: resp.StatusCode()}
		if err = json.Unmarshal(resp.Body(), &apiErr.Envelope); err != nil {
			apiErr.Envelope.Message = resp.Status()
		}
		return apiErr
	}

	var envelope struct {
		Data json.RawMessage `json:"data"`
	}
	if err = json.Unmarshal(resp.Body(), &envelope); err != nil {
		return fmt.Errorf("decode %s %s response: %w", method, url, err)
	}
	if out == nil || len(envelope.Data) == 0 {
		return nil
	}
	if err = json.Unmarshal(envelope.Data, out); err != nil {
		return fmt.Errorf("decode %s %s data: %w", method, url, err)
	}
	return nil
}
