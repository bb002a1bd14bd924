package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"time"

	"platerra/internal/registry"
	"platerra/internal/registry/metrics"
	"platerra/internal/registry/models"
	id "platerra/pkg/domain"
)

const source = "runt-http"

// HTTPClient implements registry.Lookup by calling an external HTTP registry
// service.
type HTTPClient struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	metrics    *metrics.Metrics
}

var _ registry.Lookup = (*HTTPClient)(nil)

// Option configures the HTTPClient.
type Option func(*HTTPClient)

// WithHTTPClient sets a custom HTTP client (for testing).
func WithHTTPClient(client *http.Client) Option {
	return func(c *HTTPClient) {
		c.httpClient = client
	}
}

// WithMetrics enables lookup instrumentation. Nil disables it.
func WithMetrics(m *metrics.Metrics) Option {
	return func(c *HTTPClient) {
		c.metrics = m
	}
}

// New creates a new HTTP-based registry client.
func New(baseURL, apiKey string, timeout time.Duration, opts ...Option) *HTTPClient {
	c := &HTTPClient{
		baseURL: baseURL,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// recordResponse is the wire shape returned by the registry service.
type recordResponse struct {
	Plate                     string `json:"plate"`
	OwnerDocumentType         string `json:"owner_document_type"`
	OwnerDocumentNumber       string `json:"owner_document_number"`
	OwnerFullName             string `json:"owner_full_name"`
	VehicleBrand              string `json:"vehicle_brand"`
	VehicleModel              string `json:"vehicle_model"`
	VehicleYear               int    `json:"vehicle_year"`
	VehicleColor              string `json:"vehicle_color"`
	VehicleTypeLabel          string `json:"vehicle_type_label"`
	SOATExpiry                string `json:"soat_expiry"`
	TechnicalInspectionExpiry string `json:"technical_inspection_expiry"`
}

// Find performs a registry lookup by canonical plate.
func (c *HTTPClient) Find(ctx context.Context, plate string) (*models.Record, error) {
	start := time.Now()
	record, err := c.lookup(ctx, plate)
	if c.metrics != nil {
		c.metrics.ObserveLookupDuration(time.Since(start).Seconds())
		switch {
		case err == nil:
			c.metrics.RecordLookup("found")
		case errors.Is(err, registry.ErrNotFound):
			c.metrics.RecordLookup("not_found")
		default:
			c.metrics.RecordLookup("error")
		}
	}
	return record, err
}

func (c *HTTPClient) lookup(ctx context.Context, plate string) (*models.Record, error) {
	lookupURL := fmt.Sprintf("%s/api/v1/vehicles/%s", c.baseURL, url.PathEscape(plate))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, lookupURL, nil)
	if err != nil {
		return nil, registry.NewLookupError(registry.ErrorInternal, source, "failed to create request", err)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-API-Key", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		// A caller-context deadline and an http.Client.Timeout expiry are both
		// timeouts; the latter surfaces as a url.Error whose Timeout() is true.
		var netErr net.Error
		if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &netErr) && netErr.Timeout()) {
			return nil, registry.NewLookupError(registry.ErrorTimeout, source, "request timeout", err)
		}
		return nil, registry.NewLookupError(registry.ErrorOutage, source, "failed to execute request", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, registry.NewLookupError(registry.ErrorInternal, source, "failed to read response body", err)
	}

	switch resp.StatusCode {
	case http.StatusOK:
		// fallthrough to parsing
	case http.StatusNotFound:
		return nil, registry.ErrNotFound
	case http.StatusUnauthorized, http.StatusForbidden:
		return nil, registry.NewLookupError(registry.ErrorAuthentication, source, "authentication failed", nil)
	case http.StatusTooManyRequests:
		return nil, registry.NewLookupError(registry.ErrorRateLimited, source, "rate limited", nil)
	case http.StatusBadRequest:
		return nil, registry.NewLookupError(registry.ErrorBadData, source, "registry rejected plate", nil)
	default:
		if resp.StatusCode >= 500 {
			return nil, registry.NewLookupError(registry.ErrorOutage, source,
				fmt.Sprintf("registry unavailable (status %d)", resp.StatusCode), nil)
		}
		return nil, registry.NewLookupError(registry.ErrorInternal, source,
			fmt.Sprintf("unexpected status %d", resp.StatusCode), nil)
	}

	var wire recordResponse
	if err := json.Unmarshal(body, &wire); err != nil {
		return nil, registry.NewLookupError(registry.ErrorBadData, source, "failed to unmarshal record", err)
	}

	return &models.Record{
		Plate:                     wire.Plate,
		OwnerDocumentType:         id.DocumentType(wire.OwnerDocumentType),
		OwnerDocumentNumber:       wire.OwnerDocumentNumber,
		OwnerFullName:             wire.OwnerFullName,
		VehicleBrand:              wire.VehicleBrand,
		VehicleModel:              wire.VehicleModel,
		VehicleYear:               wire.VehicleYear,
		VehicleColor:              wire.VehicleColor,
		VehicleTypeLabel:          wire.VehicleTypeLabel,
		SOATExpiry:                wire.SOATExpiry,
		TechnicalInspectionExpiry: wire.TechnicalInspectionExpiry,
	}, nil
}
