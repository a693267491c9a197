package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/brianmaleek/alx-listing-app-deployed/models"
)

// TransportError means the request never completed: DNS, connection, timeout or
// cancellation.
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string { return e.Op + ": " + e.Err.Error() }
func (e *TransportError) Unwrap() error { return e.Err }

// StatusError is an application level failure: the backend answered outside 2xx.
type StatusError struct {
	Op         string
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s: unexpected status %d", e.Op, e.StatusCode)
}

// IsNotFound reports whether err is a 404 answer from the backend.
func IsNotFound(err error) bool {
	var se *StatusError
	return errors.As(err, &se) && se.StatusCode == http.StatusNotFound
}

// BackendMetrics instruments outbound calls.
type BackendMetrics struct {
	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

func NewBackendMetrics(reg prometheus.Registerer) *BackendMetrics {
	m := &BackendMetrics{
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "rental_backend_requests_total",
			Help: "Outbound requests to the properties/bookings backend by operation and outcome.",
		}, []string{"operation", "outcome"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "rental_backend_request_duration_seconds",
			Help:    "Latency of outbound backend requests.",
			Buckets: []float64{0.01, 0.05, 0.1, 0.3, 0.6, 1, 3, 6, 10},
		}, []string{"operation"}),
	}
	if reg != nil {
		reg.MustRegister(m.requests, m.duration)
	}
	return m
}

func (m *BackendMetrics) observe(op string, start time.Time, err error) {
	if m == nil {
		return
	}
	outcome := "ok"
	var te *TransportError
	var se *StatusError
	switch {
	case errors.As(err, &te):
		outcome = "transport_error"
	case errors.As(err, &se):
		outcome = "status_error"
	case err != nil:
		outcome = "decode_error"
	}
	m.requests.WithLabelValues(op, outcome).Inc()
	m.duration.WithLabelValues(op).Observe(time.Since(start).Seconds())
}

// APIClient talks to the external properties/bookings backend. Every URL is built from
// the one base URL it is constructed with.
type APIClient struct {
	baseURL    string
	httpClient *http.Client
	metrics    *BackendMetrics
}

func NewAPIClient(baseURL string, timeout time.Duration, metrics *BackendMetrics) *APIClient {
	return &APIClient{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		metrics:    metrics,
	}
}

// BaseURL is the normalised base every request is built from.
func (c *APIClient) BaseURL() string { return c.baseURL }

// ListProperties issues GET {base}/properties and keeps the server order.
func (c *APIClient) ListProperties(ctx context.Context) ([]models.Property, error) {
	var out []models.Property
	if err := c.do(ctx, "list_properties", http.MethodGet, "/properties", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetProperty issues GET {base}/properties/{id}.
func (c *APIClient) GetProperty(ctx context.Context, id string) (*models.Property, error) {
	var out models.Property
	path := "/properties/" + url.PathEscape(id)
	if err := c.do(ctx, "get_property", http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListReviews issues GET {base}/properties/{id}/reviews and keeps the server order.
func (c *APIClient) ListReviews(ctx context.Context, propertyID string) ([]models.Review, error) {
	var out []models.Review
	path := "/properties/" + url.PathEscape(propertyID) + "/reviews"
	if err := c.do(ctx, "list_reviews", http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateBooking issues POST {base}/bookings with the form values. Any 2xx is success and
// the response body is ignored.
func (c *APIClient) CreateBooking(ctx context.Context, req models.BookingRequest) error {
	return c.do(ctx, "create_booking", http.MethodPost, "/bookings", req, nil)
}

func (c *APIClient) do(ctx context.Context, op, method, path string, body, out interface{}) (err error) {
	start := time.Now()
	defer func() { c.metrics.observe(op, start, err) }()

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("%s: encode body: %w", op, err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return &TransportError{Op: op, Err: err}
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &TransportError{Op: op, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, resp.Body)
		return &StatusError{Op: op, StatusCode: resp.StatusCode}
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%s: decode response: %w", op, err)
	}
	return nil
}
