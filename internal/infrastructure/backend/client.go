package backend

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

	"import_admin/internal/infrastructure/metrics"
	"import_admin/internal/usecase/interfaces"

	"github.com/sirupsen/logrus"
)

// Config is the explicit connection setup of the backend client.
type Config struct {
	// BaseURL is the API root, e.g. http://localhost:8000/api.
	BaseURL string
	// PublicBaseURL is used to build absolute image URLs.
	PublicBaseURL string
	Timeout       time.Duration
}

// Client talks to the imports REST backend. One instance is built at startup
// and shared; it holds no per-request state.
type Client struct {
	cfg  Config
	http *http.Client
	log  logrus.FieldLogger
}

var (
	_ interfaces.ICarGateway    = (*Client)(nil)
	_ interfaces.IClientGateway = (*Client)(nil)
	_ interfaces.IImportGateway = (*Client)(nil)
	_ interfaces.IShareGateway  = (*Client)(nil)
	_ interfaces.IImageGateway  = (*Client)(nil)
)

type Option func(*Client)

// WithHTTPClient replaces the default http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

func NewClient(cfg Config, logger logrus.FieldLogger, opts ...Option) *Client {
	cfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")
	cfg.PublicBaseURL = strings.TrimRight(cfg.PublicBaseURL, "/")
	if cfg.Timeout <= 0 {
		cfg.Timeout = 15 * time.Second
	}
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	c := &Client{
		cfg:  cfg,
		http: &http.Client{Timeout: cfg.Timeout},
		log:  logger,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func escape(segments ...string) string {
	parts := make([]string, len(segments))
	for i, s := range segments {
		parts[i] = url.PathEscape(s)
	}
	return "/" + strings.Join(parts, "/")
}

// ImageURL returns absolute URLs unchanged and joins relative paths to PublicBaseURL.
func (c *Client) ImageURL(path string) string {
	if path == "" {
		return ""
	}
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return path
	}
	if c.cfg.PublicBaseURL == "" {
		return path
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return c.cfg.PublicBaseURL + path
}

type request struct {
	op          string
	method      string
	path        string
	body        io.Reader
	contentType string
}

func jsonRequest(op, method, path string, payload any) (request, error) {
	r := request{op: op, method: method, path: path}
	if payload != nil {
		b, err := json.Marshal(payload)
		if err != nil {
			return r, fmt.Errorf("encode %s payload: %w", op, err)
		}
		r.body = bytes.NewReader(b)
		r.contentType = "application/json"
	}
	return r, nil
}

// send performs the call and returns the body of a 2xx answer.
func (c *Client) send(ctx context.Context, r request) ([]byte, error) {
	start := time.Now()
	body, err := c.roundTrip(ctx, r)
	metrics.BackendRequestDuration.WithLabelValues(r.op).Observe(time.Since(start).Seconds())

	outcome := "ok"
	if err != nil {
		outcome = "error"
		if be, ok := AsError(err); ok {
			outcome = string(be.Kind)
		}
	}
	metrics.BackendRequestsTotal.WithLabelValues(r.op, outcome).Inc()

	c.log.WithFields(logrus.Fields{
		"operation":   r.op,
		"method":      r.method,
		"path":        r.path,
		"outcome":     outcome,
		"duration_ms": time.Since(start).Milliseconds(),
	}).Debug("[backend][client] call")

	return body, err
}

func (c *Client) roundTrip(ctx context.Context, r request) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, r.method, c.cfg.BaseURL+r.path, r.body)
	if err != nil {
		return nil, fmt.Errorf("build %s request: %w", r.op, err)
	}
	req.Header.Set("Accept", "application/json")
	if r.contentType != "" {
		req.Header.Set("Content-Type", r.contentType)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &Error{Kind: KindNoResponse, Operation: r.op, Detail: defaultNoResponseDetail, Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &Error{Kind: KindNoResponse, Operation: r.op, Detail: defaultNoResponseDetail, Err: err}
	}

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return body, nil
	}

	kind := KindResponse
	if resp.StatusCode == http.StatusNotFound {
		kind = KindNotFound
	}
	return nil, &Error{
		Kind:      kind,
		Operation: r.op,
		Status:    resp.StatusCode,
		Detail:    responseDetail(body),
	}
}

// do sends a JSON request and decodes a JSON object answer into out (when non-nil).
func (c *Client) do(ctx context.Context, op, method, path string, payload, out any) error {
	r, err := jsonRequest(op, method, path, payload)
	if err != nil {
		return err
	}
	body, err := c.send(ctx, r)
	if err != nil {
		return err
	}
	if out == nil || len(bytes.TrimSpace(body)) == 0 {
		return nil
	}
	if err := json.Unmarshal(body, out); err != nil {
		return &Error{Kind: KindResponse, Operation: op, Detail: "malformed response body", Err: err}
	}
	return nil
}

// list fetches a collection and normalizes its shape through decodeList.
func list[T any](ctx context.Context, c *Client, op, path string) ([]T, error) {
	r, _ := jsonRequest(op, http.MethodGet, path, nil)
	body, err := c.send(ctx, r)
	if err != nil {
		return nil, err
	}
	items, ok := decodeList[T](body)
	if !ok {
		c.log.WithFields(logrus.Fields{
			"operation": op,
			"path":      path,
		}).Warn("[backend][client] unexpected collection shape, using empty list")
	}
	return items, nil
}

// emptyOnNotFound turns a 404 on a lookup into an empty result.
func emptyOnNotFound[T any](items []T, err error) ([]T, error) {
	if err != nil {
		var be *Error
		if errors.As(err, &be) && be.Kind == KindNotFound {
			return []T{}, nil
		}
		return nil, err
	}
	return items, nil
}
