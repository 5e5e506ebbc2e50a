// Package api is the HTTP client for the remote todos collection.
package api

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"todoview/internal/jsonutil"
	"todoview/internal/telemetry"
	"todoview/internal/todo"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	oteltrace "go.opentelemetry.io/otel/trace"
)

// DefaultBaseURL is the public placeholder API the client talks to by default.
const DefaultBaseURL = "https://jsonplaceholder.typicode.com"

// RequestIDHeader carries a per-request UUID for correlating client and server logs.
const RequestIDHeader = "X-Request-Id"

const tracerName = "todoview/api"

// Client talks to {BaseURL}/todos.
type Client struct {
	BaseURL string
	HTTP    *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the default http.Client.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.HTTP = h }
}

// WithTimeout sets the per-request timeout on the underlying http.Client.
// Zero means no timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.HTTP.Timeout = d }
}

// NewClient creates a client for the given base URL. A trailing slash is trimmed.
func NewClient(baseURL string, opts ...Option) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	c := &Client{
		BaseURL: strings.TrimRight(baseURL, "/"),
		HTTP:    &http.Client{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// ListTodos fetches the whole collection in server order.
func (c *Client) ListTodos(ctx context.Context) ([]todo.Todo, error) {
	ctx, span := telemetry.Tracer(tracerName).Start(ctx, "todos.list",
		oteltrace.WithSpanKind(oteltrace.SpanKindClient))
	defer span.End()

	resp, err := c.do(ctx, http.MethodGet, c.collectionURL())
	if err != nil {
		recordError(span, err)
		return nil, fmt.Errorf("list todos: %w", err)
	}
	defer resp.Body.Close()
	span.SetAttributes(attribute.Int("http.status_code", resp.StatusCode))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		err := &StatusError{Method: http.MethodGet, URL: c.collectionURL(), StatusCode: resp.StatusCode}
		recordError(span, err)
		return nil, fmt.Errorf("list todos: %w", err)
	}

	todos, err := jsonutil.DecodeArray[todo.Todo](resp.Body, "decode todos")
	if err != nil {
		recordError(span, err)
		return nil, fmt.Errorf("list todos: %w", err)
	}
	span.SetAttributes(attribute.Int("todo.count", len(todos)))
	return todos, nil
}

// DeleteTodo issues DELETE {base}/todos/{id}. The response body is discarded
// and any HTTP status counts as success; only transport failures return an
// error. The status code is returned for logging.
func (c *Client) DeleteTodo(ctx context.Context, id int) (int, error) {
	ctx, span := telemetry.Tracer(tracerName).Start(ctx, "todos.delete",
		oteltrace.WithSpanKind(oteltrace.SpanKindClient),
		oteltrace.WithAttributes(attribute.Int("todo.id", id)))
	defer span.End()

	resp, err := c.do(ctx, http.MethodDelete, c.todoURL(id))
	if err != nil {
		recordError(span, err)
		return 0, fmt.Errorf("delete todo %d: %w", id, err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	span.SetAttributes(attribute.Int("http.status_code", resp.StatusCode))
	return resp.StatusCode, nil
}

func (c *Client) do(ctx context.Context, method, url string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, method, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set(RequestIDHeader, uuid.NewString())
	return c.HTTP.Do(req)
}

func (c *Client) collectionURL() string {
	return c.BaseURL + "/todos"
}

func (c *Client) todoURL(id int) string {
	return c.collectionURL() + "/" + strconv.Itoa(id)
}

func recordError(span oteltrace.Span, err error) {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
}
