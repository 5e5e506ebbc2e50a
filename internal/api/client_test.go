package api

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"todoview/internal/server"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	oteltrace "go.opentelemetry.io/otel/trace"
)

func newMockAPI(t *testing.T, n int) (*Client, *server.Store) {
	t.Helper()
	store := server.NewStore(server.Seed(n))
	ts := httptest.NewServer(server.NewRouter(store))
	t.Cleanup(ts.Close)
	return NewClient(ts.URL), store
}

func TestNewClient_Defaults(t *testing.T) {
	c := NewClient("")
	assert.Equal(t, DefaultBaseURL, c.BaseURL)

	c = NewClient("http://example.test/", WithTimeout(3*time.Second))
	assert.Equal(t, "http://example.test", c.BaseURL)
	assert.Equal(t, 3*time.Second, c.HTTP.Timeout)
	assert.Equal(t, "http://example.test/todos/7", c.todoURL(7))
}

func TestListTodos(t *testing.T) {
	c, _ := newMockAPI(t, 10)

	todos, err := c.ListTodos(context.Background())
	require.NoError(t, err)
	require.Len(t, todos, 10)
	for i, td := range todos {
		assert.Equal(t, i+1, td.ID, "server order must be preserved")
	}
}

func TestListTodos_EmptyCollection(t *testing.T) {
	c, _ := newMockAPI(t, 0)

	todos, err := c.ListTodos(context.Background())
	require.NoError(t, err)
	assert.Empty(t, todos)
}

func TestListTodos_Non2xx(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer ts.Close()

	_, err := NewClient(ts.URL).ListTodos(context.Background())
	require.Error(t, err)
	var se *StatusError
	require.True(t, errors.As(err, &se), "expected StatusError, got %v", err)
	assert.Equal(t, http.StatusInternalServerError, se.StatusCode)
}

func TestListTodos_MalformedBody(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"not":"an array"}`))
	}))
	defer ts.Close()

	_, err := NewClient(ts.URL).ListTodos(context.Background())
	assert.ErrorContains(t, err, "decode todos")
}

func TestListTodos_TransportFailure(t *testing.T) {
	ts := httptest.NewServer(http.NotFoundHandler())
	url := ts.URL
	ts.Close()

	_, err := NewClient(url).ListTodos(context.Background())
	assert.ErrorContains(t, err, "list todos")
}

func TestDeleteTodo(t *testing.T) {
	c, store := newMockAPI(t, 10)

	status, err := c.DeleteTodo(context.Background(), 5)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, 9, store.Len())
}

func TestDeleteTodo_ErrorStatusIsNotAnError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/todos/3", r.URL.Path)
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte("not json at all"))
	}))
	defer ts.Close()

	status, err := NewClient(ts.URL).DeleteTodo(context.Background(), 3)
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, status)
}

func TestDeleteTodo_TransportFailure(t *testing.T) {
	ts := httptest.NewServer(http.NotFoundHandler())
	url := ts.URL
	ts.Close()

	_, err := NewClient(url).DeleteTodo(context.Background(), 1)
	assert.ErrorContains(t, err, "delete todo 1")
}

func TestRequestsCarryRequestID(t *testing.T) {
	var got []string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = append(got, r.Header.Get(RequestIDHeader))
		_, _ = w.Write([]byte(`[]`))
	}))
	defer ts.Close()

	c := NewClient(ts.URL)
	_, err := c.ListTodos(context.Background())
	require.NoError(t, err)
	_, err = c.DeleteTodo(context.Background(), 1)
	require.NoError(t, err)

	require.Len(t, got, 2)
	for _, id := range got {
		_, err := uuid.Parse(id)
		assert.NoError(t, err, "request id %q", id)
	}
	assert.NotEqual(t, got[0], got[1])
}

func TestSpansRecorded(t *testing.T) {
	rec := tracetest.NewSpanRecorder()
	provider := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(rec))
	prev := otel.GetTracerProvider()
	otel.SetTracerProvider(provider)
	t.Cleanup(func() { otel.SetTracerProvider(prev) })

	c, _ := newMockAPI(t, 3)
	_, err := c.ListTodos(context.Background())
	require.NoError(t, err)
	_, err = c.DeleteTodo(context.Background(), 2)
	require.NoError(t, err)

	// The mock server records its own server spans on the same provider.
	var ended []sdktrace.ReadOnlySpan
	for _, s := range rec.Ended() {
		if s.SpanKind() == oteltrace.SpanKindClient {
			ended = append(ended, s)
		}
	}
	require.Len(t, ended, 2)
	assert.Equal(t, "todos.list", ended[0].Name())
	assert.Contains(t, ended[0].Attributes(), attribute.Int("todo.count", 3))
	assert.Equal(t, "todos.delete", ended[1].Name())
	assert.Contains(t, ended[1].Attributes(), attribute.Int("todo.id", 2))
	assert.Contains(t, ended[1].Attributes(), attribute.Int("http.status_code", http.StatusOK))
}
