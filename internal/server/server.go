package server

import (
	"context"
	"log"
	"net/http"
	"strconv"
	"time"

	"todoview/internal/jsonutil"
	"todoview/internal/telemetry"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.opentelemetry.io/otel/attribute"
	oteltrace "go.opentelemetry.io/otel/trace"
)

// DefaultAddr is the listen address used when none is configured.
const DefaultAddr = ":8090"

const tracerName = "todoview/server"

// NewRouter returns the todos routes backed by store.
func NewRouter(store *Store) http.Handler {
	h := &handlers{store: store}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(traceRequests)

	r.Get("/todos", h.listTodos)
	r.Get("/todos/{id}", h.getTodo)
	r.Delete("/todos/{id}", h.deleteTodo)
	return r
}

// Server wraps an http.Server serving NewRouter.
type Server struct {
	store  *Store
	server *http.Server
}

// New creates a server listening on addr (DefaultAddr when empty).
func New(addr string, store *Store) *Server {
	if addr == "" {
		addr = DefaultAddr
	}
	return &Server{
		store: store,
		server: &http.Server{
			Addr:              addr,
			Handler:           NewRouter(store),
			ReadHeaderTimeout: 5 * time.Second,
		},
	}
}

// Addr returns the configured listen address.
func (s *Server) Addr() string {
	return s.server.Addr
}

// ListenAndServe blocks until the server stops. A graceful shutdown returns nil.
func (s *Server) ListenAndServe() error {
	log.Printf("todoserver: serving %d todos on %s", s.store.Len(), s.server.Addr)
	if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}

type handlers struct {
	store *Store
}

func (h *handlers) listTodos(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.store.List())
}

func (h *handlers) getTodo(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}
	t, found := h.store.Get(id)
	if !found {
		writeJSON(w, http.StatusNotFound, struct{}{})
		return
	}
	writeJSON(w, http.StatusOK, t)
}

// deleteTodo answers 200 with an empty object whether or not the id existed,
// mirroring the public API.
func (h *handlers) deleteTodo(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}
	if !h.store.Delete(id) {
		log.Printf("todoserver: delete of unknown todo %d (request %s)", id, middleware.GetReqID(r.Context()))
	}
	writeJSON(w, http.StatusOK, struct{}{})
}

func parseID(w http.ResponseWriter, r *http.Request) (int, bool) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid todo id", http.StatusBadRequest)
		return 0, false
	}
	return id, true
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := jsonutil.Encode(w, v); err != nil {
		log.Println("todoserver: unable to write:", err)
	}
}

// traceRequests wraps each request in a server span named after the matched
// route pattern.
func traceRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx, span := telemetry.Tracer(tracerName).Start(r.Context(), r.Method,
			oteltrace.WithSpanKind(oteltrace.SpanKindServer),
			oteltrace.WithAttributes(attribute.String("request.id", middleware.GetReqID(r.Context()))))
		defer span.End()

		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r.WithContext(ctx))

		if rctx := chi.RouteContext(r.Context()); rctx != nil && rctx.RoutePattern() != "" {
			span.SetName(r.Method + " " + rctx.RoutePattern())
		}
		span.SetAttributes(attribute.Int("http.status_code", ww.Status()))
	})
}
