package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/a-h/templ"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"apibanner/internal/page"
	"apibanner/internal/renderlog"
)

// Options wires the handler. Page must be non-nil.
type Options struct {
	Page      templ.Component
	RunID     string
	RenderLog *renderlog.Logger

	// RateLimit is requests per minute per client IP; 0 disables limiting.
	RateLimit int
	Metrics   bool
}

// Server is a running HTTP listener for the page.
type Server struct {
	srv  *http.Server
	ln   net.Listener
	done chan struct{}
}

// Start listens on addr and serves until ctx is cancelled.
func Start(ctx context.Context, addr string, opts Options) (*Server, error) {
	if addr == "" {
		return nil, fmt.Errorf("http addr is empty")
	}
	if opts.Page == nil {
		return nil, fmt.Errorf("page component is nil")
	}

	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("listen %s: %w", addr, err)
	}

	s := &http.Server{
		Handler:           NewHandler(opts),
		ReadHeaderTimeout: 10 * time.Second,
	}
	hs := &Server{srv: s, ln: ln, done: make(chan struct{})}

	opts.RenderLog.Log(renderlog.Record{
		RunID:   opts.RunID,
		Type:    "startup",
		Message: fmt.Sprintf("listening addr=%s", ln.Addr()),
	})

	served := make(chan struct{})
	go func() {
		defer close(served)
		if err := s.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("http serve failed", "addr", ln.Addr().String(), "err", err)
		}
	}()

	go func() {
		defer close(hs.done)
		select {
		case <-ctx.Done():
		case <-served:
		}
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		_ = s.Shutdown(ctx)
		<-served
	}()

	return hs, nil
}

// Addr is the bound listener address, useful when started on port 0.
func (s *Server) Addr() string {
	return s.ln.Addr().String()
}

// Wait blocks until the server has shut down.
func (s *Server) Wait() {
	<-s.done
}

// NewHandler builds the router serving the page, its logo, health and metrics.
func NewHandler(opts Options) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(accessLog)
	if opts.RateLimit > 0 {
		r.Use(rateLimit(opts.RateLimit))
	}
	r.Use(middleware.GetHead)

	r.Method(http.MethodGet, "/", &pageHandler{
		inner: templ.Handler(countingComponent{opts.Page}),
		runID: opts.RunID,
		log:   opts.RenderLog,
	})
	r.Get(page.LogoPath, serveLogo)
	r.Get("/healthz", serveHealth)
	if opts.Metrics {
		r.Method(http.MethodGet, "/metrics", promhttp.Handler())
	}
	return r
}

// countingComponent records each render outcome.
type countingComponent struct {
	inner templ.Component
}

func (c countingComponent) Render(ctx context.Context, w io.Writer) error {
	if err := c.inner.Render(ctx, w); err != nil {
		PageRendersTotal.WithLabelValues("error").Inc()
		return err
	}
	PageRendersTotal.WithLabelValues("ok").Inc()
	return nil
}

type pageHandler struct {
	inner http.Handler
	runID string
	log   *renderlog.Logger
}

func (h *pageHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
	h.inner.ServeHTTP(ww, r)

	status := ww.Status()
	if status == 0 {
		status = http.StatusOK
	}
	h.log.Log(renderlog.Record{
		RunID:     h.runID,
		Type:      "render",
		Method:    r.Method,
		Path:      r.URL.Path,
		Remote:    r.RemoteAddr,
		RequestID: middleware.GetReqID(r.Context()),
		Status:    status,
	})
}

func serveLogo(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "image/svg+xml")
	w.Header().Set("Cache-Control", "public, max-age=3600")
	_, _ = w.Write(page.Logo())
}

func serveHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}
