package preview

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/muurk/ptable/internal/dataset"
	"github.com/muurk/ptable/internal/logging"
	"github.com/muurk/ptable/internal/render"
)

const shutdownTimeout = 5 * time.Second

// Config holds the preview server settings
type Config struct {
	Addr     string        // Listen address, e.g. ":8080"
	Theme    string        // Theme used when the request names none
	Layout   string        // Layout used when the request names none
	Watch    bool          // Reload when local source documents change
	Debounce time.Duration // Watch debounce window
}

// Server serves a live-reloading preview of the rendered table.
type Server struct {
	config Config
	loader *dataset.Loader
	hub    *Hub
}

// New creates a preview server over loader.
func New(loader *dataset.Loader, config Config) *Server {
	if config.Theme == "" {
		config.Theme = render.DefaultTheme
	}
	if config.Layout == "" {
		config.Layout = render.DefaultLayout
	}
	if config.Debounce <= 0 {
		config.Debounce = DefaultDebounce
	}
	return &Server{
		config: config,
		loader: loader,
		hub:    NewHub(),
	}
}

// Handler returns the HTTP routes of the preview server.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", s.handleIndex)
	mux.HandleFunc("GET /table.svg", s.handleTable)
	mux.Handle("GET /ws", s.hub)
	return logRequests(mux)
}

// Reload drops cached documents and tells every page to refetch.
func (s *Server) Reload() {
	s.loader.Reset()
	s.hub.Broadcast(ReloadMessage)
}

// Listen opens the configured address.
func (s *Server) Listen() (net.Listener, error) {
	ln, err := net.Listen("tcp", s.config.Addr)
	if err != nil {
		return nil, fmt.Errorf("failed to listen on %s: %w", s.config.Addr, err)
	}
	return ln, nil
}

// Serve handles connections on ln until ctx is done, then shuts down
// gracefully.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	if s.config.Watch {
		if err := s.startWatcher(ctx); err != nil {
			return err
		}
	}

	httpServer := &http.Server{
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errChan := make(chan error, 1)
	go func() {
		errChan <- httpServer.Serve(ln)
	}()

	logging.Info("Preview server listening", zap.String("addr", ln.Addr().String()))

	select {
	case err := <-errChan:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("preview server failed: %w", err)
	case <-ctx.Done():
	}

	logging.Info("Shutting down preview server...")
	s.hub.Close()

	shutdownCtx, stop := context.WithTimeout(context.Background(), shutdownTimeout)
	defer stop()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logging.Warn("Preview server shutdown timed out", zap.Error(err))
		return httpServer.Close()
	}
	return nil
}

// ListenAndServe combines Listen and Serve.
func (s *Server) ListenAndServe(ctx context.Context) error {
	ln, err := s.Listen()
	if err != nil {
		return err
	}
	return s.Serve(ctx, ln)
}

// startWatcher watches the local source documents. Remote ones are skipped.
func (s *Server) startWatcher(ctx context.Context) error {
	var files []string
	for _, locator := range []string{s.loader.ElementsLocator, s.loader.ConfigLocator} {
		if locator != "" && !dataset.IsRemote(locator) {
			files = append(files, locator)
		}
	}
	if len(files) == 0 {
		return nil
	}

	w, err := NewWatcher(files, s.config.Debounce)
	if err != nil {
		return err
	}
	go w.Run(ctx, func(paths []string) {
		logging.Info("Source documents changed, reloading", zap.Strings("paths", paths))
		s.Reload()
	})
	return nil
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	data := pageData{
		Theme:  s.config.Theme,
		Layout: s.config.Layout,
	}
	if cfg, err := s.loader.LoadConfig(r.Context()); err == nil {
		data.Themes = cfg.ThemeNames()
		data.Layouts = cfg.LayoutNames()
	} else {
		data.Themes = []string{s.config.Theme}
		data.Layouts = []string{s.config.Layout}
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := pageTemplate.Execute(w, data); err != nil {
		logging.Error("Failed to render preview page", zap.Error(err))
	}
}

// handleTable renders on every request so edits show up without a restart.
func (s *Server) handleTable(w http.ResponseWriter, r *http.Request) {
	theme := r.URL.Query().Get("theme")
	if theme == "" {
		theme = s.config.Theme
	}
	layout := r.URL.Query().Get("layout")
	if layout == "" {
		layout = s.config.Layout
	}

	elements, cfg, err := s.loader.Load(r.Context())
	if err != nil {
		status := http.StatusInternalServerError
		if dataset.IsResourceError(err) {
			status = http.StatusBadGateway
		}
		http.Error(w, err.Error(), status)
		return
	}

	svg, err := render.Generate(elements, cfg, theme, layout)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "image/svg+xml")
	w.Header().Set("Cache-Control", "no-store")
	_, _ = w.Write([]byte(svg))
}

// statusRecorder captures the status code for request logging
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

func (r *statusRecorder) Unwrap() http.ResponseWriter {
	return r.ResponseWriter
}

// Hijack is required by the WebSocket upgrader.
func (r *statusRecorder) Hijack() (net.Conn, *bufio.ReadWriter, error) {
	conn, rw, err := http.NewResponseController(r.ResponseWriter).Hijack()
	if err == nil {
		r.status = http.StatusSwitchingProtocols
	}
	return conn, rw, err
}

func logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		logging.LogHTTPRequest(r.RemoteAddr, r.Method, r.URL.Path, rec.status)
	})
}
