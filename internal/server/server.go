// Package server serves a built site for local preview.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/alnah/go-mdsite/internal/fileutil"
)

// NotFoundPage is served with status 404 when present at the site root.
const NotFoundPage = "404.html"

// Timeouts for the preview HTTP server.
const (
	readTimeout     = 10 * time.Second
	writeTimeout    = 30 * time.Second
	idleTimeout     = 60 * time.Second
	shutdownTimeout = 5 * time.Second
)

// Server serves the files below a site root.
type Server struct {
	router chi.Router
	root   string
	files  http.Handler
	log    *slog.Logger
}

// New creates a Server for root. Returns fileutil.ErrNotDirectory if root
// is not a directory.
func New(root string, log *slog.Logger) (*Server, error) {
	if !fileutil.DirExists(root) {
		return nil, fmt.Errorf("%w: %s", fileutil.ErrNotDirectory, root)
	}
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}

	s := &Server{
		root:  root,
		files: http.FileServer(http.Dir(root)),
		log:   log,
	}
	s.setupRoutes()
	return s, nil
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) setupRoutes() {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(middleware.NoCache)
	r.Use(RequestLogger(s.log))

	r.Get("/*", s.handleStatic)
	r.Head("/*", s.handleStatic)

	s.router = r
}

// handleStatic serves files, resolving extensionless paths to .html pages.
func (s *Server) handleStatic(w http.ResponseWriter, r *http.Request) {
	urlPath := path.Clean("/" + r.URL.Path)

	if path.Ext(urlPath) == "" && !strings.HasSuffix(r.URL.Path, "/") && s.exists(urlPath+".html") {
		r2 := r.Clone(r.Context())
		r2.URL.Path = urlPath + ".html"
		s.files.ServeHTTP(w, r2)
		return
	}

	if !s.exists(urlPath) {
		s.notFound(w, r)
		return
	}
	s.files.ServeHTTP(w, r)
}

func (s *Server) exists(urlPath string) bool {
	_, err := os.Stat(s.localPath(urlPath))
	return err == nil
}

func (s *Server) localPath(urlPath string) string {
	return filepath.Join(s.root, filepath.FromSlash(urlPath))
}

func (s *Server) notFound(w http.ResponseWriter, r *http.Request) {
	page, err := os.ReadFile(s.localPath("/" + NotFoundPage))
	if err != nil {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusNotFound)
	_, _ = w.Write(page)
}

// ListenAndServe listens on addr and serves until ctx is cancelled.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}
	return s.Serve(ctx, ln)
}

// Serve accepts connections on ln until ctx is cancelled, then shuts down
// gracefully. Returns nil after a clean shutdown.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	httpServer := &http.Server{
		Handler:      s,
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
		IdleTimeout:  idleTimeout,
	}

	done := make(chan struct{})
	go func() {
		defer close(done)
		<-ctx.Done()
		s.log.Info("shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			s.log.Error("shutdown", "error", err)
		}
	}()

	s.log.Info("serving", "root", s.root, "addr", ln.Addr().String())
	err := httpServer.Serve(ln)
	if errors.Is(err, http.ErrServerClosed) {
		<-done
		return nil
	}
	return err
}
