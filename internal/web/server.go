package web

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"todo-list/internal/services"
	"todo-list/internal/validation"
	"todo-list/internal/view"
)

// Options configures the HTTP server
type Options struct {
	Addr            string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration
}

// Server is the todo web server
type Server struct {
	service   services.TodoService
	renderer  *view.Renderer
	validator *validation.ItemValidator
	router    *gin.Engine
	log       *slog.Logger
	opts      Options
}

// NewServer creates a new web server. The gin mode is left to the caller.
func NewServer(service services.TodoService, renderer *view.Renderer, log *slog.Logger, opts Options) *Server {
	router := gin.New()

	s := &Server{
		service:   service,
		renderer:  renderer,
		validator: validation.NewItemValidator(),
		router:    router,
		log:       log,
		opts:      opts,
	}

	router.Use(requestID(log), requestLogger(), gin.Recovery())
	router.SetHTMLTemplate(renderer.Templates())

	// Web routes
	router.GET("/", s.handleIndex)
	router.POST("/add", s.handleAdd)
	router.GET("/toggle/:id", s.handleToggle)
	router.GET("/delete/:id", s.handleDelete)
	router.GET("/healthz", s.handleHealth)

	// API routes
	api := router.Group("/api")
	{
		api.GET("/items", s.handleAPIList)
		api.POST("/items", s.handleAPICreate)
		api.POST("/items/:id/toggle", s.handleAPIToggle)
		api.DELETE("/items/:id", s.handleAPIDelete)
	}

	router.HandleMethodNotAllowed = true
	router.NoRoute(s.handleNoRoute)
	router.NoMethod(s.handleNoMethod)

	return s
}

// Handler exposes the router, e.g. for httptest
func (s *Server) Handler() http.Handler {
	return s.router
}

// Run listens on the configured address until ctx is cancelled
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.opts.Addr)
	if err != nil {
		return err
	}
	return s.Serve(ctx, ln)
}

// Serve handles connections on ln until ctx is cancelled, then shuts down
// gracefully within the shutdown timeout
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	httpServer := &http.Server{
		Handler:      s.router,
		ReadTimeout:  s.opts.ReadTimeout,
		WriteTimeout: s.opts.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.Info("HTTP server listening", "addr", ln.Addr().String())
		errCh <- httpServer.Serve(ln)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	s.log.Info("Shutting down HTTP server", "timeout", s.opts.ShutdownTimeout)
	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.opts.ShutdownTimeout)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
