package server

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"promo-planner/internal/config"
	"promo-planner/internal/service"
)

// Server aggregates the HTTP transport with the services behind it.
type Server struct {
	clients *service.ClientService
	tasks   *service.TaskService
	engine  *gin.Engine
}

func New(clients *service.ClientService, tasks *service.TaskService, cfg *config.Config) *Server {
	s := &Server{clients: clients, tasks: tasks}

	engine := gin.New()
	engine.Use(gin.Recovery(), RequestID(), AccessLog())

	engine.GET("/api/health", s.handleHealth)

	api := engine.Group("/api", Auth(cfg.SessionSecret))
	api.GET("/clients", s.handleGetClient)
	api.POST("/clients", s.handleCreateClient)
	api.GET("/tasks", s.handleListTasks)
	api.PUT("/tasks/:id", s.handleSetTaskStatus)

	s.engine = engine
	return s
}

// Handler exposes the router, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Run serves until ctx is cancelled, then drains in-flight requests.
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// serverError hides internal failures behind a generic message; the cause is
// only logged server-side.
func (s *Server) serverError(c *gin.Context, op string, err error) {
	log.Printf("[warn] %s error: %v rid=%s", op, err, requestID(c))
	c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal Server Error"})
}
