// Package functions serves the HTTP identity lookups under /functions/v1
// with gin.
package functions

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/dmitrijs2005/cardboard/internal/logging"
	"github.com/gin-gonic/gin"
)

// Lookup resolves identities between email and user id.
type Lookup interface {
	LookupUserID(ctx context.Context, email string) (string, error)
	LookupUserEmail(ctx context.Context, userID string) (string, error)
}

type HTTPServer struct {
	address   string
	lookup    Lookup
	logger    logging.Logger
	jwtSecret []byte
}

func NewHTTPServer(a string, l logging.Logger, lookup Lookup, secretKey string) *HTTPServer {
	return &HTTPServer{
		address:   a,
		lookup:    lookup,
		logger:    l.With("module", "http_functions"),
		jwtSecret: []byte(secretKey),
	}
}

// Router builds the gin engine with every route registered.
func (s *HTTPServer) Router() *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery(), s.requestLogger(), cors())

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	})
	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	v1 := router.Group("/functions/v1", s.bearerAuth())
	v1.POST("/get-user-id-by-email", s.getUserIDByEmail)
	v1.POST("/get-user-email-by-id", s.getUserEmailByID)

	return router
}

// Run serves until ctx is done and then shuts down gracefully.
func (s *HTTPServer) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.address,
		Handler:           s.Router(),
		ReadHeaderTimeout: 5 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info(ctx, "Starting HTTP server", "address", s.address)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	s.logger.Info(ctx, "Stopping HTTP server...")
	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 5*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
