// README: HTTP server lifecycle; serves until ctx is done, then drains in-flight requests.
package http

import (
	"context"
	"errors"
	"net/http"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// shutdownGrace is generous because an in-flight generation cannot be cancelled.
const shutdownGrace = 2 * time.Minute

type Server struct {
	srv    *http.Server
	logger *zap.Logger
}

func NewServer(addr string, handler http.Handler, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Server{
		srv:    &http.Server{Addr: addr, Handler: handler, ReadHeaderTimeout: 10 * time.Second},
		logger: logger,
	}
}

// Run blocks until ctx is cancelled or the listener fails.
func (s *Server) Run(ctx context.Context) error {
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		s.logger.Info("http server listening", zap.String("addr", s.srv.Addr))
		if err := s.srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
		defer cancel()
		s.logger.Info("http server shutting down")
		return s.srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
