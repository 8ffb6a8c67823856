package server

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gorilla/mux"
)

// ShutdownTimeout bounds graceful shutdown.
const ShutdownTimeout = 5 * time.Second

type WineExplorerHttpServer struct {
	router    *Router
	muxRouter *mux.Router
	address   string
}

func NewWineExplorerHttpServer(router *Router, muxRouter *mux.Router, address string) *WineExplorerHttpServer {
	return &WineExplorerHttpServer{
		router:    router,
		muxRouter: muxRouter,
		address:   address,
	}
}

// Handler registers the routes and returns the root handler.
func (s *WineExplorerHttpServer) Handler() http.Handler {
	s.router.RegisterRoutes()
	return s.muxRouter
}

// Start serves until ctx is done, then shuts down gracefully.
func (s *WineExplorerHttpServer) Start(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.address,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Printf("[WineExplorerHttpServer] Starting server on %s", s.address)
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

	log.Println("[WineExplorerHttpServer] Shutting down the server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	log.Println("[WineExplorerHttpServer] Server exiting")
	return nil
}
