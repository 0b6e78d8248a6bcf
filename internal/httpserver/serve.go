package httpserver

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/taskbox/taskbox/internal/logutil"
)

// Serve runs the handler on bind until the context is cancelled, then
// drains in-flight requests for up to a minute before giving up.
func Serve(ctx context.Context, bind string, handler http.Handler) error {
	server := http.Server{
		Handler:           handler,
		Addr:              bind,
		ReadTimeout:       time.Minute * 5,
		WriteTimeout:      time.Minute,
		ReadHeaderTimeout: time.Minute,
		IdleTimeout:       time.Minute * 5,
	}
	log := logutil.GetOrDefault(ctx).With().Str("server.addr", server.Addr).Logger()
	errch := make(chan error, 1)
	go func() {
		log.Info().Msg("Starting HTTP server")
		err := server.ListenAndServe()
		if errors.Is(err, http.ErrServerClosed) {
			// shutdown below closed the listener, not an error
			err = nil
		}
		errch <- err
	}()
	select {
	case err := <-errch:
		return err
	case <-ctx.Done():
	}
	log.Info().Msg("Initiating shutdown process")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return err
	}
	log.Info().Msg("Shutdown completed")
	return <-errch
}
