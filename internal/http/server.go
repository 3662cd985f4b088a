package http

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/cors"
	sloghttp "github.com/samber/slog-http"
)

type Server struct {
	opts *Options
}

// Run starts the server and blocks until the context is canceled or the
// listener fails; on cancellation outstanding requests get a grace period
// to complete.
func (s *Server) Run(ctx context.Context) error {
	handler := s.Handler()

	server := &http.Server{
		Addr:    s.opts.Address,
		Handler: handler,
		BaseContext: func(net.Listener) context.Context {
			return ctx
		},
	}

	errs := make(chan error, 1)

	go func() {
		errs <- server.ListenAndServe()
	}()

	select {
	case err := <-errs:
		return errors.WithStack(err)
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			return errors.WithStack(err)
		}

		return nil
	}
}

// Handler assembles the mounted handlers with logging and CORS. Exposed
// for tests.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	baseURL := strings.TrimSuffix(s.opts.BaseURL, "/")

	for prefix, handler := range s.opts.Mounts {
		mounted := baseURL + prefix

		if prefix == "/" {
			mux.Handle(mounted, handler)
			continue
		}

		mux.Handle(mounted, http.StripPrefix(strings.TrimSuffix(mounted, "/"), handler))
	}

	var handler http.Handler = mux

	handler = cors.New(cors.Options{
		AllowedOrigins: s.opts.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
	}).Handler(handler)

	handler = sloghttp.New(slog.Default())(handler)

	return handler
}

func NewServer(funcs ...OptionFunc) *Server {
	return &Server{
		opts: NewOptions(funcs...),
	}
}
