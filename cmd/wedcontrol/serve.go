package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"

	"github.com/mmynk/wedcontrol/internal/auth"
	"github.com/mmynk/wedcontrol/internal/metrics"
	"github.com/mmynk/wedcontrol/internal/service"
)

const shutdownTimeout = 10 * time.Second

func newServeCmd(opts *options) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the RPC server",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.loadConfig()
			if err != nil {
				return err
			}
			if addr != "" {
				cfg.Addr = addr
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			store, closeStore, err := opts.openStore(ctx, cfg)
			if err != nil {
				return err
			}
			defer closeStore()
			slog.Info("Storage initialized", "database", cfg.DBPath)

			if cfg.InsecureSecret() {
				slog.Warn("Session secret not configured, using development secret")
			}
			sessions := auth.NewSessionManager(cfg.SessionSecret, cfg.SessionTTL)

			mux := http.NewServeMux()
			service.Register(mux, store, sessions, rate.NewLimiter(rate.Limit(cfg.ShareRate), cfg.ShareBurst))
			mux.Handle("GET /metrics", metrics.Handler())

			// h2c serves HTTP/2 without TLS for Connect clients
			handler := h2c.NewHandler(loggingMiddleware(corsMiddleware(mux)), &http2.Server{})
			server := &http.Server{
				Addr:              cfg.Addr,
				Handler:           handler,
				ReadHeaderTimeout: 10 * time.Second,
			}

			g, gCtx := errgroup.WithContext(ctx)
			g.Go(func() error {
				slog.Info("Connect server starting", "address", cfg.Addr)
				if err := server.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
					return err
				}
				return nil
			})
			g.Go(func() error {
				<-gCtx.Done()
				slog.Info("Shutting down")
				shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
				defer cancel()
				return server.Shutdown(shutdownCtx)
			})

			if err := g.Wait(); err != nil {
				slog.Error("Server failed", "error", err)
				return err
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&addr, "address", "a", "", "listen address (overrides config)")
	return cmd
}

// loggingMiddleware logs all incoming requests
func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		slog.Debug("Request received",
			"method", r.Method,
			"path", r.URL.Path,
			"remote_addr", r.RemoteAddr,
			"user_agent", r.UserAgent(),
		)

		next.ServeHTTP(w, r)

		slog.Debug("Request completed",
			"method", r.Method,
			"path", r.URL.Path,
			"duration_ms", time.Since(start).Milliseconds(),
		)
	})
}

// corsMiddleware adds CORS headers for browser access
func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "POST, GET, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Authorization, Content-Type, Connect-Protocol-Version, Connect-Timeout-Ms")
		w.Header().Set("Access-Control-Expose-Headers", "Connect-Protocol-Version, Connect-Timeout-Ms")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}
