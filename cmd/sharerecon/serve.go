package main

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/vitalvas/sharerecon/webform"
	"github.com/vitalvas/sharerecon/xcmd"
	"github.com/vitalvas/sharerecon/xlogger"
)

func newServeCmd(a *app) *cobra.Command {
	var listen string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the browser form and JSON API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if listen != "" {
				a.conf.Server.Listen = listen
			}

			method, err := a.method()
			if err != nil {
				return err
			}

			doc, err := a.readDocument(cmd)
			if err != nil {
				return err
			}

			form := webform.New(a.logger, webform.Config{
				MaxBodyBytes: a.conf.Server.MaxBodyBytes,
				Document:     string(doc),
				Method:       method,
			})

			ln, err := net.Listen("tcp", a.conf.Server.Listen)
			if err != nil {
				return err
			}

			return serve(cmd.Context(), a.logger, ln, form.Handler(), a.conf.Server)
		},
	}

	cmd.Flags().StringVarP(&listen, "listen", "l", "", "listen address, overrides the configuration")

	return cmd
}

// serve runs the HTTP server until ctx is done or a termination signal
// arrives, then shuts it down within conf.ShutdownTimeout.
func serve(ctx context.Context, logger *slog.Logger, ln net.Listener, handler http.Handler, conf ServerConfig) error {
	srv := &http.Server{
		Handler:           handler,
		ReadTimeout:       conf.ReadTimeout,
		ReadHeaderTimeout: conf.ReadTimeout,
	}

	logger.Info("serving", slog.String("addr", ln.Addr().String()))

	err := xcmd.Run(ctx,
		func(ctx context.Context) error {
			errCh := make(chan error, 1)
			go func() { errCh <- srv.Serve(ln) }()

			select {
			case err := <-errCh:
				if errors.Is(err, http.ErrServerClosed) {
					return nil
				}
				return err

			case <-ctx.Done():
				shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout(conf))
				defer cancel()

				if err := srv.Shutdown(shutdownCtx); err != nil {
					return err
				}
				<-errCh
				return nil
			}
		},
		func(ctx context.Context) error {
			return xcmd.WaitInterrupted(ctx)
		},
	)

	switch {
	case err == nil, errors.Is(err, xcmd.ErrInterrupted), errors.Is(err, context.Canceled):
		logger.Info("server stopped", slog.String("reason", stopReason(err)))
		return nil
	default:
		logger.Error("server failed", xlogger.Err(err))
		return err
	}
}

func shutdownTimeout(conf ServerConfig) time.Duration {
	if conf.ShutdownTimeout <= 0 {
		return 5 * time.Second
	}
	return conf.ShutdownTimeout
}

func stopReason(err error) string {
	if err == nil {
		return "done"
	}
	return err.Error()
}
