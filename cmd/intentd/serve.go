package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"intentd/internal/artifact"
	"intentd/internal/classifier"
	"intentd/internal/httpapi"
	"intentd/internal/logging"
)

const shutdownTimeout = 5 * time.Second

func newServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "serve",
		Short:   "Load the model and serve the HTTP API",
		Example: "  intentd serve --port 8080 --model-name Xenova/distilbert-base-uncased-mnli",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := resolveSettings(cmd, true)
			if err != nil {
				return err
			}
			log := logging.New(s.LogLevel, s.LogFormat, cmd.ErrOrStderr())
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return serve(ctx, s, log)
		},
	}
	cmd.Flags().String("port", defaultPort, "HTTP port (env PORT)")
	cmd.Flags().String("addr", "", "HTTP listen address, overrides --port (env INTENTD_ADDR)")
	cmd.Flags().Bool("enable-admin", false, "Mount PUT/DELETE /model (env INTENTD_ENABLE_ADMIN)")
	cmd.Flags().String("pipeline", classifier.KindZeroShot.String(), "Pipeline type to build")
	cmd.Flags().String("hypothesis-template", classifier.DefaultHypothesisTemplate, "NLI hypothesis template; {} is replaced by each label")
	cmd.Flags().StringSlice("cors-origins", nil, "Enable CORS for these origins")
	return cmd
}

// serve loads the configured model, then serves until ctx is canceled. A
// failed startup load is logged and the server runs with /ready at 503.
func serve(ctx context.Context, s settings, log zerolog.Logger) error {
	httpapi.SetLogger(log)
	httpapi.SetDefaultLogLevel(s.LogLevel)
	httpapi.SetMaxBodyBytes(s.MaxBodyBytes)
	httpapi.SetAdminEnabled(s.AdminEnabled)
	httpapi.SetCORSOptions(s.CORSEnabled, s.CORSOrigins,
		[]string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		[]string{"Accept", "Content-Type", "X-Log-Level", "X-Request-Id"})
	httpapi.SetBaseContext(ctx)

	loader := artifact.NewLoader(artifact.Options{OnnxFile: s.OnnxFile, Offline: s.Offline, Logger: &log})
	clf := classifier.New(classifier.Config{Loader: loader, HypothesisTemplate: s.HypothesisTemplate, Logger: &log})
	defer clf.Unload()

	log.Info().Strs("inference_classes", s.Labels).Str("config", s.ConfigPath).Msg("config loaded")
	if _, err := clf.Load(ctx, s.ModelName, s.CacheDir, s.Pipeline); err != nil {
		if ctx.Err() != nil {
			return nil
		}
		log.Error().Err(err).Str("model", s.ModelName).Msg("startup model load failed; serving with /ready unavailable")
	}

	srv := &http.Server{
		Addr:              s.Addr,
		Handler:           httpapi.NewMux(newService(clf, s), s.Labels),
		ReadHeaderTimeout: 10 * time.Second,
	}
	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("addr", s.Addr).Str("cache_dir", s.CacheDir).Msg("intentd listening")
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
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Warn().Err(err).Msg("graceful shutdown error")
	}
	log.Info().Msg("intentd stopped")
	return nil
}
