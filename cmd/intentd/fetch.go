package main

import (
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"intentd/internal/artifact"
	"intentd/internal/logging"
)

func newFetchCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "fetch [MODEL_ID]",
		Short:   "Download a model into the cache without serving",
		Example: "  intentd fetch Xenova/distilbert-base-uncased-mnli --cache-dir ./models",
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := resolveSettings(cmd, false)
			if err != nil {
				return err
			}
			modelID := s.ModelName
			if len(args) == 1 {
				modelID = args[0]
			}
			log := logging.New(s.LogLevel, s.LogFormat, cmd.ErrOrStderr())
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			loader := artifact.NewLoader(artifact.Options{OnnxFile: s.OnnxFile, Offline: s.Offline, Logger: &log})
			art, err := loader.Load(ctx, modelID, s.CacheDir)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), art.Dir)
			return err
		},
	}
}
