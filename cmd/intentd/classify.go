package main

import (
	"encoding/json"
	"errors"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"intentd/internal/artifact"
	"intentd/internal/classifier"
	"intentd/internal/logging"
	"intentd/pkg/types"
)

func newClassifyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "classify TEXT...",
		Short:   "Classify one text against the configured intents and print the top three",
		Example: `  intentd classify "find me a flight that flies from memphis to tacoma"`,
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := resolveSettings(cmd, len(flagStrings(cmd, "labels")) == 0)
			if err != nil {
				return err
			}
			if len(s.Labels) == 0 {
				return errors.New("no candidate labels: set inference_classes in the config or pass --labels")
			}
			log := logging.New(s.LogLevel, s.LogFormat, cmd.ErrOrStderr())
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			loader := artifact.NewLoader(artifact.Options{OnnxFile: s.OnnxFile, Offline: s.Offline, Logger: &log})
			clf := classifier.New(classifier.Config{Loader: loader, HypothesisTemplate: s.HypothesisTemplate, Logger: &log})
			if _, err := clf.Load(ctx, s.ModelName, s.CacheDir, s.Pipeline); err != nil {
				return err
			}
			defer clf.Unload()

			preds, err := clf.InferTop3(ctx, strings.Join(args, " "), s.Labels)
			if err != nil {
				return err
			}
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(types.IntentResponse{Intents: preds})
		},
	}
	cmd.Flags().StringSlice("labels", nil, "Candidate labels, overriding inference_classes")
	cmd.Flags().String("hypothesis-template", classifier.DefaultHypothesisTemplate, "NLI hypothesis template; {} is replaced by each label")
	return cmd
}
