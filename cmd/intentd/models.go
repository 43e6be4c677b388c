package main

import (
	"encoding/json"

	"github.com/spf13/cobra"

	"intentd/internal/artifact"
	"intentd/pkg/types"
)

func newModelsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "models",
		Short: "List models present in the cache",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := resolveSettings(cmd, false)
			if err != nil {
				return err
			}
			models, err := artifact.ListCached(s.CacheDir, s.OnnxFile)
			if err != nil {
				return err
			}
			if models == nil {
				models = []types.CachedModel{}
			}
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(types.ModelsResponse{Models: models})
		},
	}
}
