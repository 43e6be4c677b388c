package main

import (
	"errors"
	"io/fs"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"intentd/internal/config"
)

// newRootCmd constructs the command tree.
func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "intentd",
		Short:         "Zero-shot intent classification service",
		SilenceUsage:  true,
		SilenceErrors: true,
		// Runs before this command and any subcommands
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			envFile, _ := cmd.Flags().GetString("env-file")
			return loadEnvFile(envFile)
		},
	}

	pflags := root.PersistentFlags()
	pflags.String("config", config.DefaultPath, "Path to the config file (yaml, json or toml; env INTENTD_CONFIG)")
	pflags.String("env-file", defaultEnvFile, "Path to a .env file loaded before anything else")
	pflags.String("model-name", defaultModelName, "Hugging Face model id (env INTENTD_MODEL_NAME)")
	pflags.String("cache-dir", defaultCacheDir, "Model artifact cache directory (env INTENTD_CACHE_DIR)")
	pflags.String("onnx-file", "", "ONNX file inside the model repository (default onnx/model.onnx)")
	pflags.Bool("offline", false, "Never fetch from the hub; use the cache only (env INTENTD_OFFLINE)")
	pflags.String("log-level", "info", "Log level: debug|info|warn|error (env INTENTD_LOG_LEVEL)")
	pflags.String("log-format", "json", "Log format: json|console (env INTENTD_LOG_FORMAT)")

	root.AddCommand(newServeCmd(), newFetchCmd(), newClassifyCmd(), newModelsCmd())
	root.CompletionOptions.HiddenDefaultCmd = true
	return root
}

// loadEnvFile loads path into the environment. A missing file is not an
// error; variables already set are not overridden.
func loadEnvFile(path string) error {
	if path == "" {
		return nil
	}
	if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}
