package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"intentd/internal/classifier"
	"intentd/internal/config"
)

// Built-in defaults, lowest precedence.
const (
	defaultModelName = "Xenova/distilbert-base-uncased-mnli"
	defaultCacheDir  = "./models"
	defaultPort      = "8080"
	defaultEnvFile   = ".env"
)

// settings is the resolved process configuration.
type settings struct {
	ConfigPath         string
	ModelName          string
	CacheDir           string
	Addr               string
	OnnxFile           string
	HypothesisTemplate string
	Pipeline           classifier.PipelineKind
	LogLevel           string
	LogFormat          string
	MaxBodyBytes       int64
	Offline            bool
	AdminEnabled       bool
	CORSEnabled        bool
	CORSOrigins        []string
	Labels             []string
}

// resolveSettings merges flags, environment, the config file and defaults in
// that order of precedence. When requireConfig is set a missing or invalid
// config file is an error; otherwise only a malformed file is.
func resolveSettings(cmd *cobra.Command, requireConfig bool) (settings, error) {
	s := settings{ConfigPath: pick(cmd, "config", "INTENTD_CONFIG", "", config.DefaultPath)}

	var file config.Config
	var err error
	if requireConfig {
		file, err = config.MustLoad(s.ConfigPath)
	} else if _, statErr := os.Stat(s.ConfigPath); statErr == nil {
		file, err = config.Load(s.ConfigPath)
	}
	if err != nil {
		return settings{}, fmt.Errorf("config %s: %w", s.ConfigPath, err)
	}

	s.Labels = file.InferenceClasses()
	s.ModelName = pick(cmd, "model-name", "INTENTD_MODEL_NAME", file.ModelName, defaultModelName)
	s.CacheDir = pick(cmd, "cache-dir", "INTENTD_CACHE_DIR", file.CacheDir, defaultCacheDir)
	s.OnnxFile = pick(cmd, "onnx-file", "INTENTD_ONNX_FILE", file.OnnxFilePath, "")
	s.HypothesisTemplate = pick(cmd, "hypothesis-template", "INTENTD_HYPOTHESIS_TEMPLATE", file.HypothesisTemplate, classifier.DefaultHypothesisTemplate)
	s.LogLevel = pick(cmd, "log-level", "INTENTD_LOG_LEVEL", file.LogLevel, "info")
	s.LogFormat = pick(cmd, "log-format", "INTENTD_LOG_FORMAT", file.LogFormat, "json")
	s.Addr = resolveAddr(cmd, file.Addr)
	s.MaxBodyBytes = file.MaxBodyBytes
	s.CORSEnabled = file.CORSEnabled || len(flagStrings(cmd, "cors-origins")) > 0
	s.CORSOrigins = file.CORSOrigins
	if v := flagStrings(cmd, "cors-origins"); len(v) > 0 {
		s.CORSOrigins = v
	}

	if s.Offline, err = pickBool(cmd, "offline", "INTENTD_OFFLINE", file.Offline); err != nil {
		return settings{}, err
	}
	if s.AdminEnabled, err = pickBool(cmd, "enable-admin", "INTENTD_ENABLE_ADMIN", file.AdminEnabled); err != nil {
		return settings{}, err
	}
	if s.Pipeline, err = classifier.ParsePipelineKind(pick(cmd, "pipeline", "INTENTD_PIPELINE", "", classifier.KindZeroShot.String())); err != nil {
		return settings{}, err
	}
	if v := flagStrings(cmd, "labels"); len(v) > 0 {
		s.Labels = v
	}
	return s, nil
}

// pick returns the first non-empty value of: a changed flag, the env var,
// the file value, the default.
func pick(cmd *cobra.Command, flagName, envKey, fileVal, def string) string {
	if f := cmd.Flags().Lookup(flagName); f != nil && f.Changed {
		return f.Value.String()
	}
	if v := strings.TrimSpace(os.Getenv(envKey)); v != "" {
		return v
	}
	if fileVal != "" {
		return fileVal
	}
	return def
}

func pickBool(cmd *cobra.Command, flagName, envKey string, fileVal bool) (bool, error) {
	if f := cmd.Flags().Lookup(flagName); f != nil && f.Changed {
		return cmd.Flags().GetBool(flagName)
	}
	if v := strings.TrimSpace(os.Getenv(envKey)); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return false, fmt.Errorf("%s: %w", envKey, err)
		}
		return b, nil
	}
	return fileVal, nil
}

// resolveAddr prefers --addr, then --port, then INTENTD_ADDR, then PORT,
// then the file, then :8080.
func resolveAddr(cmd *cobra.Command, fileAddr string) string {
	if f := cmd.Flags().Lookup("addr"); f != nil && f.Changed {
		return f.Value.String()
	}
	if f := cmd.Flags().Lookup("port"); f != nil && f.Changed {
		return ":" + f.Value.String()
	}
	if v := strings.TrimSpace(os.Getenv("INTENTD_ADDR")); v != "" {
		return v
	}
	if v := strings.TrimSpace(os.Getenv("PORT")); v != "" {
		return ":" + v
	}
	if fileAddr != "" {
		return fileAddr
	}
	return ":" + defaultPort
}

func flagStrings(cmd *cobra.Command, name string) []string {
	if f := cmd.Flags().Lookup(name); f == nil || !f.Changed {
		return nil
	}
	v, _ := cmd.Flags().GetStringSlice(name)
	return v
}
