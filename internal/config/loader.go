package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// DefaultPath is where the service looks for its configuration file when no
// path is given on the command line.
const DefaultPath = "./config/app_config.yaml"

// Config holds the candidate intent labels and optional runtime parameters.
// Zero values mean "unspecified" and are replaced by defaults in main.
type Config struct {
	Classes []string `json:"inference_classes" yaml:"inference_classes" toml:"inference_classes"`

	Addr               string   `json:"addr" yaml:"addr" toml:"addr"`
	ModelName          string   `json:"model_name" yaml:"model_name" toml:"model_name"`
	CacheDir           string   `json:"cache_dir" yaml:"cache_dir" toml:"cache_dir"`
	OnnxFilePath       string   `json:"onnx_file_path" yaml:"onnx_file_path" toml:"onnx_file_path"`
	HypothesisTemplate string   `json:"hypothesis_template" yaml:"hypothesis_template" toml:"hypothesis_template"`
	LogLevel           string   `json:"log_level" yaml:"log_level" toml:"log_level"`
	LogFormat          string   `json:"log_format" yaml:"log_format" toml:"log_format"`
	MaxBodyBytes       int64    `json:"max_body_bytes" yaml:"max_body_bytes" toml:"max_body_bytes"`
	Offline            bool     `json:"offline" yaml:"offline" toml:"offline"`
	AdminEnabled       bool     `json:"admin_enabled" yaml:"admin_enabled" toml:"admin_enabled"`
	CORSEnabled        bool     `json:"cors_enabled" yaml:"cors_enabled" toml:"cors_enabled"`
	CORSOrigins        []string `json:"cors_allowed_origins" yaml:"cors_allowed_origins" toml:"cors_allowed_origins"`
}

// InferenceClasses returns the configured candidate labels in file order.
func (c Config) InferenceClasses() []string {
	return append([]string(nil), c.Classes...)
}

// Validate reports whether the label set is usable for classification.
func (c Config) Validate() error {
	if len(c.Classes) == 0 {
		return errors.New("inference_classes is missing or empty")
	}
	seen := make(map[string]struct{}, len(c.Classes))
	for i, l := range c.Classes {
		if strings.TrimSpace(l) == "" {
			return fmt.Errorf("inference_classes[%d] is blank", i)
		}
		if _, dup := seen[l]; dup {
			return fmt.Errorf("inference_classes has duplicate label %q", l)
		}
		seen[l] = struct{}{}
	}
	return nil
}

// Load reads a configuration file based on its extension.
// Supports: .yaml/.yml, .json, .toml
func Load(path string) (Config, error) {
	var cfg Config
	if path == "" {
		return cfg, fmt.Errorf("empty config path")
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(b, &cfg)
	case ".json":
		err = json.Unmarshal(b, &cfg)
	case ".toml":
		err = toml.Unmarshal(b, &cfg)
	default:
		return cfg, fmt.Errorf("unsupported config extension: %s", ext)
	}
	if err != nil {
		return cfg, fmt.Errorf("parse %s: %w", path, err)
	}
	return cfg, nil
}

// MustLoad loads and validates the configuration; any problem is returned
// wrapped with the path so startup can fail with a single message.
func MustLoad(path string) (Config, error) {
	cfg, err := Load(path)
	if err != nil {
		return cfg, fmt.Errorf("load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}
