package site

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"git.home.luguber.info/inful/docsite/internal/foundation/errors"
	"git.home.luguber.info/inful/docsite/internal/logfields"
)

// envFiles are loaded, in order, from the directory of the configuration
// file. Variables already present in the environment are not overwritten.
var envFiles = []string{".env", ".env.local"}

// Load reads a configuration file. The format follows the file extension
// (.json is JSON, anything else YAML). ${VAR} references are expanded from
// the environment after loading .env files next to the config.
func Load(path string) (*Config, error) {
	loadEnvFiles(filepath.Dir(path))

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.ConfigError("configuration file not found").
				WithContext("path", path).
				Build()
		}
		return nil, errors.WrapError(err, errors.CategoryConfig, "failed to read configuration").
			Fatal().
			WithContext("path", path).
			Build()
	}

	cfg, err := Parse(data, FormatFromPath(path))
	if err != nil {
		return nil, errors.WrapError(err, errors.CategoryConfig, "failed to parse configuration").
			Fatal().
			WithContext("path", path).
			Build()
	}
	slog.Debug("Loaded site configuration", logfields.ConfigPath(path), slog.String(logfields.KeyTitle, cfg.Title))
	return cfg, nil
}

// Parse decodes data in the given format, expands environment references
// and applies defaults. Unknown keys are rejected.
func Parse(data []byte, format Format) (*Config, error) {
	expanded := []byte(os.ExpandEnv(string(data)))

	var cfg Config
	switch format {
	case FormatJSON:
		dec := json.NewDecoder(bytes.NewReader(expanded))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&cfg); err != nil {
			return nil, err
		}
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(expanded))
		dec.KnownFields(true)
		if err := dec.Decode(&cfg); err != nil && err != io.EOF {
			return nil, err
		}
	default:
		return nil, errors.ConfigError("unsupported configuration format").
			WithContext("format", string(format)).
			Build()
	}

	cfg.applyDefaults()
	return &cfg, nil
}

func loadEnvFiles(dir string) {
	for _, name := range envFiles {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err != nil {
			continue
		}
		if err := godotenv.Load(path); err != nil {
			slog.Warn("Failed to load environment file", logfields.Path(path), logfields.Error(err))
			continue
		}
		slog.Debug("Loaded environment file", logfields.Path(path))
	}
}
