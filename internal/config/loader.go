package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// LoadShooter loads and validates Pollution Patrol configuration.
// Search order: customPath -> ~/.aqua/configs/shooter.yaml -> ./configs/shooter.yaml -> embedded default
func LoadShooter(customPath string) (ShooterConfig, error) {
	cfg, err := load("shooter", customPath, defaultShooterYAML, DefaultShooterConfig)
	if err != nil {
		return cfg, err
	}
	if err := ValidateShooter(cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// LoadCollector loads and validates Rain Catcher configuration.
// Search order: customPath -> ~/.aqua/configs/collector.yaml -> ./configs/collector.yaml -> embedded default
func LoadCollector(customPath string) (CollectorConfig, error) {
	cfg, err := load("collector", customPath, defaultCollectorYAML, DefaultCollectorConfig)
	if err != nil {
		return cfg, err
	}
	if err := ValidateCollector(cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// load resolves a config file for a game. Fields missing from a file keep
// their default values. A custom path that cannot be read or parsed is an
// error; the fallback locations are skipped silently when unusable.
func load[T any](gameID, customPath string, embedded []byte, defaults func() T) (T, error) {
	cfg := defaults()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		if err := decode(customPath, data, &cfg); err != nil {
			return cfg, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return cfg, nil
	}

	filename := gameID + ".yaml"

	// Try user config directory
	if userCfgPath := userConfigPath(filename); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			candidate := defaults()
			if err := decode(userCfgPath, data, &candidate); err == nil {
				return candidate, nil
			}
		}
	}

	// Try local configs directory
	localPath := filepath.Join("configs", filename)
	if data, err := os.ReadFile(localPath); err == nil {
		candidate := defaults()
		if err := decode(localPath, data, &candidate); err == nil {
			return candidate, nil
		}
	}

	// Use embedded default YAML
	if err := decode(filename, embedded, &cfg); err != nil {
		return defaults(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// decode picks the format from the file extension. Unknown fields are
// rejected so typos surface at startup.
func decode(path string, data []byte, out any) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		md, err := toml.Decode(string(data), out)
		if err != nil {
			return err
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return fmt.Errorf("unknown keys: %v", undecoded)
		}
		return nil
	default:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(out); err != nil && !errors.Is(err, io.EOF) {
			return err
		}
		return nil
	}
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".aqua", "configs", filename)
}
