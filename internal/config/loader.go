package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Load reads the configuration.
// Search order: customPath -> ~/.ledgrid/config.yaml -> ./configs/ledgrid.yaml -> embedded default.
// Fields missing from a file keep their default values.
func Load(customPath string) (Config, error) {
	cfg := embedded()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		cfg.Normalize()
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := UserConfigPath(); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			next := cfg
			if err := yaml.Unmarshal(data, &next); err == nil {
				next.Normalize()
				return next, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile("configs/ledgrid.yaml"); err == nil {
		next := cfg
		if err := yaml.Unmarshal(data, &next); err == nil {
			next.Normalize()
			return next, nil
		}
	}

	return cfg, nil
}

// Save writes cfg as YAML to path, creating parent directories.
func Save(path string, cfg Config) error {
	if path == "" {
		path = UserConfigPath()
	}
	if path == "" {
		return fmt.Errorf("config: no writable config path")
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("config: cannot encode: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("config: cannot create directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("config: cannot write %s: %w", path, err)
	}
	return nil
}

// UserConfigPath returns ~/.ledgrid/config.yaml, or empty if home is unavailable.
func UserConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".ledgrid", "config.yaml")
}

// embedded parses the embedded defaults, falling back to Default.
func embedded() Config {
	cfg := Default()
	if err := yaml.Unmarshal(defaultYAML, &cfg); err != nil {
		return Default() // Fallback to hardcoded if embed fails
	}
	cfg.Normalize()
	return cfg
}
