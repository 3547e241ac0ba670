package game

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ConfigEnv names the environment variable consulted when no config path is given
const ConfigEnv = "THUNDER_CONFIG"

// LoadConfig reads a YAML tunables file over DefaultConfig, so a file only
// needs the keys it changes. An empty path falls back to $THUNDER_CONFIG; if
// that is unset too, the defaults are returned. The result is validated.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		path = os.Getenv(ConfigEnv)
		if path == "" {
			return cfg, nil
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// MarshalConfig renders a config as YAML, e.g. to dump the defaults as a starting file
func MarshalConfig(cfg Config) ([]byte, error) {
	return yaml.Marshal(cfg)
}
