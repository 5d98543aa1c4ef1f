package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

type Config struct {
	Logging  LoggingConfig  `json:"logging"`
	Server   ServerConfig   `json:"server"`
	Metrics  MetricsConfig  `json:"metrics"`
	Influx   InfluxConfig   `json:"influx"`
	MQTT     MQTTConfig     `json:"mqtt"`
	Analysis AnalysisConfig `json:"analysis"`
}

// Load reads a YAML or JSON configuration file and applies GF_ prefixed
// environment overrides (GF_SERVER__ADDR maps to server.addr).
func Load(path string) (*Config, error) {
	k := koanf.New(".")
	ext := strings.ToLower(filepath.Ext(path))
	var parser koanf.Parser
	switch ext {
	case ".yaml", ".yml":
		parser = yaml.Parser()
	case ".json":
		parser = json.Parser()
	default:
		return nil, fmt.Errorf("unsupported config format: %s", ext)
	}
	if err := k.Load(file.Provider(path), parser); err != nil {
		return nil, err
	}
	if err := loadEnv(k); err != nil {
		return nil, err
	}
	return unmarshal(k)
}

// LoadDefaults builds a configuration from defaults plus environment
// overrides only, for running without a config file.
func LoadDefaults() (*Config, error) {
	k := koanf.New(".")
	if err := loadEnv(k); err != nil {
		return nil, err
	}
	return unmarshal(k)
}

func loadEnv(k *koanf.Koanf) error {
	return k.Load(env.Provider("GF_", "__", func(s string) string {
		s = strings.TrimPrefix(strings.ToLower(s), "gf_")
		return strings.ReplaceAll(s, "__", ".")
	}), nil)
}

func unmarshal(k *koanf.Koanf) (*Config, error) {
	var cfg Config
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "json"}); err != nil {
		return nil, err
	}
	cfg.Logging.SetDefaults()
	cfg.Server.SetDefaults()
	cfg.Metrics.SetDefaults()
	cfg.Influx.SetDefaults()
	cfg.Analysis.SetDefaults()
	if err := cfg.Logging.Validate(); err != nil {
		return nil, err
	}
	if err := cfg.Server.Validate(); err != nil {
		return nil, err
	}
	if err := cfg.Analysis.Validate(); err != nil {
		return nil, err
	}
	if err := cfg.MQTT.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}
