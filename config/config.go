// Package config loads the genrel configuration from an optional YAML or JSON
// file followed by GENREL_ environment overrides.
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

	"github.com/kilianp07/genrel/infra/logger"
)

// EnvPrefix prefixes every environment override. Nested keys are separated
// by a double underscore: GENREL_STUDY__DEMAND_KW=2500.
const EnvPrefix = "GENREL_"

type Config struct {
	Study  StudyConfig   `json:"study"`
	Log    logger.Config `json:"log"`
	Report ReportConfig  `json:"report"`
}

// Load reads path, if not empty, then applies environment overrides.
func Load(path string) (*Config, error) {
	k := koanf.New(".")
	if path != "" {
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
	}
	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		s = strings.TrimPrefix(strings.ToLower(s), strings.ToLower(EnvPrefix))
		return strings.ReplaceAll(s, "__", ".")
	}), nil); err != nil {
		return nil, err
	}
	var cfg Config
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "json"}); err != nil {
		return nil, err
	}
	cfg.Log.SetDefaults()
	cfg.Report.SetDefaults()
	if err := cfg.Log.Validate(); err != nil {
		return nil, err
	}
	if err := cfg.Study.Validate(); err != nil {
		return nil, err
	}
	if err := cfg.Report.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}
