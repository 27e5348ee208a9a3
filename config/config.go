package config

import (
	"fmt"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

const (
	JournalFormatText = "text"
	JournalFormatCSV  = "csv"
)

type Config struct {
	LogLevel      string `yaml:"log_level" env:"INODEFS_LOG_LEVEL" env-default:"info"`
	LogFormat     string `yaml:"log_format" env:"INODEFS_LOG_FORMAT" env-default:"pretty"`
	JournalFormat string `yaml:"journal_format" env:"INODEFS_JOURNAL_FORMAT" env-default:"text"`
	NoColor       bool   `yaml:"no_color" env:"INODEFS_NO_COLOR"`
}

// Load reads the configuration. With an empty path only the environment is
// consulted; otherwise the YAML file is read first and the environment
// overrides it.
func Load(configPath string) (*Config, error) {
	var cfg Config

	if configPath == "" {
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("cannot read config from environment: %w", err)
		}
	} else {
		// check if file exists
		if _, err := os.Stat(configPath); os.IsNotExist(err) {
			return nil, fmt.Errorf("config file does not exist: %s", configPath)
		}
		if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
			return nil, fmt.Errorf("cannot read config %s: %w", configPath, err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func MustLoad(configPath string) *Config {
	cfg, err := Load(configPath)
	if err != nil {
		panic(err.Error())
	}
	return cfg
}

func (cfg *Config) Validate() error {
	switch cfg.JournalFormat {
	case JournalFormatText, JournalFormatCSV:
	default:
		return fmt.Errorf("invalid journal_format %q", cfg.JournalFormat)
	}
	return nil
}
