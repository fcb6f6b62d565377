package deepexn

import (
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

const (
	EnvNeverElideBacktraces = "DEEPEXN_NEVER_ELIDE_BACKTRACES"
	EnvExitCode             = "DEEPEXN_EXIT_CODE"
	EnvLogLevel             = "DEEPEXN_LOG_LEVEL"
	EnvLogFile              = "DEEPEXN_LOG_FILE"
)

type Config struct {
	NeverElideBacktraces bool      `yaml:"never_elide_backtraces"`
	ExitCode             int       `yaml:"exit_code"`
	Log                  LogConfig `yaml:"log"`
}

type LogConfig struct {
	Level string `yaml:"level"`
	// File enables the rotated JSON log when set.
	File                string `yaml:"file"`
	MaxSizeMB           int    `yaml:"max_size_mb"`
	MaxAgeDays          int    `yaml:"max_age_days"`
	MaxBackups          int    `yaml:"max_backups"`
	Compress            bool   `yaml:"compress"`
	WarnOnForeignErrors bool   `yaml:"warn_on_foreign_errors"`
}

func DefaultConfig() Config {
	return Config{
		ExitCode: 1,
		Log: LogConfig{
			Level:      "info",
			MaxSizeMB:  100,
			MaxAgeDays: 30,
			Compress:   true,
		},
	}
}

// LoadConfig reads the YAML file at path, if any, on top of the defaults and
// then applies environment overrides.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, Reraisef(err, "reading config %s", path)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, Reraisef(err, "parsing config %s", path)
		}
	}
	if err := cfg.applyEnv(); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() error {
	if v, ok := os.LookupEnv(EnvNeverElideBacktraces); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return Ofn("invalid environment variable", "name", EnvNeverElideBacktraces, "value", v)
		}
		c.NeverElideBacktraces = b
	}
	if v, ok := os.LookupEnv(EnvExitCode); ok {
		code, err := strconv.Atoi(v)
		if err != nil {
			return Ofn("invalid environment variable", "name", EnvExitCode, "value", v)
		}
		c.ExitCode = code
	}
	if v, ok := os.LookupEnv(EnvLogLevel); ok {
		c.Log.Level = v
	}
	if v, ok := os.LookupEnv(EnvLogFile); ok {
		c.Log.File = v
	}
	return nil
}

func (c Config) Validate() error {
	if c.ExitCode == 0 {
		return Ofn("exit code must be non-zero", "exit_code", c.ExitCode)
	}
	if _, ok := parseLogLevel(c.Log.Level); !ok {
		return Ofn("unknown log level", "level", c.Log.Level)
	}
	return nil
}

func (c Config) RenderOptions() RenderOptions {
	return RenderOptions{NeverElideBacktraces: c.NeverElideBacktraces}
}
