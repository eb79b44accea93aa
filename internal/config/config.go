package config

import (
	"strings"
	"time"

	"github.com/go-faster/errors"
	"github.com/go-playground/validator/v10"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	// EnvPrefix is prepended to every environment variable, e.g. EKART_TRACE_EKART_URL.
	EnvPrefix = "EKART_TRACE"

	// DefaultUrl is the public Ekart tracking endpoint.
	DefaultUrl = "https://ekartlogistics.com/ws/getTrackingDetails"
)

// Config is the runtime configuration of the tracker.
type Config struct {
	// Environment selects the log encoder (development or production)
	Environment string `mapstructure:"environment" validate:"oneof=development production"`

	Log struct {
		// Level is the minimum log level
		Level string `mapstructure:"level" validate:"oneof=debug info warn error DEBUG INFO WARN ERROR"`
	} `mapstructure:"log"`

	Ekart struct {
		// Url is the tracking endpoint requests are POSTed to
		Url string `mapstructure:"url" validate:"required,url"`
		// Timeout bounds a single request; zero waits indefinitely
		Timeout time.Duration `mapstructure:"timeout" validate:"gte=0"`
	} `mapstructure:"ekart"`
}

// flagKeys maps command line flag names to config keys.
var flagKeys = map[string]string{
	"log-level": "log.level",
	"url":       "ekart.url",
	"timeout":   "ekart.timeout",
}

var validate = validator.New()

// Load reads the configuration. Sources, lowest precedence first: defaults,
// the YAML file at path (skipped when path is empty), EKART_TRACE_* variables,
// and any flags in flags that were set explicitly.
func Load(path string, flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	v.SetDefault("environment", "development")
	v.SetDefault("log.level", "info")
	v.SetDefault("ekart.url", DefaultUrl)
	v.SetDefault("ekart.timeout", time.Duration(0))

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Wrap(err, "read config file")
		}
	}

	if flags != nil {
		for name, key := range flagKeys {
			f := flags.Lookup(name)
			if f == nil || !f.Changed {
				continue
			}
			if err := v.BindPFlag(key, f); err != nil {
				return nil, errors.Wrapf(err, "bind flag %s", name)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "decode config")
	}
	if err := validate.Struct(&cfg); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &cfg, nil
}
