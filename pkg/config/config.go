// Package config loads configuration through viper.
package config

import (
	"strings"

	"github.com/mitchellh/go-homedir"
	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

type option struct {
	cfg        string
	name       string
	envPrefix  string
	configType string
	defaults   map[string]interface{}
}

type Option func(*option)

func WithConfigFile(cfg string) Option {
	return func(o *option) {
		o.cfg = cfg
	}
}

func WithConfigType(configType string) Option {
	return func(o *option) {
		o.configType = configType
	}
}

func WithName(name string) Option {
	return func(o *option) {
		o.name = name
	}
}

func WithEnvPrefix(envPrefix string) Option {
	return func(o *option) {
		o.envPrefix = envPrefix
	}
}

// WithDefaults sets values used when neither the file nor the environment
// provide the key.
func WithDefaults(defaults map[string]interface{}) Option {
	return func(o *option) {
		o.defaults = defaults
	}
}

// LoadConfig reads the config file into v. A missing file is not an error
// when defaults are given, so the program can run on defaults and env alone.
func LoadConfig(v *viper.Viper, opts ...Option) error {
	o := &option{
		name:       ".syncpoint",
		envPrefix:  "syncpoint",
		configType: "yaml",
	}
	for _, opt := range opts {
		opt(o)
	}
	for key, value := range o.defaults {
		v.SetDefault(key, value)
	}
	if o.cfg != "" {
		// Use config file from the flag.
		v.SetConfigFile(o.cfg)
	} else {
		// Find home directory.
		home, err := homedir.Dir()
		if err != nil {
			return errors.WithStack(err)
		}
		v.AddConfigPath(home)
		v.SetConfigName(o.name)
	}
	v.SetConfigType(o.configType)

	v.SetEnvPrefix(o.envPrefix) // set environment variables prefix to avoid conflict
	// demo.workers is read from PREFIX_DEMO_WORKERS
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv() // read in environment variables that match

	err := v.ReadInConfig()
	if err == nil {
		return nil
	}
	var notFound viper.ConfigFileNotFoundError
	if len(o.defaults) > 0 && (errors.As(err, &notFound) || isNotExist(err)) {
		return nil
	}
	return errors.Wrap(err, "read config")
}
