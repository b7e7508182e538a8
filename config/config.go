// Package config holds the settings of the syncdemo command.
package config

import (
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/spf13/viper"

	"syncpoint/pkg/config"
	"syncpoint/pkg/validator"
)

// Settings is the typed view of the loaded configuration. Parallel bounds
// the workers running at once, 0 means all of them. FailAnonymous makes that
// many anonymous blocks panic, to show the recovery path.
type Settings struct {
	ServiceName   string `validate:"required"`
	LogLevel      string `validate:"omitempty,oneof=debug info warn error"`
	LogConsole    bool
	LogPath       string
	Workers       int    `validate:"min=1,max=1024"`
	Parallel      int    `validate:"min=0"`
	Rounds        int    `validate:"min=1"`
	Point         string `validate:"point_name"`
	Metrics       bool
	FailAnonymous int `validate:"min=0,ltefield=Workers"`
}

var defaults = map[string]interface{}{
	"service.name":        "syncdemo",
	"log.level":           "info",
	"log.console":         true,
	"log.path":            "",
	"demo.workers":        5,
	"demo.parallel":       0,
	"demo.rounds":         100,
	"demo.point":          "COUNTER",
	"demo.metrics":        true,
	"demo.fail_anonymous": 0,
}

// LoadConfig reads path (or ~/.syncdemo.yaml when empty), the SYNCPOINT_*
// environment, e.g. SYNCPOINT_DEMO_WORKERS, and the defaults, then validates
// the result.
func LoadConfig(path string) (*Settings, error) {
	v := viper.New()
	opts := []config.Option{
		config.WithDefaults(defaults),
		config.WithName(".syncdemo"),
		config.WithConfigType("yaml"),
		config.WithEnvPrefix("syncpoint"),
	}
	if path != "" {
		absPath, err := filepath.Abs(path)
		if err != nil {
			return nil, err
		}
		opts = append(opts, config.WithConfigFile(absPath))
	}
	if err := config.LoadConfig(v, opts...); err != nil {
		return nil, err
	}
	settings := &Settings{
		ServiceName:   v.GetString("service.name"),
		LogLevel:      v.GetString("log.level"),
		LogConsole:    v.GetBool("log.console"),
		LogPath:       v.GetString("log.path"),
		Workers:       v.GetInt("demo.workers"),
		Parallel:      v.GetInt("demo.parallel"),
		Rounds:        v.GetInt("demo.rounds"),
		Point:         v.GetString("demo.point"),
		Metrics:       v.GetBool("demo.metrics"),
		FailAnonymous: v.GetInt("demo.fail_anonymous"),
	}
	validate, err := validator.New()
	if err != nil {
		return nil, err
	}
	if err = validate.ValidateStruct(settings); err != nil {
		return nil, errors.Wrap(err, "invalid settings")
	}
	return settings, nil
}
