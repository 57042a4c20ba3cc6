package main

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/BrandonKowalski/stickmap/pkg/stickmap/constants"
)

type config struct {
	Device     string
	Profile    string
	LogPath    string
	LogLevel   string
	Debug      bool
	Language   string
	InitialSet int
	Grab       bool
}

// loadConfig resolves settings from flags, STICKMAP_* environment variables
// and an optional config file, in that order of precedence.
func loadConfig(args []string) (config, error) {
	fs := pflag.NewFlagSet("stickmon", pflag.ContinueOnError)
	fs.String("device", "/dev/input/event0", "evdev device to read sticks from")
	fs.String("profile", "", "TOML profile to apply at startup")
	fs.String("config", "", "config file (toml, yaml or json)")
	fs.String("log-path", "", "also write logs to this file")
	fs.String("log-level", "info", "log level: debug, info, warn, error")
	fs.Bool("debug", false, "log engine internals")
	fs.String("lang", "", "label language, e.g. de")
	fs.Int("set", 0, "configuration set active at startup")
	fs.Bool("grab", false, "grab the device so other readers get no events")

	if err := fs.Parse(args); err != nil {
		return config{}, err
	}

	v := viper.New()
	v.SetEnvPrefix("STICKMAP")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if err := v.BindPFlags(fs); err != nil {
		return config{}, fmt.Errorf("bind flags: %w", err)
	}

	if path := v.GetString("config"); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return config{}, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	cfg := config{
		Device:     v.GetString("device"),
		Profile:    v.GetString("profile"),
		LogPath:    v.GetString("log-path"),
		LogLevel:   v.GetString("log-level"),
		Debug:      v.GetBool("debug"),
		Language:   v.GetString("lang"),
		InitialSet: v.GetInt("set"),
		Grab:       v.GetBool("grab"),
	}

	if cfg.InitialSet < 0 || cfg.InitialSet >= constants.MaxSets {
		return config{}, fmt.Errorf("set %d out of range 0..%d", cfg.InitialSet, constants.MaxSets-1)
	}

	return cfg, nil
}
