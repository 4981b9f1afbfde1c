package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/eringen/pubfolio"
)

// config is the file/env configuration of the CLI.
type config struct {
	pubfolio.SiteConfig `mapstructure:",squash"`

	StaticDir string `mapstructure:"static_dir"`

	// file is the config file that was read, if any.
	file string
}

var defaults = map[string]any{
	"name":            "Blog",
	"url":             "http://localhost:3000",
	"description":     "",
	"author":          "",
	"addr":            ":3000",
	"posts_dir":       "content/blog",
	"pages_dir":       "content",
	"static_dir":      "public",
	"page_size":       5,
	"home_post_count": 3,
	"watch":           false,
	"watch_debounce":  "250ms",
	"code_style":      "onedark",
}

// loadConfig reads pubfolio.yaml (or path), then PUBFOLIO_* environment
// variables over defaults. A missing default config file is not an error;
// a missing explicit one is.
func loadConfig(path string) (config, error) {
	v := viper.New()
	for key, val := range defaults {
		v.SetDefault(key, val)
	}

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.AddConfigPath(".")
		v.SetConfigName("pubfolio")
		v.SetConfigType("yaml")
	}

	v.SetEnvPrefix("PUBFOLIO")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	var cfg config
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return cfg, fmt.Errorf("read config: %w", err)
		}
	}
	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, fmt.Errorf("decode config: %w", err)
	}
	cfg.file = v.ConfigFileUsed()
	return cfg, nil
}
