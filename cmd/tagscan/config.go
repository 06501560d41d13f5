package main

import (
	"errors"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"

	"github.com/hupe1980/tagscan"
)

// config is the optional TOML configuration for the CLI.
//
//	cache_path = "cache.bin"
type config struct {
	CachePath string `toml:"cache_path"`
}

// resolveCachePath picks the artifact path: flag, then config file, then
// the package default.
func resolveCachePath(cmd *cobra.Command) (string, error) {
	if path, _ := cmd.Flags().GetString("cache"); path != "" {
		return path, nil
	}

	cfgPath, _ := cmd.Flags().GetString("config")
	cfg, err := loadConfig(cfgPath)
	if err != nil {
		return "", err
	}
	if cfg.CachePath != "" {
		return cfg.CachePath, nil
	}

	return tagscan.DefaultCachePath, nil
}

func loadConfig(path string) (config, error) {
	explicit := path != ""
	if !explicit {
		path = "tagscan.toml"
	}

	var cfg config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		// A missing implicit config is fine; an unreadable explicit
		// one is not.
		if !explicit && errors.Is(err, os.ErrNotExist) {
			return config{}, nil
		}
		return config{}, err
	}
	return cfg, nil
}
