// Package config loads gocube-solver settings from config.yaml.
package config

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/spf13/viper"
)

const (
	configFileName = "config"
	configFileType = "yaml"

	KeyDBPath         = "db_path"
	KeyVerbosity      = "verbosity"
	KeyScrambleLength = "scramble_length"
	KeyColor          = "color"
	KeySimplify       = "simplify"

	defaultDBFile         = "solves.db"
	defaultScrambleLength = 25
)

// Config holds the resolved settings.
type Config struct {
	DBPath         string
	Verbosity      int
	ScrambleLength int
	Color          bool
	Simplify       bool
}

// Load reads config.yaml from dir. A missing file is not an error; every
// key then takes its default. The returned viper instance lets callers bind
// flags that override file values.
func Load(dir string) (*viper.Viper, error) {
	v := viper.New()
	v.SetDefault(KeyDBPath, filepath.Join(dir, defaultDBFile))
	v.SetDefault(KeyVerbosity, 0)
	v.SetDefault(KeyScrambleLength, defaultScrambleLength)
	v.SetDefault(KeyColor, true)
	v.SetDefault(KeySimplify, true)

	v.SetConfigName(configFileName)
	v.SetConfigType(configFileType)
	v.AddConfigPath(dir)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return v, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}

	return v, nil
}

// FromViper resolves the typed settings.
func FromViper(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		DBPath:         v.GetString(KeyDBPath),
		Verbosity:      v.GetInt(KeyVerbosity),
		ScrambleLength: v.GetInt(KeyScrambleLength),
		Color:          v.GetBool(KeyColor),
		Simplify:       v.GetBool(KeySimplify),
	}
	if cfg.ScrambleLength < 0 {
		return nil, fmt.Errorf("%s must not be negative, got %d", KeyScrambleLength, cfg.ScrambleLength)
	}
	if cfg.DBPath == "" {
		return nil, fmt.Errorf("%s must not be empty", KeyDBPath)
	}
	return cfg, nil
}
