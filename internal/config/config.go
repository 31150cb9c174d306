// Copyright (c) 2026 Bookmycook Team
// Bookmycook - sign-in flow
// This source code is licensed under the MIT license found in the LICENSE file.

// Package config loads the application settings from defaults, bookmycook.yaml,
// BOOKMYCOOK_* environment variables and command line flags, in that order of
// precedence (lowest first).
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/bookmycook/bookmycook/core/codeinput"
	"github.com/goccy/go-yaml"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/text/language"
)

// ErrInvalidConfig wraps every Validate failure.
var ErrInvalidConfig = errors.New("invalid configuration")

type Config struct {
	Language string     `mapstructure:"language" yaml:"language"`
	Code     CodeConfig `mapstructure:"code" yaml:"code"`
	Log      LogConfig  `mapstructure:"log" yaml:"log"`
}

type CodeConfig struct {
	Length  int    `mapstructure:"length" yaml:"length"`
	Charset string `mapstructure:"charset" yaml:"charset"`
}

type LogConfig struct {
	Level string `mapstructure:"level" yaml:"level"`
	File  string `mapstructure:"file" yaml:"file,omitempty"`
}

// Defaults are keyed the way viper addresses nested values.
var Defaults = map[string]any{
	"language":     "en",
	"code.length":  6,
	"code.charset": "digits",
	"log.level":    "info",
	"log.file":     "",
}

// CharClass resolves the configured charset.
func (c CodeConfig) CharClass() (codeinput.CharClass, error) {
	return codeinput.CharClassByName(c.Charset)
}

func (c Config) Validate() error {
	if c.Code.Length < 1 {
		return fmt.Errorf("%w: code.length must be at least 1, got %d", ErrInvalidConfig, c.Code.Length)
	}
	if _, err := c.Code.CharClass(); err != nil {
		return fmt.Errorf("%w: code.charset: %v", ErrInvalidConfig, err)
	}
	if _, err := language.Parse(c.Language); err != nil {
		return fmt.Errorf("%w: language %q: %v", ErrInvalidConfig, c.Language, err)
	}
	return nil
}

// Path returns the location of bookmycook.yaml for the current user or, with
// system set, for the whole machine.
func Path(system bool) (string, error) {
	var configDir string

	if system {
		switch runtime.GOOS {
		case "windows":
			configDir = filepath.Join(os.Getenv("ProgramData"), "Bookmycook")
		default:
			configDir = "/etc/bookmycook"
		}
	} else {
		dir, err := os.UserConfigDir()
		if err != nil {
			return "", fmt.Errorf("could not get user config directory: %w", err)
		}
		configDir = filepath.Join(dir, "bookmycook")
	}

	return filepath.Join(configDir, "bookmycook.yaml"), nil
}

// LoadConfig reads the configuration. configFile, when set, replaces the
// search of the standard locations. The returned path is the configuration
// file that was read, empty when running on defaults.
func LoadConfig(cmd *cobra.Command, configFile string) (Config, string, error) {
	var c Config
	v := viper.New()

	for key, value := range Defaults {
		v.SetDefault(key, value)
	}

	v.SetConfigName("bookmycook")
	v.SetConfigType("yaml")
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		if userConfigPath, err := Path(false); err == nil {
			v.AddConfigPath(filepath.Dir(userConfigPath))
		}
		if systemConfigPath, err := Path(true); err == nil {
			v.AddConfigPath(filepath.Dir(systemConfigPath))
		}
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return c, "", fmt.Errorf("could not read config: %w", err)
		}
	}
	used := v.ConfigFileUsed()

	v.SetEnvPrefix("bookmycook")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if cmd != nil {
		if err := v.BindPFlags(cmd.Flags()); err != nil {
			return c, used, err
		}
	}

	if err := v.Unmarshal(&c); err != nil {
		return c, used, fmt.Errorf("could not decode config: %w", err)
	}
	return c, used, c.Validate()
}

// WriteConfigFile stores c at Path(system), creating the directory.
func WriteConfigFile(c *Config, system bool) (string, error) {
	path, err := Path(system)
	if err != nil {
		return "", err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return "", err
	}

	configDir := filepath.Dir(path)
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return "", fmt.Errorf("could not create config directory %s: %w", configDir, err)
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return "", err
	}
	return path, nil
}
