// Copyright 2024 The Inspektor Gadget authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package config maps a config file and TABLESORT_* environment variables onto command line flags.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cast"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	EnvPrefix  = "TABLESORT"
	configName = "config"
	configType = "yaml"
)

// Config holds the viper instance flags are read from
type Config struct {
	v    *viper.Viper
	path string
}

// New returns a Config that looks for config.yaml in the user's config directory
func New() *Config {
	v := viper.New()
	v.SetConfigName(configName)
	v.SetConfigType(configType)
	if dir, err := os.UserConfigDir(); err == nil {
		v.AddConfigPath(filepath.Join(dir, "tablesort"))
	}
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	return &Config{v: v}
}

// AddConfigFlag adds the --config flag to the command
func (c *Config) AddConfigFlag(cmd *cobra.Command) {
	cmd.PersistentFlags().StringVar(&c.path, "config", "", "config file to use")
}

// SetPath sets the config file to read; an empty path searches the default locations
func (c *Config) SetPath(path string) {
	c.path = path
}

// Viper returns the underlying viper instance
func (c *Config) Viper() *viper.Viper {
	return c.v
}

// Init reads the config file and sets all flags of flags that were not given on the command line
func (c *Config) Init(flags *pflag.FlagSet) error {
	if c.path != "" {
		c.v.SetConfigFile(c.path)
	}

	// a missing config file is only an error if it was given explicitly
	if err := c.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if c.path != "" || !errors.As(err, &notFound) {
			return fmt.Errorf("reading config: %w", err)
		}
	}

	var flagErr error
	flags.VisitAll(func(f *pflag.Flag) {
		if f.Name == "config" {
			return
		}
		if err := c.setFlagFromConfig(f, f.Name); err != nil {
			flagErr = errors.Join(flagErr, err)
		}
	})
	return flagErr
}

// setFlagFromConfig sets the flag from the config based on the config key if the flag is not changed
// The precedence order (coming from viper): flag > env > config > default
func (c *Config) setFlagFromConfig(f *pflag.Flag, k string) error {
	if err := c.v.BindEnv(k); err != nil {
		return fmt.Errorf("binding env var %s: %w", k, err)
	}

	if f.Changed || !c.v.IsSet(k) {
		return nil
	}

	raw := c.v.Get(k)
	if sv, ok := f.Value.(pflag.SliceValue); ok {
		if _, isString := raw.(string); !isString {
			vals, err := cast.ToStringSliceE(raw)
			if err != nil {
				return fmt.Errorf("setting flag %s: %w", f.Name, err)
			}
			if err := sv.Replace(vals); err != nil {
				return fmt.Errorf("setting flag %s: %w", f.Name, err)
			}
			return nil
		}
	}

	val, err := cast.ToStringE(raw)
	if err != nil {
		return fmt.Errorf("setting flag %s: %w", f.Name, err)
	}
	if val == f.DefValue {
		return nil
	}
	if err := f.Value.Set(val); err != nil {
		return fmt.Errorf("setting flag %s: %w", f.Name, err)
	}
	return nil
}
