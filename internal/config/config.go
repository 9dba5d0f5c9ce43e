// Package config binds command line flags, environment variables and an
// optional config file into a single viper instance.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/zeebo/errs"
)

const (
	prefix = "RESULTS"

	ConfigFile = "config"
	LogLevel   = "log_level"
	Multiplier = "multiplier"

	defaultLogLevel   = "info"
	defaultMultiplier = 1
)

var Error = errs.Class("config")

type Config struct {
	v *viper.Viper
}

// Init reads configFile, or the file named by RESULTS_CONFIG when
// configFile is empty, and binds the flags of cmd so that a flag
// which was not set on the command line takes its value from the
// environment or the file.
func Init(cmd *cobra.Command, configFile string) (*Config, error) {
	v := viper.New()

	v.SetEnvPrefix(prefix)
	v.AutomaticEnv()

	v.SetDefault(LogLevel, defaultLogLevel)
	v.SetDefault(Multiplier, defaultMultiplier)

	if configFile == "" {
		configFile = v.GetString(ConfigFile)
	}

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, Error.New("fail to read config file %q: %v", configFile, err)
		}
	}

	if err := bindFlags(cmd, v); err != nil {
		return nil, err
	}

	return &Config{v: v}, nil
}

// bindFlags maps each flag to its viper key; dashes become underscores.
func bindFlags(cmd *cobra.Command, v *viper.Viper) error {
	var bindErr error

	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		key := strings.ReplaceAll(f.Name, "-", "_")
		if key == ConfigFile {
			return
		}

		if err := v.BindEnv(key, fmt.Sprintf("%s_%s", prefix, strings.ToUpper(key))); err != nil {
			bindErr = errs.Combine(bindErr, Error.Wrap(err))
			return
		}

		if !f.Changed && v.IsSet(key) {
			if err := cmd.Flags().Set(f.Name, fmt.Sprintf("%v", v.Get(key))); err != nil {
				bindErr = errs.Combine(bindErr, Error.New("flag %s: %v", f.Name, err))
			}
		} else if f.Changed {
			v.Set(key, f.Value.String())
		}
	})

	return bindErr
}

func (c *Config) LogLevel() string {
	return c.v.GetString(LogLevel)
}

func (c *Config) Multiplier() int {
	return c.v.GetInt(Multiplier)
}
