// Package config loads unicon's settings from unicon.toml in the config directory and from UNICON_* environment variables.
//
// Every key is declared in the key package and registered with a default and a description in Default.
// Environment variables take the key with dots replaced by underscores, so output.precision is read from UNICON_OUTPUT_PRECISION.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/laserpy/unicon/constant"
	"github.com/laserpy/unicon/filesystem"
	"github.com/laserpy/unicon/key"
	"github.com/laserpy/unicon/where"
	"github.com/spf13/viper"
)

// maxPrecision is the number of significant digits beyond which a float64 gains nothing.
const maxPrecision = 17

// EnvKeyReplacer maps a dotted key to the suffix of its UNICON_ environment variable.
var EnvKeyReplacer = strings.NewReplacer(".", "_")

// Setup registers defaults and environment bindings, then reads unicon.toml if one exists.
// A missing file is not an error. A present but malformed file, or an out of range value, is.
func Setup() error {
	viper.SetConfigName(constant.App)
	viper.SetConfigType("toml")
	viper.SetFs(filesystem.API())
	viper.AddConfigPath(where.Config())

	viper.SetEnvPrefix(constant.App)
	viper.SetEnvKeyReplacer(EnvKeyReplacer)
	for _, env := range EnvExposed {
		viper.MustBindEnv(env)
	}

	viper.SetTypeByDefaultValue(true)
	for name, field := range Default {
		viper.SetDefault(name, field.Value)
	}

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("read %s config: %w", constant.App, err)
		}
	}

	return validate()
}

func validate() error {
	if p := viper.GetInt(key.OutputPrecision); p < -1 || p > maxPrecision {
		return fmt.Errorf("%s must be between -1 and %d, got %d", key.OutputPrecision, maxPrecision, p)
	}

	return nil
}
