// Package config wires viper to the registry of defaults in this package.
package config

import (
	"errors"
	"path/filepath"
	"strings"

	"github.com/appecho/alpha/constant"
	"github.com/appecho/alpha/filesystem"
	"github.com/appecho/alpha/where"
	"github.com/spf13/viper"
)

const format = "toml"

// EnvKeyReplacer maps config keys to environment variable names.
var EnvKeyReplacer = strings.NewReplacer(".", "_")

// Path is the config file alpha reads and writes.
func Path() string {
	return filepath.Join(where.Config(), constant.Alpha+"."+format)
}

// Setup layers alpha.toml and ALPHA_* variables over the registered defaults.
// A missing file is not an error.
func Setup() error {
	viper.SetFs(filesystem.API())
	viper.SetConfigName(constant.Alpha)
	viper.SetConfigType(format)
	viper.AddConfigPath(where.Config())

	bindEnv()
	setDefaults()

	return read()
}

func bindEnv() {
	viper.SetEnvPrefix(constant.Alpha)
	viper.SetEnvKeyReplacer(EnvKeyReplacer)
	for _, k := range EnvExposed {
		viper.MustBindEnv(k)
	}
}

func setDefaults() {
	viper.SetTypeByDefaultValue(true)
	for k, f := range Default {
		viper.SetDefault(k, f.Value)
	}
}

func read() error {
	err := viper.ReadInConfig()

	var notFound viper.ConfigFileNotFoundError
	if errors.As(err, &notFound) {
		return nil
	}
	return err
}

// Save writes the current values to Path, creating the file on first use.
func Save() error {
	err := viper.WriteConfig()

	var notFound viper.ConfigFileNotFoundError
	if errors.As(err, &notFound) {
		return viper.SafeWriteConfigAs(Path())
	}
	return err
}
