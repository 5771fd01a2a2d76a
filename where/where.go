// Package where implements a cross-platform resolver for application-specific filesystem paths.
package where

import (
	"os"
	"path/filepath"

	"github.com/appecho/alpha/constant"
	"github.com/appecho/alpha/filesystem"
	"github.com/appecho/alpha/key"
	"github.com/samber/lo"
	"github.com/spf13/viper"
)

// EnvConfigPath is the environment variable used to override the default configuration directory.
const EnvConfigPath = "ALPHA_CONFIG_PATH"

func ensureDir(path string) string {
	lo.Must0(filesystem.API().MkdirAll(path, os.ModePerm))
	return path
}

// Config resolves the primary configuration directory.
// ALPHA_CONFIG_PATH takes precedence over the platform default.
func Config() string {
	if custom, ok := os.LookupEnv(EnvConfigPath); ok {
		return ensureDir(custom)
	}

	base := lo.Must(os.UserConfigDir())
	return ensureDir(filepath.Join(base, constant.Alpha))
}

// Cache resolves the persistent cache directory.
func Cache() string {
	base, err := os.UserCacheDir()
	if err != nil {
		base = filepath.Join(".", "cache")
	}
	return ensureDir(filepath.Join(base, constant.Alpha))
}

// Logs resolves the directory used for diagnostic logs.
func Logs() string {
	return ensureDir(filepath.Join(Config(), "logs"))
}

// Resolvers resolves the persisted resolver list.
func Resolvers() string {
	return filepath.Join(Config(), "resolvers.json")
}

// Results resolves the persisted result history.
func Results() string {
	return filepath.Join(Config(), "results.json")
}

// Subjects resolves the recently analysed subject URLs.
func Subjects() string {
	return filepath.Join(Cache(), "subjects.json")
}

// Downloads resolves the root directory for downloaded media.
// downloads.path wins when set.
func Downloads() string {
	if custom := viper.GetString(key.DownloadsPath); custom != "" {
		return ensureDir(custom)
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return ensureDir(filepath.Join(Cache(), "downloads"))
	}
	return ensureDir(filepath.Join(home, "Downloads", constant.Alpha))
}

// Temp resolves a directory for transient artifacts.
func Temp() string {
	return ensureDir(filepath.Join(os.TempDir(), constant.Alpha))
}
