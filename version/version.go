// Package version checks an update manifest for a newer release.
package version

import (
	"context"
	"encoding/json"
	"errors"
	"path/filepath"
	"strings"
	"time"

	"github.com/appecho/alpha/filesystem"
	"github.com/appecho/alpha/key"
	"github.com/appecho/alpha/network"
	"github.com/appecho/alpha/where"
	"github.com/spf13/viper"
)

// ErrDisabled is returned when no update manifest is configured.
var ErrDisabled = errors.New("update checks are disabled, set update.url")

// Manifest describes the latest release.
type Manifest struct {
	Version     string `json:"version"`
	Description string `json:"description"`
	Img         string `json:"img,omitempty"`
	Video       string `json:"video,omitempty"`
	URL         string `json:"url"`
}

var cache = filesystem.Store[*Manifest](func() string {
	return filepath.Join(where.Cache(), "version.json")
}, 2*24*time.Hour)

// Latest returns the manifest at update.url. It is cached for two days.
func Latest(ctx context.Context) (*Manifest, error) {
	manifestURL := viper.GetString(key.UpdateURL)
	if manifestURL == "" {
		return nil, ErrDisabled
	}

	cached, expired, err := cache().Get()
	if err == nil && !expired && cached != nil && cached.Version != "" {
		return cached, nil
	}

	opts := network.OptionsFromConfig()
	opts.ConnectTimeout = 15 * time.Second
	opts.ReadTimeout = 15 * time.Second

	body, err := network.Fetch(ctx, manifestURL, nil, opts)
	if err != nil {
		return nil, err
	}

	var manifest Manifest
	if err := json.Unmarshal([]byte(body), &manifest); err != nil {
		return nil, err
	}
	if manifest.Version == "" {
		return nil, errors.New("update manifest has no version")
	}

	// manifests are often hand-written with literal \n sequences
	manifest.Description = strings.ReplaceAll(manifest.Description, `\n`, "\n")

	_ = cache().Set(&manifest)
	return &manifest, nil
}
