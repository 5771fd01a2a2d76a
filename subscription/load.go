package subscription

import (
	"context"
	"strings"
	"time"

	"github.com/appecho/alpha/filesystem"
	"github.com/appecho/alpha/key"
	"github.com/appecho/alpha/log"
	"github.com/appecho/alpha/network"
	"github.com/appecho/alpha/resolver"
	"github.com/spf13/viper"
)

// Fetch downloads and parses a subscription document.
func Fetch(ctx context.Context, url string) ([]*resolver.Config, error) {
	timeout := time.Duration(viper.GetInt(key.SubscriptionTimeout)) * time.Second

	opts := network.OptionsFromConfig()
	opts.ConnectTimeout = timeout
	opts.ReadTimeout = timeout

	log.Infof("fetching subscription %s", url)
	body, err := network.Fetch(ctx, url, nil, opts)
	if err != nil {
		return nil, err
	}

	return Parse([]byte(body))
}

// Load reads a subscription from an http(s) URL or a local file.
func Load(ctx context.Context, source string) ([]*resolver.Config, error) {
	if strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://") {
		return Fetch(ctx, source)
	}

	data, err := filesystem.API().ReadFile(source)
	if err != nil {
		return nil, err
	}

	return Parse(data)
}
