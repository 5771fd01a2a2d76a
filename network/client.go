// Package network provides the shared HTTP clients used to talk to resolvers.
package network

import (
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/appecho/alpha/constant"
	"github.com/appecho/alpha/key"
	"github.com/spf13/viper"
)

// Options shape a client. Clients are shared per distinct Options value.
type Options struct {
	ConnectTimeout time.Duration
	ReadTimeout    time.Duration
	// Fingerprint sends a browser TLS ClientHello instead of Go's.
	Fingerprint bool
	UserAgent   string
}

// OptionsFromConfig reads the network.* settings.
func OptionsFromConfig() Options {
	return Options{
		ConnectTimeout: time.Duration(viper.GetInt(key.NetworkConnectTimeout)) * time.Second,
		ReadTimeout:    time.Duration(viper.GetInt(key.NetworkReadTimeout)) * time.Second,
		Fingerprint:    viper.GetBool(key.NetworkFingerprint),
		UserAgent:      viper.GetString(key.NetworkUserAgent),
	}
}

func (o Options) userAgent() string {
	if o.UserAgent == "" {
		return constant.UserAgent
	}
	return o.UserAgent
}

var (
	clientsMu sync.Mutex
	clients   = make(map[Options]*http.Client)
)

// ClientFor returns the client for opts, creating it on first use.
func ClientFor(opts Options) *http.Client {
	clientsMu.Lock()
	defer clientsMu.Unlock()

	if c, ok := clients[opts]; ok {
		return c
	}

	var transport http.RoundTripper
	if opts.Fingerprint {
		transport = newFingerprintTransport(opts)
	} else {
		transport = newTransport(opts)
	}

	c := &http.Client{Transport: transport}
	clients[opts] = c
	return c
}

func (o Options) dialer() *net.Dialer {
	return &net.Dialer{Timeout: o.ConnectTimeout, KeepAlive: 30 * time.Second}
}

// newTransport clones the default transport with a wider pool and the configured timeouts.
func newTransport(opts Options) *http.Transport {
	t := http.DefaultTransport.(*http.Transport).Clone()
	t.DialContext = opts.dialer().DialContext
	t.MaxIdleConns = 100
	t.MaxIdleConnsPerHost = 100
	t.MaxConnsPerHost = 200
	t.IdleConnTimeout = 30 * time.Second
	t.TLSHandshakeTimeout = opts.ConnectTimeout
	t.ResponseHeaderTimeout = opts.ReadTimeout
	return t
}
