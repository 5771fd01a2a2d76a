// Package resolver holds resolver configurations and their on-disk registry.
//
// A resolver is a remote JSON endpoint plus a mapping that tells the extractor
// where the title, author, media URL and friends live in its response.
package resolver

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/appecho/alpha/constant"
	"github.com/google/uuid"
)

// DefaultTimeout is the request budget, in milliseconds, of a resolver that declares none.
const DefaultTimeout = 5000

// Param is one request header. Params are sent in order.
type Param struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// Config describes a single resolver.
type Config struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Icon     string `json:"icon"`
	Endpoint string `json:"url"`
	Type     string `json:"type"`
	// Mapping is a JSON object of "dot.path": "${placeholder}" pairs.
	Mapping string `json:"mapping"`
	// Timeout in milliseconds. Zero or less means unbounded.
	Timeout int     `json:"timeout"`
	Params  []Param `json:"params"`
}

// New returns a resolver with a fresh ID and the default timeout.
func New(name, endpoint, kind, mapping string) *Config {
	return &Config{
		ID:       uuid.NewString(),
		Name:     name,
		Endpoint: endpoint,
		Type:     kind,
		Mapping:  mapping,
		Timeout:  DefaultTimeout,
	}
}

func (c *Config) String() string {
	return c.Name
}

// RequestURL substitutes the subject into the endpoint template verbatim.
func (c *Config) RequestURL(subject string) string {
	return strings.ReplaceAll(c.Endpoint, constant.SubjectToken, subject)
}

// TimeoutDuration converts Timeout to a duration, zero when unbounded.
func (c *Config) TimeoutDuration() time.Duration {
	if c.Timeout <= 0 {
		return 0
	}
	return time.Duration(c.Timeout) * time.Millisecond
}

// Header returns the value of the first param named key, case-insensitively.
func (c *Config) Header(key string) (string, bool) {
	for _, p := range c.Params {
		if strings.EqualFold(p.Key, key) {
			return p.Value, true
		}
	}
	return "", false
}

var (
	ErrNoName     = errors.New("resolver name is empty")
	ErrNoEndpoint = errors.New("resolver url is empty")
)

// Validate checks what a hand-written resolver needs to be usable.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Name) == "" {
		return ErrNoName
	}

	endpoint := strings.TrimSpace(c.Endpoint)
	if endpoint == "" {
		return ErrNoEndpoint
	}
	if !strings.HasPrefix(endpoint, "http://") && !strings.HasPrefix(endpoint, "https://") {
		return fmt.Errorf("resolver url %q must start with http:// or https://", endpoint)
	}

	return nil
}
