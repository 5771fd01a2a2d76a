// Package engine runs resolvers against subject URLs.
//
// It is the only part of the analysis that does I/O: it fetches the resolver
// response and hands the parsed tree to the extractor.
package engine

import (
	"context"
	"errors"
	"fmt"

	"github.com/appecho/alpha/auth"
	"github.com/appecho/alpha/extract"
	"github.com/appecho/alpha/jsontree"
	"github.com/appecho/alpha/log"
	"github.com/appecho/alpha/media"
	"github.com/appecho/alpha/network"
	"github.com/appecho/alpha/resolver"
	"golang.org/x/sync/errgroup"
)

var (
	ErrFetch         = errors.New("fetch failed")
	ErrMalformedBody = errors.New("response is not valid json")
	ErrIncomplete    = errors.New("response lacks a title, an author or a media url")
)

// Fetcher performs a GET with ordered headers and returns the body.
type Fetcher interface {
	Fetch(ctx context.Context, url string, headers []network.Header) (string, error)
}

// Engine analyses subjects.
type Engine struct {
	Fetcher   Fetcher
	Assembler extract.Assembler
	// Secret resolves keyring-backed header values.
	Secret func(resolverID, header string) (string, error)
}

// New returns an engine using the configured network settings.
func New() *Engine {
	return &Engine{
		Fetcher:   network.Fetcher{Options: network.OptionsFromConfig()},
		Assembler: extract.DefaultAssembler,
		Secret:    auth.Secret,
	}
}

// Analyze fetches the resolver response for subject and extracts a descriptor.
// Every failure wraps one of ErrFetch, ErrMalformedBody or ErrIncomplete.
func (e *Engine) Analyze(ctx context.Context, config *resolver.Config, subject string) (*media.Descriptor, error) {
	logger := log.With(log.Fields{"resolver": config.Name, "subject": subject})

	if timeout := config.TimeoutDuration(); timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	body, err := e.Fetcher.Fetch(ctx, config.RequestURL(subject), e.headers(config))
	if err != nil {
		logger.WithError(err).Warn("fetch failed")
		return nil, fmt.Errorf("%w: %w", ErrFetch, err)
	}

	root, err := jsontree.Parse([]byte(body))
	if err != nil {
		logger.WithError(err).Warn("malformed response")
		return nil, fmt.Errorf("%s: %w", config.Name, ErrMalformedBody)
	}

	descriptor, ok := e.Assembler.Assemble(config, subject, root).Get()
	if !ok {
		logger.Warn("incomplete response")
		return nil, fmt.Errorf("%s: %w", config.Name, ErrIncomplete)
	}

	logger.WithField("id", descriptor.ID).Info("analysed")
	return descriptor, nil
}

func (e *Engine) headers(config *resolver.Config) []network.Header {
	headers := make([]network.Header, 0, len(config.Params))
	for _, p := range config.Params {
		value := p.Value
		if auth.IsRef(value) && e.Secret != nil {
			secret, err := e.Secret(config.ID, p.Key)
			if err != nil {
				log.With(log.Fields{"resolver": config.Name, "header": p.Key}).WithError(err).Warn("secret unavailable, header skipped")
				continue
			}
			value = secret
		}
		headers = append(headers, network.Header{Name: p.Key, Value: value})
	}
	return headers
}

// Outcome is the result of one resolver in AnalyzeAll.
type Outcome struct {
	Resolver   *resolver.Config
	Descriptor *media.Descriptor
	Err        error
}

// AnalyzeAll runs every resolver against subject, at most limit at a time.
// Outcomes keep the order of configs.
func (e *Engine) AnalyzeAll(ctx context.Context, configs []*resolver.Config, subject string, limit int) []Outcome {
	outcomes := make([]Outcome, len(configs))

	var g errgroup.Group
	if limit > 0 {
		g.SetLimit(limit)
	}

	for i, config := range configs {
		i, config := i, config
		g.Go(func() error {
			descriptor, err := e.Analyze(ctx, config, subject)
			outcomes[i] = Outcome{Resolver: config, Descriptor: descriptor, Err: err}
			return nil
		})
	}

	_ = g.Wait()
	return outcomes
}
