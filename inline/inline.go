// Package inline runs an analysis without prompts and prints the outcome.
package inline

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/appecho/alpha/download"
	"github.com/appecho/alpha/engine"
	"github.com/appecho/alpha/history"
	"github.com/appecho/alpha/log"
	"github.com/appecho/alpha/media"
	"github.com/appecho/alpha/query"
	"github.com/samber/lo"
)

// ErrNoResult is returned in text mode when no resolver produced a descriptor.
var ErrNoResult = errors.New("no result")

func Run(ctx context.Context, options *Options) error {
	if options.Out == nil {
		options.Out = os.Stdout
	}
	if len(options.Resolvers) == 0 {
		return errors.New("no resolvers to run")
	}

	if err := query.Remember(options.Subject); err != nil {
		log.Warnf("failed to remember subject: %v", err)
	}

	outcomes := options.Analyzer.AnalyzeAll(ctx, options.Resolvers, options.Subject, options.Concurrency)

	found := lo.FilterMap(outcomes, func(o engine.Outcome, _ int) (*media.Descriptor, bool) {
		return o.Descriptor, o.Descriptor != nil
	})
	if options.Picker.IsPresent() {
		found = options.Picker.MustGet()(found)
	}

	if options.Save && len(found) > 0 {
		if err := history.Save(found...); err != nil {
			return fmt.Errorf("save results: %w", err)
		}
	}

	files := make(map[string][]string)
	if opts, ok := options.Download.Get(); ok {
		for _, d := range found {
			paths, err := download.Descriptor(ctx, d, opts)
			if err != nil {
				return fmt.Errorf("download %s: %w", d, err)
			}
			files[d.ID] = paths
		}
	}

	if options.Json {
		return writeJson(options.Out, options.Subject, outcomes, files)
	}

	if options.Report != nil {
		report(options.Report, outcomes)
	}

	if len(found) == 0 {
		return ErrNoResult
	}

	for _, d := range found {
		for _, u := range d.Downloadables() {
			fmt.Fprintln(options.Out, u)
		}
		for _, p := range files[d.ID] {
			fmt.Fprintln(options.Out, p)
		}
	}

	return nil
}
