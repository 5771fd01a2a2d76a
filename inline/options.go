package inline

import (
	"context"
	"fmt"
	"io"
	"strconv"

	"github.com/appecho/alpha/download"
	"github.com/appecho/alpha/engine"
	"github.com/appecho/alpha/media"
	"github.com/appecho/alpha/resolver"
	"github.com/appecho/alpha/util"
	"github.com/samber/mo"
)

// Picker narrows the successful descriptors down to the ones acted upon.
type Picker func([]*media.Descriptor) []*media.Descriptor

// Analyzer runs resolvers against a subject.
type Analyzer interface {
	AnalyzeAll(ctx context.Context, configs []*resolver.Config, subject string, limit int) []engine.Outcome
}

type Options struct {
	Out io.Writer
	// Report receives a line per failed resolver in text mode. Nil disables it.
	Report      io.Writer
	Analyzer    Analyzer
	Resolvers   []*resolver.Config
	Subject     string
	Concurrency int
	Json        bool
	Save        bool
	Picker      mo.Option[Picker]
	Download    mo.Option[download.Options]
}

// ParsePicker understands "first", "last", "all" and a zero-based index.
func ParsePicker(description string) (Picker, error) {
	switch description {
	case "all":
		return func(ds []*media.Descriptor) []*media.Descriptor { return ds }, nil
	case "first":
		return func(ds []*media.Descriptor) []*media.Descriptor {
			if len(ds) == 0 {
				return ds
			}
			return ds[:1]
		}, nil
	case "last":
		return func(ds []*media.Descriptor) []*media.Descriptor {
			if len(ds) == 0 {
				return ds
			}
			return ds[len(ds)-1:]
		}, nil
	}

	idx, err := strconv.ParseUint(description, 10, 16)
	if err != nil {
		return nil, fmt.Errorf("invalid picker: %s", description)
	}

	return func(ds []*media.Descriptor) []*media.Descriptor {
		if len(ds) == 0 {
			return ds
		}
		i := util.Min(int(idx), len(ds)-1)
		return ds[i : i+1]
	}, nil
}
