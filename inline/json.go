package inline

import (
	"encoding/json"
	"io"

	"github.com/appecho/alpha/engine"
	"github.com/appecho/alpha/media"
)

type Result struct {
	// Resolver is the name of the resolver.
	Resolver string            `json:"resolver"`
	Media    *media.Descriptor `json:"media,omitempty"`
	Error    string            `json:"error,omitempty"`
	// Files are the downloaded paths, if downloading was requested.
	Files []string `json:"files,omitempty"`
}

type Output struct {
	Subject string    `json:"subject"`
	Result  []*Result `json:"result"`
}

func asJson(subject string, outcomes []engine.Outcome, files map[string][]string) ([]byte, error) {
	result := make([]*Result, len(outcomes))
	for i, o := range outcomes {
		r := &Result{Resolver: o.Resolver.Name, Media: o.Descriptor}
		if o.Err != nil {
			r.Error = o.Err.Error()
		}
		if o.Descriptor != nil {
			r.Files = files[o.Descriptor.ID]
		}
		result[i] = r
	}

	return json.MarshalIndent(&Output{Subject: subject, Result: result}, "", "  ")
}

func writeJson(out io.Writer, subject string, outcomes []engine.Outcome, files map[string][]string) error {
	data, err := asJson(subject, outcomes, files)
	if err != nil {
		return err
	}
	_, err = out.Write(append(data, '\n'))
	return err
}
