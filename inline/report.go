package inline

import (
	"errors"
	"fmt"
	"io"

	"github.com/appecho/alpha/color"
	"github.com/appecho/alpha/engine"
	"github.com/appecho/alpha/icon"
	"github.com/appecho/alpha/network"
	"github.com/appecho/alpha/style"
)

// report writes one line per failed resolver.
func report(w io.Writer, outcomes []engine.Outcome) {
	for _, o := range outcomes {
		if o.Err == nil {
			continue
		}

		reason := style.Faint(o.Err.Error())
		var httpErr *network.HTTPError
		if errors.As(o.Err, &httpErr) {
			reason = style.Fg(color.ForStatus(httpErr.StatusCode))(httpErr.Status)
		}

		fmt.Fprintf(w, "%s %s %s\n", style.Fg(color.Red)(icon.Get(icon.Fail)), style.Bold(o.Resolver.Name), reason)
	}
}
