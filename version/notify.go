package version

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/appecho/alpha/color"
	"github.com/appecho/alpha/constant"
	"github.com/appecho/alpha/icon"
	"github.com/appecho/alpha/key"
	"github.com/appecho/alpha/style"
	"github.com/appecho/alpha/util"
	"github.com/muesli/reflow/wordwrap"
	"github.com/spf13/viper"
)

// Notify prints a notice to stderr when the manifest announces a newer version.
func Notify() {
	if !viper.GetBool(key.CliVersionCheck) || viper.GetString(key.UpdateURL) == "" {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	erase := util.PrintErasable(icon.Get(icon.Progress) + " Checking for a new version...")
	manifest, err := Latest(ctx)
	erase()
	if err != nil {
		return
	}

	writeNotice(os.Stderr, manifest, constant.Version)
}

// writeNotice describes m when it is newer than current and reports whether it did.
func writeNotice(w io.Writer, m *Manifest, current string) bool {
	if Compare(m.Version, current) <= 0 {
		return false
	}

	var b strings.Builder
	fmt.Fprintf(&b, "\n%s %s %s\n",
		style.Fg(color.Green)(icon.Get(icon.Success)),
		style.Bold("alpha "+m.Version+" is available"),
		style.Faint("(you have "+current+")"),
	)
	if m.Description != "" {
		for _, line := range strings.Split(wordwrap.String(m.Description, util.Min(util.TerminalWidth(80), 80)-2), "\n") {
			b.WriteString("  " + line + "\n")
		}
	}
	if m.URL != "" {
		b.WriteString("  " + style.Faint(m.URL) + "\n")
	}

	_, _ = io.WriteString(w, b.String()+"\n")
	return true
}
