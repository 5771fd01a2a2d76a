package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/appecho/alpha/color"
	"github.com/appecho/alpha/icon"
	"github.com/appecho/alpha/media"
	"github.com/appecho/alpha/resolver"
	"github.com/appecho/alpha/style"
	"github.com/appecho/alpha/util"
	"github.com/mattn/go-isatty"
	"github.com/muesli/reflow/wordwrap"
)

func interactive() bool {
	fd := os.Stdin.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

func typeIcon(t media.Type) string {
	switch t {
	case media.Video:
		return icon.Get(icon.Video)
	case media.Audio:
		return icon.Get(icon.Audio)
	case media.Gallery:
		return icon.Get(icon.Gallery)
	default:
		return icon.Get(icon.Resolver)
	}
}

func printDescriptor(out io.Writer, d *media.Descriptor) {
	width := util.Min(util.TerminalWidth(80), 100)
	label := style.Fg(color.Blue)
	line := func(name, value string) {
		if value == "" {
			return
		}
		fmt.Fprintf(out, "  %s %s\n", label(fmt.Sprintf("%-12s", name)), value)
	}

	fmt.Fprintf(out, "%s %s %s %s\n", typeIcon(d.Type), style.Tag(color.Black, color.HiBlue)(string(d.Type)), style.Bold(d.Title), style.Faint("by "+d.Author))
	line("ID", d.ID)
	line("URL", d.URL)
	line("Cover", d.Cover)
	line("Duration", d.Duration)
	line("Resolver", d.Resolver)
	line("Subject", d.Subject)
	line("Created", d.Created().Format(time.DateTime))
	for i, img := range d.Images {
		line(fmt.Sprintf("Image %d", i+1), img)
	}
	if d.Description != "" {
		fmt.Fprintln(out)
		for _, l := range strings.Split(wordwrap.String(d.Description, width-4), "\n") {
			fmt.Fprintln(out, "  "+style.Faint(l))
		}
	}
}

func printResolver(out io.Writer, r *resolver.Config) {
	label := style.Fg(color.Purple)
	line := func(name, value string) {
		fmt.Fprintf(out, "%s %s\n", label(fmt.Sprintf("%-9s", name+":")), value)
	}

	line("ID", r.ID)
	line("Name", r.Name)
	line("Type", fmt.Sprintf("%s (%s)", r.Type, media.NormalizeType(r.Type)))
	line("URL", r.Endpoint)
	line("Icon", r.Icon)
	line("Timeout", fmt.Sprintf("%dms", r.Timeout))
	for _, p := range r.Params {
		line("Header", fmt.Sprintf("%s: %s", p.Key, p.Value))
	}
	line("Mapping", r.Mapping)
}
