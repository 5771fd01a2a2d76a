// Package util holds small helpers shared by the commands.
package util

import (
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/appecho/alpha/filesystem"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"golang.org/x/exp/constraints"
	"golang.org/x/term"
)

var (
	invalidFilenameChars = regexp.MustCompile(`[\\/<>:;"'|?!*{}#%&^+,~\s]`)
	repeatedUnderscores  = regexp.MustCompile(`__+`)
	edgeSeparators       = regexp.MustCompile(`^[_\-.]+|[_\-.]+$`)
)

// SanitizeFilename normalizes a string into a safe, cross-platform filename.
func SanitizeFilename(filename string) string {
	filename = invalidFilenameChars.ReplaceAllString(filename, "_")
	filename = repeatedUnderscores.ReplaceAllString(filename, "_")
	return edgeSeparators.ReplaceAllString(filename, "")
}

// Quantify returns a pluralized string representation of a count.
func Quantify(count int, singular, plural string) string {
	if count == 1 {
		return fmt.Sprintf("%d %s", count, singular)
	}
	return fmt.Sprintf("%d %s", count, plural)
}

// TerminalWidth returns the width of stdout, or fallback when stdout is not a terminal.
func TerminalWidth(fallback int) int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return fallback
	}
	return width
}

// PrintErasable shows msg on stderr until the returned func is called.
// Nothing is printed when stderr is not a terminal.
func PrintErasable(msg string) (eraser func()) {
	if !isatty.IsTerminal(os.Stderr.Fd()) {
		return func() {}
	}

	fmt.Fprintf(os.Stderr, "\r%s", msg)
	return func() {
		fmt.Fprintf(os.Stderr, "\r%s\r", strings.Repeat(" ", lipgloss.Width(msg)))
	}
}

// Max returns the largest item, or the zero value when there are none.
func Max[T constraints.Ordered](items ...T) T {
	return extreme(items, func(a, b T) bool { return a > b })
}

// Min returns the smallest item, or the zero value when there are none.
func Min[T constraints.Ordered](items ...T) T {
	return extreme(items, func(a, b T) bool { return a < b })
}

func extreme[T any](items []T, better func(a, b T) bool) (best T) {
	for i, item := range items {
		if i == 0 || better(item, best) {
			best = item
		}
	}
	return
}

// Delete recursively removes a file or directory using the virtualized filesystem API.
func Delete(path string) error {
	fs := filesystem.API()
	stat, err := fs.Stat(path)
	if err != nil {
		return err
	}

	if stat.IsDir() {
		return fs.RemoveAll(path)
	}
	return fs.Remove(path)
}
