// Package open hands URLs and files to the platform's default handler.
package open

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/appecho/alpha/constant"
)

// Start opens target with app, or with the default handler when app is empty.
// It does not wait for the handler to exit.
func Start(target, app string) error {
	cmd, err := Command(runtime.GOOS, target, app)
	if err != nil {
		return err
	}
	return cmd.Start()
}

// Command builds the launcher invocation for goos.
func Command(goos, target, app string) (*exec.Cmd, error) {
	if app != "" {
		switch goos {
		case constant.Windows:
			// start treats & as a command separator
			return exec.Command("cmd", "/C", "start", "", app, strings.ReplaceAll(target, "&", "^&")), nil
		case constant.Darwin:
			return exec.Command("open", "-a", app, target), nil
		case constant.Linux:
			return exec.Command(app, target), nil
		case constant.Android:
			return exec.Command("termux-open", "--choose", target), nil
		}
	} else {
		switch goos {
		case constant.Windows:
			rundll := filepath.Join(os.Getenv("SYSTEMROOT"), "System32", "rundll32.exe")
			return exec.Command(rundll, "url.dll,FileProtocolHandler", target), nil
		case constant.Darwin:
			return exec.Command("open", target), nil
		case constant.Linux:
			return exec.Command("xdg-open", target), nil
		case constant.Android:
			return exec.Command("termux-open", target), nil
		}
	}

	return nil, fmt.Errorf("opening files is not supported on %s", goos)
}
