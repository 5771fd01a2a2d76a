package cmd

import (
	"context"
	"encoding/json"
	"os"
	"runtime"
	"strings"
	"text/template"
	"time"

	"github.com/appecho/alpha/color"
	"github.com/appecho/alpha/constant"
	"github.com/appecho/alpha/icon"
	"github.com/appecho/alpha/style"
	"github.com/appecho/alpha/version"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

type buildInfo struct {
	App      string `json:"app"`
	Version  string `json:"version"`
	Revision string `json:"revision"`
	BuiltAt  string `json:"built_at"`
	BuiltBy  string `json:"built_by"`
	OS       string `json:"os"`
	Arch     string `json:"arch"`
	Latest   string `json:"latest,omitempty"`
}

var versionTemplate = template.Must(template.New("version").Funcs(template.FuncMap{
	"faint":   style.Faint,
	"bold":    style.Bold,
	"magenta": style.Fg(color.Purple),
	"icon":    func() string { return icon.Get(icon.Resolver) },
}).Parse(`{{ icon }} {{ magenta .App }}

  {{ faint "Version" }}     {{ bold .Version }}
  {{ faint "Revision" }}    {{ bold .Revision }}
  {{ faint "Built at" }}    {{ bold .BuiltAt }}
  {{ faint "Built by" }}    {{ bold .BuiltBy }}
  {{ faint "Platform" }}    {{ bold .OS }}/{{ bold .Arch }}{{ if .Latest }}
  {{ faint "Latest" }}      {{ bold .Latest }}{{ end }}
`))

func init() {
	rootCmd.AddCommand(versionCmd)
	versionCmd.Flags().BoolP("short", "s", false, "Print only the version")
	versionCmd.Flags().BoolP("json", "j", false, "Format the output as JSON")
	versionCmd.Flags().BoolP("check", "c", false, "Look up the latest version from update.url")
	versionCmd.SetOut(os.Stdout)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version and build information",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		if lo.Must(cmd.Flags().GetBool("short")) {
			cmd.Println(constant.Version)
			return
		}

		info := buildInfo{
			App:      constant.Alpha,
			Version:  constant.Version,
			Revision: constant.Revision,
			BuiltAt:  strings.TrimSpace(constant.BuiltAt),
			BuiltBy:  constant.BuiltBy,
			OS:       runtime.GOOS,
			Arch:     runtime.GOARCH,
		}

		if lo.Must(cmd.Flags().GetBool("check")) {
			ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
			defer cancel()

			manifest, err := version.Latest(ctx)
			handleErr(err)
			info.Latest = manifest.Version
		} else {
			defer version.Notify()
		}

		if lo.Must(cmd.Flags().GetBool("json")) {
			handleErr(json.NewEncoder(cmd.OutOrStdout()).Encode(info))
			return
		}
		handleErr(versionTemplate.Execute(cmd.OutOrStdout(), info))
	},
}
