package cmd

import (
	"encoding/json"
	"os"

	"github.com/appecho/alpha/color"
	"github.com/appecho/alpha/style"
	"github.com/appecho/alpha/where"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

type whereTarget struct {
	name   string
	flag   string
	short  string
	where  func() string
	hidden bool
}

var whereTargets = []whereTarget{
	{"Config", "config", "c", where.Config, false},
	{"Resolvers", "resolvers", "r", where.Resolvers, false},
	{"Results", "results", "s", where.Results, false},
	{"Downloads", "downloads", "d", where.Downloads, false},
	{"Logs", "logs", "l", where.Logs, false},
	{"Subjects", "subjects", "", where.Subjects, true},
	{"Cache", "cache", "", where.Cache, true},
	{"Temp", "temp", "", where.Temp, true},
}

func init() {
	rootCmd.AddCommand(whereCmd)

	for _, t := range whereTargets {
		whereCmd.Flags().BoolP(t.flag, t.short, false, "Print only the "+t.name+" path")
		if t.hidden {
			lo.Must0(whereCmd.Flags().MarkHidden(t.flag))
		}
	}
	whereCmd.MarkFlagsMutuallyExclusive(lo.Map(whereTargets, func(t whereTarget, _ int) string { return t.flag })...)

	whereCmd.Flags().BoolP("json", "j", false, "Print every path as a JSON object")
	whereCmd.SetOut(os.Stdout)
}

var whereCmd = &cobra.Command{
	Use:   "where",
	Short: "Show the paths alpha stores its files in",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		for _, t := range whereTargets {
			if lo.Must(cmd.Flags().GetBool(t.flag)) {
				cmd.Println(t.where())
				return
			}
		}

		if lo.Must(cmd.Flags().GetBool("json")) {
			paths := lo.SliceToMap(whereTargets, func(t whereTarget) (string, string) { return t.flag, t.where() })
			encoder := json.NewEncoder(cmd.OutOrStdout())
			encoder.SetIndent("", "  ")
			handleErr(encoder.Encode(paths))
			return
		}

		visible := lo.Reject(whereTargets, func(t whereTarget, _ int) bool { return t.hidden })
		rows := lo.Map(visible, func(t whereTarget, _ int) []string {
			return []string{style.Fg(color.HiPurple)(t.name), t.where(), style.Fg(color.Yellow)("--" + t.flag)}
		})
		cmd.Print(renderTable([]string{"What", "Path", "Flag"}, rows, nil))
	},
}
