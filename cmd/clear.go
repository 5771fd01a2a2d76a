package cmd

import (
	"fmt"

	"github.com/appecho/alpha/filesystem"
	"github.com/appecho/alpha/history"
	"github.com/appecho/alpha/icon"
	"github.com/appecho/alpha/query"
	"github.com/appecho/alpha/util"
	"github.com/appecho/alpha/where"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/cobra"
)

type clearTarget struct {
	name     string
	argLong  string
	argShort mo.Option[string]
	clear    func() error
}

var clearTargets = []clearTarget{
	{"Cache", "cache", mo.Some("c"), func() error { return filesystem.API().RemoveAll(where.Cache()) }},
	{"Results", "results", mo.Some("r"), history.Clear},
	{"Recent subjects", "subjects", mo.Some("s"), query.Forget},
	{"Temp", "temp", mo.None[string](), func() error { return util.Delete(where.Temp()) }},
}

func init() {
	rootCmd.AddCommand(clearCmd)

	for _, target := range clearTargets {
		help := fmt.Sprintf("clear %s", target.argLong)
		if target.argShort.IsPresent() {
			clearCmd.Flags().BoolP(target.argLong, target.argShort.MustGet(), false, help)
		} else {
			clearCmd.Flags().Bool(target.argLong, false, help)
		}
	}
}

var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Clear cached and stored data",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		var cleared bool

		for _, target := range clearTargets {
			if !lo.Must(cmd.Flags().GetBool(target.argLong)) {
				continue
			}

			cleared = true
			erase := util.PrintErasable(fmt.Sprintf("%s Clearing %s...", icon.Get(icon.Progress), target.argLong))
			err := target.clear()
			erase()
			handleErr(err)
			success("%s cleared", target.name)
		}

		if !cleared {
			handleErr(cmd.Help())
		}
	},
}
