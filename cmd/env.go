package cmd

import (
	"os"
	"sort"

	"github.com/appecho/alpha/color"
	"github.com/appecho/alpha/config"
	"github.com/appecho/alpha/style"
	"github.com/appecho/alpha/where"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(envCmd)
	envCmd.Flags().BoolP("set-only", "s", false, "Only show variables that are set")
	envCmd.Flags().BoolP("unset-only", "u", false, "Only show variables that are not set")

	envCmd.MarkFlagsMutuallyExclusive("set-only", "unset-only")
	envCmd.SetOut(os.Stdout)
}

var envCmd = &cobra.Command{
	Use:   "env",
	Short: "Show the environment variables alpha reads",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		setOnly := lo.Must(cmd.Flags().GetBool("set-only"))
		unsetOnly := lo.Must(cmd.Flags().GetBool("unset-only"))

		names := []string{where.EnvConfigPath}
		for _, k := range config.EnvExposed {
			f := config.Default[k]
			names = append(names, f.Env())
		}
		sort.Strings(names)

		name := style.New().Bold(true).Foreground(color.Purple).Render
		for _, env := range names {
			value, present := os.LookupEnv(env)
			if (setOnly && !present) || (unsetOnly && present) {
				continue
			}

			cmd.Print(name(env), "=")
			if present {
				cmd.Println(style.Fg(color.Green)(value))
			} else {
				cmd.Println(style.Fg(color.Red)("unset"))
			}
		}
	},
}
