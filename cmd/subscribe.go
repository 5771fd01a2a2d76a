package cmd

import (
	"context"
	"os"
	"os/signal"

	"github.com/appecho/alpha/color"
	"github.com/appecho/alpha/icon"
	"github.com/appecho/alpha/resolver"
	"github.com/appecho/alpha/style"
	"github.com/appecho/alpha/subscription"
	"github.com/appecho/alpha/util"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(subscribeCmd)

	subscribeCmd.Flags().Bool("replace", false, "Replace all saved resolvers instead of adding to them")
	subscribeCmd.Flags().BoolP("dry-run", "n", false, "Print the compiled resolvers without saving them")
	subscribeCmd.SetOut(os.Stdout)
}

var subscribeCmd = &cobra.Command{
	Use:   "subscribe <url|file>",
	Short: "Import resolvers from a subscription document",
	Long: `Import resolvers from a subscription document, a JSON array of resolver entries.
Each entry's response template is turned into a mapping: every string value like "${title}" maps its dot path to that placeholder.

Run "alpha parse schema --subscription" for the document's JSON schema.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
		defer cancel()

		erase := util.PrintErasable(icon.Get(icon.Progress) + " Loading subscription...")
		configs, err := subscription.Load(ctx, args[0])
		erase()
		handleErr(err)

		if lo.Must(cmd.Flags().GetBool("dry-run")) {
			for i, r := range configs {
				printResolver(cmd.OutOrStdout(), r)
				if i < len(configs)-1 {
					cmd.Println()
				}
			}
			return
		}

		if lo.Must(cmd.Flags().GetBool("replace")) {
			handleErr(resolver.Replace(configs))
		} else {
			handleErr(resolver.Add(configs...))
		}

		success("imported %s", style.Fg(color.Yellow)(util.Quantify(len(configs), "resolver", "resolvers")))
	},
}
