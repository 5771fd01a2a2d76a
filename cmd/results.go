package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"os/signal"
	"strings"

	"github.com/appecho/alpha/color"
	"github.com/appecho/alpha/download"
	"github.com/appecho/alpha/history"
	"github.com/appecho/alpha/icon"
	"github.com/appecho/alpha/media"
	"github.com/appecho/alpha/open"
	"github.com/appecho/alpha/style"
	"github.com/appecho/alpha/util"
	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func completionResults(_ *cobra.Command, _ []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	all, err := history.Get()
	if err != nil {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}

	return lo.FilterMap(all, func(d *media.Descriptor, _ int) (string, bool) {
		return d.ID + "\t" + d.String(), strings.HasPrefix(d.ID, toComplete)
	}), cobra.ShellCompDirectiveNoFileComp
}

func init() {
	rootCmd.AddCommand(resultsCmd)
}

var resultsCmd = &cobra.Command{
	Use:     "results",
	Aliases: []string{"history"},
	Short:   "Browse saved results",
}

func init() {
	resultsCmd.AddCommand(resultsListCmd)

	resultsListCmd.Flags().BoolP("json", "j", false, "Format the output as JSON")
	resultsListCmd.Flags().StringP("filter", "f", "", "Only show results whose title or author fuzzily match")
	resultsListCmd.Flags().IntP("limit", "n", 0, "Show at most n results, 0 for all")
	resultsListCmd.SetOut(os.Stdout)
}

var resultsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved results, newest first",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		all, err := history.Get()
		handleErr(err)

		if filter := lo.Must(cmd.Flags().GetString("filter")); filter != "" {
			all = lo.Filter(all, func(d *media.Descriptor, _ int) bool {
				return fuzzy.MatchFold(filter, d.Title) || fuzzy.MatchFold(filter, d.Author)
			})
		}
		if limit := lo.Must(cmd.Flags().GetInt("limit")); limit > 0 && limit < len(all) {
			all = all[:limit]
		}

		if lo.Must(cmd.Flags().GetBool("json")) {
			encoder := json.NewEncoder(cmd.OutOrStdout())
			encoder.SetIndent("", "  ")
			handleErr(encoder.Encode(all))
			return
		}

		if len(all) == 0 {
			cmd.Println(style.Faint("No results"))
			return
		}

		titleWidth := util.Max(20, util.TerminalWidth(100)/3)
		rows := lo.Map(all, func(d *media.Descriptor, _ int) []string {
			return []string{
				d.ID[:util.Min(8, len(d.ID))],
				typeIcon(d.Type),
				style.Truncate(titleWidth)(d.Title),
				d.Author,
				d.Resolver,
				d.Created().Format("2006-01-02 15:04"),
			}
		})
		cmd.Print(renderTable(
			[]string{"ID", "", "Title", "Author", "Resolver", "Created"},
			rows,
			nil,
		))
	},
}

func init() {
	resultsCmd.AddCommand(resultsShowCmd)
	resultsShowCmd.SetOut(os.Stdout)
}

var resultsShowCmd = &cobra.Command{
	Use:               "show <id>",
	Short:             "Show a saved result",
	Args:              cobra.ExactArgs(1),
	ValidArgsFunction: completionResults,
	Run: func(cmd *cobra.Command, args []string) {
		d, err := history.Find(args[0])
		handleErr(err)
		printDescriptor(cmd.OutOrStdout(), d)
	},
}

func init() {
	resultsCmd.AddCommand(resultsRemoveCmd)
}

var resultsRemoveCmd = &cobra.Command{
	Use:               "remove <id>...",
	Aliases:           []string{"rm"},
	Short:             "Remove saved results",
	Args:              cobra.MinimumNArgs(1),
	ValidArgsFunction: completionResults,
	Run: func(cmd *cobra.Command, args []string) {
		for _, id := range args {
			d, err := history.Find(id)
			handleErr(err)
			handleErr(history.Remove(d.ID))
			success("removed %s", style.Fg(color.Yellow)(d.String()))
		}
	},
}

func init() {
	resultsCmd.AddCommand(resultsClearCmd)
}

var resultsClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove every saved result",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		handleErr(history.Clear())
		success("results cleared")
	},
}

func init() {
	resultsCmd.AddCommand(resultsDownloadCmd)

	resultsDownloadCmd.Flags().StringP("dir", "D", "", "Download directory, defaults to downloads.path")
	resultsDownloadCmd.SetOut(os.Stdout)
}

var resultsDownloadCmd = &cobra.Command{
	Use:               "download <id>...",
	Short:             "Download saved results",
	Args:              cobra.MinimumNArgs(1),
	ValidArgsFunction: completionResults,
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
		defer cancel()

		opts := download.OptionsFromConfig(os.Stderr)
		if dir := lo.Must(cmd.Flags().GetString("dir")); dir != "" {
			opts.Dir = dir
		}

		for _, id := range args {
			d, err := history.Find(id)
			handleErr(err)

			paths, err := download.Descriptor(ctx, d, opts)
			handleErr(err)
			for _, p := range paths {
				cmd.Printf("%s %s\n", icon.Get(icon.Download), p)
			}
		}
	},
}

func init() {
	resultsCmd.AddCommand(resultsOpenCmd)

	resultsOpenCmd.Flags().StringP("with", "w", "", "Open with this application instead of the default one")
	resultsOpenCmd.Flags().Bool("cover", false, "Open the cover instead of the media")
}

var resultsOpenCmd = &cobra.Command{
	Use:               "open <id>",
	Short:             "Open a saved result's media url",
	Args:              cobra.ExactArgs(1),
	ValidArgsFunction: completionResults,
	Run: func(cmd *cobra.Command, args []string) {
		d, err := history.Find(args[0])
		handleErr(err)

		target := d.URL
		if lo.Must(cmd.Flags().GetBool("cover")) {
			if d.Cover == "" {
				handleErr(errors.New(d.String() + " has no cover"))
			}
			target = d.Cover
		}

		handleErr(open.Start(target, lo.Must(cmd.Flags().GetString("with"))))
	},
}
