package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/appecho/alpha/download"
	"github.com/appecho/alpha/engine"
	"github.com/appecho/alpha/filesystem"
	"github.com/appecho/alpha/inline"
	"github.com/appecho/alpha/key"
	"github.com/appecho/alpha/query"
	"github.com/appecho/alpha/resolver"
	"github.com/appecho/alpha/subscription"
	"github.com/appecho/alpha/util"
	"github.com/invopop/jsonschema"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	rootCmd.AddCommand(parseCmd)

	parseCmd.Flags().StringSliceP("resolver", "r", []string{}, "Resolvers (name or id) to run")
	parseCmd.Flags().BoolP("all", "a", false, "Run every saved resolver")
	parseCmd.MarkFlagsMutuallyExclusive("resolver", "all")
	lo.Must0(parseCmd.RegisterFlagCompletionFunc("resolver", completionResolvers))

	parseCmd.Flags().StringP("pick", "p", "", "Which results to keep: first, last, all or an index starting from 0")
	parseCmd.Flags().BoolP("json", "j", false, "Format the output as JSON")
	parseCmd.Flags().StringP("output", "o", "", "Write the output to a file")
	parseCmd.Flags().BoolP("download", "d", false, "Download the extracted media")

	parseCmd.Flags().BoolP("save", "s", true, "Save results to history")
	lo.Must0(viper.BindPFlag(key.ParseSave, parseCmd.Flags().Lookup("save")))

	parseCmd.Flags().IntP("concurrency", "c", 4, "Resolvers analysed in parallel")
	lo.Must0(viper.BindPFlag(key.ParseConcurrency, parseCmd.Flags().Lookup("concurrency")))
}

func completionResolvers(_ *cobra.Command, _ []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	all, err := resolver.List()
	if err != nil {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	names := lo.Map(all, func(r *resolver.Config, _ int) string { return r.Name })
	return lo.Filter(names, func(n string, _ int) bool {
		return strings.HasPrefix(strings.ToLower(n), strings.ToLower(toComplete))
	}), cobra.ShellCompDirectiveNoFileComp
}

var parseCmd = &cobra.Command{
	Use:   "parse <subject-url>",
	Short: "Extract media from a subject url with one or more resolvers",
	Long: `Fetch the response of each resolver for the given subject url and extract a media descriptor.

Without --resolver or --all the resolver from parse.default_resolver is used,
or the only saved resolver if there is exactly one.

Pickers:
  first - first result
  last - last result
  all - every result
  [number] - result by index (starting from 0)`,
	Example: `  alpha parse "https://v.example.com/share/123" -r douyin
  alpha parse "https://v.example.com/share/123" --all --json`,
	Args: cobra.ExactArgs(1),
	ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return query.SuggestMany(toComplete), cobra.ShellCompDirectiveNoFileComp
	},
	Run: func(cmd *cobra.Command, args []string) {
		resolvers, err := selectResolvers(
			lo.Must(cmd.Flags().GetStringSlice("resolver")),
			lo.Must(cmd.Flags().GetBool("all")),
		)
		handleErr(err)

		var out io.Writer = os.Stdout
		if output := lo.Must(cmd.Flags().GetString("output")); output != "" {
			file, err := filesystem.API().Create(output)
			handleErr(err)
			defer file.Close()
			out = file
		}

		picker := mo.None[inline.Picker]()
		if pick := lo.Must(cmd.Flags().GetString("pick")); pick != "" {
			fn, err := inline.ParsePicker(pick)
			handleErr(err)
			picker = mo.Some(fn)
		}

		downloads := mo.None[download.Options]()
		if lo.Must(cmd.Flags().GetBool("download")) {
			downloads = mo.Some(download.OptionsFromConfig(os.Stderr))
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()

		err = inline.Run(ctx, &inline.Options{
			Out:         out,
			Report:      os.Stderr,
			Analyzer:    engine.New(),
			Resolvers:   resolvers,
			Subject:     strings.TrimSpace(args[0]),
			Concurrency: viper.GetInt(key.ParseConcurrency),
			Json:        lo.Must(cmd.Flags().GetBool("json")),
			Save:        viper.GetBool(key.ParseSave),
			Picker:      picker,
			Download:    downloads,
		})
		if errors.Is(err, inline.ErrNoResult) {
			err = fmt.Errorf("%w, none of %s matched", err, util.Quantify(len(resolvers), "resolver", "resolvers"))
		}
		handleErr(err)
	},
}

// selectResolvers resolves the --resolver and --all flags to resolver configs.
func selectResolvers(names []string, all bool) ([]*resolver.Config, error) {
	if all {
		saved, err := resolver.List()
		if err != nil {
			return nil, err
		}
		if len(saved) == 0 {
			return nil, errors.New("no resolvers saved, add one with \"alpha resolvers add\" or \"alpha subscribe\"")
		}
		return saved, nil
	}

	if len(names) == 0 {
		if def := viper.GetString(key.ParseDefaultResolver); def != "" {
			names = []string{def}
		} else {
			saved, err := resolver.List()
			if err != nil {
				return nil, err
			}
			if len(saved) != 1 {
				return nil, errors.New("resolver not set, use --resolver, --all or parse.default_resolver")
			}
			return saved, nil
		}
	}

	resolvers := make([]*resolver.Config, 0, len(names))
	for _, name := range names {
		r, err := resolver.Find(name)
		if err != nil {
			return nil, err
		}
		resolvers = append(resolvers, r)
	}

	return resolvers, nil
}

func init() {
	parseCmd.AddCommand(parseSchemaCmd)

	parseSchemaCmd.Flags().BoolP("subscription", "s", false, "Generate the schema of a subscription entry instead")
}

var parseSchemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Generate the JSON schema of the parse --json output",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		reflector := new(jsonschema.Reflector)
		reflector.Anonymous = true
		reflector.Namer = func(t reflect.Type) string {
			name := t.Name()
			switch strings.ToLower(name) {
			case "output", "result", "descriptor", "config", "param":
				return filepath.Base(t.PkgPath()) + "." + name
			}

			return name
		}

		var schema *jsonschema.Schema
		if lo.Must(cmd.Flags().GetBool("subscription")) {
			schema = reflector.Reflect(&subscription.Entry{})
		} else {
			schema = reflector.Reflect(&inline.Output{})
		}

		handleErr(json.NewEncoder(os.Stdout).Encode(schema))
	},
}
