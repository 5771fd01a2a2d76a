package cmd

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"github.com/appecho/alpha/auth"
	"github.com/appecho/alpha/color"
	"github.com/appecho/alpha/constant"
	"github.com/appecho/alpha/extract"
	"github.com/appecho/alpha/filesystem"
	"github.com/appecho/alpha/media"
	"github.com/appecho/alpha/resolver"
	"github.com/appecho/alpha/style"
	"github.com/appecho/alpha/subscription"
	"github.com/appecho/alpha/util"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

func init() {
	rootCmd.AddCommand(resolversCmd)
}

var resolversCmd = &cobra.Command{
	Use:     "resolvers",
	Aliases: []string{"resolver"},
	Short:   "Manage resolvers",
}

func init() {
	resolversCmd.AddCommand(resolversListCmd)

	resolversListCmd.Flags().BoolP("raw", "r", false, "Print names only")
	resolversListCmd.SetOut(os.Stdout)
}

var resolversListCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved resolvers",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		all, err := resolver.List()
		handleErr(err)

		if lo.Must(cmd.Flags().GetBool("raw")) {
			for _, r := range all {
				cmd.Println(r.Name)
			}
			return
		}

		if len(all) == 0 {
			cmd.Println(style.Faint("No resolvers yet. Add one with \"alpha resolvers add\" or import a subscription with \"alpha subscribe\"."))
			return
		}

		rows := lo.Map(all, func(r *resolver.Config, _ int) []string {
			return []string{
				r.Name,
				string(media.NormalizeType(r.Type)),
				strconv.Itoa(r.Timeout) + "ms",
				r.ID[:util.Min(8, len(r.ID))],
				r.Endpoint,
			}
		})
		cmd.Print(renderTable(
			[]string{"Name", "Type", "Timeout", "ID", "URL"},
			rows,
			[]columnAlignment{alignLeft, alignLeft, alignRight, alignLeft, alignLeft},
		))
	},
}

func init() {
	resolversCmd.AddCommand(resolversShowCmd)
	resolversShowCmd.SetOut(os.Stdout)
}

var resolversShowCmd = &cobra.Command{
	Use:               "show <name|id>",
	Short:             "Show a resolver",
	Args:              cobra.ExactArgs(1),
	ValidArgsFunction: completionResolvers,
	Run: func(cmd *cobra.Command, args []string) {
		r, err := resolver.Find(args[0])
		handleErr(err)
		printResolver(cmd.OutOrStdout(), r)
	},
}

// resolverFlags registers the editable resolver fields on cmd.
func resolverFlags(flags *pflag.FlagSet) {
	flags.StringP("name", "n", "", "Display name")
	flags.StringP("url", "u", "", "Endpoint, "+constant.SubjectToken+" is replaced with the subject url")
	flags.StringP("type", "t", "", "Media type: video, audio or gallery")
	flags.StringP("mapping", "m", "", `Mapping document, e.g. {"data.title":"${title}"}`)
	flags.String("mapping-file", "", "Read the mapping document from a file")
	flags.Int("timeout", resolver.DefaultTimeout, "Timeout in milliseconds, 0 for none")
	flags.String("icon", "", "Icon url")
	flags.StringArrayP("header", "H", []string{}, `Request header "Key: Value". Use "Key: `+auth.Ref+`" for a keyring secret`)
}

func parseHeader(raw string) (resolver.Param, error) {
	k, v, ok := strings.Cut(raw, ":")
	if !ok || strings.TrimSpace(k) == "" {
		return resolver.Param{}, fmt.Errorf("invalid header %q, expected \"Key: Value\"", raw)
	}
	return resolver.Param{Key: strings.TrimSpace(k), Value: strings.TrimSpace(v)}, nil
}

// applyResolverFlags copies every changed flag onto r.
func applyResolverFlags(cmd *cobra.Command, r *resolver.Config) error {
	flags := cmd.Flags()
	set := func(name string, target *string) {
		if flags.Changed(name) {
			*target = strings.TrimSpace(lo.Must(flags.GetString(name)))
		}
	}

	set("name", &r.Name)
	set("url", &r.Endpoint)
	set("type", &r.Type)
	set("mapping", &r.Mapping)
	set("icon", &r.Icon)

	if flags.Changed("mapping-file") {
		data, err := filesystem.API().ReadFile(lo.Must(flags.GetString("mapping-file")))
		if err != nil {
			return err
		}
		r.Mapping = string(data)
	}
	if flags.Changed("timeout") {
		r.Timeout = lo.Must(flags.GetInt("timeout"))
	}
	if flags.Changed("header") {
		r.Params = nil
		for _, raw := range lo.Must(flags.GetStringArray("header")) {
			p, err := parseHeader(raw)
			if err != nil {
				return err
			}
			r.Params = append(r.Params, p)
		}
	}

	if r.Mapping != "" {
		if _, err := extract.ParseMapping(r.Mapping); err != nil {
			return err
		}
	}

	return r.Validate()
}

func init() {
	resolversCmd.AddCommand(resolversAddCmd)
	resolverFlags(resolversAddCmd.Flags())
}

var resolversAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a resolver",
	Long: `Add a resolver from flags. Missing fields are prompted for when running in a terminal.

The mapping document maps dot paths of the response to placeholders:
  title       ${title} ${tag}
  author      ${author} ${name}
  cover       ${cover} ${thumbnail}
  description ${description} ${desc}
  duration    ${duration} ${length}
  media url   ${videoUrl} ${url} ${address} ${imageUrls}
Fields without a mapping are searched for by common key names.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		r := resolver.New("", "", string(media.Video), "")

		if interactive() && (!cmd.Flags().Changed("name") || !cmd.Flags().Changed("url")) {
			handleErr(promptResolver(r))
		}

		handleErr(applyResolverFlags(cmd, r))
		handleErr(resolver.Add(r))
		success("added %s %s", style.Fg(color.Yellow)(r.Name), style.Faint(r.ID))
	},
}

func promptResolver(r *resolver.Config) error {
	questions := []*survey.Question{
		{
			Name:     "name",
			Prompt:   &survey.Input{Message: "Name"},
			Validate: survey.Required,
		},
		{
			Name:     "url",
			Prompt:   &survey.Input{Message: "Endpoint", Help: constant.SubjectToken + " is replaced with the subject url"},
			Validate: survey.Required,
		},
		{
			Name:   "type",
			Prompt: &survey.Select{Message: "Type", Options: []string{string(media.Video), string(media.Audio), string(media.Gallery)}},
		},
		{
			Name:   "mapping",
			Prompt: &survey.Multiline{Message: "Mapping (leave empty to search by key names)"},
		},
	}

	answers := struct {
		Name    string
		URL     string
		Type    string
		Mapping string
	}{}
	if err := survey.Ask(questions, &answers); err != nil {
		return err
	}

	r.Name, r.Endpoint, r.Type, r.Mapping = answers.Name, answers.URL, answers.Type, answers.Mapping
	return nil
}

func init() {
	resolversCmd.AddCommand(resolversEditCmd)
	resolverFlags(resolversEditCmd.Flags())
}

var resolversEditCmd = &cobra.Command{
	Use:               "edit <name|id>",
	Short:             "Change fields of a resolver",
	Args:              cobra.ExactArgs(1),
	ValidArgsFunction: completionResolvers,
	Run: func(cmd *cobra.Command, args []string) {
		r, err := resolver.Find(args[0])
		handleErr(err)

		edited := *r
		handleErr(applyResolverFlags(cmd, &edited))
		handleErr(resolver.Update(&edited))
		success("updated %s", style.Fg(color.Yellow)(edited.Name))
	},
}

func init() {
	resolversCmd.AddCommand(resolversRemoveCmd)
}

var resolversRemoveCmd = &cobra.Command{
	Use:               "remove <name|id>...",
	Aliases:           []string{"rm"},
	Short:             "Remove resolvers",
	Args:              cobra.MinimumNArgs(1),
	ValidArgsFunction: completionResolvers,
	Run: func(cmd *cobra.Command, args []string) {
		for _, name := range args {
			r, err := resolver.Find(name)
			handleErr(err)
			handleErr(resolver.Remove(r.ID))
			success("removed %s", style.Fg(color.Yellow)(r.Name))
		}
	},
}

func init() {
	resolversCmd.AddCommand(resolversGenCmd)

	resolversGenCmd.Flags().StringP("name", "n", "", "Display name of the new resolver")
	resolversGenCmd.Flags().StringP("url", "u", "", "Endpoint of the new resolver")
	resolversGenCmd.Flags().StringP("type", "t", string(media.Video), "Media type: video, audio or gallery")
	resolversGenCmd.Flags().StringP("output", "o", "", "Write to a file instead of stdout")

	lo.Must0(resolversGenCmd.MarkFlagRequired("name"))
	lo.Must0(resolversGenCmd.MarkFlagRequired("url"))
	resolversGenCmd.SetOut(os.Stdout)
}

var resolversGenCmd = &cobra.Command{
	Use:   "gen",
	Short: "Scaffold a subscription document for a new resolver",
	Long:  `Generate a one-resolver subscription document. Edit its response template, then import it with "alpha subscribe <file>".`,
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		doc, err := subscription.Scaffold(
			lo.Must(cmd.Flags().GetString("name")),
			lo.Must(cmd.Flags().GetString("url")),
			media.NormalizeType(lo.Must(cmd.Flags().GetString("type"))),
		)
		handleErr(err)

		output := lo.Must(cmd.Flags().GetString("output"))
		if output == "" {
			cmd.Print(doc)
			return
		}

		_, err = filesystem.WriteAtomic(output, strings.NewReader(doc))
		handleErr(err)
		cmd.Println(output)
	},
}

func init() {
	resolversCmd.AddCommand(resolversSecretCmd)

	resolversSecretCmd.Flags().BoolP("delete", "d", false, "Delete the stored secret")
	resolversSecretCmd.Flags().String("value", "", "Secret value, prompted for when omitted")
}

var resolversSecretCmd = &cobra.Command{
	Use:   "secret <name|id> <header>",
	Short: "Store a header value in the system keyring",
	Long: `Store the value of a request header in the system keyring instead of the resolvers file.
The header is added to the resolver with the value "` + auth.Ref + `" if it is not there yet.`,
	Args:              cobra.ExactArgs(2),
	ValidArgsFunction: completionResolvers,
	Run: func(cmd *cobra.Command, args []string) {
		r, err := resolver.Find(args[0])
		handleErr(err)
		header := strings.TrimSpace(args[1])

		if lo.Must(cmd.Flags().GetBool("delete")) {
			handleErr(auth.DeleteSecret(r.ID, header))
			success("deleted secret %s of %s", style.Fg(color.Purple)(header), style.Fg(color.Yellow)(r.Name))
			return
		}

		value := lo.Must(cmd.Flags().GetString("value"))
		if value == "" {
			if !interactive() {
				handleErr(errors.New("--value is required when not running in a terminal"))
			}
			handleErr(survey.AskOne(&survey.Password{Message: header}, &value, survey.WithValidator(survey.Required)))
		}
		handleErr(auth.SetSecret(r.ID, header, value))

		if current, ok := r.Header(header); !ok || !auth.IsRef(current) {
			r.Params = append(lo.Reject(r.Params, func(p resolver.Param, _ int) bool {
				return strings.EqualFold(p.Key, header)
			}), resolver.Param{Key: header, Value: auth.Ref})
			handleErr(resolver.Update(r))
		}

		success("stored secret %s of %s", style.Fg(color.Purple)(header), style.Fg(color.Yellow)(r.Name))
	},
}
