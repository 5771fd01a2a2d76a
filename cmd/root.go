// Package cmd implements the alpha command line.
package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/appecho/alpha/color"
	"github.com/appecho/alpha/config"
	"github.com/appecho/alpha/constant"
	"github.com/appecho/alpha/icon"
	"github.com/appecho/alpha/key"
	"github.com/appecho/alpha/log"
	"github.com/appecho/alpha/style"
	"github.com/appecho/alpha/util"
	"github.com/appecho/alpha/version"
	"github.com/appecho/alpha/where"
	cc "github.com/ivanpirog/coloredcobra"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	rootCmd.Flags().BoolP("version", "v", false, "Print the version")

	rootCmd.PersistentFlags().StringP("icons", "I", "", "Icons variant")
	lo.Must0(rootCmd.RegisterFlagCompletionFunc("icons", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return icon.AvailableVariants(), cobra.ShellCompDirectiveNoFileComp
	}))
	lo.Must0(viper.BindPFlag(key.IconsVariant, rootCmd.PersistentFlags().Lookup("icons")))

	rootCmd.PersistentFlags().Bool("fingerprint", false, "Send resolver requests with a browser TLS fingerprint")
	lo.Must0(viper.BindPFlag(key.NetworkFingerprint, rootCmd.PersistentFlags().Lookup("fingerprint")))

	helpFunc := rootCmd.HelpFunc()
	rootCmd.SetHelpFunc(func(cmd *cobra.Command, args []string) {
		helpFunc(cmd, args)
		version.Notify()
	})

	go func() {
		_ = util.Delete(where.Temp())
	}()
}

var rootCmd = &cobra.Command{
	Use:   constant.Alpha + " [subject-url]",
	Short: "Extract media from any JSON resolver API",
	Long: constant.AsciiArtLogo + "\n" +
		style.New().Italic(true).Foreground(color.HiRed).Render("    - Extract media from any JSON resolver API"),
	Example: `  alpha subscribe https://example.com/resolvers.json
  alpha "https://v.example.com/share/123"`,
	Args: cobra.MaximumNArgs(1),
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		variant := config.Default[key.IconsVariant]
		handleErr(variant.Check(viper.GetString(key.IconsVariant)))
	},
	Run: func(cmd *cobra.Command, args []string) {
		if lo.Must(cmd.Flags().GetBool("version")) {
			versionCmd.Run(versionCmd, nil)
			return
		}

		if len(args) == 1 {
			parseCmd.Run(parseCmd, args)
			return
		}

		handleErr(cmd.Help())
	},
}

// Execute runs the root command.
func Execute() {
	if viper.GetBool(key.CliColored) {
		cc.Init(&cc.Config{
			RootCmd:       rootCmd,
			Headings:      cc.HiCyan + cc.Bold + cc.Underline,
			Commands:      cc.HiYellow + cc.Bold,
			Example:       cc.Italic,
			ExecName:      cc.Bold,
			Flags:         cc.Bold,
			FlagsDataType: cc.Italic + cc.HiBlue,
		})
	}

	rootCmd.SilenceErrors = true
	handleErr(rootCmd.Execute())
}

func handleErr(err error) {
	if err == nil {
		return
	}

	log.Error(err)
	_, _ = fmt.Fprintf(os.Stderr, "%s %s\n", style.Fg(color.Red)(icon.Get(icon.Fail)), strings.TrimSpace(err.Error()))
	os.Exit(1)
}

func success(format string, args ...any) {
	fmt.Printf("%s %s\n", style.Fg(color.Green)(icon.Get(icon.Success)), fmt.Sprintf(format, args...))
}
