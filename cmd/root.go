// Package cmd implements the command-line interface for unicon.
package cmd

import (
	"errors"
	"fmt"
	"os"
	"strings"

	cc "github.com/ivanpirog/coloredcobra"
	"github.com/laserpy/unicon/color"
	"github.com/laserpy/unicon/constant"
	"github.com/laserpy/unicon/icon"
	"github.com/laserpy/unicon/key"
	"github.com/laserpy/unicon/log"
	"github.com/laserpy/unicon/style"
	"github.com/laserpy/unicon/universal"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	rootCmd.SetOut(os.Stdout)
	rootCmd.Flags().BoolP("version", "v", false, "Print the application version")

	rootCmd.PersistentFlags().StringP("icons", "I", "", "Set the visual icon variant (e.g., nerd, emoji, square)")
	lo.Must0(rootCmd.RegisterFlagCompletionFunc("icons", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return icon.AvailableVariants(), cobra.ShellCompDirectiveDefault
	}))
	lo.Must0(viper.BindPFlag(key.IconsVariant, rootCmd.PersistentFlags().Lookup("icons")))

	rootCmd.PersistentFlags().BoolP("json", "j", false, "Format the output as JSON")
	lo.Must0(viper.BindPFlag(key.OutputJson, rootCmd.PersistentFlags().Lookup("json")))
}

// rootCmd defines the entry point for the unicon application.
var rootCmd = &cobra.Command{
	Use:   constant.App,
	Short: "Universal physical constants at your fingertips",
	Long: style.Bold(constant.App) + "\n" +
		style.Italic(style.Fg(color.HiCyan)("    - Exact SI values of the universal physical constants, from the shell or from Lua")),
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		log.With(log.Fields{"command": cmd.CommandPath(), "args": args}).Info("executing")
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Flags().Changed("version") {
			versionCmd.Run(versionCmd, args)
			return nil
		}

		return printList(cmd.OutOrStdout(), listOptions{})
	},
}

// Execute initializes child command routing and processes the CLI entry point.
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

	handleErr(rootCmd.Execute())
}

func handleErr(err error) {
	if err != nil {
		log.Error(err)
		_, _ = fmt.Fprintln(os.Stderr, renderErr(err))
		os.Exit(1)
	}
}

// renderErr boxes the errors a user can fix by changing the input and prefixes everything else with the fail icon.
func renderErr(err error) string {
	msg := strings.Trim(err.Error(), " \n")

	switch {
	case errors.Is(err, universal.ErrNotComparable):
		return style.ErrorBox("Not comparable", msg)
	case errors.Is(err, universal.ErrUnknownConstant):
		return style.ErrorBox("Unknown constant", msg)
	default:
		return fmt.Sprintf("%s %s", style.Fg(color.HiRed)(icon.Get(icon.Fail)), msg)
	}
}
