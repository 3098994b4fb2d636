package cmd

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/AlecAivazis/survey/v2"
	"github.com/laserpy/unicon/key"
	"github.com/laserpy/unicon/universal"
	"github.com/laserpy/unicon/util"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	rootCmd.AddCommand(getCmd)

	getCmd.Flags().BoolP("display", "d", false, "Print the <PhysicalConstant.Name = value> representation instead of the bare value")
	getCmd.Flags().BoolP("name", "n", false, "Print the canonical name instead of the value")
	getCmd.Flags().IntP("precision", "p", -1, "Significant digits of the printed value (-1 for the shortest exact form)")
	getCmd.MarkFlagsMutuallyExclusive("display", "name")
	lo.Must0(viper.BindPFlag(key.OutputPrecision, getCmd.Flags().Lookup("precision")))
}

// getCmd prints the value of a single constant.
var getCmd = &cobra.Command{
	Use:               "get [name]",
	Short:             "Print the exact SI value of a constant",
	Example:           "  unicon get SpeedOfLight\n  unicon get k_B --display",
	Args:              cobra.MaximumNArgs(1),
	ValidArgsFunction: completionConstants,
	RunE: func(cmd *cobra.Command, args []string) error {
		var name string

		if len(args) == 1 {
			name = args[0]
		} else if util.IsInteractive() {
			prompt := &survey.Select{
				Message: "Which constant?",
				Options: universal.Names(),
			}
			if err := survey.AskOne(prompt, &name); err != nil {
				return err
			}
		} else {
			return errors.New("constant name is required")
		}

		c, err := resolveConstant(name)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()

		switch {
		case viper.GetBool(key.OutputJson):
			return json.NewEncoder(out).Encode(c.Record())
		case lo.Must(cmd.Flags().GetBool("display")):
			_, err = fmt.Fprintln(out, c.Display())
		case lo.Must(cmd.Flags().GetBool("name")):
			_, err = fmt.Fprintln(out, c.Name())
		default:
			_, err = fmt.Fprintln(out, c.FormatDigits(viper.GetInt(key.OutputPrecision)))
		}

		return err
	},
}
