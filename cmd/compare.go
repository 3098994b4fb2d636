package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/laserpy/unicon/color"
	"github.com/laserpy/unicon/icon"
	"github.com/laserpy/unicon/key"
	"github.com/laserpy/unicon/style"
	"github.com/laserpy/unicon/universal"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// compareResult is the JSON document printed by "compare --json".
type compareResult struct {
	Left   string `json:"left"`
	Op     string `json:"op"`
	Right  string `json:"right"`
	Result bool   `json:"result"`
}

func init() {
	rootCmd.AddCommand(compareCmd)

	compareCmd.Flags().StringP("op", "o", "eq", "Relational operator: eq, ne, lt, le, gt, ge (or ==, !=, <, <=, >, >=)")
	lo.Must0(compareCmd.RegisterFlagCompletionFunc("op", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return universal.Ops(), cobra.ShellCompDirectiveNoFileComp
	}))
}

// compareCmd relates two constants. Only equality operators are defined.
var compareCmd = &cobra.Command{
	Use:   "compare <a> <b>",
	Short: "Compare two constants by value",
	Long: `Compare two constants by value using IEEE-754 equality.

Ordering operators (lt, le, gt, ge) are rejected: physical constants of
different dimensions have no meaningful order.`,
	Args:              cobra.ExactArgs(2),
	ValidArgsFunction: completionConstants,
	RunE: func(cmd *cobra.Command, args []string) error {
		op, err := universal.ParseOp(lo.Must(cmd.Flags().GetString("op")))
		if err != nil {
			return err
		}

		a, err := resolveConstant(args[0])
		if err != nil {
			return err
		}

		b, err := resolveConstant(args[1])
		if err != nil {
			return err
		}

		result, err := a.Relate(op, b)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if viper.GetBool(key.OutputJson) {
			return json.NewEncoder(out).Encode(compareResult{
				Left:   a.Name(),
				Op:     op.String(),
				Right:  b.Name(),
				Result: result,
			})
		}

		mark := style.Fg(color.Green)(icon.Get(icon.Equal))
		if !a.Equal(b) {
			mark = style.Fg(color.Red)(icon.Get(icon.NotEqual))
		}

		_, err = fmt.Fprintf(out, "%s %s %s %s: %t\n",
			mark,
			style.Fg(color.Purple)(a.Name()),
			op,
			style.Fg(color.Purple)(b.Name()),
			result,
		)
		return err
	},
}
