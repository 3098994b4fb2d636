package cmd

import (
	"encoding/json"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/laserpy/unicon/key"
	"github.com/laserpy/unicon/log"
	"github.com/laserpy/unicon/style"
	"github.com/laserpy/unicon/universal"
	"github.com/laserpy/unicon/util"
	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/muesli/reflow/wordwrap"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// ListOutput is the JSON document printed by "list --json".
type ListOutput struct {
	Constants []universal.Record `json:"constants"`
}

type listOptions struct {
	filter string
	raw    bool
	long   bool
}

func init() {
	rootCmd.AddCommand(listCmd)

	listCmd.Flags().StringP("filter", "f", "", "Show only constants whose name fuzzily matches, or whose symbol equals, the given query")
	listCmd.Flags().BoolP("raw", "r", false, "Print only the canonical names, one per line")
	listCmd.Flags().BoolP("long", "l", false, "Include a description of every constant")
	listCmd.MarkFlagsMutuallyExclusive("raw", "long")
}

// listCmd displays every constant with its symbol, value and unit.
var listCmd = &cobra.Command{
	Use:     "list",
	Short:   "Display all universal physical constants",
	Aliases: []string{"ls"},
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return printList(cmd.OutOrStdout(), listOptions{
			filter: lo.Must(cmd.Flags().GetString("filter")),
			raw:    lo.Must(cmd.Flags().GetBool("raw")),
			long:   lo.Must(cmd.Flags().GetBool("long")),
		})
	},
}

// filterConstants keeps the constants matching query; an empty query keeps all.
// A query naming a symbol selects that constant alone, so "h" does not also match names containing an h.
func filterConstants(query string) []universal.Constant {
	if query == "" {
		return universal.All()
	}

	if c, ok := lo.Find(universal.All(), func(c universal.Constant) bool {
		return strings.EqualFold(query, c.Symbol())
	}); ok {
		return []universal.Constant{c}
	}

	return lo.Filter(universal.All(), func(c universal.Constant, _ int) bool {
		return fuzzy.MatchFold(query, c.Name())
	})
}

func printList(w io.Writer, opts listOptions) error {
	constants := filterConstants(opts.filter)
	log.With(log.Fields{"filter": opts.filter, "matched": len(constants)}).Debug("listing constants")

	switch {
	case viper.GetBool(key.OutputJson):
		return json.NewEncoder(w).Encode(ListOutput{
			Constants: lo.Map(constants, func(c universal.Constant, _ int) universal.Record {
				return c.Record()
			}),
		})
	case opts.raw:
		for _, c := range constants {
			if _, err := io.WriteString(w, c.Name()+"\n"); err != nil {
				return err
			}
		}
		return nil
	}

	_, err := io.WriteString(w, style.Title("Universal physical constants")+"\n"+
		renderTable(constants, opts.long)+"\n"+
		style.Faint(util.Quantify(len(constants), "constant", "constants"))+"\n")
	return err
}

func renderTable(constants []universal.Constant, long bool) string {
	showUnits := viper.GetBool(key.ListShowUnits)

	headers := []string{"NAME", "SYMBOL", "VALUE"}
	if showUnits {
		headers = append(headers, "UNIT")
	}

	nameWidth := util.Max(lo.Map(constants, func(c universal.Constant, _ int) int {
		return len(c.Name())
	})...)
	descWidth := util.Max(util.TerminalWidth(100)-nameWidth-40, 30)

	if long {
		headers = append(headers, "DESCRIPTION")
	}

	rows := lo.Map(constants, func(c universal.Constant, _ int) []string {
		row := []string{c.Name(), c.Symbol(), c.FormatValue()}
		if showUnits {
			row = append(row, c.Unit())
		}
		if long {
			row = append(row, wordwrap.String(c.Description(), descWidth))
		}
		return row
	})

	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(style.New().Foreground(style.BorderColor)).
		StyleFunc(func(row, col int) lipgloss.Style {
			cell := style.New().Padding(0, 1)
			switch {
			case row == table.HeaderRow:
				return cell.Bold(true).Foreground(style.AccentColor)
			case col == 0:
				return cell.Foreground(style.Sapphire)
			case col == 2:
				return cell.Foreground(style.Peach)
			default:
				return cell
			}
		}).
		Headers(headers...).
		Rows(rows...).
		Render()
}
