package cmd

import (
	"errors"
	"fmt"

	levenshtein "github.com/ka-weihe/fast-levenshtein"
	"github.com/laserpy/unicon/color"
	"github.com/laserpy/unicon/style"
	"github.com/laserpy/unicon/universal"
	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/cobra"
)

// closestName picks the candidate nearest to query: the best fuzzy match if any, else the smallest edit distance.
func closestName(query string, candidates []string) mo.Option[string] {
	if len(candidates) == 0 {
		return mo.None[string]()
	}

	if ranks := fuzzy.RankFindFold(query, candidates); len(ranks) > 0 {
		best := lo.MinBy([]fuzzy.Rank(ranks), func(a, b fuzzy.Rank) bool {
			return a.Distance < b.Distance
		})
		return mo.Some(best.Target)
	}

	return mo.Some(lo.MinBy(candidates, func(a, b string) bool {
		return levenshtein.Distance(query, a) < levenshtein.Distance(query, b)
	}))
}

// closestConstant ranks both names and symbols against query and maps the winner back to its constant.
func closestConstant(query string) mo.Option[universal.Constant] {
	byCandidate := make(map[string]universal.Constant)
	candidates := make([]string, 0, 2*len(universal.All()))
	for _, c := range universal.All() {
		byCandidate[c.Name()] = c
		byCandidate[c.Symbol()] = c
		candidates = append(candidates, c.Name(), c.Symbol())
	}

	closest, ok := closestName(query, candidates).Get()
	if !ok {
		return mo.None[universal.Constant]()
	}
	return mo.Some(byCandidate[closest])
}

// resolveConstant parses name, suggesting the closest constant when nothing matches.
func resolveConstant(name string) (universal.Constant, error) {
	c, err := universal.Parse(name)
	if err == nil {
		return c, nil
	}

	if !errors.Is(err, universal.ErrUnknownConstant) {
		return 0, err
	}

	msg := fmt.Sprintf("unknown constant %s", style.Fg(color.Red)(name))
	if closest, ok := closestConstant(name).Get(); ok {
		msg += fmt.Sprintf(", did you mean %s?", style.Fg(color.Yellow)(closest.Name()))
	}

	return 0, fmt.Errorf("%s: %w", msg, universal.ErrUnknownConstant)
}

func completionConstants(_ *cobra.Command, args []string, _ string) ([]string, cobra.ShellCompDirective) {
	return universal.Names(), cobra.ShellCompDirectiveNoFileComp
}
