// Package suggest computes a "did you mean" nearest-match suggestion for
// diagnostics. It never changes the AST a parse produced. Neither
// internal/diagnostics nor cmd/blockexpr calls it, so findings carry no
// suggestion.
// Grounded on opal-lang-opal/runtime/planner/planner.go's
// findClosestMatch, which uses the same fuzzy.RankFindFold call.
package suggest

import "github.com/lithammer/fuzzysearch/fuzzy"

// KnownOperators lists the operator spellings the NORMAL group's
// noModOperator rule recognizes, the candidate set suggestions are drawn
// from when an IdentInvalidSuffix or Unrecognized finding looks like a
// near-miss on one of them.
var KnownOperators = []string{"==", ">=", "<=", "/=", "=", "...", "..", ".", ","}

// Closest returns the known operator spelling nearest to target, or ""
// if candidates is empty or nothing ranks.
func Closest(target string, candidates []string) string {
	if len(candidates) == 0 {
		return ""
	}
	ranks := fuzzy.RankFindFold(target, candidates)
	if len(ranks) == 0 {
		return ""
	}
	best := ranks[0]
	for _, r := range ranks[1:] {
		if r.Distance < best.Distance {
			best = r
		}
	}
	return best.Target
}
