package automaton

import "github.com/aledsdavies/blockexpr/pkgs/pattern"

// CompileRules is the entry point pkgs/lexer calls to turn a group's
// effective rule set (its own rules, followed by its ancestors')
// into an executable DFA. Each pattern's Rule.Index is its position in
// that merged list, so declaration order decides ties — lowest index wins.
func CompileRules(patterns []pattern.Pattern) *DFA {
	rules := make([]Rule, len(patterns))
	for i, p := range patterns {
		rules[i] = Rule{Pattern: p, Index: i}
	}
	return Determinize(Compile(rules))
}
