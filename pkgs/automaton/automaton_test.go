package automaton_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/aledsdavies/blockexpr/pkgs/automaton"
	"github.com/aledsdavies/blockexpr/pkgs/pattern"
)

// simulate runs dfa over input from its start state, remembering the
// longest accepting prefix the way pkgs/lexer.Scanner.Advance does, and
// reports the winning rule index (or automaton.NoAccept) plus how many
// runes were consumed.
func simulate(dfa *automaton.DFA, input string) (rule int, consumed int) {
	runes := []rune(input)
	state := automaton.Start
	lastRule := automaton.NoAccept
	lastPos := 0

	if acc := dfa.Accept(state); acc != automaton.NoAccept {
		lastRule, lastPos = acc, 0
	}
	for i, r := range runes {
		next := dfa.Step(state, r)
		if next == automaton.DeadState {
			break
		}
		state = next
		if acc := dfa.Accept(state); acc != automaton.NoAccept {
			lastRule, lastPos = acc, i+1
		}
	}
	return lastRule, lastPos
}

func TestLongestMatchAcrossAlternatives(t *testing.T) {
	// Rule 0: "a"; Rule 1: "ab". Both can match a prefix of "abc"; the
	// longer match (rule 1, consuming "ab") must win even though rule 0
	// was declared first.
	dfa := automaton.CompileRules([]pattern.Pattern{
		pattern.Char('a'),
		pattern.Str("ab"),
	})
	rule, n := simulate(dfa, "abc")
	require.Equal(t, 1, rule)
	require.Equal(t, 2, n)
}

func TestDeclarationOrderTieBreakOnEqualLength(t *testing.T) {
	// Two rules matching the identical one-character string: the rule
	// declared first (lower index) must win.
	dfa := automaton.CompileRules([]pattern.Pattern{
		pattern.Char('x'),
		pattern.Char('x'),
	})
	rule, n := simulate(dfa, "x")
	require.Equal(t, 0, rule)
	require.Equal(t, 1, n)
}

func TestManyMatchesZeroOrMore(t *testing.T) {
	dfa := automaton.CompileRules([]pattern.Pattern{
		pattern.Many(pattern.Char('a')),
	})
	rule, n := simulate(dfa, "aaab")
	require.Equal(t, 0, rule)
	require.Equal(t, 3, n)

	rule, n = simulate(dfa, "b")
	require.Equal(t, 0, rule)
	require.Equal(t, 0, n)
}

func TestMany1RequiresAtLeastOne(t *testing.T) {
	dfa := automaton.CompileRules([]pattern.Pattern{
		pattern.Many1(pattern.Char('a')),
	})
	rule, _ := simulate(dfa, "b")
	require.Equal(t, automaton.NoAccept, rule)
}

func TestPassAcceptsImmediately(t *testing.T) {
	dfa := automaton.CompileRules([]pattern.Pattern{
		pattern.Pass(),
	})
	rule, n := simulate(dfa, "anything")
	require.Equal(t, 0, rule)
	require.Equal(t, 0, n)
}

func TestOrPrefersLongestThenDeclarationOrder(t *testing.T) {
	// ".." and "..." and "." at once, mirroring noModOperator's shape:
	// "..." must win over "..", which must win over ".".
	dot := pattern.Str(".")
	dotdot := pattern.Str("..")
	dotdotdot := pattern.Str("...")
	dfa := automaton.CompileRules([]pattern.Pattern{dotdotdot, dotdot, dot})

	rule, n := simulate(dfa, "...")
	require.Equal(t, 0, rule)
	require.Equal(t, 3, n)

	rule, n = simulate(dfa, "..")
	require.Equal(t, 1, rule)
	require.Equal(t, 2, n)

	rule, n = simulate(dfa, ".")
	require.Equal(t, 2, rule)
	require.Equal(t, 1, n)
}

func TestDeadStateOnUnknownTransition(t *testing.T) {
	dfa := automaton.CompileRules([]pattern.Pattern{pattern.Char('a')})
	require.Equal(t, automaton.DeadState, dfa.Step(automaton.Start, 'z'))
}
