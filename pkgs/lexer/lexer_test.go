package lexer_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/aledsdavies/blockexpr/pkgs/lexer"
	"github.com/aledsdavies/blockexpr/pkgs/pattern"
)

func TestAdvanceDispatchesLongestMatch(t *testing.T) {
	var fired string

	g := lexer.Define("TEST")
	g.Rule(pattern.Char('a')).Run(func() { fired = "a" })
	g.Rule(pattern.Str("ab")).Run(func() { fired = "ab" })

	s := lexer.New("abc", g)
	action := s.Advance()
	action()

	require.Equal(t, "ab", fired)
	require.Equal(t, "ab", s.CurrentMatch())
	require.Equal(t, 2, s.MatchLen())
}

func TestChildRulesPrecedeInheritedOnEqualLength(t *testing.T) {
	var fired string

	parent := lexer.Define("PARENT")
	parent.Rule(pattern.Char('x')).Run(func() { fired = "parent" })

	child := lexer.Define("CHILD")
	lexer.SetParent(child, parent)
	child.Rule(pattern.Char('x')).Run(func() { fired = "child" })

	s := lexer.New("x", child)
	s.Advance()()

	require.Equal(t, "child", fired)
}

func TestBeginEndGroupSwitchesActiveRules(t *testing.T) {
	var fired string

	outer := lexer.Define("OUTER")
	inner := lexer.Define("INNER")
	inner.Rule(pattern.Char('y')).Run(func() { fired = "inner-y" })
	outer.Rule(pattern.Char('y')).Run(func() { fired = "outer-y" })
	outer.Rule(pattern.Char('(')).Run(func() {})

	s := lexer.New("(yy", outer)
	s.Advance()() // consumes "(" via outer's rule, no group switch yet
	require.Equal(t, outer, s.Current())

	s.BeginGroup(inner)
	require.Equal(t, inner, s.Current())
	s.Advance()()
	require.Equal(t, "inner-y", fired)

	s.EndGroup()
	require.Equal(t, outer, s.Current())
	s.Advance()()
	require.Equal(t, "outer-y", fired)
}

func TestEndGroupOnRootPanics(t *testing.T) {
	g := lexer.Define("ROOT")
	g.Rule(pattern.Pass()).Run(func() {})
	s := lexer.New("", g)
	require.Panics(t, func() { s.EndGroup() })
}

func TestRewindUndoesMostRecentMatch(t *testing.T) {
	g := lexer.Define("TEST")
	g.Rule(pattern.Str("ab")).Run(func() {})
	g.Rule(pattern.Char(pattern.Sentinel)).Run(func() {})

	s := lexer.New("ab", g)
	s.Advance()()
	require.Equal(t, 2, s.Pos())

	s.Rewind()
	require.Equal(t, 0, s.Pos())
}

func TestNoAcceptingStatePanics(t *testing.T) {
	g := lexer.Define("EMPTY")
	g.Rule(pattern.Char('a')).Run(func() {})
	s := lexer.New("b", g)
	require.Panics(t, func() { s.Advance() })
}
