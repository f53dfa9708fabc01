package parser_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/aledsdavies/blockexpr/pkgs/ast"
	"github.com/aledsdavies/blockexpr/pkgs/parser"
)

func str(s string) *string { return &s }

// Scenario 1: simple juxtaposition with one space between tokens.
func TestParseSimpleApplication(t *testing.T) {
	m := parser.Parse("foo bar")
	want := ast.Module{
		FirstLine: ast.LineRequired{
			Body: ast.App{Fn: ast.Var{Name: "foo"}, Spacing: 1, Arg: ast.Var{Name: "bar"}},
		},
	}
	require.Empty(t, cmp.Diff(want, *m))
}

// Scenario 2 & 3: numbers with a base prefix, and a dangling base.
func TestParseNumberWithBase(t *testing.T) {
	m := parser.Parse("16_ff")
	want := ast.Module{
		FirstLine: ast.LineRequired{Body: ast.Number{Base: str("16"), Digits: "ff"}},
	}
	require.Empty(t, cmp.Diff(want, *m))
}

func TestParseNumberDanglingBase(t *testing.T) {
	m := parser.Parse("16_")
	want := ast.Module{
		FirstLine: ast.LineRequired{Body: ast.NumberDanglingBase{Digits: "16"}},
	}
	require.Empty(t, cmp.Diff(want, *m))
}

// Scenario 4: a parenthesized application.
func TestParseParenthesizedGroup(t *testing.T) {
	m := parser.Parse("(a b)")
	want := ast.Module{
		FirstLine: ast.LineRequired{
			Body: ast.Group{
				Inner: ast.App{Fn: ast.Var{Name: "a"}, Spacing: 1, Arg: ast.Var{Name: "b"}},
			},
		},
	}
	require.Empty(t, cmp.Diff(want, *m))
}

// Scenario 5: a two-line nested block attached to its parent line via App.
func TestParseNestedBlock(t *testing.T) {
	m := parser.Parse("a\n  b\n  c")
	want := ast.Module{
		FirstLine: ast.LineRequired{
			Body: ast.App{
				Fn:      ast.Var{Name: "a"},
				Spacing: 0,
				Arg: ast.Block{
					Indent:    2,
					FirstLine: ast.LineRequired{Body: ast.Var{Name: "b"}},
					Lines:     []ast.Line{{Body: ast.Var{Name: "c"}}},
				},
			},
		},
	}
	require.Empty(t, cmp.Diff(want, *m))
}

// Scenario 6: single- and triple-quoted text literals.
func TestParseTextLiterals(t *testing.T) {
	m := parser.Parse("'hello'")
	want := ast.Module{
		FirstLine: ast.LineRequired{
			Body: ast.Text{Quote: ast.SingleQuote, Segments: []ast.TextSegment{ast.TextPlain{Value: "hello"}}},
		},
	}
	require.Empty(t, cmp.Diff(want, *m))
}

func TestParseTripleQuotedTextToleratesEmbeddedSingleQuote(t *testing.T) {
	m := parser.Parse("'''x'y'''")
	want := ast.Module{
		FirstLine: ast.LineRequired{
			Body: ast.Text{Quote: ast.TripleQuote, Segments: []ast.TextSegment{ast.TextPlain{Value: "x'y"}}},
		},
	}
	require.Empty(t, cmp.Diff(want, *m))
}

// Boundary: empty input produces a Module with one empty first line.
func TestParseEmptyInput(t *testing.T) {
	m := parser.Parse("")
	want := ast.Module{FirstLine: ast.LineRequired{}}
	require.Empty(t, cmp.Diff(want, *m))
}

// Boundary: whitespace-only input produces a Module of empty lines.
func TestParseWhitespaceOnlyInput(t *testing.T) {
	m := parser.Parse("\n\n")
	require.Nil(t, m.FirstLine.Body)
}

// Longest-match precedence: "a...b" must scan the operator as a single
// "..." token, not as "." three times or ".." plus ".".
func TestOperatorLongestMatchPrecedence(t *testing.T) {
	m := parser.Parse("a...b")
	outer, ok := m.FirstLine.Body.(ast.App)
	require.True(t, ok)
	require.Equal(t, ast.Var{Name: "b"}, outer.Arg)

	inner, ok := outer.Fn.(ast.App)
	require.True(t, ok)
	require.Equal(t, ast.Var{Name: "a"}, inner.Fn)
	require.Equal(t, ast.Operator{Name: "..."}, inner.Arg)
}

// Errors embedded in the AST rather than thrown.
func TestUnmatchedCloseIsEmbedded(t *testing.T) {
	m := parser.Parse(")")
	want := ast.Module{FirstLine: ast.LineRequired{Body: ast.GroupUnmatchedClose{}}}
	require.Empty(t, cmp.Diff(want, *m))
}

func TestUnclosedGroupAtEOF(t *testing.T) {
	m := parser.Parse("(a")
	body, ok := m.FirstLine.Body.(ast.GroupUnclosed)
	require.True(t, ok)
	require.Equal(t, ast.Var{Name: "a"}, body.Inner)
}

func TestInvalidIdentifierSuffix(t *testing.T) {
	// '!' is an identBreaker, so it can't exercise this path — it ends the
	// identifier cleanly and gets lexed as its own Operator. '?' is not a
	// breaker, so "foo?bar" is the genuine invalid-suffix case.
	m := parser.Parse("foo?bar")
	body, ok := m.FirstLine.Body.(ast.IdentInvalidSuffix)
	require.True(t, ok)
	require.Equal(t, ast.Var{Name: "foo"}, body.Body)
	require.Equal(t, "?bar", body.Tail)
}

func TestModifierOperator(t *testing.T) {
	m := parser.Parse("x += y")
	app, ok := m.FirstLine.Body.(ast.App)
	require.True(t, ok)
	mid := app.Fn.(ast.App)
	require.Equal(t, ast.Modifier{Name: "+"}, mid.Arg)
}

func TestBlockInvalidIndentationOnUnmatchedDedent(t *testing.T) {
	// "c" dedents to indent 1, which matches neither the indent-2 block
	// nor the module's indent-0 level: it must open a fresh invalid block.
	// Both the valid indent-2 block and the invalid indent-1 block attach
	// to "a" in turn, left-associatively, since neither ever starts a
	// line of its own at the module's top level.
	m := parser.Parse("a\n  b\n c\n")
	require.Empty(t, m.OtherLines)

	outer, ok := m.FirstLine.Body.(ast.App)
	require.True(t, ok)
	_, isInvalid := outer.Arg.(ast.BlockInvalidIndentation)
	require.True(t, isInvalid)

	inner, ok := outer.Fn.(ast.App)
	require.True(t, ok)
	require.Equal(t, ast.Var{Name: "a"}, inner.Fn)
	_, isBlock := inner.Arg.(ast.Block)
	require.True(t, isBlock)
}
