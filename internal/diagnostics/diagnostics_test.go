package diagnostics_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/aledsdavies/blockexpr/internal/diagnostics"
	"github.com/aledsdavies/blockexpr/pkgs/parser"
	"github.com/aledsdavies/blockexpr/pkgs/pretty"
)

func TestCollectFindsNothingOnCleanInput(t *testing.T) {
	m := parser.Parse("foo bar")
	require.Empty(t, diagnostics.Collect(*m))
}

func TestCollectLocatesUnmatchedCloseAtColumnOne(t *testing.T) {
	m := parser.Parse(")")
	findings := diagnostics.Collect(*m)
	require.Len(t, findings, 1)
	require.Equal(t, 1, findings[0].Line)
	require.Equal(t, 1, findings[0].Column)
}

func TestCollectLocatesFindingOnSecondLine(t *testing.T) {
	// "a\n  )" — the stray close paren sits on line 2, after two spaces
	// of indentation, so it should be reported at column 3.
	input := "a\n  )"
	m := parser.Parse(input)
	findings := diagnostics.Collect(*m)
	require.Len(t, findings, 1)
	require.Equal(t, 2, findings[0].Line)
	require.Equal(t, 3, findings[0].Column)
}

func TestRenderIncludesCaretAtColumn(t *testing.T) {
	input := ")"
	m := parser.Parse(input)
	findings := diagnostics.Collect(*m)
	require.Len(t, findings, 1)

	out := diagnostics.Render(pretty.Print(*m), findings[0])
	require.Contains(t, out, "1:1")
	require.Contains(t, out, "^")
}

func TestCollectFindsDanglingBase(t *testing.T) {
	m := parser.Parse("16_")
	findings := diagnostics.Collect(*m)
	require.Len(t, findings, 1)
	require.Contains(t, findings[0].Message, "dangling base")
}
