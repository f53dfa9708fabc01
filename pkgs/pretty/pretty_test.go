package pretty_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/aledsdavies/blockexpr/pkgs/parser"
	"github.com/aledsdavies/blockexpr/pkgs/pretty"
)

// roundTrip parses input and asserts pretty.Print reproduces it byte for
// byte, per spec.md §8's round-trip property.
func roundTrip(t *testing.T, input string) {
	t.Helper()
	m := parser.Parse(input)
	require.Equal(t, input, pretty.Print(*m))
}

func TestRoundTripSimpleApplication(t *testing.T) {
	roundTrip(t, "foo bar")
}

func TestRoundTripMultipleSpacingPreserved(t *testing.T) {
	roundTrip(t, "foo   bar")
}

func TestRoundTripNumberWithBase(t *testing.T) {
	roundTrip(t, "16_ff")
}

func TestRoundTripNumberDanglingBase(t *testing.T) {
	roundTrip(t, "16_")
}

func TestRoundTripParenthesizedGroup(t *testing.T) {
	roundTrip(t, "(a b)")
}

func TestRoundTripParenthesizedGroupWithInnerSpacing(t *testing.T) {
	roundTrip(t, "(  a b  )")
}

func TestRoundTripEmptyGroup(t *testing.T) {
	roundTrip(t, "()")
}

func TestRoundTripUnclosedGroup(t *testing.T) {
	roundTrip(t, "(a")
}

func TestRoundTripUnclosedEmptyGroup(t *testing.T) {
	roundTrip(t, "(")
}

func TestRoundTripUnmatchedClose(t *testing.T) {
	roundTrip(t, ")")
}

func TestRoundTripNestedBlock(t *testing.T) {
	roundTrip(t, "a\n  b\n  c")
}

func TestRoundTripDeeplyNestedBlock(t *testing.T) {
	roundTrip(t, "a\n  b\n    c\n  d")
}

func TestRoundTripBlockInvalidIndentation(t *testing.T) {
	roundTrip(t, "a\n  b\n c")
}

func TestRoundTripTextLiteral(t *testing.T) {
	roundTrip(t, "'hello'")
}

func TestRoundTripTripleQuotedTextWithEmbeddedSingleQuote(t *testing.T) {
	roundTrip(t, "'''x'y'''")
}

func TestRoundTripTextWithUnicodeEscape(t *testing.T) {
	roundTrip(t, "'A"+"\\u0041"+"B'")
}

func TestRoundTripInvalidIdentifierSuffix(t *testing.T) {
	roundTrip(t, "foo?bar")
}

func TestRoundTripModifierOperator(t *testing.T) {
	roundTrip(t, "x += y")
}

func TestRoundTripOperatorLongestMatch(t *testing.T) {
	roundTrip(t, "a...b")
}

func TestRoundTripUnrecognizedCharacter(t *testing.T) {
	// \x07 is above the catch-all's lower bound of 5 but matches no other
	// NORMAL rule; code points 1-4 match nothing at all.
	roundTrip(t, "a \x07 b")
}

func TestRoundTripLeadingEmptyLines(t *testing.T) {
	roundTrip(t, "\n\na")
}

func TestRoundTripBlankLineBetweenContentLines(t *testing.T) {
	roundTrip(t, "a\n\nb")
}

func TestRoundTripEmptyInput(t *testing.T) {
	roundTrip(t, "")
}

func TestRoundTripWhitespaceOnlyInput(t *testing.T) {
	roundTrip(t, "  \n  ")
}
