package parser

import (
	"golang.org/x/text/unicode/norm"

	"github.com/aledsdavies/blockexpr/pkgs/ast"
)

func onTextStartSingle() {
	current.textStack = append(current.textStack, textState{quote: ast.SingleQuote})
	current.scanner.BeginGroup(groupText)
}

func onTextStartTriple() {
	current.textStack = append(current.textStack, textState{quote: ast.TripleQuote})
	current.scanner.BeginGroup(groupText)
}

func currentText() *textState {
	return &current.textStack[len(current.textStack)-1]
}

// appendPlain merges consecutive plain runs into one segment rather than
// emitting a new TextPlain per Advance call.
func appendPlain(t *textState, s string) {
	if n := len(t.segments); n > 0 {
		if last, ok := t.segments[n-1].(ast.TextPlain); ok {
			t.segments[n-1] = ast.TextPlain{Value: last.Value + s}
			return
		}
	}
	t.segments = append(t.segments, ast.TextPlain{Value: s})
}

// onTextPlain NFC-normalizes the matched run before appending it, so
// equivalent Unicode sequences (a precomposed accented letter versus the
// same letter spelled as base-plus-combining-mark) compare equal
// downstream regardless of which form the source used.
func onTextPlain() {
	appendPlain(currentText(), norm.NFC.String(current.scanner.CurrentMatch()))
}

func onTextEscape() {
	hex := current.scanner.CurrentMatch()[2:] // drop leading "\u"
	t := currentText()
	t.segments = append(t.segments, ast.TextEscapeUnicodeU16{Hex: hex})
}

// onTextQuoteSingle and onTextQuoteTriple fire on a `'` or `'''` inside an
// active text literal: if it matches the quote size the literal was
// opened with, the literal closes; otherwise it's plain content (a stray
// `'` inside a triple-quoted literal, or part of a `'''` sequence inside
// one that isn't actually closing because the active literal is single-
// quoted — the latter can't occur in practice since a single-quoted
// literal's own `'` rule already wins at length 1 before `'''` could ever
// be attempted, but the dispatch stays general rather than assuming that).
func onTextQuoteSingle() { onTextQuote(ast.SingleQuote) }
func onTextQuoteTriple() { onTextQuote(ast.TripleQuote) }

func onTextQuote(q ast.QuoteSize) {
	t := currentText()
	if t.quote == q {
		node := ast.Text{Quote: q, Segments: t.segments}
		current.textStack = current.textStack[:len(current.textStack)-1]
		current.app(node)
		current.scanner.EndGroup()
		return
	}
	appendPlain(t, current.scanner.CurrentMatch())
}

// onTextEOF finalizes whatever was accumulated as a best-effort Text node
// when a literal runs off the end of input unterminated; the closed AST
// has no dedicated "unclosed text" variant, so an ordinary Text is emitted
// and EOF is rewound for the enclosing group to observe.
func onTextEOF() {
	t := currentText()
	node := ast.Text{Quote: t.quote, Segments: t.segments}
	current.textStack = current.textStack[:len(current.textStack)-1]
	current.app(node)
	current.scanner.EndGroup()
	current.scanner.Rewind()
}
