// Package pretty reconstructs source text from a parsed Module. Every
// offset and spacing value the parser records exists for exactly this
// purpose: a successfully parsed Module prints back out byte-for-byte
// identical to the text it was parsed from.
package pretty

import (
	"fmt"
	"strings"

	"github.com/aledsdavies/blockexpr/pkgs/ast"
)

// Print renders m back to source text.
func Print(m ast.Module) string {
	var b strings.Builder
	printLeadingEmptyLines(&b, m.LeadingEmptyLines)
	printLineRequired(&b, m.FirstLine)
	for _, l := range m.OtherLines {
		b.WriteByte('\n')
		printLine(&b, l)
	}
	return b.String()
}

func printLeadingEmptyLines(b *strings.Builder, offsets []int) {
	for _, off := range offsets {
		b.WriteString(strings.Repeat(" ", off))
		b.WriteByte('\n')
	}
}

func printLineRequired(b *strings.Builder, l ast.LineRequired) {
	if l.Body != nil {
		printNode(b, l.Body)
	}
	b.WriteString(strings.Repeat(" ", l.TrailingOffset))
}

func printLine(b *strings.Builder, l ast.Line) {
	if l.Body != nil {
		printNode(b, l.Body)
	}
	b.WriteString(strings.Repeat(" ", l.TrailingOffset))
}

func printNode(b *strings.Builder, n ast.Node) {
	switch v := n.(type) {
	case ast.Var:
		b.WriteString(v.Name)
	case ast.Cons:
		b.WriteString(v.Name)
	case ast.Wildcard:
		b.WriteByte('_')
	case ast.Operator:
		b.WriteString(v.Name)
	case ast.Modifier:
		b.WriteString(v.Name)
		b.WriteByte('=')
	case ast.IdentInvalidSuffix:
		printNode(b, v.Body)
		b.WriteString(v.Tail)
	case ast.App:
		printApp(b, v)
	case ast.Number:
		if v.Base != nil {
			b.WriteString(*v.Base)
			b.WriteByte('_')
		}
		b.WriteString(v.Digits)
	case ast.NumberDanglingBase:
		b.WriteString(v.Digits)
		b.WriteByte('_')
	case ast.Text:
		printText(b, v)
	case ast.Group:
		b.WriteByte('(')
		b.WriteString(strings.Repeat(" ", v.LeftOffset))
		if v.Inner != nil {
			printNode(b, v.Inner)
		}
		b.WriteString(strings.Repeat(" ", v.RightOffset))
		b.WriteByte(')')
	case ast.GroupUnclosed:
		b.WriteByte('(')
		if v.LeftOffset != nil {
			b.WriteString(strings.Repeat(" ", *v.LeftOffset))
			printNode(b, v.Inner)
		}
	case ast.GroupUnmatchedClose:
		b.WriteByte(')')
	case ast.Unrecognized:
		b.WriteString(v.Text)
	case ast.Block:
		printBlock(b, v)
	case ast.BlockInvalidIndentation:
		printBlock(b, v.Block)
	default:
		panic(fmt.Sprintf("pretty: unhandled node type %T", n))
	}
}

// printApp handles the one shape that isn't simple same-line juxtaposition:
// an indented block attached as a line's trailing argument. Spacing only
// means something for an inline Arg; a Block/BlockInvalidIndentation Arg
// is reached by a newline and its own Indent, not by Spacing spaces (see
// DESIGN.md on how submitBlock attaches a closed block to its parent
// line's expression).
func printApp(b *strings.Builder, a ast.App) {
	printNode(b, a.Fn)
	switch a.Arg.(type) {
	case ast.Block, ast.BlockInvalidIndentation:
		printNode(b, a.Arg)
	default:
		b.WriteString(strings.Repeat(" ", a.Spacing))
		printNode(b, a.Arg)
	}
}

func printBlock(b *strings.Builder, blk ast.Block) {
	printLeadingEmptyLines(b, blk.LeadingEmptyLines)
	b.WriteByte('\n')
	b.WriteString(strings.Repeat(" ", blk.Indent))
	printLineRequired(b, blk.FirstLine)
	for _, l := range blk.Lines {
		b.WriteByte('\n')
		if l.Body != nil {
			b.WriteString(strings.Repeat(" ", blk.Indent))
		}
		printLine(b, l)
	}
}

func printText(b *strings.Builder, t ast.Text) {
	quote := "'"
	if t.Quote == ast.TripleQuote {
		quote = "'''"
	}
	b.WriteString(quote)
	for _, seg := range t.Segments {
		switch s := seg.(type) {
		case ast.TextPlain:
			b.WriteString(s.Value)
		case ast.TextEscapeUnicodeU16:
			b.WriteString("\\u")
			b.WriteString(s.Hex)
		default:
			panic(fmt.Sprintf("pretty: unhandled text segment type %T", seg))
		}
	}
	b.WriteString(quote)
}
