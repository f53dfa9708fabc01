// Package diagnostics renders the error-shaped nodes a parse embeds in its
// Module (IdentInvalidSuffix, NumberDanglingBase, GroupUnclosed,
// GroupUnmatchedClose, BlockInvalidIndentation, Unrecognized) into located,
// caret-pointed reports. It only ever reads a Module; it never changes
// what pkgs/parser produced.
package diagnostics

import (
	"fmt"
	"strings"

	"github.com/aledsdavies/blockexpr/pkgs/ast"
)

// Finding is one error-shaped node, located in the source it was parsed
// from.
type Finding struct {
	Line    int // 1-based
	Column  int // 1-based
	Message string
}

// Collect walks m and returns one Finding per error-shaped node, in
// source order. Positions are computed by walking the tree in the same
// order pretty.Print prints it, so they refer to pretty.Print's output —
// Collect never needs the original input string.
func Collect(m ast.Module) []Finding {
	w := &walker{line: 1, col: 1}
	w.leadingEmptyLines(m.LeadingEmptyLines)
	w.lineRequired(m.FirstLine)
	for _, l := range m.OtherLines {
		w.advance("\n")
		w.line1(l.Body, l.TrailingOffset)
	}
	return w.findings
}

// Render formats one Finding against input (the same text pretty.Print(m)
// would produce for the Module Collect walked) in the Rust/Clang-style
// caret-snippet shown by opal-lang-opal/pkgs/parser/errors.go's
// createCodeSnippet.
func Render(input string, f Finding) string {
	lines := strings.Split(input, "\n")
	if f.Line < 1 || f.Line > len(lines) {
		return f.Message
	}
	content := lines[f.Line-1]

	var b strings.Builder
	fmt.Fprintf(&b, "%s\n", f.Message)
	fmt.Fprintf(&b, "  --> %d:%d\n", f.Line, f.Column)
	b.WriteString("   |\n")
	fmt.Fprintf(&b, "%2d | %s\n", f.Line, content)
	b.WriteString("   | ")
	if f.Column > 0 && f.Column <= len(content)+1 {
		b.WriteString(strings.Repeat(" ", f.Column-1) + "^")
	}
	return b.String()
}

// walker mirrors pretty.Print's traversal, but tracks (line, col) instead
// of assembling output text, recording a Finding wherever it passes an
// error-shaped node.
type walker struct {
	line, col int
	findings  []Finding
}

func (w *walker) advance(s string) {
	for _, r := range s {
		if r == '\n' {
			w.line++
			w.col = 1
			continue
		}
		w.col++
	}
}

func (w *walker) spaces(n int) {
	w.col += n
}

func (w *walker) leadingEmptyLines(offsets []int) {
	for _, off := range offsets {
		w.spaces(off)
		w.advance("\n")
	}
}

func (w *walker) lineRequired(l ast.LineRequired) {
	if l.Body != nil {
		w.node(l.Body)
	}
	w.spaces(l.TrailingOffset)
}

func (w *walker) line1(body ast.Node, trailing int) {
	if body != nil {
		w.node(body)
	}
	w.spaces(trailing)
}

func (w *walker) report(msg string) {
	w.findings = append(w.findings, Finding{Line: w.line, Column: w.col, Message: msg})
}

func (w *walker) node(n ast.Node) {
	switch v := n.(type) {
	case ast.Var:
		w.advance(v.Name)
	case ast.Cons:
		w.advance(v.Name)
	case ast.Wildcard:
		w.advance("_")
	case ast.Operator:
		w.advance(v.Name)
	case ast.Modifier:
		w.advance(v.Name + "=")
	case ast.IdentInvalidSuffix:
		w.report(fmt.Sprintf("invalid identifier suffix %q", v.Tail))
		w.node(v.Body)
		w.advance(v.Tail)
	case ast.App:
		w.node(v.Fn)
		switch v.Arg.(type) {
		case ast.Block, ast.BlockInvalidIndentation:
			w.node(v.Arg)
		default:
			w.spaces(v.Spacing)
			w.node(v.Arg)
		}
	case ast.Number:
		if v.Base != nil {
			w.advance(*v.Base + "_")
		}
		w.advance(v.Digits)
	case ast.NumberDanglingBase:
		w.report("number literal has a dangling base prefix")
		w.advance(v.Digits + "_")
	case ast.Text:
		w.text(v)
	case ast.Group:
		w.advance("(")
		w.spaces(v.LeftOffset)
		if v.Inner != nil {
			w.node(v.Inner)
		}
		w.spaces(v.RightOffset)
		w.advance(")")
	case ast.GroupUnclosed:
		w.report("unclosed group")
		w.advance("(")
		if v.LeftOffset != nil {
			w.spaces(*v.LeftOffset)
			w.node(v.Inner)
		}
	case ast.GroupUnmatchedClose:
		w.report("unmatched closing paren")
		w.advance(")")
	case ast.Unrecognized:
		w.report(fmt.Sprintf("unrecognized character %q", v.Text))
		w.advance(v.Text)
	case ast.Block:
		w.block(v)
	case ast.BlockInvalidIndentation:
		w.report("block indentation doesn't match any enclosing level")
		w.block(v.Block)
	default:
		panic(fmt.Sprintf("diagnostics: unhandled node type %T", n))
	}
}

func (w *walker) block(blk ast.Block) {
	w.leadingEmptyLines(blk.LeadingEmptyLines)
	w.advance("\n")
	w.spaces(blk.Indent)
	w.lineRequired(blk.FirstLine)
	for _, l := range blk.Lines {
		w.advance("\n")
		if l.Body != nil {
			w.spaces(blk.Indent)
		}
		w.line1(l.Body, l.TrailingOffset)
	}
}

func (w *walker) text(t ast.Text) {
	quote := "'"
	if t.Quote == ast.TripleQuote {
		quote = "'''"
	}
	w.advance(quote)
	for _, seg := range t.Segments {
		switch s := seg.(type) {
		case ast.TextPlain:
			w.advance(s.Value)
		case ast.TextEscapeUnicodeU16:
			w.advance("\\u" + s.Hex)
		default:
			panic(fmt.Sprintf("diagnostics: unhandled text segment type %T", seg))
		}
	}
	w.advance(quote)
}
