package parser

import "github.com/aledsdavies/blockexpr/pkgs/ast"

// onNewline fires on a bare "\n" in NORMAL: the line that just ended gets
// submitted, then NEWLINE takes over to classify what follows.
func onNewline() {
	current.submitLine()
	current.scanner.BeginGroup(groupNewline)
}

// onNormalEOF fires on EOF reached without a preceding newline — the
// in-progress line still needs submitting.
func onNormalEOF() {
	current.submitLine()
	current.onEOF()
}

func onWhitespaceRule() {
	current.onWhitespace(0)
}

func onUnrecognized() {
	current.app(ast.Unrecognized{Text: current.scanner.CurrentMatch()})
}

// onEmptyLine fires on a blank line inside NEWLINE (whitespace, possibly
// none, followed by another newline). Stays in NEWLINE so a run of blank
// lines is handled one Advance call at a time without ever leaving the
// group.
func onEmptyLine() {
	offset := current.scanner.MatchLen() - 1
	b := &current.currentBlock
	if b.firstLine == nil {
		b.emptyLines = append(b.emptyLines, offset)
	} else {
		b.lines = append(b.lines, ast.Line{TrailingOffset: offset})
	}
}

// onEOFLine fires on a blank trailing run immediately followed by EOF: the
// final, unterminated blank segment after the last real newline, recorded
// the same way onEmptyLine records a newline-terminated one (the rule
// matches the sentinel too, so MatchLen overcounts by exactly one).
func onEOFLine() {
	current.scanner.EndGroup()
	offset := current.scanner.MatchLen() - 1
	b := &current.currentBlock
	if b.firstLine == nil {
		b.emptyLines = append(b.emptyLines, offset)
	} else {
		b.lines = append(b.lines, ast.Line{TrailingOffset: offset})
	}
	current.onEOF()
}

// onBlockNewline fires when the line following a newline has real
// content: the indentation just scanned decides whether this continues
// the current block, opens a new nested one, or closes one or more.
func onBlockNewline() {
	current.scanner.EndGroup()
	current.onWhitespace(0)
	newIndent := current.useLastOffset()
	switch {
	case newIndent == current.currentBlock.indent:
		// same level: nothing further to do before NORMAL resumes
		// scanning this line's first token.
	case newIndent > current.currentBlock.indent:
		current.onBlockBegin(newIndent)
	default:
		current.onBlockEnd(newIndent)
	}
}

// onBlockBegin opens a new nested block at indent, saving the enclosing
// block and the in-progress AST/offset context around it.
func (c *Ctx) onBlockBegin(indent int) {
	c.pushAST()
	c.pushLastOffset()
	c.blockStack = append(c.blockStack, c.currentBlock)
	c.currentBlock = blockState{isValid: true, indent: indent}
}

// onBlockEnd closes blocks until one at exactly newIndent is found (or, if
// none exists, opens a fresh invalid one at newIndent nested under
// whatever block remains).
func (c *Ctx) onBlockEnd(newIndent int) {
	for newIndent < c.currentBlock.indent {
		c.submitBlock()
	}
	if newIndent > c.currentBlock.indent {
		c.pushAST()
		c.pushLastOffset()
		c.blockStack = append(c.blockStack, c.currentBlock)
		c.currentBlock = blockState{isValid: false, indent: newIndent}
	}
}

// submitLine appends the in-progress result (or a blank placeholder, if
// nothing was parsed) as the current block's next line.
func (c *Ctx) submitLine() {
	trailing := c.useLastOffset()
	if c.result == nil {
		// A blank line reached here (rather than through onEmptyLine) is
		// the very first line of this block ending blank, straight out of
		// NORMAL's own bare-newline rule — firstLine is always still nil
		// in that case. Route it the same way onEmptyLine does, so a run
		// of leading blank lines is recorded consistently regardless of
		// which rule happened to observe each one.
		if c.currentBlock.firstLine == nil {
			c.currentBlock.emptyLines = append(c.currentBlock.emptyLines, trailing)
			return
		}
		c.currentBlock.lines = append(c.currentBlock.lines, ast.Line{TrailingOffset: trailing})
		return
	}
	body := c.result
	c.result = nil
	if c.currentBlock.firstLine == nil {
		c.currentBlock.firstLine = &ast.LineRequired{Body: body, TrailingOffset: trailing}
		c.currentBlock.hasAttach = true
		c.currentBlock.attachIsFirst = true
		return
	}
	c.currentBlock.lines = append(c.currentBlock.lines, ast.Line{Body: body, TrailingOffset: trailing})
	c.currentBlock.hasAttach = true
	c.currentBlock.attachIsFirst = false
	c.currentBlock.attachLineIdx = len(c.currentBlock.lines) - 1
}

// submitBlock closes the current block, wrapping it in
// BlockInvalidIndentation if it was opened to fill a dedent gap, and
// attaches it to the now-restored parent context.
func (c *Ctx) submitBlock() {
	first := c.currentBlock.firstLine
	if first == nil {
		// A block with no real content at all (every line inside it was
		// blank, or it was an invalid filler block immediately closed
		// again): synthesize an empty required line so the shape stays
		// total.
		first = &ast.LineRequired{}
	}
	blk := ast.Block{
		Indent:            c.currentBlock.indent,
		LeadingEmptyLines: c.currentBlock.emptyLines,
		FirstLine:         *first,
		Lines:             c.currentBlock.lines,
	}
	var node ast.Node = blk
	if !c.currentBlock.isValid {
		node = ast.BlockInvalidIndentation{Block: blk}
	}

	n := len(c.blockStack)
	c.currentBlock = c.blockStack[n-1]
	c.blockStack = c.blockStack[:n-1]

	c.popAST()
	c.popLastOffset()
	c.attachBlock(node)
}

// attachBlock wires a just-closed nested block onto the line it visually
// hangs off of: the most recently submitted real line in the
// now-current block. That line's Body was already moved out of `result`
// by submitLine before the indent increase was even seen, so this
// reaches directly into firstLine/lines rather than going through app().
// If no real line exists yet at this level (a block opening straight
// into another with nothing of its own), falls back to the ordinary
// app() path.
func (c *Ctx) attachBlock(node ast.Node) {
	b := &c.currentBlock
	if !b.hasAttach {
		c.app(node)
		return
	}
	if b.attachIsFirst {
		b.firstLine.Body = ast.App{Fn: b.firstLine.Body, Arg: node}
		return
	}
	line := &b.lines[b.attachLineIdx]
	line.Body = ast.App{Fn: line.Body, Arg: node}
}

// submitModule closes every remaining open block and produces the single
// Module this parse yields.
func (c *Ctx) submitModule() {
	c.onBlockEnd(0)

	if c.currentBlock.firstLine == nil {
		leading := c.currentBlock.emptyLines
		var first ast.LineRequired
		var other []ast.Line
		if len(leading) > 0 {
			first = ast.LineRequired{TrailingOffset: leading[0]}
			for _, off := range leading[1:] {
				other = append(other, ast.Line{TrailingOffset: off})
			}
		}
		other = append(other, c.currentBlock.lines...)
		c.module = &ast.Module{FirstLine: first, OtherLines: other}
		return
	}

	c.module = &ast.Module{
		LeadingEmptyLines: c.currentBlock.emptyLines,
		FirstLine:         *c.currentBlock.firstLine,
		OtherLines:        c.currentBlock.lines,
	}
}

// onEOF finalizes any pending identifier (a defensive no-op in practice —
// every suffix-check group's own Pass rule already flushes identBody
// before genuine EOF, since Sentinel is never part of any NoneOf-derived
// pattern) and closes out the parse.
func (c *Ctx) onEOF() {
	c.submitIdent()
	c.submitModule()
	c.done = true
}
