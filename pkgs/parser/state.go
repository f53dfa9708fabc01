// Package parser is the semantic-action runtime: the
// mutable Ctx the scanner's rule actions mutate, the lexical actions that
// build identifiers/operators/numbers/text/groups, and the indentation
// aggregator that turns lines into nested blocks. pkgs/lexer supplies the
// mechanics (group stack, DFA-driven longest match); this package supplies
// what the matches mean.
package parser

import (
	"github.com/aledsdavies/blockexpr/pkgs/ast"
	"github.com/aledsdavies/blockexpr/pkgs/lexer"
)

// textState is one entry of the text-segment stack: a text literal being
// accumulated, possibly nested inside another (a `\u` escape cannot nest
// further text, but the stack shape is kept general rather than special
// cased, matching "text-segment stack (for nested/interrupted text
// literals)").
type textState struct {
	quote    ast.QuoteSize
	segments []ast.TextSegment
}

// blockState mirrors BlockState. firstLine is nil until the block's
// first nonblank line is submitted; emptyLines collects blank-line offsets
// seen before that point (folded into the eventual Block/Module as
// LeadingEmptyLines once firstLine is known, or used standalone if the
// block turns out to be entirely blank).
type blockState struct {
	isValid    bool
	indent     int
	emptyLines []int
	firstLine  *ast.LineRequired
	lines      []ast.Line

	// hasAttach/attachIsFirst/attachLineIdx locate the most recently
	// submitted real (non-blank) line's Body in this block — the slot a
	// nested block opened by the next indent increase attaches onto, via
	// attachBlock. Re-resolved through the current firstLine/lines at
	// attach time rather than cached as a pointer into lines, since lines
	// can still grow (a blank line appended) between submitLine and the
	// eventual attach.
	hasAttach     bool
	attachIsFirst bool
	attachLineIdx int
}

// Ctx is the single mutable value every rule action operates on —
// Parser State, plus the lexer.Scanner it drives. Nothing else in this
// package holds parser state; everything is reached through Ctx.
type Ctx struct {
	scanner *lexer.Scanner

	result   ast.Node
	astStack []ast.Node // nil entries are valid (an empty `result`)

	lastOffset      int
	lastOffsetStack []int

	identBody ast.Identifier

	numberPart2 string // digit run scanned so far, pending NUMBER_PHASE2's verdict

	textStack []textState

	groupLeftOffsetStack []int

	blockStack  []blockState
	currentBlock blockState

	module *ast.Module
	done   bool
}

// pushAST saves the in-progress result and starts a fresh nested one,
// entering a group or block context.
func (c *Ctx) pushAST() {
	c.astStack = append(c.astStack, c.result)
	c.result = nil
}

// popAST restores the result saved by the matching pushAST. Popping an
// empty stack is an invariant violation.
func (c *Ctx) popAST() {
	n := len(c.astStack)
	if n == 0 {
		panic("parser: internal error: AST stack underflow")
	}
	c.result = c.astStack[n-1]
	c.astStack = c.astStack[:n-1]
}

func (c *Ctx) pushLastOffset() {
	c.lastOffsetStack = append(c.lastOffsetStack, c.lastOffset)
	c.lastOffset = 0
}

func (c *Ctx) popLastOffset() {
	n := len(c.lastOffsetStack)
	if n == 0 {
		panic("parser: internal error: last-offset stack underflow")
	}
	c.lastOffset = c.lastOffsetStack[n-1]
	c.lastOffsetStack = c.lastOffsetStack[:n-1]
}

// useLastOffset reads and clears the pending inter-token whitespace width.
func (c *Ctx) useLastOffset() int {
	v := c.lastOffset
	c.lastOffset = 0
	return v
}

// onWhitespace records shift plus the most recent match's width as pending
// inter-token whitespace.
func (c *Ctx) onWhitespace(shift int) {
	c.lastOffset += c.scanner.MatchLen() + shift
}

// app appends t to result with left-associative juxtaposition-as-
// application, consuming whatever whitespace was pending beforehand
// either way: when result is empty, that whitespace was leading
// indentation already accounted for by the block aggregator, not spacing
// between two tokens, so it's discarded rather than attached to an App
// node.
func (c *Ctx) app(t ast.Node) {
	spacing := c.useLastOffset()
	if c.result == nil {
		c.result = t
		return
	}
	c.result = ast.App{Fn: c.result, Spacing: spacing, Arg: t}
}

// submitIdent finalizes whatever identifier/operator is pending in
// identBody, appending it to result. Used both by the suffix-check
// groups' own actions and as onEOF's defensive finalize.
func (c *Ctx) submitIdent() {
	if c.identBody == nil {
		return
	}
	body := c.identBody
	c.identBody = nil
	c.app(body)
}
