// Package ast defines the tree the parser runtime (pkgs/parser) builds.
// It is intentionally thin: a closed set of tagged node types and nothing
// else — no validation, no traversal helpers beyond what pkgs/pretty needs
// to round-trip a tree back to source text.
package ast

// Node is the marker interface implemented by every AST variant. The tree
// is owned exclusively by the Module that roots it; nodes are never shared
// or reused across parses.
type Node interface {
	astNode()
}

// Identifier is the subset of Node produced by the identifier/operator
// lexical actions — the values ParserState.identBody can hold while a
// suffix check is pending.
type Identifier interface {
	Node
	identifier()
}

// Var is a lowercase-leading identifier: variable.
type Var struct {
	Name string
}

func (Var) astNode()    {}
func (Var) identifier() {}

// Cons is an uppercase-leading identifier: a constructor/type name.
type Cons struct {
	Name string
}

func (Cons) astNode()    {}
func (Cons) identifier() {}

// Wildcard is the bare `_` identifier.
type Wildcard struct{}

func (Wildcard) astNode()    {}
func (Wildcard) identifier() {}

// Operator is a run of operator characters, e.g. `+`, `<*>`, `>>=`.
type Operator struct {
	Name string
}

func (Operator) astNode()    {}
func (Operator) identifier() {}

// Modifier is an operator immediately followed by `=`, e.g. `+=`.
type Modifier struct {
	Name string
}

func (Modifier) astNode()    {}
func (Modifier) identifier() {}

// IdentInvalidSuffix wraps an identifier or operator immediately followed
// by non-breaker characters: `foo!bar` lexes as one invalid identifier
// rather than `foo` applied to `!bar`.
type IdentInvalidSuffix struct {
	Body Identifier
	Tail string
}

func (IdentInvalidSuffix) astNode()    {}
func (IdentInvalidSuffix) identifier() {}

// App is left-associative juxtaposition-as-application: `f x` parses as
// App{Fn: f, Spacing: 1, Arg: x}. Spacing is the whitespace width between
// the textual end of Fn and the start of Arg.
type App struct {
	Fn      Node
	Spacing int
	Arg     Node
}

func (App) astNode() {}

// Number is a numeric literal, optionally with a base prefix: `16_ff` is
// Number{Base: "16", Digits: "ff"}; `42` is Number{Base: nil, Digits: "42"}.
type Number struct {
	Base   *string
	Digits string
}

func (Number) astNode() {}

// NumberDanglingBase is `digits_` with nothing following the underscore.
type NumberDanglingBase struct {
	Digits string
}

func (NumberDanglingBase) astNode() {}

// QuoteSize distinguishes `'...'` from `'''...'''`.
type QuoteSize int

const (
	SingleQuote QuoteSize = iota
	TripleQuote
)

// TextSegment is one piece of a Text literal's body.
type TextSegment interface {
	textSegment()
}

// TextPlain is a run of literal characters inside a text literal.
type TextPlain struct {
	Value string
}

func (TextPlain) textSegment() {}

// TextEscapeUnicodeU16 is a `\u` escape: the matched text minus its
// leading `\u`, up to four characters.
type TextEscapeUnicodeU16 struct {
	Hex string
}

func (TextEscapeUnicodeU16) textSegment() {}

// Text is a single- or triple-quoted text literal.
type Text struct {
	Quote    QuoteSize
	Segments []TextSegment
}

func (Text) astNode() {}

// Group is a parenthesized expression: `(a b)` is
// Group{LeftOffset: 0, Inner: App{...}, RightOffset: 0}.
type Group struct {
	LeftOffset  int
	Inner       Node // nil if the parens were empty
	RightOffset int
}

func (Group) astNode() {}

// GroupUnclosed is an opening `(` with no matching `)` before EOF.
// LeftOffset is nil when no inner expression was ever accumulated — in
// that case the would-be left offset is added to the enclosing context's
// pending whitespace instead, since there is no right offset to attach it
// to either.
type GroupUnclosed struct {
	LeftOffset *int
	Inner      Node
}

func (GroupUnclosed) astNode() {}

// GroupUnmatchedClose is a `)` encountered with no open group to close.
type GroupUnmatchedClose struct{}

func (GroupUnmatchedClose) astNode() {}

// Unrecognized is a single code point matched by no rule in the active
// group.
type Unrecognized struct {
	Text string
}

func (Unrecognized) astNode() {}

// Line is one line of a Block. Body is nil for a blank line; such lines
// still carry a TrailingOffset (the line's own indentation/whitespace,
// consumed as an empty line rather than contributing to the block body).
type Line struct {
	Body           Node
	TrailingOffset int
}

// LineRequired is the first line of a Block or Module. Leading blank lines
// are tracked separately on the Block/Module, so Body is nil only when the
// Block or Module has no nonblank line at all (empty input, for example).
type LineRequired struct {
	Body           Node
	TrailingOffset int
}

// Block is a maximal run of lines sharing one indent level.
type Block struct {
	Indent           int
	LeadingEmptyLines []int
	FirstLine        LineRequired
	Lines            []Line
}

func (Block) astNode() {}

// BlockInvalidIndentation wraps a Block opened at an indent that doesn't
// match any enclosing block's indent on dedent.
type BlockInvalidIndentation struct {
	Block Block
}

func (BlockInvalidIndentation) astNode() {}

// Module is the root of every parse: exactly one is produced per run.
// LeadingEmptyLines holds blank-line offsets seen before FirstLine's body
// was established (input starting with blank lines before real content) —
// an addition alongside the two-field shape described for Module, needed
// for those lines to round-trip; it is empty for the common case.
type Module struct {
	LeadingEmptyLines []int
	FirstLine         LineRequired
	OtherLines        []Line
}

func (Module) astNode() {}
