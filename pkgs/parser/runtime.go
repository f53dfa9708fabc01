package parser

import (
	"github.com/aledsdavies/blockexpr/pkgs/ast"
	"github.com/aledsdavies/blockexpr/pkgs/lexer"
)

// current is the in-flight parse's state, read by every rule action
// registered in groups.go. The group/rule tables are built once (package
// init) and their compiled DFAs memoized for the process lifetime; Parse
// is not reentrant, matching the single-threaded scanner core this runs
// on — a second Parse call must wait for the first to return.
var current *Ctx

// Parse lexes and parses input, producing the Module that roots the
// resulting tree. Exactly one Module is produced per call.
func Parse(input string) *ast.Module {
	ctx := &Ctx{
		currentBlock: blockState{isValid: true, indent: 0},
	}
	ctx.scanner = lexer.New(input, groupNormal)

	prev := current
	current = ctx
	defer func() { current = prev }()

	for !ctx.done {
		action := ctx.scanner.Advance()
		action()
	}

	return ctx.module
}
