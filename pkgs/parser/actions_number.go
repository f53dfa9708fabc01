package parser

import "github.com/aledsdavies/blockexpr/pkgs/ast"

// onNumberStart fires on the initial digit run. Whether that run turns out
// to be a bare number or a base prefix is decided by NUMBER_PHASE2.
func onNumberStart() {
	current.numberPart2 = current.scanner.CurrentMatch()
	current.scanner.BeginGroup(groupNumberPhase2)
}

// onNumberBase fires on "_" followed by one or more alphanumerics: the
// initial run was a base, and this run is the actual digits.
func onNumberBase() {
	match := current.scanner.CurrentMatch()
	base := current.numberPart2
	digits := match[1:] // drop the leading "_"
	current.app(ast.Number{Base: &base, Digits: digits})
	current.scanner.EndGroup()
}

// onNumberDanglingBase fires on a bare trailing "_" with nothing
// alphanumeric after it.
func onNumberDanglingBase() {
	current.app(ast.NumberDanglingBase{Digits: current.numberPart2})
	current.scanner.EndGroup()
}

// onNumberPlain fires when nothing follows the initial digit run at all.
func onNumberPlain() {
	current.app(ast.Number{Digits: current.numberPart2})
	current.scanner.EndGroup()
}
