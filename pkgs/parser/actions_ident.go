package parser

import "github.com/aledsdavies/blockexpr/pkgs/ast"

// Identifier and operator lexical actions: NORMAL starts a run here,
// stashes it in identBody, and defers to a suffix-check group to decide
// whether a breaker character, an invalid trailing run, or a modifier-
// forming "=" follows.

func onVariable() {
	current.identBody = ast.Var{Name: current.scanner.CurrentMatch()}
	current.scanner.BeginGroup(groupIdentSuffixCheck)
}

func onConstructor() {
	current.identBody = ast.Cons{Name: current.scanner.CurrentMatch()}
	current.scanner.BeginGroup(groupIdentSuffixCheck)
}

func onWildcard() {
	current.identBody = ast.Wildcard{}
	current.scanner.BeginGroup(groupIdentSuffixCheck)
}

// onNoModOperator handles the operators that skip the modifier check
// entirely: `=`, comparisons, `.`/`..`/`...`, and `,`.
func onNoModOperator() {
	current.identBody = ast.Operator{Name: current.scanner.CurrentMatch()}
	current.scanner.BeginGroup(groupOperatorSuffixCheck)
}

func onOperatorGeneral() {
	current.identBody = ast.Operator{Name: current.scanner.CurrentMatch()}
	current.scanner.BeginGroup(groupOperatorModCheck)
}

// onIdentSuffixInvalid fires when something other than a breaker
// character immediately follows an identifier: the whole run becomes one
// invalid-suffix node rather than two separate tokens.
func onIdentSuffixInvalid() {
	tail := current.scanner.CurrentMatch()
	body := current.identBody
	current.identBody = nil
	current.app(ast.IdentInvalidSuffix{Body: body, Tail: tail})
	current.scanner.EndGroup()
}

func onIdentSuffixPass() {
	current.submitIdent()
	current.scanner.EndGroup()
}

// onOperatorModEquals fires when a bare "=" immediately follows a general
// operator run, turning it into a modifier (`+` -> `+=`).
func onOperatorModEquals() {
	op := current.identBody.(ast.Operator)
	current.identBody = ast.Modifier{Name: op.Name}
	current.submitIdent()
	current.scanner.EndGroup()
}

func onOperatorSuffixInvalid() {
	tail := current.scanner.CurrentMatch()
	body := current.identBody
	current.identBody = nil
	current.app(ast.IdentInvalidSuffix{Body: body, Tail: tail})
	current.scanner.EndGroup()
}

func onOperatorSuffixPass() {
	current.submitIdent()
	current.scanner.EndGroup()
}
