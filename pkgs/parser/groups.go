package parser

import (
	"github.com/aledsdavies/blockexpr/pkgs/lexer"
	"github.com/aledsdavies/blockexpr/pkgs/pattern"
)

// Group handles, defined once at package init and reused (with their
// compiled DFAs memoized) across every Parse call — the scanner this
// package drives is explicitly single-threaded and non-reentrant, so a
// package-level "active Ctx" pointer (current, in runtime.go) is enough to
// let these closures reach the in-flight parse state without rebuilding
// the rule tables every time.
var (
	groupNormal              = lexer.Define("NORMAL")
	groupIdentSuffixCheck    = lexer.Define("IDENT_SFX_CHECK")
	groupOperatorModCheck    = lexer.Define("OPERATOR_MOD_CHECK")
	groupOperatorSuffixCheck = lexer.Define("OPERATOR_SFX_CHECK")
	groupNumberPhase2        = lexer.Define("NUMBER_PHASE2")
	groupText                = lexer.Define("TEXT")
	groupParensed            = lexer.Define("PARENSED")
	groupNewline             = lexer.Define("NEWLINE")
)

// escapeTail matches zero to four code points outside textExclude, built
// from the pattern algebra's primitives (there is no bounded-repetition
// combinator) as a single alternation. Subset construction already finds
// the longest of the five alternatives that fits the input, so — unlike
// the declared rules in a group — no further priority ordering is needed
// among them: they are branches of one pattern, not separate rules.
func escapeTail() pattern.Pattern {
	one := pattern.NoneOf(textExclude)
	e0 := pattern.Pass()
	e1 := one
	e2 := pattern.Seq(one, one)
	e3 := pattern.Seq(one, pattern.Seq(one, one))
	e4 := pattern.Seq(one, pattern.Seq(one, pattern.Seq(one, one)))
	return pattern.OrAll(e4, e3, e2, e1, e0)
}

func init() {
	// NoneOf with an empty exclusion set is "any single character", reusing
	// its lowBound-not-0 quirk for the catch-all rule too rather than
	// restating the bound here.
	any := pattern.NoneOf("")

	ident := pattern.Seq(lower, pattern.Seq(pattern.Many(identTailVar), primeSuffix))
	cons := pattern.Seq(upper, pattern.Seq(pattern.Many(identTailCons), primeSuffix))

	noModOperator := pattern.OrAll(
		pattern.Str("=="),
		pattern.Str(">="),
		pattern.Str("<="),
		pattern.Str("/="),
		pattern.Str("="),
		pattern.Str("..."),
		pattern.Str(".."),
		pattern.Str("."),
		pattern.Str(","),
	)
	operatorGeneral := pattern.Many1(pattern.AnyOf(operatorChar))

	groupNormal.
		Rule(ident).Run(onVariable)
	groupNormal.
		Rule(cons).Run(onConstructor)
	groupNormal.
		Rule(pattern.Char('_')).Run(onWildcard)
	groupNormal.
		Rule(noModOperator).Run(onNoModOperator)
	groupNormal.
		Rule(operatorGeneral).Run(onOperatorGeneral)
	groupNormal.
		Rule(pattern.Many1(digit)).Run(onNumberStart)
	groupNormal.
		Rule(pattern.Str("'''")).Run(onTextStartTriple)
	groupNormal.
		Rule(pattern.Char('\'')).Run(onTextStartSingle)
	groupNormal.
		Rule(pattern.Seq(pattern.Char('('), pattern.Many(ws))).Run(onGroupOpen)
	groupNormal.
		Rule(pattern.Char(')')).Run(onGroupUnmatchedClose)
	groupNormal.
		Rule(pattern.Char('\n')).Run(onNewline)
	groupNormal.
		Rule(pattern.Char(pattern.Sentinel)).Run(onNormalEOF)
	groupNormal.
		Rule(pattern.Many1(ws)).Run(onWhitespaceRule)
	groupNormal.
		Rule(any).Run(onUnrecognized)

	groupIdentSuffixCheck.
		Rule(pattern.Many1(pattern.NoneOf(identBreaker))).Run(onIdentSuffixInvalid)
	groupIdentSuffixCheck.
		Rule(pattern.Pass()).Run(onIdentSuffixPass)

	lexer.SetParent(groupOperatorModCheck, groupOperatorSuffixCheck)
	groupOperatorModCheck.
		Rule(pattern.Char('=')).Run(onOperatorModEquals)

	groupOperatorSuffixCheck.
		Rule(pattern.Many1(pattern.AnyOf(operatorErrChar))).Run(onOperatorSuffixInvalid)
	groupOperatorSuffixCheck.
		Rule(pattern.Pass()).Run(onOperatorSuffixPass)

	groupNumberPhase2.
		Rule(pattern.Seq(pattern.Char('_'), pattern.Many1(alnum))).Run(onNumberBase)
	groupNumberPhase2.
		Rule(pattern.Char('_')).Run(onNumberDanglingBase)
	groupNumberPhase2.
		Rule(pattern.Pass()).Run(onNumberPlain)

	groupText.
		Rule(pattern.Str("'''")).Run(onTextQuoteTriple)
	groupText.
		Rule(pattern.Char('\'')).Run(onTextQuoteSingle)
	groupText.
		Rule(pattern.Seq(pattern.Str("\\u"), escapeTail())).Run(onTextEscape)
	groupText.
		Rule(pattern.Many1(pattern.NoneOf(textExclude))).Run(onTextPlain)
	groupText.
		Rule(pattern.Char(pattern.Sentinel)).Run(onTextEOF)

	lexer.SetParent(groupParensed, groupNormal)
	groupParensed.
		Rule(pattern.Char(')')).Run(onGroupClose)
	groupParensed.
		Rule(pattern.Char(pattern.Sentinel)).Run(onGroupEOF)

	groupNewline.
		Rule(pattern.Seq(pattern.Many(ws), pattern.Char('\n'))).Run(onEmptyLine)
	groupNewline.
		Rule(pattern.Seq(pattern.Many(ws), pattern.Char(pattern.Sentinel))).Run(onEOFLine)
	groupNewline.
		Rule(pattern.Many(ws)).Run(onBlockNewline)
}
