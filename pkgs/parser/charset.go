package parser

import "github.com/aledsdavies/blockexpr/pkgs/pattern"

// Character classes shared across the rule tables in groups.go. Patterns
// are cheap immutable values, built once at package init alongside the
// groups that use them.
var (
	lower = pattern.Range('a', 'z')
	upper = pattern.Range('A', 'Z')
	digit = pattern.Range('0', '9')

	identTailVar  = pattern.OrAll(lower, digit, pattern.Char('_'))
	identTailCons = pattern.OrAll(lower, digit, upper, pattern.Char('_'))
	primeSuffix   = pattern.Many(pattern.Char('\''))

	alnum = pattern.OrAll(lower, upper, digit)

	// Horizontal whitespace: newline is excluded since it is handled
	// separately by the indentation aggregator.
	ws = pattern.AnyOf(" \t\r\f")

	// Characters that end an identifier/operator/number token — anything
	// outside this set continues the run as an invalid suffix instead.
	identBreaker = "^!@#$%^&*()-=+[]{}|;:<>,./ \t\r\n\\"

	// General operator run: one or more of these, routed through
	// OPERATOR_MOD_CHECK to see if a trailing "=" turns it into a modifier.
	operatorChar = "!$%&*+-/<>?^~|:\\"

	// operatorChar plus the characters a trailing invalid suffix may also
	// contain once a modifier check has already happened.
	operatorErrChar = operatorChar + "=,."

	// Text-literal body: anything but the closing quote, backtick (held in
	// reserve for a templating form this scanner does not implement),
	// newline, or backslash (which introduces an escape).
	textExclude = "'`\n\\"
)
