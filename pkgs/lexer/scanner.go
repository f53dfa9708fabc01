package lexer

import (
	"fmt"

	"github.com/aledsdavies/blockexpr/pkgs/automaton"
	"github.com/aledsdavies/blockexpr/pkgs/pattern"
)

// Scanner advances through a rune stream one longest-match at a time,
// tracking a stack of active groups. The input gets a single
// trailing Sentinel appended at construction, so every group's rules can
// observe end-of-input as an ordinary (if special-cased) code point.
type Scanner struct {
	input []rune
	pos   int

	stack []*Group

	match      string
	matchStart int
	matchLen   int
}

// New builds a Scanner positioned at the start of input, with root already
// pushed as the sole active group.
func New(input string, root *Group) *Scanner {
	runes := append([]rune(input), pattern.Sentinel)
	return &Scanner{input: runes, stack: []*Group{root}}
}

// Pos reports the current rune offset into the (sentinel-terminated) input.
func (s *Scanner) Pos() int { return s.pos }

// BeginGroup pushes g as the new active group.
func (s *Scanner) BeginGroup(g *Group) {
	s.stack = append(s.stack, g)
}

// EndGroup pops the active group. Popping the last remaining group is an
// invariant violation.
func (s *Scanner) EndGroup() {
	if len(s.stack) <= 1 {
		panic("lexer: internal error: cannot pop the root group")
	}
	s.stack = s.stack[:len(s.stack)-1]
}

// Current returns the active group. Scanning with no active group is an
// invariant violation.
func (s *Scanner) Current() *Group {
	if len(s.stack) == 0 {
		panic("lexer: internal error: no active scanner group")
	}
	return s.stack[len(s.stack)-1]
}

// CurrentMatch is the text consumed by the most recent Advance call.
func (s *Scanner) CurrentMatch() string { return s.match }

// MatchLen is len(CurrentMatch()) measured in code points, the unit
// onWhitespace and the suffix-check actions work in.
func (s *Scanner) MatchLen() int { return s.matchLen }

// Rewind reverts the cursor to the start of the most recent match, so an
// outer group can re-observe whatever triggered the current rule (used
// when EOF surfaces inside a nested group, "Groups / Parentheses").
func (s *Scanner) Rewind() {
	s.pos = s.matchStart
}

// Advance simulates the current group's compiled DFA from the cursor,
// remembering the longest accepting prefix (ties broken by declaration
// order, already baked into the DFA's accept tags at compile time), then
// consumes that prefix and returns the winning rule's action.
//
// No accepting state ever being reached is an invariant violation: every
// group this package's caller defines is expected to carry either an
// explicit catch-all or a Pass fallback, so there is always some
// zero-or-more-length match to fall back on.
func (s *Scanner) Advance() Action {
	g := s.Current()
	g.ensureCompiled()
	dfa := g.dfa

	state := automaton.Start
	pos := s.pos
	lastPos := -1
	lastRule := automaton.NoAccept

	if acc := dfa.Accept(state); acc != automaton.NoAccept {
		lastPos, lastRule = pos, acc
	}
	for {
		r := pattern.Sentinel
		if pos < len(s.input) {
			r = s.input[pos]
		}
		next := dfa.Step(state, r)
		if next == automaton.DeadState {
			break
		}
		state = next
		pos++
		if acc := dfa.Accept(state); acc != automaton.NoAccept {
			lastPos, lastRule = pos, acc
		}
		if r == pattern.Sentinel {
			break
		}
	}

	if lastRule == automaton.NoAccept {
		panic(fmt.Sprintf("lexer: internal error: group %q has no accepting rule at position %d", g.name, s.pos))
	}

	s.matchStart = s.pos
	s.matchLen = lastPos - s.pos
	s.match = string(s.input[s.pos:lastPos])
	s.pos = lastPos

	return g.effective[lastRule].action
}
