package automaton

import "github.com/aledsdavies/blockexpr/pkgs/pattern"

// Rule pairs a pattern with the index of the action that should fire when it
// wins. Index order is declaration order: on an equal-length match, the
// rule with the lower index wins.
type Rule struct {
	Pattern pattern.Pattern
	Index   int
}

// op identifies the shape of a single NFA instruction. This mirrors the
// tagged-union State representation coregex's nfa.State uses (StateKind +
// payload fields interpreted per-kind), scaled down to what the pattern
// algebra in pkgs/pattern actually produces: no captures, no byte-level
// sparse transitions, no split-to-one-epsilon.
type op uint8

const (
	opChar op = iota
	opSplit
	opJmp
	opMatch
	opFail
)

// inst is one instruction of the Thompson-constructed program. Programs are
// flat slices addressed by index; "targets" are indices into the same
// slice, patched in after the target's position is known (every fragment is
// appended to the program in one pass, and its dangling out-edges are
// backpatched by patch once the following fragment's start index is final).
type inst struct {
	op     op
	lo, hi rune // opChar: inclusive code point range
	x, y   int  // opChar/opJmp: x = next pc. opSplit: x, y = branch targets.
	rule   int  // opMatch: winning rule index
}

// Program is a compiled instruction sequence for one group's full rule set
// (own rules followed by inherited ancestor rules). entries[i]
// is the program counter where rule i's fragment begins.
type Program struct {
	insts   []inst
	entries []int
}

// Compile builds a Thompson-style NFA program for rules, in declaration
// order. Rules must already include inherited ancestor rules appended after
// the group's own (the caller, pkgs/lexer's Group, is responsible for that
// ordering — this package only ever sees a flat list).
func Compile(rules []Rule) *Program {
	p := &Program{entries: make([]int, len(rules))}
	for i, r := range rules {
		start := p.buildFragment(r.Pattern, r.Index)
		p.entries[i] = start
	}
	return p
}

// buildFragment lowers a single pattern into the program, terminating every
// accepting path with an opMatch tagged rule. Returns the pc of the
// fragment's entry instruction.
func (p *Program) buildFragment(pat pattern.Pattern, rule int) int {
	start, outs := p.build(pat)
	matchPC := p.emit(inst{op: opMatch, rule: rule})
	p.patch(outs, matchPC)
	return start
}

// outRef names one dangling (x or y) field of an already-emitted
// instruction that still needs to be pointed at whatever comes next.
type outRef struct {
	pc    int
	field int // 0 = x, 1 = y
}

func (p *Program) emit(i inst) int {
	p.insts = append(p.insts, i)
	return len(p.insts) - 1
}

func (p *Program) patch(outs []outRef, target int) {
	for _, o := range outs {
		if o.field == 0 {
			p.insts[o.pc].x = target
		} else {
			p.insts[o.pc].y = target
		}
	}
}

// build lowers pat into the program and returns its entry pc plus the list
// of dangling out-edges the caller must patch to whatever follows.
func (p *Program) build(pat pattern.Pattern) (int, []outRef) {
	switch pat.Kind() {
	case pattern.KindRange:
		lo, hi := pat.Bounds()
		pc := p.emit(inst{op: opChar, lo: lo, hi: hi})
		return pc, []outRef{{pc, 0}}

	case pattern.KindPass:
		pc := p.emit(inst{op: opJmp})
		return pc, []outRef{{pc, 0}}

	case pattern.KindNone:
		pc := p.emit(inst{op: opFail})
		return pc, nil

	case pattern.KindSeq:
		startL, outsL := p.build(pat.Left())
		startR, outsR := p.build(pat.Right())
		p.patch(outsL, startR)
		return startL, outsR

	case pattern.KindOr:
		splitPC := p.emit(inst{op: opSplit})
		startL, outsL := p.build(pat.Left())
		startR, outsR := p.build(pat.Right())
		p.insts[splitPC].x = startL
		p.insts[splitPC].y = startR
		return splitPC, append(outsL, outsR...)

	case pattern.KindMany:
		splitPC := p.emit(inst{op: opSplit})
		startBody, outsBody := p.build(pat.Left())
		p.patch(outsBody, splitPC)
		p.insts[splitPC].x = startBody
		return splitPC, []outRef{{splitPC, 1}}

	case pattern.KindMany1:
		startBody, outsBody := p.build(pat.Left())
		splitPC := p.emit(inst{op: opSplit})
		p.patch(outsBody, splitPC)
		p.insts[splitPC].x = startBody
		return startBody, []outRef{{splitPC, 1}}

	default:
		panic("automaton: unhandled pattern kind")
	}
}
