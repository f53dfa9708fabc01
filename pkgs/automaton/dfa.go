package automaton

import (
	"sort"
	"strconv"
	"strings"
)

// StateID indexes into a DFA's States slice. DeadState is the conventional
// "no such transition" target: the scanner core treats stepping into it the
// same as finding no transition at all.
type StateID int32

const DeadState StateID = -1

// Transition is one interval of the local alphabet partition at a DFA
// state: every code point in [Lo, Hi] steps to the same Target. Keeping
// this per-state (rather than a single global equivalence-class table)
// means a state with few active NFA threads gets a correspondingly small
// transition list — the partition falls out of subset construction instead
// of being precomputed up front.
type Transition struct {
	Lo, Hi rune
	Target StateID
}

// State is one DFA state: a sorted, non-overlapping list of transitions
// plus an optional accept tag (the winning rule index, or -1 if this state
// does not accept).
type State struct {
	Transitions []Transition
	Accept      int // -1 if not accepting
}

// NoAccept marks a State with no winning rule.
const NoAccept = -1

// DFA is a deterministic automaton compiled from a Program via subset
// construction (Thompson NFA -> powerset of states). States[0] is always
// the start state.
type DFA struct {
	States []State
}

// Step advances from state s on rune r, returning DeadState if there is no
// matching transition (the scanner core interprets that as "match ended
// here").
func (d *DFA) Step(s StateID, r rune) StateID {
	if s < 0 || int(s) >= len(d.States) {
		return DeadState
	}
	trs := d.States[s].Transitions
	// Transition lists are sorted and non-overlapping; binary search the
	// first interval whose Hi >= r, then check containment.
	i := sort.Search(len(trs), func(i int) bool { return trs[i].Hi >= r })
	if i < len(trs) && trs[i].Lo <= r {
		return trs[i].Target
	}
	return DeadState
}

// Accept reports the winning rule index at state s, or NoAccept.
func (d *DFA) Accept(s StateID) int {
	if s < 0 || int(s) >= len(d.States) {
		return NoAccept
	}
	return d.States[s].Accept
}

// Start is the DFA's initial state, the epsilon-closure of every rule's
// entry point (child rules precede ancestor rules in the Program's rule
// order, which is how declaration-order tie-break is realized: lower rule
// index wins ties, and rule index is assigned by CompileRules in that order).
const Start StateID = 0

// threadSet is a deduplicated, sorted set of program counters, used both as
// the "current NFA state" during subset construction and as the map key
// identifying a DFA state.
type threadSet struct {
	pcs []int
}

func (t *threadSet) key() string {
	var b strings.Builder
	for i, pc := range t.pcs {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.Itoa(pc))
	}
	return b.String()
}

// closure computes the epsilon-closure of a set of program counters:
// following opSplit/opJmp transparently, and collecting every opChar or
// opMatch instruction reached (these are the "real" NFA states — the ones
// that either consume a code point or accept without consuming further
// input).
func closure(p *Program, seeds []int) *threadSet {
	seen := make(map[int]bool)
	var order []int

	var visit func(pc int)
	visit = func(pc int) {
		if seen[pc] {
			return
		}
		seen[pc] = true
		switch p.insts[pc].op {
		case opSplit:
			visit(p.insts[pc].x)
			visit(p.insts[pc].y)
		case opJmp:
			visit(p.insts[pc].x)
		case opFail:
			// dead end, contributes nothing
		case opChar, opMatch:
			order = append(order, pc)
		}
	}
	for _, pc := range seeds {
		visit(pc)
	}
	sort.Ints(order)
	return &threadSet{pcs: order}
}

// Determinize runs subset construction over p's epsilon-NFA, producing a
// DFA whose states are indexed breadth-first starting from the closure of
// every rule's entry point. This is compiled lazily by pkgs/lexer on first
// use of a group and memoized on the Group for the process lifetime.
// Determinize itself is a pure, repeatable function of the Program.
func Determinize(p *Program) *DFA {
	dfa := &DFA{}
	stateIndex := make(map[string]StateID)

	// intern returns the existing StateID for ts, or allocates and enqueues
	// a new one. order returned by closure is stable for a given key, so
	// map keys are a safe stand-in for NFA-state-set equality.
	var pending []*threadSet
	var pendingIDs []StateID
	intern := func(ts *threadSet) StateID {
		k := ts.key()
		if id, ok := stateIndex[k]; ok {
			return id
		}
		id := StateID(len(dfa.States))
		stateIndex[k] = id
		dfa.States = append(dfa.States, State{Accept: NoAccept})
		pending = append(pending, ts)
		pendingIDs = append(pendingIDs, id)
		return id
	}

	start := closure(p, p.entries)
	intern(start)

	for len(pending) > 0 {
		ts := pending[0]
		id := pendingIDs[0]
		pending = pending[1:]
		pendingIDs = pendingIDs[1:]

		accept := NoAccept
		var charPCs []int
		for _, pc := range ts.pcs {
			switch p.insts[pc].op {
			case opMatch:
				if accept == NoAccept || p.insts[pc].rule < accept {
					accept = p.insts[pc].rule
				}
			case opChar:
				charPCs = append(charPCs, pc)
			}
		}
		dfa.States[id] = State{Accept: accept, Transitions: dfa.States[id].Transitions}

		if len(charPCs) == 0 {
			continue
		}

		boundaries := breakpoints(p, charPCs)
		var trs []Transition
		for i := 0; i+1 < len(boundaries); i++ {
			lo := boundaries[i]
			hi := boundaries[i+1] - 1
			if hi < lo {
				continue
			}
			var seeds []int
			for _, pc := range charPCs {
				if p.insts[pc].lo <= lo && lo <= p.insts[pc].hi {
					seeds = append(seeds, p.insts[pc].x)
				}
			}
			if len(seeds) == 0 {
				continue // dead: no transition recorded, Step returns DeadState
			}
			next := closure(p, seeds)
			if len(next.pcs) == 0 {
				continue
			}
			nextID := intern(next)
			trs = mergeTransition(trs, lo, hi, nextID)
		}
		dfa.States[id].Transitions = trs
	}

	return dfa
}

// mergeTransition appends [lo,hi]->target, coalescing with the previous
// entry when it shares the same target and is contiguous.
func mergeTransition(trs []Transition, lo, hi rune, target StateID) []Transition {
	if n := len(trs); n > 0 && trs[n-1].Target == target && trs[n-1].Hi+1 == lo {
		trs[n-1].Hi = hi
		return trs
	}
	return append(trs, Transition{Lo: lo, Hi: hi, Target: target})
}

// breakpoints collects the sorted, deduplicated set of interval boundaries
// induced by the ranges of the given opChar instructions: every lo and
// every hi+1. Consecutive boundaries bracket a maximal interval over which
// the set of active opChar instructions (and hence the transition target)
// is constant — this is the local alphabet-equivalence-class partition
// computed per DFA state instead of globally up front.
func breakpoints(p *Program, charPCs []int) []rune {
	set := make(map[rune]bool, len(charPCs)*2)
	for _, pc := range charPCs {
		set[p.insts[pc].lo] = true
		// Always close the interval, even when hi is the largest valid code
		// point: 0x110000 is still a representable rune and is exactly the
		// boundary the transition loop needs to emit [lo, 0x10FFFF] as the
		// final interval instead of silently dropping it.
		set[p.insts[pc].hi+1] = true
	}
	out := make([]rune, 0, len(set))
	for r := range set {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
