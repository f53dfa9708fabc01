// Package lexer is the scanner core and group stack: it knows how to run a
// group's compiled DFA over a rune stream and how groups inherit rules from
// their parents. It knows nothing about the AST — dispatch targets are
// opaque Action closures supplied by pkgs/parser.
package lexer

import "github.com/aledsdavies/blockexpr/pkgs/pattern"
import "github.com/aledsdavies/blockexpr/pkgs/automaton"

// Action is a rule's semantic handler. Actions are plain closures rather
// than an interface so pkgs/parser can bind them to its own mutable
// Ctx without this package needing to know that type exists.
type Action func()

type ruleEntry struct {
	pattern pattern.Pattern
	action  Action
}

// Group is a named, ordered set of rules with an optional parent. A
// group's lifecycle is defined -> compiled (DFA assembled from the
// effective rule set on first use) -> active (pushed onto a Scanner's
// group stack). Compilation is lazy and memoized for the Group's lifetime.
type Group struct {
	name     string
	index    int
	ownRules []ruleEntry
	parent   *Group

	dfa       *automaton.DFA
	effective []ruleEntry
}

var groupCount int

// Define creates a new, empty group. Groups are cheap value-adjacent
// handles; register all of a group's rules before the first Scanner uses
// it, since compilation is memoized on first access.
func Define(name string) *Group {
	g := &Group{name: name, index: groupCount}
	groupCount++
	return g
}

// Name reports the group's declared name.
func (g *Group) Name() string { return g.name }

// SetParent links child to parent for rule inheritance. Must be
// called before the child group is first scanned.
func SetParent(child, parent *Group) {
	child.parent = parent
	child.dfa = nil
}

// RuleBuilder is the fluent half of the rule-registration DSL: the result
// of Group.Rule, awaiting .Run(action) to complete the binding.
type RuleBuilder struct {
	group   *Group
	pattern pattern.Pattern
}

// Rule begins registering a new rule on g, matching p.
func (g *Group) Rule(p pattern.Pattern) *RuleBuilder {
	return &RuleBuilder{group: g, pattern: p}
}

// Run completes a rule registration, binding p to action. Rules are
// declaration-ordered; on an equal-length match with another rule
// (including an inherited one), whichever was declared first wins.
func (b *RuleBuilder) Run(action Action) *Group {
	b.group.ownRules = append(b.group.ownRules, ruleEntry{pattern: b.pattern, action: action})
	b.group.dfa = nil
	return b.group
}

// effectiveRules is the group's own rules followed by its ancestors',
// nearest ancestor first.
func (g *Group) effectiveRules() []ruleEntry {
	all := make([]ruleEntry, 0, len(g.ownRules))
	all = append(all, g.ownRules...)
	for anc := g.parent; anc != nil; anc = anc.parent {
		all = append(all, anc.ownRules...)
	}
	return all
}

func (g *Group) ensureCompiled() {
	if g.dfa != nil {
		return
	}
	g.effective = g.effectiveRules()
	patterns := make([]pattern.Pattern, len(g.effective))
	for i, r := range g.effective {
		patterns[i] = r.pattern
	}
	g.dfa = automaton.CompileRules(patterns)
}
