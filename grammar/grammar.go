package grammar

import (
	"fmt"

	"github.com/emirpasic/gods/lists/arraylist"
	"github.com/npillmayer/schuko/tracing"

	"github.com/pikaparse/pika/clause"
)

// tracer traces with key 'pika.grammar'.
func tracer() tracing.Trace {
	return tracing.Select("pika.grammar")
}

// Grammar is the compiled, immutable result of Compile: a DAG of clauses
// with left recursion rewritten, rule references resolved, and the
// zero-width / seed-parent properties the parser driver needs already
// computed.
type Grammar struct {
	// AllClauses holds every clause reachable from a rule root, in
	// reverse topological order (children precede parents).
	AllClauses *arraylist.List

	// LexClause, if non-nil, is the root of the declared lex rule's
	// clause tree. Its descendants are matched top-down by the parser
	// driver instead of being seeded into the bottom-up fixpoint.
	LexClause *clause.Clause

	rules      map[string]*Rule // resolved name -> rule
	lowestPrec map[string]string // bare name -> resolved name of its lowest precedence level
}

// Option configures Compile.
type Option func(*compileState)

type compileState struct {
	lexRuleName string
}

// WithLexRule declares name as the grammar's lexical rule: its subtree is
// matched top-down rather than being memoized bottom-up. The named rule's
// clause tree must itself be acyclic.
func WithLexRule(name string) Option {
	return func(cs *compileState) { cs.lexRuleName = name }
}

// Compile transforms rules into a Grammar. rules must be non-empty and
// every rule must be named; see the package doc for the pipeline stages.
func Compile(rules []*Rule, opts ...Option) (*Grammar, error) {
	if len(rules) == 0 {
		return nil, ErrEmptyGrammar
	}
	cs := &compileState{}
	for _, opt := range opts {
		opt(cs)
	}

	byName := map[string][]*Rule{}
	for _, r := range rules {
		if r.Name == "" {
			return nil, ErrUnnamedRule
		}
		if r.Clause.IsRuleRef(r.Name) {
			return nil, fmt.Errorf("%w: %s", ErrSelfOnlyRule, r.Name)
		}
		if err := checkNoCycles(r.Clause, r.Name); err != nil {
			return nil, err
		}
		byName[r.Name] = append(byName[r.Name], r)
	}

	lowestPrec := map[string]string{}
	for name, group := range byName {
		if len(group) > 1 {
			tracer().Debugf("rewriting %d precedence levels for rule %q", len(group), name)
			if err := rewritePrecedence(name, group, lowestPrec); err != nil {
				return nil, err
			}
		}
	}

	for _, r := range rules {
		if r.resolvedName == "" {
			r.resolvedName = r.Name
		}
		if err := liftRuleRootLabel(r); err != nil {
			return nil, err
		}
		liftASTLabels(r.Clause)
	}

	byResolvedName := map[string]*Rule{}
	for _, r := range rules {
		if _, dup := byResolvedName[r.resolvedName]; dup {
			// Internal invariant violation: the precedence rewrite above
			// guarantees unique resolved names.
			panic("grammar: duplicate rule name after precedence rewrite: " + r.resolvedName)
		}
		byResolvedName[r.resolvedName] = r
	}

	toStringToClause := map[string]*clause.Clause{}
	internVisited := map[*clause.Clause]*clause.Clause{}
	var nextID int64
	for _, r := range rules {
		r.Clause = intern(r.Clause, toStringToClause, internVisited, &nextID)
	}

	// Resolve any rule root that is itself a bare RuleRef, chasing chains,
	// before resolving RuleRefs nested inside clause trees: a chain of
	// bare-RuleRef rule roots would otherwise be visited in an
	// order-dependent way by the generic recursive resolver below.
	for _, r := range rules {
		seen := map[*clause.Clause]bool{}
		for r.Clause.Kind == clause.KindRuleRef {
			if seen[r.Clause] {
				return nil, fmt.Errorf("%w: %s", ErrCyclicUserClause, r.Name)
			}
			seen[r.Clause] = true
			target, err := resolveRuleName(r.Clause.RefRuleName, byResolvedName, lowestPrec)
			if err != nil {
				return nil, err
			}
			r.Clause = target.Clause
		}
	}
	resolveVisited := map[*clause.Clause]bool{}
	for _, r := range rules {
		if err := resolveRuleRefs(r.Clause, byResolvedName, lowestPrec, resolveVisited); err != nil {
			return nil, err
		}
	}

	for _, r := range rules {
		if r.Clause.RuleNames == nil {
			r.Clause.RuleNames = map[string]int{}
		}
		r.Clause.RuleNames[r.Name] = r.Precedence
	}

	g := &Grammar{
		rules:      byResolvedName,
		lowestPrec: lowestPrec,
		AllClauses: arraylist.New(),
	}

	if cs.lexRuleName != "" {
		lexRule, ok := byResolvedName[cs.lexRuleName]
		if !ok {
			lexRule, ok = lookupByBareName(byResolvedName, lowestPrec, cs.lexRuleName)
		}
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrUnknownLexRule, cs.lexRuleName)
		}
		if err := checkNoCycles(lexRule.Clause, lexRule.Name); err != nil {
			return nil, err
		}
		g.LexClause = lexRule.Clause
	}

	visited := map[*clause.Clause]bool{}
	for _, r := range rules {
		findReachable(r.Clause, visited, g.AllClauses)
	}

	for _, iface := range g.AllClauses.Values() {
		computeZeroWidth(iface.(*clause.Clause))
	}
	for _, iface := range g.AllClauses.Values() {
		linkSeedParents(iface.(*clause.Clause))
	}

	tracer().Infof("compiled grammar: %d rules, %d reachable clauses", len(rules), g.AllClauses.Size())
	return g, nil
}

func lookupByBareName(byResolvedName map[string]*Rule, lowestPrec map[string]string, name string) (*Rule, bool) {
	if resolved, ok := lowestPrec[name]; ok {
		r, ok := byResolvedName[resolved]
		return r, ok
	}
	return nil, false
}

// resolveRuleName resolves name -- either a resolved "name[precedence]"
// name or a bare rule name -- to its Rule, defaulting a bare multi-level
// name to its lowest precedence level.
func resolveRuleName(name string, byResolvedName map[string]*Rule, lowestPrec map[string]string) (*Rule, error) {
	if r, ok := byResolvedName[name]; ok {
		return r, nil
	}
	if r, ok := lookupByBareName(byResolvedName, lowestPrec, name); ok {
		return r, nil
	}
	return nil, fmt.Errorf("%w: %s", ErrUnknownRuleRef, name)
}

// Rule resolves name -- either a bare rule name or a "name[precedence]"
// resolved name -- to its Rule. A bare multi-level name resolves to the
// lowest precedence level, matching how RuleRef treats a bare name.
func (g *Grammar) Rule(name string) (*Rule, error) {
	if r, ok := g.rules[name]; ok {
		return r, nil
	}
	if r, ok := lookupByBareName(g.rules, g.lowestPrec, name); ok {
		return r, nil
	}
	return nil, fmt.Errorf("%w: %s", ErrUnknownRule, name)
}

// RootClause is a convenience wrapper around Rule that returns the rule's
// root clause directly.
func (g *Grammar) RootClause(name string) (*clause.Clause, error) {
	r, err := g.Rule(name)
	if err != nil {
		return nil, err
	}
	return r.Clause, nil
}

// Clauses returns AllClauses as a plain slice, in reverse topological
// order.
func (g *Grammar) Clauses() []*clause.Clause {
	values := g.AllClauses.Values()
	out := make([]*clause.Clause, len(values))
	for i, v := range values {
		out[i] = v.(*clause.Clause)
	}
	return out
}

func checkNoCycles(c *clause.Clause, ruleName string) error {
	return checkNoCyclesRec(c, ruleName, map[*clause.Clause]bool{})
}

func checkNoCyclesRec(c *clause.Clause, ruleName string, visited map[*clause.Clause]bool) error {
	if visited[c] {
		return fmt.Errorf("%w: %s", ErrCyclicUserClause, ruleName)
	}
	visited[c] = true
	for _, sub := range c.SubClauses {
		if err := checkNoCyclesRec(sub, ruleName, visited); err != nil {
			return err
		}
	}
	return nil
}
