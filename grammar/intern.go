package grammar

import (
	"github.com/cnf/structhash"

	"github.com/pikaparse/pika/clause"
)

// intern computes c's canonical string form bottom-up and coalesces
// structurally-equal clauses into a single shared node.
// visited memoizes already-processed pointers so that a clause reachable
// from more than one parent (e.g. the shared branch of a Longest rewrite)
// is only assigned an ID and hashed once.
func intern(c *clause.Clause, table map[string]*clause.Clause, visited map[*clause.Clause]*clause.Clause, nextID *int64) *clause.Clause {
	if already, ok := visited[c]; ok {
		return already
	}
	if c.Kind != clause.KindRuleRef {
		for i, sub := range c.SubClauses {
			c.SubClauses[i] = intern(sub, table, visited, nextID)
		}
	}

	repr := clause.StringRepr(c)
	result := c
	if existing, ok := table[repr]; ok {
		result = existing
	} else {
		c.Repr = repr
		c.Hash = contentHash(repr)
		*nextID++
		c.ID = *nextID
		table[repr] = c
	}
	visited[c] = result
	return result
}

// contentHash fingerprints a clause's canonical string form. It exists so
// two independently-compiled grammars can be checked for structural
// equality without walking the whole DAG.
func contentHash(repr string) string {
	hash, err := structhash.Hash(repr, 1)
	if err != nil {
		// structhash.Hash only fails on unsupported field kinds; a string
		// is always supported.
		panic(err)
	}
	return hash
}

// resolveRuleRefs replaces every RuleRef found in c's subclauses with a
// direct pointer to the referenced rule's root clause. It assumes c
// itself is not a bare RuleRef -- callers resolve rule roots
// separately, since a root substitution has nowhere to write its result
// except the Rule's own Clause field.
func resolveRuleRefs(c *clause.Clause, byResolvedName map[string]*Rule, lowestPrec map[string]string, visited map[*clause.Clause]bool) error {
	if visited[c] {
		return nil
	}
	visited[c] = true
	for i, sub := range c.SubClauses {
		if sub.Kind == clause.KindRuleRef {
			target, err := resolveRuleName(sub.RefRuleName, byResolvedName, lowestPrec)
			if err != nil {
				return err
			}
			c.SubClauses[i] = target.Clause
			if err := resolveRuleRefs(target.Clause, byResolvedName, lowestPrec, visited); err != nil {
				return err
			}
			continue
		}
		if err := resolveRuleRefs(sub, byResolvedName, lowestPrec, visited); err != nil {
			return err
		}
	}
	return nil
}
