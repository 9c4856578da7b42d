package grammar

import (
	"fmt"
	"sort"

	"github.com/pikaparse/pika/clause"
)

// rewritePrecedence handles a rule name with two or more precedence
// levels: sort by ascending precedence, rename each rule to include its
// level, and rewrite self-references per associativity.
func rewritePrecedence(name string, rules []*Rule, lowestPrec map[string]string) error {
	byPrecedence := map[int]*Rule{}
	for _, r := range rules {
		if _, dup := byPrecedence[r.Precedence]; dup {
			return fmt.Errorf("%w: %s[%d]", ErrDuplicatePrecedenceLevel, name, r.Precedence)
		}
		byPrecedence[r.Precedence] = r
	}

	order := make([]*Rule, 0, len(rules))
	for _, r := range rules {
		order = append(order, r)
	}
	sort.Slice(order, func(i, j int) bool { return order[i].Precedence < order[j].Precedence })

	numLevels := len(order)
	for _, r := range order {
		r.resolvedName = fmt.Sprintf("%s[%d]", name, r.Precedence)
	}

	for idx, r := range order {
		numSelfRefs := countSelfReferences(r.Clause, name)
		currName := r.resolvedName
		nextName := order[(idx+1)%numLevels].resolvedName

		switch {
		case numSelfRefs >= 2:
			if r.Assoc == AssocLeft {
				r.Clause = clause.NewLongest(r.Clause, r.Clause.Duplicate())
			}
			rewriteSelfReferences(r.Clause, r.Assoc, numSelfRefs, name, currName, nextName)
		case numSelfRefs == 1:
			rewriteSingleSelfReference(r.Clause, name, currName, nextName)
		}

		if idx < numLevels-1 {
			r.Clause = clause.NewFirst(r.Clause, clause.NewRuleRef(nextName))
		}
	}

	lowestPrec[name] = order[0].resolvedName
	return nil
}

func countSelfReferences(c *clause.Clause, ruleName string) int {
	if c.IsRuleRef(ruleName) {
		return 1
	}
	total := 0
	for _, sub := range c.SubClauses {
		total += countSelfReferences(sub, ruleName)
	}
	return total
}

// rewriteSelfReferences retargets every self-reference to ruleName found
// within c. For AssocLeft, the left-most (first encountered) reference
// stays at currName; for AssocRight, the right-most (last encountered)
// stays at currName; every other reference, and every reference under
// AssocNone, is retargeted to nextName.
func rewriteSelfReferences(c *clause.Clause, assoc Associativity, numSelfRefs int, ruleName, currName, nextName string) {
	seen := 0
	var walk func(*clause.Clause)
	walk = func(c *clause.Clause) {
		if c.IsRuleRef(ruleName) {
			referToCurrent := assoc == AssocLeft && seen == 0 ||
				assoc == AssocRight && seen == numSelfRefs-1
			if referToCurrent {
				c.RefRuleName = currName
			} else {
				c.RefRuleName = nextName
			}
			seen++
			return
		}
		for _, sub := range c.SubClauses {
			walk(sub)
		}
	}
	walk(c)
}

// rewriteSingleSelfReference replaces c's lone self-reference to ruleName
// with First(RuleRef(currName), RuleRef(nextName)), so a failed match at
// the current precedence level falls through to the next.
func rewriteSingleSelfReference(c *clause.Clause, ruleName, currName, nextName string) bool {
	for i, sub := range c.SubClauses {
		if sub.IsRuleRef(ruleName) {
			c.SubClauses[i] = clause.NewFirst(clause.NewRuleRef(currName), clause.NewRuleRef(nextName))
			return true
		}
		if rewriteSingleSelfReference(sub, ruleName, currName, nextName) {
			return true
		}
	}
	return false
}
