package grammar

import (
	"github.com/emirpasic/gods/lists/arraylist"

	"github.com/pikaparse/pika/clause"
)

// findReachable performs a depth-first post-order traversal from c,
// appending every clause reached into order exactly once. Post-order means
// children are appended before their parents, i.e. order ends up in
// reverse topological order.
func findReachable(c *clause.Clause, visited map[*clause.Clause]bool, order *arraylist.List) {
	if visited[c] {
		return
	}
	visited[c] = true
	for _, sub := range c.SubClauses {
		findReachable(sub, visited, order)
	}
	order.Add(c)
}

// computeZeroWidth sets c.CanMatchZeroChars. It must be called on every
// clause in reverse topological order (children before parents), since a
// parent's value depends on its children's.
func computeZeroWidth(c *clause.Clause) {
	switch c.Kind {
	case clause.KindTerminal:
		c.CanMatchZeroChars = c.Term == clause.Nothing
	case clause.KindSeq:
		c.CanMatchZeroChars = true
		for _, sub := range c.SubClauses {
			if !sub.CanMatchZeroChars {
				c.CanMatchZeroChars = false
				break
			}
		}
	case clause.KindFirst, clause.KindLongest:
		for _, sub := range c.SubClauses {
			if sub.CanMatchZeroChars {
				c.CanMatchZeroChars = true
				break
			}
		}
	case clause.KindOneOrMore:
		c.CanMatchZeroChars = c.SubClauses[0].CanMatchZeroChars
	case clause.KindZeroOrMore, clause.KindOptional, clause.KindFollowedBy, clause.KindNotFollowedBy:
		c.CanMatchZeroChars = true
	}
}

// linkSeedParents computes c's seed children and registers c as a seed
// parent of each one. Order of calls across clauses doesn't matter, since
// the operation is purely additive.
func linkSeedParents(c *clause.Clause) {
	switch c.Kind {
	case clause.KindTerminal, clause.KindRuleRef:
		return
	case clause.KindSeq:
		for i, sub := range c.SubClauses {
			if i == 0 || c.SubClauses[i-1].CanMatchZeroChars {
				sub.SeedParents.Add(c)
			}
		}
	default:
		// First, Longest, OneOrMore, ZeroOrMore, Optional, FollowedBy,
		// NotFollowedBy: every child is a seed child.
		for _, sub := range c.SubClauses {
			sub.SeedParents.Add(c)
		}
	}
}
