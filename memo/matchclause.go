package memo

import (
	"github.com/pikaparse/pika/clause"
)

// MatchClause attempts to match c at pos, either by consulting table
// (BottomUp, the steady-state fixpoint behaviour) or by recursing
// directly into c's children (TopDown, used below the grammar's declared
// lex rule so its descendants never occupy a memo table slot).
//
// It returns nil if c does not match at pos. A BottomUp attempt records
// pos as queried for c, so GetNonMatchPositions can report it if c never
// matches there.
func MatchClause(table *MemoTable, c *clause.Clause, pos int, dir MatchDirection) *Match {
	if dir == BottomUp {
		table.treeFor(table.queried, c).Put(pos, struct{}{})
	}
	switch c.Kind {
	case clause.KindTerminal:
		return matchTerminal(table, c, pos)
	case clause.KindSeq:
		return matchSeq(table, c, pos, dir)
	case clause.KindFirst:
		return matchFirst(table, c, pos, dir)
	case clause.KindLongest:
		return matchLongest(table, c, pos, dir)
	case clause.KindOneOrMore:
		return matchOneOrMore(table, c, pos, dir)
	case clause.KindZeroOrMore:
		return matchZeroOrMore(table, c, pos, dir)
	case clause.KindOptional:
		return matchOptional(table, c, pos, dir)
	case clause.KindFollowedBy:
		return matchFollowedBy(table, c, pos, dir)
	case clause.KindNotFollowedBy:
		return matchNotFollowedBy(table, c, pos, dir)
	default:
		return nil
	}
}

func newMatch(c *clause.Clause, pos, length int, altIdx int, subs ...*Match) *Match {
	return &Match{
		Key:                       MemoKey{Clause: c, StartPos: pos},
		FirstMatchingSubClauseIdx: altIdx,
		Len:                       length,
		SubMatches:                subs,
	}
}

// matchChild matches sub at pos, either by table lookup (BottomUp) or by
// direct recursion (TopDown). BottomUp goes through LookUpBestMatch, which
// reads the table and only computes a match itself for a terminal or, on
// a miss, for a zero-width clause.
func matchChild(table *MemoTable, sub *clause.Clause, pos int, dir MatchDirection) *Match {
	if dir == TopDown {
		return MatchClause(table, sub, pos, TopDown)
	}
	m, _ := table.LookUpBestMatch(sub, pos)
	return m
}

func matchTerminal(table *MemoTable, c *clause.Clause, pos int) *Match {
	input := table.input
	switch c.Term {
	case clause.Nothing:
		return newMatch(c, pos, 0, 0)
	case clause.AnyChar:
		if pos >= len(input) {
			return nil
		}
		return newMatch(c, pos, 1, 0)
	case clause.CharSet:
		if pos >= len(input) || !c.MatchesRune(input[pos]) {
			return nil
		}
		return newMatch(c, pos, 1, 0)
	case clause.Literal:
		if pos+len(c.Lit) > len(input) {
			return nil
		}
		for i, r := range c.Lit {
			if input[pos+i] != r {
				return nil
			}
		}
		return newMatch(c, pos, len(c.Lit), 0)
	default:
		return nil
	}
}

func matchSeq(table *MemoTable, c *clause.Clause, pos int, dir MatchDirection) *Match {
	subs := make([]*Match, len(c.SubClauses))
	cur := pos
	for i, sub := range c.SubClauses {
		m := matchChild(table, sub, cur, dir)
		if m == nil {
			return nil
		}
		subs[i] = m
		cur += m.Len
	}
	return newMatch(c, pos, cur-pos, 0, subs...)
}

// matchFirst returns the first sub-clause's match, trying alternatives in
// order and taking the first that matches regardless of length.
func matchFirst(table *MemoTable, c *clause.Clause, pos int, dir MatchDirection) *Match {
	for i, sub := range c.SubClauses {
		if m := matchChild(table, sub, pos, dir); m != nil {
			return newMatch(c, pos, m.Len, i, m)
		}
	}
	return nil
}

// matchLongest tries every alternative and keeps the longest, ties broken
// by lowest index -- realizing the Longest(original, duplicate) rewrite
// left recursion compiles down to.
func matchLongest(table *MemoTable, c *clause.Clause, pos int, dir MatchDirection) *Match {
	var best *Match
	bestIdx := -1
	for i, sub := range c.SubClauses {
		m := matchChild(table, sub, pos, dir)
		if m == nil {
			continue
		}
		if best == nil || m.Len > best.Len {
			best = m
			bestIdx = i
		}
	}
	if best == nil {
		return nil
	}
	return newMatch(c, pos, best.Len, bestIdx, best)
}

// matchOneOrMore matches greedily: one occurrence of sub, then recurses on
// the remainder via a self-match of c just past the head, mirroring the
// right-associative head/tail shape OneOrMore.java builds its match tree
// in (so a single rewound head can be substituted during error recovery
// without rebuilding the whole repetition).
func matchOneOrMore(table *MemoTable, c *clause.Clause, pos int, dir MatchDirection) *Match {
	sub := c.SubClauses[0]
	head := matchChild(table, sub, pos, dir)
	if head == nil {
		return nil
	}
	if head.Len == 0 {
		// A zero-width first match never recurses -- otherwise a
		// zero-width sub-clause would loop the fixpoint forever.
		return newMatch(c, pos, 0, 0, head)
	}
	tail := matchChild(table, c, pos+head.Len, dir)
	if tail == nil {
		return newMatch(c, pos, head.Len, 0, head)
	}
	return newMatch(c, pos, head.Len+tail.Len, 0, head, tail)
}

func matchZeroOrMore(table *MemoTable, c *clause.Clause, pos int, dir MatchDirection) *Match {
	sub := c.SubClauses[0]
	head := matchChild(table, sub, pos, dir)
	if head == nil {
		return newMatch(c, pos, 0, 0)
	}
	if head.Len == 0 {
		return newMatch(c, pos, 0, 0, head)
	}
	tail := matchChild(table, c, pos+head.Len, dir)
	if tail == nil {
		return newMatch(c, pos, head.Len, 0, head)
	}
	return newMatch(c, pos, head.Len+tail.Len, 0, head, tail)
}

func matchOptional(table *MemoTable, c *clause.Clause, pos int, dir MatchDirection) *Match {
	sub := c.SubClauses[0]
	if m := matchChild(table, sub, pos, dir); m != nil {
		return newMatch(c, pos, m.Len, 0, m)
	}
	return newMatch(c, pos, 0, 0)
}

// matchFollowedBy is a zero-width positive lookahead: it never consumes
// input even if sub does.
func matchFollowedBy(table *MemoTable, c *clause.Clause, pos int, dir MatchDirection) *Match {
	sub := c.SubClauses[0]
	m := matchChild(table, sub, pos, dir)
	if m == nil {
		return nil
	}
	return newMatch(c, pos, 0, 0, m)
}

// matchNotFollowedBy is a zero-width negative lookahead.
func matchNotFollowedBy(table *MemoTable, c *clause.Clause, pos int, dir MatchDirection) *Match {
	sub := c.SubClauses[0]
	if matchChild(table, sub, pos, dir) != nil {
		return nil
	}
	return newMatch(c, pos, 0, 0)
}
