package memo

import (
	"github.com/emirpasic/gods/trees/redblacktree"
	"github.com/emirpasic/gods/utils"

	"github.com/pikaparse/pika/clause"
)

// MemoTable is the pika memo table: for every (clause, start position)
// pair ever matched, it keeps the best Match found so far. Entries are
// indexed per-clause by a red-black tree ordered on start position, so
// that the neighbourhood queries below can use floor/ceiling lookups
// instead of a linear scan.
type MemoTable struct {
	input []rune

	// best holds, per clause, a position-ordered tree of that clause's
	// matches. A redblacktree (rather than a plain map) is what makes
	// GetNonOverlappingMatches' "next match at or after position" query
	// and GetNavigableMatches' ordered walk possible.
	best map[*clause.Clause]*redblacktree.Tree

	// queried records every position at which a clause was ever looked
	// up or attempted bottom-up by MatchClause, regardless of whether a
	// match was found. GetNonMatchPositions
	// is the set difference of this against best, computed lazily at query
	// time rather than tracked eagerly during the fixpoint.
	queried map[*clause.Clause]*redblacktree.Tree
}

// InputLen returns the length of the input this table was built over.
func (t *MemoTable) InputLen() int { return len(t.input) }

// NewMemoTable creates an empty memo table over input.
func NewMemoTable(input []rune) *MemoTable {
	return &MemoTable{
		input:   input,
		best:    make(map[*clause.Clause]*redblacktree.Tree),
		queried: make(map[*clause.Clause]*redblacktree.Tree),
	}
}

func (t *MemoTable) treeFor(index map[*clause.Clause]*redblacktree.Tree, c *clause.Clause) *redblacktree.Tree {
	tree, ok := index[c]
	if !ok {
		tree = redblacktree.NewWith(utils.IntComparator)
		index[c] = tree
	}
	return tree
}

// LookUpBestMatch returns the best known match of c starting at pos, and
// records the lookup regardless of outcome so GetNonMatchPositions can
// later report pos as queried-but-unmatched if no match is ever found.
//
// A clause that can match zero characters (Optional, ZeroOrMore, a Seq of
// all-zero-width children, the lookaheads, ...) is only ever activated
// bottom-up when one of its children matches -- so at a position where
// every child fails, such a clause is never inserted into the table even
// though it may still be the correct answer (Optional and ZeroOrMore
// always succeed at length zero; a lookahead succeeds or fails depending
// on whether its child matches). On a miss for such a clause, this method
// falls back to computing it directly, top-down, rather than either
// returning nil or blindly synthesizing a zero-length match -- the latter
// would be wrong for FollowedBy/NotFollowedBy, whose zero-width flag
// reflects that a lookahead never consumes input when it *does* match,
// not that it always matches.
//
// A terminal missing from the table is matched directly against the
// input instead; that result is returned but not stored.
func (t *MemoTable) LookUpBestMatch(c *clause.Clause, pos int) (*Match, bool) {
	t.treeFor(t.queried, c).Put(pos, struct{}{})
	if tree, ok := t.best[c]; ok {
		if v, found := tree.Get(pos); found {
			return v.(*Match), true
		}
	}
	if c.Kind == clause.KindTerminal {
		if m := matchTerminal(t, c, pos); m != nil {
			return m, true
		}
		return nil, false
	}
	if c.CanMatchZeroChars && pos >= 0 && pos <= len(t.input) {
		if m := MatchClause(t, c, pos, TopDown); m != nil {
			return m, true
		}
	}
	return nil, false
}

// InsertBestMatch records m as c's match at its start position if it is
// better than (or there is no) existing entry there. It reports whether
// the table changed, which the parser driver uses to decide whether to
// re-activate m's seed parents.
func (t *MemoTable) InsertBestMatch(c *clause.Clause, m *Match) bool {
	tree := t.treeFor(t.best, c)
	if existing, found := tree.Get(m.Key.StartPos); found {
		if !m.Better(existing.(*Match)) {
			return false
		}
	}
	tree.Put(m.Key.StartPos, m)
	return true
}

// GetNonOverlappingMatches walks the input left to right returning the
// longest match of c at each position that does not overlap the
// previous one, i.e. a greedy tokenization of the input by c.
func (t *MemoTable) GetNonOverlappingMatches(c *clause.Clause) []*Match {
	tree, ok := t.best[c]
	if !ok {
		return nil
	}
	var out []*Match
	pos := 0
	for pos <= len(t.input) {
		node, found := tree.Ceiling(pos)
		if !found {
			break
		}
		m := node.Value.(*Match)
		out = append(out, m)
		if m.Len > 0 {
			pos = m.EndPos()
		} else {
			pos = m.Key.StartPos + 1
		}
	}
	return out
}

// GetNavigableMatches returns every match of c, ordered by start position,
// for error-recovery consumers that need to step forward or backward
// through a clause's matches.
func (t *MemoTable) GetNavigableMatches(c *clause.Clause) []*Match {
	tree, ok := t.best[c]
	if !ok {
		return nil
	}
	values := tree.Values()
	out := make([]*Match, len(values))
	for i, v := range values {
		out[i] = v.(*Match)
	}
	return out
}

// GetNonMatchPositions returns, in ascending order, every input position
// at which c was looked up or attempted bottom-up but never matched.
func (t *MemoTable) GetNonMatchPositions(c *clause.Clause) []int {
	queried, ok := t.queried[c]
	if !ok {
		return nil
	}
	best := t.best[c]
	var out []int
	for _, pos := range queried.Keys() {
		p := pos.(int)
		if best != nil {
			if _, found := best.Get(p); found {
				continue
			}
		}
		out = append(out, p)
	}
	return out
}

// GetSyntaxErrors reports the spans of input that the top-level clause
// root never matched, by diffing root's non-overlapping matches against
// the full input range. A grammar that parses cleanly returns nil.
func (t *MemoTable) GetSyntaxErrors(root *clause.Clause) []Span {
	matches := t.GetNonOverlappingMatches(root)
	var spans []Span
	pos := 0
	for _, m := range matches {
		if m.Key.StartPos > pos {
			spans = append(spans, Span{Start: pos, End: m.Key.StartPos})
		}
		pos = m.CoverageEnd()
	}
	if pos < len(t.input) {
		spans = append(spans, Span{Start: pos, End: len(t.input)})
	}
	return spans
}

// Span is a half-open range of input positions, [Start, End).
type Span struct {
	Start, End int
}
