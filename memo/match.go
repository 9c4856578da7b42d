package memo

import (
	"fmt"

	"github.com/pikaparse/pika/clause"
)

// MemoKey identifies a memo table entry: a clause together with the input
// position its match, if any, would start at.
type MemoKey struct {
	Clause   *clause.Clause
	StartPos int
}

func (k MemoKey) String() string {
	return fmt.Sprintf("%s@%d", k.Clause.Repr, k.StartPos)
}

// Match is an immutable record of a successful match: the clause and
// position it matched at (via Key), how many input positions it consumed,
// and -- for ordered-choice clauses -- which alternative won.
type Match struct {
	Key MemoKey

	// FirstMatchingSubClauseIdx is the index into Key.Clause.SubClauses of
	// the alternative that matched. It is only meaningful for First and
	// Longest; it is 0 for every other kind.
	FirstMatchingSubClauseIdx int

	// Len is the number of input positions this match consumes.
	Len int

	// SubMatches are this match's children, in the order implied by the
	// clause kind: empty for terminals; the single matching alternative
	// for First/Longest; a [head, tail] pair (tail possibly absent) for
	// OneOrMore/ZeroOrMore; one entry per sub-clause for Seq; the matched
	// sub-clause for Optional and FollowedBy; empty for NotFollowedBy.
	SubMatches []*Match
}

// EndPos returns the input position just past the match.
func (m *Match) EndPos() int { return m.Key.StartPos + m.Len }

// CoverageEnd is EndPos, nudged forward by one position for a zero-length
// match. Both syntax-error scans (MemoTable.GetSyntaxErrors and the
// multi-rule façade in package pika) use it as the end of the span a
// match covers, so a zero-length match counts as covering the one
// position it starts at.
func (m *Match) CoverageEnd() int {
	end := m.EndPos()
	if end == m.Key.StartPos {
		end++
	}
	return end
}

// Better reports whether m should replace existing as a memo table's best
// match for the same key: strictly more input consumed, or an equal-length
// ordered-choice match with a lower (earlier-won) alternative index.
func (m *Match) Better(existing *Match) bool {
	if m.Len != existing.Len {
		return m.Len > existing.Len
	}
	return m.FirstMatchingSubClauseIdx < existing.FirstMatchingSubClauseIdx
}

// MatchDirection selects how a clause's children are matched: BottomUp
// consults the memo table (the parser driver's steady state); TopDown
// recurses directly without reading or writing the table, used for the
// declared lex clause's descendants so unused lexical terminals never
// pollute the memo table.
type MatchDirection int

const (
	BottomUp MatchDirection = iota
	TopDown
)
