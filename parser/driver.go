package parser

import (
	"github.com/npillmayer/schuko/tracing"

	"github.com/pikaparse/pika/clause"
	"github.com/pikaparse/pika/grammar"
	"github.com/pikaparse/pika/memo"
)

// tracer traces with key 'pika.parser'.
func tracer() tracing.Trace {
	return tracing.Select("pika.parser")
}

// Parse runs the pika algorithm over input for g and returns the
// resulting memo table. It processes positions from len(input) down to 0;
// at each position it runs a worklist fixpoint seeded by the grammar's
// terminal clauses (plus the declared lex clause, if any) and propagated
// upward through each matched clause's seed parents, until no clause at
// that position improves further.
func Parse(g *grammar.Grammar, input []rune) *memo.MemoTable {
	table := memo.NewMemoTable(input)

	lexInterior := map[*clause.Clause]bool{}
	if g.LexClause != nil {
		collectInterior(g.LexClause, lexInterior)
	}

	var seeds []*clause.Clause
	for _, c := range g.Clauses() {
		if lexInterior[c] {
			continue
		}
		if c.Kind == clause.KindTerminal {
			seeds = append(seeds, c)
		}
	}

	for pos := len(input); pos >= 0; pos-- {
		runFixpoint(table, g, seeds, pos)
	}

	tracer().Debugf("parse complete: %d positions", len(input)+1)
	return table
}

// collectInterior fills into with every clause strictly beneath lex
// (lex itself excluded): these are matched top-down, as direct
// recursive calls from lex's own match attempt, and never separately
// seeded into the bottom-up worklist.
func collectInterior(lex *clause.Clause, into map[*clause.Clause]bool) {
	for _, sub := range lex.SubClauses {
		markInterior(sub, into)
	}
}

func markInterior(c *clause.Clause, into map[*clause.Clause]bool) {
	if into[c] {
		return
	}
	into[c] = true
	for _, sub := range c.SubClauses {
		markInterior(sub, into)
	}
}

// runFixpoint drives the worklist to quiescence at a single position.
func runFixpoint(table *memo.MemoTable, g *grammar.Grammar, seeds []*clause.Clause, pos int) {
	queued := map[*clause.Clause]bool{}
	queue := make([]*clause.Clause, 0, len(seeds)+1)

	enqueue := func(c *clause.Clause) {
		if queued[c] {
			return
		}
		queued[c] = true
		queue = append(queue, c)
	}

	for _, c := range seeds {
		enqueue(c)
	}
	if g.LexClause != nil {
		enqueue(g.LexClause)
	}

	for len(queue) > 0 {
		c := queue[0]
		queue = queue[1:]
		queued[c] = false

		dir := memo.BottomUp
		if c == g.LexClause {
			dir = memo.TopDown
		}
		m := memo.MatchClause(table, c, pos, dir)
		if m == nil {
			continue
		}
		if !table.InsertBestMatch(c, m) {
			continue
		}
		for _, parent := range c.SeedParents.Values() {
			enqueue(parent.(*clause.Clause))
		}
	}
}
