package pika

import (
	"sort"

	"github.com/pikaparse/pika/clause"
	"github.com/pikaparse/pika/grammar"
	"github.com/pikaparse/pika/memo"
	"github.com/pikaparse/pika/parser"
)

// Re-exported types, so callers working only through this façade never
// need to import clause/grammar/memo/parser directly.
type (
	Rule      = grammar.Rule
	Grammar   = grammar.Grammar
	Clause    = clause.Clause
	MemoTable = memo.MemoTable
	Match     = memo.Match
	Span      = memo.Span
	Option    = grammar.Option
)

// WithLexRule declares name as the grammar's lexical rule; see
// grammar.WithLexRule.
var WithLexRule = grammar.WithLexRule

// NewRule and NewPrecedenceRule build rules; see grammar.NewRule and
// grammar.NewPrecedenceRule.
var (
	NewRule           = grammar.NewRule
	NewPrecedenceRule = grammar.NewPrecedenceRule
)

// Associativity constants; see grammar.Associativity.
const (
	AssocNone  = grammar.AssocNone
	AssocLeft  = grammar.AssocLeft
	AssocRight = grammar.AssocRight
)

// Compile builds a Grammar from rules.
func Compile(rules []*Rule, opts ...Option) (*Grammar, error) {
	return grammar.Compile(rules, opts...)
}

// Parse runs the pika fixpoint over input and returns the filled memo
// table.
func Parse(g *Grammar, input []rune) *MemoTable {
	return parser.Parse(g, input)
}

// GetNonOverlappingMatches resolves ruleName to its root clause and
// returns table's greedy left-to-right non-overlapping matches of it.
func GetNonOverlappingMatches(table *MemoTable, g *Grammar, ruleName string) ([]*Match, error) {
	root, err := g.RootClause(ruleName)
	if err != nil {
		return nil, err
	}
	return table.GetNonOverlappingMatches(root), nil
}

// GetNavigableMatches resolves ruleName to its root clause and returns
// every match of it, ordered by start position.
func GetNavigableMatches(table *MemoTable, g *Grammar, ruleName string) ([]*Match, error) {
	root, err := g.RootClause(ruleName)
	if err != nil {
		return nil, err
	}
	return table.GetNavigableMatches(root), nil
}

// GetSyntaxErrors unions the spans covered by each named rule's
// non-overlapping matches, complements the union against [0,
// len(input)), and returns the uncovered intervals in ascending order of
// Start.
func GetSyntaxErrors(table *MemoTable, g *Grammar, ruleNames ...string) ([]Span, error) {
	var covered []Span
	for _, name := range ruleNames {
		root, err := g.RootClause(name)
		if err != nil {
			return nil, err
		}
		for _, m := range table.GetNonOverlappingMatches(root) {
			covered = append(covered, Span{Start: m.Key.StartPos, End: m.CoverageEnd()})
		}
	}
	sort.Slice(covered, func(i, j int) bool { return covered[i].Start < covered[j].Start })

	var merged []Span
	for _, sp := range covered {
		if len(merged) > 0 && sp.Start <= merged[len(merged)-1].End {
			if sp.End > merged[len(merged)-1].End {
				merged[len(merged)-1].End = sp.End
			}
			continue
		}
		merged = append(merged, sp)
	}

	var gaps []Span
	pos := 0
	for _, sp := range merged {
		if sp.Start > pos {
			gaps = append(gaps, Span{Start: pos, End: sp.Start})
		}
		pos = sp.End
	}
	if pos < table.InputLen() {
		gaps = append(gaps, Span{Start: pos, End: table.InputLen()})
	}
	return gaps, nil
}
