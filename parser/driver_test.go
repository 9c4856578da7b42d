package parser

import (
	"testing"

	"github.com/pikaparse/pika/clause"
	"github.com/pikaparse/pika/grammar"
)

func digit() *clause.Clause {
	return clause.NewCharSet(false, clause.Range{Lo: '0', Hi: '9'})
}

func TestParseOneOrMore(t *testing.T) {
	rules := []*grammar.Rule{
		grammar.NewRule("S", clause.NewOneOrMore(clause.NewLiteral("a"))),
	}
	g, err := grammar.Compile(rules)
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}
	input := []rune("aaaa")
	table := Parse(g, input)

	root, _ := g.RootClause("S")
	m, ok := table.LookUpBestMatch(root, 0)
	if !ok {
		t.Fatal("expected a match of S at pos 0")
	}
	if m.Len != len(input) {
		t.Fatalf("match len = %d, want %d", m.Len, len(input))
	}
}

func TestParseLeftAssociativeExpr(t *testing.T) {
	rules := []*grammar.Rule{
		grammar.NewPrecedenceRule("E", 0, grammar.AssocLeft, clause.NewSeq(
			clause.NewRuleRef("E"), clause.NewLiteral("+"), clause.NewRuleRef("E"))),
		grammar.NewPrecedenceRule("E", 1, grammar.AssocNone, digit()),
	}
	g, err := grammar.Compile(rules)
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}
	input := []rune("1+2+3")
	table := Parse(g, input)

	root, err := g.RootClause("E")
	if err != nil {
		t.Fatalf("RootClause: %v", err)
	}
	m, ok := table.LookUpBestMatch(root, 0)
	if !ok {
		t.Fatal("expected a match of E at pos 0")
	}
	if m.Len != len(input) {
		t.Fatalf("match len = %d, want %d (whole expression)", m.Len, len(input))
	}
}

func TestParseOptionalAtChildFailurePosition(t *testing.T) {
	rules := []*grammar.Rule{
		grammar.NewRule("S", clause.NewSeq(
			clause.NewOptional(clause.NewLiteral("a")), clause.NewLiteral("b"))),
	}
	g, err := grammar.Compile(rules)
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}
	input := []rune("b")
	table := Parse(g, input)

	root, _ := g.RootClause("S")
	m, ok := table.LookUpBestMatch(root, 0)
	if !ok {
		t.Fatal("expected S to match \"b\" via the absent optional 'a'")
	}
	if m.Len != 1 {
		t.Fatalf("match len = %d, want 1", m.Len)
	}
}

func TestParseZeroOrMoreOnEmptyInput(t *testing.T) {
	rules := []*grammar.Rule{
		grammar.NewRule("S", clause.NewZeroOrMore(clause.NewLiteral("a"))),
	}
	g, err := grammar.Compile(rules)
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}
	input := []rune("")
	table := Parse(g, input)

	root, _ := g.RootClause("S")
	m, ok := table.LookUpBestMatch(root, 0)
	if !ok {
		t.Fatal("expected S to match the empty input with zero repetitions")
	}
	if m.Len != 0 {
		t.Fatalf("match len = %d, want 0", m.Len)
	}
}

func TestParseNotFollowedBySucceedsWhenChildAbsent(t *testing.T) {
	rules := []*grammar.Rule{
		grammar.NewRule("S", clause.NewSeq(
			clause.NewNotFollowedBy(clause.NewLiteral("a")), clause.NewLiteral("b"))),
	}
	g, err := grammar.Compile(rules)
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}

	okTable := Parse(g, []rune("b"))
	root, _ := g.RootClause("S")
	m, ok := okTable.LookUpBestMatch(root, 0)
	if !ok {
		t.Fatal("expected S to match \"b\" since 'a' is not next")
	}
	if m.Len != 1 {
		t.Fatalf("match len = %d, want 1", m.Len)
	}

	failTable := Parse(g, []rune("ab"))
	if _, ok := failTable.LookUpBestMatch(root, 0); ok {
		t.Fatal("expected S not to match \"ab\", since 'a' is next")
	}
}

func TestParseProgramNonOverlapAndSyntaxErrors(t *testing.T) {
	lower := func() *clause.Clause { return clause.NewCharSet(false, clause.Range{Lo: 'a', Hi: 'z'}) }
	stmt := clause.NewSeq(
		clause.NewOneOrMore(lower()),
		clause.NewLiteral("="),
		clause.NewOneOrMore(digit()),
		clause.NewLiteral(";"),
	)
	rules := []*grammar.Rule{
		grammar.NewRule("Program", clause.NewOneOrMore(clause.NewRuleRef("Statement"))),
		grammar.NewRule("Statement", stmt),
	}
	g, err := grammar.Compile(rules)
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}

	input := []rune("a=1;bb=22;")
	table := Parse(g, input)

	statement, err := g.RootClause("Statement")
	if err != nil {
		t.Fatalf("RootClause(Statement): %v", err)
	}
	matches := table.GetNonOverlappingMatches(statement)
	if len(matches) != 2 {
		t.Fatalf("got %d non-overlapping statement matches, want 2", len(matches))
	}
	if matches[0].Key.StartPos != 0 || matches[1].Key.StartPos != 4 {
		t.Fatalf("unexpected match positions: %v, %v", matches[0].Key.StartPos, matches[1].Key.StartPos)
	}

	if errs := table.GetSyntaxErrors(statement); len(errs) != 0 {
		t.Fatalf("expected no syntax errors on well-formed input, got %v", errs)
	}

	badInput := []rune("a=1;???bb=22;")
	badTable := Parse(g, badInput)
	errs := badTable.GetSyntaxErrors(statement)
	if len(errs) != 1 {
		t.Fatalf("got %d syntax error spans, want 1: %v", len(errs), errs)
	}
	if errs[0].Start != 4 || errs[0].End != 7 {
		t.Fatalf("syntax error span = %v, want {4 7}", errs[0])
	}
}
