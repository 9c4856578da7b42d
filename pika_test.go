package pika_test

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"

	"github.com/pikaparse/pika"
	"github.com/pikaparse/pika/clause"
)

func TestEndToEndProgramParsing(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pika")
	defer teardown()

	lower := func() *clause.Clause { return clause.NewCharSet(false, clause.Range{Lo: 'a', Hi: 'z'}) }
	digit := func() *clause.Clause { return clause.NewCharSet(false, clause.Range{Lo: '0', Hi: '9'}) }
	statement := clause.NewSeq(
		clause.NewOneOrMore(lower()),
		clause.NewLiteral("="),
		clause.NewOneOrMore(digit()),
		clause.NewLiteral(";"),
	)
	rules := []*pika.Rule{
		pika.NewRule("Program", clause.NewOneOrMore(clause.NewRuleRef("Statement"))),
		pika.NewRule("Statement", statement),
	}

	g, err := pika.Compile(rules)
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}

	input := []rune("a=1;bb=22;")
	table := pika.Parse(g, input)

	matches, err := pika.GetNonOverlappingMatches(table, g, "Statement")
	if err != nil {
		t.Fatalf("GetNonOverlappingMatches: %v", err)
	}
	if len(matches) != 2 {
		t.Fatalf("got %d statement matches, want 2", len(matches))
	}

	errs, err := pika.GetSyntaxErrors(table, g, "Statement")
	if err != nil {
		t.Fatalf("GetSyntaxErrors: %v", err)
	}
	if len(errs) != 0 {
		t.Fatalf("expected clean parse, got syntax errors %v", errs)
	}
}

func TestEndToEndReportsSyntaxErrorGap(t *testing.T) {
	rules := []*pika.Rule{
		pika.NewRule("Word", clause.NewOneOrMore(clause.NewCharSet(false, clause.Range{Lo: 'a', Hi: 'z'}))),
	}
	g, err := pika.Compile(rules)
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}

	input := []rune("ab##cd")
	table := pika.Parse(g, input)

	errs, err := pika.GetSyntaxErrors(table, g, "Word")
	if err != nil {
		t.Fatalf("GetSyntaxErrors: %v", err)
	}
	if len(errs) != 1 || errs[0] != (pika.Span{Start: 2, End: 4}) {
		t.Fatalf("errs = %v, want [{2 4}]", errs)
	}
}

func TestEndToEndUnknownRuleName(t *testing.T) {
	rules := []*pika.Rule{pika.NewRule("A", clause.NewAnyChar())}
	g, err := pika.Compile(rules)
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}
	table := pika.Parse(g, []rune("x"))
	if _, err := pika.GetNonOverlappingMatches(table, g, "NoSuchRule"); err == nil {
		t.Fatal("expected an error for an unknown rule name")
	}
}

func TestEndToEndLeftAssociativeExpression(t *testing.T) {
	digit := clause.NewCharSet(false, clause.Range{Lo: '0', Hi: '9'})
	rules := []*pika.Rule{
		pika.NewPrecedenceRule("E", 0, pika.AssocLeft, clause.NewSeq(
			clause.NewRuleRef("E"), clause.NewLiteral("+"), clause.NewRuleRef("E"))),
		pika.NewPrecedenceRule("E", 1, pika.AssocNone, digit),
	}
	g, err := pika.Compile(rules)
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}
	input := []rune("1+2+3")
	table := pika.Parse(g, input)

	matches, err := pika.GetNonOverlappingMatches(table, g, "E")
	if err != nil {
		t.Fatalf("GetNonOverlappingMatches: %v", err)
	}
	if len(matches) != 1 || matches[0].Len != len(input) {
		t.Fatalf("matches = %v, want a single whole-input match", matches)
	}
}
