/*
Package grammar compiles a list of named, precedence-annotated rules into
a Grammar: a directed acyclic graph of clauses (package clause) with all
left recursion rewritten away, all rule references resolved to direct
clause pointers, and the zero-width and seed-parent properties the parser
driver (package parser) needs already computed.

Compilation is a fixed pipeline, run once per Grammar:

	rules -> group by name -> cycle check -> precedence/associativity
	rewrite -> AST-label lifting -> interning -> rule-ref resolution ->
	reachability ordering -> zero-width analysis -> seed-parent linking

Example:

	b := []*grammar.Rule{
		grammar.NewRule("Program", clause.NewOneOrMore(clause.NewRuleRef("Statement"))),
		grammar.NewRule("Statement", clause.NewSeq(
			clause.NewOneOrMore(clause.NewCharSet(false, clause.Range{Lo: 'a', Hi: 'z'})),
			clause.NewLiteral("="),
			clause.NewOneOrMore(clause.NewCharSet(false, clause.Range{Lo: '0', Hi: '9'})),
			clause.NewLiteral(";"),
		)),
	}
	g, err := grammar.Compile(b)
*/
package grammar
