/*
Package pika implements pika parsing: a bottom-up, right-to-left,
dynamic-programming dual of packrat parsing for parsing-expression
grammars, with left recursion handled by a grammar rewrite rather than a
runtime seed-growing loop, and every sub-expression match memoized at
every input position to support optimal, non-cascading error recovery.

Build a grammar with package clause (clause trees) and package grammar
(Compile), then run it over an input with Parse. The result is a
memo.MemoTable; this package's Compile/Parse/GetNonOverlappingMatches/
GetNavigableMatches/GetSyntaxErrors are thin wrappers over packages
clause, grammar, memo, and parser for callers that don't need those
packages' full surface.

Package structure:

■ clause: the compiled grammar's DAG node type and terminal/combinator
constructors.

■ grammar: Rule, Grammar, and the Compile pipeline (precedence rewrite,
interning, rule-ref resolution, reachability and zero-width analysis,
seed-parent linking).

■ memo: the memo table and the per-clause-kind matching logic that reads
and writes it.

■ parser: the Parse driver -- the right-to-left, per-position worklist
fixpoint that fills a memo table.
*/
package pika
