/*
Package memo implements the pika memo table: the mapping from (clause,
start position) to its best known Match, plus the per-clause-kind
matching logic that reads and writes that table.

Matching a non-terminal clause is inseparable from the memo table: a Seq
clause matches by looking up its children's matches in the table, a
Longest clause matches by comparing across all of its children's table
entries, and so on. Keeping clause.Clause's DAG free of that logic (it
lives here instead, as MatchClause) avoids an import cycle between
"the DAG" and "the table it is looked up in".

MemoTable additionally exposes the neighbourhood queries --
non-overlapping matches, non-match positions, and a navigable per-clause
index -- that MemoTable.GetSyntaxErrors and package pika's
GetSyntaxErrors use to turn a completed parse into syntax-error spans.
*/
package memo
