/*
Package parser drives the pika fixpoint: given a compiled grammar.Grammar
and an input, it fills a memo.MemoTable with every clause's best match at
every position, processing positions right to left as pika parsing
requires (a clause's match can depend on matches starting later in the
input, never earlier).
*/
package parser
