/*
Package clause implements the clause DAG that a compiled pika grammar is
built from, together with the handful of terminal primitives (character
classes, literals, "any character", and the empty match) that sit at its
leaves.

A Clause is a tagged variant rather than an interface hierarchy: every
non-terminal kind (sequence, ordered choice, longest-of, one-or-more,
zero-or-more, optional, and the two lookaheads) shares the same struct,
distinguished by its Kind field. This keeps the DAG a single concrete type,
which makes interning (coalescing structurally-equal subtrees into shared
nodes) and the seed-parent back-links straightforward: both operate
uniformly across kinds instead of through a type switch on interface
implementations.

Clauses are built bottom-up with the New* constructors and are immutable
once a grammar has finished compiling them (see package grammar). Before
that point -- in particular while grammar assembles RuleRef placeholders
and rewrites left-recursive rules -- clauses are freely mutated in place;
callers outside package grammar should not rely on identity or mutability
of a Clause until compilation completes.
*/
package clause
