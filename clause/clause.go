package clause

import (
	"fmt"
	"strings"

	"github.com/emirpasic/gods/sets/treeset"
	"github.com/emirpasic/gods/utils"
)

// Kind discriminates the variants of Clause.
type Kind int

// The clause kinds a compiled grammar is built from. RuleRef and astLabel
// are compile-time-only placeholders: neither survives into the reachable
// clause set of a finished Grammar.
const (
	KindTerminal Kind = iota
	KindSeq
	KindFirst
	KindLongest
	KindOneOrMore
	KindZeroOrMore
	KindOptional
	KindFollowedBy
	KindNotFollowedBy
	KindRuleRef
	kindASTLabel
)

func (k Kind) String() string {
	switch k {
	case KindTerminal:
		return "Terminal"
	case KindSeq:
		return "Seq"
	case KindFirst:
		return "First"
	case KindLongest:
		return "Longest"
	case KindOneOrMore:
		return "OneOrMore"
	case KindZeroOrMore:
		return "ZeroOrMore"
	case KindOptional:
		return "Optional"
	case KindFollowedBy:
		return "FollowedBy"
	case KindNotFollowedBy:
		return "NotFollowedBy"
	case KindRuleRef:
		return "RuleRef"
	case kindASTLabel:
		return "ASTLabel"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// TerminalKind discriminates the terminal primitives.
type TerminalKind int

const (
	// CharSet matches a single code point against a set of ranges.
	CharSet TerminalKind = iota
	// Literal matches a fixed run of code points.
	Literal
	// AnyChar matches exactly one code point, whatever it is.
	AnyChar
	// Nothing always matches, consuming no input.
	Nothing
)

// Range is an inclusive code-point range, used by CharSet terminals.
type Range struct {
	Lo, Hi rune
}

// Clause is a node in the compiled grammar's DAG. It is a tagged variant:
// Kind selects which of the fields below are meaningful.
type Clause struct {
	Kind Kind

	// Terminal fields (Kind == KindTerminal).
	Term    TerminalKind
	Ranges  []Range // CharSet
	Negated bool    // CharSet
	Lit     []rune  // Literal

	// astLabel fields (kindASTLabel; stripped during compilation).
	Label string

	// RuleRef fields (KindRuleRef; resolved away during compilation).
	RefRuleName string

	// Non-terminal fields.
	SubClauses             []*Clause
	SubClauseASTNodeLabels []string // parallel to SubClauses; nil if unused

	// Populated during compilation.
	CanMatchZeroChars bool
	SeedParents       *treeset.Set // set of *Clause, ordered by ID
	RuleNames         map[string]int // ruleName -> precedence, clause is the root of

	// ID is assigned once, when the clause is interned; it orders clauses
	// for the SeedParents treeset and gives every clause a stable identity
	// independent of pointer value (useful for logging and tests).
	ID int64

	// Repr is the canonical string form computed at intern time. Two
	// clauses with equal Repr are coalesced into the same node.
	Repr string

	// Hash is a content fingerprint of Repr, computed at intern time.
	// It exists purely so callers can cheaply check whether two
	// independently compiled grammars are structurally identical without
	// walking and comparing the whole DAG.
	Hash string
}

// ClauseComparator orders clauses by their interning ID, for use with
// gods ordered containers (treeset, redblacktree).
func ClauseComparator(a, b interface{}) int {
	ca := a.(*Clause)
	cb := b.(*Clause)
	return utils.Int64Comparator(ca.ID, cb.ID)
}

func newSeedParentSet() *treeset.Set {
	return treeset.NewWith(ClauseComparator)
}

// NewCharSet builds a terminal matching a single code point against ranges,
// or its complement if negated is true.
func NewCharSet(negated bool, ranges ...Range) *Clause {
	return &Clause{
		Kind:        KindTerminal,
		Term:        CharSet,
		Ranges:      ranges,
		Negated:     negated,
		SeedParents: newSeedParentSet(),
	}
}

// NewLiteral builds a terminal matching a fixed run of code points.
func NewLiteral(lit string) *Clause {
	return &Clause{
		Kind:        KindTerminal,
		Term:        Literal,
		Lit:         []rune(lit),
		SeedParents: newSeedParentSet(),
	}
}

// NewAnyChar builds a terminal matching exactly one code point.
func NewAnyChar() *Clause {
	return &Clause{Kind: KindTerminal, Term: AnyChar, SeedParents: newSeedParentSet()}
}

// NewNothing builds a terminal that always matches zero code points.
func NewNothing() *Clause {
	return &Clause{Kind: KindTerminal, Term: Nothing, SeedParents: newSeedParentSet()}
}

func newNonTerminal(kind Kind, subs []*Clause) *Clause {
	return &Clause{
		Kind:        kind,
		SubClauses:  subs,
		SeedParents: newSeedParentSet(),
	}
}

// NewSeq builds a sequence clause: all sub-clauses must match, contiguously.
func NewSeq(subs ...*Clause) *Clause { return newNonTerminal(KindSeq, subs) }

// NewFirst builds an ordered-choice clause: the first sub-clause that
// matches wins, regardless of whether a later alternative would be longer.
func NewFirst(subs ...*Clause) *Clause { return newNonTerminal(KindFirst, subs) }

// NewLongest builds a longest-of clause: every sub-clause is tried and the
// one consuming the most input wins, ties broken by lowest index. This is
// the clause kind the grammar compiler introduces to realize left recursion.
func NewLongest(subs ...*Clause) *Clause { return newNonTerminal(KindLongest, subs) }

// NewOneOrMore builds a one-or-more repetition of sub.
func NewOneOrMore(sub *Clause) *Clause { return newNonTerminal(KindOneOrMore, []*Clause{sub}) }

// NewZeroOrMore builds a zero-or-more repetition of sub.
func NewZeroOrMore(sub *Clause) *Clause { return newNonTerminal(KindZeroOrMore, []*Clause{sub}) }

// NewOptional builds an optional match of sub.
func NewOptional(sub *Clause) *Clause { return newNonTerminal(KindOptional, []*Clause{sub}) }

// NewFollowedBy builds a positive lookahead: matches zero characters iff sub
// matches at the same position.
func NewFollowedBy(sub *Clause) *Clause { return newNonTerminal(KindFollowedBy, []*Clause{sub}) }

// NewNotFollowedBy builds a negative lookahead: matches zero characters iff
// sub does not match at the same position.
func NewNotFollowedBy(sub *Clause) *Clause {
	return newNonTerminal(KindNotFollowedBy, []*Clause{sub})
}

// NewRuleRef builds a placeholder referring to a not-yet-resolved rule by
// name. It is only valid before grammar compilation resolves rule
// references into direct clause pointers.
func NewRuleRef(name string) *Clause {
	return &Clause{Kind: KindRuleRef, RefRuleName: name, SeedParents: newSeedParentSet()}
}

// NewASTLabel wraps inner with an AST node label. It is only valid before
// grammar compilation lifts the label into the enclosing rule or parent
// clause; it never survives into a compiled grammar's reachable clauses.
func NewASTLabel(label string, inner *Clause) *Clause {
	return &Clause{Kind: kindASTLabel, Label: label, SubClauses: []*Clause{inner}, SeedParents: newSeedParentSet()}
}

// IsRuleRef reports whether c is an unresolved rule reference to name.
func (c *Clause) IsRuleRef(name string) bool {
	return c.Kind == KindRuleRef && c.RefRuleName == name
}

// IsASTLabel reports whether c is an unlifted clause.NewASTLabel wrapper.
func (c *Clause) IsASTLabel() bool {
	return c.Kind == kindASTLabel
}

// Duplicate returns a structurally identical, independent copy of the
// clause tree rooted at c. It is used by the precedence rewrite to produce
// the non-left-recursive alternative of a left-associative rule; the
// duplicate must be made before interning, since interning is what causes
// the two branches to re-share sub-clauses that turn out identical.
func (c *Clause) Duplicate() *Clause {
	dup := &Clause{
		Kind:        c.Kind,
		Term:        c.Term,
		Negated:     c.Negated,
		Label:       c.Label,
		RefRuleName: c.RefRuleName,
		SeedParents: newSeedParentSet(),
	}
	if c.Ranges != nil {
		dup.Ranges = append([]Range(nil), c.Ranges...)
	}
	if c.Lit != nil {
		dup.Lit = append([]rune(nil), c.Lit...)
	}
	if c.SubClauses != nil {
		dup.SubClauses = make([]*Clause, len(c.SubClauses))
		for i, sub := range c.SubClauses {
			dup.SubClauses[i] = sub.Duplicate()
		}
	}
	if c.SubClauseASTNodeLabels != nil {
		dup.SubClauseASTNodeLabels = append([]string(nil), c.SubClauseASTNodeLabels...)
	}
	return dup
}

// StringRepr computes the canonical string form of c, used to intern
// structurally-equal clauses into a single shared node. It does not
// recurse into a RuleRef's referent -- at the point interning happens,
// RuleRefs still point to rules by name, and a self-referential rule would
// otherwise recurse forever.
func StringRepr(c *Clause) string {
	switch c.Kind {
	case KindTerminal:
		return terminalRepr(c)
	case KindRuleRef:
		return c.RefRuleName
	case kindASTLabel:
		return c.Label + ":" + childRepr(c.SubClauses[0])
	case KindSeq:
		return "(" + joinChildren(c, " ") + ")"
	case KindFirst:
		return "(" + joinChildren(c, " / ") + ")"
	case KindLongest:
		return "Longest(" + joinChildren(c, ", ") + ")"
	case KindOneOrMore:
		return "(" + childRepr(c.SubClauses[0]) + ")+"
	case KindZeroOrMore:
		return "(" + childRepr(c.SubClauses[0]) + ")*"
	case KindOptional:
		return "(" + childRepr(c.SubClauses[0]) + ")?"
	case KindFollowedBy:
		return "&(" + childRepr(c.SubClauses[0]) + ")"
	case KindNotFollowedBy:
		return "!(" + childRepr(c.SubClauses[0]) + ")"
	default:
		return fmt.Sprintf("<%s>", c.Kind)
	}
}

func childRepr(c *Clause) string {
	if c.Repr != "" {
		return c.Repr
	}
	return StringRepr(c)
}

func joinChildren(c *Clause, sep string) string {
	parts := make([]string, len(c.SubClauses))
	for i, sub := range c.SubClauses {
		parts[i] = childRepr(sub)
	}
	return strings.Join(parts, sep)
}

func terminalRepr(c *Clause) string {
	switch c.Term {
	case Nothing:
		return "()"
	case AnyChar:
		return "."
	case Literal:
		return "'" + string(c.Lit) + "'"
	case CharSet:
		var b strings.Builder
		b.WriteByte('[')
		if c.Negated {
			b.WriteByte('^')
		}
		for _, r := range c.Ranges {
			if r.Lo == r.Hi {
				b.WriteRune(r.Lo)
			} else {
				b.WriteRune(r.Lo)
				b.WriteByte('-')
				b.WriteRune(r.Hi)
			}
		}
		b.WriteByte(']')
		return b.String()
	default:
		return "?"
	}
}

// MatchesRune reports whether a CharSet or AnyChar terminal matches r.
// It is meaningless for other terminal kinds.
func (c *Clause) MatchesRune(r rune) bool {
	switch c.Term {
	case AnyChar:
		return true
	case CharSet:
		in := false
		for _, rg := range c.Ranges {
			if r >= rg.Lo && r <= rg.Hi {
				in = true
				break
			}
		}
		if c.Negated {
			return !in
		}
		return in
	default:
		return false
	}
}
