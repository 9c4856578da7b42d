package grammar

import "github.com/pikaparse/pika/clause"

// Associativity selects how a multi-precedence-level rule's self-references
// are retargeted during the precedence rewrite.
type Associativity int

const (
	// AssocNone retargets every self-reference to the next-higher
	// precedence level.
	AssocNone Associativity = iota
	// AssocLeft retargets the left-most self-reference to the same
	// level, and every other self-reference to the next-higher level.
	AssocLeft
	// AssocRight retargets the right-most self-reference to the same
	// level, and every other self-reference to the next-higher level.
	AssocRight
)

func (a Associativity) String() string {
	switch a {
	case AssocLeft:
		return "left"
	case AssocRight:
		return "right"
	default:
		return "none"
	}
}

// Rule is a compile-time entity: a named clause tree, optionally one of
// several precedence levels sharing a name. After Compile, only the
// resulting Grammar's clauses are referenced by the parser; Rule values
// are not consulted during parsing.
type Rule struct {
	// Name is the rule's name, without any precedence suffix.
	Name string
	// Precedence is meaningless unless this name has more than one Rule;
	// higher binds tighter.
	Precedence int
	// Assoc selects self-reference retargeting when Precedence is one of
	// several levels sharing Name.
	Assoc Associativity
	// Clause is the rule's root clause. Compile mutates this field (and
	// the tree it points to) in place as it rewrites the grammar.
	Clause *clause.Clause
	// ASTNodeLabel is set directly, or lifted from a clause.NewASTLabel
	// sitting at the clause root during compilation.
	ASTNodeLabel string

	// resolvedName is Name, or Name plus a "[precedence]" suffix once
	// Compile has processed a multi-level rule set.
	resolvedName string
}

// NewRule builds a single-precedence-level rule.
func NewRule(name string, c *clause.Clause) *Rule {
	return &Rule{Name: name, Clause: c}
}

// NewPrecedenceRule builds one precedence level of a multi-level rule.
// Multiple calls sharing name encode the rule's precedence-climbing
// levels; see Associativity.
func NewPrecedenceRule(name string, precedence int, assoc Associativity, c *clause.Clause) *Rule {
	return &Rule{Name: name, Precedence: precedence, Assoc: assoc, Clause: c}
}

// ResolvedName returns the name this rule is stored under in a compiled
// Grammar: Name itself for single-level rules, or "Name[precedence]" for
// one level of a multi-level rule.
func (r *Rule) ResolvedName() string {
	if r.resolvedName == "" {
		return r.Name
	}
	return r.resolvedName
}
