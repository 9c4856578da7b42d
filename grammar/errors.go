package grammar

import "errors"

// Sentinel errors returned (wrapped with details via fmt.Errorf's %w) by
// Compile and by query-time rule lookups. Callers should compare against
// these with errors.Is rather than matching on message text.
var (
	ErrEmptyGrammar             = errors.New("grammar must consist of at least one rule")
	ErrUnnamedRule              = errors.New("all rules must be named")
	ErrSelfOnlyRule             = errors.New("rule refers only to itself")
	ErrDuplicatePrecedenceLevel = errors.New("duplicate precedence level for rule")
	ErrCyclicUserClause         = errors.New("rule's clause tree contains a cycle")
	ErrUnknownRuleRef           = errors.New("unknown rule reference")
	ErrUnknownLexRule           = errors.New("unknown lex rule name")
	ErrMissingASTLabel          = errors.New("AST node label is nil")
	ErrUnknownRule              = errors.New("unknown rule name")
)
