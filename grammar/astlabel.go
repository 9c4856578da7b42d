package grammar

import (
	"fmt"

	"github.com/pikaparse/pika/clause"
)

// liftRuleRootLabel promotes an clause.NewASTLabel sitting directly at a
// rule's root into the rule's ASTNodeLabel field, unwrapping it. A rule may
// be labeled at most once this way; a second label at the (new) root after
// unwrapping the first is an error, matching the Java source's behavior of
// leaving rule.astNodeLabel untouched on the second iteration -- which
// would silently drop the label, so this port makes the ambiguity an
// explicit error instead.
func liftRuleRootLabel(r *Rule) error {
	for r.Clause.IsASTLabel() {
		if r.ASTNodeLabel != "" {
			return fmt.Errorf("%w: rule %s already labeled %q", ErrMissingASTLabel, r.Name, r.ASTNodeLabel)
		}
		if r.Clause.Label == "" {
			return fmt.Errorf("%w: rule %s", ErrMissingASTLabel, r.Name)
		}
		r.ASTNodeLabel = r.Clause.Label
		r.Clause = r.Clause.SubClauses[0]
	}
	return nil
}

// liftASTLabels removes clause.NewASTLabel wrappers from subclause
// positions, replacing each with its inner clause and recording the label
// in the parent's SubClauseASTNodeLabels.
func liftASTLabels(c *clause.Clause) {
	for i, sub := range c.SubClauses {
		if sub.IsASTLabel() {
			if c.SubClauseASTNodeLabels == nil {
				c.SubClauseASTNodeLabels = make([]string, len(c.SubClauses))
			}
			if c.SubClauseASTNodeLabels[i] == "" {
				c.SubClauseASTNodeLabels[i] = sub.Label
			}
			c.SubClauses[i] = sub.SubClauses[0]
		}
		liftASTLabels(c.SubClauses[i])
	}
}
