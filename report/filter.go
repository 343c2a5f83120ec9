package report

import (
	"fmt"

	"github.com/Knetic/govaluate"

	"fp-miner/fpgrowth"
)

// RuleFilter boolean expression over confidence, lift, support, antecedent_size and consequent_size,
// e.g. "lift > 1.2 && support >= 10"
type RuleFilter struct {
	expr       string
	expression *govaluate.EvaluableExpression
}

// NewRuleFilter compiles expr, an empty expr gives a nil filter that keeps everything
func NewRuleFilter(expr string) (*RuleFilter, error) {
	if expr == "" {
		return nil, nil
	}
	expression, err := govaluate.NewEvaluableExpression(expr)
	if err != nil {
		return nil, fmt.Errorf("invalid rule filter '%s': %w", expr, err)
	}
	return &RuleFilter{expr: expr, expression: expression}, nil
}

// Keep whether rule passes the filter
func (f *RuleFilter) Keep(rule fpgrowth.Rule) (bool, error) {
	if f == nil {
		return true, nil
	}
	result, err := f.expression.Evaluate(map[string]interface{}{
		"confidence":      rule.Confidence,
		"lift":            rule.Lift,
		"support":         float64(rule.Support),
		"antecedent_size": float64(rule.Antecedent.Len()),
		"consequent_size": float64(rule.Consequent.Len()),
	})
	if err != nil {
		return false, err
	}
	keep, ok := result.(bool)
	if !ok {
		return false, fmt.Errorf("rule filter '%s' is not a boolean expression", f.expr)
	}
	return keep, nil
}

// Apply rules passing the filter, order kept
func (f *RuleFilter) Apply(rules []fpgrowth.Rule) ([]fpgrowth.Rule, error) {
	if f == nil {
		return rules, nil
	}
	kept := make([]fpgrowth.Rule, 0, len(rules))
	for _, rule := range rules {
		ok, err := f.Keep(rule)
		if err != nil {
			return nil, err
		}
		if ok {
			kept = append(kept, rule)
		}
	}
	return kept, nil
}
