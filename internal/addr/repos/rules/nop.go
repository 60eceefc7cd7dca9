package rules

import (
	"github.com/haukened/namevet/internal/addr/domain"
	"github.com/haukened/namevet/internal/addr/services/parser"
)

// NopRuleset is a Ruleset with no explicit rules: every name falls
// back to the default rule, so the single top label is the suffix and
// nothing reports a known suffix. Useful when no list is configured.
type NopRuleset struct{}

func (NopRuleset) Rules(string) []domain.Rule {
	return nil
}

var _ parser.Ruleset = NopRuleset{}
