package parser

import "github.com/haukened/namevet/internal/addr/domain"

// Ruleset is the query capability the suffix matcher needs from a
// public suffix list. Implementations return every rule anchored at
// the given most-significant (rightmost) label, in any order. An
// empty result means no explicit rule applies and the implicit
// default rule (single top label, not known) takes effect.
//
// How the ruleset is loaded, stored, or refreshed is the provider's
// concern; the matcher only reads. Implementations must be safe for
// concurrent use.
type Ruleset interface {
	Rules(anchor string) []domain.Rule
}
