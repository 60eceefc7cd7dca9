package parser

import "github.com/haukened/namevet/internal/addr/domain"

// matchSuffix computes the public suffix of a label sequence
// (leaf-first, most-significant label last) against the ruleset.
//
// Precedence follows the public suffix list algorithm: an exception
// rule prevails over every other match regardless of depth; otherwise
// the match covering the most labels wins; when nothing explicit
// matches, the default rule makes the single top label the suffix.
// An exception's suffix boundary sits one label inside its pattern:
// the rule carves that subtree out of a wildcard's coverage.
func matchSuffix(labels []string, rules Ruleset) domain.Match {
	n := len(labels)
	if n == 0 {
		// Parsers reject empty sequences before matching.
		return domain.Match{}
	}
	var exception, longest int
	for _, r := range rules.Rules(labels[n-1]) {
		switch r.Kind {
		case domain.RuleKindException:
			if tailMatch(labels, r.Labels) {
				if l := len(r.Labels) - 1; l > exception {
					exception = l
				}
			}
		case domain.RuleKindWildcard:
			// k literal labels below the wildcard position; the
			// wildcard itself needs one more label to consume.
			k := len(r.Labels) - 1
			if n >= k+1 && tailMatch(labels, r.Labels[:k]) && k+1 > longest {
				longest = k + 1
			}
		case domain.RuleKindPlain:
			if tailMatch(labels, r.Labels) && len(r.Labels) > longest {
				longest = len(r.Labels)
			}
		}
	}
	if exception > 0 {
		return domain.Match{Labels: exception, Known: true}
	}
	if longest > 0 {
		return domain.Match{Labels: longest, Known: true}
	}
	return domain.Match{Labels: 1, Known: false}
}

// tailMatch reports whether pattern (most-significant first) literally
// matches the trailing labels of labels (leaf-first).
func tailMatch(labels, pattern []string) bool {
	n := len(labels)
	if len(pattern) > n {
		return false
	}
	for i, p := range pattern {
		if labels[n-1-i] != p {
			return false
		}
	}
	return true
}
