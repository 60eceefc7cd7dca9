package domain

import (
	"fmt"
	"strings"
)

// RuleKind defines how a public suffix rule matches a name.
//
// plain     - the rule labels must literally match the trailing labels
// wildcard  - trailing labels match literally, plus any one more label
// exception - carves a specific name out of a wildcard's coverage
type RuleKind uint8

const (
	// RuleKindPlain matches a literal label suffix.
	RuleKindPlain RuleKind = iota
	// RuleKindWildcard matches the literal trailing labels and one
	// arbitrary label beyond them.
	RuleKindWildcard
	// RuleKindException overrides a wildcard for one specific name;
	// the suffix boundary sits one label inside the rule pattern.
	RuleKindException
)

// String returns a stable string representation of the rule kind.
func (k RuleKind) String() string {
	switch k {
	case RuleKindPlain:
		return "plain"
	case RuleKindWildcard:
		return "wildcard"
	case RuleKindException:
		return "exception"
	default:
		return fmt.Sprintf("RuleKind(%d)", k)
	}
}

// Section identifies which part of the public suffix list a rule
// came from.
type Section uint8

const (
	// SectionICANN covers suffixes delegated in the root zone.
	SectionICANN Section = iota
	// SectionPrivate covers suffixes operated by private registries
	// (hosting platforms, dynamic DNS providers, and so on).
	SectionPrivate
)

// String returns a stable string representation of the section.
func (s Section) String() string {
	switch s {
	case SectionICANN:
		return "icann"
	case SectionPrivate:
		return "private"
	default:
		return fmt.Sprintf("Section(%d)", s)
	}
}

// Rule is a single public suffix rule.
//
// Labels are stored most-significant first: the rule "uk.com" is
// ["com", "uk"], and the wildcard "*.ck" is ["ck", "*"]. Matching
// walks names from the TLD inward, so anchoring rules on their
// most-significant label makes lookup and comparison label-wise
// rather than character-wise. Labels are lowercase ASCII-compatible
// encoded; the '!' exception marker is carried in Kind, never in the
// labels themselves.
type Rule struct {
	Labels  []string
	Kind    RuleKind
	Section Section
}

// NewRule constructs a Rule and validates its shape.
func NewRule(labels []string, kind RuleKind, section Section) (Rule, error) {
	r := Rule{
		Labels:  labels,
		Kind:    kind,
		Section: section,
	}
	if err := r.Validate(); err != nil {
		return Rule{}, err
	}
	return r, nil
}

// Validate checks the Rule for a well-formed label pattern.
func (r Rule) Validate() error {
	if len(r.Labels) == 0 {
		return fmt.Errorf("rule must have at least one label")
	}
	switch r.Section {
	case SectionICANN, SectionPrivate:
		// ok
	default:
		return fmt.Errorf("unsupported Section: %d", r.Section)
	}
	switch r.Kind {
	case RuleKindPlain, RuleKindException:
		for _, l := range r.Labels {
			if l == "*" {
				return fmt.Errorf("%s rule must not contain a wildcard label", r.Kind)
			}
		}
	case RuleKindWildcard:
		last := len(r.Labels) - 1
		if r.Labels[last] != "*" {
			return fmt.Errorf("wildcard rule must end in a wildcard label")
		}
		for _, l := range r.Labels[:last] {
			if l == "*" {
				return fmt.Errorf("wildcard rule may only hold one wildcard label")
			}
		}
	default:
		return fmt.Errorf("unsupported RuleKind: %d", r.Kind)
	}
	if r.Kind == RuleKindException && len(r.Labels) < 2 {
		return fmt.Errorf("exception rule must have at least two labels")
	}
	for _, l := range r.Labels {
		if l == "" {
			return fmt.Errorf("rule must not contain empty labels")
		}
	}
	return nil
}

// Anchor returns the most-significant (TLD position) label the rule
// is indexed under.
func (r Rule) Anchor() string { return r.Labels[0] }

// String renders the rule in public suffix list notation.
func (r Rule) String() string {
	var b strings.Builder
	if r.Kind == RuleKindException {
		b.WriteByte('!')
	}
	for i := len(r.Labels) - 1; i >= 0; i-- {
		b.WriteString(r.Labels[i])
		if i != 0 {
			b.WriteByte('.')
		}
	}
	return b.String()
}

// Match is the outcome of suffix matching over a label sequence.
type Match struct {
	// Labels is the number of trailing labels forming the public
	// suffix. At least 1 for any non-empty name.
	Labels int
	// Known is true when an explicit rule matched, false when only
	// the implicit default rule (single top label) applied.
	Known bool
}
