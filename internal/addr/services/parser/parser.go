// Package parser validates and decomposes internet names: domain
// names, DNS resource-record names, and email addresses. Domains are
// decomposed into registrable root and public suffix against an
// injected Ruleset.
//
// Every parse is a pure, deterministic computation over its input and
// the ruleset. Nothing here logs or keeps state; concurrent use is
// safe as long as the ruleset outlives in-flight calls.
package parser

import (
	"strings"

	"golang.org/x/net/idna"

	"github.com/haukened/namevet/internal/addr/domain"
)

// aceEncoder converts internationalized labels to their ASCII-
// compatible (punycode) form. MapForLookup also case-folds and
// NFC-normalizes, so encoded output is already canonical lowercase.
var aceEncoder = idna.New(
	idna.MapForLookup(),
	idna.Transitional(false),
)

// Parser validates internet names against a public suffix ruleset.
type Parser struct {
	rules Ruleset
}

// New constructs a Parser. A nil ruleset behaves as an empty one:
// every domain falls back to the default rule and reports an unknown
// suffix.
func New(rules Ruleset) *Parser {
	if rules == nil {
		rules = emptyRuleset{}
	}
	return &Parser{rules: rules}
}

// emptyRuleset holds no explicit rules.
type emptyRuleset struct{}

func (emptyRuleset) Rules(string) []domain.Rule { return nil }

// ParseDomainName parses text as a registrable domain name: strict
// label rules, no trailing terminator, numeric TLDs rejected. The
// returned Name is in canonical ASCII-compatible lowercase form.
func (p *Parser) ParseDomainName(input string) (domain.Name, error) {
	labels, err := encodeLabels(input, domain.LabelModeStrict)
	if err != nil {
		return domain.Name{}, err
	}
	if domain.AllNumeric(labels[len(labels)-1]) {
		return domain.Name{}, domain.ErrNumericTld
	}
	m := matchSuffix(labels, p.rules)
	return domain.NewName(strings.Join(labels, "."), m.Labels, m.Known)
}

// ParseDNSName parses text as a DNS name: one trailing terminator
// permitted (and preserved), leading underscores allowed on labels,
// and no registrable-root requirement. When no rule portion applies
// the name's Suffix is simply absent rather than an error.
func (p *Parser) ParseDNSName(input string) (domain.DNSName, error) {
	labels, err := encodeLabels(input, domain.LabelModeDNS)
	if err != nil {
		return domain.DNSName{}, err
	}
	name := strings.Join(labels, ".")
	if strings.HasSuffix(input, ".") {
		name += "."
	}
	var m domain.Match
	if len(labels) > 0 {
		m = matchSuffix(labels, p.rules)
	}
	return domain.NewDNSName(name, m.Labels, m.Known)
}

// encodeLabels splits input into labels, applies ASCII-compatible
// encoding where needed, and validates every label for the given
// mode. Labels are returned leaf-first with any permitted trailing
// terminator removed.
func encodeLabels(input string, mode domain.LabelMode) ([]string, error) {
	if input == "" {
		return nil, domain.ErrEmptyName
	}
	// The single optional trailing separator does not count against
	// the total length limit.
	if len(strings.TrimSuffix(input, ".")) > domain.MaxNameLength {
		return nil, domain.ErrNameTooLong
	}
	parts := strings.Split(input, ".")
	if mode == domain.LabelModeDNS && len(parts) > 1 && parts[len(parts)-1] == "" {
		parts = parts[:len(parts)-1]
	}
	// Already implied by the length gate above (n labels need at
	// least 2n-1 bytes); kept so the label-count limit is explicit.
	if len(parts) > domain.MaxLabels {
		return nil, domain.ErrTooManyLabels
	}
	labels := make([]string, len(parts))
	total := -1 // separators between n labels: n-1 dots
	for i, raw := range parts {
		if raw == "" {
			return nil, domain.ErrEmptyLabel
		}
		label, err := encodeLabel(raw)
		if err != nil {
			return nil, err
		}
		if err := domain.ValidateLabel(label, mode); err != nil {
			return nil, err
		}
		labels[i] = label
		total += len(label) + 1
	}
	// Encoding can expand a label, so the encoded total is checked
	// again even though the raw input fit.
	if total > domain.MaxNameLength {
		return nil, domain.ErrNameTooLong
	}
	return labels, nil
}

// encodeLabel lowercases an ASCII label, or punycodes a non-ASCII
// one. Encoding failure surfaces as a domain-validation error.
func encodeLabel(raw string) (string, error) {
	if isASCII(raw) {
		return strings.ToLower(raw), nil
	}
	ace, err := aceEncoder.ToASCII(raw)
	if err != nil {
		return "", domain.ErrInvalidDomain
	}
	if !isASCII(ace) {
		return "", domain.ErrDomainNotAscii
	}
	return ace, nil
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= 0x80 {
			return false
		}
	}
	return true
}
