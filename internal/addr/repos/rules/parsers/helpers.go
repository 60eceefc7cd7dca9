package parsers

import (
	"strings"

	"golang.org/x/net/idna"
)

// ruleLabelEncoder normalizes rule labels from the list's Unicode
// form to lowercase ASCII-compatible form, the space the matcher
// compares in.
var ruleLabelEncoder = idna.New(
	idna.MapForLookup(),
	idna.Transitional(false),
)

// normalizeRuleLabel lowercases an ASCII rule label or punycodes a
// non-ASCII one. The wildcard marker passes through untouched.
func normalizeRuleLabel(label string) (string, error) {
	if label == "*" {
		return label, nil
	}
	if isASCII(label) {
		return strings.ToLower(label), nil
	}
	return ruleLabelEncoder.ToASCII(label)
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= 0x80 {
			return false
		}
	}
	return true
}

// reverseLabels flips a leaf-first label split into the
// most-significant-first order rules are stored in.
func reverseLabels(labels []string) []string {
	for i, j := 0, len(labels)-1; i < j; i, j = i+1, j-1 {
		labels[i], labels[j] = labels[j], labels[i]
	}
	return labels
}
