package domain

// Wire-format limits from RFC 1035 section 2.3.4, applied to the
// ASCII-compatible (punycode) form of a name.
const (
	// MaxLabelLength is the longest encoded label, in bytes.
	MaxLabelLength = 63
	// MaxNameLength is the longest encoded name excluding the
	// implicit root label (255 bytes on the wire).
	MaxNameLength = 253
	// MaxLabels is the most labels a single name may carry.
	MaxLabels = 127
)

// Limits from RFC 5321 section 4.5.3.1 for email addresses.
const (
	// MaxEmailLength is the longest whole address, in bytes.
	MaxEmailLength = 254
	// MaxEmailLocalLength is the longest local part after
	// un-escaping, in bytes.
	MaxEmailLocalLength = 64
)

// LabelMode selects the character rules applied to a label.
type LabelMode uint8

const (
	// LabelModeStrict applies the rules for registrable domain
	// labels: alphanumeric edges, alphanumeric or hyphen inside.
	LabelModeStrict LabelMode = iota
	// LabelModeDNS additionally permits one leading underscore,
	// for _service-style resource record owner names.
	LabelModeDNS
)

// ValidateLabel checks a single ASCII-compatible encoded label
// against the length and character rules for the given mode. It is
// side-effect free and knows nothing about the label's position in
// the name; whole-name rules (numeric TLD, label count) live with
// the parsers.
func ValidateLabel(label string, mode LabelMode) error {
	// The underscore marker is part of the encoded label on the wire,
	// so it counts against the length limit.
	if len(label) > MaxLabelLength {
		return ErrLabelTooLong
	}
	if mode == LabelModeDNS && len(label) > 0 && label[0] == '_' {
		label = label[1:]
	}
	if len(label) == 0 {
		return ErrEmptyLabel
	}
	if !isAlnum(label[0]) {
		return ErrLabelStartNotAlnum
	}
	if !isAlnum(label[len(label)-1]) {
		return ErrLabelEndNotAlnum
	}
	for i := 1; i < len(label)-1; i++ {
		if c := label[i]; !isAlnum(c) && c != '-' {
			return ErrIllegalCharacter
		}
	}
	return nil
}

// AllNumeric reports whether s is non-empty and consists entirely of
// ASCII digits. Used by the strict domain check that rejects numeric
// TLDs (they would be indistinguishable from IPv4 literals).
func AllNumeric(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

func isAlnum(c byte) bool {
	switch {
	case c >= 'a' && c <= 'z':
		return true
	case c >= 'A' && c <= 'Z':
		return true
	case c >= '0' && c <= '9':
		return true
	}
	return false
}
