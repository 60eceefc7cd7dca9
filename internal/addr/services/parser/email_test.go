package parser

import (
	"errors"
	"strings"
	"testing"

	"github.com/haukened/namevet/internal/addr/domain"
)

func TestParseEmailAddress(t *testing.T) {
	p := New(testRules(t))
	cases := []struct {
		name      string
		input     string
		wantStr   string
		wantLocal string
		wantHost  string
		wantKnown bool
	}{
		{"simple", "user@example.com", "user@example.com", "user", "example.com", true},
		{"dotted local", "first.last@example.com", "first.last@example.com", "first.last", "example.com", true},
		{"symbols in local", "user+tag!#$%@example.com", "user+tag!#$%@example.com", "user+tag!#$%", "example.com", true},
		{"host folds case", "user@Example.COM", "user@example.com", "user", "example.com", true},
		{"quoted local", `"john doe"@example.com`, `"john doe"@example.com`, `"john doe"`, "example.com", true},
		{"quoted with at sign", `"user@inside"@example.com`, `"user@inside"@example.com`, `"user@inside"`, "example.com", true},
		{"quoted escape", `"say \"hi\""@example.com`, `"say \"hi\""@example.com`, `"say \"hi\""`, "example.com", true},
		{"unknown suffix", "user@example.test", "user@example.test", "user", "example.test", false},
		{"ipv4 literal", "user@[127.0.0.1]", "user@[127.0.0.1]", "user", "[127.0.0.1]", false},
		{"ipv6 literal", "user@[IPv6:2001:db8::1]", "user@[2001:db8::1]", "user", "[2001:db8::1]", false},
		{"bare ipv6 literal", "user@[::1]", "user@[::1]", "user", "[::1]", false},
		{"unicode host", "user@食狮.中国", "user@xn--85x722f.xn--fiqs8s", "user", "xn--85x722f.xn--fiqs8s", true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			e, err := p.ParseEmailAddress(tc.input)
			if err != nil {
				t.Fatalf("ParseEmailAddress(%q): %v", tc.input, err)
			}
			if e.String() != tc.wantStr {
				t.Errorf("String() = %q, want %q", e.String(), tc.wantStr)
			}
			if e.LocalPart() != tc.wantLocal {
				t.Errorf("LocalPart() = %q, want %q", e.LocalPart(), tc.wantLocal)
			}
			if e.Host().String() != tc.wantHost {
				t.Errorf("Host() = %q, want %q", e.Host(), tc.wantHost)
			}
			if e.HasKnownSuffix() != tc.wantKnown {
				t.Errorf("HasKnownSuffix() = %v, want %v", e.HasKnownSuffix(), tc.wantKnown)
			}
		})
	}
}

func TestParseEmailAddress_Errors(t *testing.T) {
	p := New(testRules(t))
	cases := []struct {
		name  string
		input string
		want  error
	}{
		{"empty", "", domain.ErrEmptyName},
		{"no at sign", "userexample.com", domain.ErrNoAtSign},
		{"no user part", "@example.com", domain.ErrNoUserPart},
		{"no host part", "user@", domain.ErrNoHostPart},
		{"empty quoted local", `""@example.com`, domain.ErrNoUserPart},
		{"unterminated quote", `"user@example.com`, domain.ErrQuoteUnclosed},
		{"dangling escape", `"user\`, domain.ErrQuoteUnclosed},
		{"quote not followed by at", `"user"example.com`, domain.ErrNoAtSign},
		{"quote then nothing", `"user"@`, domain.ErrNoHostPart},
		{"illegal local char", "us er@example.com", domain.ErrIllegalCharacter},
		{"local too long", strings.Repeat("a", 65) + "@example.com", domain.ErrEmailLocalTooLong},
		{"quoted local too long", `"` + strings.Repeat("a", 65) + `"@example.com`, domain.ErrEmailLocalTooLong},
		{"email too long", "user@" + strings.Repeat("a.", 125) + "com", domain.ErrEmailTooLong},
		{"bad ipv4 literal", "user@[300.1.1.1]", domain.ErrInvalidIpAddr},
		{"unclosed bracket", "user@[127.0.0.1", domain.ErrInvalidIpAddr},
		{"empty literal", "user@[]", domain.ErrInvalidIpAddr},
		{"bad ipv6 literal", "user@[IPv6:zzzz::1]", domain.ErrInvalidIpAddr},
		{"host numeric tld", "user@example.1234", domain.ErrNumericTld},
		{"host bad label", "user@-example.com", domain.ErrLabelStartNotAlnum},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := p.ParseEmailAddress(tc.input)
			if !errors.Is(err, tc.want) {
				t.Errorf("ParseEmailAddress(%q) = %v, want %v", tc.input, err, tc.want)
			}
		})
	}
}

// Local-part length is measured on the unescaped quoted content, so 64
// characters plus escapes still fits.
func TestParseEmailAddress_QuotedLengthUnescaped(t *testing.T) {
	p := New(testRules(t))
	local := `"` + strings.Repeat(`\a`, domain.MaxEmailLocalLength) + `"`
	e, err := p.ParseEmailAddress(local + "@example.com")
	if err != nil {
		t.Fatalf("ParseEmailAddress: %v", err)
	}
	if e.LocalPart() != local {
		t.Errorf("LocalPart() = %q, want %q", e.LocalPart(), local)
	}
}

func TestParseEmailAddress_EmailSuffixRoot(t *testing.T) {
	p := New(testRules(t))
	e, err := p.ParseEmailAddress("user@a.example.uk.com")
	if err != nil {
		t.Fatalf("ParseEmailAddress: %v", err)
	}
	if suffix, ok := e.Suffix(); !ok || suffix != "uk.com" {
		t.Errorf("Suffix() = (%q, %v), want (uk.com, true)", suffix, ok)
	}
	if root, ok := e.Root(); !ok || root != "example.uk.com" {
		t.Errorf("Root() = (%q, %v), want (example.uk.com, true)", root, ok)
	}
}
