package domain

import (
	"fmt"
	"net/netip"
	"strings"
)

// Name is a parsed, validated domain name. It owns the canonical
// ASCII-compatible encoded text plus the suffix boundary computed by
// the matcher, and is immutable after construction.
type Name struct {
	name   string // canonical ACE form, lowercase, no trailing dot
	suffix int    // byte offset where the public suffix begins
	root   int    // byte offset where the registrable root begins, -1 when none
	known  bool
}

// NewName constructs a Name from its canonical text and the number of
// trailing labels that form its public suffix.
func NewName(name string, suffixLabels int, known bool) (Name, error) {
	starts := labelStarts(name)
	n := len(starts)
	if n == 0 {
		return Name{}, fmt.Errorf("name must not be empty")
	}
	if suffixLabels < 1 || suffixLabels > n {
		return Name{}, fmt.Errorf("suffix of %d labels out of range for %d-label name", suffixLabels, n)
	}
	nm := Name{
		name:   name,
		suffix: starts[n-suffixLabels],
		root:   -1,
		known:  known,
	}
	if suffixLabels < n {
		nm.root = starts[n-suffixLabels-1]
	}
	return nm, nil
}

// String returns the full canonical name.
func (n Name) String() string { return n.name }

// Suffix returns the public suffix: the matched trailing labels
// rejoined with dots. Always present for a domain; when no explicit
// rule applied it is the single top label.
func (n Name) Suffix() string { return n.name[n.suffix:] }

// Root returns the registrable domain: the suffix plus exactly one
// more label. ok is false when the name has no labels beyond its own
// suffix.
func (n Name) Root() (string, bool) {
	if n.root < 0 {
		return "", false
	}
	return n.name[n.root:], true
}

// HasKnownSuffix reports whether the suffix came from an explicit
// rule rather than the implicit default rule.
func (n Name) HasKnownSuffix() bool { return n.known }

// DNSName is a parsed resource-record name. Unlike Name it may keep
// a trailing root terminator and underscore-prefixed labels, and it
// carries no registrable-domain guarantee: Suffix may be absent.
type DNSName struct {
	name   string // canonical lowercase, optional trailing dot preserved
	suffix int    // byte offset of the suffix, -1 when none applies
	root   int
	known  bool
}

// NewDNSName constructs a DNSName. suffixLabels of zero records that
// no portion of the name matched any rule.
func NewDNSName(name string, suffixLabels int, known bool) (DNSName, error) {
	trimmed := strings.TrimSuffix(name, ".")
	starts := labelStarts(trimmed)
	n := len(starts)
	if suffixLabels < 0 || suffixLabels > n {
		return DNSName{}, fmt.Errorf("suffix of %d labels out of range for %d-label name", suffixLabels, n)
	}
	dn := DNSName{
		name:   name,
		suffix: -1,
		root:   -1,
		known:  known,
	}
	if suffixLabels > 0 {
		dn.suffix = starts[n-suffixLabels]
	}
	if suffixLabels > 0 && suffixLabels < n {
		dn.root = starts[n-suffixLabels-1]
	}
	return dn, nil
}

// String returns the name as parsed, trailing terminator included.
func (n DNSName) String() string { return n.name }

// Suffix returns the matched public suffix, keeping the trailing
// terminator when the name carried one. ok is false when no rule
// portion applied.
func (n DNSName) Suffix() (string, bool) {
	if n.suffix < 0 {
		return "", false
	}
	return n.name[n.suffix:], true
}

// Root returns the suffix plus one more label, when present.
func (n DNSName) Root() (string, bool) {
	if n.root < 0 {
		return "", false
	}
	return n.name[n.root:], true
}

// HasKnownSuffix reports whether an explicit rule matched.
func (n DNSName) HasKnownSuffix() bool { return n.known }

// Host is the host part of an email address: either a parsed domain
// name or a bracketed IP literal.
type Host struct {
	domain Name
	addr   netip.Addr
	isAddr bool
}

// NewDomainHost wraps a parsed domain name as an email host.
func NewDomainHost(n Name) Host { return Host{domain: n} }

// NewAddrHost wraps an IP literal as an email host.
func NewAddrHost(a netip.Addr) Host { return Host{addr: a, isAddr: true} }

// IsAddr reports whether the host is an IP literal.
func (h Host) IsAddr() bool { return h.isAddr }

// Domain returns the host's domain name when it is not an IP literal.
func (h Host) Domain() (Name, bool) {
	if h.isAddr {
		return Name{}, false
	}
	return h.domain, true
}

// Addr returns the host's IP address when it is an IP literal.
func (h Host) Addr() (netip.Addr, bool) {
	if !h.isAddr {
		return netip.Addr{}, false
	}
	return h.addr, true
}

// String renders the host: the domain text, or the address in its
// bracketed literal form.
func (h Host) String() string {
	if h.isAddr {
		return "[" + h.addr.String() + "]"
	}
	return h.domain.String()
}

// Email is a parsed, validated email address.
type Email struct {
	local string // raw local part, quotes and escapes preserved
	host  Host
}

// NewEmail constructs an Email from a tokenized local part and host.
func NewEmail(local string, host Host) (Email, error) {
	if local == "" {
		return Email{}, fmt.Errorf("email local part must not be empty")
	}
	return Email{local: local, host: host}, nil
}

// String returns the address in local@host form.
func (e Email) String() string { return e.local + "@" + e.host.String() }

// LocalPart returns the local part exactly as written, quoting and
// escapes preserved.
func (e Email) LocalPart() string { return e.local }

// Host returns the parsed host part.
func (e Email) Host() Host { return e.host }

// Suffix returns the public suffix of the host when the host is a
// domain name.
func (e Email) Suffix() (string, bool) {
	d, ok := e.host.Domain()
	if !ok {
		return "", false
	}
	return d.Suffix(), true
}

// Root returns the registrable domain of the host when the host is a
// domain name with labels beyond its suffix.
func (e Email) Root() (string, bool) {
	d, ok := e.host.Domain()
	if !ok {
		return "", false
	}
	return d.Root()
}

// HasKnownSuffix reports whether the host is a domain whose suffix
// came from an explicit rule.
func (e Email) HasKnownSuffix() bool {
	d, ok := e.host.Domain()
	return ok && d.HasKnownSuffix()
}

// labelStarts returns the byte offset of each label in name.
// An empty name yields no offsets.
func labelStarts(name string) []int {
	if name == "" {
		return nil
	}
	starts := make([]int, 0, strings.Count(name, ".")+1)
	starts = append(starts, 0)
	for i := 0; i < len(name); i++ {
		if name[i] == '.' {
			starts = append(starts, i+1)
		}
	}
	return starts
}
