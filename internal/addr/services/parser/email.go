package parser

import (
	"net/netip"
	"strings"

	"github.com/haukened/namevet/internal/addr/domain"
)

// ParseEmailAddress parses text as an email address. The local part
// is tokenized here (unquoted atoms or one quoted span); the host
// part is an IP literal when bracketed, otherwise a full domain name
// parse whose errors propagate unchanged.
func (p *Parser) ParseEmailAddress(input string) (domain.Email, error) {
	if input == "" {
		return domain.Email{}, domain.ErrEmptyName
	}
	if len(input) > domain.MaxEmailLength {
		return domain.Email{}, domain.ErrEmailTooLong
	}
	local, hostText, err := splitLocalPart(input)
	if err != nil {
		return domain.Email{}, err
	}
	host, err := p.parseHost(hostText)
	if err != nil {
		return domain.Email{}, err
	}
	return domain.NewEmail(local, host)
}

// splitLocalPart tokenizes the local part and returns it raw (quotes
// and escapes preserved) along with the text after the separating at
// sign.
func splitLocalPart(input string) (local, host string, err error) {
	if input[0] == '"' {
		return splitQuoted(input)
	}
	at := strings.LastIndexByte(input, '@')
	if at < 0 {
		return "", "", domain.ErrNoAtSign
	}
	if at == 0 {
		return "", "", domain.ErrNoUserPart
	}
	if at == len(input)-1 {
		return "", "", domain.ErrNoHostPart
	}
	local = input[:at]
	if len(local) > domain.MaxEmailLocalLength {
		return "", "", domain.ErrEmailLocalTooLong
	}
	for i := 0; i < len(local); i++ {
		if !isAtomChar(local[i]) {
			return "", "", domain.ErrIllegalCharacter
		}
	}
	return local, input[at+1:], nil
}

// splitQuoted consumes a quoted local part. Inside the quotes a
// backslash escapes the following character; the un-escaped content
// counts against the local-part length limit.
func splitQuoted(input string) (string, string, error) {
	content := 0
	i := 1
	for {
		if i >= len(input) {
			return "", "", domain.ErrQuoteUnclosed
		}
		switch input[i] {
		case '\\':
			if i+1 >= len(input) {
				return "", "", domain.ErrQuoteUnclosed
			}
			i += 2
			content++
		case '"':
			if content == 0 {
				return "", "", domain.ErrNoUserPart
			}
			if content > domain.MaxEmailLocalLength {
				return "", "", domain.ErrEmailLocalTooLong
			}
			rest := input[i+1:]
			if rest == "" || rest[0] != '@' {
				return "", "", domain.ErrNoAtSign
			}
			if len(rest) == 1 {
				return "", "", domain.ErrNoHostPart
			}
			return input[:i+1], rest[1:], nil
		default:
			content++
			i++
		}
	}
}

// parseHost parses the host part: a bracketed IP literal, or a
// domain name.
func (p *Parser) parseHost(text string) (domain.Host, error) {
	if text[0] == '[' {
		if len(text) < 3 || text[len(text)-1] != ']' {
			return domain.Host{}, domain.ErrInvalidIpAddr
		}
		lit := text[1 : len(text)-1]
		// RFC 5321 tags general IPv6 literals.
		if len(lit) > 5 && strings.EqualFold(lit[:5], "ipv6:") {
			lit = lit[5:]
		}
		a, err := netip.ParseAddr(lit)
		if err != nil {
			return domain.Host{}, domain.ErrInvalidIpAddr
		}
		return domain.NewAddrHost(a), nil
	}
	n, err := p.ParseDomainName(text)
	if err != nil {
		return domain.Host{}, err
	}
	return domain.NewDomainHost(n), nil
}

// isAtomChar reports whether c may appear in an unquoted local part:
// RFC 5321 atext plus the dot separator.
func isAtomChar(c byte) bool {
	switch {
	case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
		return true
	}
	switch c {
	case '!', '#', '$', '%', '&', '\'', '*', '+', '-', '/', '=',
		'?', '^', '_', '`', '{', '|', '}', '~', '.':
		return true
	}
	return false
}
