package domain

import "errors"

// Parse failures form a closed set of syntax violations. Every parse
// entry point returns exactly one of these; callers branch on them
// with errors.Is. A failed parse never yields a partial result.
var (
	ErrEmptyName          = errors.New("name is empty")
	ErrNameTooLong        = errors.New("name too long")
	ErrEmptyLabel         = errors.New("name contains an empty label")
	ErrLabelTooLong       = errors.New("label too long")
	ErrLabelStartNotAlnum = errors.New("label does not start with an alphanumeric character")
	ErrLabelEndNotAlnum   = errors.New("label does not end with an alphanumeric character")
	ErrIllegalCharacter   = errors.New("name contains an illegal character")
	ErrTooManyLabels      = errors.New("too many labels")
	ErrNumericTld         = errors.New("numeric TLD")
	ErrInvalidDomain      = errors.New("invalid domain name")
	ErrDomainNotAscii     = errors.New("domain is not ASCII")
	ErrEmailTooLong       = errors.New("email too long")
	ErrEmailLocalTooLong  = errors.New("email local part too long")
	ErrNoAtSign           = errors.New("email address has no at sign")
	ErrNoUserPart         = errors.New("email address has no user part")
	ErrNoHostPart         = errors.New("email address has no host part")
	ErrQuoteUnclosed      = errors.New("email has an unclosed quotation mark")
	ErrInvalidIpAddr      = errors.New("email has an invalid ip address")
)
