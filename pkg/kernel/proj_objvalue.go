package kernel

import (
	"net/mail"
	"strings"
)

type JobTitle string

type BucketURL string

type Email string

// IsValid reports whether the address parses as a single RFC 5322 mailbox
func (e Email) IsValid() bool {
	if strings.TrimSpace(string(e)) == "" {
		return false
	}
	addr, err := mail.ParseAddress(string(e))
	return err == nil && addr.Address == strings.TrimSpace(string(e))
}

// Normalized returns the trimmed, lower-cased address
func (e Email) Normalized() Email {
	return Email(strings.ToLower(strings.TrimSpace(string(e))))
}

func (e Email) String() string { return string(e) }

type Phone string

func (p Phone) String() string { return string(p) }

// Nationality is compared case-insensitively after trimming
type Nationality string

func (n Nationality) Equal(other Nationality) bool {
	return strings.EqualFold(strings.TrimSpace(string(n)), strings.TrimSpace(string(other)))
}

func (n Nationality) String() string { return string(n) }
