package whois

import (
	"errors"
	"strings"
)

// update applies one recognized line to the builder.
type update func(b *builder, value string) error

// fieldTable maps a normalized key to its update. Registry spellings of the
// same concept share one entry each.
var fieldTable = map[string]update{
	"domain name": setDomain,
	"domain":      setDomain,

	"name server": addNameserver,
	"nserver":     addNameserver,

	"registrar":            setRegistrar,
	"sponsoring registrar": setRegistrar,

	"domain status": setStatus,

	"creation date": strictDate(createdAt),
	"created":       altDate(createdAt),

	"updated date": strictDate(updatedAt),

	"expiration date":      strictDate(expiresAt),
	"registry expiry date": strictDate(expiresAt),
	"expires":              altDate(expiresAt),
}

// Parse converts a registry lookup response into a Record. Lines without a
// colon and unknown keys are skipped. The only error is a fatal date from
// the month-name dialect, in which case no Record is returned.
func Parse(raw string) (Record, error) {
	b := newBuilder()

	for _, line := range splitLines(raw) {
		key, value, ok := splitLine(line)
		if !ok {
			continue
		}
		if err := b.apply(key, value); err != nil {
			return Record{}, err
		}
	}

	return b.build(raw), nil
}

// splitLines breaks raw on LF, CRLF and bare CR. Empty lines are dropped.
func splitLines(raw string) []string {
	return strings.FieldsFunc(raw, func(r rune) bool { return r == '\n' || r == '\r' })
}

// splitLine splits a trimmed line on its first colon and normalizes the key.
func splitLine(line string) (key, value string, ok bool) {
	key, value, ok = strings.Cut(strings.TrimSpace(line), ":")
	if !ok {
		return "", "", false
	}
	return strings.ToLower(strings.TrimSpace(key)), strings.TrimSpace(value), true
}

func (b *builder) apply(key, value string) error {
	if fn, ok := fieldTable[key]; ok {
		err := fn(b, value)
		var dateErr *DateError
		if errors.As(err, &dateErr) {
			dateErr.Key = key
		}
		return err
	}
	if role, sub, ok := splitRole(key); ok {
		applyContactField(b.contacts.ref(role), sub, value)
	}
	return nil
}

func setDomain(b *builder, value string) error {
	b.domain = value
	return nil
}

func addNameserver(b *builder, value string) error {
	b.nameservers = append(b.nameservers, value)
	return nil
}

func setRegistrar(b *builder, value string) error {
	b.registrar = value
	return nil
}

func setStatus(b *builder, value string) error {
	b.status = value
	b.unlocked = isUnlocked(value)
	return nil
}
