package whois

import (
	"strings"
	"time"
)

// builder accumulates fields for a single Parse call and never escapes it.
type builder struct {
	domain      string
	nameservers []string
	registrar   string
	status      string
	unlocked    bool
	created     *time.Time
	updated     *time.Time
	expires     *time.Time
	contacts    Contacts
}

// slot picks one of the builder's timestamps.
type slot func(b *builder) **time.Time

func createdAt(b *builder) **time.Time { return &b.created }
func updatedAt(b *builder) **time.Time { return &b.updated }
func expiresAt(b *builder) **time.Time { return &b.expires }

func newBuilder() *builder {
	return &builder{nameservers: []string{}}
}

func (b *builder) build(raw string) Record {
	return Record{
		Domain:       b.domain,
		Raw:          raw,
		Nameservers:  normalizeNameservers(b.nameservers),
		Registrar:    b.registrar,
		DomainStatus: b.status,
		Unlocked:     b.unlocked,
		CreatedAt:    b.created,
		UpdatedAt:    b.updated,
		ExpiresAt:    b.expires,
		Contacts:     b.contacts,
	}
}

// normalizeNameservers lowercases hosts and drops repeats, keeping the
// first occurrence.
func normalizeNameservers(hosts []string) []string {
	seen := make(map[string]struct{}, len(hosts))
	result := make([]string, 0, len(hosts))

	for _, host := range hosts {
		host = strings.ToLower(host)
		if _, ok := seen[host]; ok {
			continue
		}
		seen[host] = struct{}{}
		result = append(result, host)
	}

	return result
}

// isUnlocked reports whether a status value allows transfer. The "ok"
// prefix is matched case-sensitively, as registries emit the EPP code.
func isUnlocked(status string) bool {
	return strings.HasPrefix(status, "ok")
}
