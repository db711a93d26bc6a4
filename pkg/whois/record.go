// Package whois turns the free-text response of a registry lookup into a
// structured Record. It performs no I/O.
package whois

import (
	"fmt"
	"time"

	"go.uber.org/zap/zapcore"
)

// RedactedRaw replaces Record.Raw whenever a Record is printed or logged.
const RedactedRaw = "[raw response redacted]"

// Role selects one of the three contacts every Record carries.
type Role int

const (
	Registrant Role = iota
	Administrator
	Technical
)

func (r Role) String() string {
	switch r {
	case Registrant:
		return "registrant"
	case Administrator:
		return "administrator"
	case Technical:
		return "technical"
	}
	return fmt.Sprintf("Role(%d)", int(r))
}

// Contact holds identity and address data for one role.
type Contact struct {
	Name         string `json:"name,omitempty"`
	Organization string `json:"organization,omitempty"`
	Street       string `json:"street,omitempty"`
	City         string `json:"city,omitempty"`
	State        string `json:"state,omitempty"`
	Zip          string `json:"zip,omitempty"`
	Country      string `json:"country,omitempty"`
	Phone        string `json:"phone,omitempty"`
	Fax          string `json:"fax,omitempty"`
	Email        string `json:"email,omitempty"`
}

// IsZero reports whether no field of the contact was set.
func (c Contact) IsZero() bool {
	return c == Contact{}
}

// Contacts is the fixed set of contact roles. There is no way to add or
// remove a role.
type Contacts struct {
	Registrant    Contact `json:"registrant"`
	Administrator Contact `json:"administrator"`
	Technical     Contact `json:"technical"`
}

// Get returns the contact bound to role. Unknown roles yield an empty Contact.
func (c Contacts) Get(role Role) Contact {
	if p := c.ref(role); p != nil {
		return *p
	}
	return Contact{}
}

func (c *Contacts) ref(role Role) *Contact {
	switch role {
	case Registrant:
		return &c.Registrant
	case Administrator:
		return &c.Administrator
	case Technical:
		return &c.Technical
	}
	return nil
}

// Record is the result of Parse. Optional strings are empty when the
// response did not carry them; optional timestamps are nil. Timestamps are
// naive: they carry no zone and are stored in time.UTC only as a carrier.
type Record struct {
	Domain       string
	Raw          string
	Nameservers  []string
	Registrar    string
	DomainStatus string
	Unlocked     bool
	CreatedAt    *time.Time
	UpdatedAt    *time.Time
	ExpiresAt    *time.Time
	Contacts     Contacts
}

// recordView has Record's layout without its formatting methods.
type recordView Record

// Format prints the record through the usual verbs with Raw redacted.
func (r Record) Format(f fmt.State, verb rune) {
	view := recordView(r)
	view.Raw = RedactedRaw
	fmt.Fprintf(f, fmt.FormatString(f, verb), view)
}

// String is Format with the %v verb.
func (r Record) String() string {
	return fmt.Sprintf("%v", r)
}

// MarshalLogObject lets zap log the record with Raw redacted.
func (r Record) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	enc.AddString("domain", r.Domain)
	enc.AddString("raw", RedactedRaw)
	if err := enc.AddArray("nameservers", zapcore.ArrayMarshalerFunc(func(arr zapcore.ArrayEncoder) error {
		for _, ns := range r.Nameservers {
			arr.AppendString(ns)
		}
		return nil
	})); err != nil {
		return err
	}
	enc.AddString("registrar", r.Registrar)
	enc.AddString("domain_status", r.DomainStatus)
	enc.AddBool("unlocked", r.Unlocked)
	addTime(enc, "created_at", r.CreatedAt)
	addTime(enc, "updated_at", r.UpdatedAt)
	addTime(enc, "expires_at", r.ExpiresAt)
	for _, role := range []Role{Registrant, Administrator, Technical} {
		if err := enc.AddObject(role.String(), r.Contacts.Get(role)); err != nil {
			return err
		}
	}
	return nil
}

// MarshalLogObject logs every field of the contact, empty or not.
func (c Contact) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	enc.AddString("name", c.Name)
	enc.AddString("organization", c.Organization)
	enc.AddString("street", c.Street)
	enc.AddString("city", c.City)
	enc.AddString("state", c.State)
	enc.AddString("zip", c.Zip)
	enc.AddString("country", c.Country)
	enc.AddString("phone", c.Phone)
	enc.AddString("fax", c.Fax)
	enc.AddString("email", c.Email)
	return nil
}

func addTime(enc zapcore.ObjectEncoder, key string, t *time.Time) {
	if t != nil {
		enc.AddString(key, t.Format(naiveLayout))
	}
}
