package whois

import "strings"

// rolePrefixes are the key markers for each role. The separating space is
// part of the marker.
var rolePrefixes = []struct {
	prefix string
	role   Role
}{
	{"registrant ", Registrant},
	{"admin ", Administrator},
	{"tech ", Technical},
}

var contactFields = map[string]func(c *Contact, value string){
	"name":           func(c *Contact, v string) { c.Name = v },
	"organization":   func(c *Contact, v string) { c.Organization = v },
	"street":         func(c *Contact, v string) { c.Street = v },
	"city":           func(c *Contact, v string) { c.City = v },
	"state/province": func(c *Contact, v string) { c.State = v },
	"postal code":    func(c *Contact, v string) { c.Zip = v },
	"country":        func(c *Contact, v string) { c.Country = v },
	"phone":          func(c *Contact, v string) { c.Phone = v },
	"fax":            func(c *Contact, v string) { c.Fax = v },
	"email":          func(c *Contact, v string) { c.Email = v },
}

// splitRole matches a role-prefixed key and returns the sub-key after it.
func splitRole(key string) (Role, string, bool) {
	for _, rp := range rolePrefixes {
		if sub, ok := strings.CutPrefix(key, rp.prefix); ok {
			return rp.role, sub, true
		}
	}
	return 0, "", false
}

// applyContactField sets one field on c. Unknown sub-keys are ignored.
func applyContactField(c *Contact, sub, value string) {
	if set, ok := contactFields[sub]; ok {
		set(c, value)
	}
}
