package domain

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/net/idna"
	"golang.org/x/net/publicsuffix"
)

var (
	ErrEmptyDomain   = errors.New("domain cannot be empty")
	ErrInvalidDomain = errors.New("invalid domain")
)

// NormalizeDomain lowercases the name, converts IDNs to their ASCII form and
// reduces it to the registrable name (eTLD+1), which is what registries
// answer for. "WWW.Bücher.example." becomes "xn--bcher-kva.example".
func NormalizeDomain(name string) (string, error) {
	name = strings.TrimSuffix(strings.ToLower(strings.TrimSpace(name)), ".")
	if name == "" {
		return "", ErrEmptyDomain
	}

	ascii, err := idna.Lookup.ToASCII(name)
	if err != nil {
		return "", fmt.Errorf("%w %q: %v", ErrInvalidDomain, name, err)
	}

	registrable, err := publicsuffix.EffectiveTLDPlusOne(ascii)
	if err != nil {
		return "", fmt.Errorf("%w %q: %v", ErrInvalidDomain, name, err)
	}

	return registrable, nil
}
