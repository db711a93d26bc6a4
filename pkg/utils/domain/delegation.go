package domain

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/miekg/dns"
)

// DefaultResolver is used when no resolver is configured.
const DefaultResolver = "8.8.8.8:53"

// DelegationReport compares the nameservers a registry lists with the NS
// records the zone actually serves.
type DelegationReport struct {
	Domain         string
	Registry       []string
	DNS            []string
	OnlyInRegistry []string
	OnlyInDNS      []string
	Match          bool
}

type DelegationChecker struct {
	client   *dns.Client
	resolver string
}

func NewDelegationChecker(resolver string, timeout time.Duration) *DelegationChecker {
	if resolver == "" {
		resolver = DefaultResolver
	}
	return &DelegationChecker{
		client:   &dns.Client{Timeout: timeout},
		resolver: resolver,
	}
}

// LookupNS returns the NS hosts for domain, lowercased and without the
// trailing dot.
func (c *DelegationChecker) LookupNS(ctx context.Context, domain string) ([]string, error) {
	msg := new(dns.Msg)
	msg.SetQuestion(dns.Fqdn(domain), dns.TypeNS)

	resp, _, err := c.client.ExchangeContext(ctx, msg, c.resolver)
	if err != nil {
		return nil, fmt.Errorf("ns query for %s: %w", domain, err)
	}
	if resp.Rcode != dns.RcodeSuccess {
		return nil, fmt.Errorf("ns query for %s: %s", domain, dns.RcodeToString[resp.Rcode])
	}

	var hosts []string
	for _, rr := range resp.Answer {
		if ns, ok := rr.(*dns.NS); ok {
			hosts = append(hosts, canonicalHost(ns.Ns))
		}
	}
	return hosts, nil
}

// Check looks up live NS records and diffs them against registry.
func (c *DelegationChecker) Check(ctx context.Context, domain string, registry []string) (*DelegationReport, error) {
	live, err := c.LookupNS(ctx, domain)
	if err != nil {
		return nil, err
	}

	report := &DelegationReport{
		Domain:   domain,
		Registry: registry,
		DNS:      live,
	}
	report.OnlyInRegistry = difference(registry, live)
	report.OnlyInDNS = difference(live, registry)
	report.Match = len(report.OnlyInRegistry) == 0 && len(report.OnlyInDNS) == 0

	return report, nil
}

func canonicalHost(host string) string {
	return strings.TrimSuffix(strings.ToLower(host), ".")
}

// difference returns the hosts of a missing from b.
func difference(a, b []string) []string {
	have := make(map[string]struct{}, len(b))
	for _, host := range b {
		have[canonicalHost(host)] = struct{}{}
	}

	var missing []string
	for _, host := range a {
		if _, ok := have[canonicalHost(host)]; !ok {
			missing = append(missing, canonicalHost(host))
		}
	}
	return missing
}
