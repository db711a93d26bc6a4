package domain

import (
	"context"
	"strings"
	"time"

	"github.com/likexian/whois"
)

// ReferralFetcher asks the registry and follows its referral to the
// registrar's server, which usually carries the contact blocks.
type ReferralFetcher struct {
	client *whois.Client
}

func NewReferralFetcher(timeout time.Duration) *ReferralFetcher {
	client := whois.NewClient()
	client.SetTimeout(timeout)
	return &ReferralFetcher{client: client}
}

func (f *ReferralFetcher) Name() string {
	return "referral"
}

// Fetch runs the blocking client call in a goroutine so ctx can abandon it.
func (f *ReferralFetcher) Fetch(ctx context.Context, domain string) (string, string, error) {
	type result struct {
		raw string
		err error
	}
	done := make(chan result, 1)

	go func() {
		raw, err := f.client.Whois(domain)
		done <- result{raw: raw, err: err}
	}()

	select {
	case <-ctx.Done():
		return "", "", &LookupError{Domain: domain, Err: ctx.Err()}
	case res := <-done:
		if res.err != nil {
			return "", "", &LookupError{Domain: domain, Err: res.err}
		}
		if strings.TrimSpace(res.raw) == "" {
			return "", "", &LookupError{Domain: domain, Err: ErrEmptyResponse}
		}
		return res.raw, "", nil
	}
}
