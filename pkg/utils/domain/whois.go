package domain

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"strings"
	"time"
)

var ErrEmptyResponse = errors.New("empty response from server")

// Fetcher retrieves the raw registry response for a normalized domain.
type Fetcher interface {
	Name() string
	Fetch(ctx context.Context, domain string) (raw string, server string, err error)
}

type LookupError struct {
	Domain string
	Err    error
	Server string
}

func (e *LookupError) Error() string {
	if e.Server == "" {
		return fmt.Sprintf("whois lookup failed for %s: %v", e.Domain, e.Err)
	}
	return fmt.Sprintf("whois lookup failed for %s via %s: %v", e.Domain, e.Server, e.Err)
}

func (e *LookupError) Unwrap() error {
	return e.Err
}

// DefaultWhoisServers defines fallback servers for different TLDs
var DefaultWhoisServers = map[string][]string{
	"com":     {"whois.verisign-grs.com", "whois.markmonitor.com"},
	"net":     {"whois.verisign-grs.com"},
	"org":     {"whois.pir.org"},
	"info":    {"whois.afilias.net"},
	"biz":     {"whois.neulevel.biz"},
	"io":      {"whois.nic.io"},
	"fi":      {"whois.fi"},
	"default": {"whois.iana.org", "whois.internic.net"},
}

// DirectFetcher queries port 43 itself, trying each server known for the
// TLD in turn.
type DirectFetcher struct {
	servers map[string][]string
	port    string
	timeout time.Duration
}

// NewDirectFetcher builds a fetcher over servers, which is keyed by the last
// label of the domain; the "default" entry covers unknown TLDs. Entries may
// carry their own port ("host:4343"), otherwise 43 is used.
func NewDirectFetcher(servers map[string][]string, timeout time.Duration) *DirectFetcher {
	if servers == nil {
		servers = DefaultWhoisServers
	}
	return &DirectFetcher{servers: servers, port: "43", timeout: timeout}
}

func (f *DirectFetcher) Name() string {
	return "direct"
}

// Fetch performs the lookup with fallback servers
func (f *DirectFetcher) Fetch(ctx context.Context, domain string) (string, string, error) {
	tld := domain[strings.LastIndex(domain, ".")+1:]

	servers := f.servers[tld]
	if len(servers) == 0 {
		servers = f.servers["default"]
	}
	if len(servers) == 0 {
		return "", "", &LookupError{Domain: domain, Err: fmt.Errorf("no whois server for .%s", tld)}
	}

	var lastErr error
	for _, server := range servers {
		raw, err := f.query(ctx, domain, server)
		if err != nil {
			lastErr = &LookupError{Domain: domain, Err: err, Server: server}
			if ctx.Err() != nil {
				break
			}
			continue
		}
		return raw, server, nil
	}

	return "", "", lastErr
}

// query sends one request and reads until the server closes the connection.
func (f *DirectFetcher) query(ctx context.Context, domain, server string) (string, error) {
	addr := server
	if _, _, err := net.SplitHostPort(server); err != nil {
		addr = net.JoinHostPort(server, f.port)
	}

	dialer := &net.Dialer{Timeout: f.timeout}
	conn, err := dialer.DialContext(ctx, "tcp", addr)
	if err != nil {
		return "", fmt.Errorf("connection failed: %w", err)
	}
	defer conn.Close()

	deadline := time.Now().Add(f.timeout)
	if d, ok := ctx.Deadline(); ok && d.Before(deadline) {
		deadline = d
	}
	if err := conn.SetDeadline(deadline); err != nil {
		return "", fmt.Errorf("set deadline: %w", err)
	}

	if _, err := conn.Write([]byte(domain + "\r\n")); err != nil {
		return "", fmt.Errorf("write failed: %w", err)
	}

	body, err := io.ReadAll(conn)
	if err != nil {
		return "", fmt.Errorf("read failed: %w", err)
	}
	if len(body) == 0 {
		return "", ErrEmptyResponse
	}

	return string(body), nil
}
