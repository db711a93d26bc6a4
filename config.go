package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/vit0-9/whois_api/pkg/utils/domain"
)

const serverOverridePrefix = "WHOIS_SERVERS_"

// Config is read from the environment, after .env has been loaded.
type Config struct {
	Port         string
	Env          string
	Fetcher      string
	WhoisTimeout time.Duration
	DNSResolver  string
	WhoisServers map[string][]string
}

// loadConfig builds a Config from getenv and the full environ list, which
// is scanned for WHOIS_SERVERS_<TLD> overrides.
func loadConfig(getenv func(string) string, environ []string) (Config, error) {
	cfg := Config{
		Port:         getenv("PORT"),
		Env:          getenv("APP_ENV"),
		Fetcher:      strings.ToLower(getenv("WHOIS_FETCHER")),
		WhoisTimeout: 15 * time.Second,
		DNSResolver:  getenv("DNS_RESOLVER"),
		WhoisServers: make(map[string][]string, len(domain.DefaultWhoisServers)),
	}

	if cfg.Port == "" {
		cfg.Port = "8080"
	}
	if cfg.Fetcher == "" {
		cfg.Fetcher = "direct"
	}
	if cfg.Fetcher != "direct" && cfg.Fetcher != "referral" {
		return Config{}, fmt.Errorf("WHOIS_FETCHER must be direct or referral, got %q", cfg.Fetcher)
	}
	if cfg.DNSResolver == "" {
		cfg.DNSResolver = domain.DefaultResolver
	}

	if raw := getenv("WHOIS_TIMEOUT"); raw != "" {
		d, err := time.ParseDuration(raw)
		if err != nil || d <= 0 {
			return Config{}, fmt.Errorf("invalid WHOIS_TIMEOUT %q", raw)
		}
		cfg.WhoisTimeout = d
	}

	for tld, servers := range domain.DefaultWhoisServers {
		cfg.WhoisServers[tld] = servers
	}
	for _, kv := range environ {
		key, value, ok := strings.Cut(kv, "=")
		if !ok || !strings.HasPrefix(key, serverOverridePrefix) {
			continue
		}
		tld := strings.ToLower(strings.TrimPrefix(key, serverOverridePrefix))
		var servers []string
		for _, s := range strings.Split(value, ",") {
			if s = strings.TrimSpace(s); s != "" {
				servers = append(servers, s)
			}
		}
		if tld != "" && len(servers) > 0 {
			cfg.WhoisServers[tld] = servers
		}
	}

	return cfg, nil
}

func (c Config) newFetcher() domain.Fetcher {
	if c.Fetcher == "referral" {
		return domain.NewReferralFetcher(c.WhoisTimeout)
	}
	return domain.NewDirectFetcher(c.WhoisServers, c.WhoisTimeout)
}
