package main

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vit0-9/whois_api/pkg/utils/domain"
)

func envFrom(vars map[string]string) (func(string) string, []string) {
	var environ []string
	for k, v := range vars {
		environ = append(environ, k+"="+v)
	}
	return func(k string) string { return vars[k] }, environ
}

func TestLoadConfigDefaults(t *testing.T) {
	getenv, environ := envFrom(nil)

	cfg, err := loadConfig(getenv, environ)
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "direct", cfg.Fetcher)
	assert.Equal(t, 15*time.Second, cfg.WhoisTimeout)
	assert.Equal(t, domain.DefaultResolver, cfg.DNSResolver)
	assert.Equal(t, domain.DefaultWhoisServers, cfg.WhoisServers)
	assert.IsType(t, &domain.DirectFetcher{}, cfg.newFetcher())
}

func TestLoadConfigOverrides(t *testing.T) {
	getenv, environ := envFrom(map[string]string{
		"PORT":             "9090",
		"WHOIS_FETCHER":    "Referral",
		"WHOIS_TIMEOUT":    "3s",
		"DNS_RESOLVER":     "1.1.1.1:53",
		"WHOIS_SERVERS_FI": "whois.fi, backup.whois.fi:4343",
		"WHOIS_SERVERS_":   "ignored",
	})

	cfg, err := loadConfig(getenv, environ)
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "referral", cfg.Fetcher)
	assert.Equal(t, 3*time.Second, cfg.WhoisTimeout)
	assert.Equal(t, "1.1.1.1:53", cfg.DNSResolver)
	assert.Equal(t, []string{"whois.fi", "backup.whois.fi:4343"}, cfg.WhoisServers["fi"])
	assert.Equal(t, domain.DefaultWhoisServers["com"], cfg.WhoisServers["com"])
	assert.NotContains(t, cfg.WhoisServers, "")
	assert.IsType(t, &domain.ReferralFetcher{}, cfg.newFetcher())
}

func TestLoadConfigRejectsBadValues(t *testing.T) {
	for name, vars := range map[string]map[string]string{
		"fetcher": {"WHOIS_FETCHER": "carrier-pigeon"},
		"timeout": {"WHOIS_TIMEOUT": "soon"},
		"zero":    {"WHOIS_TIMEOUT": "0s"},
	} {
		t.Run(name, func(t *testing.T) {
			getenv, environ := envFrom(vars)
			_, err := loadConfig(getenv, environ)
			assert.Error(t, err)
		})
	}
}
