// File: models/whois_models.go
package models

import (
	"time"

	"github.com/vit0-9/whois_api/pkg/utils/domain"
	"github.com/vit0-9/whois_api/pkg/whois"
)

// WhoisParseRequest carries a registry response captured elsewhere. Raw must
// be present but may be empty.
type WhoisParseRequest struct {
	Raw        *string `json:"raw" binding:"required" example:"Domain Name: EXAMPLE.COM\nRegistrar: Example Registrar\nDomain Status: ok"`
	IncludeRaw bool    `json:"include_raw,omitempty" example:"false"`
}

// WhoisRecord is the JSON form of a parsed registry response.
type WhoisRecord struct {
	Domain       string         `json:"domain,omitempty" example:"EXAMPLE.COM"`
	Registrar    string         `json:"registrar,omitempty" example:"Example Registrar"`
	DomainStatus string         `json:"domain_status,omitempty" example:"ok"`
	Unlocked     bool           `json:"unlocked" example:"true"`
	NameServers  []string       `json:"name_servers"`
	CreatedAt    *NaiveTime     `json:"created_at,omitempty" swaggertype:"string" example:"1995-08-14T04:00:00"`
	UpdatedAt    *NaiveTime     `json:"updated_at,omitempty" swaggertype:"string" example:"2023-08-14T07:01:38"`
	ExpiresAt    *NaiveTime     `json:"expires_at,omitempty" swaggertype:"string" example:"2024-08-13T04:00:00"`
	Contacts     whois.Contacts `json:"contacts"`
	Raw          string         `json:"raw,omitempty"` // Only when requested
}

// NewWhoisRecord converts a parsed record; the raw response is dropped
// unless includeRaw is set.
func NewWhoisRecord(rec whois.Record, includeRaw bool) *WhoisRecord {
	out := &WhoisRecord{
		Domain:       rec.Domain,
		Registrar:    rec.Registrar,
		DomainStatus: rec.DomainStatus,
		Unlocked:     rec.Unlocked,
		NameServers:  rec.Nameservers,
		CreatedAt:    NewNaiveTime(rec.CreatedAt),
		UpdatedAt:    NewNaiveTime(rec.UpdatedAt),
		ExpiresAt:    NewNaiveTime(rec.ExpiresAt),
		Contacts:     rec.Contacts,
	}
	if out.NameServers == nil {
		out.NameServers = []string{}
	}
	if includeRaw {
		out.Raw = rec.Raw
	}
	return out
}

// WhoisLookupResponse represents the response from WHOIS lookup
type WhoisLookupResponse struct {
	Query       string       `json:"query" example:"example.com"`
	WhoisServer string       `json:"whois_server,omitempty" example:"whois.verisign-grs.com"`
	QueryTime   time.Time    `json:"query_time"`
	Record      *WhoisRecord `json:"record,omitempty"`
	Error       string       `json:"error,omitempty"`
}

// ExpiryResponse answers expiry monitors and transfer-lock checks.
type ExpiryResponse struct {
	Domain          string     `json:"domain" example:"example.com"`
	ExpiresAt       *NaiveTime `json:"expires_at,omitempty" swaggertype:"string" example:"2024-08-13T04:00:00"`
	DaysUntilExpiry *int       `json:"days_until_expiry,omitempty" example:"120"`
	Expired         bool       `json:"expired"`
	TransferLocked  bool       `json:"transfer_locked"`
	DomainStatus    string     `json:"domain_status,omitempty" example:"clientTransferProhibited"`
	QueryTime       time.Time  `json:"query_time"`
}

func NewExpiryResponse(r domain.ExpiryReport, queryTime time.Time) ExpiryResponse {
	return ExpiryResponse{
		Domain:          r.Domain,
		ExpiresAt:       NewNaiveTime(r.ExpiresAt),
		DaysUntilExpiry: r.DaysUntilExpiry,
		Expired:         r.Expired,
		TransferLocked:  r.TransferLocked,
		DomainStatus:    r.DomainStatus,
		QueryTime:       queryTime,
	}
}

// DelegationResponse compares registry nameservers with live NS records.
type DelegationResponse struct {
	Domain         string   `json:"domain" example:"example.com"`
	Registry       []string `json:"registry_name_servers"`
	DNS            []string `json:"dns_name_servers"`
	OnlyInRegistry []string `json:"only_in_registry,omitempty"`
	OnlyInDNS      []string `json:"only_in_dns,omitempty"`
	Match          bool     `json:"match"`
}

func NewDelegationResponse(r *domain.DelegationReport) DelegationResponse {
	return DelegationResponse{
		Domain:         r.Domain,
		Registry:       r.Registry,
		DNS:            r.DNS,
		OnlyInRegistry: r.OnlyInRegistry,
		OnlyInDNS:      r.OnlyInDNS,
		Match:          r.Match,
	}
}
