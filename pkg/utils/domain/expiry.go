package domain

import (
	"math"
	"time"

	"github.com/vit0-9/whois_api/pkg/whois"
)

// ExpiryReport is what expiry monitors and transfer-lock checks need.
type ExpiryReport struct {
	Domain          string
	ExpiresAt       *time.Time
	DaysUntilExpiry *int
	Expired         bool
	TransferLocked  bool
	DomainStatus    string
}

// Report derives an ExpiryReport from rec as of now. Registry timestamps are
// naive, so now is read on the UTC wall clock before comparing.
func Report(rec whois.Record, now time.Time) ExpiryReport {
	report := ExpiryReport{
		Domain:         rec.Domain,
		ExpiresAt:      rec.ExpiresAt,
		TransferLocked: !rec.Unlocked,
		DomainStatus:   rec.DomainStatus,
	}

	if rec.ExpiresAt != nil {
		wall := now.UTC()
		days := int(math.Floor(rec.ExpiresAt.Sub(wall).Hours() / 24))
		report.DaysUntilExpiry = &days
		report.Expired = !rec.ExpiresAt.After(wall)
	}

	return report
}
