package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vit0-9/whois_api/pkg/whois"
)

func TestReport(t *testing.T) {
	expires := time.Date(2024, time.March, 11, 0, 0, 0, 0, time.UTC)
	rec := whois.Record{
		Domain:       "example.com",
		DomainStatus: "clientTransferProhibited",
		ExpiresAt:    &expires,
	}

	t.Run("future expiry", func(t *testing.T) {
		r := Report(rec, time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC))
		require.NotNil(t, r.DaysUntilExpiry)
		assert.Equal(t, 10, *r.DaysUntilExpiry)
		assert.False(t, r.Expired)
		assert.True(t, r.TransferLocked)
		assert.Equal(t, "example.com", r.Domain)
	})

	t.Run("past expiry", func(t *testing.T) {
		r := Report(rec, time.Date(2024, time.March, 21, 0, 0, 0, 0, time.UTC))
		require.NotNil(t, r.DaysUntilExpiry)
		assert.Equal(t, -10, *r.DaysUntilExpiry)
		assert.True(t, r.Expired)
	})

	t.Run("expired less than a day ago", func(t *testing.T) {
		r := Report(rec, time.Date(2024, time.March, 11, 12, 0, 0, 0, time.UTC))
		require.NotNil(t, r.DaysUntilExpiry)
		assert.Equal(t, -1, *r.DaysUntilExpiry)
		assert.True(t, r.Expired)
	})

	t.Run("expires later today", func(t *testing.T) {
		r := Report(rec, time.Date(2024, time.March, 10, 12, 0, 0, 0, time.UTC))
		assert.Equal(t, 0, *r.DaysUntilExpiry)
		assert.False(t, r.Expired)
	})

	t.Run("now is read on the UTC wall clock", func(t *testing.T) {
		zone := time.FixedZone("UTC+5", 5*3600)
		r := Report(rec, time.Date(2024, time.March, 1, 5, 0, 0, 0, zone))
		assert.Equal(t, 10, *r.DaysUntilExpiry)
	})
}

func TestReportWithoutExpiry(t *testing.T) {
	r := Report(whois.Record{Unlocked: true}, time.Now())

	assert.Nil(t, r.DaysUntilExpiry)
	assert.Nil(t, r.ExpiresAt)
	assert.False(t, r.Expired)
	assert.False(t, r.TransferLocked)
}
