package whois

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestMarshalLogObjectRedactsRaw(t *testing.T) {
	rec := mustParse(t, "Domain Name: example.com\nName Server: NS1.EXAMPLE.COM\nCreation Date: 2020-01-02T03:04:05\nAdmin Email: ops@example.com")

	enc := zapcore.NewMapObjectEncoder()
	require.NoError(t, rec.MarshalLogObject(enc))

	assert.Equal(t, RedactedRaw, enc.Fields["raw"])
	assert.Equal(t, "example.com", enc.Fields["domain"])
	assert.Equal(t, []interface{}{"ns1.example.com"}, enc.Fields["nameservers"])
	assert.Equal(t, "2020-01-02T03:04:05", enc.Fields["created_at"])
	assert.NotContains(t, enc.Fields, "expires_at")
	assert.Equal(t, map[string]interface{}{
		"name": "", "organization": "", "street": "", "city": "", "state": "",
		"zip": "", "country": "", "phone": "", "fax": "", "email": "",
	}, enc.Fields["registrant"])

	admin, ok := enc.Fields["administrator"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "ops@example.com", admin["email"])
}

func TestMarshalLogObjectKeepsEveryContactField(t *testing.T) {
	rec := mustParse(t, "Registrant Name: A\nRegistrant Phone: +1.555\nRegistrant Street: 1 Main\nRegistrant City: Springfield\nRegistrant State/Province: IL\nRegistrant Postal Code: 62701\nTech Fax: +1.9")

	enc := zapcore.NewMapObjectEncoder()
	require.NoError(t, rec.MarshalLogObject(enc))

	registrant, ok := enc.Fields["registrant"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "A", registrant["name"])
	assert.Equal(t, "+1.555", registrant["phone"])
	assert.Equal(t, "1 Main", registrant["street"])
	assert.Equal(t, "Springfield", registrant["city"])
	assert.Equal(t, "IL", registrant["state"])
	assert.Equal(t, "62701", registrant["zip"])

	tech, ok := enc.Fields["technical"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "+1.9", tech["fax"])
	assert.Equal(t, "", tech["name"])

	assert.Contains(t, enc.Fields, "administrator")
}

func TestLoggedRecordNeverCarriesRaw(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	logger := zap.New(core)

	rec := mustParse(t, "Domain Name: example.com\nRegistrar: Example Registrar")
	logger.Info("parsed", zap.Object("record", rec))

	entries := logs.All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()["record"].(map[string]interface{})
	assert.Equal(t, RedactedRaw, fields["raw"])
	assert.Equal(t, "Example Registrar", fields["registrar"])
}
