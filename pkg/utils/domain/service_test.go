package domain

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/vit0-9/whois_api/pkg/metrics"
	"github.com/vit0-9/whois_api/pkg/whois"
)

type stubFetcher struct {
	raw       string
	server    string
	err       error
	requested []string
}

func (f *stubFetcher) Name() string { return "stub" }

func (f *stubFetcher) Fetch(_ context.Context, domain string) (string, string, error) {
	f.requested = append(f.requested, domain)
	return f.raw, f.server, f.err
}

type ServiceSuite struct {
	suite.Suite
	fetcher *stubFetcher
	metrics *metrics.Metrics
	logs    *observer.ObservedLogs
	service *Service
}

func (s *ServiceSuite) SetupTest() {
	core, logs := observer.New(zap.DebugLevel)
	s.logs = logs
	s.fetcher = &stubFetcher{server: "whois.test"}
	s.metrics = metrics.New()
	s.service = NewService(s.fetcher, s.metrics, zap.New(core))
	s.service.now = func() time.Time { return time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC) }
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) TestLookupParsesFetchedResponse() {
	s.fetcher.raw = "Domain Name: EXAMPLE.COM\nName Server: NS1.EXAMPLE.COM\nDomain Status: ok"

	res, err := s.service.Lookup(context.Background(), "  WWW.Example.COM. ")
	s.Require().NoError(err)

	s.Equal([]string{"example.com"}, s.fetcher.requested)
	s.Equal("example.com", res.Domain)
	s.Equal("EXAMPLE.COM", res.Record.Domain)
	s.Equal([]string{"ns1.example.com"}, res.Record.Nameservers)
	s.True(res.Record.Unlocked)
	s.Equal("whois.test", res.WhoisServer)
	s.Equal(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), res.QueryTime)

	s.Equal(1.0, testutil.ToFloat64(s.metrics.LookupTotal.WithLabelValues("stub", "ok")))
	s.Equal(1.0, testutil.ToFloat64(s.metrics.ParseTotal.WithLabelValues("ok")))

	entries := s.logs.FilterMessage("whois lookup complete").All()
	s.Require().Len(entries, 1)
	logged := entries[0].ContextMap()["record"].(map[string]interface{})
	s.Equal(whois.RedactedRaw, logged["raw"])
}

func (s *ServiceSuite) TestLookupRejectsBadDomain() {
	_, err := s.service.Lookup(context.Background(), "   ")
	s.ErrorIs(err, ErrEmptyDomain)
	s.Empty(s.fetcher.requested)
}

func (s *ServiceSuite) TestLookupFetchFailure() {
	s.fetcher.err = &LookupError{Domain: "example.com", Server: "whois.test", Err: errors.New("connection refused")}

	_, err := s.service.Lookup(context.Background(), "example.com")

	var lookupErr *LookupError
	s.Require().ErrorAs(err, &lookupErr)
	s.Equal(1.0, testutil.ToFloat64(s.metrics.LookupTotal.WithLabelValues("stub", "error")))
	s.Equal(1, s.logs.FilterMessage("whois fetch failed").Len())
}

func (s *ServiceSuite) TestLookupFatalParse() {
	s.fetcher.raw = "Registrar: Kept\nCreated: Smarch 13 2020"

	res, err := s.service.Lookup(context.Background(), "example.com")

	s.Nil(res)
	var dateErr *whois.DateError
	s.Require().ErrorAs(err, &dateErr)
	s.ErrorIs(err, whois.ErrUnknownMonth)
	s.Equal("created", dateErr.Key)
	s.Equal(1.0, testutil.ToFloat64(s.metrics.ParseTotal.WithLabelValues("fatal")))
}

func TestServiceWithoutMetricsOrLogger(t *testing.T) {
	svc := NewService(&stubFetcher{raw: "Registrar: R"}, nil, nil)

	res, err := svc.Lookup(context.Background(), "example.org")
	require.NoError(t, err)
	assert.Equal(t, "R", res.Record.Registrar)
}
