package domain

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/vit0-9/whois_api/pkg/metrics"
	"github.com/vit0-9/whois_api/pkg/whois"
)

// Lookup is a parsed registry response plus the normalized domain it was
// fetched for, and where and when it was fetched.
type Lookup struct {
	Domain      string
	Record      whois.Record
	WhoisServer string
	QueryTime   time.Time
}

// Service fetches and parses registry data for a domain.
type Service struct {
	fetcher Fetcher
	metrics *metrics.Metrics
	logger  *zap.Logger
	now     func() time.Time
}

func NewService(fetcher Fetcher, m *metrics.Metrics, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		fetcher: fetcher,
		metrics: m,
		logger:  logger,
		now:     time.Now,
	}
}

// Lookup normalizes name, fetches its registry response and parses it. Fetch
// failures come back as *LookupError, fatal parse failures as
// *whois.DateError.
func (s *Service) Lookup(ctx context.Context, name string) (*Lookup, error) {
	domain, err := NormalizeDomain(name)
	if err != nil {
		return nil, err
	}

	start := s.now()
	raw, server, err := s.fetcher.Fetch(ctx, domain)
	if s.metrics != nil {
		s.metrics.ObserveLookup(s.fetcher.Name(), start, err)
	}
	if err != nil {
		s.logger.Warn("whois fetch failed",
			zap.String("domain", domain),
			zap.String("fetcher", s.fetcher.Name()),
			zap.Error(err))
		return nil, err
	}

	rec, err := s.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("parse response for %s: %w", domain, err)
	}

	s.logger.Debug("whois lookup complete",
		zap.String("domain", domain),
		zap.String("server", server),
		zap.Object("record", rec))

	return &Lookup{Domain: domain, Record: rec, WhoisServer: server, QueryTime: s.now()}, nil
}

// Parse runs whois.Parse and records its outcome.
func (s *Service) Parse(raw string) (whois.Record, error) {
	rec, err := whois.Parse(raw)
	if s.metrics != nil {
		s.metrics.ObserveParse(err)
	}
	if err != nil {
		s.logger.Warn("whois response rejected", zap.Error(err))
	}
	return rec, err
}
