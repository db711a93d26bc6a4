package handlers

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/vit0-9/whois_api/models"
	"github.com/vit0-9/whois_api/pkg/utils/domain"
	"github.com/vit0-9/whois_api/pkg/whois"
)

// lookupTimeout bounds a single request; registries are often slow.
const lookupTimeout = 30 * time.Second

// Looker fetches and parses registry data for a domain.
type Looker interface {
	Lookup(ctx context.Context, name string) (*domain.Lookup, error)
	Parse(raw string) (whois.Record, error)
}

// NameserverChecker compares registry nameservers with live DNS.
type NameserverChecker interface {
	Check(ctx context.Context, domain string, registry []string) (*domain.DelegationReport, error)
}

// WhoisHandlers groups the registry lookup endpoints
type WhoisHandlers struct {
	lookups    Looker
	delegation NameserverChecker
	logger     *zap.Logger
	now        func() time.Time
}

func NewWhoisHandlers(lookups Looker, delegation NameserverChecker, logger *zap.Logger) *WhoisHandlers {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &WhoisHandlers{
		lookups:    lookups,
		delegation: delegation,
		logger:     logger,
		now:        time.Now,
	}
}

// LookupHandler godoc
// @Summary      Perform WHOIS lookup for a domain
// @Description  Queries the registry for a domain and returns the parsed record. The raw response is only included when raw=true.
// @Tags         WHOIS
// @Produce      json
// @Param        domain query string true "Domain for WHOIS lookup"
// @Param        raw query bool false "Include the raw registry response"
// @Success      200 {object} models.WhoisLookupResponse
// @Failure      400 {object} models.APIErrorResponse "Invalid or missing domain"
// @Failure      422 {object} models.APIErrorResponse "Registry response could not be parsed"
// @Failure      502 {object} models.APIErrorResponse "Registry could not be reached"
// @Router       /whois/lookup [get]
func (h *WhoisHandlers) LookupHandler(c *gin.Context) {
	domainQuery, ok := requireDomain(c)
	if !ok {
		return
	}
	includeRaw, _ := strconv.ParseBool(c.Query("raw"))

	result, err := h.lookup(c, domainQuery)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.WhoisLookupResponse{
		Query:       domainQuery,
		WhoisServer: result.WhoisServer,
		QueryTime:   result.QueryTime,
		Record:      models.NewWhoisRecord(result.Record, includeRaw),
	})
}

// ParseHandler godoc
// @Summary      Parse a captured WHOIS response
// @Description  Parses registry response text obtained elsewhere. No network access is performed.
// @Tags         WHOIS
// @Accept       json
// @Produce      json
// @Param        request body models.WhoisParseRequest true "Raw registry response"
// @Success      200 {object} models.WhoisRecord
// @Failure      400 {object} models.APIErrorResponse "Invalid request payload"
// @Failure      422 {object} models.APIErrorResponse "Registry response could not be parsed"
// @Router       /whois/parse [post]
func (h *WhoisHandlers) ParseHandler(c *gin.Context) {
	var req models.WhoisParseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, models.ErrCodeInvalidInput, "Invalid request payload", err)
		return
	}

	rec, err := h.lookups.Parse(*req.Raw)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.NewWhoisRecord(rec, req.IncludeRaw))
}

// ExpiryHandler godoc
// @Summary      Check domain expiry and transfer lock
// @Description  Looks up a domain and reports days until expiry and whether transfers are locked.
// @Tags         WHOIS
// @Produce      json
// @Param        domain query string true "Domain to check"
// @Success      200 {object} models.ExpiryResponse
// @Failure      400 {object} models.APIErrorResponse "Invalid or missing domain"
// @Failure      422 {object} models.APIErrorResponse "Registry response could not be parsed"
// @Failure      502 {object} models.APIErrorResponse "Registry could not be reached"
// @Router       /whois/expiry [get]
func (h *WhoisHandlers) ExpiryHandler(c *gin.Context) {
	domainQuery, ok := requireDomain(c)
	if !ok {
		return
	}

	result, err := h.lookup(c, domainQuery)
	if err != nil {
		h.respondError(c, err)
		return
	}

	report := domain.Report(result.Record, h.now())
	if report.Domain == "" {
		report.Domain = domainQuery
	}
	c.JSON(http.StatusOK, models.NewExpiryResponse(report, result.QueryTime))
}

// DelegationHandler godoc
// @Summary      Compare registry nameservers with DNS
// @Description  Looks up a domain and diffs the nameservers held by the registry against the NS records served by DNS.
// @Tags         WHOIS
// @Produce      json
// @Param        domain query string true "Domain to check"
// @Success      200 {object} models.DelegationResponse
// @Failure      400 {object} models.APIErrorResponse "Invalid or missing domain"
// @Failure      422 {object} models.APIErrorResponse "Registry response could not be parsed"
// @Failure      502 {object} models.APIErrorResponse "Registry or resolver could not be reached"
// @Router       /whois/delegation [get]
func (h *WhoisHandlers) DelegationHandler(c *gin.Context) {
	domainQuery, ok := requireDomain(c)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), lookupTimeout)
	defer cancel()

	result, err := h.lookups.Lookup(ctx, domainQuery)
	if err != nil {
		h.respondError(c, err)
		return
	}

	report, err := h.delegation.Check(ctx, result.Domain, result.Record.Nameservers)
	if err != nil {
		h.logger.Warn("delegation check failed", zap.String("domain", result.Domain), zap.Error(err))
		abortWithError(c, http.StatusBadGateway, models.ErrCodeDNSQueryFailed, "DNS query failed", err)
		return
	}

	c.JSON(http.StatusOK, models.NewDelegationResponse(report))
}

func (h *WhoisHandlers) lookup(c *gin.Context, name string) (*domain.Lookup, error) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), lookupTimeout)
	defer cancel()
	return h.lookups.Lookup(ctx, name)
}

// respondError maps service errors onto status codes.
func (h *WhoisHandlers) respondError(c *gin.Context, err error) {
	var dateErr *whois.DateError
	switch {
	case errors.Is(err, domain.ErrEmptyDomain), errors.Is(err, domain.ErrInvalidDomain):
		abortWithError(c, http.StatusBadRequest, models.ErrCodeInvalidInput, "Invalid domain", err)
	case errors.As(err, &dateErr):
		abortWithError(c, http.StatusUnprocessableEntity, models.ErrCodeUnparsable, "Registry response could not be parsed", err)
	default:
		abortWithError(c, http.StatusBadGateway, models.ErrCodeLookupFailed, "WHOIS lookup failed", err)
	}
}

func requireDomain(c *gin.Context) (string, bool) {
	domainQuery := c.Query("domain")
	if domainQuery == "" {
		abortWithError(c, http.StatusBadRequest, models.ErrCodeInvalidInput, "domain query parameter is required", nil)
		return "", false
	}
	return domainQuery, true
}

func abortWithError(c *gin.Context, status int, code, message string, err error) {
	resp := models.APIErrorResponse{
		StatusCode: status,
		ErrorCode:  code,
		Message:    message,
	}
	if err != nil {
		resp.Details = err.Error()
	}
	c.AbortWithStatusJSON(status, resp)
}
