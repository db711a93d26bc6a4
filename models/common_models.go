// models/common_models.go
package models

// APIErrorResponse represents a standard error response format.
type APIErrorResponse struct {
	StatusCode int    `json:"status_code"`       // HTTP status code
	ErrorCode  string `json:"error_code"`        // Application-specific error code
	Message    string `json:"message"`           // User-friendly error message
	Details    string `json:"details,omitempty"` // More detailed information, if available
}

// Error codes carried in APIErrorResponse.ErrorCode.
const (
	ErrCodeInvalidInput   = "invalid_input"
	ErrCodeLookupFailed   = "lookup_failed"
	ErrCodeUnparsable     = "unparsable_response"
	ErrCodeDNSQueryFailed = "dns_query_failed"
)

// HealthResponse is returned by the health endpoint.
type HealthResponse struct {
	Status  string `json:"status" example:"UP"`
	Version string `json:"version" example:"dev"`
	Fetcher string `json:"fetcher" example:"direct"`
}
