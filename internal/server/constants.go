package server

import "time"

// HTTP error messages for middleware responses
const (
	ErrMsgUnauthorized    = "Unauthorized"
	ErrMsgTooManyRequests = "Too Many Requests"
	ErrMsgLockedOut       = "Too many failed API key attempts"
)

// SecurityAlertLockout is logged when a client hits the failed key limit.
const SecurityAlertLockout = "SECURITY ALERT: client locked out after failed API key attempts"

// Log messages for server lifecycle and request handling
const (
	LogMsgServerStarting   = "Server starting"
	LogMsgRequestStarted   = "Request started"
	LogMsgRequestCompleted = "Request completed"
	LogMsgRequestHeaders   = "Request headers"
	LogMsgAuthFailed       = "Authentication failed"
	LogMsgAuthDisabled     = "API key not set, /api routes are open"
	LogMsgRateLimited      = "Request rate limited"
)

// HTTP header names
const (
	HeaderAPIKey         = "X-API-Key"
	HeaderAuthorization  = "Authorization"
	HeaderForwardedFor   = "X-Forwarded-For"
	HeaderRetryAfter     = "Retry-After"
	HeaderContentType    = "X-Content-Type-Options"
	HeaderFrameOptions   = "X-Frame-Options"
	HeaderXSSProtection  = "X-XSS-Protection"
	HeaderReferrerPolicy = "Referrer-Policy"
)

// Security header values
const (
	HeaderValueNoSniff              = "nosniff"
	HeaderValueSameOrigin           = "SAMEORIGIN"
	HeaderValueXSSBlock             = "1; mode=block"
	HeaderValueReferrerStrictOrigin = "strict-origin-when-cross-origin"
)

// Per-client limits on the /api routes. Loadout previews are serialized on
// one generator, so the budget is per client rather than global.
const (
	RequestsPerSecond = 20
	RequestBurst      = 40
	FailedAuthLockout = 5
	LockoutWindow     = 5 * time.Minute
	MaxTrackedClients = 4096
)

// MaxRequestBytes bounds request bodies; loadout requests are tiny.
const MaxRequestBytes = 1 << 16

// PublicPaths are path prefixes that bypass authentication
var PublicPaths = []string{
	"/healthz",
	"/readyz",
	"/version",
	"/metrics",
}

// Header redaction marker
const (
	RedactedValue = "[REDACTED]"
)
