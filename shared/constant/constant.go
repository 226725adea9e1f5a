package constant

import (
	"time"
)

// Context key types to avoid collisions
type contextKey string

const (
	ContextKeyUserID       contextKey = "user_id"
	ContextKeyUserEmail    contextKey = "user_email"
	ContextKeyUserRole     contextKey = "user_role"
	ContextKeyBusinessName contextKey = "business_name"
	ContextKeyTokenID      contextKey = "token_id"
)

const (
	RoleSuperAdmin = "superadmin"
	RoleAdmin      = "admin"
	RoleVendor     = "vendor"
)

// Persisted blob keys, one per store. The names are part of the on-disk
// contract and must not change.
const (
	BlobKeyStalls = "tradeHallStalls"
	BlobKeyMap    = "tradeHallMap"
	BlobKeyAdmins = "bookfairAdmins"
	BlobKeyVendor = "fairhallVendors"
)

const (
	RequestParamID = "id"
)

const (
	FieldModifiedAt = "modified_at"
)

const (
	DateFormat = time.RFC3339
)

const (
	OtelServiceScopeName    = "service"
	OtelRepositoryScopeName = "repository"
	OtelHandlerScopeName    = "handler"
	OtelStoreScopeName      = "blobstore"
	OtelS3ScopeName         = "s3"

	OtelQueryAttributeKey = "query"
	OtelBlobKeyAttribute  = "blob.key"
)

const (
	RequestHeaderAuthorization      = "Authorization"
	RequestHeaderContentType        = "Content-Type"
	RequestHeaderRateLimit          = "X-RateLimit-Limit"
	RequestHeaderRateLimitRemaining = "X-RateLimit-Remaining"
	RequestHeaderRateLimitWindow    = "X-RateLimit-Window"
	RequestHeaderUserAgent          = "User-Agent"
	RequestHeaderForwardedFor       = "X-Forwarded-For"
	RequestHeaderRealIP             = "X-Real-IP"
)

const (
	ContentTypeJSON = "application/json"
)

const (
	ResponseErrorPrepareShutdown      = "SERVER PREPARING TO SHUT DOWN"
	ResponseErrorUnhealthy            = "SERVER UNHEALTHY"
	ResponseErrorRequestLimitExceeded = "REQUEST LIMIT EXCEEDED"
)

const (
	ServerEnvDevelopment = "development"
	ServerEnvProduction  = "production"
)

const (
	Asterix = "*"
	Empty   = ""
)
