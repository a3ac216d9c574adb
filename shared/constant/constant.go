package constant

const (
	ContextGuest = "guest"
)

// Context key types to avoid collisions
type contextKey string

const (
	ContextKeyUserID      contextKey = "user_id"
	ContextKeyUserEmail   contextKey = "user_email"
	ContextKeyBearerToken contextKey = "bearer_token"
	ContextKeyRequestID   contextKey = "request_id"
)

const (
	RequestParamID       = "id"
	RequestParamRedirect = "redirect"
)

const (
	DateFormat = "2006-01-02"
)

const (
	OtelServiceScopeName  = "service"
	OtelHandlerScopeName  = "handler"
	OtelExternalScopeName = "external"
	OtelWidgetScopeName   = "widget"
)

const (
	RequestHeaderAuthorization      = "Authorization"
	RequestHeaderUserAgent          = "User-Agent"
	RequestHeaderContentType        = "Content-Type"
	RequestHeaderRateLimit          = "X-RateLimit-Limit"
	RequestHeaderRateLimitRemaining = "X-RateLimit-Remaining"
	RequestHeaderRateLimitWindow    = "X-RateLimit-Window"
	RequestHeaderRequestID          = "X-Request-ID"
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
	Empty = ""
)
