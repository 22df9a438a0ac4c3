package constant

const (
	ContextKeyRequestID  = "requestId"
	ContextKeyTranslator = "T"

	RequestIDHeader = "X-Request-ID"
)
