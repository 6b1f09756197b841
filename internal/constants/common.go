package constants

// Common string constants used throughout the codebase
const (
	// Log levels
	ErrorLevel = "error"

	// Environments
	ProdEnvironment = "prod"

	// Service name attached to production logs
	ServiceName = "cyphera-appsync"

	// Payload kinds accepted by the appsync-payload tool
	CachingConfigKind = "caching-config"
	APIKeyKind        = "api-key"
)
