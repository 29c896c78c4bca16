package constants

// Session
const (
	SessionCookieName = "fala_operador_session"
	ContextKeyUserID  = "user_id"
	ContextKeyCaller  = "caller"
)

// Pagination
const (
	MinPageSize     = 1
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// Credenciais
const (
	MinPasswordLength   = 8
	CredentialsProvider = "credentials"
)

// Upload de imagens
const (
	MaxImageSizeBytes = 5 * 1024 * 1024
)
