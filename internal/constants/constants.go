package constants

const (
	// ContextKeyCurrentUser is the gin context key holding the authenticated user.
	ContextKeyCurrentUser = "current_user"

	// TokenTypeBearer is the token_type value returned with every access token.
	TokenTypeBearer = "bearer"

	// DefaultListLimit is the page size used when the client does not provide one.
	DefaultListLimit = 100
)
