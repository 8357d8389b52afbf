package constant

type ContextKey string

const (
	UserIDKey  ContextKey = "user_id"
	IsAdminKey ContextKey = "is_admin"
)
