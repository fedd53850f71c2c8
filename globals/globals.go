package globals

// ContextKey is the type for request-context keys owned by this app.
type ContextKey string

// SessionKey carries the resolved *session.Session for the current request.
const SessionKey ContextKey = "session"
