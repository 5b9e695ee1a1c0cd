package session

// Store defines persistence operations for the auth session. Implementations
// must never propagate storage failures: reads degrade to zero values and
// writes to no-ops, so callers can treat persistence as best effort.
type Store interface {
	// Token returns the persisted token, or "" if none.
	Token() string
	// SaveToken persists the token. An empty token removes the entry.
	SaveToken(token string)
	// User returns the persisted user, or nil if none or unparseable.
	User() User
	// SaveUser persists the user. A nil user removes the entry.
	SaveUser(u User)
	// ClearAuth removes both token and user.
	ClearAuth()
	// Snapshot returns the persisted token and user together.
	Snapshot() (token string, user User)
}
