// Package session holds the client's auth session state and its transitions.
package session

// Session is a point-in-time snapshot of the auth state.
//
// IsAuthenticated is true iff both Token and User are present; every
// transition re-establishes that invariant.
type Session struct {
	User            User
	Token           string
	IsAuthenticated bool
	Loading         bool
	Error           string
}
