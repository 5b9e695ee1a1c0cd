package session

// User is the backend's user record. The client treats it as an opaque
// payload: fields are read through accessors and unknown fields survive
// round trips through the store untouched.
type User map[string]any

// Merge returns a copy of u with the partial fields shallow-merged in.
// Merging into a nil user starts from an empty record.
func (u User) Merge(partial map[string]any) User {
	merged := make(User, len(u)+len(partial))
	for k, v := range u {
		merged[k] = v
	}
	for k, v := range partial {
		merged[k] = v
	}
	return merged
}

// ID returns the user's numeric identifier, or 0 if absent.
func (u User) ID() int64 {
	for _, key := range []string{"id", "userId"} {
		if v, ok := u[key]; ok {
			// JSON numbers decode as float64
			if f, ok := v.(float64); ok {
				return int64(f)
			}
			if n, ok := v.(int64); ok {
				return n
			}
		}
	}
	return 0
}

// Email returns the user's email, or "" if absent.
func (u User) Email() string {
	s, _ := u["email"].(string)
	return s
}

// Name returns the user's full name built from first and last name fields.
func (u User) Name() string {
	first, _ := u["firstName"].(string)
	last, _ := u["lastName"].(string)
	switch {
	case first != "" && last != "":
		return first + " " + last
	case first != "":
		return first
	default:
		return last
	}
}

// MFAEnabled reports whether multi-factor auth is enabled for the user.
func (u User) MFAEnabled() bool {
	b, _ := u["mfaEnabled"].(bool)
	return b
}
