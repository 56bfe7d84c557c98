package investmind

import (
	"slices"
)

// minimumAge is the youngest age allowed to open an account.
const minimumAge = 15

// Registry holds every known user account, keyed by username. It is the
// in-memory form of the persisted store: loaded once at process start,
// mutated by the session, written back once at process end.
type Registry struct {
	users map[string]*User
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{users: make(map[string]*User)}
}

// User returns the account with this username, or nil if unknown.
func (r *Registry) User(username string) *User {
	return r.users[username]
}

// Usernames returns every known username in alphabetical order.
func (r *Registry) Usernames() []string {
	names := make([]string, 0, len(r.users))
	for name := range r.users {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Len returns the number of known accounts.
func (r *Registry) Len() int { return len(r.users) }

// Authenticate returns the account matching the credentials, or an
// *AuthError. Unknown usernames and password mismatches yield the same
// error.
func (r *Registry) Authenticate(username, password string) (*User, error) {
	u := r.users[username]
	if u == nil || !VerifyPassword(u.PasswordDigest, password) {
		return nil, &AuthError{Msg: "invalid username or password"}
	}
	return u, nil
}

// Create opens a new account with the default starting balance. It rejects
// empty usernames and passwords, duplicate usernames, and underage
// signups, with a *ValidationError naming the offending field.
func (r *Registry) Create(username string, age int, password string, profile Profile) (*User, error) {
	if username == "" {
		return nil, validationErrorf("username", "cannot be empty")
	}
	if _, exists := r.users[username]; exists {
		return nil, validationErrorf("username", "%q already exists", username)
	}
	if age < minimumAge {
		return nil, validationErrorf("age", "must be at least %d to sign up", minimumAge)
	}
	if password == "" {
		return nil, validationErrorf("password", "cannot be empty")
	}
	u := NewUser(username, age, password, profile)
	r.users[username] = u
	return u, nil
}

// add registers a decoded account. It is only used by the persistence
// layer, which owns duplicate detection.
func (r *Registry) add(u *User) {
	r.users[u.Username] = u
}

// Equal reports whether two registries hold the same accounts with the
// same state.
func (r *Registry) Equal(s *Registry) bool {
	if len(r.users) != len(s.users) {
		return false
	}
	for name, u := range r.users {
		v, ok := s.users[name]
		if !ok || !u.Equal(v) {
			return false
		}
	}
	return true
}
