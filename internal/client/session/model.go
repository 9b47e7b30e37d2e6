package session

// StorageKey is the durable local storage key holding the session record.
const StorageKey = "user"

// User is the persisted session record: the identity of the logged-in user
// and the bearer token presented on every API call.
type User struct {
	ID       string `json:"id,omitempty"`
	Email    string `json:"email,omitempty"`
	Username string `json:"username,omitempty"`
	Token    string `json:"token"`
}

// DisplayName is the first known of username, email and ID.
func (u *User) DisplayName() string {
	switch {
	case u == nil:
		return ""
	case u.Username != "":
		return u.Username
	case u.Email != "":
		return u.Email
	default:
		return u.ID
	}
}

// Credentials are the identity fields handed to Login alongside the token.
type Credentials struct {
	ID       string
	Email    string
	Username string
}

// State is a snapshot of the session.
type State struct {
	User            *User
	IsAuthenticated bool
}

func snapshot(u *User) State {
	if u == nil {
		return State{}
	}
	cp := *u
	return State{User: &cp, IsAuthenticated: true}
}
