package auth

// Claims is the identity extracted from a session token.
type Claims struct {
	UserID   string
	Email    string
	Name     string
	Provider string
}

// User is an authenticated account as exposed to clients.
type User struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	Name     string `json:"name"`
	Provider string `json:"provider"`
}
