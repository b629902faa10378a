package scope

// Payload is the verified content of an auth token.
type Payload struct {
	UserID   string   `json:"user_id"`
	Subject  string   `json:"sub"`
	Username string   `json:"username"`
	Email    string   `json:"email"`
	Role     string   `json:"role"`
	Groups   []string `json:"groups,omitempty"`
}

// Manager verifies auth tokens into payloads.
// Implementations are safe for concurrent use.
type Manager interface {
	Verify(token string) (Payload, error)
}
