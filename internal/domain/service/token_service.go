package service

// TokenService defines the interface for issuing and verifying session
// tokens. This abstracts the details of token creation from the use cases.
type TokenService interface {
	// Issue creates a signed, expiring bearer token for the given username.
	// The returned string is the raw token; the "Bearer " scheme marker is
	// added at the boundary that exposes it to clients.
	Issue(username string) (string, error)

	// Verify validates a raw token string and returns the subject username.
	Verify(token string) (string, error)
}
