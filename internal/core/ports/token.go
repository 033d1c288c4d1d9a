package ports

// TokenIssuer produces a signed credential bound to a user identifier.
type TokenIssuer interface {
	Issue(userID int64) (string, error)
}

// TokenVerifier checks a raw token's signature and structure and extracts
// the bound user identifier.
type TokenVerifier interface {
	Verify(raw string) (int64, error)
}
