package auth

import "context"

// Verifier checks a token and returns its claims.
type Verifier interface {
	Verify(ctx context.Context, token string) (Claims, error)
}
