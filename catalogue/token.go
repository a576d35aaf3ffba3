package catalogue

import "context"

// TokenSource supplies the bearer token for each request attempt. A fresh
// token is fetched per attempt so rotating credential providers work
// without extra plumbing.
type TokenSource interface {
	Token(ctx context.Context) (string, error)
}

// StaticToken is a TokenSource that always returns the same token.
type StaticToken string

// Token implements TokenSource
func (t StaticToken) Token(context.Context) (string, error) {
	return string(t), nil
}
