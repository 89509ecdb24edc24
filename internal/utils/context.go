// Package utils holds small helpers shared by the server and the client:
// context keys, JWT issuing and parsing, JSON responses, the resty client
// constructor and id generation.
package utils

import (
	"context"
)

// contextKey keeps our keys from colliding with string keys of other
// packages.
type contextKey string

func (c contextKey) String() string {
	return string(c)
}

// AccountIDCtxKey stores the authenticated account id of a request.
var AccountIDCtxKey = contextKey("accountID")

// WithAccountID returns a copy of ctx carrying accountID.
func WithAccountID(ctx context.Context, accountID string) context.Context {
	return context.WithValue(ctx, AccountIDCtxKey, accountID)
}

// GetAccountIDFromContext returns the account id stored by the auth
// middleware. ok is false when it is missing or empty.
func GetAccountIDFromContext(ctx context.Context) (string, bool) {
	accountID, ok := ctx.Value(AccountIDCtxKey).(string)
	return accountID, ok && accountID != ""
}
