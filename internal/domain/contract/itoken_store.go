package contract

import (
	"context"
	"errors"
)

// ErrTokenNotFound is returned by ITokenStore.Get when the slot is empty.
var ErrTokenNotFound = errors.New("session token not found")

// ITokenStore is the process-local persistent slot holding the one live
// session token per context, the server-side analog of browser local storage
// under a fixed key. Writers replace the token atomically; readers see either
// the old or the new value.
type ITokenStore interface {
	Get(ctx context.Context) (string, error)
	Set(ctx context.Context, token string) error
	Delete(ctx context.Context) error
}
