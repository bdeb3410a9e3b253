package auth

import (
	"context"
	"errors"
)

// ErrCanceled is returned by a broker when the user backs out of the
// provider's sign-in flow. It is a distinct terminal outcome, never
// conflated with a connectivity failure.
var ErrCanceled = errors.New("sign-in canceled by user")

// CredentialBroker abstracts the federated identity provider's local
// round-trip. It yields an opaque ID token to exchange with the backend;
// the broker call happens outside the request pipeline.
type CredentialBroker interface {
	IdentityToken(ctx context.Context) (string, error)
}

// StaticBroker hands out a pre-obtained token. The CLI uses it with a token
// passed by flag; tests use it for both outcomes.
type StaticBroker struct {
	Token string
	Err   error
}

func (b StaticBroker) IdentityToken(context.Context) (string, error) {
	if b.Err != nil {
		return "", b.Err
	}
	return b.Token, nil
}
