package auth

import (
	"context"
	"fmt"

	"github.com/MarkoPoloResearchLab/reservel/pkg/reservation"
)

type credentialsKey struct{}

// Credentials are the verified principals of a request together with the raw
// tokens that proved them, kept for forwarding to downstream services.
type Credentials struct {
	Principals []reservation.Principal
	Tokens     []string
}

// WithCredentials attaches verified credentials to ctx, merging with any
// already present.
func WithCredentials(ctx context.Context, credentials Credentials) context.Context {
	existing := CredentialsFromContext(ctx)
	merged := Credentials{
		Principals: append(append([]reservation.Principal{}, existing.Principals...), credentials.Principals...),
		Tokens:     append(append([]string{}, existing.Tokens...), credentials.Tokens...),
	}
	return context.WithValue(ctx, credentialsKey{}, merged)
}

// WithPrincipals attaches principals that were authenticated out of band.
func WithPrincipals(ctx context.Context, principals ...reservation.Principal) context.Context {
	return WithCredentials(ctx, Credentials{Principals: principals})
}

// CredentialsFromContext returns the credentials attached to ctx.
func CredentialsFromContext(ctx context.Context) Credentials {
	credentials, _ := ctx.Value(credentialsKey{}).(Credentials)
	return credentials
}

// ContextAuthorizer authorizes a principal when the request carries it.
type ContextAuthorizer struct{}

// RequireAuth implements reservation.Authorizer.
func (ContextAuthorizer) RequireAuth(ctx context.Context, principal reservation.Principal) error {
	for _, authenticated := range CredentialsFromContext(ctx).Principals {
		if authenticated == principal {
			return nil
		}
	}
	return fmt.Errorf("%w: %s has not authorized this call", reservation.ErrUnauthorized, principal)
}
