package auth

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

const (
	// MetadataKeyAuthorization carries the caller's bearer token.
	MetadataKeyAuthorization = "authorization"
	// MetadataKeyCosigner carries additional bearer tokens, one per co-signing principal.
	MetadataKeyCosigner = "x-cosigner-authorization"

	errorInvalidToken = "invalid_token"
)

// UnaryServerInterceptor verifies bearer tokens from incoming metadata and
// attaches the resulting credentials. Calls without tokens pass through
// anonymously; calls with a bad token are rejected.
func UnaryServerInterceptor(verifier *Verifier) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, request any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		authenticated, err := authenticateIncoming(ctx, verifier)
		if err != nil {
			return nil, status.Error(codes.Unauthenticated, errorInvalidToken)
		}
		return handler(authenticated, request)
	}
}

func authenticateIncoming(ctx context.Context, verifier *Verifier) (context.Context, error) {
	incoming, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return ctx, nil
	}
	values := append(append([]string{}, incoming.Get(MetadataKeyAuthorization)...), incoming.Get(MetadataKeyCosigner)...)
	if len(values) == 0 {
		return ctx, nil
	}
	credentials := Credentials{}
	for _, value := range values {
		token, err := ParseBearer(value)
		if err != nil {
			return nil, err
		}
		principal, err := verifier.Verify(token)
		if err != nil {
			return nil, err
		}
		credentials.Principals = append(credentials.Principals, principal)
		credentials.Tokens = append(credentials.Tokens, token)
	}
	return WithCredentials(ctx, credentials), nil
}

// OutgoingContext attaches a primary token and optional co-signer tokens to
// outgoing gRPC metadata.
func OutgoingContext(ctx context.Context, primaryToken string, cosignerTokens ...string) context.Context {
	pairs := []string{MetadataKeyAuthorization, BearerValue(primaryToken)}
	for _, token := range cosignerTokens {
		if token == "" {
			continue
		}
		pairs = append(pairs, MetadataKeyCosigner, BearerValue(token))
	}
	return metadata.AppendToOutgoingContext(ctx, pairs...)
}

// ForwardCredentials copies the tokens attached to ctx into outgoing metadata
// so a downstream service can verify the same principals.
func ForwardCredentials(ctx context.Context) context.Context {
	tokens := CredentialsFromContext(ctx).Tokens
	if len(tokens) == 0 {
		return ctx
	}
	pairs := make([]string, 0, len(tokens)*2)
	for _, token := range tokens {
		pairs = append(pairs, MetadataKeyCosigner, BearerValue(token))
	}
	return metadata.AppendToOutgoingContext(ctx, pairs...)
}
