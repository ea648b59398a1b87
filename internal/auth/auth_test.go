package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/MarkoPoloResearchLab/reservel/pkg/reservation"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

var testSigningKey = []byte("test-signing-key")

const testIssuer = "reservel-test"

func mustPrincipal(test *testing.T, raw string) reservation.Principal {
	test.Helper()
	principal, err := reservation.NewPrincipal(raw)
	if err != nil {
		test.Fatalf("principal: %v", err)
	}
	return principal
}

func mustIssuer(test *testing.T, options ...IssuerOption) *Issuer {
	test.Helper()
	issuer, err := NewIssuer(testSigningKey, testIssuer, options...)
	if err != nil {
		test.Fatalf("issuer: %v", err)
	}
	return issuer
}

func mustVerifier(test *testing.T) *Verifier {
	test.Helper()
	verifier, err := NewVerifier(testSigningKey, testIssuer)
	if err != nil {
		test.Fatalf("verifier: %v", err)
	}
	return verifier
}

func TestIssueAndVerifyRoundTrip(test *testing.T) {
	test.Parallel()
	token, err := mustIssuer(test).Issue(mustPrincipal(test, "business"))
	if err != nil {
		test.Fatalf("issue: %v", err)
	}
	principal, err := mustVerifier(test).Verify(token)
	if err != nil {
		test.Fatalf("verify: %v", err)
	}
	if principal.String() != "business" {
		test.Fatalf("unexpected principal %s", principal)
	}
}

func TestVerifyRejectsBadTokens(test *testing.T) {
	test.Parallel()
	business := mustPrincipal(test, "business")
	expired, err := mustIssuer(test, WithIssuerClock(func() time.Time { return time.Now().Add(-time.Hour) })).Issue(business)
	if err != nil {
		test.Fatalf("issue expired: %v", err)
	}
	otherIssuer, err := NewIssuer(testSigningKey, "someone-else")
	if err != nil {
		test.Fatalf("issuer: %v", err)
	}
	wrongIssuer, err := otherIssuer.Issue(business)
	if err != nil {
		test.Fatalf("issue wrong issuer: %v", err)
	}
	otherKey, err := NewIssuer([]byte("other-key"), testIssuer)
	if err != nil {
		test.Fatalf("issuer: %v", err)
	}
	wrongKey, err := otherKey.Issue(business)
	if err != nil {
		test.Fatalf("issue wrong key: %v", err)
	}

	verifier := mustVerifier(test)
	for name, token := range map[string]string{"expired": expired, "issuer": wrongIssuer, "key": wrongKey, "garbage": "not-a-token"} {
		if _, err := verifier.Verify(token); !errors.Is(err, ErrInvalidToken) {
			test.Fatalf("%s: expected ErrInvalidToken, got %v", name, err)
		}
	}
}

func TestConstructorsValidateConfig(test *testing.T) {
	test.Parallel()
	if _, err := NewIssuer(nil, testIssuer); !errors.Is(err, ErrInvalidAuthConfig) {
		test.Fatalf("expected ErrInvalidAuthConfig, got %v", err)
	}
	if _, err := NewVerifier(testSigningKey, " "); !errors.Is(err, ErrInvalidAuthConfig) {
		test.Fatalf("expected ErrInvalidAuthConfig, got %v", err)
	}
	if _, err := mustIssuer(test).Issue(reservation.Principal{}); !errors.Is(err, reservation.ErrInvalidInput) {
		test.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestParseBearer(test *testing.T) {
	test.Parallel()
	token, err := ParseBearer("bearer abc.def")
	if err != nil || token != "abc.def" {
		test.Fatalf("unexpected parse result %q (%v)", token, err)
	}
	for _, value := range []string{"", "Bearer ", "Basic abc", "abc"} {
		if _, err := ParseBearer(value); !errors.Is(err, ErrInvalidToken) {
			test.Fatalf("%q: expected ErrInvalidToken, got %v", value, err)
		}
	}
}

func TestContextAuthorizerChecksAttachedPrincipals(test *testing.T) {
	test.Parallel()
	business := mustPrincipal(test, "business")
	owner := mustPrincipal(test, "owner")
	ctx := WithPrincipals(context.Background(), business)
	ctx = WithPrincipals(ctx, owner)

	authorizer := ContextAuthorizer{}
	if err := authorizer.RequireAuth(ctx, business); err != nil {
		test.Fatalf("business: %v", err)
	}
	if err := authorizer.RequireAuth(ctx, owner); err != nil {
		test.Fatalf("owner: %v", err)
	}
	if err := authorizer.RequireAuth(ctx, mustPrincipal(test, "customer")); !errors.Is(err, reservation.ErrUnauthorized) {
		test.Fatalf("expected ErrUnauthorized, got %v", err)
	}
	if err := authorizer.RequireAuth(context.Background(), business); !errors.Is(err, reservation.ErrUnauthorized) {
		test.Fatalf("expected ErrUnauthorized without credentials, got %v", err)
	}
}

func TestUnaryServerInterceptorAttachesCredentials(test *testing.T) {
	test.Parallel()
	issuer := mustIssuer(test)
	businessToken, err := issuer.Issue(mustPrincipal(test, "business"))
	if err != nil {
		test.Fatalf("issue: %v", err)
	}
	ownerToken, err := issuer.Issue(mustPrincipal(test, "owner"))
	if err != nil {
		test.Fatalf("issue: %v", err)
	}
	interceptor := UnaryServerInterceptor(mustVerifier(test))
	incoming := metadata.NewIncomingContext(context.Background(), metadata.Pairs(
		MetadataKeyAuthorization, BearerValue(businessToken),
		MetadataKeyCosigner, BearerValue(ownerToken),
	))

	var seen Credentials
	_, err = interceptor(incoming, nil, &grpc.UnaryServerInfo{}, func(ctx context.Context, _ any) (any, error) {
		seen = CredentialsFromContext(ctx)
		return nil, nil
	})
	if err != nil {
		test.Fatalf("interceptor: %v", err)
	}
	if len(seen.Principals) != 2 || seen.Principals[0].String() != "business" || seen.Principals[1].String() != "owner" {
		test.Fatalf("unexpected principals %+v", seen.Principals)
	}
	if len(seen.Tokens) != 2 || seen.Tokens[0] != businessToken {
		test.Fatalf("expected raw tokens kept for forwarding")
	}

	bad := metadata.NewIncomingContext(context.Background(), metadata.Pairs(MetadataKeyAuthorization, "Bearer nope"))
	_, err = interceptor(bad, nil, &grpc.UnaryServerInfo{}, func(context.Context, any) (any, error) {
		test.Fatalf("handler must not run with a bad token")
		return nil, nil
	})
	if status.Code(err) != codes.Unauthenticated {
		test.Fatalf("expected Unauthenticated, got %v", err)
	}

	_, err = interceptor(context.Background(), nil, &grpc.UnaryServerInfo{}, func(ctx context.Context, _ any) (any, error) {
		if len(CredentialsFromContext(ctx).Principals) != 0 {
			test.Fatalf("anonymous call must not carry principals")
		}
		return nil, nil
	})
	if err != nil {
		test.Fatalf("anonymous call: %v", err)
	}
}

func TestOutgoingContextAndForwarding(test *testing.T) {
	test.Parallel()
	ctx := OutgoingContext(context.Background(), "primary", "", "cosigner")
	outgoing, ok := metadata.FromOutgoingContext(ctx)
	if !ok {
		test.Fatalf("expected outgoing metadata")
	}
	if values := outgoing.Get(MetadataKeyAuthorization); len(values) != 1 || values[0] != "Bearer primary" {
		test.Fatalf("unexpected authorization metadata %v", values)
	}
	if values := outgoing.Get(MetadataKeyCosigner); len(values) != 1 || values[0] != "Bearer cosigner" {
		test.Fatalf("unexpected cosigner metadata %v", values)
	}

	forwarded := ForwardCredentials(WithCredentials(context.Background(), Credentials{Tokens: []string{"a", "b"}}))
	outgoing, _ = metadata.FromOutgoingContext(forwarded)
	if values := outgoing.Get(MetadataKeyCosigner); len(values) != 2 {
		test.Fatalf("expected both tokens forwarded, got %v", values)
	}
	if _, ok := metadata.FromOutgoingContext(ForwardCredentials(context.Background())); ok {
		test.Fatalf("expected no outgoing metadata without tokens")
	}
}
