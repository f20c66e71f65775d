package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/2beens/fittrack/internal/telemetry/tracing"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
)

var (
	ErrMissingToken = errors.New("missing bearer token")
	ErrInvalidToken = errors.New("invalid token")
	ErrTokenRevoked = errors.New("token revoked")
)

//go:generate mockgen -source=$GOFILE -destination=token_mocks_test.go -package=auth_test

type revocationChecker interface {
	IsRevoked(ctx context.Context, token string, claims *Claims) (bool, error)
}

// Claims carried by access tokens of the external identity provider.
// The subject is the user id.
type Claims struct {
	Email string `json:"email,omitempty"`
	jwt.RegisteredClaims
}

func (c *Claims) UserID() (uuid.UUID, error) {
	userID, err := uuid.Parse(c.Subject)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: subject is not a user id", ErrInvalidToken)
	}
	if userID == uuid.Nil {
		return uuid.Nil, fmt.Errorf("%w: empty user id", ErrInvalidToken)
	}
	return userID, nil
}

// Verifier checks HS256 access tokens issued by the identity provider.
type Verifier struct {
	secret   []byte
	audience string
	revoked  revocationChecker
}

// NewVerifier creates a token verifier. revoked can be nil, then logouts are not honored.
func NewVerifier(secret []byte, audience string, revoked revocationChecker) *Verifier {
	return &Verifier{
		secret:   secret,
		audience: audience,
		revoked:  revoked,
	}
}

func (v *Verifier) keyFunc(token *jwt.Token) (any, error) {
	if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
		return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
	}
	return v.secret, nil
}

// Verify parses and validates the token and returns its claims.
func (v *Verifier) Verify(ctx context.Context, token string) (_ *Claims, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "auth.verify")
	defer func() {
		if errors.Is(err, ErrInvalidToken) || errors.Is(err, ErrTokenRevoked) || errors.Is(err, ErrMissingToken) {
			span.End()
			return
		}
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if token == "" {
		return nil, ErrMissingToken
	}

	claims := &Claims{}
	parsed, err := jwt.ParseWithClaims(token, claims, v.keyFunc)
	if err != nil || !parsed.Valid {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if v.audience != "" && !claims.VerifyAudience(v.audience, true) {
		return nil, fmt.Errorf("%w: audience mismatch", ErrInvalidToken)
	}
	if _, err := claims.UserID(); err != nil {
		return nil, err
	}

	if v.revoked != nil {
		revoked, err := v.revoked.IsRevoked(ctx, token, claims)
		if err != nil {
			return nil, fmt.Errorf("check token revocation: %w", err)
		}
		if revoked {
			return nil, ErrTokenRevoked
		}
	}

	return claims, nil
}

// BearerToken extracts the token from an "Authorization: Bearer <token>" header value.
func BearerToken(header string) string {
	scheme, token, found := strings.Cut(strings.TrimSpace(header), " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}

// IssueToken signs an access token the way the identity provider does.
// Used by local tooling and tests, production tokens come from the provider.
func IssueToken(secret []byte, audience string, userID uuid.UUID, ttl time.Duration, now time.Time) (string, error) {
	claims := &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   userID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	if audience != "" {
		claims.Audience = jwt.ClaimStrings{audience}
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}
