package middleware

import (
	"context"
	"errors"
	"net/http"

	"github.com/2beens/fittrack/internal/auth"
	"github.com/2beens/fittrack/internal/telemetry/metrics"
	"github.com/2beens/fittrack/internal/telemetry/tracing"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/codes"
)

//go:generate mockgen -source=$GOFILE -destination=auth_mocks_test.go -package=middleware_test

type tokenVerifier interface {
	Verify(ctx context.Context, token string) (*auth.Claims, error)
}

type AuthMiddlewareHandler struct {
	verifier     tokenVerifier
	metrics      *metrics.Manager
	allowedPaths map[string]bool
}

func NewAuthMiddlewareHandler(verifier tokenVerifier, metrics *metrics.Manager) *AuthMiddlewareHandler {
	return &AuthMiddlewareHandler{
		verifier: verifier,
		metrics:  metrics,
		allowedPaths: map[string]bool{
			"/":        true,
			"/version": true,
		},
	}
}

func (h *AuthMiddlewareHandler) AuthCheck() func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, span := tracing.GlobalTracer.Start(r.Context(), "middleware.auth")
			defer span.End()

			if r.Method == http.MethodOptions {
				w.Header().Add("Allow", "GET, POST, DELETE, OPTIONS")
				w.WriteHeader(http.StatusOK)
				span.SetStatus(codes.Ok, "options-ok")
				return
			}

			if h.allowedPaths[r.URL.Path] {
				span.SetStatus(codes.Ok, "ok")
				next.ServeHTTP(w, r)
				return
			}

			token := auth.BearerToken(r.Header.Get("Authorization"))
			claims, err := h.verifier.Verify(ctx, token)
			if err != nil {
				if errors.Is(err, auth.ErrMissingToken) ||
					errors.Is(err, auth.ErrInvalidToken) ||
					errors.Is(err, auth.ErrTokenRevoked) {
					log.Tracef("[auth middleware] unauthorized => %s: %s", r.URL.Path, err)
					h.metrics.CounterUnauthorized.Inc()
					http.Error(w, "no can do", http.StatusUnauthorized)
					span.SetStatus(codes.Error, "unauthorized")
					return
				}
				log.Errorf("[failed token check] => %s: %s", r.URL.Path, err)
				http.Error(w, "auth check failed", http.StatusServiceUnavailable)
				span.RecordError(err)
				span.SetStatus(codes.Error, "token-check-err")
				return
			}

			// Verify already made sure the subject is a user id
			userID, _ := claims.UserID()
			ctx = auth.ContextWithUserID(ctx, userID)
			ctx = auth.ContextWithSession(ctx, token, claims)

			span.SetStatus(codes.Ok, "ok")
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
