package auth

import (
	"context"
	"net/http"

	"github.com/2beens/fittrack/internal/telemetry/tracing"
	"github.com/2beens/fittrack/pkg"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/codes"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=auth_test

type tokenRevoker interface {
	Revoke(ctx context.Context, token string, claims *Claims) (bool, error)
}

type Handler struct {
	revoker tokenRevoker
}

func NewHandler(revoker tokenRevoker) *Handler {
	return &Handler{
		revoker: revoker,
	}
}

func (h *Handler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.auth.logout")
	defer span.End()

	token, claims, ok := SessionFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		span.SetStatus(codes.Error, "no-session")
		return
	}

	revoked, err := h.revoker.Revoke(ctx, token, claims)
	if err != nil {
		log.Errorf("logout, revoke token of [%s]: %s", claims.Subject, err)
		http.Error(w, "logout failed", http.StatusInternalServerError)
		span.RecordError(err)
		span.SetStatus(codes.Error, "revoke-failed")
		return
	}
	if !revoked {
		log.Tracef("logout, token of [%s] already expired", claims.Subject)
	}

	span.SetStatus(codes.Ok, "ok")
	pkg.WriteTextResponseOK(w, "logged-out")
}
