package http

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"artmarket/internal/core/domain/services"
	"artmarket/internal/core/ports"
	"artmarket/internal/pkg/errs"
)

// actorKey is the echo context key the auth middleware stores the resolved
// actor under.
const actorKey = "actor"

// bearerAuth verifies the Authorization header against the identity service
// and stores the resulting actor in the request context. Requests without a
// valid bearer token never reach a handler.
func bearerAuth(verifier ports.IdentityVerifier, logger *slog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			token, ok := bearerToken(ctx.Request().Header.Get("Authorization"))
			if !ok {
				return ctx.JSON(http.StatusUnauthorized, envelope{
					Success: false,
					Message: "missing bearer token",
				})
			}

			actor, err := verifier.Verify(ctx.Request().Context(), token)
			switch {
			case errors.Is(err, errs.ErrForbidden):
				return ctx.JSON(http.StatusUnauthorized, envelope{
					Success: false,
					Message: "invalid or expired token",
				})
			case err != nil:
				logger.ErrorContext(ctx.Request().Context(), "identity verification failed",
					"error", err)
				return ctx.JSON(http.StatusInternalServerError, envelope{
					Success: false,
					Message: "identity verification unavailable",
				})
			}

			ctx.Set(actorKey, actor)
			return next(ctx)
		}
	}
}

func bearerToken(header string) (string, bool) {
	const prefix = "Bearer "
	if !strings.HasPrefix(header, prefix) {
		return "", false
	}
	token := strings.TrimSpace(strings.TrimPrefix(header, prefix))
	return token, token != ""
}

func actorFrom(ctx echo.Context) services.Actor {
	actor, _ := ctx.Get(actorKey).(services.Actor)
	return actor
}
