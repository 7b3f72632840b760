package handlers

import (
	"strings"

	xhttp "github.com/Usman-Ashfaq/Banking-Core-Engine/pkg/http"

	"github.com/Usman-Ashfaq/Banking-Core-Engine/internal/model"
	"github.com/Usman-Ashfaq/Banking-Core-Engine/internal/session"
)

const (
	// SessionCookie carries the opaque session token issued at login.
	SessionCookie = "corebank_session"

	identityKey = "identity"
)

// publicPaths can be reached without a session.
var publicPaths = []string{"/signup", "/login", "/health", "/metrics"}

// SessionMiddleware resolves the session cookie into the caller's Identity
// and attaches it to the request context. Requests without a valid session
// are rejected before any handler runs.
func SessionMiddleware(sessions *session.Store) xhttp.MiddlewareFunc {
	return func(next xhttp.RequestHandler) xhttp.RequestHandler {
		return func(ctx *xhttp.RequestCtx) {
			if isPublic(string(ctx.Path())) {
				next(ctx)
				return
			}

			token := string(ctx.Request.Header.Cookie(SessionCookie))
			if token == "" {
				writeError(ctx, xhttp.StatusUnauthorized, "not authenticated")
				return
			}

			identity, err := sessions.Get(token)
			if err != nil {
				writeError(ctx, xhttp.StatusUnauthorized, "not authenticated")
				return
			}

			ctx.SetUserValue(identityKey, *identity)
			next(ctx)
		}
	}
}

func isPublic(path string) bool {
	for _, p := range publicPaths {
		if path == p || strings.HasPrefix(path, p+"/") {
			return true
		}
	}
	return false
}

// callerIdentity returns the identity attached by SessionMiddleware. The
// zero value is only possible on misrouted requests that bypassed it.
func callerIdentity(ctx *xhttp.RequestCtx) model.Identity {
	if v, ok := ctx.UserValue(identityKey).(model.Identity); ok {
		return v
	}
	return model.Identity{}
}
