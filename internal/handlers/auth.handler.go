package handlers

import (
	"context"

	"github.com/fasthttp/router"
	"github.com/valyala/fasthttp"

	xhttp "github.com/Usman-Ashfaq/Banking-Core-Engine/pkg/http"

	"github.com/Usman-Ashfaq/Banking-Core-Engine/internal/model"
	"github.com/Usman-Ashfaq/Banking-Core-Engine/internal/session"
)

type AuthService interface {
	Register(ctx context.Context, username, password string) (*model.User, error)
	Login(ctx context.Context, username, password string) (*model.Identity, error)
}

type AuthHandler struct {
	svc      AuthService
	sessions *session.Store
}

func RegisterAuthRoutes(r *router.Router, h *AuthHandler) {
	r.POST("/signup", h.Signup)
	r.POST("/login", h.Login)
	r.POST("/logout", h.Logout)
}

func NewAuthHandler(authService AuthService, sessions *session.Store) *AuthHandler {
	return &AuthHandler{
		svc:      authService,
		sessions: sessions,
	}
}

func (h *AuthHandler) Signup(ctx *xhttp.RequestCtx) {
	username := form(ctx, "username")
	password := form(ctx, "password")

	user, err := h.svc.Register(ctx, username, password)
	if err != nil {
		writeServiceError(ctx, err)
		return
	}
	writeJSON(ctx, xhttp.StatusCreated, map[string]any{
		"id":       user.ID,
		"username": user.Username,
	})
}

func (h *AuthHandler) Login(ctx *xhttp.RequestCtx) {
	username := form(ctx, "username")
	password := form(ctx, "password")

	identity, err := h.svc.Login(ctx, username, password)
	if err != nil {
		writeServiceError(ctx, err)
		return
	}

	token, err := h.sessions.Create(*identity)
	if err != nil {
		writeError(ctx, xhttp.StatusInternalServerError, "could not open session")
		return
	}

	setSessionCookie(ctx, token)
	writeJSON(ctx, xhttp.StatusOK, map[string]string{"username": identity.Username})
}

func (h *AuthHandler) Logout(ctx *xhttp.RequestCtx) {
	token := string(ctx.Request.Header.Cookie(SessionCookie))
	if token != "" {
		if err := h.sessions.Destroy(token); err != nil {
			writeError(ctx, xhttp.StatusInternalServerError, "could not close session")
			return
		}
	}
	clearSessionCookie(ctx)
	writeJSON(ctx, xhttp.StatusOK, map[string]string{"status": "logged out"})
}

func setSessionCookie(ctx *xhttp.RequestCtx, token string) {
	c := fasthttp.AcquireCookie()
	defer fasthttp.ReleaseCookie(c)
	c.SetKey(SessionCookie)
	c.SetValue(token)
	c.SetPath("/")
	c.SetHTTPOnly(true)
	ctx.Response.Header.SetCookie(c)
}

func clearSessionCookie(ctx *xhttp.RequestCtx) {
	c := fasthttp.AcquireCookie()
	defer fasthttp.ReleaseCookie(c)
	c.SetKey(SessionCookie)
	c.SetValue("")
	c.SetPath("/")
	c.SetHTTPOnly(true)
	c.SetExpire(fasthttp.CookieExpireDelete)
	ctx.Response.Header.SetCookie(c)
}
