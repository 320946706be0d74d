// Package middleware holds the echo middleware of the storefront web layer.
package middleware

import (
	"net/http"
	"net/url"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"

	"storefront/config"
	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/service"
)

// LoginPath is where anonymous visitors of protected pages are sent.
const LoginPath = "/login/"

// SessionMiddlewareParams holds dependencies for SessionMiddleware, injected by Fx.
type SessionMiddlewareParams struct {
	fx.In

	TokenService service.TokenService
	Config       *config.Config
}

// SessionMiddleware resolves the session cookie and guards protected routes.
type SessionMiddleware struct {
	tokenSvc   service.TokenService
	cookieName string
	secure     bool
}

// NewSessionMiddleware is the constructor for SessionMiddleware.
func NewSessionMiddleware(params SessionMiddlewareParams) *SessionMiddleware {
	return &SessionMiddleware{
		tokenSvc:   params.TokenService,
		cookieName: params.Config.Session.CookieName,
		secure:     params.Config.Session.Secure,
	}
}

// Identify attaches the logged-in identity to the request context. Requests
// without a valid cookie continue anonymously and a stale cookie is dropped.
func (m *SessionMiddleware) Identify(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		cookie, err := c.Cookie(m.cookieName)
		if err != nil || cookie.Value == "" {
			return next(c)
		}

		claims, err := m.tokenSvc.ValidateToken(cookie.Value)
		if err != nil {
			m.Clear(c)

			return next(c)
		}

		identity := &deliverycontext.Identity{
			UserID: claims.UserID,
			Roles:  entity.RolesFromStrings(claims.Roles),
		}
		ctx := deliverycontext.WithIdentity(c.Request().Context(), identity)
		c.SetRequest(c.Request().WithContext(ctx))

		return next(c)
	}
}

// RequireLogin redirects anonymous visitors to the login page. Only GET
// requests are resumed after login. It must be used AFTER Identify.
func (m *SessionMiddleware) RequireLogin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if deliverycontext.GetIdentity(c.Request().Context()) == nil {
			resume := ""
			if c.Request().Method == http.MethodGet {
				resume = c.Request().RequestURI
			}

			return c.Redirect(http.StatusFound, LoginURL(resume))
		}

		return next(c)
	}
}

// RequireRole rejects requests lacking the role. Used by the JSON API, so it
// answers with errors instead of redirects.
func (m *SessionMiddleware) RequireRole(role entity.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			identity := deliverycontext.GetIdentity(c.Request().Context())
			if identity == nil {
				return domainerrors.ErrAuthRequired
			}
			if !identity.Roles.Contains(role) {
				return domainerrors.ErrForbidden
			}

			return next(c)
		}
	}
}

// Issue stores a freshly signed session token in the cookie.
func (m *SessionMiddleware) Issue(c echo.Context, token string, expiresAt time.Time) {
	c.SetCookie(&http.Cookie{
		Name:     m.cookieName,
		Value:    token,
		Path:     "/",
		Expires:  expiresAt,
		HttpOnly: true,
		Secure:   m.secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// Clear expires the session cookie.
func (m *SessionMiddleware) Clear(c echo.Context) {
	c.SetCookie(&http.Cookie{
		Name:     m.cookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		Expires:  time.Unix(0, 0),
		HttpOnly: true,
		Secure:   m.secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// GetUserID returns the logged-in user id.
func GetUserID(c echo.Context) (uint, bool) {
	identity := deliverycontext.GetIdentity(c.Request().Context())
	if identity == nil || identity.UserID == 0 {
		return 0, false
	}

	return identity.UserID, true
}

// LoginURL builds the login link that returns to next afterwards.
func LoginURL(next string) string {
	if next == "" {
		return LoginPath
	}

	return LoginPath + "?next=" + url.QueryEscape(next)
}

// SafeRedirect accepts only same-site absolute paths and falls back to "/".
func SafeRedirect(next string) string {
	if next == "" || next[0] != '/' || len(next) > 1 && (next[1] == '/' || next[1] == '\\') {
		return "/"
	}

	u, err := url.Parse(next)
	if err != nil || u.IsAbs() || u.Host != "" {
		return "/"
	}

	return next
}
