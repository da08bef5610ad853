package router

import (
	"net/http"
	"net/url"
	"strings"

	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"

	"github.com/Omer-KISAKOL/site-builder/internal/auth"
	apperr "github.com/Omer-KISAKOL/site-builder/internal/errors"
	"github.com/Omer-KISAKOL/site-builder/internal/service"
)

const claimsContextKey = "auth_claims"

// publicPaths skip the gate entirely. /swagger matches as a prefix.
var publicPaths = []string{
	"/api/auth/login",
	"/api/auth/register",
	"/api/auth/verify",
	"/api/auth/logout",
	"/healthz",
	"/swagger",
	"/login",
	"/register",
}

func isPublicPath(path string) bool {
	for _, p := range publicPaths {
		if path == p || strings.HasPrefix(path, p+"/") {
			return true
		}
	}
	return false
}

func isAPIPath(path string) bool {
	return strings.HasPrefix(path, "/api/")
}

// Gate is the per-request authentication decision point. Public paths are
// forwarded untouched. Protected paths must carry a valid credential
// cookie; the resolved identity is placed in the request context exactly
// once, so downstream handlers never re-verify.
//
// Challenges branch on path shape: API paths get a 401 body, page paths a
// redirect to /login carrying the original path. An invalid credential
// additionally instructs the client to delete the cookie.
func Gate(codec auth.Codec) echo.MiddlewareFunc {
	return echojwt.WithConfig(echojwt.Config{
		Skipper: func(c echo.Context) bool {
			return isPublicPath(c.Request().URL.Path)
		},
		ContextKey:  claimsContextKey,
		TokenLookup: "cookie:" + auth.CookieName,
		ParseTokenFunc: func(c echo.Context, token string) (interface{}, error) {
			return codec.Verify(token)
		},
		SuccessHandler: func(c echo.Context) {
			claims, ok := c.Get(claimsContextKey).(*auth.Claims)
			if !ok {
				return
			}
			ident := auth.Identity{UserID: claims.UserID, Email: claims.Email}
			c.SetRequest(c.Request().WithContext(auth.WithIdentity(c.Request().Context(), ident)))
		},
		ErrorHandler: func(c echo.Context, err error) error {
			return challenge(c)
		},
	})
}

func challenge(c echo.Context) error {
	// A present cookie that failed verification must be cleared; a
	// missing one has nothing to clear.
	hasCookie := false
	if cookie, err := c.Cookie(auth.CookieName); err == nil && cookie.Value != "" {
		hasCookie = true
		c.SetCookie(auth.ExpiredCookie())
	}

	path := c.Request().URL.Path
	if isAPIPath(path) {
		if hasCookie {
			return c.JSON(http.StatusUnauthorized, apperr.ErrorResponse{
				Error: apperr.ErrInvalidToken.Error(),
				Code:  "INVALID_TOKEN",
			})
		}
		return c.JSON(http.StatusUnauthorized, apperr.ErrorResponse{
			Error: "unauthorized",
			Code:  "UNAUTHORIZED",
		})
	}
	return c.Redirect(http.StatusFound, "/login?redirect="+url.QueryEscape(path))
}

// RedirectAuthenticated sends an already-authenticated caller away from
// the login and register pages. A UX nicety, not an access control
// boundary.
func RedirectAuthenticated(codec auth.Codec) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			path := c.Request().URL.Path
			if path == "/login" || path == "/register" {
				if cookie, err := c.Cookie(auth.CookieName); err == nil && cookie.Value != "" {
					if _, err := codec.Verify(cookie.Value); err == nil {
						return c.Redirect(http.StatusFound, "/")
					}
				}
			}
			return next(c)
		}
	}
}

// RequireAdmin gates a route group on the admin capability, re-checking
// the role from the store on every request.
func RequireAdmin(authz *service.Authorizer) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ident, ok := auth.IdentityFrom(c.Request().Context())
			if !ok {
				he := apperr.MapErrorToHTTP(apperr.ErrInvalidToken)
				return c.JSON(he.StatusCode, he.ToErrorResponse())
			}
			if err := authz.RequireAdmin(c.Request().Context(), ident.UserID); err != nil {
				he := apperr.MapErrorToHTTP(err)
				return c.JSON(he.StatusCode, he.ToErrorResponse())
			}
			return next(c)
		}
	}
}
