package jwtmiddleware

import (
	"net/http"

	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"

	"github.com/Skotchmaster/idea_board/internal/logging"
	"github.com/Skotchmaster/idea_board/internal/tokens"
)

const ContextKey = "claims"

// JWTMiddleware guards routes with a bearer access token verified by issuer.
// On success the claims are stored under ContextKey, with user_id and
// username set alongside.
func JWTMiddleware(issuer *tokens.Issuer) echo.MiddlewareFunc {
	return echojwt.WithConfig(echojwt.Config{
		ContextKey:  ContextKey,
		TokenLookup: "header:Authorization:Bearer ",
		ParseTokenFunc: func(_ echo.Context, auth string) (any, error) {
			return issuer.VerifyAccessToken(auth)
		},
		SuccessHandler: func(c echo.Context) {
			if claims, ok := ClaimsFrom(c); ok {
				c.Set("user_id", claims.UserID)
				c.Set("username", claims.Username)
			}
		},
		ErrorHandler: func(c echo.Context, err error) error {
			logging.FromContext(c.Request().Context()).Warn("auth_failed", "status", 401, "error", err)
			return echo.NewHTTPError(http.StatusUnauthorized, "Unauthorized")
		},
	})
}

func ClaimsFrom(c echo.Context) (*tokens.Claims, bool) {
	claims, ok := c.Get(ContextKey).(*tokens.Claims)
	return claims, ok && claims != nil
}
