package httpserver

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"
)

type Deps struct {
	AuthHandler  *AuthHTTP
	UsersHandler *UsersHTTP
	IdeaHandler  *IdeaHTTP
	RequireAuth  echo.MiddlewareFunc
	Ready        func(ctx context.Context) error
}

func Register(e *echo.Echo, d *Deps) {
	e.GET("/health/live", func(c echo.Context) error { return c.NoContent(http.StatusOK) })
	e.GET("/health/ready", func(c echo.Context) error {
		if d.Ready != nil {
			if err := d.Ready(c.Request().Context()); err != nil {
				return echo.NewHTTPError(http.StatusServiceUnavailable, "not ready").SetInternal(err)
			}
		}
		return c.NoContent(http.StatusOK)
	})

	auth := e.Group("/auth")
	auth.POST("/signup", d.AuthHandler.SignUp)
	auth.POST("/signin", d.AuthHandler.SignIn)
	auth.POST("/refresh", d.AuthHandler.Refresh)
	auth.POST("/logout", d.AuthHandler.LogOut, d.RequireAuth)
	auth.GET("/test/jwt", d.AuthHandler.TestJWT, d.RequireAuth)

	user := e.Group("/user")
	user.GET("", d.UsersHandler.GetUsers)
	user.GET("/users", d.UsersHandler.GetUsers)
	user.GET("/:username", d.UsersHandler.GetUser)

	idea := e.Group("/idea")
	idea.GET("", d.IdeaHandler.ShowAll)
	idea.GET("/search", d.IdeaHandler.Search)
	idea.GET("/:id", d.IdeaHandler.Read)
	idea.POST("", d.IdeaHandler.Create, d.RequireAuth)
	idea.PUT("/:id", d.IdeaHandler.Update, d.RequireAuth)
	idea.DELETE("/:id", d.IdeaHandler.Destroy, d.RequireAuth)
}
