package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Skotchmaster/idea_board/internal/service"
	"github.com/Skotchmaster/idea_board/internal/transport"
)

type UsersHTTP struct {
	Svc *service.UsersService
}

func (h *UsersHTTP) GetUsers(c echo.Context) error {
	users, err := h.Svc.GetUsers(c.Request().Context())
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, transport.NewUserResponses(users))
}

func (h *UsersHTTP) GetUser(c echo.Context) error {
	user, err := h.Svc.GetUser(c.Request().Context(), c.Param("username"))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, transport.NewUserResponse(user))
}
