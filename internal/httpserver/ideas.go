package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Skotchmaster/idea_board/internal/logging"
	"github.com/Skotchmaster/idea_board/internal/service"
	"github.com/Skotchmaster/idea_board/internal/transport"
	"github.com/Skotchmaster/idea_board/internal/util"
)

type IdeaHTTP struct {
	Svc *service.IdeaService
}

func (h *IdeaHTTP) ShowAll(c echo.Context) error {
	ideas, err := h.Svc.ShowAll(c.Request().Context())
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, transport.NewIdeaResponses(ideas))
}

func (h *IdeaHTTP) Create(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "idea_create")

	var req transport.IdeaRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("idea_create_error", "status", 400, "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	idea, err := h.Svc.Create(ctx, req.Idea, req.Description)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, transport.NewIdeaResponse(idea))
}

func (h *IdeaHTTP) Read(c echo.Context) error {
	idea, err := h.Svc.Read(c.Request().Context(), c.Param("id"))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, transport.NewIdeaResponse(idea))
}

func (h *IdeaHTTP) Update(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "idea_update")

	var req transport.IdeaPatchRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("idea_update_error", "status", 400, "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	idea, err := h.Svc.Update(ctx, c.Param("id"), req.Idea, req.Description)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, transport.NewIdeaResponse(idea))
}

func (h *IdeaHTTP) Destroy(c echo.Context) error {
	if err := h.Svc.Destroy(c.Request().Context(), c.Param("id")); err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, transport.DeleteResponse{Deleted: true})
}

func (h *IdeaHTTP) Search(c echo.Context) error {
	q := c.QueryParam("q")
	if q == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "query error")
	}

	page := util.ParseIntDefault(c.QueryParam("page"), 1)
	size := util.ParseIntDefault(c.QueryParam("size"), util.DefaultPageSize)
	if page < 1 {
		page = 1
	}
	from, size := util.Calculate(page, size)

	total, ideas, err := h.Svc.Search(c.Request().Context(), q, from, size)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, transport.SearchResponse{
		Total: total,
		Page:  page,
		Size:  size,
		Ideas: transport.NewIdeaResponses(ideas),
	})
}
