package app

import (
	"context"
	"log/slog"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"gorm.io/gorm"

	"github.com/Skotchmaster/idea_board/internal/config"
	"github.com/Skotchmaster/idea_board/internal/db"
	"github.com/Skotchmaster/idea_board/internal/httpserver"
	"github.com/Skotchmaster/idea_board/internal/jwtmiddleware"
	loggingmw "github.com/Skotchmaster/idea_board/internal/middleware/logging"
	"github.com/Skotchmaster/idea_board/internal/repo"
	"github.com/Skotchmaster/idea_board/internal/service"
	"github.com/Skotchmaster/idea_board/internal/tokens"
	"github.com/Skotchmaster/idea_board/internal/validation"
)

// Externals are the optional collaborators. Nil Events or Index disable
// publishing and the search index; nil Now means time.Now.
type Externals struct {
	Events service.Publisher
	Index  service.IdeaIndex
	Now    func() time.Time
}

// New wires every component onto a fresh echo instance.
func New(cfg config.Config, gdb *gorm.DB, logger *slog.Logger, ext Externals) *echo.Echo {
	store := &repo.GormRepo{DB: gdb}

	issuer := &tokens.Issuer{
		AccessSecret:  cfg.AccessSecret,
		RefreshSecret: cfg.RefreshSecret,
		AccessTTL:     cfg.AccessTTL,
		RefreshTTL:    cfg.RefreshTTL,
		Now:           ext.Now,
	}
	sessions := &service.SessionManager{Users: store, Tokens: issuer}

	deps := httpserver.Deps{
		AuthHandler:  &httpserver.AuthHTTP{Svc: service.NewAuthService(store, sessions, ext.Events)},
		UsersHandler: &httpserver.UsersHTTP{Svc: &service.UsersService{Users: store}},
		IdeaHandler: &httpserver.IdeaHTTP{Svc: &service.IdeaService{
			Repo:   store,
			Index:  ext.Index,
			Events: ext.Events,
		}},
		RequireAuth: jwtmiddleware.JWTMiddleware(issuer),
		Ready:       func(ctx context.Context) error { return db.Ping(ctx, gdb) },
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = validation.New()
	e.HTTPErrorHandler = httpserver.ErrorHandler

	e.Pre(middleware.RemoveTrailingSlash())
	e.Use(middleware.Recover(), middleware.RequestID(), loggingmw.RequestLogger(logger))

	httpserver.Register(e, &deps)
	return e
}
