package app

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"net/http"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/vancomm/sudoku-server/internal/config"
	"github.com/vancomm/sudoku-server/internal/database"
	"github.com/vancomm/sudoku-server/internal/middleware"
)

type App struct {
	logger     *slog.Logger
	router     *http.ServeMux
	db         *pgxpool.Pool
	cookies    *config.Cookies
	jwt        *config.JWT
	ws         *config.WebSocket
	migrations fs.FS
}

func New(logger *slog.Logger, migrations fs.FS) *App {
	return &App{
		logger:     logger,
		router:     http.NewServeMux(),
		migrations: migrations,
	}
}

func (a *App) Start(ctx context.Context) error {
	db, _, err := database.ConnectAndMigrate(ctx, a.migrations)
	if err != nil {
		return fmt.Errorf("unable to connect to db: %w", err)
	}
	a.db = db

	jwt, err := config.NewJWT()
	if err != nil {
		return err
	}
	a.jwt = jwt

	cookies, err := config.NewCookies(jwt)
	if err != nil {
		return err
	}
	a.cookies = cookies

	ws, err := config.NewWebSocket()
	if err != nil {
		return err
	}
	a.ws = ws

	a.loadRoutes()

	handler := middleware.Wrap(
		a.router,
		middleware.Cors(),
		middleware.Auth(cookies),
		middleware.Logging(a.logger),
	)

	addr := config.Addr()
	basePath := config.BasePath()
	server := &http.Server{
		Addr:    addr,
		Handler: mount(basePath, handler),
	}

	done := make(chan struct{})
	go func() {
		err := server.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.logger.Error("unable to listen and serve", slog.Any("error", err))
		}
		close(done)
	}()

	a.logger.Info("server listening",
		slog.String("addr", addr), slog.String("base path", basePath))
	select {
	case <-done:
		break
	case <-ctx.Done():
		sCtx, cancel := context.WithTimeout(context.Background(), time.Second*30)
		server.Shutdown(sCtx)
		cancel()
	}

	return nil
}

// mount serves h under basePath, stripping the prefix before routing.
// An empty basePath leaves h untouched.
func mount(basePath string, h http.Handler) http.Handler {
	if basePath == "" {
		return h
	}
	mux := http.NewServeMux()
	mux.Handle(basePath+"/", http.StripPrefix(basePath, h))
	return mux
}
