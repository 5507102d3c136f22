package app

import (
	"net/http"

	"github.com/vancomm/sudoku-server/internal/handlers"
)

func (a *App) loadRoutes() {
	auth := handlers.NewAuth(a.logger, a.db, a.cookies, a.jwt)
	puzzles := handlers.NewPuzzleHandler(a.logger, a.db, a.ws)

	a.router.HandleFunc("GET /status", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	a.router.HandleFunc("POST /register", auth.Register)
	a.router.HandleFunc("POST /login", auth.Login)
	a.router.HandleFunc("POST /logout", auth.Logout)
	a.router.HandleFunc("GET /me", auth.Status)

	a.router.HandleFunc("POST /puzzle", puzzles.Create)
	a.router.HandleFunc("GET /puzzles", puzzles.List)
	a.router.HandleFunc("GET /puzzle/{id}", puzzles.Fetch)
	a.router.HandleFunc("POST /puzzle/{id}/solve", puzzles.Solve)
	a.router.HandleFunc("POST /puzzle/{id}/reset", puzzles.Reset)
	a.router.HandleFunc("GET /puzzle/{id}/connect", puzzles.ConnectWS)
}
