package api

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/gamesleague/platform/internal/api/apierr"
	"github.com/gamesleague/platform/internal/api/handler"
	"github.com/gamesleague/platform/internal/middleware"
	"github.com/gamesleague/platform/internal/services/league"
	"github.com/gamesleague/platform/internal/services/player"
)

// RouterConfig holds configuration for the API router
type RouterConfig struct {
	Logger        *slog.Logger
	PlayerService *player.Service
	LeagueService *league.Service
}

// NewRouter creates a new API router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	// Create handlers
	playerHandler := handler.NewPlayerHandler(cfg.PlayerService, cfg.LeagueService)
	leagueHandler := handler.NewLeagueHandler(cfg.LeagueService)

	// API subrouter with common middleware
	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(middleware.Recovery(cfg.Logger, panicHandler))
	api.Use(middleware.RequestID())
	api.Use(middleware.Logging(cfg.Logger))

	// Player routes
	api.HandleFunc("/players", playerHandler.Create).Methods(http.MethodPost)
	api.HandleFunc("/players", playerHandler.List).Methods(http.MethodGet)
	api.HandleFunc("/players/{id}", playerHandler.Get).Methods(http.MethodGet)
	api.HandleFunc("/players/{id}/display-name", playerHandler.UpdateDisplayName).Methods(http.MethodPatch)
	api.HandleFunc("/players/{id}/leagues", playerHandler.Leagues).Methods(http.MethodGet)
	api.HandleFunc("/players/{id}/owned-leagues", playerHandler.OwnedLeagues).Methods(http.MethodGet)
	api.HandleFunc("/players/{id}/invites", playerHandler.Invites).Methods(http.MethodGet)

	// League routes
	api.HandleFunc("/leagues", leagueHandler.Create).Methods(http.MethodPost)
	api.HandleFunc("/leagues", leagueHandler.List).Methods(http.MethodGet)
	api.HandleFunc("/leagues/{id}", leagueHandler.Get).Methods(http.MethodGet)
	api.HandleFunc("/leagues/{id}", leagueHandler.Delete).Methods(http.MethodDelete)
	api.HandleFunc("/leagues/{id}/name", leagueHandler.UpdateName).Methods(http.MethodPatch)
	api.HandleFunc("/leagues/{id}/clone", leagueHandler.Clone).Methods(http.MethodPost)

	// Invitation routes
	api.HandleFunc("/leagues/{id}/invites", leagueHandler.Invite).Methods(http.MethodPost)
	api.HandleFunc("/leagues/{id}/invites", leagueHandler.RemoveInvite).Methods(http.MethodDelete)
	api.HandleFunc("/leagues/{id}/invites/accept", leagueHandler.AcceptInvite).Methods(http.MethodPost)

	// Ownership routes
	api.HandleFunc("/leagues/{id}/owners", leagueHandler.AddOwner).Methods(http.MethodPost)
	api.HandleFunc("/leagues/{id}/owners/{player_id}", leagueHandler.RemoveOwner).Methods(http.MethodDelete)

	// Scheduling routes
	api.HandleFunc("/leagues/{id}/start-date", leagueHandler.SetStartDate).Methods(http.MethodPut)
	api.HandleFunc("/leagues/{id}/end-date", leagueHandler.SetEndDate).Methods(http.MethodPut)

	// Health check endpoint
	api.HandleFunc("/health", healthHandler).Methods(http.MethodGet)

	return r
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}

func panicHandler(w http.ResponseWriter, _ *http.Request, _ any) {
	apierr.WriteError(w, apierr.NewInternalError())
}
