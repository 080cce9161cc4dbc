package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/gamesleague/platform/internal/api/apierr"
	"github.com/gamesleague/platform/internal/api/request"
	"github.com/gamesleague/platform/internal/api/response"
	"github.com/gamesleague/platform/internal/model"
	"github.com/gamesleague/platform/internal/services/league"
	"github.com/gamesleague/platform/internal/services/player"
)

// PlayerHandler handles player-related endpoints
type PlayerHandler struct {
	playerService *player.Service
	leagueService *league.Service
}

// NewPlayerHandler creates a new player handler
func NewPlayerHandler(playerService *player.Service, leagueService *league.Service) *PlayerHandler {
	return &PlayerHandler{
		playerService: playerService,
		leagueService: leagueService,
	}
}

// Create handles POST /api/v1/players
func (h *PlayerHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req request.CreatePlayerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, apierr.NewInvalidRequestError("invalid request body"))
		return
	}

	id, err := h.playerService.CreatePlayer(r.Context(), req.Email, req.DisplayName, req.Name, req.Phone)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, response.CreatedResponse{ID: int(id)})
}

// List handles GET /api/v1/players
func (h *PlayerHandler) List(w http.ResponseWriter, r *http.Request) {
	ids, err := h.playerService.ListPlayerIDs(r.Context())
	if err != nil {
		WriteError(w, err)
		return
	}

	out := make([]int, len(ids))
	for i, id := range ids {
		out[i] = int(id)
	}
	response.JSON(w, http.StatusOK, response.IDListResponse{IDs: out})
}

// Get handles GET /api/v1/players/{id}
func (h *PlayerHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := playerIDVar(w, r)
	if !ok {
		return
	}

	p, err := h.playerService.GetPlayer(r.Context(), id)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.PlayerFromModel(p))
}

// UpdateDisplayName handles PATCH /api/v1/players/{id}/display-name
func (h *PlayerHandler) UpdateDisplayName(w http.ResponseWriter, r *http.Request) {
	id, ok := playerIDVar(w, r)
	if !ok {
		return
	}

	var req request.UpdateDisplayNameRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, apierr.NewInvalidRequestError("invalid request body"))
		return
	}

	if err := h.playerService.UpdateDisplayName(r.Context(), id, req.DisplayName); err != nil {
		WriteError(w, err)
		return
	}

	response.NoContent(w)
}

// Leagues handles GET /api/v1/players/{id}/leagues
func (h *PlayerHandler) Leagues(w http.ResponseWriter, r *http.Request) {
	h.leagueList(w, r, h.leagueService.PlayerLeagues)
}

// OwnedLeagues handles GET /api/v1/players/{id}/owned-leagues
func (h *PlayerHandler) OwnedLeagues(w http.ResponseWriter, r *http.Request) {
	h.leagueList(w, r, h.leagueService.PlayerOwnedLeagues)
}

// Invites handles GET /api/v1/players/{id}/invites
func (h *PlayerHandler) Invites(w http.ResponseWriter, r *http.Request) {
	h.leagueList(w, r, h.leagueService.PlayerInvites)
}

func (h *PlayerHandler) leagueList(w http.ResponseWriter, r *http.Request, query func(ctx context.Context, id model.PlayerID) ([]model.LeagueID, error)) {
	id, ok := playerIDVar(w, r)
	if !ok {
		return
	}

	ids, err := query(r.Context(), id)
	if err != nil {
		WriteError(w, err)
		return
	}

	out := make([]int, len(ids))
	for i, lid := range ids {
		out[i] = int(lid)
	}
	response.JSON(w, http.StatusOK, response.IDListResponse{IDs: out})
}

func playerIDVar(w http.ResponseWriter, r *http.Request) (model.PlayerID, bool) {
	raw := mux.Vars(r)["id"]
	id, err := strconv.Atoi(raw)
	if err != nil {
		WriteError(w, apierr.NewInvalidRequestError("player id must be an integer"))
		return 0, false
	}
	return model.PlayerID(id), true
}
