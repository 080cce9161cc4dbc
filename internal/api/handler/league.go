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
)

// LeagueHandler handles league-related endpoints
type LeagueHandler struct {
	leagueService *league.Service
}

// NewLeagueHandler creates a new league handler
func NewLeagueHandler(leagueService *league.Service) *LeagueHandler {
	return &LeagueHandler{leagueService: leagueService}
}

// Create handles POST /api/v1/leagues
func (h *LeagueHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req request.CreateLeagueRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, apierr.NewInvalidRequestError("invalid request body"))
		return
	}

	id, err := h.leagueService.CreateLeague(r.Context(), model.PlayerID(req.OwnerID), req.Name, model.GameType(req.GameType))
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, response.CreatedResponse{ID: int(id)})
}

// List handles GET /api/v1/leagues
func (h *LeagueHandler) List(w http.ResponseWriter, r *http.Request) {
	ids, err := h.leagueService.ListLeagueIDs(r.Context())
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

// Get handles GET /api/v1/leagues/{id}
func (h *LeagueHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := leagueIDVar(w, r)
	if !ok {
		return
	}

	// Status first: reading it stamps the close date on a newly closed league
	status, err := h.leagueService.Status(r.Context(), id)
	if err != nil {
		WriteError(w, err)
		return
	}

	l, err := h.leagueService.GetLeague(r.Context(), id)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.LeagueFromModel(l, status))
}

// Delete handles DELETE /api/v1/leagues/{id}
func (h *LeagueHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := leagueIDVar(w, r)
	if !ok {
		return
	}

	if err := h.leagueService.RemoveLeague(r.Context(), id); err != nil {
		WriteError(w, err)
		return
	}

	response.NoContent(w)
}

// UpdateName handles PATCH /api/v1/leagues/{id}/name
func (h *LeagueHandler) UpdateName(w http.ResponseWriter, r *http.Request) {
	id, ok := leagueIDVar(w, r)
	if !ok {
		return
	}

	var req request.UpdateLeagueNameRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, apierr.NewInvalidRequestError("invalid request body"))
		return
	}

	if err := h.leagueService.UpdateName(r.Context(), id, req.Name); err != nil {
		WriteError(w, err)
		return
	}

	response.NoContent(w)
}

// Clone handles POST /api/v1/leagues/{id}/clone
func (h *LeagueHandler) Clone(w http.ResponseWriter, r *http.Request) {
	id, ok := leagueIDVar(w, r)
	if !ok {
		return
	}

	var req request.CloneLeagueRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, apierr.NewInvalidRequestError("invalid request body"))
		return
	}

	newID, err := h.leagueService.CloneLeague(r.Context(), id, req.Name)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, response.CreatedResponse{ID: int(newID)})
}

// Invite handles POST /api/v1/leagues/{id}/invites
func (h *LeagueHandler) Invite(w http.ResponseWriter, r *http.Request) {
	id, ok := leagueIDVar(w, r)
	if !ok {
		return
	}

	var req request.InviteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, apierr.NewInvalidRequestError("invalid request body"))
		return
	}

	if err := h.leagueService.Invite(r.Context(), id, req.Email); err != nil {
		WriteError(w, err)
		return
	}

	response.NoContent(w)
}

// RemoveInvite handles DELETE /api/v1/leagues/{id}/invites?email=...
func (h *LeagueHandler) RemoveInvite(w http.ResponseWriter, r *http.Request) {
	id, ok := leagueIDVar(w, r)
	if !ok {
		return
	}

	email := r.URL.Query().Get("email")
	if err := h.leagueService.RemoveInvite(r.Context(), id, email); err != nil {
		WriteError(w, err)
		return
	}

	response.NoContent(w)
}

// AcceptInvite handles POST /api/v1/leagues/{id}/invites/accept
func (h *LeagueHandler) AcceptInvite(w http.ResponseWriter, r *http.Request) {
	id, ok := leagueIDVar(w, r)
	if !ok {
		return
	}

	var req request.AcceptInviteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, apierr.NewInvalidRequestError("invalid request body"))
		return
	}

	if err := h.leagueService.AcceptInvite(r.Context(), id, model.PlayerID(req.PlayerID)); err != nil {
		WriteError(w, err)
		return
	}

	response.NoContent(w)
}

// AddOwner handles POST /api/v1/leagues/{id}/owners
func (h *LeagueHandler) AddOwner(w http.ResponseWriter, r *http.Request) {
	id, ok := leagueIDVar(w, r)
	if !ok {
		return
	}

	var req request.AddOwnerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, apierr.NewInvalidRequestError("invalid request body"))
		return
	}

	if err := h.leagueService.AddOwner(r.Context(), id, model.PlayerID(req.PlayerID)); err != nil {
		WriteError(w, err)
		return
	}

	response.NoContent(w)
}

// RemoveOwner handles DELETE /api/v1/leagues/{id}/owners/{player_id}
func (h *LeagueHandler) RemoveOwner(w http.ResponseWriter, r *http.Request) {
	id, ok := leagueIDVar(w, r)
	if !ok {
		return
	}

	playerRaw := mux.Vars(r)["player_id"]
	playerID, err := strconv.Atoi(playerRaw)
	if err != nil {
		WriteError(w, apierr.NewInvalidRequestError("player id must be an integer"))
		return
	}

	if err := h.leagueService.RemoveOwner(r.Context(), id, model.PlayerID(playerID)); err != nil {
		WriteError(w, err)
		return
	}

	response.NoContent(w)
}

// SetStartDate handles PUT /api/v1/leagues/{id}/start-date
func (h *LeagueHandler) SetStartDate(w http.ResponseWriter, r *http.Request) {
	h.setDate(w, r, h.leagueService.SetStartDate)
}

// SetEndDate handles PUT /api/v1/leagues/{id}/end-date
func (h *LeagueHandler) SetEndDate(w http.ResponseWriter, r *http.Request) {
	h.setDate(w, r, h.leagueService.SetEndDate)
}

func (h *LeagueHandler) setDate(w http.ResponseWriter, r *http.Request, set func(ctx context.Context, id model.LeagueID, day model.EpochDay) error) {
	id, ok := leagueIDVar(w, r)
	if !ok {
		return
	}

	var req request.SetDateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, apierr.NewInvalidRequestError("invalid request body"))
		return
	}

	if err := set(r.Context(), id, model.EpochDay(req.Day)); err != nil {
		WriteError(w, err)
		return
	}

	response.NoContent(w)
}

func leagueIDVar(w http.ResponseWriter, r *http.Request) (model.LeagueID, bool) {
	raw := mux.Vars(r)["id"]
	id, err := strconv.Atoi(raw)
	if err != nil {
		WriteError(w, apierr.NewInvalidRequestError("league id must be an integer"))
		return 0, false
	}
	return model.LeagueID(id), true
}
