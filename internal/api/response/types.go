package response

import (
	"github.com/gamesleague/platform/internal/model"
)

// Player represents a player in API responses
type Player struct {
	ID          int    `json:"id"`
	Email       string `json:"email"`
	DisplayName string `json:"display_name"`
	Name        string `json:"name"`
	Phone       string `json:"phone,omitempty"`
	JoinDay     int    `json:"join_day"`
}

// PlayerFromModel converts a model.Player to a response Player
func PlayerFromModel(p *model.Player) Player {
	return Player{
		ID:          int(p.ID),
		Email:       p.Email,
		DisplayName: p.DisplayName,
		Name:        p.Name,
		Phone:       p.Phone,
		JoinDay:     int(p.JoinDate),
	}
}

// League represents a league in API responses. All date fields are
// epoch-day integers; absent dates are null.
type League struct {
	ID            int      `json:"id"`
	Name          string   `json:"name"`
	GameType      string   `json:"game_type"`
	Status        string   `json:"status"`
	OwnerIDs      []int    `json:"owner_ids"`
	MemberIDs     []int    `json:"member_ids"`
	EmailInvites  []string `json:"email_invites"`
	PlayerInvites []int    `json:"player_invites"`
	StartDay      *int     `json:"start_day"`
	EndDay        *int     `json:"end_day"`
	CloseDay      *int     `json:"close_day"`
}

// LeagueFromModel converts a model.League and its derived status
func LeagueFromModel(l *model.League, status model.Status) League {
	return League{
		ID:            int(l.ID),
		Name:          l.Name,
		GameType:      string(l.GameType),
		Status:        string(status),
		OwnerIDs:      playerIDs(l.OwnerIDs),
		MemberIDs:     playerIDs(l.MemberIDs),
		EmailInvites:  emails(l.EmailInvites),
		PlayerInvites: playerIDs(l.PlayerInvites),
		StartDay:      day(l.StartDate),
		EndDay:        day(l.EndDate),
		CloseDay:      day(l.CloseDate),
	}
}

// CreatedResponse carries the id of a newly created entity
type CreatedResponse struct {
	ID int `json:"id"`
}

// IDListResponse carries a list of entity ids
type IDListResponse struct {
	IDs []int `json:"ids"`
}

func playerIDs(ids []model.PlayerID) []int {
	out := make([]int, len(ids))
	for i, id := range ids {
		out[i] = int(id)
	}
	return out
}

func emails(in []string) []string {
	out := make([]string, len(in))
	copy(out, in)
	return out
}

func day(d *model.EpochDay) *int {
	if d == nil {
		return nil
	}
	v := int(*d)
	return &v
}
