package storage

import (
	"context"

	"github.com/gamesleague/platform/internal/model"
)

// Storage defines the interface for data persistence.
//
// Lookups by email and league name are case-insensitive; callers pass
// lowercased values. NextPlayerID and NextLeagueID are durable monotonic
// counters: ids are never reused, even after deletion or restart.
type Storage interface {
	// Player operations
	SavePlayer(ctx context.Context, player *model.Player) error
	GetPlayer(ctx context.Context, id model.PlayerID) (*model.Player, error)
	GetPlayerByEmail(ctx context.Context, email string) (*model.Player, error)
	ListPlayers(ctx context.Context) ([]*model.Player, error)
	NextPlayerID(ctx context.Context) (model.PlayerID, error)

	// League operations
	SaveLeague(ctx context.Context, league *model.League) error
	GetLeague(ctx context.Context, id model.LeagueID) (*model.League, error)
	GetLeagueByName(ctx context.Context, name string) (*model.League, error)
	ListLeagues(ctx context.Context) ([]*model.League, error)
	DeleteLeague(ctx context.Context, id model.LeagueID) error
	NextLeagueID(ctx context.Context) (model.LeagueID, error)
}
