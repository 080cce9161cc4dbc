package redis

import (
	"context"
	"encoding/json"
	"errors"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/gamesleague/platform/internal/model"
	"github.com/gamesleague/platform/internal/storage"
)

// Storage is a Redis-backed implementation of the storage interface
type Storage struct {
	client *redis.Client
	cfg    Config
}

// New creates a new Redis storage instance
func New(cfg Config) (*Storage, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, err
	}

	opts.PoolSize = cfg.PoolSize
	opts.MinIdleConns = cfg.MinIdleConns

	client := redis.NewClient(opts)

	// Verify connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return &Storage{
		client: client,
		cfg:    cfg,
	}, nil
}

// NewWithClient creates a Redis storage with an existing client (for testing)
func NewWithClient(client *redis.Client, cfg Config) *Storage {
	return &Storage{
		client: client,
		cfg:    cfg,
	}
}

// Close closes the Redis connection
func (s *Storage) Close() error {
	return s.client.Close()
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// Player operations

func (s *Storage) SavePlayer(ctx context.Context, player *model.Player) error {
	data, err := json.Marshal(player)
	if err != nil {
		return err
	}

	// Pipeline for atomic save + index update
	pipe := s.client.Pipeline()
	pipe.Set(ctx, playerKey(player.ID), data, 0)
	pipe.Set(ctx, emailIndexKey(player.Email), strconv.Itoa(int(player.ID)), 0)
	pipe.SAdd(ctx, playerSetKey(), int(player.ID))
	_, err = pipe.Exec(ctx)
	return err
}

func (s *Storage) GetPlayer(ctx context.Context, id model.PlayerID) (*model.Player, error) {
	data, err := s.client.Get(ctx, playerKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrPlayerNotFound
		}
		return nil, err
	}

	var player model.Player
	if err := json.Unmarshal(data, &player); err != nil {
		return nil, err
	}
	return &player, nil
}

func (s *Storage) GetPlayerByEmail(ctx context.Context, email string) (*model.Player, error) {
	idStr, err := s.client.Get(ctx, emailIndexKey(email)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrPlayerNotFound
		}
		return nil, err
	}

	id, err := strconv.Atoi(idStr)
	if err != nil {
		return nil, err
	}
	return s.GetPlayer(ctx, model.PlayerID(id))
}

func (s *Storage) ListPlayers(ctx context.Context) ([]*model.Player, error) {
	ids, err := s.client.SMembers(ctx, playerSetKey()).Result()
	if err != nil {
		return nil, err
	}

	players := make([]*model.Player, 0, len(ids))
	for _, idStr := range ids {
		id, err := strconv.Atoi(idStr)
		if err != nil {
			return nil, err
		}
		player, err := s.GetPlayer(ctx, model.PlayerID(id))
		if err != nil {
			if errors.Is(err, model.ErrPlayerNotFound) {
				continue
			}
			return nil, err
		}
		players = append(players, player)
	}

	sort.Slice(players, func(i, j int) bool { return players[i].ID < players[j].ID })
	return players, nil
}

func (s *Storage) NextPlayerID(ctx context.Context) (model.PlayerID, error) {
	// INCR is 1-based; ids start at 0
	n, err := s.client.Incr(ctx, playerCounterKey()).Result()
	if err != nil {
		return 0, err
	}
	return model.PlayerID(n - 1), nil
}

// League operations

func (s *Storage) SaveLeague(ctx context.Context, league *model.League) error {
	data, err := json.Marshal(league)
	if err != nil {
		return err
	}

	// Drop the stale name index entry when a league is renamed
	old, err := s.GetLeague(ctx, league.ID)
	if err != nil && !errors.Is(err, model.ErrLeagueNotFound) {
		return err
	}

	pipe := s.client.Pipeline()
	if old != nil && !strings.EqualFold(old.Name, league.Name) {
		pipe.Del(ctx, leagueNameIndexKey(old.Name))
	}
	pipe.Set(ctx, leagueKey(league.ID), data, 0)
	pipe.Set(ctx, leagueNameIndexKey(league.Name), strconv.Itoa(int(league.ID)), 0)
	pipe.SAdd(ctx, leagueSetKey(), int(league.ID))
	_, err = pipe.Exec(ctx)
	return err
}

func (s *Storage) GetLeague(ctx context.Context, id model.LeagueID) (*model.League, error) {
	data, err := s.client.Get(ctx, leagueKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrLeagueNotFound
		}
		return nil, err
	}

	var league model.League
	if err := json.Unmarshal(data, &league); err != nil {
		return nil, err
	}
	return &league, nil
}

func (s *Storage) GetLeagueByName(ctx context.Context, name string) (*model.League, error) {
	idStr, err := s.client.Get(ctx, leagueNameIndexKey(name)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrLeagueNotFound
		}
		return nil, err
	}

	id, err := strconv.Atoi(idStr)
	if err != nil {
		return nil, err
	}
	return s.GetLeague(ctx, model.LeagueID(id))
}

func (s *Storage) ListLeagues(ctx context.Context) ([]*model.League, error) {
	ids, err := s.client.SMembers(ctx, leagueSetKey()).Result()
	if err != nil {
		return nil, err
	}

	leagues := make([]*model.League, 0, len(ids))
	for _, idStr := range ids {
		id, err := strconv.Atoi(idStr)
		if err != nil {
			return nil, err
		}
		league, err := s.GetLeague(ctx, model.LeagueID(id))
		if err != nil {
			if errors.Is(err, model.ErrLeagueNotFound) {
				continue
			}
			return nil, err
		}
		leagues = append(leagues, league)
	}

	sort.Slice(leagues, func(i, j int) bool { return leagues[i].ID < leagues[j].ID })
	return leagues, nil
}

func (s *Storage) DeleteLeague(ctx context.Context, id model.LeagueID) error {
	league, err := s.GetLeague(ctx, id)
	if err != nil {
		if errors.Is(err, model.ErrLeagueNotFound) {
			return nil
		}
		return err
	}

	pipe := s.client.Pipeline()
	pipe.Del(ctx, leagueKey(id))
	pipe.Del(ctx, leagueNameIndexKey(league.Name))
	pipe.SRem(ctx, leagueSetKey(), int(id))
	_, err = pipe.Exec(ctx)
	return err
}

func (s *Storage) NextLeagueID(ctx context.Context) (model.LeagueID, error) {
	n, err := s.client.Incr(ctx, leagueCounterKey()).Result()
	if err != nil {
		return 0, err
	}
	return model.LeagueID(n - 1), nil
}
