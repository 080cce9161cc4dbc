package memory

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/gamesleague/platform/internal/model"
	"github.com/gamesleague/platform/internal/storage"
)

// Storage is an in-memory implementation of the storage interface
type Storage struct {
	mu sync.RWMutex

	players    map[model.PlayerID]*model.Player
	emailIndex map[string]model.PlayerID // lowercased email -> id

	leagues      map[model.LeagueID]*model.League
	nameIndex    map[string]model.LeagueID // lowercased name -> id
	leagueNames  map[model.LeagueID]string // id -> lowercased name, for index upkeep
	nextPlayerID model.PlayerID
	nextLeagueID model.LeagueID
}

// New creates a new in-memory storage instance
func New() *Storage {
	return &Storage{
		players:     make(map[model.PlayerID]*model.Player),
		emailIndex:  make(map[string]model.PlayerID),
		leagues:     make(map[model.LeagueID]*model.League),
		nameIndex:   make(map[string]model.LeagueID),
		leagueNames: make(map[model.LeagueID]string),
	}
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// Player operations

func (s *Storage) SavePlayer(ctx context.Context, player *model.Player) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.players[player.ID] = player
	s.emailIndex[strings.ToLower(player.Email)] = player.ID
	return nil
}

func (s *Storage) GetPlayer(ctx context.Context, id model.PlayerID) (*model.Player, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	player, ok := s.players[id]
	if !ok {
		return nil, model.ErrPlayerNotFound
	}
	return player, nil
}

func (s *Storage) GetPlayerByEmail(ctx context.Context, email string) (*model.Player, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	id, ok := s.emailIndex[strings.ToLower(email)]
	if !ok {
		return nil, model.ErrPlayerNotFound
	}
	player, ok := s.players[id]
	if !ok {
		return nil, model.ErrPlayerNotFound
	}
	return player, nil
}

func (s *Storage) ListPlayers(ctx context.Context) ([]*model.Player, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	players := make([]*model.Player, 0, len(s.players))
	for _, p := range s.players {
		players = append(players, p)
	}
	sort.Slice(players, func(i, j int) bool { return players[i].ID < players[j].ID })
	return players, nil
}

func (s *Storage) NextPlayerID(ctx context.Context) (model.PlayerID, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.nextPlayerID
	s.nextPlayerID++
	return id, nil
}

// League operations

func (s *Storage) SaveLeague(ctx context.Context, league *model.League) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	name := strings.ToLower(league.Name)
	if old, ok := s.leagueNames[league.ID]; ok && old != name {
		delete(s.nameIndex, old)
	}

	s.leagues[league.ID] = league
	s.nameIndex[name] = league.ID
	s.leagueNames[league.ID] = name
	return nil
}

func (s *Storage) GetLeague(ctx context.Context, id model.LeagueID) (*model.League, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	league, ok := s.leagues[id]
	if !ok {
		return nil, model.ErrLeagueNotFound
	}
	return league, nil
}

func (s *Storage) GetLeagueByName(ctx context.Context, name string) (*model.League, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	id, ok := s.nameIndex[strings.ToLower(name)]
	if !ok {
		return nil, model.ErrLeagueNotFound
	}
	league, ok := s.leagues[id]
	if !ok {
		return nil, model.ErrLeagueNotFound
	}
	return league, nil
}

func (s *Storage) ListLeagues(ctx context.Context) ([]*model.League, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	leagues := make([]*model.League, 0, len(s.leagues))
	for _, l := range s.leagues {
		leagues = append(leagues, l)
	}
	sort.Slice(leagues, func(i, j int) bool { return leagues[i].ID < leagues[j].ID })
	return leagues, nil
}

func (s *Storage) DeleteLeague(ctx context.Context, id model.LeagueID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if name, ok := s.leagueNames[id]; ok {
		delete(s.nameIndex, name)
		delete(s.leagueNames, id)
	}
	delete(s.leagues, id)
	return nil
}

func (s *Storage) NextLeagueID(ctx context.Context) (model.LeagueID, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.nextLeagueID
	s.nextLeagueID++
	return id, nil
}
