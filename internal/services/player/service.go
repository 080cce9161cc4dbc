package player

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/gamesleague/platform/internal/dependencies/clock"
	"github.com/gamesleague/platform/internal/model"
	"github.com/gamesleague/platform/internal/storage"
)

// Display name and name length limits
const (
	DisplayNameMaxLength = 20
	NameMinLength        = 5
	NameMaxLength        = 50
)

// Service is the player directory: account creation and lookups
type Service struct {
	storage storage.Storage
	clock   clock.Clock
	logger  *slog.Logger
}

// New creates a new player Service
func New(storage storage.Storage, clock clock.Clock, logger *slog.Logger) *Service {
	return &Service{
		storage: storage,
		clock:   clock,
		logger:  logger,
	}
}

// CreatePlayer registers a new player account and returns its id.
//
// Emails are unique case-insensitively and stored lowercased. The join
// date is stamped from the current clock and never changes.
func (s *Service) CreatePlayer(ctx context.Context, email, displayName, name, phone string) (model.PlayerID, error) {
	email = NormalizeEmail(email)
	displayName = strings.TrimSpace(displayName)
	name = strings.TrimSpace(name)

	if !ValidEmail(email) {
		return 0, model.ErrInvalidEmail
	}
	if len(displayName) < 1 || len(displayName) > DisplayNameMaxLength {
		return 0, model.ErrInvalidName
	}
	if len(name) < NameMinLength || len(name) > NameMaxLength {
		return 0, model.ErrInvalidName
	}

	if _, err := s.storage.GetPlayerByEmail(ctx, email); err == nil {
		return 0, model.ErrDuplicateEmail
	} else if !isNotFound(err) {
		return 0, err
	}

	id, err := s.storage.NextPlayerID(ctx)
	if err != nil {
		return 0, err
	}

	player := &model.Player{
		ID:          id,
		Email:       email,
		DisplayName: displayName,
		Name:        name,
		Phone:       phone,
		JoinDate:    model.EpochDayFromTime(s.clock.Now()),
	}

	if err := s.storage.SavePlayer(ctx, player); err != nil {
		return 0, err
	}

	s.logger.Info("player created",
		slog.Int("player_id", int(id)),
		slog.String("display_name", displayName),
	)

	return id, nil
}

// GetPlayer retrieves a player by id
func (s *Service) GetPlayer(ctx context.Context, id model.PlayerID) (*model.Player, error) {
	return s.storage.GetPlayer(ctx, id)
}

// GetPlayerByEmail retrieves a player by email, case-insensitively
func (s *Service) GetPlayerByEmail(ctx context.Context, email string) (*model.Player, error) {
	return s.storage.GetPlayerByEmail(ctx, NormalizeEmail(email))
}

// UpdateDisplayName changes a player's display name
func (s *Service) UpdateDisplayName(ctx context.Context, id model.PlayerID, displayName string) error {
	displayName = strings.TrimSpace(displayName)
	if len(displayName) < 1 || len(displayName) > DisplayNameMaxLength {
		return model.ErrInvalidName
	}

	player, err := s.storage.GetPlayer(ctx, id)
	if err != nil {
		return err
	}

	player.DisplayName = displayName
	return s.storage.SavePlayer(ctx, player)
}

// ListPlayerIDs returns the ids of all players, in id order
func (s *Service) ListPlayerIDs(ctx context.Context) ([]model.PlayerID, error) {
	players, err := s.storage.ListPlayers(ctx)
	if err != nil {
		return nil, err
	}

	ids := make([]model.PlayerID, len(players))
	for i, p := range players {
		ids[i] = p.ID
	}
	return ids, nil
}

// NormalizeEmail trims and lowercases an email for storage and comparison
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// ValidEmail reports whether an email is well-formed enough to invite:
// non-empty with a domain separator
func ValidEmail(email string) bool {
	return email != "" && strings.Contains(email, "@")
}

func isNotFound(err error) bool {
	return errors.Is(err, model.ErrPlayerNotFound)
}
