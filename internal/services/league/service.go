package league

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/gamesleague/platform/internal/dependencies/clock"
	"github.com/gamesleague/platform/internal/model"
	"github.com/gamesleague/platform/internal/services/player"
	"github.com/gamesleague/platform/internal/storage"
)

// NameMaxLength is the maximum league name length after trimming
const NameMaxLength = 20

// Service is the league membership and lifecycle engine.
//
// Every mutating operation validates before it mutates: a failed call
// performs no storage write and leaves all entities unchanged.
type Service struct {
	storage storage.Storage
	players *player.Service
	clock   clock.Clock
	logger  *slog.Logger
}

// New creates a new league Service
func New(storage storage.Storage, players *player.Service, clock clock.Clock, logger *slog.Logger) *Service {
	return &Service{
		storage: storage,
		players: players,
		clock:   clock,
		logger:  logger,
	}
}

// CreateLeague creates a league owned by the given player.
//
// The owner becomes the first member. The start date is left unset so
// that a new league reports PENDING until scheduled.
func (s *Service) CreateLeague(ctx context.Context, owner model.PlayerID, name string, gameType model.GameType) (model.LeagueID, error) {
	if _, err := s.players.GetPlayer(ctx, owner); err != nil {
		return 0, err
	}

	name = strings.TrimSpace(name)
	if len(name) < 1 || len(name) > NameMaxLength {
		return 0, model.ErrInvalidName
	}
	if !gameType.Valid() {
		return 0, model.ErrInvalidGameType
	}

	if _, err := s.storage.GetLeagueByName(ctx, name); err == nil {
		return 0, model.ErrDuplicateLeagueName
	} else if !errors.Is(err, model.ErrLeagueNotFound) {
		return 0, err
	}

	id, err := s.storage.NextLeagueID(ctx)
	if err != nil {
		return 0, err
	}

	league := &model.League{
		ID:            id,
		Name:          name,
		GameType:      gameType,
		OwnerIDs:      []model.PlayerID{owner},
		MemberIDs:     []model.PlayerID{owner},
		EmailInvites:  []string{},
		PlayerInvites: []model.PlayerID{},
	}

	if err := s.storage.SaveLeague(ctx, league); err != nil {
		return 0, err
	}

	s.logger.Info("league created",
		slog.Int("league_id", int(id)),
		slog.String("name", name),
		slog.String("game_type", string(gameType)),
	)

	return id, nil
}

// GetLeague retrieves a league by id
func (s *Service) GetLeague(ctx context.Context, id model.LeagueID) (*model.League, error) {
	return s.storage.GetLeague(ctx, id)
}

// ListLeagueIDs returns the ids of all leagues, in id order
func (s *Service) ListLeagueIDs(ctx context.Context) ([]model.LeagueID, error) {
	leagues, err := s.storage.ListLeagues(ctx)
	if err != nil {
		return nil, err
	}

	ids := make([]model.LeagueID, len(leagues))
	for i, l := range leagues {
		ids[i] = l.ID
	}
	return ids, nil
}

// UpdateName renames a league. A league may keep its current name; any
// other case-insensitive collision is rejected.
func (s *Service) UpdateName(ctx context.Context, id model.LeagueID, newName string) error {
	newName = strings.TrimSpace(newName)
	if len(newName) < 1 || len(newName) > NameMaxLength {
		return model.ErrInvalidName
	}

	league, err := s.storage.GetLeague(ctx, id)
	if err != nil {
		return err
	}

	if existing, err := s.storage.GetLeagueByName(ctx, newName); err == nil {
		if existing.ID != id {
			return model.ErrDuplicateLeagueName
		}
	} else if !errors.Is(err, model.ErrLeagueNotFound) {
		return err
	}

	league.Name = newName
	return s.storage.SaveLeague(ctx, league)
}

// RemoveLeague deletes a league and all its invite state
func (s *Service) RemoveLeague(ctx context.Context, id model.LeagueID) error {
	if _, err := s.storage.GetLeague(ctx, id); err != nil {
		return err
	}
	return s.storage.DeleteLeague(ctx, id)
}

// Invite invites the holder of an email address to a league.
//
// If the email belongs to a registered player the invite is recorded by
// player id, otherwise by email. Inviting a current member, or repeating
// an invite, is a no-op.
func (s *Service) Invite(ctx context.Context, id model.LeagueID, email string) error {
	email = player.NormalizeEmail(email)
	if !player.ValidEmail(email) {
		return model.ErrInvalidEmail
	}

	league, err := s.storage.GetLeague(ctx, id)
	if err != nil {
		return err
	}

	invitee, err := s.players.GetPlayerByEmail(ctx, email)
	if err != nil && !errors.Is(err, model.ErrPlayerNotFound) {
		return err
	}

	if invitee != nil {
		if league.IsMember(invitee.ID) || league.HasPlayerInvite(invitee.ID) {
			return nil
		}
		league.PlayerInvites = append(league.PlayerInvites, invitee.ID)
	} else {
		if league.HasEmailInvite(email) {
			return nil
		}
		league.EmailInvites = append(league.EmailInvites, email)
	}

	return s.storage.SaveLeague(ctx, league)
}

// AcceptInvite joins a player to a league they were invited to.
//
// The invite may have been recorded by player id, or by email before the
// player registered; both records are consumed. The player is appended
// to the member list, preserving acceptance order.
func (s *Service) AcceptInvite(ctx context.Context, id model.LeagueID, playerID model.PlayerID) error {
	league, err := s.storage.GetLeague(ctx, id)
	if err != nil {
		return err
	}

	p, err := s.players.GetPlayer(ctx, playerID)
	if err != nil {
		return err
	}

	if !league.HasPlayerInvite(playerID) && !league.HasEmailInvite(p.Email) {
		return model.ErrNoActiveInvite
	}

	league.PlayerInvites = removePlayerID(league.PlayerInvites, playerID)
	league.EmailInvites = removeEmail(league.EmailInvites, p.Email)
	league.MemberIDs = append(league.MemberIDs, playerID)

	return s.storage.SaveLeague(ctx, league)
}

// RemoveInvite revokes a pending invitation by email. Both the email
// record and, for a registered player, the id record are removed; if
// neither exists the call fails.
func (s *Service) RemoveInvite(ctx context.Context, id model.LeagueID, email string) error {
	email = player.NormalizeEmail(email)
	if !player.ValidEmail(email) {
		return model.ErrInvalidEmail
	}

	league, err := s.storage.GetLeague(ctx, id)
	if err != nil {
		return err
	}

	removed := false
	if league.HasEmailInvite(email) {
		league.EmailInvites = removeEmail(league.EmailInvites, email)
		removed = true
	}

	if p, err := s.players.GetPlayerByEmail(ctx, email); err == nil {
		if league.HasPlayerInvite(p.ID) {
			league.PlayerInvites = removePlayerID(league.PlayerInvites, p.ID)
			removed = true
		}
	} else if !errors.Is(err, model.ErrPlayerNotFound) {
		return err
	}

	if !removed {
		return model.ErrNoActiveInvite
	}

	return s.storage.SaveLeague(ctx, league)
}

// AddOwner promotes a member to owner. Promoting an existing owner is a
// no-op; non-members cannot be owners.
func (s *Service) AddOwner(ctx context.Context, id model.LeagueID, playerID model.PlayerID) error {
	league, err := s.storage.GetLeague(ctx, id)
	if err != nil {
		return err
	}

	if _, err := s.players.GetPlayer(ctx, playerID); err != nil {
		return err
	}

	if !league.IsMember(playerID) {
		return model.ErrNotAMember
	}
	if league.IsOwner(playerID) {
		return nil
	}

	league.OwnerIDs = append(league.OwnerIDs, playerID)
	return s.storage.SaveLeague(ctx, league)
}

// RemoveOwner demotes an owner. A league always keeps at least one
// owner: removing the last one is rejected and leaves state unchanged.
func (s *Service) RemoveOwner(ctx context.Context, id model.LeagueID, playerID model.PlayerID) error {
	league, err := s.storage.GetLeague(ctx, id)
	if err != nil {
		return err
	}

	if _, err := s.players.GetPlayer(ctx, playerID); err != nil {
		return err
	}

	if !league.IsOwner(playerID) {
		return model.ErrNotAnOwner
	}
	if len(league.OwnerIDs) == 1 {
		return model.ErrLastOwner
	}

	league.OwnerIDs = removePlayerID(league.OwnerIDs, playerID)
	return s.storage.SaveLeague(ctx, league)
}

// Status derives the league's lifecycle status from today's date.
//
// The first time a league is observed CLOSED its close date is stamped
// from the end date and persisted; later reads leave it untouched.
func (s *Service) Status(ctx context.Context, id model.LeagueID) (model.Status, error) {
	league, err := s.storage.GetLeague(ctx, id)
	if err != nil {
		return "", err
	}

	status := league.StatusOn(s.today())
	if status == model.StatusClosed && league.CloseDate == nil {
		closeDate := *league.EndDate
		league.CloseDate = &closeDate
		if err := s.storage.SaveLeague(ctx, league); err != nil {
			return "", err
		}
		s.logger.Info("league closed",
			slog.Int("league_id", int(id)),
			slog.String("close_date", closeDate.String()),
		)
	}

	return status, nil
}

// SetStartDate schedules the league to become active on the given day
func (s *Service) SetStartDate(ctx context.Context, id model.LeagueID, day model.EpochDay) error {
	league, err := s.storage.GetLeague(ctx, id)
	if err != nil {
		return err
	}

	league.StartDate = &day
	return s.storage.SaveLeague(ctx, league)
}

// SetEndDate schedules the league to end after the given day. A league
// that is already closed cannot be rescheduled.
func (s *Service) SetEndDate(ctx context.Context, id model.LeagueID, day model.EpochDay) error {
	league, err := s.storage.GetLeague(ctx, id)
	if err != nil {
		return err
	}

	if league.StatusOn(s.today()) == model.StatusClosed {
		return model.ErrLeagueClosed
	}

	league.EndDate = &day
	return s.storage.SaveLeague(ctx, league)
}

// CloneLeague creates a new PENDING league from an existing one. The
// original's owners own the clone and are its founding members; every
// other member of the original receives an invitation.
func (s *Service) CloneLeague(ctx context.Context, id model.LeagueID, newName string) (model.LeagueID, error) {
	source, err := s.storage.GetLeague(ctx, id)
	if err != nil {
		return 0, err
	}

	newName = strings.TrimSpace(newName)
	if len(newName) < 1 || len(newName) > NameMaxLength {
		return 0, model.ErrInvalidName
	}
	if _, err := s.storage.GetLeagueByName(ctx, newName); err == nil {
		return 0, model.ErrDuplicateLeagueName
	} else if !errors.Is(err, model.ErrLeagueNotFound) {
		return 0, err
	}

	newID, err := s.storage.NextLeagueID(ctx)
	if err != nil {
		return 0, err
	}

	clone := &model.League{
		ID:            newID,
		Name:          newName,
		GameType:      source.GameType,
		OwnerIDs:      append([]model.PlayerID{}, source.OwnerIDs...),
		MemberIDs:     append([]model.PlayerID{}, source.OwnerIDs...),
		EmailInvites:  []string{},
		PlayerInvites: []model.PlayerID{},
	}
	for _, m := range source.MemberIDs {
		if !clone.IsMember(m) {
			clone.PlayerInvites = append(clone.PlayerInvites, m)
		}
	}

	if err := s.storage.SaveLeague(ctx, clone); err != nil {
		return 0, err
	}

	s.logger.Info("league cloned",
		slog.Int("source_league_id", int(id)),
		slog.Int("league_id", int(newID)),
	)

	return newID, nil
}

// PlayerLeagues returns the ids of the in-progress leagues the player is
// a member of, in league id order
func (s *Service) PlayerLeagues(ctx context.Context, playerID model.PlayerID) ([]model.LeagueID, error) {
	return s.leaguesFor(ctx, playerID, func(l *model.League, p *model.Player) bool {
		return l.IsMember(playerID) && l.StatusOn(s.today()) == model.StatusInProgress
	})
}

// PlayerOwnedLeagues returns the ids of the leagues the player owns
func (s *Service) PlayerOwnedLeagues(ctx context.Context, playerID model.PlayerID) ([]model.LeagueID, error) {
	return s.leaguesFor(ctx, playerID, func(l *model.League, p *model.Player) bool {
		return l.IsOwner(playerID)
	})
}

// PlayerInvites returns the ids of the leagues holding a pending invite
// for the player, whether recorded by id or by email
func (s *Service) PlayerInvites(ctx context.Context, playerID model.PlayerID) ([]model.LeagueID, error) {
	return s.leaguesFor(ctx, playerID, func(l *model.League, p *model.Player) bool {
		return l.HasPlayerInvite(playerID) || l.HasEmailInvite(p.Email)
	})
}

func (s *Service) leaguesFor(ctx context.Context, playerID model.PlayerID, match func(*model.League, *model.Player) bool) ([]model.LeagueID, error) {
	p, err := s.players.GetPlayer(ctx, playerID)
	if err != nil {
		return nil, err
	}

	leagues, err := s.storage.ListLeagues(ctx)
	if err != nil {
		return nil, err
	}

	ids := []model.LeagueID{}
	for _, l := range leagues {
		if match(l, p) {
			ids = append(ids, l.ID)
		}
	}
	return ids, nil
}

func (s *Service) today() model.EpochDay {
	return model.EpochDayFromTime(s.clock.Now())
}

func removePlayerID(ids []model.PlayerID, id model.PlayerID) []model.PlayerID {
	for i, v := range ids {
		if v == id {
			return append(ids[:i], ids[i+1:]...)
		}
	}
	return ids
}

func removeEmail(emails []string, email string) []string {
	for i, v := range emails {
		if v == email {
			return append(emails[:i], emails[i+1:]...)
		}
	}
	return emails
}
