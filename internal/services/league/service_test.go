package league

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/gamesleague/platform/internal/dependencies/mocks"
	"github.com/gamesleague/platform/internal/model"
	"github.com/gamesleague/platform/internal/services/player"
	"github.com/gamesleague/platform/internal/storage/memory"
	"github.com/gamesleague/platform/internal/testutil"
)

type ServiceSuite struct {
	suite.Suite
	storage *memory.Storage
	players *player.Service
	clock   *mocks.MockClock
	service *Service
	ctx     context.Context
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.storage = memory.New()
	logger := testutil.NopLogger()
	s.clock = mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	s.players = player.New(s.storage, s.clock, logger)
	s.service = New(s.storage, s.players, s.clock, logger)
	s.ctx = context.Background()
}

func (s *ServiceSuite) createPlayer(email, displayName string) model.PlayerID {
	id, err := s.players.CreatePlayer(s.ctx, email, displayName, displayName+" Tester", "")
	s.Require().NoError(err)
	return id
}

func (s *ServiceSuite) createLeague(owner model.PlayerID, name string) model.LeagueID {
	id, err := s.service.CreateLeague(s.ctx, owner, name, model.GameTypeDiceRoll)
	s.Require().NoError(err)
	return id
}

func (s *ServiceSuite) today() model.EpochDay {
	return model.EpochDayFromTime(s.clock.Now())
}

func (s *ServiceSuite) day(offset int) model.EpochDay {
	return s.today() + model.EpochDay(offset)
}

// CreateLeague tests

func (s *ServiceSuite) TestCreateLeagueSucceeds() {
	owner := s.createPlayer("alice@example.com", "Alice")

	id, err := s.service.CreateLeague(s.ctx, owner, "Premier League", model.GameTypeDiceRoll)
	s.Require().NoError(err)
	s.Equal(model.LeagueID(0), id)

	league, err := s.service.GetLeague(s.ctx, id)
	s.Require().NoError(err)
	s.Equal("Premier League", league.Name)
	s.Equal(model.GameTypeDiceRoll, league.GameType)
	s.Equal([]model.PlayerID{owner}, league.OwnerIDs)
	s.Equal([]model.PlayerID{owner}, league.MemberIDs)
	s.Empty(league.EmailInvites)
	s.Empty(league.PlayerInvites)
}

func (s *ServiceSuite) TestCreateLeagueStartsUnscheduled() {
	owner := s.createPlayer("alice@example.com", "Alice")
	id := s.createLeague(owner, "Premier League")

	league, _ := s.service.GetLeague(s.ctx, id)
	s.Nil(league.StartDate)
	s.Nil(league.EndDate)
	s.Nil(league.CloseDate)

	status, err := s.service.Status(s.ctx, id)
	s.Require().NoError(err)
	s.Equal(model.StatusPending, status)
}

func (s *ServiceSuite) TestCreateLeagueAllocatesSequentialIDs() {
	owner := s.createPlayer("alice@example.com", "Alice")

	first := s.createLeague(owner, "First")
	second := s.createLeague(owner, "Second")

	s.Equal(model.LeagueID(0), first)
	s.Equal(model.LeagueID(1), second)
}

func (s *ServiceSuite) TestCreateLeagueUnknownOwnerFails() {
	_, err := s.service.CreateLeague(s.ctx, 99, "Premier League", model.GameTypeDiceRoll)
	s.ErrorIs(err, model.ErrPlayerNotFound)
}

func (s *ServiceSuite) TestCreateLeagueRejectsDuplicateNameCaseInsensitively() {
	owner := s.createPlayer("alice@example.com", "Alice")
	s.createLeague(owner, "Premier League")

	_, err := s.service.CreateLeague(s.ctx, owner, "premier league", model.GameTypeWordMaster)
	s.ErrorIs(err, model.ErrDuplicateLeagueName)
}

func (s *ServiceSuite) TestCreateLeagueRejectsInvalidName() {
	owner := s.createPlayer("alice@example.com", "Alice")

	_, err := s.service.CreateLeague(s.ctx, owner, "", model.GameTypeDiceRoll)
	s.ErrorIs(err, model.ErrInvalidName)

	_, err = s.service.CreateLeague(s.ctx, owner, "   ", model.GameTypeDiceRoll)
	s.ErrorIs(err, model.ErrInvalidName)

	_, err = s.service.CreateLeague(s.ctx, owner, "This Name Is Much Too Long", model.GameTypeDiceRoll)
	s.ErrorIs(err, model.ErrInvalidName)
}

func (s *ServiceSuite) TestCreateLeagueTrimsName() {
	owner := s.createPlayer("alice@example.com", "Alice")

	id, err := s.service.CreateLeague(s.ctx, owner, "  Premier League  ", model.GameTypeDiceRoll)
	s.Require().NoError(err)

	league, _ := s.service.GetLeague(s.ctx, id)
	s.Equal("Premier League", league.Name)
}

func (s *ServiceSuite) TestCreateLeagueRejectsUnknownGameType() {
	owner := s.createPlayer("alice@example.com", "Alice")

	_, err := s.service.CreateLeague(s.ctx, owner, "Premier League", model.GameType("CHESS"))
	s.ErrorIs(err, model.ErrInvalidGameType)
}

// UpdateName tests

func (s *ServiceSuite) TestUpdateNameSucceeds() {
	owner := s.createPlayer("alice@example.com", "Alice")
	id := s.createLeague(owner, "Premier League")

	err := s.service.UpdateName(s.ctx, id, "Champions")
	s.Require().NoError(err)

	league, _ := s.service.GetLeague(s.ctx, id)
	s.Equal("Champions", league.Name)

	// Old name is free again
	_, err = s.service.CreateLeague(s.ctx, owner, "Premier League", model.GameTypeDiceRoll)
	s.NoError(err)
}

func (s *ServiceSuite) TestUpdateNameToOwnNameIsAllowed() {
	owner := s.createPlayer("alice@example.com", "Alice")
	id := s.createLeague(owner, "Premier League")

	err := s.service.UpdateName(s.ctx, id, "Premier League")
	s.NoError(err)
}

func (s *ServiceSuite) TestUpdateNameRejectsCollision() {
	owner := s.createPlayer("alice@example.com", "Alice")
	s.createLeague(owner, "Premier League")
	id := s.createLeague(owner, "Champions")

	err := s.service.UpdateName(s.ctx, id, "PREMIER LEAGUE")
	s.ErrorIs(err, model.ErrDuplicateLeagueName)
}

func (s *ServiceSuite) TestUpdateNameUnknownLeagueFails() {
	err := s.service.UpdateName(s.ctx, 42, "Champions")
	s.ErrorIs(err, model.ErrLeagueNotFound)
}

// RemoveLeague tests

func (s *ServiceSuite) TestRemoveLeagueDeletesIt() {
	owner := s.createPlayer("alice@example.com", "Alice")
	id := s.createLeague(owner, "Premier League")

	err := s.service.RemoveLeague(s.ctx, id)
	s.Require().NoError(err)

	_, err = s.service.GetLeague(s.ctx, id)
	s.ErrorIs(err, model.ErrLeagueNotFound)
}

func (s *ServiceSuite) TestRemoveLeagueDoesNotReuseIDs() {
	owner := s.createPlayer("alice@example.com", "Alice")
	first := s.createLeague(owner, "Premier League")

	s.Require().NoError(s.service.RemoveLeague(s.ctx, first))

	second := s.createLeague(owner, "Champions")
	s.Greater(second, first)
}

func (s *ServiceSuite) TestRemoveLeagueUnknownFails() {
	err := s.service.RemoveLeague(s.ctx, 42)
	s.ErrorIs(err, model.ErrLeagueNotFound)
}

// Invite tests

func (s *ServiceSuite) TestInviteUnregisteredEmailRecordsEmailInvite() {
	owner := s.createPlayer("alice@example.com", "Alice")
	id := s.createLeague(owner, "Premier League")

	err := s.service.Invite(s.ctx, id, "bob@example.com")
	s.Require().NoError(err)

	league, _ := s.service.GetLeague(s.ctx, id)
	s.Equal([]string{"bob@example.com"}, league.EmailInvites)
	s.Empty(league.PlayerInvites)
}

func (s *ServiceSuite) TestInviteRegisteredEmailRecordsPlayerInvite() {
	owner := s.createPlayer("alice@example.com", "Alice")
	bob := s.createPlayer("bob@example.com", "Bob")
	id := s.createLeague(owner, "Premier League")

	err := s.service.Invite(s.ctx, id, "bob@example.com")
	s.Require().NoError(err)

	league, _ := s.service.GetLeague(s.ctx, id)
	s.Empty(league.EmailInvites)
	s.Equal([]model.PlayerID{bob}, league.PlayerInvites)
}

func (s *ServiceSuite) TestInviteNormalizesEmail() {
	owner := s.createPlayer("alice@example.com", "Alice")
	id := s.createLeague(owner, "Premier League")

	err := s.service.Invite(s.ctx, id, "  Bob@Example.COM ")
	s.Require().NoError(err)

	league, _ := s.service.GetLeague(s.ctx, id)
	s.Equal([]string{"bob@example.com"}, league.EmailInvites)
}

func (s *ServiceSuite) TestInviteMemberIsNoOp() {
	owner := s.createPlayer("alice@example.com", "Alice")
	id := s.createLeague(owner, "Premier League")

	err := s.service.Invite(s.ctx, id, "alice@example.com")
	s.Require().NoError(err)

	league, _ := s.service.GetLeague(s.ctx, id)
	s.Empty(league.EmailInvites)
	s.Empty(league.PlayerInvites)
}

func (s *ServiceSuite) TestInviteTwiceIsNoOp() {
	owner := s.createPlayer("alice@example.com", "Alice")
	bob := s.createPlayer("bob@example.com", "Bob")
	id := s.createLeague(owner, "Premier League")

	s.Require().NoError(s.service.Invite(s.ctx, id, "bob@example.com"))
	s.Require().NoError(s.service.Invite(s.ctx, id, "bob@example.com"))
	s.Require().NoError(s.service.Invite(s.ctx, id, "carol@example.com"))
	s.Require().NoError(s.service.Invite(s.ctx, id, "carol@example.com"))

	league, _ := s.service.GetLeague(s.ctx, id)
	s.Equal([]model.PlayerID{bob}, league.PlayerInvites)
	s.Equal([]string{"carol@example.com"}, league.EmailInvites)
}

func (s *ServiceSuite) TestInviteRejectsInvalidEmail() {
	owner := s.createPlayer("alice@example.com", "Alice")
	id := s.createLeague(owner, "Premier League")

	s.ErrorIs(s.service.Invite(s.ctx, id, ""), model.ErrInvalidEmail)
	s.ErrorIs(s.service.Invite(s.ctx, id, "not-an-email"), model.ErrInvalidEmail)
}

func (s *ServiceSuite) TestInviteUnknownLeagueFails() {
	err := s.service.Invite(s.ctx, 42, "bob@example.com")
	s.ErrorIs(err, model.ErrLeagueNotFound)
}

// AcceptInvite tests

func (s *ServiceSuite) TestAcceptInviteJoinsPlayer() {
	owner := s.createPlayer("alice@example.com", "Alice")
	bob := s.createPlayer("bob@example.com", "Bob")
	id := s.createLeague(owner, "Premier League")
	s.Require().NoError(s.service.Invite(s.ctx, id, "bob@example.com"))

	err := s.service.AcceptInvite(s.ctx, id, bob)
	s.Require().NoError(err)

	league, _ := s.service.GetLeague(s.ctx, id)
	s.Equal([]model.PlayerID{owner, bob}, league.MemberIDs)
	s.Empty(league.PlayerInvites)
	s.Empty(league.EmailInvites)
}

func (s *ServiceSuite) TestAcceptInviteByEmailAfterRegistering() {
	owner := s.createPlayer("alice@example.com", "Alice")
	id := s.createLeague(owner, "Premier League")
	s.Require().NoError(s.service.Invite(s.ctx, id, "bob@example.com"))

	// Bob registers after being invited by email
	bob := s.createPlayer("bob@example.com", "Bob")

	err := s.service.AcceptInvite(s.ctx, id, bob)
	s.Require().NoError(err)

	league, _ := s.service.GetLeague(s.ctx, id)
	s.Equal([]model.PlayerID{owner, bob}, league.MemberIDs)
	s.Empty(league.EmailInvites)
}

func (s *ServiceSuite) TestAcceptInvitePreservesAcceptanceOrder() {
	owner := s.createPlayer("alice@example.com", "Alice")
	bob := s.createPlayer("bob@example.com", "Bob")
	carol := s.createPlayer("carol@example.com", "Carol")
	id := s.createLeague(owner, "Premier League")
	s.Require().NoError(s.service.Invite(s.ctx, id, "bob@example.com"))
	s.Require().NoError(s.service.Invite(s.ctx, id, "carol@example.com"))

	s.Require().NoError(s.service.AcceptInvite(s.ctx, id, carol))
	s.Require().NoError(s.service.AcceptInvite(s.ctx, id, bob))

	league, _ := s.service.GetLeague(s.ctx, id)
	s.Equal([]model.PlayerID{owner, carol, bob}, league.MemberIDs)
}

func (s *ServiceSuite) TestAcceptInviteWithoutInviteFails() {
	owner := s.createPlayer("alice@example.com", "Alice")
	bob := s.createPlayer("bob@example.com", "Bob")
	id := s.createLeague(owner, "Premier League")

	err := s.service.AcceptInvite(s.ctx, id, bob)
	s.ErrorIs(err, model.ErrNoActiveInvite)

	league, _ := s.service.GetLeague(s.ctx, id)
	s.Equal([]model.PlayerID{owner}, league.MemberIDs)
}

func (s *ServiceSuite) TestAcceptInviteUnknownPlayerFails() {
	owner := s.createPlayer("alice@example.com", "Alice")
	id := s.createLeague(owner, "Premier League")

	err := s.service.AcceptInvite(s.ctx, id, 99)
	s.ErrorIs(err, model.ErrPlayerNotFound)
}

// RemoveInvite tests

func (s *ServiceSuite) TestRemoveInviteClearsEmailInvite() {
	owner := s.createPlayer("alice@example.com", "Alice")
	id := s.createLeague(owner, "Premier League")
	s.Require().NoError(s.service.Invite(s.ctx, id, "bob@example.com"))

	err := s.service.RemoveInvite(s.ctx, id, "Bob@Example.com")
	s.Require().NoError(err)

	league, _ := s.service.GetLeague(s.ctx, id)
	s.Empty(league.EmailInvites)
}

func (s *ServiceSuite) TestRemoveInviteClearsPlayerInvite() {
	owner := s.createPlayer("alice@example.com", "Alice")
	s.createPlayer("bob@example.com", "Bob")
	id := s.createLeague(owner, "Premier League")
	s.Require().NoError(s.service.Invite(s.ctx, id, "bob@example.com"))

	err := s.service.RemoveInvite(s.ctx, id, "bob@example.com")
	s.Require().NoError(err)

	league, _ := s.service.GetLeague(s.ctx, id)
	s.Empty(league.PlayerInvites)
}

func (s *ServiceSuite) TestRemoveInviteWithoutInviteFails() {
	owner := s.createPlayer("alice@example.com", "Alice")
	id := s.createLeague(owner, "Premier League")

	err := s.service.RemoveInvite(s.ctx, id, "bob@example.com")
	s.ErrorIs(err, model.ErrNoActiveInvite)
}

// Ownership tests

func (s *ServiceSuite) TestAddOwnerPromotesMember() {
	owner := s.createPlayer("alice@example.com", "Alice")
	bob := s.createPlayer("bob@example.com", "Bob")
	id := s.createLeague(owner, "Premier League")
	s.Require().NoError(s.service.Invite(s.ctx, id, "bob@example.com"))
	s.Require().NoError(s.service.AcceptInvite(s.ctx, id, bob))

	err := s.service.AddOwner(s.ctx, id, bob)
	s.Require().NoError(err)

	league, _ := s.service.GetLeague(s.ctx, id)
	s.Equal([]model.PlayerID{owner, bob}, league.OwnerIDs)
}

func (s *ServiceSuite) TestAddOwnerNonMemberFails() {
	owner := s.createPlayer("alice@example.com", "Alice")
	bob := s.createPlayer("bob@example.com", "Bob")
	id := s.createLeague(owner, "Premier League")

	err := s.service.AddOwner(s.ctx, id, bob)
	s.ErrorIs(err, model.ErrNotAMember)
}

func (s *ServiceSuite) TestAddOwnerTwiceIsNoOp() {
	owner := s.createPlayer("alice@example.com", "Alice")
	id := s.createLeague(owner, "Premier League")

	err := s.service.AddOwner(s.ctx, id, owner)
	s.Require().NoError(err)

	league, _ := s.service.GetLeague(s.ctx, id)
	s.Equal([]model.PlayerID{owner}, league.OwnerIDs)
}

func (s *ServiceSuite) TestRemoveOwnerDemotes() {
	owner := s.createPlayer("alice@example.com", "Alice")
	bob := s.createPlayer("bob@example.com", "Bob")
	id := s.createLeague(owner, "Premier League")
	s.Require().NoError(s.service.Invite(s.ctx, id, "bob@example.com"))
	s.Require().NoError(s.service.AcceptInvite(s.ctx, id, bob))
	s.Require().NoError(s.service.AddOwner(s.ctx, id, bob))

	err := s.service.RemoveOwner(s.ctx, id, owner)
	s.Require().NoError(err)

	league, _ := s.service.GetLeague(s.ctx, id)
	s.Equal([]model.PlayerID{bob}, league.OwnerIDs)
	// Demotion does not remove membership
	s.True(league.IsMember(owner))
}

func (s *ServiceSuite) TestRemoveLastOwnerFails() {
	owner := s.createPlayer("alice@example.com", "Alice")
	id := s.createLeague(owner, "Premier League")

	err := s.service.RemoveOwner(s.ctx, id, owner)
	s.ErrorIs(err, model.ErrLastOwner)

	league, _ := s.service.GetLeague(s.ctx, id)
	s.Equal([]model.PlayerID{owner}, league.OwnerIDs)
}

func (s *ServiceSuite) TestRemoveOwnerNonOwnerFails() {
	owner := s.createPlayer("alice@example.com", "Alice")
	bob := s.createPlayer("bob@example.com", "Bob")
	id := s.createLeague(owner, "Premier League")
	s.Require().NoError(s.service.Invite(s.ctx, id, "bob@example.com"))
	s.Require().NoError(s.service.AcceptInvite(s.ctx, id, bob))

	err := s.service.RemoveOwner(s.ctx, id, bob)
	s.ErrorIs(err, model.ErrNotAnOwner)
}

// Status and scheduling tests

func (s *ServiceSuite) TestStatusPendingBeforeStart() {
	owner := s.createPlayer("alice@example.com", "Alice")
	id := s.createLeague(owner, "Premier League")
	s.Require().NoError(s.service.SetStartDate(s.ctx, id, s.day(1)))

	status, err := s.service.Status(s.ctx, id)
	s.Require().NoError(err)
	s.Equal(model.StatusPending, status)
}

func (s *ServiceSuite) TestStatusInProgressFromStartDay() {
	owner := s.createPlayer("alice@example.com", "Alice")
	id := s.createLeague(owner, "Premier League")
	s.Require().NoError(s.service.SetStartDate(s.ctx, id, s.day(0)))

	status, err := s.service.Status(s.ctx, id)
	s.Require().NoError(err)
	s.Equal(model.StatusInProgress, status)
}

func (s *ServiceSuite) TestStatusInProgressOnEndDay() {
	owner := s.createPlayer("alice@example.com", "Alice")
	id := s.createLeague(owner, "Premier League")
	s.Require().NoError(s.service.SetStartDate(s.ctx, id, s.day(-5)))
	s.Require().NoError(s.service.SetEndDate(s.ctx, id, s.day(0)))

	status, err := s.service.Status(s.ctx, id)
	s.Require().NoError(err)
	s.Equal(model.StatusInProgress, status)
}

func (s *ServiceSuite) TestStatusClosedAfterEndDay() {
	owner := s.createPlayer("alice@example.com", "Alice")
	id := s.createLeague(owner, "Premier League")
	s.Require().NoError(s.service.SetStartDate(s.ctx, id, s.day(-10)))
	s.Require().NoError(s.service.SetEndDate(s.ctx, id, s.day(5)))

	s.clock.AdvanceDays(6)

	status, err := s.service.Status(s.ctx, id)
	s.Require().NoError(err)
	s.Equal(model.StatusClosed, status)
}

func (s *ServiceSuite) TestStatusStampsCloseDateOnce() {
	owner := s.createPlayer("alice@example.com", "Alice")
	id := s.createLeague(owner, "Premier League")
	s.Require().NoError(s.service.SetStartDate(s.ctx, id, s.day(-10)))
	endDay := s.day(-1)
	s.Require().NoError(s.service.SetEndDate(s.ctx, id, endDay))

	_, err := s.service.Status(s.ctx, id)
	s.Require().NoError(err)

	league, _ := s.service.GetLeague(s.ctx, id)
	s.Require().NotNil(league.CloseDate)
	s.Equal(endDay, *league.CloseDate)

	// A later observation must not restamp
	s.clock.AdvanceDays(30)
	_, err = s.service.Status(s.ctx, id)
	s.Require().NoError(err)

	league, _ = s.service.GetLeague(s.ctx, id)
	s.Equal(endDay, *league.CloseDate)
}

func (s *ServiceSuite) TestSetEndDateOnClosedLeagueFails() {
	owner := s.createPlayer("alice@example.com", "Alice")
	id := s.createLeague(owner, "Premier League")
	s.Require().NoError(s.service.SetStartDate(s.ctx, id, s.day(-10)))
	s.Require().NoError(s.service.SetEndDate(s.ctx, id, s.day(-1)))

	err := s.service.SetEndDate(s.ctx, id, s.day(30))
	s.ErrorIs(err, model.ErrLeagueClosed)

	league, _ := s.service.GetLeague(s.ctx, id)
	s.Equal(s.day(-1), *league.EndDate)
}

func (s *ServiceSuite) TestSetStartDateCanReschedule() {
	owner := s.createPlayer("alice@example.com", "Alice")
	id := s.createLeague(owner, "Premier League")
	s.Require().NoError(s.service.SetStartDate(s.ctx, id, s.day(5)))
	s.Require().NoError(s.service.SetStartDate(s.ctx, id, s.day(-1)))

	status, err := s.service.Status(s.ctx, id)
	s.Require().NoError(err)
	s.Equal(model.StatusInProgress, status)
}

func (s *ServiceSuite) TestSetEndDateCanExtendActiveLeague() {
	owner := s.createPlayer("alice@example.com", "Alice")
	id := s.createLeague(owner, "Premier League")
	s.Require().NoError(s.service.SetStartDate(s.ctx, id, s.day(-5)))
	s.Require().NoError(s.service.SetEndDate(s.ctx, id, s.day(5)))
	s.Require().NoError(s.service.SetEndDate(s.ctx, id, s.day(50)))

	s.clock.AdvanceDays(10)

	status, err := s.service.Status(s.ctx, id)
	s.Require().NoError(err)
	s.Equal(model.StatusInProgress, status)
}

// CloneLeague tests

func (s *ServiceSuite) TestCloneLeagueOwnersBecomeMembers() {
	owner := s.createPlayer("alice@example.com", "Alice")
	bob := s.createPlayer("bob@example.com", "Bob")
	carol := s.createPlayer("carol@example.com", "Carol")
	id := s.createLeague(owner, "Premier League")
	s.Require().NoError(s.service.Invite(s.ctx, id, "bob@example.com"))
	s.Require().NoError(s.service.AcceptInvite(s.ctx, id, bob))
	s.Require().NoError(s.service.Invite(s.ctx, id, "carol@example.com"))
	s.Require().NoError(s.service.AcceptInvite(s.ctx, id, carol))
	s.Require().NoError(s.service.AddOwner(s.ctx, id, bob))

	cloneID, err := s.service.CloneLeague(s.ctx, id, "Premier Season 2")
	s.Require().NoError(err)

	clone, _ := s.service.GetLeague(s.ctx, cloneID)
	s.Equal("Premier Season 2", clone.Name)
	s.Equal(model.GameTypeDiceRoll, clone.GameType)
	s.Equal([]model.PlayerID{owner, bob}, clone.OwnerIDs)
	s.Equal([]model.PlayerID{owner, bob}, clone.MemberIDs)
	// Non-owner members get invited rather than auto-joined
	s.Equal([]model.PlayerID{carol}, clone.PlayerInvites)
	s.Nil(clone.StartDate)
	s.Nil(clone.EndDate)
}

func (s *ServiceSuite) TestCloneLeagueRejectsDuplicateName() {
	owner := s.createPlayer("alice@example.com", "Alice")
	id := s.createLeague(owner, "Premier League")

	_, err := s.service.CloneLeague(s.ctx, id, "premier league")
	s.ErrorIs(err, model.ErrDuplicateLeagueName)
}

func (s *ServiceSuite) TestCloneLeagueLeavesSourceUntouched() {
	owner := s.createPlayer("alice@example.com", "Alice")
	id := s.createLeague(owner, "Premier League")
	s.Require().NoError(s.service.SetStartDate(s.ctx, id, s.day(-5)))

	_, err := s.service.CloneLeague(s.ctx, id, "Premier Season 2")
	s.Require().NoError(err)

	source, _ := s.service.GetLeague(s.ctx, id)
	s.Equal("Premier League", source.Name)
	s.NotNil(source.StartDate)
}

// Player query tests

func (s *ServiceSuite) TestPlayerLeaguesReturnsActiveMemberships() {
	owner := s.createPlayer("alice@example.com", "Alice")

	active := s.createLeague(owner, "Active")
	s.Require().NoError(s.service.SetStartDate(s.ctx, active, s.day(-1)))

	pending := s.createLeague(owner, "Pending")
	s.Require().NoError(s.service.SetStartDate(s.ctx, pending, s.day(5)))

	closed := s.createLeague(owner, "Closed")
	s.Require().NoError(s.service.SetStartDate(s.ctx, closed, s.day(-10)))
	s.Require().NoError(s.service.SetEndDate(s.ctx, closed, s.day(-1)))

	ids, err := s.service.PlayerLeagues(s.ctx, owner)
	s.Require().NoError(err)
	s.Equal([]model.LeagueID{active}, ids)
}

func (s *ServiceSuite) TestPlayerOwnedLeagues() {
	alice := s.createPlayer("alice@example.com", "Alice")
	bob := s.createPlayer("bob@example.com", "Bob")

	owned := s.createLeague(alice, "Alices League")
	s.createLeague(bob, "Bobs League")

	ids, err := s.service.PlayerOwnedLeagues(s.ctx, alice)
	s.Require().NoError(err)
	s.Equal([]model.LeagueID{owned}, ids)
}

func (s *ServiceSuite) TestPlayerInvitesIncludesEmailInvites() {
	alice := s.createPlayer("alice@example.com", "Alice")
	id := s.createLeague(alice, "Premier League")

	other := s.createLeague(alice, "Other League")
	s.Require().NoError(s.service.Invite(s.ctx, other, "bob@example.com"))

	// Bob was invited by email before registering
	bob := s.createPlayer("bob@example.com", "Bob")
	s.Require().NoError(s.service.Invite(s.ctx, id, "bob@example.com"))

	ids, err := s.service.PlayerInvites(s.ctx, bob)
	s.Require().NoError(err)
	s.Equal([]model.LeagueID{id, other}, ids)
}

func (s *ServiceSuite) TestPlayerQueriesUnknownPlayerFail() {
	_, err := s.service.PlayerLeagues(s.ctx, 99)
	s.ErrorIs(err, model.ErrPlayerNotFound)

	_, err = s.service.PlayerOwnedLeagues(s.ctx, 99)
	s.ErrorIs(err, model.ErrPlayerNotFound)

	_, err = s.service.PlayerInvites(s.ctx, 99)
	s.ErrorIs(err, model.ErrPlayerNotFound)
}
