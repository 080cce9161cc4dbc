package model

// LeagueID uniquely identifies a league.
// IDs are allocated from a durable monotonic counter and never reused.
type LeagueID int

// GameType is the game variant a league is played with.
// Immutable after league creation.
type GameType string

const (
	GameTypeDiceRoll   GameType = "DICEROLL"
	GameTypeWordMaster GameType = "WORDMASTER"
)

// Valid reports whether the game type is one of the supported variants
func (g GameType) Valid() bool {
	switch g {
	case GameTypeDiceRoll, GameTypeWordMaster:
		return true
	}
	return false
}

// Status is the lifecycle state of a league, derived from its dates
type Status string

const (
	StatusPending    Status = "PENDING"     // not yet started
	StatusInProgress Status = "IN_PROGRESS" // league is active
	StatusClosed     Status = "CLOSED"      // end date has passed
)

// League represents a group of players competing at a single game type.
//
// MemberIDs is ordered: the founding owner first, then players in the
// order they accepted their invitations. OwnerIDs is a subset of
// MemberIDs and is never empty.
type League struct {
	ID            LeagueID
	Name          string // 1-20 chars, trimmed, unique case-insensitively
	GameType      GameType
	OwnerIDs      []PlayerID
	MemberIDs     []PlayerID
	EmailInvites  []string // pending invites for unregistered players, lowercased
	PlayerInvites []PlayerID
	StartDate     *EpochDay // nil means not yet scheduled
	EndDate       *EpochDay
	CloseDate     *EpochDay // stamped once, the first time CLOSED is observed
}

// IsMember reports whether the player has joined the league
func (l *League) IsMember(id PlayerID) bool {
	for _, m := range l.MemberIDs {
		if m == id {
			return true
		}
	}
	return false
}

// IsOwner reports whether the player is an owner of the league
func (l *League) IsOwner(id PlayerID) bool {
	for _, o := range l.OwnerIDs {
		if o == id {
			return true
		}
	}
	return false
}

// HasPlayerInvite reports whether the player has a pending id-based invite
func (l *League) HasPlayerInvite(id PlayerID) bool {
	for _, p := range l.PlayerInvites {
		if p == id {
			return true
		}
	}
	return false
}

// HasEmailInvite reports whether the (lowercased) email has a pending invite
func (l *League) HasEmailInvite(email string) bool {
	for _, e := range l.EmailInvites {
		if e == email {
			return true
		}
	}
	return false
}

// StatusOn derives the league status for the given day.
//
// The boundaries favour activity: a league starting today is already
// IN_PROGRESS, and a league ending today is still IN_PROGRESS.
func (l *League) StatusOn(today EpochDay) Status {
	if l.StartDate == nil || *l.StartDate > today {
		return StatusPending
	}
	if l.EndDate == nil || *l.EndDate >= today {
		return StatusInProgress
	}
	return StatusClosed
}
