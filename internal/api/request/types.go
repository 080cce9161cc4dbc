package request

// CreatePlayerRequest is the request body for registering a player
type CreatePlayerRequest struct {
	Email       string `json:"email"`
	DisplayName string `json:"display_name"`
	Name        string `json:"name"`
	Phone       string `json:"phone,omitempty"`
}

// UpdateDisplayNameRequest is the request body for renaming a player
type UpdateDisplayNameRequest struct {
	DisplayName string `json:"display_name"`
}

// CreateLeagueRequest is the request body for creating a league
type CreateLeagueRequest struct {
	OwnerID  int    `json:"owner_id"`
	Name     string `json:"name"`
	GameType string `json:"game_type"`
}

// UpdateLeagueNameRequest is the request body for renaming a league
type UpdateLeagueNameRequest struct {
	Name string `json:"name"`
}

// CloneLeagueRequest is the request body for cloning a league
type CloneLeagueRequest struct {
	Name string `json:"name"`
}

// InviteRequest is the request body for inviting or uninviting by email
type InviteRequest struct {
	Email string `json:"email"`
}

// AcceptInviteRequest is the request body for accepting an invite
type AcceptInviteRequest struct {
	PlayerID int `json:"player_id"`
}

// AddOwnerRequest is the request body for promoting a member to owner
type AddOwnerRequest struct {
	PlayerID int `json:"player_id"`
}

// SetDateRequest is the request body for scheduling start and end dates.
// Day is an epoch-day integer.
type SetDateRequest struct {
	Day int `json:"day"`
}
