package redis

import (
	"fmt"
	"strings"

	"github.com/gamesleague/platform/internal/model"
)

// Key prefix for all platform data
const keyPrefix = "gamesleague"

// playerKey returns the Redis key for a Player
func playerKey(id model.PlayerID) string {
	return fmt.Sprintf("%s:player:%d", keyPrefix, id)
}

// emailIndexKey returns the Redis key for the email -> player_id index
func emailIndexKey(email string) string {
	return fmt.Sprintf("%s:idx:email:%s", keyPrefix, strings.ToLower(email))
}

// playerSetKey returns the Redis key for the SET of all player ids
func playerSetKey() string {
	return fmt.Sprintf("%s:players", keyPrefix)
}

// playerCounterKey returns the Redis key for the player id counter
func playerCounterKey() string {
	return fmt.Sprintf("%s:next:player_id", keyPrefix)
}

// leagueKey returns the Redis key for a League
func leagueKey(id model.LeagueID) string {
	return fmt.Sprintf("%s:league:%d", keyPrefix, id)
}

// leagueNameIndexKey returns the Redis key for the name -> league_id index
func leagueNameIndexKey(name string) string {
	return fmt.Sprintf("%s:idx:league_name:%s", keyPrefix, strings.ToLower(name))
}

// leagueSetKey returns the Redis key for the SET of all league ids
func leagueSetKey() string {
	return fmt.Sprintf("%s:leagues", keyPrefix)
}

// leagueCounterKey returns the Redis key for the league id counter
func leagueCounterKey() string {
	return fmt.Sprintf("%s:next:league_id", keyPrefix)
}
