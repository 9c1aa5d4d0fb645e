// Package navigation carries "which screen, which player" between views as a
// plain value instead of shared state.
package navigation

import "github.com/omarshaarawi/squadbot/internal/models"

type Screen string

const (
	ScreenRoster    Screen = "roster"
	ScreenPlayer    Screen = "player"
	ScreenAnalytics Screen = "analytics"
)

type Route struct {
	Screen   Screen `json:"screen"`
	PlayerID string `json:"playerId,omitempty"`
}

func Roster() Route {
	return Route{Screen: ScreenRoster}
}

func Analytics() Route {
	return Route{Screen: ScreenAnalytics}
}

// ViewPlayer hands a player over to the detail screen.
func ViewPlayer(id string) Route {
	return Route{Screen: ScreenPlayer, PlayerID: id}
}

// Resolve picks the player the detail screen should show: the routed player
// when it still exists, otherwise the first roster member.
func Resolve(r Route, players []models.Player) (models.Player, bool) {
	if r.PlayerID != "" {
		for _, p := range players {
			if p.ID == r.PlayerID {
				return p, true
			}
		}
	}
	if len(players) == 0 {
		return models.Player{}, false
	}
	return players[0], true
}
