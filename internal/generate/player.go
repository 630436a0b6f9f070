package generate

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"
)

// ErrInvalidPlayerFile is returned when a player file lacks a name or game.
var ErrInvalidPlayerFile = errors.New("invalid player file")

// LoadPlayer reads a player settings file. The file names the player and the
// game, and holds the option values in a block keyed by the game:
//
//	name: Spyro
//	game: Skylanders Swap Force
//	Skylanders Swap Force:
//	  linear_mode: false
//	  chapters_to_beat: 10
func LoadPlayer(path string) (PlayerSettings, error) {
	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return PlayerSettings{}, fmt.Errorf("failed to read player file %s: %w", path, err)
	}

	p := PlayerSettings{
		Name: v.GetString("name"),
		Game: v.GetString("game"),
	}
	if p.Name == "" {
		return PlayerSettings{}, fmt.Errorf("%w: %s has no name", ErrInvalidPlayerFile, path)
	}
	if p.Game == "" {
		return PlayerSettings{}, fmt.Errorf("%w: %s has no game", ErrInvalidPlayerFile, path)
	}
	p.Options = v.GetStringMap(p.Game)
	return p, nil
}

// LoadPlayers reads each player file in order.
func LoadPlayers(paths ...string) ([]PlayerSettings, error) {
	players := make([]PlayerSettings, 0, len(paths))
	for _, path := range paths {
		p, err := LoadPlayer(path)
		if err != nil {
			return nil, err
		}
		players = append(players, p)
	}
	return players, nil
}
