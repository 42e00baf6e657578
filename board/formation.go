package board

import "fmt"

// FormationSlot is one position of a quick formation, laid out for team A
// (left side). Team B gets the x-mirrored layout.
type FormationSlot struct {
	Number string
	X      float64
	Y      float64
}

// Quick formations by name, matching the board's sidebar presets.
var Formations = map[string][]FormationSlot{
	"2-2": {
		{Number: "GK", X: 0.05, Y: 0.5},
		{Number: "2", X: 0.25, Y: 0.3},
		{Number: "3", X: 0.25, Y: 0.7},
		{Number: "4", X: 0.55, Y: 0.3},
		{Number: "5", X: 0.55, Y: 0.7},
	},
	"3-1": {
		{Number: "GK", X: 0.05, Y: 0.5},
		{Number: "2", X: 0.2, Y: 0.5},
		{Number: "3", X: 0.4, Y: 0.2},
		{Number: "4", X: 0.4, Y: 0.8},
		{Number: "5", X: 0.7, Y: 0.5},
	},
	"4-0": {
		{Number: "GK", X: 0.05, Y: 0.5},
		{Number: "2", X: 0.4, Y: 0.15},
		{Number: "3", X: 0.4, Y: 0.38},
		{Number: "4", X: 0.4, Y: 0.62},
		{Number: "5", X: 0.4, Y: 0.85},
	},
}

// FormationPlayers builds the player set for one team in the named
// formation. Unknown names return nil.
func FormationPlayers(name string, team Team) []Player {
	slots, ok := Formations[name]
	if !ok {
		return nil
	}
	color := TeamAColor
	prefix := "a"
	if team == TeamB {
		color = TeamBColor
		prefix = "b"
	}
	players := make([]Player, len(slots))
	for i, slot := range slots {
		x := slot.X
		if team == TeamB {
			x = 1 - x
		}
		players[i] = Player{
			ID:     fmt.Sprintf("%s%d", prefix, i+1),
			Team:   team,
			Color:  color,
			Number: slot.Number,
			X:      x,
			Y:      slot.Y,
		}
	}
	return players
}
