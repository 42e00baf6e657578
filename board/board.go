package board

// Team identifies which side a player belongs to.
type Team string

const (
	TeamA Team = "A"
	TeamB Team = "B"
)

const (
	TeamAColor = "#3b82f6"
	TeamBColor = "#ef4444"
)

type Player struct {
	ID     string  `json:"id"`
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Color  string  `json:"color"`
	Number string  `json:"number"`
	Team   Team    `json:"team"`
	Scale  float64 `json:"scale,omitempty"`
}

type Ball struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Drawing is a freehand stroke. Points is a flat x,y pair sequence in
// pixel space, so strokes are viewport-dependent.
type Drawing struct {
	ID     string    `json:"id"`
	Points []float64 `json:"points"`
	Color  string    `json:"color"`
}

// Frame is a snapshot of player and ball positions used as an animation
// keyframe. It is deep-copied at capture time and never tracks the live
// board afterwards.
type Frame struct {
	Players []Player `json:"players"`
	Ball    Ball     `json:"ball"`
}

// State is the shared board. Coordinates for players and the ball are
// normalized to [0,1] by convention only; out-of-range values are kept
// as-is and simply render off-court.
type State struct {
	Players     []Player  `json:"players"`
	Ball        Ball      `json:"ball"`
	Drawings    []Drawing `json:"drawings"`
	Frames      []Frame   `json:"frames"`
	IsAnimating bool      `json:"isAnimating"`
}

// DefaultState returns the initial 10-player formation: five blue players
// on the left, five red on the right, ball at center court.
func DefaultState() State {
	return State{
		Players: []Player{
			{ID: "a1", X: 0.1, Y: 0.5, Color: TeamAColor, Number: "1", Team: TeamA},
			{ID: "a2", X: 0.25, Y: 0.2, Color: TeamAColor, Number: "2", Team: TeamA},
			{ID: "a3", X: 0.25, Y: 0.8, Color: TeamAColor, Number: "3", Team: TeamA},
			{ID: "a4", X: 0.4, Y: 0.5, Color: TeamAColor, Number: "4", Team: TeamA},
			{ID: "a5", X: 0.05, Y: 0.5, Color: TeamAColor, Number: "GK", Team: TeamA},
			{ID: "b1", X: 0.9, Y: 0.5, Color: TeamBColor, Number: "1", Team: TeamB},
			{ID: "b2", X: 0.75, Y: 0.2, Color: TeamBColor, Number: "2", Team: TeamB},
			{ID: "b3", X: 0.75, Y: 0.8, Color: TeamBColor, Number: "3", Team: TeamB},
			{ID: "b4", X: 0.6, Y: 0.5, Color: TeamBColor, Number: "4", Team: TeamB},
			{ID: "b5", X: 0.95, Y: 0.5, Color: TeamBColor, Number: "GK", Team: TeamB},
		},
		Ball:     Ball{X: 0.5, Y: 0.5},
		Drawings: []Drawing{},
		Frames:   []Frame{},
	}
}

// Clone deep-copies a state so the caller can mutate the result freely.
func Clone(s State) State {
	out := s
	out.Players = clonePlayers(s.Players)
	out.Drawings = make([]Drawing, len(s.Drawings))
	for i, d := range s.Drawings {
		cp := d
		cp.Points = append([]float64(nil), d.Points...)
		out.Drawings[i] = cp
	}
	out.Frames = make([]Frame, len(s.Frames))
	for i, f := range s.Frames {
		out.Frames[i] = CloneFrame(f)
	}
	return out
}

func CloneFrame(f Frame) Frame {
	return Frame{
		Players: clonePlayers(f.Players),
		Ball:    f.Ball,
	}
}

func clonePlayers(players []Player) []Player {
	out := make([]Player, len(players))
	copy(out, players)
	return out
}
