// Package anim plays frame sequences locally. Only the start trigger
// travels over the wire; every client runs the same deterministic math
// over the same synced frames, which is what keeps peers visually
// consistent.
package anim

import (
	"math"
	"time"

	"lousa/board"
)

const (
	// SegmentDuration is the interpolation window between two
	// consecutive frames.
	SegmentDuration = 1200 * time.Millisecond
	// SegmentPause is the hold between completed segments.
	SegmentPause = 100 * time.Millisecond
	// TotalModeSteps is how many interpolation steps the two-endpoint
	// "total frame" mode expands into.
	TotalModeSteps = 30

	// The ball reaches its target earlier than the players.
	ballTimeFactor = 1.2
	scalePulse     = 0.1
)

// Pose is the rendered board at one instant of playback.
type Pose struct {
	Players []board.Player
	Ball    board.Ball
}

func EaseInOutCubic(t float64) float64 {
	if t < 0.5 {
		return 4 * t * t * t
	}
	return 1 - math.Pow(-2*t+2, 3)/2
}

func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

func clamp01(t float64) float64 {
	if t < 0 {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t
}

// Interpolate computes the pose at normalized time t of the segment from
// one frame to the next. Players ease with a cubic curve plus a small
// sinusoidal scale pulse; the ball runs a time-compressed version of the
// same curve. Players missing from the target frame stay put. When
// attachedID names a player, the ball tracks that player's interpolated
// position and the frames' own ball data is ignored.
func Interpolate(from, to board.Frame, t float64, attachedID string) Pose {
	t = clamp01(t)
	progress := EaseInOutCubic(t)

	players := make([]board.Player, len(from.Players))
	for i, start := range from.Players {
		end, ok := findPlayer(to.Players, start.ID)
		if !ok {
			players[i] = start
			continue
		}
		p := start
		p.X = lerp(start.X, end.X, progress)
		p.Y = lerp(start.Y, end.Y, progress)
		p.Scale = 1 + math.Sin(progress*math.Pi)*scalePulse
		players[i] = p
	}

	ball := board.Ball{}
	if attached, ok := findInPose(players, attachedID); ok {
		ball.X = attached.X
		ball.Y = attached.Y
	} else {
		ballProgress := EaseInOutCubic(math.Min(t*ballTimeFactor, 1))
		ball.X = lerp(from.Ball.X, to.Ball.X, ballProgress)
		ball.Y = lerp(from.Ball.Y, to.Ball.Y, ballProgress)
	}

	return Pose{Players: players, Ball: ball}
}

// ExpandTotal turns the two endpoint frames of total-frame mode into the
// full playback sequence: steps+1 linearly interpolated frames with the
// scale pulse baked in.
func ExpandTotal(start, end board.Frame, steps int) []board.Frame {
	if steps < 1 {
		steps = 1
	}
	frames := make([]board.Frame, 0, steps+1)
	for i := 0; i <= steps; i++ {
		progress := float64(i) / float64(steps)
		players := make([]board.Player, len(start.Players))
		for j, sp := range start.Players {
			ep, ok := findPlayer(end.Players, sp.ID)
			if !ok {
				players[j] = sp
				continue
			}
			p := sp
			p.X = lerp(sp.X, ep.X, progress)
			p.Y = lerp(sp.Y, ep.Y, progress)
			p.Scale = 1 + math.Sin(progress*math.Pi)*scalePulse
			players[j] = p
		}
		frames = append(frames, board.Frame{
			Players: players,
			Ball: board.Ball{
				X: lerp(start.Ball.X, end.Ball.X, progress),
				Y: lerp(start.Ball.Y, end.Ball.Y, progress),
			},
		})
	}
	return frames
}

func findPlayer(players []board.Player, id string) (board.Player, bool) {
	for _, p := range players {
		if p.ID == id {
			return p, true
		}
	}
	return board.Player{}, false
}

func findInPose(players []board.Player, id string) (board.Player, bool) {
	if id == "" {
		return board.Player{}, false
	}
	return findPlayer(players, id)
}
