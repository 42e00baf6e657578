package client

import (
	"math"

	"lousa/board"
)

// AttachThreshold is the normalized distance inside which the ball
// snaps to the nearest player. Every client must use the same value and
// formula, since attachment is derived locally and never transmitted.
const AttachThreshold = 0.05

// nearestPlayer returns the closest player to the ball by Euclidean
// distance in normalized space. Strict less-than keeps the first of two
// exactly equidistant players.
func nearestPlayer(players []board.Player, ball board.Ball) (string, float64) {
	bestID := ""
	bestDist := math.Inf(1)
	for _, p := range players {
		d := math.Hypot(p.X-ball.X, p.Y-ball.Y)
		if d < bestDist {
			bestID = p.ID
			bestDist = d
		}
	}
	return bestID, bestDist
}

// recomputeAttachment refreshes the derived attachment from the current
// mirror. Caller holds c.mu. During playback the attachment is frozen so
// the animation keeps overriding the ball consistently.
func (c *Controller) recomputeAttachment() {
	if c.state.IsAnimating {
		return
	}
	id, dist := nearestPlayer(c.state.Players, c.state.Ball)
	if dist < AttachThreshold {
		c.attached = id
	} else {
		c.attached = ""
	}
}

// AttachedPlayerID reports which player currently carries the ball, or
// "" when detached.
func (c *Controller) AttachedPlayerID() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.attached
}

// AttachBall pins the ball to a player manually. Unknown ids fall back
// to detached.
func (c *Controller) AttachBall(playerID string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := findByID(c.state.Players, playerID); ok {
		c.attached = playerID
	} else {
		c.attached = ""
	}
}

// DetachBall clears a manual attachment.
func (c *Controller) DetachBall() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.attached = ""
}

func findByID(players []board.Player, id string) (board.Player, bool) {
	for _, p := range players {
		if p.ID == id {
			return p, true
		}
	}
	return board.Player{}, false
}
