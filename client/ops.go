package client

import (
	"fmt"
	"strings"
	"time"

	"lousa/board"
	"lousa/ws"
)

// Board conveniences layered over ApplyLocalEdit. They all transmit full
// replacements for the keys they change.

// AddPlayer appends a new player for the given team below its current
// teammates.
func (c *Controller) AddPlayer(team board.Team) error {
	c.mu.Lock()
	count := 0
	for _, p := range c.state.Players {
		if p.Team == team {
			count++
		}
	}
	x, color := 0.15, board.TeamAColor
	if team == board.TeamB {
		x, color = 0.85, board.TeamBColor
	}
	player := board.Player{
		ID:     fmt.Sprintf("%s%d", strings.ToLower(string(team)), time.Now().UnixMilli()),
		X:      x,
		Y:      0.2 + float64(count)*0.1,
		Color:  color,
		Number: fmt.Sprintf("%d", count+1),
		Team:   team,
	}
	players := append(clonedPlayers(c.state.Players), player)
	c.mu.Unlock()

	return c.ApplyLocalEdit(board.Patch{Players: &players})
}

func (c *Controller) RemovePlayer(id string) error {
	c.mu.Lock()
	players := make([]board.Player, 0, len(c.state.Players))
	for _, p := range c.state.Players {
		if p.ID != id {
			players = append(players, p)
		}
	}
	c.mu.Unlock()

	return c.ApplyLocalEdit(board.Patch{Players: &players})
}

func (c *Controller) ClearTeam(team board.Team) error {
	c.mu.Lock()
	players := make([]board.Player, 0, len(c.state.Players))
	for _, p := range c.state.Players {
		if p.Team != team {
			players = append(players, p)
		}
	}
	c.mu.Unlock()

	return c.ApplyLocalEdit(board.Patch{Players: &players})
}

// ApplyFormation replaces one team's players with the named quick
// formation, leaving the other team in place.
func (c *Controller) ApplyFormation(name string, team board.Team) error {
	formation := board.FormationPlayers(name, team)
	if formation == nil {
		return fmt.Errorf("unknown formation %q", name)
	}
	c.mu.Lock()
	players := make([]board.Player, 0, len(c.state.Players)+len(formation))
	for _, p := range c.state.Players {
		if p.Team != team {
			players = append(players, p)
		}
	}
	players = append(players, formation...)
	c.mu.Unlock()

	return c.ApplyLocalEdit(board.Patch{Players: &players})
}

// Reset pushes the default formation as a full-state edit.
func (c *Controller) Reset() error {
	return c.ApplyLocalEdit(board.AsPatch(board.DefaultState()))
}

// LoadTactic adopts a saved tactic's state as the live board.
func (c *Controller) LoadTactic(t board.Tactic) error {
	return c.ApplyLocalEdit(board.AsPatch(board.Clone(t.State)))
}

func (c *Controller) SaveTactic(name string) error {
	return c.send(ws.Inbound{Type: ws.MsgSaveTactic, Name: name})
}

func (c *Controller) DeleteTactic(id string) error {
	return c.send(ws.Inbound{Type: ws.MsgDeleteTactic, ID: id})
}

// PlayAnimation asks the relay to trigger playback everywhere, this
// client included.
func (c *Controller) PlayAnimation() error {
	return c.send(ws.Inbound{Type: ws.MsgPlayAnimation})
}

func (c *Controller) ClearDrawings() error {
	drawings := []board.Drawing{}
	return c.ApplyLocalEdit(board.Patch{Drawings: &drawings})
}

// SetTotalFrameMode toggles two-endpoint capture. Switching modes always
// clears any captured endpoints.
func (c *Controller) SetTotalFrameMode(on bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.totalFrameMode = on
	c.startFrame = nil
	c.endFrame = nil
}

// AddFrame captures the current pose. In total-frame mode the first call
// marks the start, the second the end, and nothing is transmitted; in
// sequence mode the frame is appended to the shared frames list.
func (c *Controller) AddFrame() error {
	c.mu.Lock()
	frame := board.Frame{
		Players: clonedPlayers(c.state.Players),
		Ball:    c.state.Ball,
	}
	if c.totalFrameMode {
		if c.startFrame == nil {
			c.startFrame = &frame
		} else {
			c.endFrame = &frame
		}
		c.mu.Unlock()
		return nil
	}
	frames := make([]board.Frame, 0, len(c.state.Frames)+1)
	for _, f := range c.state.Frames {
		frames = append(frames, board.CloneFrame(f))
	}
	frames = append(frames, frame)
	c.mu.Unlock()

	return c.ApplyLocalEdit(board.Patch{Frames: &frames})
}

// ClearFrames drops the shared frame sequence, any captured endpoints,
// and the animating flag.
func (c *Controller) ClearFrames() error {
	c.mu.Lock()
	c.startFrame = nil
	c.endFrame = nil
	c.mu.Unlock()

	frames := []board.Frame{}
	animating := false
	return c.ApplyLocalEdit(board.Patch{Frames: &frames, IsAnimating: &animating})
}

func clonedPlayers(players []board.Player) []board.Player {
	out := make([]board.Player, len(players))
	copy(out, players)
	return out
}
