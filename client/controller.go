// Package client mirrors the shared board locally, applies edits
// optimistically, and forwards them to the relay. There is no reconnect:
// a controller ends with its connection, and a fresh Dial performs a
// full state adoption.
package client

import (
	"context"
	"fmt"
	"log"
	"sync"

	"github.com/gorilla/websocket"

	"lousa/board"
	"lousa/ws"
)

// Handlers receive relay events. OnPlay, when set, replaces the default
// behavior of running the animation engine in the background.
type Handlers struct {
	OnState   func(board.State)
	OnTactics func([]board.Tactic)
	OnPlay    func()
}

type Controller struct {
	conn    *websocket.Conn
	writeMu sync.Mutex

	mu       sync.Mutex
	state    board.State
	tactics  []board.Tactic
	attached string

	totalFrameMode bool
	startFrame     *board.Frame
	endFrame       *board.Frame

	handlers Handlers
	done     chan struct{}
}

// Dial connects, blocks until the relay's init snapshot is adopted as
// the local mirror, then keeps the mirror live in the background.
func Dial(ctx context.Context, url string, h Handlers) (*Controller, error) {
	conn, _, err := websocket.DefaultDialer.DialContext(ctx, url, nil)
	if err != nil {
		return nil, fmt.Errorf("dial relay: %w", err)
	}

	var msg ws.ServerMessage
	if err := conn.ReadJSON(&msg); err != nil {
		conn.Close()
		return nil, fmt.Errorf("read init: %w", err)
	}
	if msg.Type != ws.MsgInit || msg.State == nil {
		conn.Close()
		return nil, fmt.Errorf("unexpected first message %q", msg.Type)
	}

	c := &Controller{
		conn:     conn,
		state:    *msg.State,
		tactics:  []board.Tactic{},
		handlers: h,
		done:     make(chan struct{}),
	}
	if msg.SavedTactics != nil {
		c.tactics = *msg.SavedTactics
	}
	c.recomputeAttachment()

	go c.readLoop()
	return c, nil
}

func (c *Controller) Close() error {
	return c.conn.Close()
}

// Done closes when the connection ends for any reason.
func (c *Controller) Done() <-chan struct{} {
	return c.done
}

func (c *Controller) readLoop() {
	defer close(c.done)
	for {
		var msg ws.ServerMessage
		if err := c.conn.ReadJSON(&msg); err != nil {
			log.Printf("relay connection closed: %v", err)
			return
		}

		switch msg.Type {
		case ws.MsgUpdate:
			if msg.State == nil {
				continue
			}
			c.adoptState(*msg.State)

		case ws.MsgTacticsUpdated:
			tactics := []board.Tactic{}
			if msg.SavedTactics != nil {
				tactics = *msg.SavedTactics
			}
			c.mu.Lock()
			c.tactics = tactics
			c.mu.Unlock()
			if c.handlers.OnTactics != nil {
				c.handlers.OnTactics(tactics)
			}

		case ws.MsgPlayAnimation:
			if c.handlers.OnPlay != nil {
				c.handlers.OnPlay()
			} else {
				go c.RunAnimation(context.Background())
			}

		default:
			log.Printf("ignoring message with unknown type %q", msg.Type)
		}
	}
}

// adoptState replaces the mirror verbatim: last message wins, in-flight
// local edits are not reconciled.
func (c *Controller) adoptState(s board.State) {
	c.mu.Lock()
	c.state = s
	c.recomputeAttachment()
	snap := board.Clone(c.state)
	c.mu.Unlock()
	c.notifyState(snap)
}

// ApplyLocalEdit merges the patch into the mirror immediately, then
// transmits the full merged result so the relay's shallow merge
// reproduces every changed key faithfully.
func (c *Controller) ApplyLocalEdit(p board.Patch) error {
	c.mu.Lock()
	c.state = board.Merge(c.state, p)
	c.recomputeAttachment()
	snap := board.Clone(c.state)
	c.mu.Unlock()

	c.notifyState(snap)
	patch := board.AsPatch(snap)
	return c.send(ws.Inbound{Type: ws.MsgUpdate, State: &patch})
}

func (c *Controller) notifyState(s board.State) {
	if c.handlers.OnState != nil {
		c.handlers.OnState(s)
	}
}

func (c *Controller) send(msg ws.Inbound) error {
	c.writeMu.Lock()
	defer c.writeMu.Unlock()
	return c.conn.WriteJSON(msg)
}

// State returns a deep copy of the local mirror.
func (c *Controller) State() board.State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return board.Clone(c.state)
}

// Tactics returns the mirrored saved-tactics list.
func (c *Controller) Tactics() []board.Tactic {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]board.Tactic, len(c.tactics))
	copy(out, c.tactics)
	return out
}
