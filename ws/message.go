package ws

import (
	"lousa/board"
)

const (
	MsgInit           = "init"
	MsgUpdate         = "update"
	MsgSaveTactic     = "save_tactic"
	MsgDeleteTactic   = "delete_tactic"
	MsgPlayAnimation  = "play_animation"
	MsgTacticsUpdated = "tactics_updated"
)

// Inbound is a client-to-relay message. Type selects the variant; only
// the fields of that variant are read, everything else is ignored.
type Inbound struct {
	Type  string       `json:"type"`
	State *board.Patch `json:"state,omitempty"`
	Name  string       `json:"name,omitempty"`
	ID    string       `json:"id,omitempty"`
}

// Relay-to-client payloads. init and tactics_updated always carry the
// savedTactics array, even when empty, so they get their own shapes
// instead of omitempty fields.

type InitMessage struct {
	Type         string         `json:"type"`
	State        board.State    `json:"state"`
	SavedTactics []board.Tactic `json:"savedTactics"`
}

type UpdateMessage struct {
	Type  string      `json:"type"`
	State board.State `json:"state"`
}

type TacticsMessage struct {
	Type         string         `json:"type"`
	SavedTactics []board.Tactic `json:"savedTactics"`
}

type PlayMessage struct {
	Type string `json:"type"`
}

// ServerMessage is the client-side decode shape covering every outbound
// variant.
type ServerMessage struct {
	Type         string          `json:"type"`
	State        *board.State    `json:"state,omitempty"`
	SavedTactics *[]board.Tactic `json:"savedTactics,omitempty"`
}
