package ws

import (
	"encoding/json"
	"log"

	"lousa/board"
)

// Hub is the connection registry and relay dispatcher. A single Run
// goroutine consumes every channel, so board mutation is single-writer
// and each inbound message is handled atomically with respect to the
// others.
type Hub struct {
	store      *board.Store
	clients    map[*Client]bool
	register   chan *Client
	unregister chan *Client
	inbound    chan frame
}

// frame pairs a raw inbound payload with its sender, so update fan-out
// can exclude the originating connection.
type frame struct {
	sender *Client
	data   []byte
}

func NewHub(store *board.Store) *Hub {
	return &Hub{
		store:      store,
		clients:    make(map[*Client]bool),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		inbound:    make(chan frame, 256),
	}
}

func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.clients[client] = true
			log.Printf("client %s connected (%d online)", client.ID, len(h.clients))
			h.sendTo(client, InitMessage{
				Type:         MsgInit,
				State:        h.store.Snapshot(),
				SavedTactics: h.store.Tactics(),
			})

		case client := <-h.unregister:
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.send)
				log.Printf("client %s disconnected (%d online)", client.ID, len(h.clients))
			}

		case f := <-h.inbound:
			h.dispatch(f)
		}
	}
}

// dispatch interprets one inbound message. Malformed payloads and
// unknown types are logged and dropped; state stays untouched and no
// other connection is affected.
func (h *Hub) dispatch(f frame) {
	var msg Inbound
	if err := json.Unmarshal(f.data, &msg); err != nil {
		log.Printf("client %s: dropping unparseable message: %v", f.sender.ID, err)
		return
	}

	switch msg.Type {
	case MsgUpdate:
		var patch board.Patch
		if msg.State != nil {
			patch = *msg.State
		}
		newState := h.store.ApplyPatch(patch)
		// The sender already applied this patch locally, so it is the
		// one connection that does not need the result echoed back.
		h.broadcastExcept(f.sender, UpdateMessage{Type: MsgUpdate, State: newState})

	case MsgSaveTactic:
		h.store.SaveTactic(msg.Name)
		h.broadcastAll(TacticsMessage{Type: MsgTacticsUpdated, SavedTactics: h.store.Tactics()})

	case MsgDeleteTactic:
		h.store.DeleteTactic(msg.ID)
		h.broadcastAll(TacticsMessage{Type: MsgTacticsUpdated, SavedTactics: h.store.Tactics()})

	case MsgPlayAnimation:
		h.broadcastAll(PlayMessage{Type: MsgPlayAnimation})

	default:
		log.Printf("client %s: dropping message with unknown type %q", f.sender.ID, msg.Type)
	}
}

func (h *Hub) broadcastAll(payload any) {
	h.broadcastExcept(nil, payload)
}

func (h *Hub) broadcastExcept(exclude *Client, payload any) {
	data, err := json.Marshal(payload)
	if err != nil {
		log.Printf("marshal broadcast: %v", err)
		return
	}
	for client := range h.clients {
		if client == exclude {
			continue
		}
		select {
		case client.send <- data:
		default:
			// A full buffer means the writer is gone or wedged; drop the
			// client rather than stall everyone else.
			log.Printf("dropping unresponsive client %s", client.ID)
			delete(h.clients, client)
			close(client.send)
		}
	}
}

func (h *Hub) sendTo(client *Client, payload any) {
	data, err := json.Marshal(payload)
	if err != nil {
		log.Printf("marshal send: %v", err)
		return
	}
	select {
	case client.send <- data:
	default:
		log.Printf("dropping unresponsive client %s", client.ID)
		delete(h.clients, client)
		close(client.send)
	}
}
