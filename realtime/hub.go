// Package realtime bridges the backend's push channel to browser viewers.
// One upstream connection is shared by the whole process; the hub fans
// pushed messages out to every open conversation view, deduplicating by
// message id so a message that arrives twice is delivered once.
package realtime

import (
	"sync"

	"github.com/gorilla/websocket"
)

// seenCap bounds the per-room dedup window.
const seenCap = 256

type Viewer struct {
	Conn *websocket.Conn
	Send chan []byte
	Room string
}

type push struct {
	room string
	id   string
	data []byte
}

type Hub struct {
	mu         sync.Mutex
	rooms      map[string]map[*Viewer]bool
	seen       map[string]*seenWindow
	register   chan *Viewer
	unregister chan *Viewer
	deliver    chan push
	stop       chan struct{}

	// RoomJoined fires when a room gains its first viewer, RoomLeft when it
	// loses its last one. The upstream uses these to join and leave rooms.
	RoomJoined func(room string)
	RoomLeft   func(room string)
}

func NewHub() *Hub {
	return &Hub{
		rooms:      make(map[string]map[*Viewer]bool),
		seen:       make(map[string]*seenWindow),
		register:   make(chan *Viewer),
		unregister: make(chan *Viewer),
		deliver:    make(chan push, 64),
		stop:       make(chan struct{}),
	}
}

func (h *Hub) Run() {
	for {
		select {
		case v := <-h.register:
			h.mu.Lock()
			first := h.rooms[v.Room] == nil || len(h.rooms[v.Room]) == 0
			if h.rooms[v.Room] == nil {
				h.rooms[v.Room] = make(map[*Viewer]bool)
			}
			h.rooms[v.Room][v] = true
			h.mu.Unlock()
			if first && h.RoomJoined != nil {
				h.RoomJoined(v.Room)
			}

		case v := <-h.unregister:
			h.mu.Lock()
			last := false
			if conns := h.rooms[v.Room]; conns != nil {
				if conns[v] {
					delete(conns, v)
					close(v.Send)
				}
				if len(conns) == 0 {
					delete(h.rooms, v.Room)
					delete(h.seen, v.Room)
					last = true
				}
			}
			h.mu.Unlock()
			if last && h.RoomLeft != nil {
				h.RoomLeft(v.Room)
			}

		case m := <-h.deliver:
			h.mu.Lock()
			if m.id != "" && !h.remember(m.room, m.id, m.data) {
				h.mu.Unlock()
				continue // duplicate push, already delivered
			}
			for v := range h.rooms[m.room] {
				select {
				case v.Send <- m.data:
				default:
					close(v.Send)
					delete(h.rooms[m.room], v)
				}
			}
			h.mu.Unlock()

		case <-h.stop:
			h.mu.Lock()
			for room, conns := range h.rooms {
				for v := range conns {
					close(v.Send)
				}
				delete(h.rooms, room)
			}
			h.mu.Unlock()
			return
		}
	}
}

func (h *Hub) Stop() {
	close(h.stop)
}

// Register attaches a viewer to its room. Returns false when the hub has
// stopped, so a viewer arriving mid-shutdown fails fast instead of
// blocking on a loop that is gone.
func (h *Hub) Register(v *Viewer) bool {
	select {
	case h.register <- v:
		return true
	case <-h.stop:
		return false
	}
}

// Unregister detaches a viewer. A no-op after Stop; the stop case already
// closed every send channel.
func (h *Hub) Unregister(v *Viewer) {
	select {
	case h.unregister <- v:
	case <-h.stop:
	}
}

// Deliver hands a pushed message to every viewer of the room. The id is
// used for deduplication; pass "" to skip it.
func (h *Hub) Deliver(room, id string, data []byte) {
	select {
	case h.deliver <- push{room: room, id: id, data: data}:
	case <-h.stop:
	}
}

// Recent returns the frames still in the room's dedup window, oldest
// first. The conversation page merges these into the fetched history so a
// message that raced the history fetch is not shown twice.
func (h *Hub) Recent(room string) [][]byte {
	h.mu.Lock()
	defer h.mu.Unlock()
	if w := h.seen[room]; w != nil {
		return w.recent()
	}
	return nil
}

// Rooms snapshots the rooms that currently have viewers.
func (h *Hub) Rooms() []string {
	h.mu.Lock()
	defer h.mu.Unlock()
	out := make([]string, 0, len(h.rooms))
	for room := range h.rooms {
		out = append(out, room)
	}
	return out
}

// remember records a message id and its frame for the room. Returns false
// if the id was already in the window. Caller holds h.mu.
func (h *Hub) remember(room, id string, data []byte) bool {
	w := h.seen[room]
	if w == nil {
		w = newSeenWindow()
		h.seen[room] = w
	}
	return w.remember(id, data)
}

type seenWindow struct {
	frames map[string][]byte
	order  []string
}

func newSeenWindow() *seenWindow {
	return &seenWindow{frames: make(map[string][]byte)}
}

func (w *seenWindow) remember(id string, data []byte) bool {
	if _, ok := w.frames[id]; ok {
		return false
	}
	w.frames[id] = data
	w.order = append(w.order, id)
	if len(w.order) > seenCap {
		delete(w.frames, w.order[0])
		w.order = w.order[1:]
	}
	return true
}

func (w *seenWindow) recent() [][]byte {
	out := make([][]byte, 0, len(w.order))
	for _, id := range w.order {
		out = append(out, w.frames[id])
	}
	return out
}
