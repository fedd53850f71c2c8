package realtime

import (
	"encoding/json"
	"log"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

// Event is one frame on the push channel. Outbound frames carry only the
// event name and conversation id; inbound new_message frames also carry the
// full message object as the backend stored it.
type Event struct {
	Event          string          `json:"event"`
	ConversationID string          `json:"conversationId"`
	Message        json.RawMessage `json:"message,omitempty"`
}

const (
	evJoin       = "join_chat"
	evLeave      = "leave_chat"
	evNewMessage = "new_message"
)

// Upstream owns the single long-lived connection to the push server.
// Navigating between conversations subscribes and unsubscribes rooms on
// this one connection instead of opening a socket per view.
type Upstream struct {
	url string
	hub *Hub

	mu    sync.Mutex
	conn  *websocket.Conn
	rooms map[string]bool

	stop chan struct{}
}

func NewUpstream(url string, hub *Hub) *Upstream {
	u := &Upstream{
		url:   url,
		hub:   hub,
		rooms: make(map[string]bool),
		stop:  make(chan struct{}),
	}
	hub.RoomJoined = u.Join
	hub.RoomLeft = u.Leave
	return u
}

// Run dials the push server and keeps the connection alive, reconnecting
// with capped backoff and rejoining every active room after a drop.
func (u *Upstream) Run() {
	backoff := time.Second
	for {
		select {
		case <-u.stop:
			return
		default:
		}

		conn, _, err := websocket.DefaultDialer.Dial(u.url, nil)
		if err != nil {
			log.Println("push dial:", err)
			select {
			case <-u.stop:
				return
			case <-time.After(backoff):
			}
			if backoff *= 2; backoff > 30*time.Second {
				backoff = 30 * time.Second
			}
			continue
		}
		backoff = time.Second

		u.mu.Lock()
		u.conn = conn
		rooms := make([]string, 0, len(u.rooms))
		for room := range u.rooms {
			rooms = append(rooms, room)
		}
		u.mu.Unlock()

		for _, room := range rooms {
			u.write(Event{Event: evJoin, ConversationID: room})
		}

		u.readLoop(conn)

		u.mu.Lock()
		u.conn = nil
		u.mu.Unlock()
		conn.Close()
	}
}

func (u *Upstream) Stop() {
	close(u.stop)
	u.mu.Lock()
	if u.conn != nil {
		u.conn.Close()
	}
	u.mu.Unlock()
}

func (u *Upstream) readLoop(conn *websocket.Conn) {
	for {
		_, raw, err := conn.ReadMessage()
		if err != nil {
			select {
			case <-u.stop:
			default:
				log.Println("push read:", err)
			}
			return
		}

		var ev Event
		if err := json.Unmarshal(raw, &ev); err != nil {
			log.Println("push decode:", err)
			continue
		}
		if ev.Event != evNewMessage || ev.ConversationID == "" {
			continue
		}

		var msg struct {
			ID string `json:"id"`
		}
		_ = json.Unmarshal(ev.Message, &msg)
		u.hub.Deliver(ev.ConversationID, msg.ID, ev.Message)
	}
}

// Join subscribes the room on the live connection; if the connection is
// down the room is rejoined on the next successful dial.
func (u *Upstream) Join(room string) {
	u.mu.Lock()
	u.rooms[room] = true
	u.mu.Unlock()
	u.write(Event{Event: evJoin, ConversationID: room})
}

func (u *Upstream) Leave(room string) {
	u.mu.Lock()
	delete(u.rooms, room)
	u.mu.Unlock()
	u.write(Event{Event: evLeave, ConversationID: room})
}

func (u *Upstream) write(ev Event) {
	u.mu.Lock()
	defer u.mu.Unlock()
	if u.conn == nil {
		return
	}
	if err := u.conn.WriteJSON(ev); err != nil {
		log.Println("push write:", err)
	}
}
