package realtime

import (
	"log"
	"net/http"

	"github.com/gorilla/websocket"
	"github.com/julienschmidt/httprouter"
)

var upgrader = websocket.Upgrader{CheckOrigin: func(r *http.Request) bool { return true }}

// ViewerHandler attaches one browser to a conversation room. Closing the
// page closes the socket, which unregisters the viewer; when the last
// viewer leaves, the upstream drops the room subscription.
func ViewerHandler(hub *Hub) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
		room := ps.ByName("id")
		if room == "" {
			http.Error(w, "missing conversation id", http.StatusBadRequest)
			return
		}

		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			log.Println("viewer upgrade:", err)
			return
		}

		v := &Viewer{
			Conn: conn,
			Send: make(chan []byte, 256),
			Room: room,
		}

		if !hub.Register(v) {
			conn.Close()
			return
		}
		go writePump(v)
		go readPump(v, hub)
	}
}

func writePump(v *Viewer) {
	defer v.Conn.Close()
	for msg := range v.Send {
		if err := v.Conn.WriteMessage(websocket.TextMessage, msg); err != nil {
			break
		}
	}
}

// readPump only watches for the close; viewers never send anything, all
// writes go through the REST endpoints.
func readPump(v *Viewer, hub *Hub) {
	defer func() {
		hub.Unregister(v)
		v.Conn.Close()
	}()
	for {
		if _, _, err := v.Conn.ReadMessage(); err != nil {
			break
		}
	}
}
