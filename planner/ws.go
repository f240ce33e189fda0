package planner

import (
	"encoding/json"
	"log"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"
	"github.com/julienschmidt/httprouter"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		// Allow all origins — adjust for production if needed
		return true
	},
}

var (
	subscribers = make(map[string][]*websocket.Conn)
	subMu       sync.Mutex
)

// HandleWS streams session state transitions to the client. Every phase
// change pushes the full session view as one JSON text message.
func HandleWS(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	sessionID := ps.ByName("id")

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		http.Error(w, "WebSocket upgrade failed", http.StatusBadRequest)
		return
	}

	subMu.Lock()
	subscribers[sessionID] = append(subscribers[sessionID], conn)
	subMu.Unlock()

	for {
		// Keeps the connection alive until the client disconnects
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}

	subMu.Lock()
	conns := subscribers[sessionID]
	newList := make([]*websocket.Conn, 0, len(conns))
	for _, c := range conns {
		if c != conn {
			newList = append(newList, c)
		}
	}
	subscribers[sessionID] = newList
	subMu.Unlock()

	conn.Close()
}

// Broadcast pushes one session view to every subscriber of that session.
func Broadcast(view SessionView) {
	data, err := json.Marshal(view)
	if err != nil {
		log.Println("session broadcast marshal error:", err)
		return
	}

	subMu.Lock()
	defer subMu.Unlock()

	conns := subscribers[view.ID]
	newList := conns[:0]
	for _, conn := range conns {
		if err := conn.WriteMessage(websocket.TextMessage, data); err == nil {
			newList = append(newList, conn)
		} else {
			conn.Close()
		}
	}
	subscribers[view.ID] = newList
}
