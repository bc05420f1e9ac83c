package booking

import (
	"encoding/json"
	"log"
	"net/http"
	"sync"

	"voyago/middleware"
	"voyago/models"

	"github.com/gorilla/websocket"
	"github.com/julienschmidt/httprouter"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

var (
	subscribers = make(map[string][]*websocket.Conn)
	mu          sync.Mutex
)

type statusEvent struct {
	BookingID string               `json:"bookingId"`
	Status    models.BookingStatus `json:"status"`
	TourDate  string               `json:"tourDate,omitempty"`
}

// HandleUpdates streams booking status changes for the caller's own email.
// Both tourists and guides subscribe under their email key.
func HandleUpdates(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	claims := middleware.ClaimsFromContext(r.Context())
	if claims == nil {
		http.Error(w, "unauthorized access", http.StatusUnauthorized)
		return
	}
	key := claims.Email

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade has already replied with an HTTP error
		log.Println("WebSocket upgrade failed:", err)
		return
	}

	mu.Lock()
	subscribers[key] = append(subscribers[key], conn)
	mu.Unlock()

	for {
		// keeps the connection alive until the client disconnects
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}

	mu.Lock()
	conns := subscribers[key]
	newList := make([]*websocket.Conn, 0, len(conns))
	for _, c := range conns {
		if c != conn {
			newList = append(newList, c)
		}
	}
	subscribers[key] = newList
	mu.Unlock()

	conn.Close()
}

// NotifyStatus pushes a status event to the booking's tourist and guide.
func NotifyStatus(b models.Booking) {
	data, err := json.Marshal(statusEvent{BookingID: b.ID, Status: b.Status, TourDate: b.TourDate})
	if err != nil {
		return
	}
	broadcast(b.TouristEmail, data)
	if b.GuideEmail != "" && b.GuideEmail != b.TouristEmail {
		broadcast(b.GuideEmail, data)
	}
}

func broadcast(key string, val []byte) {
	mu.Lock()
	defer mu.Unlock()

	conns := subscribers[key]
	newList := conns[:0]

	for _, conn := range conns {
		if err := conn.WriteMessage(websocket.TextMessage, val); err == nil {
			newList = append(newList, conn)
		} else {
			conn.Close()
		}
	}

	subscribers[key] = newList
}
