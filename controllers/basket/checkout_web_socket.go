package basketControllers

import (
	"encoding/json"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// Connected feed subscribers. Handlers register/unregister concurrently while
// checkouts broadcast, so every access holds the mutex.
var (
	wsClientsMu sync.Mutex
	wsClients   = make(map[*websocket.Conn]bool)
)

func addWSClient(conn *websocket.Conn) {
	wsClientsMu.Lock()
	defer wsClientsMu.Unlock()
	wsClients[conn] = true
}

func removeWSClient(conn *websocket.Conn) {
	wsClientsMu.Lock()
	defer wsClientsMu.Unlock()
	delete(wsClients, conn)
}

// GET /ws/checkouts
func CheckoutWebSocketHandler(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		return
	}
	defer conn.Close()
	addWSClient(conn)

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			removeWSClient(conn)
			break
		}
	}
}

func broadcastCheckout(event CheckoutEvent) {
	data, err := json.Marshal(event)
	if err != nil {
		return
	}
	wsClientsMu.Lock()
	defer wsClientsMu.Unlock()
	for client := range wsClients {
		client.WriteMessage(websocket.TextMessage, data)
	}
}
