package basketControllers

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func checkoutFeedServer(t *testing.T) (*httptest.Server, string) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/ws/checkouts", CheckoutWebSocketHandler)
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return srv, "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws/checkouts"
}

func TestBroadcastDeliversCheckoutEvent(t *testing.T) {
	_, url := checkoutFeedServer(t)

	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	defer conn.Close()

	// Give the handler goroutine a beat to register the connection.
	time.Sleep(200 * time.Millisecond)

	broadcastCheckout(CheckoutEvent{Reference: "20241112-abc", UserID: 7})

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	_, data, err := conn.ReadMessage()
	require.NoError(t, err)

	var event CheckoutEvent
	require.NoError(t, json.Unmarshal(data, &event))
	assert.Equal(t, "20241112-abc", event.Reference)
	assert.Equal(t, uint(7), event.UserID)
}

// Clients connect and disconnect while checkouts broadcast; the feed must
// survive that without corrupting the subscriber map.
func TestCheckoutFeedConcurrentClientsAndBroadcasts(t *testing.T) {
	_, url := checkoutFeedServer(t)

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			conn, _, err := websocket.DefaultDialer.Dial(url, nil)
			if err != nil {
				t.Error(err)
				return
			}
			conn.Close()
		}()
		go func() {
			defer wg.Done()
			broadcastCheckout(CheckoutEvent{Reference: "ref", UserID: 1})
		}()
	}
	wg.Wait()
}
