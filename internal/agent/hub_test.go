package agent

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/require"
)

// newServerConn dials a throwaway websocket server and returns the
// server side of the connection.
func newServerConn(t *testing.T) *websocket.Conn {
	t.Helper()

	accepted := make(chan *websocket.Conn, 1)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			t.Errorf("upgrade failed: %v", err)
			return
		}
		accepted <- conn
	}))
	t.Cleanup(srv.Close)

	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	peer, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { peer.Close() })

	conn := <-accepted
	t.Cleanup(func() { conn.Close() })
	return conn
}

func TestClientSendEventAfterCloseIsSafe(t *testing.T) {
	c := &wsClient{
		conn:   newServerConn(t),
		send:   make(chan []byte, 1),
		userID: "user-1",
	}

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		for i := 0; i < 100; i++ {
			c.sendEvent(WSChatEvent{Type: "reply", Timestamp: time.Now()})
		}
	}()
	go func() {
		defer wg.Done()
		c.close()
	}()
	wg.Wait()

	// Late sends are dropped, repeated closes are no-ops.
	c.sendEvent(WSChatEvent{Type: "error", Error: "late", Timestamp: time.Now()})
	c.close()
}

func TestHubReplacesExistingClient(t *testing.T) {
	hub := NewHub(nil)
	go hub.Run()
	defer hub.Stop()

	first := &wsClient{conn: newServerConn(t), send: make(chan []byte, 1), userID: "user-1"}
	second := &wsClient{conn: newServerConn(t), send: make(chan []byte, 1), userID: "user-1"}

	hub.register <- first
	hub.register <- second

	require.Eventually(t, func() bool {
		hub.clientsMux.RLock()
		defer hub.clientsMux.RUnlock()
		return hub.clients["user-1"] == second
	}, time.Second, 10*time.Millisecond)

	// The first client was closed on replacement; its channel sends
	// become no-ops instead of panicking.
	first.sendEvent(WSChatEvent{Type: "reply", Timestamp: time.Now()})

	first.mu.Lock()
	closed := first.closed
	first.mu.Unlock()
	require.True(t, closed)
}
