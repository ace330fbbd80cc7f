package transport_test

import (
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/nimblegrid/mapfm/bench/transport"
	"github.com/stretchr/testify/require"
)

func TestHubBroadcastsLogEventsToConnectedClient(t *testing.T) {
	hub := transport.NewHub()
	server := httptest.NewServer(hub)
	defer server.Close()

	wsURL := "ws" + strings.TrimPrefix(server.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	require.NoError(t, err)
	defer conn.Close()

	// give the hub a moment to register the connection before logging.
	time.Sleep(10 * time.Millisecond)
	hub.Log("idsolve.merge", "combining groups", "a", []int{1}, "b", []int{2})

	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, payload, err := conn.ReadMessage()
	require.NoError(t, err)
	require.Contains(t, string(payload), "combining groups")
	require.Contains(t, string(payload), "idsolve.merge")
}

func TestHubLogWithNoClientsDoesNotBlock(t *testing.T) {
	hub := transport.NewHub()
	done := make(chan struct{})
	go func() {
		hub.Log("tag", "msg")
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Log blocked with no connected clients")
	}
}
