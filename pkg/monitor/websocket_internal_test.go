package monitor

import (
	"context"
	"fmt"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestWebSocketServer_Start_ListenError tests the error path when ListenAndServe fails.
func TestWebSocketServer_Start_ListenError(t *testing.T) {
	collector := NewEventCollector()
	dashboard := NewDashboardData("run-1")

	// Use an invalid address to trigger an error
	server := NewWebSocketServer("invalid:99999:format", collector, dashboard)

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	err := server.Start(ctx)
	assert.Error(t, err)
}

// TestWebSocketServer_Start_PortInUse tests the error path when port is already in use.
func TestWebSocketServer_Start_PortInUse(t *testing.T) {
	collector := NewEventCollector()
	dashboard := NewDashboardData("run-1")

	// First, occupy a port
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer listener.Close()

	port := listener.Addr().(*net.TCPAddr).Port
	addr := fmt.Sprintf("127.0.0.1:%d", port)

	server := NewWebSocketServer(addr, collector, dashboard)

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	err = server.Start(ctx)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "monitor server")
}

// TestWebSocketServer_Stop_BeforeStart tests Stop when server hasn't started.
func TestWebSocketServer_Stop_BeforeStart(t *testing.T) {
	collector := NewEventCollector()
	dashboard := NewDashboardData("run-1")
	server := NewWebSocketServer(":0", collector, dashboard)

	err := server.Stop(context.Background())
	assert.NoError(t, err)
}

// TestWebSocketServer_Broadcast_SlowClient verifies a full send buffer
// drops messages instead of blocking the broadcaster.
func TestWebSocketServer_Broadcast_SlowClient(t *testing.T) {
	collector := NewEventCollector()
	dashboard := NewDashboardData("run-1")
	server := NewWebSocketServer(":0", collector, dashboard)

	client := &wsClient{send: make(chan []byte, 1)}
	server.mu.Lock()
	server.clients[client] = struct{}{}
	server.mu.Unlock()

	done := make(chan struct{})
	go func() {
		server.broadcast([]byte("one"))
		server.broadcast([]byte("two"))
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("broadcast blocked on slow client")
	}
	assert.Len(t, client.send, 1)
}
