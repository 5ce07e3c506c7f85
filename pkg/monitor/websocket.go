package monitor

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

const writeTimeout = 10 * time.Second

// wsMessage is the envelope sent to WebSocket clients. The first
// message on a connection is always a "dashboard" snapshot; every
// subsequent one is an "event".
type wsMessage struct {
	Kind string          `json:"kind"`
	Data json.RawMessage `json:"data"`
}

// WebSocketServer provides a WebSocket endpoint for live dashboard
// updates during a test run.
type WebSocketServer struct {
	mu        sync.RWMutex
	collector *EventCollector
	dashboard *DashboardData
	clients   map[*wsClient]struct{}
	addr      string
	server    *http.Server
	upgrader  websocket.Upgrader
}

type wsClient struct {
	conn *websocket.Conn
	send chan []byte
}

// NewWebSocketServer creates a new server for live monitoring.
func NewWebSocketServer(addr string, collector *EventCollector, dashboard *DashboardData) *WebSocketServer {
	return &WebSocketServer{
		addr:      addr,
		collector: collector,
		dashboard: dashboard,
		clients:   make(map[*wsClient]struct{}),
		upgrader: websocket.Upgrader{
			CheckOrigin: func(*http.Request) bool { return true },
		},
	}
}

// Start begins serving the WebSocket endpoint. It blocks until the
// context is cancelled or the listener fails.
func (s *WebSocketServer) Start(ctx context.Context) error {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", s.handleWS)
	mux.HandleFunc("/dashboard", s.handleDashboard)
	mux.HandleFunc("/stats", s.handleStats)
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	s.server = &http.Server{
		Addr:    s.addr,
		Handler: mux,
	}

	// Register event handler to broadcast to clients
	s.collector.OnEvent(func(event TestEvent) {
		s.dashboard.UpdateFromEvent(event)
		data, err := json.Marshal(event)
		if err != nil {
			return
		}
		msg, err := json.Marshal(wsMessage{Kind: "event", Data: data})
		if err != nil {
			return
		}
		s.broadcast(msg)
	})

	go func() {
		<-ctx.Done()
		s.server.Close()
	}()

	if err := s.server.ListenAndServe(); err != http.ErrServerClosed {
		return fmt.Errorf("monitor server: %w", err)
	}
	return nil
}

// Stop gracefully shuts down the server.
func (s *WebSocketServer) Stop(ctx context.Context) error {
	if s.server != nil {
		return s.server.Shutdown(ctx)
	}
	return nil
}

func (s *WebSocketServer) handleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}

	client := &wsClient{
		conn: conn,
		send: make(chan []byte, 32),
	}
	s.mu.Lock()
	s.clients[client] = struct{}{}
	s.mu.Unlock()

	// Queue the initial dashboard state before any events.
	snap := s.dashboard.Snapshot()
	if data, err := json.Marshal(snap); err == nil {
		if msg, err := json.Marshal(wsMessage{Kind: "dashboard", Data: data}); err == nil {
			client.send <- msg
		}
	}

	go s.writePump(client)
	s.readPump(client)
}

// writePump delivers queued messages to the client until the send
// channel is closed.
func (s *WebSocketServer) writePump(client *wsClient) {
	for data := range client.send {
		client.conn.SetWriteDeadline(time.Now().Add(writeTimeout))
		if err := client.conn.WriteMessage(websocket.TextMessage, data); err != nil {
			break
		}
	}
	client.conn.Close()
}

// readPump discards client messages and unregisters the client when
// the connection drops.
func (s *WebSocketServer) readPump(client *wsClient) {
	defer func() {
		s.mu.Lock()
		delete(s.clients, client)
		close(client.send)
		s.mu.Unlock()
	}()

	for {
		if _, _, err := client.conn.ReadMessage(); err != nil {
			return
		}
	}
}

func (s *WebSocketServer) handleDashboard(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	snap := s.dashboard.Snapshot()
	json.NewEncoder(w).Encode(snap)
}

func (s *WebSocketServer) handleStats(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(s.collector.Stats())
}

func (s *WebSocketServer) broadcast(data []byte) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for client := range s.clients {
		select {
		case client.send <- data:
		default:
			// Client too slow, skip
		}
	}
}
