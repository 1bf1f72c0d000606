package transport

import (
	"context"
	"fmt"
	"log"
	"sync"

	"github.com/coder/websocket"
	"github.com/leap-fish/necs/router"
	"github.com/leap-fish/necs/transports"
)

// ClientTransport is the engine's binding to a real necs websocket
// client, grounded on `network/client.go`'s Connect/Disconnect/
// SendMessage pattern. It owns the inbound handoff queue and the
// host-mode-unaware "am I connected" bookkeeping; telling a
// server-originated receipt apart from a peer-client one is the caller's
// job via fromServer when draining Inbound.
type ClientTransport struct {
	mu   sync.RWMutex
	conn *websocket.Conn
	err  error

	Inbound InboundQueue
}

// NewClientTransport constructs a ClientTransport with no active
// connection. Call Connect to dial.
func NewClientTransport() *ClientTransport {
	return &ClientTransport{}
}

// Connect dials address in a background goroutine, mirroring
// network/client.go's Connect: router callbacks fire on necs's own
// goroutines, so PoseBatch receipts are pushed straight onto Inbound
// rather than touched directly here.
func (t *ClientTransport) Connect(address string) {
	router.OnConnect(func(_ *router.NetworkClient) {
		log.Println("[transport/client] connected to server")
	})

	router.On(func(_ *router.NetworkClient, batch PoseBatch) {
		t.Inbound.Push(batch)
	})

	router.OnDisconnect(func(_ *router.NetworkClient, err error) {
		log.Printf("[transport/client] disconnected: %v", err)
		t.mu.Lock()
		t.conn = nil
		t.mu.Unlock()
	})

	router.OnError(func(_ *router.NetworkClient, err error) {
		log.Printf("[transport/client] error: %v", err)
	})

	go func() {
		ws := transports.NewWsClientTransport("ws://" + address)
		if err := ws.Start(func(conn *websocket.Conn) {
			t.mu.Lock()
			t.conn = conn
			t.mu.Unlock()
		}); err != nil {
			t.mu.Lock()
			t.err = fmt.Errorf("connect: %w", err)
			t.mu.Unlock()
		}
	}()
}

// Disconnect closes the active connection, if any.
func (t *ClientTransport) Disconnect() {
	t.mu.Lock()
	conn := t.conn
	t.conn = nil
	t.mu.Unlock()

	if conn != nil {
		_ = conn.CloseNow()
	}
	router.ResetRouter()
}

// LastError returns the most recent connection-level error, if any.
func (t *ClientTransport) LastError() error {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.err
}

// Send serializes batch through necs's own router codec and writes it to
// the server over the active connection, mirroring
// network/client.go's SendMessage. Used when this process owns a
// client-authoritative entity and must push its pose to the server.
func (t *ClientTransport) Send(batch PoseBatch) error {
	t.mu.RLock()
	conn := t.conn
	t.mu.RUnlock()

	if conn == nil {
		return fmt.Errorf("transport/client: not connected")
	}

	payload, err := router.Serialize(batch)
	if err != nil {
		return fmt.Errorf("serialize: %w", err)
	}
	return conn.Write(context.Background(), websocket.MessageBinary, payload)
}
