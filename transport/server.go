package transport

import (
	"log"
	"sync"

	"github.com/leap-fish/necs/router"
	"github.com/leap-fish/necs/transports"
	"golang.org/x/sync/errgroup"
)

// ServerTransport binds the engine to a real necs websocket server,
// grounded on server/core/server.go's connection bookkeeping and router
// callback wiring. It tracks one *router.NetworkClient per connection so
// Broadcast can fan outbound PoseBatches out to every connected client
// concurrently, and feeds every inbound PoseBatch into Inbound for the
// simulation thread to drain once per tick.
type ServerTransport struct {
	mu        sync.RWMutex
	clients   map[*router.NetworkClient]struct{}
	transport *transports.WsServerTransport

	Inbound InboundQueue
}

// NewServerTransport constructs a ServerTransport. Call Start to listen.
func NewServerTransport() *ServerTransport {
	return &ServerTransport{
		clients: make(map[*router.NetworkClient]struct{}),
	}
}

// Start registers router callbacks and begins listening on port,
// mirroring Server.Start/setupRouterCallbacks in server/core/server.go.
func (t *ServerTransport) Start(port uint) error {
	router.OnConnect(func(c *router.NetworkClient) {
		log.Printf("[transport/server] client connected: %s", c.Id())
		t.mu.Lock()
		t.clients[c] = struct{}{}
		t.mu.Unlock()
	})

	router.OnDisconnect(func(c *router.NetworkClient, err error) {
		log.Printf("[transport/server] client disconnected: %s: %v", c.Id(), err)
		t.mu.Lock()
		delete(t.clients, c)
		t.mu.Unlock()
	})

	router.On(func(c *router.NetworkClient, batch PoseBatch) {
		t.Inbound.Push(batch)
	})

	router.OnError(func(c *router.NetworkClient, err error) {
		log.Printf("[transport/server] client error: %v", err)
	})

	t.transport = transports.NewWsServerTransport(port, "", nil)
	return t.transport.Start()
}

// Broadcast fans batch out to every connected client concurrently via an
// errgroup. A single client's send failure is logged and does not cancel
// delivery to the others — one slow or disconnecting peer must not stall
// the broadcast for the rest.
func (t *ServerTransport) Broadcast(batch PoseBatch) error {
	t.mu.RLock()
	targets := make([]*router.NetworkClient, 0, len(t.clients))
	for c := range t.clients {
		targets = append(targets, c)
	}
	t.mu.RUnlock()

	var g errgroup.Group
	for _, c := range targets {
		client := c
		g.Go(func() error {
			if err := client.SendMessage(batch); err != nil {
				log.Printf("[transport/server] send to %s failed: %v", client.Id(), err)
			}
			return nil
		})
	}
	return g.Wait()
}

// ClientCount reports how many clients are currently connected.
func (t *ServerTransport) ClientCount() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.clients)
}
