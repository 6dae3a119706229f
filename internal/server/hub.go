package server

import (
	"sync"

	"delve-server/pkg/api"
)

// Hub fans simulation output out to connected clients. The simulation
// itself is single-threaded; the hub is the only place where
// goroutines meet, so it carries the only lock in the server.
type Hub struct {
	mu          sync.RWMutex
	subscribers map[chan api.ServerMessage]bool
}

func NewHub() *Hub {
	return &Hub{subscribers: make(map[chan api.ServerMessage]bool)}
}

// Subscribe registers a new client channel.
func (h *Hub) Subscribe() chan api.ServerMessage {
	h.mu.Lock()
	defer h.mu.Unlock()
	ch := make(chan api.ServerMessage, 100)
	h.subscribers[ch] = true
	return ch
}

// Unsubscribe drops the channel and closes it.
func (h *Hub) Unsubscribe(ch chan api.ServerMessage) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.subscribers[ch]; ok {
		delete(h.subscribers, ch)
		close(ch)
	}
}

// Broadcast pushes a message to every subscriber. Slow clients get
// skipped rather than stalling the simulation.
func (h *Hub) Broadcast(msg api.ServerMessage) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for ch := range h.subscribers {
		select {
		case ch <- msg:
		default:
		}
	}
}
