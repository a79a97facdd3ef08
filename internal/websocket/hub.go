package websocket

import (
	"encoding/json"
	"sync"
)

// Alert is pushed to every connected dashboard when something worth a
// banner happens (suspicious transaction observed, dataset reseeded).
type Alert struct {
	Kind          string  `json:"kind"`
	TransactionID string  `json:"transactionId,omitempty"`
	Hash          string  `json:"hash,omitempty"`
	Amount        float64 `json:"amount,omitempty"`
	Currency      string  `json:"currency,omitempty"`
	Message       string  `json:"message,omitempty"`
}

const (
	AlertSuspiciousTransaction = "suspicious_transaction"
	AlertDatasetReset          = "dataset_reset"
)

type Hub struct {
	mu      sync.RWMutex
	clients map[*Client]struct{}
}

func NewHub() *Hub {
	return &Hub{
		clients: make(map[*Client]struct{}),
	}
}

func (h *Hub) Register(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.clients[client] = struct{}{}
}

func (h *Hub) Unregister(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.clients, client)
}

func (h *Hub) Broadcast(alert Alert) {
	payload, _ := json.Marshal(alert)
	h.mu.RLock()
	defer h.mu.RUnlock()
	for client := range h.clients {
		select {
		case client.send <- payload:
		default:
		}
	}
}
