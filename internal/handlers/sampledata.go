package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"forensics/internal/websocket"

	"github.com/jmoiron/sqlx"
)

// LoadSampleData wipes and rebuilds the demo dataset. Intended for demo and
// test environments only; every existing row is deleted first.
func (h *Handler) LoadSampleData(w http.ResponseWriter, r *http.Request) {
	result, err := h.seedService.Reset(r.Context())
	if err != nil {
		log.Printf("loading sample data: %v", err)
		respondError(w, http.StatusInternalServerError, "Failed to create sample data")
		return
	}

	if err := h.txRunner.WithTx(r.Context(), func(tx *sqlx.Tx) error {
		data, _ := json.Marshal(result)
		return h.audit.Log(r.Context(), tx, actorID(r), "reset", "dataset", "sample-data", string(data))
	}); err != nil {
		log.Printf("auditing sample data reset: %v", err)
	}

	h.hub.Broadcast(websocket.Alert{
		Kind:    websocket.AlertDatasetReset,
		Message: "Demo dataset was reset",
	})

	respondJSON(w, http.StatusOK, map[string]any{
		"message":      "Sample data created successfully",
		"entities":     result.Entities,
		"posts":        result.Posts,
		"wallets":      result.Wallets,
		"transactions": result.Transactions,
	})
}
