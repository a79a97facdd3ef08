package handlers

import (
	"log"
	"net/http"
)

func (h *Handler) ListAuditLogs(w http.ResponseWriter, r *http.Request) {
	_, limit, offset := parsePageLimit(r)
	logs, err := h.audit.List(r.Context(), limit, offset)
	if err != nil {
		log.Printf("listing audit logs: %v", err)
		respondError(w, http.StatusInternalServerError, "Failed to fetch audit logs")
		return
	}
	if logs == nil {
		logs = []map[string]any{}
	}
	respondJSON(w, http.StatusOK, map[string]any{"logs": logs})
}
