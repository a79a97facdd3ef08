package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"forensics/internal/ai"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

type analysisRequest struct {
	Type string          `json:"type"`
	Data json.RawMessage `json:"data"`
}

// AIAnalysis proxies one of three analysis modes to the model service. A
// reply that fails JSON decoding is still a 200: the raw text comes back
// with a note flag instead of an error.
func (h *Handler) AIAnalysis(w http.ResponseWriter, r *http.Request) {
	var req analysisRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid payload")
		return
	}
	if req.Type == "" || len(req.Data) == 0 {
		respondError(w, http.StatusBadRequest, "Type and data are required")
		return
	}
	if h.analyzer == nil {
		respondError(w, http.StatusInternalServerError, "Failed to perform AI analysis")
		return
	}

	switch req.Type {
	case "stylometry":
		h.analyzeStylometry(w, r, req.Data)
	case "entity_extraction":
		h.extractEntities(w, r, req.Data)
	case "risk_assessment":
		h.assessRisk(w, r, req.Data)
	default:
		respondError(w, http.StatusBadRequest, "Invalid analysis type")
	}
}

func (h *Handler) analyzeStylometry(w http.ResponseWriter, r *http.Request, data json.RawMessage) {
	var payload struct {
		Texts []string `json:"texts"`
	}
	if err := json.Unmarshal(data, &payload); err != nil || len(payload.Texts) == 0 {
		respondError(w, http.StatusBadRequest, "texts are required")
		return
	}
	result, err := h.analyzer.AnalyzeStylometry(r.Context(), payload.Texts)
	if err != nil {
		log.Printf("stylometry analysis: %v", err)
		respondError(w, http.StatusInternalServerError, "Failed to perform stylometry analysis")
		return
	}
	respondAnalysis(w, result)
}

func (h *Handler) extractEntities(w http.ResponseWriter, r *http.Request, data json.RawMessage) {
	var payload struct {
		Text string `json:"text"`
	}
	if err := json.Unmarshal(data, &payload); err != nil || payload.Text == "" {
		respondError(w, http.StatusBadRequest, "text is required")
		return
	}
	result, err := h.analyzer.ExtractEntities(r.Context(), payload.Text)
	if err != nil {
		log.Printf("entity extraction: %v", err)
		respondError(w, http.StatusInternalServerError, "Failed to perform entity extraction")
		return
	}

	// Persist what the model found; best effort, the analysis response is
	// the contract and is returned regardless.
	if records := ai.ParseExtractedRecords(result); len(records) > 0 {
		if err := h.txRunner.WithTx(r.Context(), func(tx *sqlx.Tx) error {
			for _, record := range records {
				var surrounding *string
				if record.Context != "" {
					surrounding = &record.Context
				}
				if err := h.extracted.Create(r.Context(), tx, uuid.NewString(), record.Type, record.Value, record.Confidence, surrounding, payload.Text); err != nil {
					return err
				}
			}
			return nil
		}); err != nil {
			log.Printf("persisting extracted entities: %v", err)
		}
	}

	respondAnalysis(w, result)
}

func (h *Handler) assessRisk(w http.ResponseWriter, r *http.Request, data json.RawMessage) {
	var payload struct {
		Entity  map[string]any `json:"entity"`
		Context string         `json:"context"`
	}
	if err := json.Unmarshal(data, &payload); err != nil || payload.Entity == nil {
		respondError(w, http.StatusBadRequest, "entity and context are required")
		return
	}
	result, err := h.analyzer.AssessRisk(r.Context(), payload.Entity, payload.Context)
	if err != nil {
		log.Printf("risk assessment: %v", err)
		respondError(w, http.StatusInternalServerError, "Failed to perform risk assessment")
		return
	}
	respondAnalysis(w, result)
}

func respondAnalysis(w http.ResponseWriter, result ai.Result) {
	if result.IsStructured() {
		respondJSON(w, http.StatusOK, result.Structured)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{
		"analysis": result.RawText,
		"note":     "AI response was not in valid JSON format",
	})
}
