package ai

import "encoding/json"

type ExtractedRecord struct {
	Type       string  `json:"type"`
	Value      string  `json:"value"`
	Confidence float64 `json:"confidence"`
	Context    string  `json:"context"`
}

// ParseExtractedRecords pulls the entities array out of a structured
// extraction result. Best effort: a structurally off reply yields nil, the
// caller still returns the document to the client as-is.
func ParseExtractedRecords(result Result) []ExtractedRecord {
	if !result.IsStructured() {
		return nil
	}
	var payload struct {
		Entities []ExtractedRecord `json:"entities"`
	}
	if err := json.Unmarshal(result.Structured, &payload); err != nil {
		return nil
	}
	return payload.Entities
}
