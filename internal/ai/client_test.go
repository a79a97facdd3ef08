package ai

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewClientRequiresAPIKey(t *testing.T) {
	_, err := NewClient(Config{})
	require.Error(t, err)

	client, err := NewClient(Config{APIKey: "sk-test"})
	require.NoError(t, err)
	assert.Equal(t, "gpt-4o-mini", client.model)
}

func TestNewClientCustomModel(t *testing.T) {
	client, err := NewClient(Config{APIKey: "sk-test", Model: "gpt-4o", BaseURL: "http://localhost:8081/v1"})
	require.NoError(t, err)
	assert.Equal(t, "gpt-4o", client.model)
}

func TestDecodeResultObject(t *testing.T) {
	result := decodeResult(`{"sameAuthor": true, "confidence": 85}`)
	require.True(t, result.IsStructured())
	assert.JSONEq(t, `{"sameAuthor": true, "confidence": 85}`, string(result.Structured))
	assert.Empty(t, result.RawText)
}

func TestDecodeResultFencedJSON(t *testing.T) {
	content := "```json\n{\"entities\": []}\n```"
	result := decodeResult(content)
	require.True(t, result.IsStructured())
	assert.JSONEq(t, `{"entities": []}`, string(result.Structured))
}

func TestDecodeResultArray(t *testing.T) {
	result := decodeResult(`[{"type":"email"}]`)
	require.True(t, result.IsStructured())
}

func TestDecodeResultPlainText(t *testing.T) {
	content := "The texts appear to be written by different authors."
	result := decodeResult(content)
	require.False(t, result.IsStructured())
	assert.Equal(t, content, result.RawText)
}

func TestDecodeResultBareScalar(t *testing.T) {
	// valid JSON, but a bare value is not an analysis document
	result := decodeResult(`42`)
	require.False(t, result.IsStructured())
	assert.Equal(t, "42", result.RawText)
}

func TestCleanJSONResponse(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{"plain", `{"a":1}`, `{"a":1}`},
		{"fenced with language", "```json\n{\"a\":1}\n```", `{"a":1}`},
		{"fenced bare", "```\n{\"a\":1}\n```", `{"a":1}`},
		{"surrounding whitespace", "  {\"a\":1}\n", `{"a":1}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, cleanJSONResponse(tt.content))
		})
	}
}

func TestParseExtractedRecords(t *testing.T) {
	result := Result{Structured: []byte(`{
		"entities": [
			{"type": "crypto_wallet", "value": "1A1zP1", "confidence": 0.92, "context": "wallet 1A1zP1 posted"},
			{"type": "email", "value": "x@y.onion", "confidence": 0.7}
		]
	}`)}
	records := ParseExtractedRecords(result)
	require.Len(t, records, 2)
	assert.Equal(t, "crypto_wallet", records[0].Type)
	assert.Equal(t, "1A1zP1", records[0].Value)
	assert.Equal(t, 0.92, records[0].Confidence)
	assert.Empty(t, records[1].Context)
}

func TestParseExtractedRecordsNonStructured(t *testing.T) {
	assert.Nil(t, ParseExtractedRecords(Result{RawText: "no entities here"}))
}

func TestParseExtractedRecordsWrongShape(t *testing.T) {
	assert.Nil(t, ParseExtractedRecords(Result{Structured: []byte(`["a","b"]`)}))
	assert.Nil(t, ParseExtractedRecords(Result{Structured: []byte(`{"entities": "none"}`)}))
}
