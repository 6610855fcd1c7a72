package testutil

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/binagroup/complex-api-server/internal/shared/apierror"
	"github.com/binagroup/complex-api-server/internal/shared/response"
)

// Envelope mirrors the response envelope, keeping details raw so each test
// decodes them into its own shape.
type Envelope struct {
	Messages   []apierror.Message   `json:"messages"`
	Details    json.RawMessage      `json:"details"`
	Pagination *response.Pagination `json:"pagination"`
}

// ParseEnvelope parses the uniform response envelope.
func ParseEnvelope(t *testing.T, recorder *httptest.ResponseRecorder) Envelope {
	t.Helper()

	var env Envelope
	ParseResponse(t, recorder, &env)
	return env
}

// ParseDetails decodes the envelope details into v.
func (e Envelope) ParseDetails(t *testing.T, v interface{}) {
	t.Helper()

	if err := json.Unmarshal(e.Details, v); err != nil {
		t.Fatalf("Failed to parse envelope details: %v", err)
	}
}
