package http

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"doctor-assistant/internal/core"
	"doctor-assistant/internal/llm"
	"doctor-assistant/internal/memory"
	"doctor-assistant/pkg"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubGateway struct {
	client llm.Client
}

func (g stubGateway) Client(string) (llm.Client, error) { return g.client, nil }

func newTestServer(client llm.Client) (*Server, *memory.Store) {
	log := zap.NewNop().Sugar()
	store := memory.NewStore(0, log)
	chat := core.NewChatService(stubGateway{client: client}, store, core.Options{}, log)
	return NewServer(chat, store, log), store
}

func postChat(t *testing.T, handler http.Handler, body any) *httptest.ResponseRecorder {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, "/chat", bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)
	return rr
}

func TestChatEndpoint(t *testing.T) {
	stub := llm.NewStubClient("sorry to hear that")
	stub.ExtractJSON = []string{`{"symptoms":["headache"]}`}
	srv, _ := newTestServer(stub)
	handler := srv.Router()

	rr := postChat(t, handler, pkg.ChatRequest{Name: "Ayse", Age: 30, Message: "my head hurts"})
	require.Equal(t, http.StatusOK, rr.Code)

	var resp pkg.ChatResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, "sorry to hear that", resp.Response)
	assert.Equal(t, []string{"headache"}, resp.Symptoms)
	assert.Equal(t, 1, resp.SymptomCount)
}

func TestChatEndpointRejectsMalformedBody(t *testing.T) {
	srv, _ := newTestServer(llm.NewStubClient("unused"))
	handler := srv.Router()

	req := httptest.NewRequest(http.MethodPost, "/chat", bytes.NewReader([]byte("{not json")))
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestChatEndpointValidation(t *testing.T) {
	srv, _ := newTestServer(llm.NewStubClient("unused"))
	handler := srv.Router()

	// Missing name.
	rr := postChat(t, handler, pkg.ChatRequest{Age: 30, Message: "hello"})
	assert.Equal(t, http.StatusBadRequest, rr.Code)

	// Implausible age.
	rr = postChat(t, handler, pkg.ChatRequest{Name: "Ayse", Age: 200, Message: "hello"})
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestChatEndpointSurfacesInternalError(t *testing.T) {
	stub := llm.NewStubClient("unused")
	stub.Err = &llm.ProviderError{Provider: "groq", Err: fmt.Errorf("connection refused")}
	srv, _ := newTestServer(stub)
	handler := srv.Router()

	rr := postChat(t, handler, pkg.ChatRequest{Name: "Ayse", Age: 30, Message: "hello"})
	require.Equal(t, http.StatusInternalServerError, rr.Code)
	// The failure detail is reported verbatim.
	assert.Contains(t, rr.Body.String(), "connection refused")
}

func TestSessionsEndpoint(t *testing.T) {
	srv, store := newTestServer(llm.NewStubClient("unused"))
	handler := srv.Router()
	store.GetOrCreate("Ayse")

	req := httptest.NewRequest(http.MethodGet, "/sessions", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)
	require.Equal(t, http.StatusOK, rr.Code)

	var previews []pkg.SessionPreview
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &previews))
	require.Len(t, previews, 1)
	assert.Equal(t, "Ayse", previews[0].Name)
	assert.NotEmpty(t, previews[0].RecordID)
}

func TestSummaryEndpoint(t *testing.T) {
	srv, store := newTestServer(llm.NewStubClient("unused"))
	handler := srv.Router()

	req := httptest.NewRequest(http.MethodGet, "/sessions/Ayse/summary", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusNotFound, rr.Code)

	rec := store.GetOrCreate("Ayse")
	rec.MergeSymptoms([]string{"headache"}, nil)

	rr = httptest.NewRecorder()
	handler.ServeHTTP(rr, req)
	require.Equal(t, http.StatusOK, rr.Code)
	var resp map[string]string
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Contains(t, resp["summary"], "1. **headache**")
}

func TestHealthz(t *testing.T) {
	srv, _ := newTestServer(llm.NewStubClient("unused"))
	handler := srv.Router()

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "ok", rr.Body.String())
}
