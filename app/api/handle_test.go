package api

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"rungoal/app/config"
	"rungoal/app/service/skill"
	"rungoal/app/service/store"

	"github.com/samber/do"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()

	cfg := &config.Config{
		Server: config.Server{Addr: ":0"},
		Store:  config.Store{Backend: "file", Path: filepath.Join(t.TempDir(), "attributes.jsonl")},
	}

	di := do.New()
	t.Cleanup(func() { _ = di.Shutdown() })

	do.ProvideValue(di, cfg)
	do.Provide(di, store.New)
	do.Provide(di, skill.New)
	do.Provide(di, New)

	return do.MustInvoke[*Server](di)
}

func postTurn(t *testing.T, s *Server, body any) (*http.Response, TurnResponse) {
	t.Helper()

	data, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/v1/turn", bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.app.Test(req)
	require.NoError(t, err)

	var turn TurnResponse
	if resp.StatusCode == http.StatusOK {
		raw, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		require.NoError(t, json.Unmarshal(raw, &turn))
	}

	return resp, turn
}

func TestHealth(t *testing.T) {
	s := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	resp, err := s.app.Test(req)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestTurnRoundTrip(t *testing.T) {
	s := newTestServer(t)

	resp, turn := postTurn(t, s, TurnRequest{UserID: "user-1", Intent: "LaunchRequest"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.True(t, turn.SessionOpen)
	assert.NotEmpty(t, turn.Utterance)
	assert.NotEmpty(t, turn.Reprompt)

	resp, turn = postTurn(t, s, TurnRequest{
		UserID: "user-1",
		Intent: "DistanceIntent",
		Slots:  map[string]string{"Distance": "10"},
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.True(t, turn.SessionOpen)
	assert.Contains(t, turn.Utterance, "10")

	resp, turn = postTurn(t, s, TurnRequest{
		UserID: "user-1",
		Intent: "DurationIntent",
		Slots:  map[string]string{"Duration": "PT1H"},
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.False(t, turn.SessionOpen, "goal confirmation closes the session")
}

func TestTurnValidation(t *testing.T) {
	s := newTestServer(t)

	resp, _ := postTurn(t, s, map[string]any{"intent": "LaunchRequest"})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode, "missing user_id")

	resp, _ = postTurn(t, s, map[string]any{"user_id": "user-1"})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode, "missing intent")
}

func TestTurnMalformedBody(t *testing.T) {
	s := newTestServer(t)

	req := httptest.NewRequest(http.MethodPost, "/v1/turn", bytes.NewReader([]byte("{not json")))
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
