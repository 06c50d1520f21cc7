package server

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dialTestServer(t *testing.T) *websocket.Conn {
	t.Helper()

	s := NewServer("unused", log.New(io.Discard))
	ts := httptest.NewServer(s.Handler())
	t.Cleanup(ts.Close)

	wsURL := strings.Replace(ts.URL, "http", "ws", 1) + "/ws"
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = conn.Close()
	})

	return conn
}

func roundTrip(t *testing.T, conn *websocket.Conn, req ShowdownRequest) ShowdownResponse {
	t.Helper()
	require.NoError(t, conn.WriteJSON(req))
	var resp ShowdownResponse
	require.NoError(t, conn.ReadJSON(&resp))
	return resp
}

func TestShowdownOverWebSocket(t *testing.T) {
	conn := dialTestServer(t)

	t.Run("win", func(t *testing.T) {
		resp := roundTrip(t, conn, ShowdownRequest{
			Black: "Black: 2H 3D 5S 9C KD",
			White: "White: 2C 3H 4S 8C AH",
		})
		assert.Equal(t, "win", resp.Outcome)
		assert.Equal(t, "White", resp.Winner)
		assert.Equal(t, "High Card: A over K", resp.Reason)
		assert.Empty(t, resp.Error)
	})

	t.Run("draw", func(t *testing.T) {
		resp := roundTrip(t, conn, ShowdownRequest{
			Black: "Black: 2D 3S 4H 5D 6D",
			White: "White: 2S 3D 4C 5C 6C",
		})
		assert.Equal(t, "draw", resp.Outcome)
		assert.Empty(t, resp.Winner)
	})

	t.Run("malformed hand", func(t *testing.T) {
		resp := roundTrip(t, conn, ShowdownRequest{
			Black: "Black: XX 3D 5S 9C KD",
			White: "White: 2C 3H 4S 8C AH",
		})
		assert.Empty(t, resp.Outcome)
		assert.Contains(t, resp.Error, "invalid")
	})

	t.Run("invalid deck", func(t *testing.T) {
		resp := roundTrip(t, conn, ShowdownRequest{
			Black: "Black: 2D 2C 2H 2S 6D",
			White: "White: 2D 2C 2H 2S 7C",
		})
		assert.Empty(t, resp.Outcome)
		assert.Contains(t, resp.Error, "invalid card deck")
	})

	t.Run("connection survives rejected input", func(t *testing.T) {
		resp := roundTrip(t, conn, ShowdownRequest{
			Black: "Black: 2H 4S 4C 2D 4H",
			White: "White: 2S 8S AS QS 3S",
		})
		assert.Equal(t, "win", resp.Outcome)
		assert.Equal(t, "Black", resp.Winner)
	})
}

func TestHealthEndpoint(t *testing.T) {
	s := NewServer("unused", log.New(io.Discard))
	ts := httptest.NewServer(s.Handler())
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/health")
	require.NoError(t, err)
	defer func() {
		_ = resp.Body.Close()
	}()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, "OK", string(body))
}
