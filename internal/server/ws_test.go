package server

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/coder/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Qaizar-Master/retail-system/internal/catalog"
	"github.com/Qaizar-Master/retail-system/internal/types"
)

func dialChatSocket(t *testing.T, s *Server) (*websocket.Conn, context.Context) {
	t.Helper()
	srv := httptest.NewServer(s.Router())
	t.Cleanup(srv.Close)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	t.Cleanup(cancel)

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws/chat"
	ws, _, err := websocket.Dial(ctx, url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { ws.Close(websocket.StatusNormalClosure, "done") })
	return ws, ctx
}

func readFrame(t *testing.T, ctx context.Context, ws *websocket.Conn) types.WSOutbound {
	t.Helper()
	_, data, err := ws.Read(ctx)
	require.NoError(t, err)
	var out types.WSOutbound
	require.NoError(t, json.Unmarshal(data, &out))
	return out
}

func TestChatSocketStreamsPartialsThenFinal(t *testing.T) {
	ws, ctx := dialChatSocket(t, newTestServer(t, catalog.NewMemoryGateway()))

	frame := types.WSInbound{Type: "user_message"}
	frame.Data.Content = "track my order"
	b, err := json.Marshal(frame)
	require.NoError(t, err)
	require.NoError(t, ws.Write(ctx, websocket.MessageText, b))

	var assembled strings.Builder
	var final types.WSOutbound
	for {
		out := readFrame(t, ctx, ws)
		if out.Type == "partial" {
			assembled.WriteString(out.Chunk)
			continue
		}
		require.Equal(t, "final", out.Type)
		final = out
		break
	}

	assert.Equal(t, "tracking", final.Agent)
	assert.Contains(t, final.Content, "order ID")
	assert.Equal(t, final.Content, assembled.String(), "partials concatenate to the final text")
}

func TestChatSocketRejectsUnknownFrames(t *testing.T) {
	ws, ctx := dialChatSocket(t, newTestServer(t, catalog.NewMemoryGateway()))

	require.NoError(t, ws.Write(ctx, websocket.MessageText, []byte(`{"type":"ping"}`)))
	out := readFrame(t, ctx, ws)

	assert.Equal(t, "system", out.Type)
	assert.NotEmpty(t, out.Error)
}

func TestChatSocketGatewayFailureSendsGenericFinal(t *testing.T) {
	ws, ctx := dialChatSocket(t, newTestServer(t, brokenGateway{}))

	frame := types.WSInbound{Type: "user_message"}
	frame.Data.Content = "show me shoes"
	b, err := json.Marshal(frame)
	require.NoError(t, err)
	require.NoError(t, ws.Write(ctx, websocket.MessageText, b))

	out := readFrame(t, ctx, ws)
	assert.Equal(t, "final", out.Type)
	assert.Equal(t, "Something went wrong on our side. Please try again.", out.Content)
}
