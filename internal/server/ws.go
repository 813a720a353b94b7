package server

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/coder/websocket"

	"github.com/Qaizar-Master/retail-system/internal/store"
	"github.com/Qaizar-Master/retail-system/internal/types"
)

// streamChunkWords is how many words each simulated-streaming chunk carries.
const streamChunkWords = 3

// handleChatSocket runs a chat conversation over a WebSocket. The client
// sends user_message frames; every turn is answered with a series of
// partial chunks followed by one final frame. The partial stream is a
// presentation nicety: the dialogue core produced the text atomically.
func (s *Server) handleChatSocket(w http.ResponseWriter, r *http.Request) {
	ws, err := websocket.Accept(w, r, &websocket.AcceptOptions{
		OriginPatterns: []string{"*"},
	})
	if err != nil {
		log.Println("[ws] failed to accept connection:", err)
		return
	}
	defer ws.Close(websocket.StatusNormalClosure, "session ended")

	sid := getSessionID(r)
	if sid == "" {
		sid = newSessionID()
	}
	log.Printf("[ws] session %s connected", sid)

	ctx := r.Context()
	for {
		_, data, err := ws.Read(ctx)
		if err != nil {
			log.Printf("[ws] session %s closed: %v", sid, err)
			return
		}
		var in types.WSInbound
		if err := json.Unmarshal(data, &in); err != nil || in.Type != "user_message" {
			s.writeSocket(ctx, ws, types.WSOutbound{Type: "system", Error: "expected a user_message frame"})
			continue
		}
		if strings.TrimSpace(in.Data.Content) == "" {
			s.writeSocket(ctx, ws, types.WSOutbound{Type: "system", Error: "message is required"})
			continue
		}
		s.serveSocketTurn(ctx, ws, sid, in.Data.Content)
	}
}

func (s *Server) serveSocketTurn(ctx context.Context, ws *websocket.Conn, sid, message string) {
	sess := s.sessions.Get(sid)
	sess.Turn.Lock()
	defer sess.Turn.Unlock()

	s.sessions.Append(sid, store.Message{Role: "user", Content: message})
	result, err := s.orchestrator.HandleTurn(ctx, message, &sess.Context)
	if err != nil {
		log.Printf("[ws] turn failed for session %s: %v", sid, err)
		s.writeSocket(ctx, ws, types.WSOutbound{
			Type:    "final",
			Content: "Something went wrong on our side. Please try again.",
		})
		return
	}
	s.sessions.Append(sid, store.Message{Role: "assistant", Content: result.Content})

	for _, chunk := range chunkWords(result.Content, streamChunkWords) {
		s.writeSocket(ctx, ws, types.WSOutbound{Type: "partial", Chunk: chunk})
		if s.cfg.StreamChunkDelay > 0 {
			time.Sleep(s.cfg.StreamChunkDelay)
		}
	}
	s.writeSocket(ctx, ws, types.WSOutbound{
		Type:     "final",
		Content:  result.Content,
		Options:  result.Options,
		Products: result.Products,
		Product:  result.Product,
		Agent:    result.Agent,
	})
}

func (s *Server) writeSocket(ctx context.Context, ws *websocket.Conn, out types.WSOutbound) {
	b, err := json.Marshal(out)
	if err != nil {
		log.Println("[ws] failed to marshal frame:", err)
		return
	}
	if err := ws.Write(ctx, websocket.MessageText, b); err != nil {
		log.Println("[ws] write failed:", err)
	}
}

// chunkWords splits text into groups of n words, keeping the separating
// spaces so the client can concatenate chunks verbatim.
func chunkWords(text string, n int) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}
	var chunks []string
	for i := 0; i < len(words); i += n {
		end := i + n
		if end > len(words) {
			end = len(words)
		}
		chunk := strings.Join(words[i:end], " ")
		if end < len(words) {
			chunk += " "
		}
		chunks = append(chunks, chunk)
	}
	return chunks
}
