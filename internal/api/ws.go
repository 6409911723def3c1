package api

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/gorilla/websocket"

	"github.com/vibedispatch/diffview/internal/diff"
	"github.com/vibedispatch/diffview/internal/render"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024 * 64,
	WriteBufferSize: 1024 * 64,
	CheckOrigin: func(r *http.Request) bool {
		return true // Allow all origins for local dev; restrict in production
	},
}

// WebSocket message types from client.
const (
	wsMsgLoadDiff = "load_diff"
)

// WebSocket message types to client.
const (
	wsMsgParsed   = "parsed"
	wsMsgRendered = "rendered"
	wsMsgError    = "error"
)

// wsMessage is the envelope for WebSocket messages in both directions.
type wsMessage struct {
	Type string          `json:"type"`
	Data json.RawMessage `json:"data,omitempty"`
}

// wsLoadDiff is the payload for "load_diff" messages.
type wsLoadDiff struct {
	Diff string `json:"diff"`
}

// wsParsedResponse is sent first after a diff is loaded.
type wsParsedResponse struct {
	Files []fileJSON `json:"files"`
	Stats diff.Stats `json:"stats"`
}

// wsRenderedResponse follows with the HTML fragment for the preview pane.
type wsRenderedResponse struct {
	HTML string `json:"html"`
}

// handleWebSocket drives a live-preview session: each load_diff from the
// dashboard is answered with a parsed message and then a rendered one, so
// the preview can update stats immediately and swap the markup when ready.
func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("websocket upgrade: %v", err)
		return
	}
	defer conn.Close()

	for {
		_, raw, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Printf("websocket read: %v", err)
			}
			return
		}

		var msg wsMessage
		if err := json.Unmarshal(raw, &msg); err != nil {
			sendWSError(conn, "invalid message format")
			continue
		}

		switch msg.Type {
		case wsMsgLoadDiff:
			s.handleWSLoadDiff(conn, msg.Data)
		default:
			sendWSError(conn, "unknown message type: "+msg.Type)
		}
	}
}

func (s *Server) handleWSLoadDiff(conn *websocket.Conn, data json.RawMessage) {
	var req wsLoadDiff
	if err := json.Unmarshal(data, &req); err != nil {
		sendWSError(conn, "invalid load_diff data")
		return
	}

	files := diff.Parse(req.Diff)

	sendWSMessage(conn, wsMsgParsed, wsParsedResponse{
		Files: toFileJSON(files),
		Stats: diff.Reduce(files),
	})

	sendWSMessage(conn, wsMsgRendered, wsRenderedResponse{
		HTML: render.HTMLWith(req.Diff, s.renderOpts),
	})
}

func sendWSMessage(conn *websocket.Conn, msgType string, data any) {
	raw, err := json.Marshal(data)
	if err != nil {
		log.Printf("ws marshal: %v", err)
		return
	}
	msg := wsMessage{Type: msgType, Data: raw}
	if err := conn.WriteJSON(msg); err != nil {
		log.Printf("ws write: %v", err)
	}
}

func sendWSError(conn *websocket.Conn, errMsg string) {
	sendWSMessage(conn, wsMsgError, map[string]string{"message": errMsg})
}
