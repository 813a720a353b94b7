package types

import (
	"github.com/Qaizar-Master/retail-system/internal/catalog"
	"github.com/Qaizar-Master/retail-system/internal/dialogue"
)

type ChatRequest struct {
	SessionID string `json:"sessionId,omitempty"`
	Message   string `json:"message"`
}

type ChatResponse struct {
	SessionID string             `json:"sessionId"`
	Reply     string             `json:"reply"`
	Options   []string           `json:"options,omitempty"`
	Products  []catalog.Product  `json:"products,omitempty"`
	Product   *catalog.Product   `json:"product,omitempty"`
	Agent     string             `json:"agent"`
	Context   *dialogue.SessionContext `json:"context,omitempty"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

// WSInbound is one client frame on the chat socket.
type WSInbound struct {
	Type string `json:"type"`
	Data struct {
		Content string `json:"content"`
		Channel string `json:"channel,omitempty"`
	} `json:"data"`
}

// WSOutbound is one server frame: "partial" chunks followed by a "final"
// payload, or a "system" notice.
type WSOutbound struct {
	Type     string            `json:"type"`
	Chunk    string            `json:"chunk,omitempty"`
	Content  string            `json:"content,omitempty"`
	Options  []string          `json:"options,omitempty"`
	Products []catalog.Product `json:"products,omitempty"`
	Product  *catalog.Product  `json:"product,omitempty"`
	Agent    string            `json:"agent,omitempty"`
	Error    string            `json:"error,omitempty"`
}
