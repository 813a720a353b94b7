package dialogue

import (
	"context"

	"github.com/Qaizar-Master/retail-system/internal/catalog"
)

// Handler identities. The set is closed: routing only ever selects one of
// these four.
const (
	AgentDiscovery = "discovery"
	AgentStock     = "stock"
	AgentCheckout  = "checkout"
	AgentTracking  = "tracking"
)

// TurnResult is the structured outcome of one turn.
type TurnResult struct {
	// Content is the complete human-readable reply, produced atomically.
	Content string `json:"content"`
	// Options are selectable labels for a clarifying question.
	Options []string `json:"options,omitempty"`
	// Products are the matched catalog entities, at most ten.
	Products []catalog.Product `json:"products,omitempty"`
	// Product echoes the single entity the turn referenced, if any.
	Product *catalog.Product `json:"product,omitempty"`
	// Agent is the identity of the handler that produced this result.
	Agent string `json:"agent"`
}

// Handler fully answers one intent category. Handlers are stateless; all
// conversational state lives in the SessionContext they are handed.
type Handler interface {
	Name() string
	Process(ctx context.Context, utterance string, sess *SessionContext) (TurnResult, error)
}
