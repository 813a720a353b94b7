package dialogue

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/Qaizar-Master/retail-system/internal/catalog"
)

// Orchestrator is the public entry point of the dialogue engine: it routes
// each utterance to a handler, dispatches it, and maintains the LastAgent
// slot. Handlers observe LastAgent as it stood before this turn; it is
// updated only after the handler returns.
type Orchestrator struct {
	router   *Router
	handlers map[string]Handler
}

// NewOrchestrator wires the router and the four handlers over a shared
// catalog gateway. userRef is the user reference submitted with orders.
func NewOrchestrator(gateway catalog.Gateway, vocab *Vocab, userRef string) *Orchestrator {
	handlers := map[string]Handler{}
	for _, h := range []Handler{
		NewDiscoveryHandler(gateway, vocab),
		NewStockHandler(gateway, vocab),
		NewCheckoutHandler(gateway, vocab, userRef),
		NewTrackingHandler(vocab),
	} {
		handlers[h.Name()] = h
	}
	return &Orchestrator{
		router:   NewRouter(vocab),
		handlers: handlers,
	}
}

// HandleTurn processes one utterance against the session's context and
// returns the structured result. Catalog read failures are fatal for the
// turn and propagate; the session context is never left half-mutated.
func (o *Orchestrator) HandleTurn(ctx context.Context, utterance string, sess *SessionContext) (TurnResult, error) {
	if sess == nil {
		return TurnResult{}, fmt.Errorf("session context is required")
	}
	kind := o.router.Route(utterance, sess)
	handler, ok := o.handlers[kind]
	if !ok {
		return TurnResult{}, fmt.Errorf("no handler registered for %q", kind)
	}
	log.Printf("[dialogue] routing to %s: %s", kind, strings.TrimSpace(utterance))

	result, err := handler.Process(ctx, utterance, sess)
	if err != nil {
		return TurnResult{}, err
	}
	sess.LastAgent = handler.Name()
	result.Agent = handler.Name()
	return result, nil
}
