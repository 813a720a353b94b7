package dialogue

import "strings"

// Router selects the handler for a turn. Explicit keyword rules run first,
// then the context-dependent fallbacks; the first matching rule wins.
type Router struct {
	vocab *Vocab
}

// NewRouter builds a router over the given vocabulary.
func NewRouter(vocab *Vocab) *Router {
	return &Router{vocab: vocab}
}

// Route returns the identity of the handler that should serve the turn.
func (r *Router) Route(utterance string, sess *SessionContext) string {
	m := strings.ToLower(strings.TrimSpace(utterance))

	switch {
	case containsAny(m, r.vocab.Routes.Stock):
		return AgentStock
	case containsAny(m, r.vocab.Routes.Checkout):
		return AgentCheckout
	case containsAny(m, r.vocab.Routes.Tracking):
		return AgentTracking
	}

	// A bare yes/no right after a checkout prompt stays with checkout.
	if sess.LastAgent == AgentCheckout && r.vocab.IsBareDecision(m) {
		return AgentCheckout
	}

	// Pronoun references resolve against the remembered product.
	if sess.LastProductID != "" && r.vocab.HasPronoun(m) {
		if containsAny(m, r.vocab.StockHints) {
			return AgentStock
		}
		if containsAny(m, r.vocab.PurchaseHints) {
			return AgentCheckout
		}
	}

	return AgentDiscovery
}
