package dialogue

import (
	"context"
	"regexp"
	"strings"
)

// orderRefPattern recognizes order references like ORD-7F3A2.
var orderRefPattern = regexp.MustCompile(`(?i)\bORD-[A-Za-z0-9]+\b`)

// TrackingHandler answers fulfillment questions. It has no state of its
// own; order status reporting is a canned in-transit line for a recognized
// reference.
type TrackingHandler struct {
	vocab *Vocab
}

func NewTrackingHandler(vocab *Vocab) *TrackingHandler {
	return &TrackingHandler{vocab: vocab}
}

func (h *TrackingHandler) Name() string { return AgentTracking }

func (h *TrackingHandler) Process(_ context.Context, utterance string, _ *SessionContext) (TurnResult, error) {
	if ref := orderRefPattern.FindString(utterance); ref != "" {
		return TurnResult{
			Content: "Order " + strings.ToUpper(ref) + " is in transit and should reach you within 3-5 business days.",
		}, nil
	}
	m := strings.ToLower(strings.TrimSpace(utterance))
	if containsAny(m, h.vocab.Routes.Tracking) {
		return TurnResult{Content: "Sure! Could you share your order ID? It starts with ORD-."}, nil
	}
	return TurnResult{Content: "Your order will be shipped to your registered address. You can also pick it up at Store A."}, nil
}
