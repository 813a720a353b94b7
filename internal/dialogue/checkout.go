package dialogue

import (
	"context"
	"fmt"
	"strings"

	"github.com/Qaizar-Master/retail-system/internal/catalog"
	"github.com/Qaizar-Master/retail-system/internal/match"
)

const (
	// checkoutResolveScore is the high token-set threshold required before
	// an explicitly named item overrides the remembered context entity.
	checkoutResolveScore = 75
	// placeholderOrderTotal is the fixed total submitted with an order; real
	// payment capture lives outside this system.
	placeholderOrderTotal = 0.0
)

// CheckoutHandler drives the payment sub-dialogue: a payment-method prompt
// on purchase intent, then order submission on the follow-up confirmation.
type CheckoutHandler struct {
	gateway catalog.Gateway
	vocab   *Vocab
	userRef string
}

func NewCheckoutHandler(gateway catalog.Gateway, vocab *Vocab, userRef string) *CheckoutHandler {
	return &CheckoutHandler{gateway: gateway, vocab: vocab, userRef: userRef}
}

func (h *CheckoutHandler) Name() string { return AgentCheckout }

func (h *CheckoutHandler) Process(ctx context.Context, utterance string, sess *SessionContext) (TurnResult, error) {
	m := strings.ToLower(strings.TrimSpace(utterance))

	if containsAny(m, h.vocab.Routes.Checkout) {
		products, err := h.gateway.GetProducts(ctx)
		if err != nil {
			return TurnResult{}, fmt.Errorf("failed to fetch catalog: %w", err)
		}
		// An explicitly named item beats a stale context entity.
		if p := h.resolveExplicit(m, products); p != nil {
			sess.RememberProduct(*p)
		}
		if sess.LastProductName != "" {
			echoed := findByID(products, sess.LastProductID)
			return TurnResult{
				Content: fmt.Sprintf("You're buying '%s'. Would you like to use your saved card ending in 4242?", sess.LastProductName),
				Product: echoed,
			}, nil
		}
		return TurnResult{Content: "I can help you with that. Would you like to use your saved card ending in 4242?"}, nil
	}

	if h.vocab.IsAffirmative(m) && sess.LastAgent == AgentCheckout {
		return h.submitOrder(ctx, sess)
	}

	return TurnResult{Content: "I can assist with payments. Do you want to checkout?"}, nil
}

func (h *CheckoutHandler) submitOrder(ctx context.Context, sess *SessionContext) (TurnResult, error) {
	var items []catalog.LineItem
	var echoed *catalog.Product
	if sess.LastProductID != "" {
		products, err := h.gateway.GetProducts(ctx)
		if err != nil {
			return TurnResult{}, fmt.Errorf("failed to fetch catalog: %w", err)
		}
		if p := findByID(products, sess.LastProductID); p != nil {
			items = []catalog.LineItem{{SKU: p.SKU, Quantity: 1}}
			echoed = p
		}
	}
	orderID, err := h.gateway.CreateOrder(ctx, h.userRef, items, placeholderOrderTotal)
	if err != nil {
		// Write failures stay local: the session is unharmed and the user
		// gets a payment failure message instead of an error.
		return TurnResult{Content: fmt.Sprintf("Payment failed: %v", err)}, nil
	}
	return TurnResult{
		Content: fmt.Sprintf("Payment successful! Your order (%s) has been placed.", orderID),
		Product: echoed,
	}, nil
}

// resolveExplicit looks for a catalog name spelled out inside the utterance.
func (h *CheckoutHandler) resolveExplicit(utterance string, products []catalog.Product) *catalog.Product {
	names := make([]string, len(products))
	for i, p := range products {
		names[i] = p.Name
	}
	best, ok := match.BestMatch(utterance, names, match.TokenSet)
	if !ok || best.Score < checkoutResolveScore {
		return nil
	}
	for i := range products {
		if products[i].Name == best.Candidate {
			return &products[i]
		}
	}
	return nil
}

func findByID(products []catalog.Product, id string) *catalog.Product {
	for i := range products {
		if products[i].ID == id {
			return &products[i]
		}
	}
	return nil
}
