package dialogue

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/Qaizar-Master/retail-system/internal/catalog"
	"github.com/Qaizar-Master/retail-system/internal/match"
)

// stockResolveScore is the moderate partial-overlap threshold above which a
// product name mentioned inside the utterance is taken as the target.
const stockResolveScore = 60

// StockHandler answers availability questions, resolving the target entity
// from a pronoun reference or a fuzzy name mention.
type StockHandler struct {
	gateway catalog.Gateway
	vocab   *Vocab
}

func NewStockHandler(gateway catalog.Gateway, vocab *Vocab) *StockHandler {
	return &StockHandler{gateway: gateway, vocab: vocab}
}

func (h *StockHandler) Name() string { return AgentStock }

func (h *StockHandler) Process(ctx context.Context, utterance string, sess *SessionContext) (TurnResult, error) {
	products, err := h.gateway.GetProducts(ctx)
	if err != nil {
		return TurnResult{}, fmt.Errorf("failed to fetch catalog: %w", err)
	}

	target := h.resolveTarget(utterance, sess, products)
	if target == nil {
		return TurnResult{Content: "Which product would you like to check stock for?"}, nil
	}
	sess.RememberProduct(*target)

	stock, err := h.gateway.CheckInventory(ctx, target.SKU)
	if err != nil {
		return TurnResult{}, fmt.Errorf("failed to check inventory: %w", err)
	}

	total := 0
	for _, qty := range stock {
		total += qty
	}
	if total == 0 {
		return TurnResult{
			Content: fmt.Sprintf("Sorry, '%s' is currently out of stock.", target.Name),
			Product: target,
		}, nil
	}

	locations := make([]string, 0, len(stock))
	for loc := range stock {
		locations = append(locations, loc)
	}
	sort.Strings(locations)
	parts := make([]string, 0, len(locations))
	for _, loc := range locations {
		parts = append(parts, fmt.Sprintf("%s: %d", loc, stock[loc]))
	}

	return TurnResult{
		Content: fmt.Sprintf("We have %d '%s' in stock. (%s)", total, target.Name, strings.Join(parts, ", ")),
		Product: target,
	}, nil
}

// resolveTarget prefers a pronoun reference to the remembered product, then
// falls back to a fuzzy name mention inside the utterance.
func (h *StockHandler) resolveTarget(utterance string, sess *SessionContext, products []catalog.Product) *catalog.Product {
	if h.vocab.HasPronoun(utterance) && sess.LastProductID != "" {
		for i := range products {
			if products[i].ID == sess.LastProductID {
				return &products[i]
			}
		}
	}

	names := make([]string, len(products))
	for i, p := range products {
		names[i] = p.Name
	}
	best, ok := match.BestMatch(utterance, names, match.Partial)
	if !ok || best.Score < stockResolveScore {
		return nil
	}
	for i := range products {
		if products[i].Name == best.Candidate {
			return &products[i]
		}
	}
	return nil
}
