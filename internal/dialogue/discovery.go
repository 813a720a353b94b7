package dialogue

import (
	"context"
	"fmt"
	"strings"

	"github.com/Qaizar-Master/retail-system/internal/catalog"
	"github.com/Qaizar-Master/retail-system/internal/match"
)

// Similarity thresholds for the discovery cascade. The bands trade
// precision for recall stage by stage: near-exact name match first, then
// taxonomy, then loose keywords, then the demographic catch-all.
const (
	// nameAcceptScore accepts the top name match outright.
	nameAcceptScore = 86
	// nameReviewScore opens the moderate band, which additionally needs
	// partial-overlap corroboration before the name match is taken.
	nameReviewScore        = 60
	nameCorroborateScore   = 60
	categorySlangScore     = 80
	categoryLabelScore     = 60
	maxDiscoveryResults    = 10
	pendingRefilterMinimum = 3
)

const (
	discoveryHelpMessage    = "I can recommend running shoes, casual wear, or electronics. What are you interested in?"
	discoveryNoMatchMessage = "I couldn't find any products matching that description."
	clarifyGenderMessage    = "Sure! Who are you shopping for?"
)

// DiscoveryHandler answers product discovery queries: catalog search with
// fuzzy matching, gender disambiguation, price filtering and a fallback
// cascade.
type DiscoveryHandler struct {
	gateway catalog.Gateway
	vocab   *Vocab
}

func NewDiscoveryHandler(gateway catalog.Gateway, vocab *Vocab) *DiscoveryHandler {
	return &DiscoveryHandler{gateway: gateway, vocab: vocab}
}

func (h *DiscoveryHandler) Name() string { return AgentDiscovery }

func (h *DiscoveryHandler) Process(ctx context.Context, utterance string, sess *SessionContext) (TurnResult, error) {
	products, err := h.gateway.GetProducts(ctx)
	if err != nil {
		return TurnResult{}, fmt.Errorf("failed to fetch catalog: %w", err)
	}
	ut := strings.ToLower(strings.TrimSpace(utterance))

	// Stage 1: demographic resolution. A broad query with no known gender
	// parks the query and asks who we are shopping for instead.
	marker := h.vocab.DetectGender(utterance)
	if marker != "" {
		sess.GenderFilter = marker
	}
	if h.vocab.IsBroad(ut) && sess.GenderFilter == "" && marker == "" {
		sess.PendingQuery = utterance
		return TurnResult{
			Content: clarifyGenderMessage,
			Options: []string{"Men", "Women"},
		}, nil
	}

	// Stage 2: narrow the candidate set by gender. Untagged and Unisex
	// entities always stay in.
	candidates := products
	if sess.GenderFilter != "" {
		candidates = filterByGender(products, sess.GenderFilter)
	}

	// Stage 3: search-text selection. When a clarification was outstanding
	// and a gender filter is present, the original broad query is consumed
	// in place of the current utterance.
	//
	// Sharp edge, kept on purpose: the pending query is restored whenever
	// any gender filter is present, not only when this very turn resolved
	// one.
	searchText := ut
	pendingText := ""
	if sess.PendingQuery != "" && sess.GenderFilter != "" {
		pendingText = strings.ToLower(strings.TrimSpace(sess.PendingQuery))
		searchText = pendingText
		sess.PendingQuery = ""
	}

	var matches []catalog.Product

	// Stage 4: fuzzy name matching. Skipped for broad search text, which
	// would otherwise lock onto a single spurious entity.
	if !h.vocab.IsBroad(searchText) {
		matches = h.matchByName(searchText, candidates)
	}

	// Stage 5: category matching via informal terms, then via the category
	// labels themselves.
	if len(matches) == 0 {
		matches = h.matchByCategory(searchText, candidates)
	}

	// Stage 6: loose keyword fallback over per-entity synonym sets.
	if len(matches) == 0 {
		matches = h.matchByKeywords(ut, candidates)
	}

	// Stage 7: inclusive upper-bound price constraint.
	if bound, ok := h.vocab.PriceBound(ut); ok {
		matches = filterByPrice(matches, bound)
	}

	// Stage 8: fallback cascade.
	if len(matches) == 0 {
		switch {
		case strings.Contains(ut, "shoes"):
			matches = filterByCategory(candidates, "Footwear")
		case strings.Contains(ut, "phone"):
			matches = filterByCategory(candidates, "Electronics")
		case sess.GenderFilter != "":
			matches = h.refilterBroadSet(candidates, pendingText)
		default:
			return TurnResult{Content: discoveryHelpMessage}, nil
		}
	}

	// Stage 9: nothing matched anywhere in the cascade.
	if len(matches) == 0 {
		return TurnResult{Content: discoveryNoMatchMessage}, nil
	}

	// Stage 10: remember the top match and list up to ten results.
	if len(matches) > maxDiscoveryResults {
		matches = matches[:maxDiscoveryResults]
	}
	sess.RememberProduct(matches[0])

	var b strings.Builder
	b.WriteString("Here are some options for you:\n")
	for _, p := range matches {
		fmt.Fprintf(&b, "- %s ($%.2f)\n", p.Name, p.Price)
	}
	return TurnResult{Content: strings.TrimRight(b.String(), "\n"), Products: matches}, nil
}

// matchByName accepts a single entity when its name scores high enough
// against the search text, with the moderate band requiring partial-overlap
// corroboration.
func (h *DiscoveryHandler) matchByName(searchText string, candidates []catalog.Product) []catalog.Product {
	names := make([]string, len(candidates))
	for i, p := range candidates {
		names[i] = p.Name
	}
	best, ok := match.BestMatch(searchText, names, match.WholeString)
	if !ok {
		return nil
	}
	accepted := best.Score >= nameAcceptScore ||
		(best.Score >= nameReviewScore &&
			match.Score(searchText, best.Candidate, match.Partial) >= nameCorroborateScore)
	if !accepted {
		return nil
	}
	for _, p := range candidates {
		if p.Name == best.Candidate {
			return []catalog.Product{p}
		}
	}
	return nil
}

// matchByCategory unions in every entity of any category whose informal
// terms overlap the search text; failing that, it compares the search text
// against the distinct category labels directly.
func (h *DiscoveryHandler) matchByCategory(searchText string, candidates []catalog.Product) []catalog.Product {
	hit := map[string]bool{}
	for _, cs := range h.vocab.CategorySlang {
		for _, term := range cs.Terms {
			if match.Score(term, searchText, match.Partial) >= categorySlangScore {
				hit[cs.Category] = true
				break
			}
		}
	}
	if len(hit) > 0 {
		var out []catalog.Product
		for _, p := range candidates {
			if hit[p.Category] {
				out = append(out, p)
			}
		}
		return out
	}

	labels := distinctCategories(candidates)
	best, ok := match.BestMatch(searchText, labels, match.WholeString)
	if !ok || best.Score < categoryLabelScore {
		return nil
	}
	return filterByCategory(candidates, best.Candidate)
}

// matchByKeywords includes an entity when any of its synonyms (category
// slang plus its own name words) appears inside the lowercased utterance.
func (h *DiscoveryHandler) matchByKeywords(utterance string, candidates []catalog.Product) []catalog.Product {
	var out []catalog.Product
	for _, p := range candidates {
		for _, syn := range h.synonymsFor(p) {
			if strings.Contains(utterance, syn) {
				out = append(out, p)
				break
			}
		}
	}
	return out
}

// refilterBroadSet is the gender catch-all: every narrowed entity, then an
// attempt to re-filter by the parked query's longer terms. An empty
// re-filter keeps the unfiltered broad set rather than returning nothing.
func (h *DiscoveryHandler) refilterBroadSet(candidates []catalog.Product, pendingText string) []catalog.Product {
	if pendingText == "" {
		return candidates
	}
	var refiltered []catalog.Product
	for _, p := range candidates {
		haystack := strings.ToLower(p.Name) + " " + strings.ToLower(p.Category) + " " + strings.Join(h.synonymsFor(p), " ")
		for _, term := range strings.Fields(pendingText) {
			if len(term) <= pendingRefilterMinimum {
				continue
			}
			if strings.Contains(haystack, term) {
				refiltered = append(refiltered, p)
				break
			}
		}
	}
	if len(refiltered) == 0 {
		return candidates
	}
	return refiltered
}

func (h *DiscoveryHandler) synonymsFor(p catalog.Product) []string {
	syns := make([]string, 0, 8)
	for _, t := range h.vocab.SlangFor(p.Category) {
		syns = append(syns, strings.ToLower(t))
	}
	for _, w := range strings.Fields(strings.ToLower(p.Name)) {
		if len(w) > pendingRefilterMinimum {
			syns = append(syns, w)
		}
	}
	return syns
}

func filterByGender(products []catalog.Product, gender string) []catalog.Product {
	var out []catalog.Product
	for _, p := range products {
		if p.Gender == "" || p.Gender == "Unisex" || p.Gender == gender {
			out = append(out, p)
		}
	}
	return out
}

func filterByCategory(products []catalog.Product, category string) []catalog.Product {
	var out []catalog.Product
	for _, p := range products {
		if strings.EqualFold(p.Category, category) {
			out = append(out, p)
		}
	}
	return out
}

func filterByPrice(products []catalog.Product, bound float64) []catalog.Product {
	var out []catalog.Product
	for _, p := range products {
		if p.Price <= bound {
			out = append(out, p)
		}
	}
	return out
}

func distinctCategories(products []catalog.Product) []string {
	seen := map[string]bool{}
	var out []string
	for _, p := range products {
		if !seen[p.Category] {
			seen[p.Category] = true
			out = append(out, p.Category)
		}
	}
	return out
}
