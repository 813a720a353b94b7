package dialogue

import (
	_ "embed"
	"fmt"
	"os"
	"regexp"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed vocab.yaml
var defaultVocabYAML []byte

// Demographic is one recognizable shopper segment with its utterance markers.
type Demographic struct {
	Label   string   `yaml:"label"`
	Markers []string `yaml:"markers"`
}

// CategorySlang maps informal terms to a canonical catalog category.
type CategorySlang struct {
	Category string   `yaml:"category"`
	Terms    []string `yaml:"terms"`
}

// RouteKeywords are the explicit keyword tables consulted by the Router.
type RouteKeywords struct {
	Stock    []string `yaml:"stock"`
	Checkout []string `yaml:"checkout"`
	Tracking []string `yaml:"tracking"`
}

// Vocab holds every keyword table used for deterministic routing and
// matching. All classification in this system is table-driven; there is no
// learned model anywhere.
type Vocab struct {
	BroadTerms      []string        `yaml:"broad_terms"`
	Demographics    []Demographic   `yaml:"demographics"`
	CategorySlang   []CategorySlang `yaml:"category_slang"`
	Routes          RouteKeywords   `yaml:"routes"`
	StockHints      []string        `yaml:"stock_hints"`
	PurchaseHints   []string        `yaml:"purchase_hints"`
	Pronouns        []string        `yaml:"pronouns"`
	Affirmatives    []string        `yaml:"affirmatives"`
	Negatives       []string        `yaml:"negatives"`
	PriceBoundWords []string        `yaml:"price_bound_words"`

	priceRe *regexp.Regexp
}

// LoadVocab reads a vocabulary YAML file, falling back to the embedded
// default when path is empty.
func LoadVocab(path string) (*Vocab, error) {
	raw := defaultVocabYAML
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read vocab file: %w", err)
		}
		raw = b
	}
	var v Vocab
	if err := yaml.Unmarshal(raw, &v); err != nil {
		return nil, fmt.Errorf("failed to parse vocab: %w", err)
	}
	if err := v.compile(); err != nil {
		return nil, err
	}
	return &v, nil
}

// MustDefaultVocab returns the embedded vocabulary and panics on a broken
// embed, which can only happen from editing vocab.yaml.
func MustDefaultVocab() *Vocab {
	v, err := LoadVocab("")
	if err != nil {
		panic(err)
	}
	return v
}

func (v *Vocab) compile() error {
	if len(v.PriceBoundWords) == 0 {
		v.PriceBoundWords = []string{"under", "below", "less than"}
	}
	escaped := make([]string, len(v.PriceBoundWords))
	for i, w := range v.PriceBoundWords {
		escaped[i] = regexp.QuoteMeta(strings.ToLower(w))
	}
	re, err := regexp.Compile(`(?:` + strings.Join(escaped, "|") + `)\s*(?:rs\.?|inr|₹|\$)?\s*(\d+)`)
	if err != nil {
		return fmt.Errorf("failed to compile price pattern: %w", err)
	}
	v.priceRe = re
	return nil
}

// DetectGender scans the utterance for whole-word demographic markers and
// returns the matched label, or "".
func (v *Vocab) DetectGender(utterance string) string {
	padded := paddedWords(utterance)
	for _, d := range v.Demographics {
		for _, marker := range d.Markers {
			if strings.Contains(padded, " "+strings.ToLower(marker)+" ") {
				return d.Label
			}
		}
	}
	return ""
}

// IsBroad reports whether text expresses generic apparel/outfit intent
// rather than naming anything concrete.
func (v *Vocab) IsBroad(text string) bool {
	m := strings.ToLower(text)
	for _, term := range v.BroadTerms {
		if strings.Contains(m, strings.ToLower(term)) {
			return true
		}
	}
	return false
}

// HasPronoun reports whether the utterance contains a whole-word product
// pronoun ("it", "that", "this").
func (v *Vocab) HasPronoun(utterance string) bool {
	padded := paddedWords(utterance)
	for _, p := range v.Pronouns {
		if strings.Contains(padded, " "+strings.ToLower(p)+" ") {
			return true
		}
	}
	return false
}

// IsBareDecision reports whether the utterance is a bare yes/no style reply.
func (v *Vocab) IsBareDecision(utterance string) bool {
	return v.IsAffirmative(utterance) || v.IsNegative(utterance)
}

// IsAffirmative reports whether the utterance opens with an affirmative
// word and carries no further request.
func (v *Vocab) IsAffirmative(utterance string) bool {
	return leadsWith(utterance, v.Affirmatives)
}

// IsNegative reports the same for negatives.
func (v *Vocab) IsNegative(utterance string) bool {
	return leadsWith(utterance, v.Negatives)
}

// SlangFor returns the informal terms for a canonical category.
func (v *Vocab) SlangFor(category string) []string {
	for _, cs := range v.CategorySlang {
		if strings.EqualFold(cs.Category, category) {
			return cs.Terms
		}
	}
	return nil
}

// PriceBound extracts an inclusive upper price bound from the utterance.
func (v *Vocab) PriceBound(utterance string) (float64, bool) {
	m := v.priceRe.FindStringSubmatch(strings.ToLower(utterance))
	if m == nil {
		return 0, false
	}
	n, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

// paddedWords lower-cases the utterance, collapses punctuation to spaces and
// pads it so whole-word containment checks can use " word " windows.
func paddedWords(s string) string {
	var b strings.Builder
	b.WriteByte(' ')
	for _, r := range strings.ToLower(s) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '\'' {
			b.WriteRune(r)
		} else {
			b.WriteByte(' ')
		}
	}
	b.WriteByte(' ')
	return b.String()
}

func leadsWith(utterance string, words []string) bool {
	tokens := strings.Fields(strings.TrimSpace(paddedWords(utterance)))
	if len(tokens) == 0 || len(tokens) > 3 {
		return false
	}
	for _, w := range words {
		if tokens[0] == strings.ToLower(w) {
			return true
		}
	}
	return false
}

func containsAny(s string, needles []string) bool {
	for _, n := range needles {
		if strings.Contains(s, strings.ToLower(n)) {
			return true
		}
	}
	return false
}
