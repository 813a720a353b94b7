package dialogue

import "github.com/Qaizar-Master/retail-system/internal/catalog"

// SessionContext is the per-conversation slot state carried across turns.
// One instance belongs to exactly one session and is mutated in place; the
// transport layer owns its storage and must not process two turns against
// it concurrently.
//
// All slots are monotonic (set and then only overwritten) except
// PendingQuery, which is consume-and-clear: it holds a broad query while a
// gender clarification is outstanding and is cleared only once a gender
// filter is actually available.
type SessionContext struct {
	// LastAgent names the handler that produced the previous turn's result.
	LastAgent string `json:"lastAgent,omitempty"`
	// LastProductID / LastProductName identify the most recently surfaced
	// or referenced catalog entity.
	LastProductID   string `json:"lastProductId,omitempty"`
	LastProductName string `json:"lastProductName,omitempty"`
	// GenderFilter is "", "Men" or "Women".
	GenderFilter string `json:"genderFilter,omitempty"`
	// PendingQuery holds an under-specified query awaiting clarification.
	PendingQuery string `json:"pendingQuery,omitempty"`
}

// RememberProduct records the entity a turn resolved to.
func (s *SessionContext) RememberProduct(p catalog.Product) {
	s.LastProductID = p.ID
	s.LastProductName = p.Name
}
