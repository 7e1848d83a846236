package memory

import (
	"sort"
	"sync"

	"github.com/BeeeliB/waistless-app/internal/domain/models"
)

// LedgerStore holds the canonical household state for one session: the
// inventory map, per-roommate expense totals and the purchase/consumption
// logs. It performs no business validation; all rule enforcement lives in the
// inventory service, which is the only writer. The design assumes a single
// logical actor mutating the ledger; the mutex only serializes the HTTP
// layer, it is not a multi-writer consistency scheme.
type LedgerStore struct {
	mu        sync.RWMutex
	inventory map[string]models.InventoryItem
	expenses  map[string]float64
	purchases map[string][]models.PurchaseRecord
	consumed  map[string][]models.ConsumptionRecord
}

// NewLedgerStore creates an empty session ledger.
func NewLedgerStore() *LedgerStore {
	return &LedgerStore{
		inventory: make(map[string]models.InventoryItem),
		expenses:  make(map[string]float64),
		purchases: make(map[string][]models.PurchaseRecord),
		consumed:  make(map[string][]models.ConsumptionRecord),
	}
}

// EnsurePerson guarantees the three per-person structures exist with zero or
// empty defaults. Idempotent; the roommate roster changes independently of
// the ledger, so every operation referencing a person calls this first.
func (s *LedgerStore) EnsurePerson(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ensurePersonLocked(name)
}

func (s *LedgerStore) ensurePersonLocked(name string) {
	if _, ok := s.expenses[name]; !ok {
		s.expenses[name] = 0
	}
	if _, ok := s.purchases[name]; !ok {
		s.purchases[name] = []models.PurchaseRecord{}
	}
	if _, ok := s.consumed[name]; !ok {
		s.consumed[name] = []models.ConsumptionRecord{}
	}
}

// Item looks up the current stock entry for an ingredient name.
func (s *LedgerStore) Item(name string) (models.InventoryItem, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	item, ok := s.inventory[name]
	return item, ok
}

// PutItem stores or replaces the stock entry for an ingredient.
func (s *LedgerStore) PutItem(item models.InventoryItem) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.inventory[item.Name] = item
}

// DeleteItem drops an ingredient from the inventory map entirely.
func (s *LedgerStore) DeleteItem(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.inventory, name)
}

// AddExpense shifts a roommate's running expense total by delta, which may
// be negative when consumed value is credited back.
func (s *LedgerStore) AddExpense(person string, delta float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ensurePersonLocked(person)
	s.expenses[person] += delta
}

// AppendPurchase records an immutable purchase entry for a roommate.
func (s *LedgerStore) AppendPurchase(person string, record models.PurchaseRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ensurePersonLocked(person)
	s.purchases[person] = append(s.purchases[person], record)
}

// AppendConsumption records an immutable consumption entry for a roommate.
func (s *LedgerStore) AppendConsumption(person string, record models.ConsumptionRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ensurePersonLocked(person)
	s.consumed[person] = append(s.consumed[person], record)
}

// Items returns a copy of the inventory map.
func (s *LedgerStore) Items() map[string]models.InventoryItem {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make(map[string]models.InventoryItem, len(s.inventory))
	for name, item := range s.inventory {
		out[name] = item
	}
	return out
}

// ItemNames returns the ingredient names currently in stock, sorted so the
// full-pantry suggestion scan has a stable order.
func (s *LedgerStore) ItemNames() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	names := make([]string, 0, len(s.inventory))
	for name := range s.inventory {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Expenses returns a copy of the per-roommate expense totals.
func (s *LedgerStore) Expenses() map[string]float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make(map[string]float64, len(s.expenses))
	for name, total := range s.expenses {
		out[name] = total
	}
	return out
}

// PurchasesFor returns a copy of one roommate's purchase log.
func (s *LedgerStore) PurchasesFor(person string) []models.PurchaseRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()
	records := s.purchases[person]
	out := make([]models.PurchaseRecord, len(records))
	copy(out, records)
	return out
}

// ConsumptionFor returns a copy of one roommate's consumption log.
func (s *LedgerStore) ConsumptionFor(person string) []models.ConsumptionRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()
	records := s.consumed[person]
	out := make([]models.ConsumptionRecord, len(records))
	copy(out, records)
	return out
}
