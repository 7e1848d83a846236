package inventory

import (
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/BeeeliB/waistless-app/internal/domain/models"
	"github.com/BeeeliB/waistless-app/internal/repository/memory"
)

// ErrInvalidInput indicates a malformed transaction: missing item or person,
// non-positive quantity or negative price. Nothing is mutated.
var ErrInvalidInput = errors.New("invalid transaction input")

// ErrItemNotFound indicates a removal referenced an ingredient that is not
// in the inventory.
var ErrItemNotFound = errors.New("item not in inventory")

// ErrInsufficientStock indicates a removal asked for more than the current
// stock. Nothing is mutated.
var ErrInsufficientStock = errors.New("quantity exceeds available stock")

// Service applies purchase and consumption transactions to the session
// ledger. Transactions are all-or-nothing: every precondition is checked
// before the first mutation.
type Service struct {
	store  *memory.LedgerStore
	roster *memory.Roster
	logger *zap.Logger
	now    func() time.Time
}

// NewService constructs the inventory transaction service.
func NewService(store *memory.LedgerStore, roster *memory.Roster, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		store:  store,
		roster: roster,
		logger: logger,
		now:    time.Now,
	}
}

// Add books a purchase: stock and value accumulate on the item, the full
// purchase price lands on the buyer's expense total and an immutable
// purchase record is appended to their log.
//
// When an item is re-added with a different unit than its existing entry the
// quantities are summed as-is; there is no unit reconciliation.
func (s *Service) Add(item string, quantity float64, unit models.Unit, price float64, person string) (models.PurchaseRecord, error) {
	if item == "" || quantity <= 0 || price < 0 || person == "" {
		return models.PurchaseRecord{}, ErrInvalidInput
	}
	if !s.roster.Contains(person) {
		return models.PurchaseRecord{}, ErrInvalidInput
	}

	s.store.EnsurePerson(person)

	if existing, ok := s.store.Item(item); ok {
		existing.Quantity += quantity
		existing.Value += price
		s.store.PutItem(existing)
	} else {
		s.store.PutItem(models.InventoryItem{
			Name:     item,
			Quantity: quantity,
			Unit:     unit,
			Value:    price,
		})
	}

	record := models.PurchaseRecord{
		Item:     item,
		Quantity: quantity,
		Unit:     unit,
		Price:    price,
		Date:     s.now(),
	}

	s.store.AddExpense(person, price)
	s.store.AppendPurchase(person, record)

	s.logger.Info("item added to inventory",
		zap.String("item", item),
		zap.Float64("quantity", quantity),
		zap.Float64("price", price),
		zap.String("person", person))

	return record, nil
}

// Remove books a consumption. The value removed is the weighted-average
// worth of the consumed quantity, recomputed from the item's current totals:
// repeated restocking at different prices is naturally averaged, and the
// same average is credited back against the consumer's expense total. When
// the remaining quantity reaches zero the item is dropped from the inventory
// map; any residual value is discarded with it.
func (s *Service) Remove(item string, quantity float64, unit models.Unit, person string) (models.ConsumptionRecord, error) {
	if item == "" || quantity <= 0 || person == "" {
		return models.ConsumptionRecord{}, ErrInvalidInput
	}
	if !s.roster.Contains(person) {
		return models.ConsumptionRecord{}, ErrInvalidInput
	}

	s.store.EnsurePerson(person)

	current, ok := s.store.Item(item)
	if !ok {
		return models.ConsumptionRecord{}, ErrItemNotFound
	}
	if quantity > current.Quantity {
		return models.ConsumptionRecord{}, ErrInsufficientStock
	}

	pricePerUnit := 0.0
	if current.Quantity > 0 {
		pricePerUnit = current.Value / current.Quantity
	}
	deducted := pricePerUnit * quantity

	current.Quantity -= quantity
	current.Value -= deducted
	if current.Quantity <= 0 {
		s.store.DeleteItem(item)
	} else {
		s.store.PutItem(current)
	}

	record := models.ConsumptionRecord{
		Item:          item,
		Quantity:      quantity,
		Unit:          unit,
		ValueDeducted: deducted,
		Date:          s.now(),
	}

	s.store.AddExpense(person, -deducted)
	s.store.AppendConsumption(person, record)

	s.logger.Info("item removed from inventory",
		zap.String("item", item),
		zap.Float64("quantity", quantity),
		zap.Float64("value_deducted", deducted),
		zap.String("person", person))

	return record, nil
}
