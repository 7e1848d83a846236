package reporting

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/BeeeliB/waistless-app/internal/domain/models"
	"github.com/BeeeliB/waistless-app/internal/repository/memory"
	"github.com/BeeeliB/waistless-app/internal/repository/mongodb"
)

const dateLayout = "2006-01-02"

// Service builds periodic expense digests from the session ledger and
// archives them when a report store is configured.
type Service struct {
	store   *memory.LedgerStore
	roster  *memory.Roster
	archive mongodb.Repository
	logger  *zap.Logger
	now     func() time.Time
}

// NewService wires a new reporting service instance. The archive may be nil
// when MongoDB is not configured; digests are then only logged.
func NewService(store *memory.LedgerStore, roster *memory.Roster, archive mongodb.Repository, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		store:   store,
		roster:  roster,
		archive: archive,
		logger:  logger,
		now:     time.Now,
	}
}

// BuildReport snapshots the current household state into a report record.
func (s *Service) BuildReport() models.HouseholdReport {
	generatedAt := s.now().UTC()

	expenses := s.store.Expenses()
	items := s.store.Items()

	var inventoryValue float64
	for _, item := range items {
		inventoryValue += item.Value
	}

	var purchases, consumptions int
	for _, name := range s.roster.Names() {
		purchases += len(s.store.PurchasesFor(name))
		consumptions += len(s.store.ConsumptionFor(name))
	}

	return models.HouseholdReport{
		ID:             uuid.NewString(),
		Date:           generatedAt,
		Expenses:       expenses,
		InventoryValue: inventoryValue,
		ItemCount:      len(items),
		Purchases:      purchases,
		Consumptions:   consumptions,
		CreatedAt:      generatedAt,
	}
}

// FormatReport renders a digest as a human-readable summary, roommates in
// descending expense order.
func (s *Service) FormatReport(report models.HouseholdReport) string {
	type line struct {
		name  string
		total float64
	}

	lines := make([]line, 0, len(report.Expenses))
	for name, total := range report.Expenses {
		lines = append(lines, line{name: name, total: total})
	}
	sort.Slice(lines, func(i, j int) bool {
		if lines[i].total == lines[j].total {
			return lines[i].name < lines[j].name
		}
		return lines[i].total > lines[j].total
	})

	var b strings.Builder
	fmt.Fprintf(&b, "Household digest %s: %d items worth %.2f CHF, %d purchases, %d consumptions.",
		report.Date.Format(dateLayout), report.ItemCount, report.InventoryValue, report.Purchases, report.Consumptions)
	for _, l := range lines {
		fmt.Fprintf(&b, "\n%s: %.2f CHF", l.name, l.total)
	}

	return b.String()
}

// GenerateDigest builds, archives and renders the current digest. Archive
// failures do not block the rendered summary.
func (s *Service) GenerateDigest(ctx context.Context) (string, error) {
	report := s.BuildReport()

	if s.archive != nil {
		if err := s.archive.SaveHouseholdReport(ctx, report); err != nil {
			s.logger.Error("failed to archive household report", zap.Error(err))
		} else {
			s.logger.Info("household report archived", zap.String("report_id", report.ID))
		}
	}

	return s.FormatReport(report), nil
}
