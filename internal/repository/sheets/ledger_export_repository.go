package sheets

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"google.golang.org/api/option"
	sheetsapi "google.golang.org/api/sheets/v4"

	"github.com/BeeeliB/waistless-app/internal/config"
	"github.com/BeeeliB/waistless-app/internal/domain/models"
)

const (
	purchasesRange   = "Purchases!A:F"
	consumptionRange = "Consumption!A:F"
	timestampLayout  = "2006-01-02 15:04:05"
)

// Exporter defines the append-only spreadsheet export of ledger activity.
// Export is best effort and never part of a transaction's contract.
type Exporter interface {
	AppendPurchase(ctx context.Context, person string, record models.PurchaseRecord) error
	AppendConsumption(ctx context.Context, person string, record models.ConsumptionRecord) error
}

// GoogleSheetExporter implements Exporter using the official Google Sheets API.
type GoogleSheetExporter struct {
	service       *sheetsapi.Service
	spreadsheetID string
	logger        *zap.Logger
}

// NewGoogleSheetExporter builds a Google Sheets backed ledger exporter.
func NewGoogleSheetExporter(ctx context.Context, cfg config.SheetsConfig, logger *zap.Logger) (Exporter, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	service, err := sheetsapi.NewService(ctx, option.WithCredentialsFile(cfg.CredentialsPath), option.WithScopes(sheetsapi.SpreadsheetsScope))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize sheets client: %w", err)
	}

	return &GoogleSheetExporter{
		service:       service,
		spreadsheetID: cfg.SpreadsheetID,
		logger:        logger,
	}, nil
}

// AppendPurchase appends one purchase row to the household spreadsheet.
func (e *GoogleSheetExporter) AppendPurchase(ctx context.Context, person string, record models.PurchaseRecord) error {
	values := []interface{}{
		record.Date.Format(timestampLayout),
		person,
		record.Item,
		record.Quantity,
		string(record.Unit),
		record.Price,
	}
	return e.appendRow(ctx, purchasesRange, values)
}

// AppendConsumption appends one consumption row to the household spreadsheet.
func (e *GoogleSheetExporter) AppendConsumption(ctx context.Context, person string, record models.ConsumptionRecord) error {
	values := []interface{}{
		record.Date.Format(timestampLayout),
		person,
		record.Item,
		record.Quantity,
		string(record.Unit),
		record.ValueDeducted,
	}
	return e.appendRow(ctx, consumptionRange, values)
}

func (e *GoogleSheetExporter) appendRow(ctx context.Context, sheetRange string, values []interface{}) error {
	payload := &sheetsapi.ValueRange{Values: [][]interface{}{values}}

	call := e.service.Spreadsheets.Values.Append(e.spreadsheetID, sheetRange, payload).
		ValueInputOption("USER_ENTERED").
		InsertDataOption("INSERT_ROWS").
		Context(ctx)

	if _, err := call.Do(); err != nil {
		return fmt.Errorf("append row into range %s: %w", sheetRange, err)
	}

	e.logger.Debug("ledger row exported", zap.String("range", sheetRange))
	return nil
}
