package handlers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/BeeeliB/waistless-app/internal/domain/models"
	"github.com/BeeeliB/waistless-app/internal/repository/memory"
	"github.com/BeeeliB/waistless-app/internal/repository/sheets"
	"github.com/BeeeliB/waistless-app/internal/service/inventory"
)

// LedgerHandler exposes the inventory ledger over HTTP.
type LedgerHandler struct {
	inventorySvc *inventory.Service
	store        *memory.LedgerStore
	roster       *memory.Roster
	exporter     sheets.Exporter
	logger       *zap.Logger
}

// NewLedgerHandler constructs the ledger HTTP adapter. The exporter may be
// nil; spreadsheet export is best effort and never blocks a transaction.
func NewLedgerHandler(inventorySvc *inventory.Service, store *memory.LedgerStore, roster *memory.Roster, exporter sheets.Exporter, logger *zap.Logger) *LedgerHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LedgerHandler{
		inventorySvc: inventorySvc,
		store:        store,
		roster:       roster,
		exporter:     exporter,
		logger:       logger,
	}
}

// AddItem books a purchase transaction.
func (h *LedgerHandler) AddItem(c *gin.Context) {
	var req models.AddItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid add payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	record, err := h.inventorySvc.Add(req.Item, req.Quantity, req.Unit, req.Price, req.Person)
	if err != nil {
		h.renderLedgerError(c, err)
		return
	}

	h.exportPurchase(req.Person, record)
	c.JSON(http.StatusCreated, gin.H{"purchase": record})
}

// RemoveItem books a consumption transaction.
func (h *LedgerHandler) RemoveItem(c *gin.Context) {
	var req models.RemoveItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid remove payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	unit := req.Unit
	if unit == "" {
		// The UI removes in the unit the item was stored with.
		if item, ok := h.store.Item(req.Item); ok {
			unit = item.Unit
		}
	}

	record, err := h.inventorySvc.Remove(req.Item, req.Quantity, unit, req.Person)
	if err != nil {
		h.renderLedgerError(c, err)
		return
	}

	h.exportConsumption(req.Person, record)
	c.JSON(http.StatusOK, gin.H{"consumption": record})
}

// ListInventory returns the current stock.
func (h *LedgerHandler) ListInventory(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"inventory": h.store.Items()})
}

// ListExpenses returns per-roommate expense totals.
func (h *LedgerHandler) ListExpenses(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"expenses": h.store.Expenses()})
}

// ListPurchases returns one roommate's purchase log.
func (h *LedgerHandler) ListPurchases(c *gin.Context) {
	name := c.Param("name")
	h.store.EnsurePerson(name)
	c.JSON(http.StatusOK, gin.H{"person": name, "purchases": h.store.PurchasesFor(name)})
}

// ListConsumption returns one roommate's consumption log.
func (h *LedgerHandler) ListConsumption(c *gin.Context) {
	name := c.Param("name")
	h.store.EnsurePerson(name)
	c.JSON(http.StatusOK, gin.H{"person": name, "consumption": h.store.ConsumptionFor(name)})
}

// ListRoommates returns the roster in insertion order.
func (h *LedgerHandler) ListRoommates(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"roommates": h.roster.Names()})
}

// AddRoommate appends a name to the roster. Ledger state for the new name is
// initialized lazily on first use.
func (h *LedgerHandler) AddRoommate(c *gin.Context) {
	var req models.AddRoommateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if !h.roster.Add(req.Name) {
		c.JSON(http.StatusConflict, gin.H{"error": "roommate already exists"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"roommates": h.roster.Names()})
}

func (h *LedgerHandler) renderLedgerError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, inventory.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, inventory.ErrItemNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, inventory.ErrInsufficientStock):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		h.logger.Error("ledger transaction failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "transaction failed"})
	}
}

func (h *LedgerHandler) exportPurchase(person string, record models.PurchaseRecord) {
	if h.exporter == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := h.exporter.AppendPurchase(ctx, person, record); err != nil {
		h.logger.Warn("purchase export failed", zap.Error(err))
	}
}

func (h *LedgerHandler) exportConsumption(person string, record models.ConsumptionRecord) {
	if h.exporter == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := h.exporter.AppendConsumption(ctx, person, record); err != nil {
		h.logger.Warn("consumption export failed", zap.Error(err))
	}
}
