package memory

import (
	"testing"
	"time"

	"github.com/BeeeliB/waistless-app/internal/domain/models"
)

func TestEnsurePersonIsIdempotent(t *testing.T) {
	store := NewLedgerStore()

	store.EnsurePerson("Bilbo")
	store.AddExpense("Bilbo", 12.5)
	store.AppendPurchase("Bilbo", models.PurchaseRecord{Item: "Bread", Quantity: 1, Unit: models.UnitPieces, Price: 12.5, Date: time.Now()})

	// A second ensure must not reset the existing structures.
	store.EnsurePerson("Bilbo")

	if got := store.Expenses()["Bilbo"]; got != 12.5 {
		t.Fatalf("expense reset by EnsurePerson: %v", got)
	}
	if got := len(store.PurchasesFor("Bilbo")); got != 1 {
		t.Fatalf("purchase log reset by EnsurePerson: %d entries", got)
	}
}

func TestEnsurePersonInitializesDefaults(t *testing.T) {
	store := NewLedgerStore()
	store.EnsurePerson("Frodo")

	if got, ok := store.Expenses()["Frodo"]; !ok || got != 0 {
		t.Fatalf("expense default = %v (present %v), want 0", got, ok)
	}
	if store.PurchasesFor("Frodo") == nil {
		t.Fatalf("purchase log must be initialized empty, not nil")
	}
	if store.ConsumptionFor("Frodo") == nil {
		t.Fatalf("consumption log must be initialized empty, not nil")
	}
}

func TestViewsReturnCopies(t *testing.T) {
	store := NewLedgerStore()
	store.PutItem(models.InventoryItem{Name: "Tomato", Quantity: 5, Unit: models.UnitGrams, Value: 3})

	items := store.Items()
	items["Tomato"] = models.InventoryItem{Name: "Tomato", Quantity: 99}

	if item, _ := store.Item("Tomato"); item.Quantity != 5 {
		t.Fatalf("mutating the view leaked into the store: %+v", item)
	}

	store.AppendConsumption("Bilbo", models.ConsumptionRecord{Item: "Tomato", Quantity: 1, Unit: models.UnitGrams, ValueDeducted: 0.6})
	log := store.ConsumptionFor("Bilbo")
	log[0].ValueDeducted = 999

	if got := store.ConsumptionFor("Bilbo")[0].ValueDeducted; got != 0.6 {
		t.Fatalf("mutating the log view leaked into the store: %v", got)
	}
}

func TestDeleteItemRemovesEntry(t *testing.T) {
	store := NewLedgerStore()
	store.PutItem(models.InventoryItem{Name: "Onion", Quantity: 2, Unit: models.UnitPieces, Value: 1.5})

	store.DeleteItem("Onion")

	if _, ok := store.Item("Onion"); ok {
		t.Fatalf("Onion should be gone after delete")
	}
	if got := len(store.ItemNames()); got != 0 {
		t.Fatalf("item names = %d entries, want 0", got)
	}
}

func TestRosterKeepsOrderAndDedups(t *testing.T) {
	roster := NewRoster([]string{"Bilbo", "Frodo", "Bilbo", "", "Gandalf der Weise"})

	want := []string{"Bilbo", "Frodo", "Gandalf der Weise"}
	got := roster.Names()
	if len(got) != len(want) {
		t.Fatalf("names = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("names = %v, want %v", got, want)
		}
	}

	if roster.Add("Frodo") {
		t.Fatalf("duplicate add must report false")
	}
	if !roster.Add("Samwise") {
		t.Fatalf("new name add must report true")
	}
	if !roster.Contains("Samwise") || roster.Contains("Sauron") {
		t.Fatalf("contains lookup broken")
	}
}
