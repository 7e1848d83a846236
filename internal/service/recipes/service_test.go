package recipes

import (
	"context"
	"errors"
	"math/rand"
	"testing"

	"github.com/BeeeliB/waistless-app/pkg/clients/mealdb"
)

// mockMealClient implements mealdb.Client for testing.
type mockMealClient struct {
	meals map[string][]mealdb.Meal
	errs  map[string]error
	calls []string
}

func (m *mockMealClient) FilterByIngredient(ctx context.Context, ingredient string) ([]mealdb.Meal, error) {
	m.calls = append(m.calls, ingredient)
	if err := m.errs[ingredient]; err != nil {
		return nil, err
	}
	return m.meals[ingredient], nil
}

func newTestService(client mealdb.Client) *Service {
	return NewService(client, rand.New(rand.NewSource(1)), nil)
}

func TestSuggestCapAndDedup(t *testing.T) {
	client := &mockMealClient{meals: map[string][]mealdb.Meal{
		"tomato": {{Name: "Soup", ID: "1"}, {Name: "Salad", ID: "2"}, {Name: "Pasta", ID: "3"}, {Name: "Stew", ID: "4"}},
		"onion":  {{Name: "Soup", ID: "1"}, {Name: "Curry", ID: "5"}},
	}}
	svc := newTestService(client)

	batch, err := svc.Suggest(context.Background(), []string{"tomato", "onion"}, 3)
	if err != nil {
		t.Fatalf("suggest failed: %v", err)
	}

	if len(batch.Titles) > 3 {
		t.Fatalf("batch size %d exceeds cap", len(batch.Titles))
	}
	seen := map[string]bool{}
	for _, title := range batch.Titles {
		if seen[title] {
			t.Fatalf("duplicate title %q in batch", title)
		}
		seen[title] = true
		if _, ok := batch.Candidates[title]; !ok {
			t.Fatalf("title %q missing from candidate map", title)
		}
	}
}

func TestSuggestShortCircuitsAtCap(t *testing.T) {
	client := &mockMealClient{meals: map[string][]mealdb.Meal{
		"tomato": {{Name: "Soup", ID: "1"}, {Name: "Salad", ID: "2"}, {Name: "Pasta", ID: "3"}},
		"onion":  {{Name: "Curry", ID: "5"}},
	}}
	svc := newTestService(client)

	batch, err := svc.Suggest(context.Background(), []string{"tomato", "onion"}, 3)
	if err != nil {
		t.Fatalf("suggest failed: %v", err)
	}
	if len(batch.Titles) != 3 {
		t.Fatalf("batch size = %d, want 3", len(batch.Titles))
	}
	if len(client.calls) != 1 {
		t.Fatalf("lookup calls = %v, want the scan to stop after the first ingredient", client.calls)
	}
}

func TestSuggestInsertionOrderWithSingleCandidates(t *testing.T) {
	// One candidate per ingredient makes the shuffle a no-op, so discovery
	// order is fully determined by the ingredient order.
	client := &mockMealClient{meals: map[string][]mealdb.Meal{
		"fish": {{Name: "Tacos", ID: "10"}},
		"lime": {{Name: "Ceviche", ID: "11"}},
		"corn": {{Name: "Tacos", ID: "10"}},
		"rice": {{Name: "Paella", ID: "12"}},
	}}
	svc := newTestService(client)

	batch, err := svc.Suggest(context.Background(), []string{"fish", "lime", "corn", "rice"}, 3)
	if err != nil {
		t.Fatalf("suggest failed: %v", err)
	}

	want := []string{"Tacos", "Ceviche", "Paella"}
	if len(batch.Titles) != len(want) {
		t.Fatalf("titles = %v, want %v", batch.Titles, want)
	}
	for i, title := range want {
		if batch.Titles[i] != title {
			t.Fatalf("titles = %v, want %v", batch.Titles, want)
		}
	}
	if got := batch.Candidates["Tacos"].Link; got != "https://www.themealdb.com/meal/10" {
		t.Fatalf("Tacos link = %q", got)
	}
	if got := len(batch.Candidates["Tacos"].MissingIngredients); got != 0 {
		t.Fatalf("missing ingredients should be empty, got %d entries", got)
	}
}

func TestSuggestSameSeedSameBatch(t *testing.T) {
	meals := map[string][]mealdb.Meal{
		"tomato": {{Name: "Soup", ID: "1"}, {Name: "Salad", ID: "2"}, {Name: "Pasta", ID: "3"}, {Name: "Stew", ID: "4"}, {Name: "Curry", ID: "5"}},
	}

	first, err := newTestService(&mockMealClient{meals: meals}).Suggest(context.Background(), []string{"tomato"}, 3)
	if err != nil {
		t.Fatalf("first suggest failed: %v", err)
	}
	second, err := newTestService(&mockMealClient{meals: meals}).Suggest(context.Background(), []string{"tomato"}, 3)
	if err != nil {
		t.Fatalf("second suggest failed: %v", err)
	}

	if len(first.Titles) != len(second.Titles) {
		t.Fatalf("batches differ in size: %v vs %v", first.Titles, second.Titles)
	}
	for i := range first.Titles {
		if first.Titles[i] != second.Titles[i] {
			t.Fatalf("batches differ with identical seed: %v vs %v", first.Titles, second.Titles)
		}
	}
}

func TestSuggestEmptyIngredients(t *testing.T) {
	client := &mockMealClient{}
	svc := newTestService(client)

	batch, err := svc.Suggest(context.Background(), nil, 3)
	if !errors.Is(err, ErrNoIngredients) {
		t.Fatalf("err = %v, want ErrNoIngredients", err)
	}
	if len(batch.Titles) != 0 {
		t.Fatalf("batch should be empty, got %v", batch.Titles)
	}
	if len(client.calls) != 0 {
		t.Fatalf("no lookups expected for empty input, got %v", client.calls)
	}
}

func TestSuggestDiscardsPartialResultsOnLookupFailure(t *testing.T) {
	client := &mockMealClient{
		meals: map[string][]mealdb.Meal{
			"tomato": {{Name: "Soup", ID: "1"}},
		},
		errs: map[string]error{
			"onion": errors.New("status 500"),
		},
	}
	svc := newTestService(client)

	batch, err := svc.Suggest(context.Background(), []string{"tomato", "onion"}, 3)
	if !errors.Is(err, ErrLookupFailed) {
		t.Fatalf("err = %v, want ErrLookupFailed", err)
	}
	if len(batch.Titles) != 0 || len(batch.Candidates) != 0 {
		t.Fatalf("partial results must be discarded, got %+v", batch)
	}
}

func TestSuggestSkipsIngredientsWithoutMeals(t *testing.T) {
	client := &mockMealClient{meals: map[string][]mealdb.Meal{
		"unicorn": nil,
		"tomato":  {{Name: "Soup", ID: "1"}},
	}}
	svc := newTestService(client)

	batch, err := svc.Suggest(context.Background(), []string{"unicorn", "tomato"}, 3)
	if err != nil {
		t.Fatalf("suggest failed: %v", err)
	}
	if len(batch.Titles) != 1 || batch.Titles[0] != "Soup" {
		t.Fatalf("titles = %v, want [Soup]", batch.Titles)
	}
}
