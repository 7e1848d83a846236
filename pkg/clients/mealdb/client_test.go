package mealdb

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/BeeeliB/waistless-app/internal/config"
)

func TestFilterByIngredient(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/filter.php" {
			t.Fatalf("path = %q, want /filter.php", r.URL.Path)
		}
		switch r.URL.Query().Get("i") {
		case "tomato":
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"meals":[{"strMeal":"Tomato Soup","idMeal":"52771"},{"strMeal":"Bruschetta","idMeal":"52772"}]}`))
		case "unicorn":
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"meals":null}`))
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
	}))
	defer ts.Close()

	client := NewClient(config.MealDBConfig{BaseURL: ts.URL})

	meals, err := client.FilterByIngredient(context.Background(), "tomato")
	if err != nil {
		t.Fatalf("lookup failed: %v", err)
	}
	if len(meals) != 2 || meals[0].Name != "Tomato Soup" || meals[0].ID != "52771" {
		t.Fatalf("meals = %+v", meals)
	}

	meals, err = client.FilterByIngredient(context.Background(), "unicorn")
	if err != nil {
		t.Fatalf("empty result must not error: %v", err)
	}
	if len(meals) != 0 {
		t.Fatalf("meals = %+v, want none", meals)
	}

	if _, err := client.FilterByIngredient(context.Background(), "broken"); err == nil {
		t.Fatalf("non-success status must error")
	}
}

func TestMealURL(t *testing.T) {
	if got := MealURL("52771"); got != "https://www.themealdb.com/meal/52771" {
		t.Fatalf("meal url = %q", got)
	}
}
