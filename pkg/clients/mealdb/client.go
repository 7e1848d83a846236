package mealdb

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/BeeeliB/waistless-app/internal/config"
)

// Client exposes the meal-database lookup used by the suggestion service.
type Client interface {
	FilterByIngredient(ctx context.Context, ingredient string) ([]Meal, error)
}

// APIClient is a resty-backed implementation of Client against TheMealDB.
type APIClient struct {
	httpClient *resty.Client
	baseURL    string
}

// NewClient builds a meal-database client from the provided configuration.
func NewClient(cfg config.MealDBConfig) *APIClient {
	base := strings.TrimSuffix(cfg.BaseURL, "/")

	restyClient := resty.New()
	restyClient.
		SetBaseURL(base).
		SetHeader("Accept", "application/json").
		SetTimeout(15 * time.Second)

	return &APIClient{
		httpClient: restyClient,
		baseURL:    base,
	}
}

// Meal is one meal summary returned by the filter endpoint.
type Meal struct {
	Name string `json:"strMeal"`
	ID   string `json:"idMeal"`
}

// filterResponse mirrors the filter.php payload. Meals is null when nothing
// matches the ingredient.
type filterResponse struct {
	Meals []Meal `json:"meals"`
}

// FilterByIngredient returns the meal summaries that use the given
// ingredient. An ingredient with no matches yields an empty slice, not an
// error; any non-success status is an error.
func (c *APIClient) FilterByIngredient(ctx context.Context, ingredient string) ([]Meal, error) {
	result := new(filterResponse)

	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetQueryParam("i", ingredient).
		SetResult(result).
		Get("/filter.php")
	if err != nil {
		return nil, fmt.Errorf("filter meals by ingredient %q: %w", ingredient, err)
	}

	if resp.StatusCode() != http.StatusOK {
		return nil, fmt.Errorf("meal database error: status=%d", resp.StatusCode())
	}

	return result.Meals, nil
}

// MealURL builds the public detail page link for a meal identifier.
func MealURL(id string) string {
	return fmt.Sprintf("https://www.themealdb.com/meal/%s", id)
}
