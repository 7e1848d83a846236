package scorer

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/BeeeliB/waistless-app/internal/config"
)

// Client defines the opaque ingredient-to-recipe classifier boundary. The
// model itself is a black box served over HTTP; this client only carries the
// fixed input/output contract.
type Client interface {
	Predict(ctx context.Context, ingredientsFeature string) (RawPrediction, error)
	DecodeCuisine(index int) (string, error)
	DecodeRecipe(index int) (string, error)
}

// RawPrediction is the model server output in its fixed order: two class
// indices and two continuous estimates.
type RawPrediction struct {
	CuisineIndex int     `json:"cuisine_index"`
	RecipeIndex  int     `json:"recipe_index"`
	PrepMinutes  float64 `json:"preparation_time"`
	Calories     float64 `json:"calories"`
}

type predictRequest struct {
	Ingredients string `json:"ingredients"`
}

// HTTPClient is a resty-backed Client that also holds the label tables used
// to decode the two class indices.
type HTTPClient struct {
	httpClient    *resty.Client
	cuisineLabels []string
	recipeLabels  []string
}

// NewClient builds the scorer client and loads both label decoder files.
func NewClient(cfg config.ScorerConfig) (*HTTPClient, error) {
	cuisineLabels, err := loadLabels(cfg.CuisineLabelsPath)
	if err != nil {
		return nil, fmt.Errorf("load cuisine labels: %w", err)
	}

	recipeLabels, err := loadLabels(cfg.RecipeLabelsPath)
	if err != nil {
		return nil, fmt.Errorf("load recipe labels: %w", err)
	}

	restyClient := resty.New().
		SetBaseURL(strings.TrimSuffix(cfg.BaseURL, "/")).
		SetHeader("Content-Type", "application/json").
		SetTimeout(15 * time.Second)

	return &HTTPClient{
		httpClient:    restyClient,
		cuisineLabels: cuisineLabels,
		recipeLabels:  recipeLabels,
	}, nil
}

// Predict sends the joined ingredient feature to the model server.
func (c *HTTPClient) Predict(ctx context.Context, ingredientsFeature string) (RawPrediction, error) {
	result := new(RawPrediction)

	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetBody(predictRequest{Ingredients: ingredientsFeature}).
		SetResult(result).
		Post("/predict")
	if err != nil {
		return RawPrediction{}, fmt.Errorf("scorer prediction call: %w", err)
	}
	if resp.IsError() {
		return RawPrediction{}, fmt.Errorf("scorer error: status=%d body=%s", resp.StatusCode(), resp.String())
	}

	return *result, nil
}

// DecodeCuisine maps a cuisine class index back to its label.
func (c *HTTPClient) DecodeCuisine(index int) (string, error) {
	return decode(c.cuisineLabels, index, "cuisine")
}

// DecodeRecipe maps a recipe class index back to its label.
func (c *HTTPClient) DecodeRecipe(index int) (string, error) {
	return decode(c.recipeLabels, index, "recipe")
}

func decode(labels []string, index int, kind string) (string, error) {
	if index < 0 || index >= len(labels) {
		return "", fmt.Errorf("%s class index %d out of range (%d labels)", kind, index, len(labels))
	}
	return labels[index], nil
}

// loadLabels reads a JSON array of class labels, index-aligned with the
// model's output heads.
func loadLabels(path string) ([]string, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read label file %s: %w", path, err)
	}

	var labels []string
	if err := json.Unmarshal(raw, &labels); err != nil {
		return nil, fmt.Errorf("parse label file %s: %w", path, err)
	}
	if len(labels) == 0 {
		return nil, fmt.Errorf("label file %s contains no labels", path)
	}

	return labels, nil
}
