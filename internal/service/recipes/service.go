package recipes

import (
	"context"
	"errors"
	"fmt"
	"math/rand"

	"go.uber.org/zap"

	"github.com/BeeeliB/waistless-app/internal/domain/models"
	"github.com/BeeeliB/waistless-app/pkg/clients/mealdb"
)

// ErrNoIngredients is the advisory signal for an empty ingredient selection.
// The batch is empty but the caller can recover by adding stock first.
var ErrNoIngredients = errors.New("no ingredients to search with")

// ErrLookupFailed indicates the meal-database collaborator failed mid-batch.
// Partial results are discarded rather than returned.
var ErrLookupFailed = errors.New("recipe lookup failed")

// DefaultCap bounds one suggestion batch.
const DefaultCap = 3

// Service aggregates meal-database lookups into a deduplicated, capped
// suggestion batch.
type Service struct {
	client mealdb.Client
	logger *zap.Logger
	rng    *rand.Rand
}

// NewService constructs the suggestion aggregator. The random source drives
// the per-ingredient shuffle so the same meal does not always surface first;
// tests inject a seeded source for deterministic batches.
func NewService(client mealdb.Client, rng *rand.Rand, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		client: client,
		logger: logger,
		rng:    rng,
	}
}

// Suggest walks the ingredients in their given order, fetches each one's
// candidate meals, shuffles them, and appends titles not yet in the batch
// until limit suggestions are accumulated. Hitting the cap stops the whole
// scan, not just the current ingredient. Titles come back in discovery
// order.
func (s *Service) Suggest(ctx context.Context, ingredients []string, limit int) (models.SuggestionBatch, error) {
	batch := models.SuggestionBatch{
		Titles:     []string{},
		Candidates: make(map[string]models.RecipeCandidate),
	}

	if len(ingredients) == 0 {
		return batch, ErrNoIngredients
	}
	if limit <= 0 {
		limit = DefaultCap
	}

	for _, ingredient := range ingredients {
		meals, err := s.client.FilterByIngredient(ctx, ingredient)
		if err != nil {
			s.logger.Warn("meal lookup failed, discarding batch",
				zap.String("ingredient", ingredient),
				zap.Error(err))
			return models.SuggestionBatch{}, fmt.Errorf("%w: %v", ErrLookupFailed, err)
		}

		s.rng.Shuffle(len(meals), func(i, j int) {
			meals[i], meals[j] = meals[j], meals[i]
		})

		for _, meal := range meals {
			if _, seen := batch.Candidates[meal.Name]; seen {
				continue
			}
			batch.Titles = append(batch.Titles, meal.Name)
			batch.Candidates[meal.Name] = models.RecipeCandidate{
				Title:              meal.Name,
				Link:               mealdb.MealURL(meal.ID),
				MissingIngredients: []string{},
			}
			if len(batch.Titles) >= limit {
				break
			}
		}

		if len(batch.Titles) >= limit {
			break
		}
	}

	s.logger.Debug("suggestion batch assembled",
		zap.Int("ingredients_scanned", len(ingredients)),
		zap.Int("suggestions", len(batch.Titles)))

	return batch, nil
}
