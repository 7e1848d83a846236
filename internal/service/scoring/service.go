package scoring

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/BeeeliB/waistless-app/internal/domain/models"
	"github.com/BeeeliB/waistless-app/pkg/clients/scorer"
)

// ErrScoringUnavailable wraps any shaping or invocation failure at the model
// boundary. Callers fall back to the deterministic suggestion path.
var ErrScoringUnavailable = errors.New("recipe scoring unavailable")

// featureSeparator joins the ingredient list into the single textual feature
// the model was trained on.
const featureSeparator = ", "

// Service adapts the opaque recipe classifier: it shapes the ingredient
// selection into the model's feature representation and decodes the four
// model outputs back into labeled values. The model itself stays a black
// box behind the client interface.
type Service struct {
	client scorer.Client
	logger *zap.Logger
}

// NewService constructs the scoring adapter. A nil client means the model
// artifact is not configured; Recommend then reports ErrScoringUnavailable.
func NewService(client scorer.Client, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{client: client, logger: logger}
}

// Enabled reports whether a model client is wired in.
func (s *Service) Enabled() bool {
	return s.client != nil
}

// Recommend scores an ingredient selection and returns the labeled
// prediction: recipe, cuisine, preparation-time and calorie estimates.
func (s *Service) Recommend(ctx context.Context, ingredients []string) (models.Prediction, error) {
	if s.client == nil {
		return models.Prediction{}, ErrScoringUnavailable
	}
	if len(ingredients) == 0 {
		return models.Prediction{}, fmt.Errorf("%w: empty ingredient selection", ErrScoringUnavailable)
	}

	feature := strings.Join(ingredients, featureSeparator)

	raw, err := s.client.Predict(ctx, feature)
	if err != nil {
		s.logger.Warn("model prediction failed", zap.Error(err))
		return models.Prediction{}, fmt.Errorf("%w: %v", ErrScoringUnavailable, err)
	}

	cuisine, err := s.client.DecodeCuisine(raw.CuisineIndex)
	if err != nil {
		return models.Prediction{}, fmt.Errorf("%w: %v", ErrScoringUnavailable, err)
	}

	recipe, err := s.client.DecodeRecipe(raw.RecipeIndex)
	if err != nil {
		return models.Prediction{}, fmt.Errorf("%w: %v", ErrScoringUnavailable, err)
	}

	return models.Prediction{
		Recipe:      recipe,
		Cuisine:     cuisine,
		PrepMinutes: raw.PrepMinutes,
		Calories:    raw.Calories,
	}, nil
}
