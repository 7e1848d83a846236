package scoring

import (
	"context"
	"errors"
	"testing"

	"github.com/BeeeliB/waistless-app/pkg/clients/scorer"
)

// mockScorerClient implements scorer.Client for testing.
type mockScorerClient struct {
	prediction  scorer.RawPrediction
	predictErr  error
	lastFeature string
	cuisines    []string
	recipes     []string
}

func (m *mockScorerClient) Predict(ctx context.Context, feature string) (scorer.RawPrediction, error) {
	m.lastFeature = feature
	if m.predictErr != nil {
		return scorer.RawPrediction{}, m.predictErr
	}
	return m.prediction, nil
}

func (m *mockScorerClient) DecodeCuisine(index int) (string, error) {
	if index < 0 || index >= len(m.cuisines) {
		return "", errors.New("cuisine index out of range")
	}
	return m.cuisines[index], nil
}

func (m *mockScorerClient) DecodeRecipe(index int) (string, error) {
	if index < 0 || index >= len(m.recipes) {
		return "", errors.New("recipe index out of range")
	}
	return m.recipes[index], nil
}

func TestRecommendShapesFeatureAndDecodesLabels(t *testing.T) {
	client := &mockScorerClient{
		prediction: scorer.RawPrediction{CuisineIndex: 1, RecipeIndex: 0, PrepMinutes: 35.5, Calories: 420},
		cuisines:   []string{"Italian", "Thai"},
		recipes:    []string{"Green Curry", "Lasagne"},
	}
	svc := NewService(client, nil)

	prediction, err := svc.Recommend(context.Background(), []string{"coconut milk", "chicken", "curry powder"})
	if err != nil {
		t.Fatalf("recommend failed: %v", err)
	}

	if client.lastFeature != "coconut milk, chicken, curry powder" {
		t.Fatalf("feature = %q, want comma-space joined ingredients", client.lastFeature)
	}
	if prediction.Cuisine != "Thai" || prediction.Recipe != "Green Curry" {
		t.Fatalf("decoded prediction = %+v", prediction)
	}
	if prediction.PrepMinutes != 35.5 || prediction.Calories != 420 {
		t.Fatalf("continuous estimates = %+v", prediction)
	}
}

func TestRecommendReportsScoringUnavailable(t *testing.T) {
	cases := []struct {
		name        string
		client      scorer.Client
		ingredients []string
	}{
		{"nil client", nil, []string{"tomato"}},
		{"empty selection", &mockScorerClient{cuisines: []string{"x"}, recipes: []string{"y"}}, nil},
		{"invocation failure", &mockScorerClient{predictErr: errors.New("connection refused")}, []string{"tomato"}},
		{"index out of range", &mockScorerClient{
			prediction: scorer.RawPrediction{CuisineIndex: 9, RecipeIndex: 0},
			cuisines:   []string{"Italian"},
			recipes:    []string{"Lasagne"},
		}, []string{"tomato"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc := NewService(tc.client, nil)
			if _, err := svc.Recommend(context.Background(), tc.ingredients); !errors.Is(err, ErrScoringUnavailable) {
				t.Fatalf("err = %v, want ErrScoringUnavailable", err)
			}
		})
	}
}

func TestEnabled(t *testing.T) {
	if NewService(nil, nil).Enabled() {
		t.Fatalf("service without client must report disabled")
	}
	if !NewService(&mockScorerClient{}, nil).Enabled() {
		t.Fatalf("service with client must report enabled")
	}
}
