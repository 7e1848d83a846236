package models

// RecipeCandidate is one suggested meal within a suggestion batch. The title
// is the unique key inside a batch. MissingIngredients stays empty for the
// meal-database collaborator, which does not report them.
type RecipeCandidate struct {
	Title              string   `json:"title"`
	Link               string   `json:"link"`
	MissingIngredients []string `json:"missing_ingredients"`
}

// SuggestionBatch is the outcome of one aggregation pass: candidate titles in
// discovery order plus the detail record for each title.
type SuggestionBatch struct {
	Titles     []string                   `json:"titles"`
	Candidates map[string]RecipeCandidate `json:"candidates"`
}

// Prediction is the decoded output of the opaque recipe classifier: the two
// class indices mapped back to labels plus the two continuous estimates.
type Prediction struct {
	Recipe      string  `json:"recipe"`
	Cuisine     string  `json:"cuisine"`
	PrepMinutes float64 `json:"preparation_time"`
	Calories    float64 `json:"calories"`
}
