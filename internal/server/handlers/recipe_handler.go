package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/BeeeliB/waistless-app/internal/domain/models"
	"github.com/BeeeliB/waistless-app/internal/repository/memory"
	"github.com/BeeeliB/waistless-app/internal/service/ratings"
	"github.com/BeeeliB/waistless-app/internal/service/recipes"
	"github.com/BeeeliB/waistless-app/internal/service/scoring"
)

// RecipeHandler exposes suggestion, recommendation and rating endpoints.
type RecipeHandler struct {
	recipesSvc *recipes.Service
	scoringSvc *scoring.Service
	ratingsSvc *ratings.Service
	store      *memory.LedgerStore
	logger     *zap.Logger
}

// NewRecipeHandler constructs the recipe HTTP adapter.
func NewRecipeHandler(recipesSvc *recipes.Service, scoringSvc *scoring.Service, ratingsSvc *ratings.Service, store *memory.LedgerStore, logger *zap.Logger) *RecipeHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &RecipeHandler{
		recipesSvc: recipesSvc,
		scoringSvc: scoringSvc,
		ratingsSvc: ratingsSvc,
		store:      store,
		logger:     logger,
	}
}

// Suggest aggregates a capped suggestion batch from the selected
// ingredients, or from the whole pantry when none are given.
func (h *RecipeHandler) Suggest(c *gin.Context) {
	var req models.SuggestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	ingredients := req.Ingredients
	if len(ingredients) == 0 {
		ingredients = h.store.ItemNames()
	}

	batch, err := h.recipesSvc.Suggest(c.Request.Context(), ingredients, recipes.DefaultCap)
	switch {
	case errors.Is(err, recipes.ErrNoIngredients):
		c.JSON(http.StatusOK, gin.H{
			"titles":  batch.Titles,
			"recipes": batch.Candidates,
			"warning": "inventory is empty",
		})
		return
	case err != nil:
		h.logger.Error("suggestion batch failed", zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": "recipe lookup failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"titles": batch.Titles, "recipes": batch.Candidates})
}

// Recommend runs the preference scorer over the selected ingredients and
// falls back to the deterministic suggestion path when scoring is
// unavailable.
func (h *RecipeHandler) Recommend(c *gin.Context) {
	var req models.SuggestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	ingredients := req.Ingredients
	if len(ingredients) == 0 {
		ingredients = h.store.ItemNames()
	}

	prediction, err := h.scoringSvc.Recommend(c.Request.Context(), ingredients)
	if err == nil {
		c.JSON(http.StatusOK, gin.H{"prediction": prediction})
		return
	}

	h.logger.Warn("scoring unavailable, falling back to suggestions", zap.Error(err))

	batch, err := h.recipesSvc.Suggest(c.Request.Context(), ingredients, recipes.DefaultCap)
	switch {
	case errors.Is(err, recipes.ErrNoIngredients):
		c.JSON(http.StatusOK, gin.H{"titles": batch.Titles, "recipes": batch.Candidates, "warning": "inventory is empty"})
	case err != nil:
		c.JSON(http.StatusBadGateway, gin.H{"error": "recipe lookup failed"})
	default:
		c.JSON(http.StatusOK, gin.H{"titles": batch.Titles, "recipes": batch.Candidates, "fallback": true})
	}
}

// Rate appends one rating to the cooking history.
func (h *RecipeHandler) Rate(c *gin.Context) {
	var req models.RateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	entry, err := h.ratingsSvc.Record(req.Person, req.Recipe, req.Link, req.Rating)
	switch {
	case errors.Is(err, ratings.ErrInvalidRating), errors.Is(err, ratings.ErrUnknownPerson):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	case err != nil:
		h.logger.Error("rating failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "rating failed"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"rating": entry})
}

// History returns the append-only cooking history.
func (h *RecipeHandler) History(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"history": h.ratingsSvc.History()})
}
