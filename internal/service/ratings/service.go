package ratings

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/BeeeliB/waistless-app/internal/domain/models"
	"github.com/BeeeliB/waistless-app/internal/repository/memory"
)

// ErrInvalidRating indicates a rating outside the 1-5 star range.
var ErrInvalidRating = errors.New("rating must be between 1 and 5")

// ErrUnknownPerson indicates the rating person is empty or not on the
// roster. No entry is appended; the caller re-prompts.
var ErrUnknownPerson = errors.New("unknown person")

// Service owns the append-only cooking history. Entries are never updated
// or deduplicated: a roommate may rate the same recipe any number of times
// and every rating stays a distinct historical entry.
type Service struct {
	roster *memory.Roster
	logger *zap.Logger
	now    func() time.Time

	mu      sync.RWMutex
	history []models.RatingEntry
}

// NewService constructs the rating ledger.
func NewService(roster *memory.Roster, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		roster:  roster,
		logger:  logger,
		now:     time.Now,
		history: []models.RatingEntry{},
	}
}

// Record appends one rating for a cooked recipe.
func (s *Service) Record(person, recipe, link string, rating int) (models.RatingEntry, error) {
	if rating < 1 || rating > 5 {
		return models.RatingEntry{}, ErrInvalidRating
	}
	if person == "" || !s.roster.Contains(person) {
		return models.RatingEntry{}, ErrUnknownPerson
	}

	entry := models.RatingEntry{
		ID:     uuid.NewString(),
		Person: person,
		Recipe: recipe,
		Rating: rating,
		Link:   link,
		Date:   s.now(),
	}

	s.mu.Lock()
	s.history = append(s.history, entry)
	s.mu.Unlock()

	s.logger.Info("recipe rated",
		zap.String("person", person),
		zap.String("recipe", recipe),
		zap.Int("rating", rating))

	return entry, nil
}

// History returns the cooking history in insertion order.
func (s *Service) History() []models.RatingEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.RatingEntry, len(s.history))
	copy(out, s.history)
	return out
}
