package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"finance-tracker/internal/dto"
	"finance-tracker/internal/gateway"
	"finance-tracker/internal/logging"
	"finance-tracker/internal/models"
	"finance-tracker/internal/repositories"
	"finance-tracker/internal/validation"

	"github.com/agnivade/levenshtein"
)

const (
	nameSimilarityThreshold = 0.7
	wordSimilarityThreshold = 0.8
	minSuggestWordLength    = 3
)

var (
	ErrDefaultCategoryDelete = errors.New("default categories cannot be deleted")
	ErrCategoryNotResolved   = errors.New("no category matches the given name")
)

type categoryService struct {
	gateway   gateway.CategoryGatewayInterface
	cache     repositories.CategoryRepositoryInterface
	validator *validation.Validator
	metrics   MetricsRecorderInterface
	logger    *slog.Logger
}

// NewCategoryService creates a new CategoryServiceInterface instance. cache may be nil.
func NewCategoryService(
	categoryGateway gateway.CategoryGatewayInterface,
	cache repositories.CategoryRepositoryInterface,
	metrics MetricsRecorderInterface,
	logger *slog.Logger,
) CategoryServiceInterface {
	if logger == nil {
		logger = slog.Default()
	}
	return &categoryService{
		gateway:   categoryGateway,
		cache:     cache,
		validator: validation.GetValidator(),
		metrics:   metricsOrNoop(metrics),
		logger:    logger.With(logging.FieldComponent, "categories"),
	}
}

// List returns the backend categories. When the backend fails and cached
// categories exist, they are returned with an error wrapping ErrServedFromCache.
func (s *categoryService) List(ctx context.Context) ([]models.Category, error) {
	categories, err := s.gateway.ListCategories(ctx)
	if err == nil {
		return categories, nil
	}

	if s.cache != nil {
		cached, cacheErr := s.cache.GetAll()
		if cacheErr == nil && len(cached) > 0 {
			s.logger.Warn("serving cached categories", logging.FieldError, err)
			return cached, fmt.Errorf("%w: %w", ErrServedFromCache, err)
		}
	}

	return nil, fmt.Errorf("failed to list categories: %w", err)
}

func (s *categoryService) Create(ctx context.Context, req dto.CreateCategoryRequest) (*models.Category, error) {
	if err := s.validator.Validate(req); err != nil {
		return nil, err
	}
	if txType, ok := models.ParseTransactionType(req.Type); ok {
		req.Type = string(txType)
	}
	req.Name = strings.TrimSpace(req.Name)

	category, err := s.gateway.CreateCategory(ctx, req)
	s.recordMutation("create", err)
	if err != nil {
		return nil, fmt.Errorf("failed to create category: %w", err)
	}

	if s.cache != nil {
		if err := s.cache.Upsert(category); err != nil {
			s.logger.Warn("failed to cache category", "category_id", category.ID, logging.FieldError, err)
		}
	}

	return category, nil
}

// Delete removes a user category; default categories are rejected locally.
func (s *categoryService) Delete(ctx context.Context, id string) error {
	categories, err := s.List(ctx)
	if err != nil && !errors.Is(err, ErrServedFromCache) {
		return err
	}
	for i := range categories {
		if categories[i].ID == id && !categories[i].CanDelete() {
			return ErrDefaultCategoryDelete
		}
	}

	err = s.gateway.DeleteCategory(ctx, id)
	s.recordMutation("delete", err)
	if err != nil {
		return fmt.Errorf("failed to delete category: %w", err)
	}

	if s.cache != nil {
		if err := s.cache.Delete(id); err != nil && !errors.Is(err, repositories.ErrCategoryNotFound) {
			s.logger.Warn("failed to remove cached category", "category_id", id, logging.FieldError, err)
		}
	}
	return nil
}

// ResolveByName finds a category by case-insensitive name, falling back to the
// closest name by edit distance when it is similar enough.
func (s *categoryService) ResolveByName(ctx context.Context, name string) (*models.Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, models.ErrCategoryNameRequired
	}

	categories, err := s.List(ctx)
	if err != nil && !errors.Is(err, ErrServedFromCache) {
		return nil, err
	}

	for i := range categories {
		if strings.EqualFold(strings.TrimSpace(categories[i].Name), name) {
			s.metrics.IncrementCounter(MetricCategoryResolved, map[string]string{"match": "exact"})
			return &categories[i], nil
		}
	}

	candidates := make([]models.Category, len(categories))
	copy(candidates, categories)
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Name < candidates[j].Name
	})

	var best *models.Category
	bestScore := 0.0
	for i := range candidates {
		score := similarity(name, candidates[i].Name)
		if score >= nameSimilarityThreshold && score > bestScore {
			best = &candidates[i]
			bestScore = score
		}
	}

	if best == nil {
		s.metrics.IncrementCounter(MetricCategoryResolved, map[string]string{"match": "none"})
		return nil, fmt.Errorf("%w: %q", ErrCategoryNotResolved, name)
	}

	s.metrics.IncrementCounter(MetricCategoryResolved, map[string]string{"match": "fuzzy"})
	s.logger.Debug("category resolved by similarity", "input", name, "category", best.Name, "score", bestScore)
	return best, nil
}

// SuggestForDescription proposes a category of the given type whose name
// resembles a word of the description.
func (s *categoryService) SuggestForDescription(ctx context.Context, description string, txType models.TransactionType) (*models.Category, bool) {
	words := descriptionWords(description)
	if len(words) == 0 {
		return nil, false
	}

	categories, err := s.List(ctx)
	if err != nil && !errors.Is(err, ErrServedFromCache) {
		s.logger.Debug("no categories to suggest from", logging.FieldError, err)
		return nil, false
	}

	var best *models.Category
	bestScore := 0.0
	for i := range categories {
		if categories[i].Type != txType {
			continue
		}
		for _, categoryWord := range descriptionWords(categories[i].Name) {
			for _, word := range words {
				score := similarity(word, categoryWord)
				if score >= wordSimilarityThreshold && score > bestScore {
					best = &categories[i]
					bestScore = score
				}
			}
		}
	}

	return best, best != nil
}

func (s *categoryService) recordMutation(operation string, err error) {
	status := statusSuccess
	if err != nil {
		status = statusFailed
	}
	s.metrics.IncrementCounter(MetricMutation, map[string]string{
		"resource":  "category",
		"operation": operation,
		"status":    status,
	})
}

// similarity is 1 - distance/longest over lowercased runes
func similarity(a, b string) float64 {
	a = strings.ToLower(strings.TrimSpace(a))
	b = strings.ToLower(strings.TrimSpace(b))
	longest := len([]rune(a))
	if n := len([]rune(b)); n > longest {
		longest = n
	}
	if longest == 0 {
		return 0
	}
	return 1 - float64(levenshtein.ComputeDistance(a, b))/float64(longest)
}

func descriptionWords(text string) []string {
	fields := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !(r >= 'a' && r <= 'z' || r >= '0' && r <= '9' || r > 127)
	})
	words := fields[:0]
	for _, f := range fields {
		if len([]rune(f)) >= minSuggestWordLength {
			words = append(words, f)
		}
	}
	return words
}
