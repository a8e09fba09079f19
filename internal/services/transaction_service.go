package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"sync"
	"time"

	"finance-tracker/internal/dto"
	"finance-tracker/internal/gateway"
	"finance-tracker/internal/logging"
	"finance-tracker/internal/models"
	"finance-tracker/internal/reporting"
	"finance-tracker/internal/repositories"
	"finance-tracker/internal/validation"

	"golang.org/x/sync/errgroup"
)

var (
	ErrServedFromCache = errors.New("backend unavailable, serving cached snapshot")
	ErrCacheEmpty      = errors.New("local cache holds no snapshot")
	ErrCacheDisabled   = errors.New("local cache is disabled")
	ErrEmptyUpdate     = errors.New("update carries no fields")
)

// CacheRepositories groups the local snapshot cache. A nil *CacheRepositories
// disables caching.
type CacheRepositories struct {
	Transactions repositories.TransactionRepositoryInterface
	Categories   repositories.CategoryRepositoryInterface
	SyncStates   repositories.SyncStateRepositoryInterface
}

type transactionStore struct {
	transactions gateway.TransactionGatewayInterface
	categories   gateway.CategoryGatewayInterface
	cache        *CacheRepositories
	validator    *validation.Validator
	reportLogger ReportLoggerInterface
	metrics      MetricsRecorderInterface
	clock        reporting.Clock
	logger       *slog.Logger

	mu            sync.RWMutex
	snapshot      []models.Transaction
	categorySnap  []models.Category
	lastRefreshed time.Time
}

// NewTransactionStore creates the transaction store
func NewTransactionStore(
	transactions gateway.TransactionGatewayInterface,
	categories gateway.CategoryGatewayInterface,
	cache *CacheRepositories,
	reportLogger ReportLoggerInterface,
	metrics MetricsRecorderInterface,
	clock reporting.Clock,
	logger *slog.Logger,
) TransactionStoreInterface {
	if clock == nil {
		clock = reporting.SystemClock
	}
	if logger == nil {
		logger = slog.Default()
	}
	if reportLogger == nil {
		reportLogger = NewReportLogger(logger)
	}
	return &transactionStore{
		transactions: transactions,
		categories:   categories,
		cache:        cache,
		validator:    validation.GetValidator(),
		reportLogger: reportLogger,
		metrics:      metricsOrNoop(metrics),
		clock:        clock,
		logger:       logger.With(logging.FieldComponent, logging.ComponentStore),
	}
}

// Refresh fetches categories and transactions concurrently and replaces the
// snapshot. When the backend fails, the last known snapshot is kept (or loaded
// from the cache) and the error is wrapped with ErrServedFromCache.
func (s *transactionStore) Refresh(ctx context.Context) error {
	start := s.clock.Now()

	var (
		transactions []models.Transaction
		categories   []models.Category
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		result, err := s.categories.ListCategories(gctx)
		if err != nil {
			return fmt.Errorf("failed to fetch categories: %w", err)
		}
		categories = result
		return nil
	})
	g.Go(func() error {
		result, err := s.transactions.ListTransactions(gctx)
		if err != nil {
			return fmt.Errorf("failed to fetch transactions: %w", err)
		}
		transactions = result
		return nil
	})

	if err := g.Wait(); err != nil {
		return s.fallback(ctx, err)
	}

	attachCategories(transactions, categories)
	now := s.clock.Now()

	s.mu.Lock()
	s.snapshot = transactions
	s.categorySnap = categories
	s.lastRefreshed = now
	s.mu.Unlock()

	s.writeCache(transactions, categories, now)

	duration := now.Sub(start)
	s.metrics.IncrementCounter(MetricStoreRefresh, map[string]string{"status": statusSuccess})
	s.metrics.RecordProcessingTime(MetricStoreRefresh, duration)
	s.metrics.RecordGauge(MetricSnapshotSize, float64(len(transactions)), nil)
	s.reportLogger.LogSnapshotRefreshed(ctx, len(transactions), len(categories), duration.Milliseconds())

	return nil
}

func (s *transactionStore) fallback(ctx context.Context, cause error) error {
	s.mu.RLock()
	held := len(s.snapshot)
	refreshed := !s.lastRefreshed.IsZero()
	s.mu.RUnlock()

	if !refreshed {
		if err := s.LoadCache(); err != nil {
			s.metrics.IncrementCounter(MetricStoreRefresh, map[string]string{"status": statusFailed})
			return fmt.Errorf("failed to refresh transactions: %w", cause)
		}
		s.mu.RLock()
		held = len(s.snapshot)
		s.mu.RUnlock()
	}

	s.metrics.IncrementCounter(MetricStoreRefresh, map[string]string{"status": statusCache})
	s.reportLogger.LogServedFromCache(ctx, cause.Error(), held)

	return fmt.Errorf("%w: %w", ErrServedFromCache, cause)
}

// LoadCache fills the snapshot from the local cache
func (s *transactionStore) LoadCache() error {
	if s.cache == nil {
		return ErrCacheDisabled
	}

	state, err := s.cache.SyncStates.Get(models.SyncResourceTransactions)
	if err != nil {
		if errors.Is(err, repositories.ErrSyncStateNotFound) {
			return ErrCacheEmpty
		}
		return fmt.Errorf("failed to read cache state: %w", err)
	}

	transactions, err := s.cache.Transactions.GetAll()
	if err != nil {
		return fmt.Errorf("failed to read cached transactions: %w", err)
	}

	categories, err := s.cache.Categories.GetAll()
	if err != nil {
		return fmt.Errorf("failed to read cached categories: %w", err)
	}

	attachCategories(transactions, categories)

	s.mu.Lock()
	s.snapshot = transactions
	s.categorySnap = categories
	s.lastRefreshed = state.SyncedAt
	s.mu.Unlock()

	s.logger.Debug("snapshot loaded from cache",
		"transaction_count", len(transactions),
		"synced_at", state.SyncedAt,
	)

	return nil
}

func (s *transactionStore) writeCache(transactions []models.Transaction, categories []models.Category, syncedAt time.Time) {
	if s.cache == nil {
		return
	}

	if err := s.cache.Categories.ReplaceAll(categories); err != nil {
		s.logger.Warn("failed to cache categories", logging.FieldError, err)
		return
	}
	if err := s.cache.Transactions.ReplaceAll(transactions); err != nil {
		s.logger.Warn("failed to cache transactions", logging.FieldError, err)
		return
	}

	states := []models.SyncState{
		{Resource: models.SyncResourceCategories, SyncedAt: syncedAt, ItemCount: len(categories)},
		{Resource: models.SyncResourceTransactions, SyncedAt: syncedAt, ItemCount: len(transactions)},
	}
	for i := range states {
		if err := s.cache.SyncStates.Save(&states[i]); err != nil {
			s.logger.Warn("failed to record sync state", "resource", states[i].Resource, logging.FieldError, err)
		}
	}
}

// GetAll returns a copy of the snapshot
func (s *transactionStore) GetAll() []models.Transaction {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneTransactions(s.snapshot)
}

// List applies criteria to the snapshot
func (s *transactionStore) List(criteria models.FilterCriteria) []models.Transaction {
	return reporting.ApplyFilters(s.GetAll(), criteria)
}

// Categories returns a copy of the category snapshot
func (s *transactionStore) Categories() []models.Category {
	s.mu.RLock()
	defer s.mu.RUnlock()
	result := make([]models.Category, len(s.categorySnap))
	copy(result, s.categorySnap)
	return result
}

func (s *transactionStore) LastRefreshed() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastRefreshed
}

func (s *transactionStore) Create(ctx context.Context, req dto.CreateTransactionRequest) (*models.Transaction, error) {
	if err := s.validator.Validate(req); err != nil {
		return nil, err
	}

	created, err := s.transactions.CreateTransaction(ctx, req)
	s.recordMutation("create", err)
	if err != nil {
		return nil, fmt.Errorf("failed to create transaction: %w", err)
	}

	s.mu.Lock()
	attachCategory(created, s.categorySnap)
	s.snapshot = append(s.snapshot, *cloneTransaction(created))
	s.mu.Unlock()

	s.cacheUpsert(created)

	return cloneTransaction(created), nil
}

// Update sends a partial update; nil fields of req are left untouched
func (s *transactionStore) Update(ctx context.Context, id string, req dto.UpdateTransactionRequest) (*models.Transaction, error) {
	if req.IsEmpty() {
		return nil, ErrEmptyUpdate
	}
	if err := s.validator.Validate(req); err != nil {
		return nil, err
	}

	updated, err := s.transactions.UpdateTransaction(ctx, id, req)
	s.recordMutation("update", err)
	if err != nil {
		return nil, fmt.Errorf("failed to update transaction: %w", err)
	}

	s.mu.Lock()
	if updated.Category != nil && updated.Category.ID != updated.CategoryID {
		updated.Category = nil
	}
	attachCategory(updated, s.categorySnap)
	replaced := false
	for i := range s.snapshot {
		if s.snapshot[i].ID == updated.ID {
			s.snapshot[i] = *cloneTransaction(updated)
			replaced = true
			break
		}
	}
	if !replaced {
		s.snapshot = append(s.snapshot, *cloneTransaction(updated))
	}
	s.mu.Unlock()

	s.cacheUpsert(updated)

	return cloneTransaction(updated), nil
}

func (s *transactionStore) Delete(ctx context.Context, id string) error {
	err := s.transactions.DeleteTransaction(ctx, id)
	s.recordMutation("delete", err)
	if err != nil {
		return fmt.Errorf("failed to delete transaction: %w", err)
	}

	s.mu.Lock()
	kept := s.snapshot[:0:0]
	for _, t := range s.snapshot {
		if t.ID != id {
			kept = append(kept, t)
		}
	}
	s.snapshot = kept
	s.mu.Unlock()

	if s.cache != nil {
		if err := s.cache.Transactions.Delete(id); err != nil && !errors.Is(err, repositories.ErrTransactionNotFound) {
			s.logger.Warn("failed to remove cached transaction", "transaction_id", id, logging.FieldError, err)
		}
	}

	return nil
}

func (s *transactionStore) cacheUpsert(t *models.Transaction) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Transactions.Upsert(cloneTransaction(t)); err != nil {
		s.logger.Warn("failed to cache transaction", "transaction_id", t.ID, logging.FieldError, err)
	}
}

func (s *transactionStore) recordMutation(operation string, err error) {
	status := statusSuccess
	if err != nil {
		status = statusFailed
	}
	s.metrics.IncrementCounter(MetricMutation, map[string]string{
		"resource":  "transaction",
		"operation": operation,
		"status":    status,
	})
}

// attachCategories sets the category snapshot on transactions that reference
// a known category but arrived without one.
func attachCategories(transactions []models.Transaction, categories []models.Category) {
	if len(categories) == 0 {
		return
	}
	byID := make(map[string]models.Category, len(categories))
	for _, c := range categories {
		byID[c.ID] = c
	}
	for i := range transactions {
		if transactions[i].Category != nil || transactions[i].CategoryID == "" {
			continue
		}
		if c, ok := byID[transactions[i].CategoryID]; ok {
			snapshot := c
			transactions[i].Category = &snapshot
		}
	}
}

func attachCategory(t *models.Transaction, categories []models.Category) {
	if t.Category != nil || t.CategoryID == "" {
		return
	}
	for _, c := range categories {
		if c.ID == t.CategoryID {
			snapshot := c
			t.Category = &snapshot
			return
		}
	}
}

func cloneTransaction(t *models.Transaction) *models.Transaction {
	clone := *t
	if t.Category != nil {
		category := *t.Category
		clone.Category = &category
	}
	if t.Tags != nil {
		clone.Tags = append(models.StringList(nil), t.Tags...)
	}
	return &clone
}

func cloneTransactions(transactions []models.Transaction) []models.Transaction {
	result := make([]models.Transaction, len(transactions))
	for i := range transactions {
		result[i] = *cloneTransaction(&transactions[i])
	}
	return result
}

// recentTransactions returns up to n transactions, newest calendar day first
func recentTransactions(transactions []models.Transaction, n int) []models.Transaction {
	sorted := cloneTransactions(transactions)
	sort.SliceStable(sorted, func(i, j int) bool {
		return models.DateOf(sorted[i].Date).After(models.DateOf(sorted[j].Date))
	})
	if len(sorted) > n {
		sorted = sorted[:n]
	}
	return sorted
}
