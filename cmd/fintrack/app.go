package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"finance-tracker/internal/config"
	"finance-tracker/internal/database"
	"finance-tracker/internal/gateway"
	"finance-tracker/internal/logging"
	"finance-tracker/internal/models"
	"finance-tracker/internal/reporting"
	"finance-tracker/internal/repositories"
	"finance-tracker/internal/services"

	"github.com/prometheus/client_golang/prometheus"
)

var ErrUnknownCommand = errors.New("unknown command")

type app struct {
	cfg         *config.Config
	logger      *slog.Logger
	stdout      io.Writer
	db          *database.DB
	registry    *prometheus.Registry
	store       services.TransactionStoreInterface
	categories  services.CategoryServiceInterface
	goals       services.GoalServiceInterface
	investments services.InvestmentServiceInterface
	reports     services.ReportServiceInterface
}

func newApp(cfg *config.Config, logger *slog.Logger, stdout io.Writer, opts ...gateway.ClientOption) (*app, error) {
	a := &app{
		cfg:      cfg,
		logger:   logger.With(logging.FieldComponent, logging.ComponentCLI),
		stdout:   stdout,
		registry: prometheus.NewRegistry(),
	}

	var (
		cache         *services.CacheRepositories
		categoryCache repositories.CategoryRepositoryInterface
	)
	if cfg.Cache.Enabled {
		db, err := database.Initialize(&cfg.Cache)
		if err != nil {
			return nil, fmt.Errorf("failed to open cache: %w", err)
		}
		a.db = db
		cache = &services.CacheRepositories{
			Transactions: repositories.NewTransactionRepository(db.DB),
			Categories:   repositories.NewCategoryRepository(db.DB),
			SyncStates:   repositories.NewSyncStateRepository(db.DB),
		}
		categoryCache = cache.Categories
	}

	client := gateway.NewClient(&cfg.API, gateway.StaticTokenSource(cfg.API.Token), logger, opts...)
	metrics := services.NewPrometheusMetrics(a.registry)
	reportLogger := services.NewReportLogger(logger)

	a.store = services.NewTransactionStore(client, client, cache, reportLogger, metrics, reporting.SystemClock, logger)
	a.categories = services.NewCategoryService(client, categoryCache, metrics, logger)
	a.goals = services.NewGoalService(client, metrics, logger)
	a.investments = services.NewInvestmentService(client, metrics, logger)
	a.reports = services.NewReportService(a.store, client, reporting.SystemClock, &cfg.Report, reportLogger, metrics, logger)

	if cache != nil {
		if err := a.store.LoadCache(); err != nil && !errors.Is(err, services.ErrCacheEmpty) {
			a.logger.Warn("ignoring unreadable cache", logging.FieldError, err)
		}
	}

	return a, nil
}

func (a *app) Close() error {
	if a.db == nil {
		return nil
	}
	return a.db.Close()
}

func (a *app) run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return ErrUnknownCommand
	}

	command, rest := args[0], args[1:]
	switch command {
	case "sync":
		return a.runSync(ctx)
	case "report":
		return a.runReport(ctx, rest)
	case "dashboard":
		return a.runDashboard(ctx)
	case "download":
		return a.runDownload(ctx, rest)
	case "categories":
		return a.runCategories(ctx, rest)
	case "goals":
		return a.runGoals(ctx)
	case "portfolio":
		return a.runPortfolio(ctx)
	case "purge":
		return a.runPurge()
	default:
		return fmt.Errorf("%w: %s", ErrUnknownCommand, command)
	}
}

func (a *app) runSync(ctx context.Context) error {
	err := a.store.Refresh(ctx)
	if err != nil && !errors.Is(err, services.ErrServedFromCache) {
		return err
	}
	if err != nil {
		a.logger.Warn("backend unavailable, snapshot unchanged", logging.FieldError, err)
	}

	fmt.Fprintf(a.stdout, "%d transactions, %d categories (as of %s)\n",
		len(a.store.GetAll()),
		len(a.store.Categories()),
		a.store.LastRefreshed().Format("2006-01-02 15:04:05"),
	)
	return nil
}

func (a *app) runReport(ctx context.Context, args []string) error {
	fs := newFlagSet("report")
	var period periodFlags
	period.register(fs, a.cfg.Report.DefaultPeriod)
	search := fs.String("search", "", "case-insensitive description search")
	category := fs.String("category", "", "category name")
	kind := fs.String("kind", "", "INCOME or EXPENSE")
	if err := fs.Parse(args); err != nil {
		return err
	}

	filters, err := period.filters()
	if err != nil {
		return err
	}
	filters.Criteria.Search = *search

	if *kind != "" {
		txType, ok := models.ParseTransactionType(*kind)
		if !ok {
			return fmt.Errorf("%w: %q", models.ErrInvalidTransactionType, *kind)
		}
		filters.Criteria.Type = txType
	}

	if *category != "" {
		resolved, err := a.categories.ResolveByName(ctx, *category)
		if err != nil {
			return err
		}
		filters.Criteria.CategoryID = resolved.ID
	}

	report, err := a.reports.Generate(ctx, filters)
	if err != nil {
		return err
	}
	return a.writeJSON(report)
}

func (a *app) runDashboard(ctx context.Context) error {
	dashboard, err := a.reports.Dashboard(ctx)
	if err != nil {
		return err
	}
	return a.writeJSON(dashboard)
}

func (a *app) runDownload(ctx context.Context, args []string) error {
	fs := newFlagSet("download")
	var period periodFlags
	period.register(fs, a.cfg.Report.DefaultPeriod)
	out := fs.String("out", "", "output file (defaults to the server filename in the download dir)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	filters, err := period.filters()
	if err != nil {
		return err
	}

	dir := a.cfg.Report.DownloadDir
	if *out != "" {
		dir = filepath.Dir(*out)
	}
	tmp, err := os.CreateTemp(dir, ".fintrack-download-*")
	if err != nil {
		return fmt.Errorf("failed to create download file: %w", err)
	}
	defer os.Remove(tmp.Name())

	result, err := a.reports.Download(ctx, filters, tmp)
	if closeErr := tmp.Close(); err == nil && closeErr != nil {
		err = fmt.Errorf("failed to write download: %w", closeErr)
	}
	if err != nil {
		return err
	}

	target := *out
	if target == "" {
		target = filepath.Join(dir, result.FileName)
	}
	if err := os.Rename(tmp.Name(), target); err != nil {
		return fmt.Errorf("failed to save download: %w", err)
	}

	fmt.Fprintf(a.stdout, "saved %s (%d bytes)\n", target, result.Bytes)
	return nil
}

func (a *app) runCategories(ctx context.Context, args []string) error {
	fs := newFlagSet("categories")
	resolve := fs.String("resolve", "", "resolve a category by name")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if *resolve != "" {
		category, err := a.categories.ResolveByName(ctx, *resolve)
		if err != nil {
			return err
		}
		return a.writeJSON(category)
	}

	categories, err := a.categories.List(ctx)
	if err != nil && !errors.Is(err, services.ErrServedFromCache) {
		return err
	}
	return a.writeJSON(categories)
}

func (a *app) runGoals(ctx context.Context) error {
	overview, err := a.goals.Overview(ctx)
	if err != nil {
		return err
	}
	return a.writeJSON(overview)
}

func (a *app) runPortfolio(ctx context.Context) error {
	portfolio, err := a.investments.Portfolio(ctx)
	if err != nil {
		return err
	}
	return a.writeJSON(portfolio)
}

func (a *app) runPurge() error {
	if a.db == nil {
		return services.ErrCacheDisabled
	}
	if err := a.db.Purge(); err != nil {
		return err
	}
	fmt.Fprintln(a.stdout, "cache cleared")
	return nil
}

func (a *app) writeJSON(v any) error {
	enc := json.NewEncoder(a.stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func newFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	return fs
}

// periodFlags are the report period options shared by report and download
type periodFlags struct {
	reportType string
	period     string
	month      string
	from       string
	to         string
}

func (p *periodFlags) register(fs *flag.FlagSet, defaultPeriod string) {
	fs.StringVar(&p.reportType, "type", string(models.ReportTypeCustom), "MONTHLY, YEARLY or CUSTOM")
	fs.StringVar(&p.period, "period", defaultPeriod, "SPECIFIC_MONTH, LAST_30_DAYS, LAST_3_MONTHS, LAST_6_MONTHS, LAST_YEAR, THIS_YEAR or CUSTOM")
	fs.StringVar(&p.month, "month", "", "YYYY-MM for SPECIFIC_MONTH")
	fs.StringVar(&p.from, "from", "", "YYYY-MM-DD start date")
	fs.StringVar(&p.to, "to", "", "YYYY-MM-DD end date")
}

func (p *periodFlags) filters() (models.ReportFilters, error) {
	filters := models.ReportFilters{
		Type:   models.ReportType(strings.ToUpper(strings.TrimSpace(p.reportType))),
		Period: models.PeriodPreset(strings.ToUpper(strings.TrimSpace(p.period))),
		Month:  strings.TrimSpace(p.month),
	}

	if p.from != "" {
		from, err := models.ParseCalendarDate(p.from)
		if err != nil {
			return models.ReportFilters{}, fmt.Errorf("invalid -from: %w", err)
		}
		filters.DateFrom = &from
	}
	if p.to != "" {
		to, err := models.ParseCalendarDate(p.to)
		if err != nil {
			return models.ReportFilters{}, fmt.Errorf("invalid -to: %w", err)
		}
		filters.DateTo = &to
	}

	return filters, nil
}
