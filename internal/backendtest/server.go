// Package backendtest runs an in-memory finance backend behind httptest for
// gateway and CLI tests. It speaks the same JSON shapes, error envelope and
// request-ID echo as the real service.
package backendtest

import (
	"io"
	"log/slog"
	"net/http/httptest"
	"strconv"
	"sync"
	"testing"
	"time"

	"finance-tracker/internal/dto"
	"finance-tracker/internal/validation"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"golang.org/x/time/rate"
)

// Seed is the initial state of the backend.
type Seed struct {
	Categories   []dto.CategoryResponse
	Transactions []dto.TransactionResponse
	Goals        []dto.GoalResponse
	Investments  []dto.InvestmentResponse
}

type Option func(*Server)

// WithToken requires "Bearer <token>" on every API call.
func WithToken(token string) Option {
	return func(s *Server) {
		s.token = token
	}
}

// WithRateLimit answers 429 beyond rps requests per second.
func WithRateLimit(rps float64, burst int) Option {
	return func(s *Server) {
		s.limiter = rate.NewLimiter(rate.Limit(rps), burst)
	}
}

// WithExport sets the spreadsheet served by the download endpoint.
func WithExport(fileName string, content []byte) Option {
	return func(s *Server) {
		s.exportName = fileName
		s.export = content
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		s.logger = logger
	}
}

// Server is a running fake backend. URL already includes the /api prefix.
type Server struct {
	URL string

	echo        *echo.Echo
	http        *httptest.Server
	logger      *slog.Logger
	errorsTotal *prometheus.CounterVec
	token       string
	limiter     *rate.Limiter
	exportName  string
	export      []byte
	now         func() time.Time

	mu           sync.Mutex
	seq          int
	categories   []dto.CategoryResponse
	transactions []dto.TransactionResponse
	goals        []dto.GoalResponse
	investments  []dto.InvestmentResponse
	exports      []dto.ReportQuery
	requestIDs   []string
}

// New starts the backend and closes it when tb finishes.
func New(tb testing.TB, seed Seed, opts ...Option) *Server {
	tb.Helper()

	s := &Server{
		logger:       slog.New(slog.NewTextHandler(io.Discard, nil)),
		export:       []byte("PK-spreadsheet"),
		now:          time.Now,
		categories:   append([]dto.CategoryResponse(nil), seed.Categories...),
		transactions: append([]dto.TransactionResponse(nil), seed.Transactions...),
		goals:        append([]dto.GoalResponse(nil), seed.Goals...),
		investments:  append([]dto.InvestmentResponse(nil), seed.Investments...),
	}
	for _, opt := range opts {
		opt(s)
	}

	s.errorsTotal = promauto.With(prometheus.NewRegistry()).NewCounterVec(
		prometheus.CounterOpts{
			Name: "backend_errors_total",
			Help: "Total number of error responses by code, route and status",
		},
		[]string{"code", "route", "status"},
	)

	s.echo = echo.New()
	s.echo.HideBanner = true
	s.echo.HidePort = true
	s.echo.Validator = validation.GetValidator()
	s.echo.HTTPErrorHandler = s.handleError
	s.echo.Use(RequestID(), s.recordRequestID, PanicRecovery(s.logger))

	api := s.echo.Group("/api", RateLimit(s.limiter), RequireBearer(s.token))
	s.registerRoutes(api)

	s.http = httptest.NewServer(s.echo)
	s.URL = s.http.URL + "/api"
	tb.Cleanup(s.Close)

	return s
}

// Close stops the listener. Later calls fail at the transport level.
func (s *Server) Close() {
	s.http.Close()
}

// ErrorCount is the number of error envelopes sent with code.
func (s *Server) ErrorCount(code, route string, status int) float64 {
	return testutil.ToFloat64(s.errorsTotal.WithLabelValues(code, route, strconv.Itoa(status)))
}

// Exports returns the query of every download request, oldest first.
func (s *Server) Exports() []dto.ReportQuery {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]dto.ReportQuery(nil), s.exports...)
}

// RequestIDs returns the request ID of every call, oldest first.
func (s *Server) RequestIDs() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.requestIDs...)
}

// Transactions returns the current transaction list.
func (s *Server) Transactions() []dto.TransactionResponse {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]dto.TransactionResponse(nil), s.transactions...)
}

func (s *Server) Categories() []dto.CategoryResponse {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]dto.CategoryResponse(nil), s.categories...)
}

func (s *Server) recordRequestID(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		s.mu.Lock()
		s.requestIDs = append(s.requestIDs, GetRequestID(c))
		s.mu.Unlock()
		return next(c)
	}
}
