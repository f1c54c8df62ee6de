package services

import (
	"context"
	"log/slog"
	"time"

	portsrepo "github.com/SscSPs/ledger_engine/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/ledger_engine/internal/core/ports/services"
	"github.com/SscSPs/ledger_engine/internal/middleware"
	"github.com/SscSPs/ledger_engine/internal/utils/pagination"
)

const (
	defaultQueryLimit = 25
	maxQueryLimit     = 100
)

// BaseService provides common functionality for all services
type BaseService struct {
	store        portsrepo.Store
	rules        portssvc.RulesProvider
	now          func() time.Time
	defaultLimit int
	maxLimit     int
}

// ServiceOption is a functional option for configuring services
type ServiceOption func(*BaseService)

// WithClock replaces time.Now, for deterministic revisions in tests.
func WithClock(now func() time.Time) ServiceOption {
	return func(s *BaseService) {
		s.now = now
	}
}

// WithQueryLimits sets the default and maximum page sizes of query operations.
func WithQueryLimits(def, max int) ServiceOption {
	return func(s *BaseService) {
		if def > 0 {
			s.defaultLimit = def
		}
		if max > 0 {
			s.maxLimit = max
		}
	}
}

func newBaseService(store portsrepo.Store, rules portssvc.RulesProvider, options ...ServiceOption) BaseService {
	b := BaseService{
		store:        store,
		rules:        rules,
		now:          time.Now,
		defaultLimit: defaultQueryLimit,
		maxLimit:     maxQueryLimit,
	}
	for _, option := range options {
		option(&b)
	}
	return b
}

// GetLogger gets the logger from context or returns a default one
func (s *BaseService) GetLogger(ctx context.Context) *slog.Logger {
	logger := middleware.GetLoggerFromCtx(ctx)
	if logger == nil {
		return slog.Default()
	}
	return logger
}

// LogError logs an error with consistent formatting
func (s *BaseService) LogError(ctx context.Context, err error, msg string, keyvals ...any) {
	logger := s.GetLogger(ctx)
	args := make([]any, 0, len(keyvals)+1)
	args = append(args, slog.String("error", err.Error()))
	args = append(args, keyvals...)
	logger.Error(msg, args...)
}

// LogInfo logs an info message with consistent formatting
func (s *BaseService) LogInfo(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Info(msg, keyvals...)
}

// LogDebug logs a debug message with consistent formatting
func (s *BaseService) LogDebug(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Debug(msg, keyvals...)
}

// limit clamps a requested page size.
func (s *BaseService) limit(requested int) int {
	return pagination.ClampLimit(requested, s.defaultLimit, s.maxLimit)
}

// invalidateRules drops cached rules after a committed ledger change. A
// failure leaves stale rules until the cache entry expires, so it is only logged.
func (s *BaseService) invalidateRules(ctx context.Context) {
	if s.rules == nil {
		return
	}
	if err := s.rules.Invalidate(ctx); err != nil {
		s.LogError(ctx, err, "Failed to invalidate ledger rules")
	}
}
