package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/Vedant491/college-fees-api/internal/models"
	"github.com/Vedant491/college-fees-api/internal/repository"
	appErrors "github.com/Vedant491/college-fees-api/pkg/errors"
)

// Cache key for the dashboard snapshot; bump the suffix when the payload
// shape changes.
const dashboardCacheKey = "dash:summary:v1"

const recentPaymentsLimit = 10

type reportRepository interface {
	Counters(ctx context.Context) (*repository.DashboardCounters, error)
	CourseRevenue(ctx context.Context) ([]models.CourseRevenue, error)
}

type recentPaymentsLister interface {
	Recent(ctx context.Context, limit int) ([]models.PaymentDetail, error)
}

// ReportService composes the dashboard snapshot.
type ReportService struct {
	repo     reportRepository
	payments recentPaymentsLister
	cache    *CacheService
	logger   *zap.Logger
}

// NewReportService constructs the report service.
func NewReportService(repo reportRepository, payments recentPaymentsLister, cache *CacheService, logger *zap.Logger) *ReportService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ReportService{repo: repo, payments: payments, cache: cache, logger: logger}
}

// Dashboard returns the dashboard snapshot and whether it came from cache.
func (s *ReportService) Dashboard(ctx context.Context) (*models.DashboardSnapshot, bool, error) {
	if s.cache != nil {
		var cached models.DashboardSnapshot
		hit, err := s.cache.Get(ctx, dashboardCacheKey, &cached)
		if err == nil && hit {
			return &cached, true, nil
		}
	}

	snapshot, err := s.compose(ctx)
	if err != nil {
		return nil, false, err
	}
	if s.cache != nil {
		if err := s.cache.Set(ctx, dashboardCacheKey, snapshot, 0); err != nil {
			s.logger.Warn("failed to cache dashboard snapshot", zap.Error(err))
		}
	}
	return snapshot, false, nil
}

func (s *ReportService) compose(ctx context.Context) (*models.DashboardSnapshot, error) {
	counters, err := s.repo.Counters(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to compute dashboard counters")
	}
	recent, err := s.payments.Recent(ctx, recentPaymentsLimit)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load recent payments")
	}
	revenue, err := s.repo.CourseRevenue(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to compute course revenue")
	}
	return &models.DashboardSnapshot{
		TotalStudents:   counters.TotalStudents,
		TotalCourses:    counters.TotalCourses,
		TotalPayments:   counters.TotalPayments,
		TotalRevenue:    counters.TotalRevenue,
		PendingPayments: counters.PendingPayments,
		RecentPayments:  recent,
		CourseRevenue:   revenue,
	}, nil
}

// invalidateDashboard drops cached dashboard snapshots after a write. Cache
// errors never fail the write that triggered the invalidation.
func invalidateDashboard(ctx context.Context, cache *CacheService, logger *zap.Logger) {
	if cache == nil {
		return
	}
	if err := cache.Invalidate(ctx, "dash:*"); err != nil && logger != nil {
		logger.Warn("failed to invalidate dashboard cache", zap.Error(err))
	}
}
