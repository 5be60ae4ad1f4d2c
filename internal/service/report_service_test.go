package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Vedant491/college-fees-api/internal/models"
	"github.com/Vedant491/college-fees-api/internal/repository"
	appErrors "github.com/Vedant491/college-fees-api/pkg/errors"
)

type fakeReportRepo struct {
	counters    *repository.DashboardCounters
	countersErr error
	revenue     []models.CourseRevenue
	revenueErr  error
}

func (f *fakeReportRepo) Counters(_ context.Context) (*repository.DashboardCounters, error) {
	return f.counters, f.countersErr
}

func (f *fakeReportRepo) CourseRevenue(_ context.Context) ([]models.CourseRevenue, error) {
	return f.revenue, f.revenueErr
}

type fakeRecentLister struct {
	recent    []models.PaymentDetail
	err       error
	lastLimit int
}

func (f *fakeRecentLister) Recent(_ context.Context, limit int) ([]models.PaymentDetail, error) {
	f.lastLimit = limit
	return f.recent, f.err
}

func TestDashboardComposesSnapshot(t *testing.T) {
	repo := &fakeReportRepo{
		counters: &repository.DashboardCounters{
			TotalStudents:   42,
			TotalCourses:    5,
			TotalPayments:   120,
			TotalRevenue:    1850000,
			PendingPayments: 7,
		},
		revenue: []models.CourseRevenue{
			{CourseName: "B.Sc Computer Science", EnrolledStudents: 8, TotalCollected: 150000},
		},
	}
	payments := &fakeRecentLister{recent: []models.PaymentDetail{
		{Payment: models.Payment{ID: "p1", AmountPaid: 15000}, StudentName: "Asha Verma"},
	}}
	svc := NewReportService(repo, payments, nil, nil)

	snapshot, cached, err := svc.Dashboard(context.Background())
	require.NoError(t, err)
	assert.False(t, cached)
	assert.Equal(t, 42, snapshot.TotalStudents)
	assert.Equal(t, 1850000.0, snapshot.TotalRevenue)
	require.Len(t, snapshot.RecentPayments, 1)
	require.Len(t, snapshot.CourseRevenue, 1)
	assert.Equal(t, 10, payments.lastLimit)
}

func TestDashboardCountersError(t *testing.T) {
	repo := &fakeReportRepo{countersErr: assert.AnError}
	svc := NewReportService(repo, &fakeRecentLister{}, nil, nil)

	_, _, err := svc.Dashboard(context.Background())
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrInternal.Code, appErrors.FromError(err).Code)
}

func TestDashboardRevenueError(t *testing.T) {
	repo := &fakeReportRepo{
		counters:   &repository.DashboardCounters{},
		revenueErr: assert.AnError,
	}
	svc := NewReportService(repo, &fakeRecentLister{}, nil, nil)

	_, _, err := svc.Dashboard(context.Background())
	require.Error(t, err)
}
