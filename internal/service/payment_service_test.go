package service

import (
	"context"
	"database/sql"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Vedant491/college-fees-api/internal/models"
	appErrors "github.com/Vedant491/college-fees-api/pkg/errors"
)

type fakePaymentRepo struct {
	payment        *models.Payment
	findErr        error
	createErr      error
	created        *models.Payment
	createdReceipt *models.Receipt
	txUsed         bool
	listed         []models.PaymentDetail
	listErr        error
	lastFilter     models.PaymentFilter
	stats          *models.PaymentStats
	statsErr       error
	modes          []models.ModeStats
	modesErr       error
}

func (f *fakePaymentRepo) Create(_ context.Context, payment *models.Payment) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.created = payment
	return nil
}

func (f *fakePaymentRepo) CreateWithReceipt(_ context.Context, payment *models.Payment, receipt *models.Receipt) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.created = payment
	f.createdReceipt = receipt
	f.txUsed = true
	return nil
}

func (f *fakePaymentRepo) FindByID(_ context.Context, id string) (*models.Payment, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	return f.payment, nil
}

func (f *fakePaymentRepo) List(_ context.Context, filter models.PaymentFilter) ([]models.PaymentDetail, error) {
	f.lastFilter = filter
	return f.listed, f.listErr
}

func (f *fakePaymentRepo) Stats(_ context.Context) (*models.PaymentStats, error) {
	return f.stats, f.statsErr
}

func (f *fakePaymentRepo) ModeBreakdown(_ context.Context) ([]models.ModeStats, error) {
	return f.modes, f.modesErr
}

type fakeFeeLineFinder struct {
	line *models.FeeLine
	err  error
}

func (f *fakeFeeLineFinder) FindByID(_ context.Context, id string) (*models.FeeLine, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.line, nil
}

func validPaymentRequest() RecordPaymentRequest {
	return RecordPaymentRequest{
		StudentID:  "s1",
		FeeID:      "f1",
		AmountPaid: 15000,
		Mode:       models.ModeUPI,
		Status:     models.StatusCompleted,
	}
}

func newPaymentService(repo *fakePaymentRepo, students *fakeStudentFinder, feeLines *fakeFeeLineFinder) *PaymentService {
	svc := NewPaymentService(repo, students, feeLines, nil, nil, nil)
	svc.now = func() time.Time { return time.Date(2024, 8, 1, 10, 0, 0, 0, time.UTC) }
	return svc
}

func TestPaymentRecordCompletedIssuesReceipt(t *testing.T) {
	repo := &fakePaymentRepo{}
	students := &fakeStudentFinder{student: &models.Student{ID: "s1", CourseID: "c1"}}
	feeLines := &fakeFeeLineFinder{line: &models.FeeLine{ID: "f1", CourseID: "c1", Semester: 1, Amount: 15000}}
	svc := newPaymentService(repo, students, feeLines)

	resp, err := svc.Record(context.Background(), validPaymentRequest())
	require.NoError(t, err)
	assert.True(t, repo.txUsed)
	require.NotNil(t, resp.ReceiptNumber)
	assert.True(t, strings.HasPrefix(*resp.ReceiptNumber, "RCPT-"))
	assert.Equal(t, repo.createdReceipt.ReceiptNumber, *resp.ReceiptNumber)
}

func TestPaymentRecordPendingSkipsReceipt(t *testing.T) {
	repo := &fakePaymentRepo{}
	students := &fakeStudentFinder{student: &models.Student{ID: "s1", CourseID: "c1"}}
	feeLines := &fakeFeeLineFinder{line: &models.FeeLine{ID: "f1", CourseID: "c1"}}
	svc := newPaymentService(repo, students, feeLines)

	req := validPaymentRequest()
	req.Status = models.StatusPending
	resp, err := svc.Record(context.Background(), req)
	require.NoError(t, err)
	assert.False(t, repo.txUsed)
	assert.Nil(t, resp.ReceiptNumber)
	assert.Nil(t, repo.createdReceipt)
}

func TestPaymentRecordRejectsCrossCourseFeeLine(t *testing.T) {
	students := &fakeStudentFinder{student: &models.Student{ID: "s1", CourseID: "c1"}}
	feeLines := &fakeFeeLineFinder{line: &models.FeeLine{ID: "f1", CourseID: "c2"}}
	svc := newPaymentService(&fakePaymentRepo{}, students, feeLines)

	_, err := svc.Record(context.Background(), validPaymentRequest())
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
}

func TestPaymentRecordUnknownModeAndStatus(t *testing.T) {
	svc := newPaymentService(&fakePaymentRepo{}, &fakeStudentFinder{}, &fakeFeeLineFinder{})

	req := validPaymentRequest()
	req.Mode = "Barter"
	_, err := svc.Record(context.Background(), req)
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)

	req = validPaymentRequest()
	req.Status = "Maybe"
	_, err = svc.Record(context.Background(), req)
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
}

func TestPaymentRecordStudentNotFound(t *testing.T) {
	students := &fakeStudentFinder{err: sql.ErrNoRows}
	svc := newPaymentService(&fakePaymentRepo{}, students, &fakeFeeLineFinder{})

	_, err := svc.Record(context.Background(), validPaymentRequest())
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrNotFound.Code, appErrors.FromError(err).Code)
}

func TestPaymentRecordDefaultsPaymentDate(t *testing.T) {
	repo := &fakePaymentRepo{}
	students := &fakeStudentFinder{student: &models.Student{ID: "s1", CourseID: "c1"}}
	feeLines := &fakeFeeLineFinder{line: &models.FeeLine{ID: "f1", CourseID: "c1"}}
	svc := newPaymentService(repo, students, feeLines)

	resp, err := svc.Record(context.Background(), validPaymentRequest())
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 8, 1, 10, 0, 0, 0, time.UTC), resp.Payment.PaymentDate)
}

func TestPaymentListValidatesFilter(t *testing.T) {
	svc := newPaymentService(&fakePaymentRepo{}, &fakeStudentFinder{}, &fakeFeeLineFinder{})

	_, err := svc.List(context.Background(), models.PaymentFilter{Status: "Maybe"})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)

	_, err = svc.List(context.Background(), models.PaymentFilter{Mode: "Barter"})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
}

func TestPaymentStatsCombined(t *testing.T) {
	repo := &fakePaymentRepo{
		stats: &models.PaymentStats{TotalPayments: 10, Completed: 7, Pending: 2, TotalAmount: 105000, AverageAmount: 15000},
		modes: []models.ModeStats{{Mode: models.ModeUPI, Count: 5, Total: 75000}},
	}
	svc := newPaymentService(repo, &fakeStudentFinder{}, &fakeFeeLineFinder{})

	resp, err := svc.Stats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 10, resp.Stats.TotalPayments)
	require.Len(t, resp.Modes, 1)
	assert.Equal(t, models.ModeUPI, resp.Modes[0].Mode)
}

func TestPaymentExportCSV(t *testing.T) {
	receiptNumber := "RCPT-AB12CD34EF56AB78"
	repo := &fakePaymentRepo{listed: []models.PaymentDetail{
		{
			Payment: models.Payment{
				ID:          "p1",
				PaymentDate: time.Date(2024, 7, 15, 0, 0, 0, 0, time.UTC),
				AmountPaid:  15000,
				Mode:        models.ModeUPI,
				Status:      models.StatusCompleted,
			},
			StudentName:   "Asha Verma",
			CourseName:    "B.Sc Computer Science",
			Semester:      1,
			ReceiptNumber: &receiptNumber,
		},
	}}
	svc := newPaymentService(repo, &fakeStudentFinder{}, &fakeFeeLineFinder{})

	data, err := svc.ExportCSV(context.Background(), models.PaymentFilter{})
	require.NoError(t, err)
	out := string(data)
	assert.Contains(t, out, "Payment ID,Student,Course,Semester,Date,Amount,Mode,Status,Transaction ID,Receipt")
	assert.Contains(t, out, "p1,Asha Verma,B.Sc Computer Science,1,2024-07-15,15000.00,UPI,Completed,,RCPT-AB12CD34EF56AB78")
}
