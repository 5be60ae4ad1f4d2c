package service

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Vedant491/college-fees-api/internal/models"
	appErrors "github.com/Vedant491/college-fees-api/pkg/errors"
)

type fakeStudentRepo struct {
	student     *models.Student
	findErr     error
	emailExists bool
	existsErr   error
	createErr   error
	created     *models.Student
	ledgers     []models.StudentLedger
	ledgersErr  error
}

func (f *fakeStudentRepo) Create(_ context.Context, student *models.Student) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.created = student
	return nil
}

func (f *fakeStudentRepo) FindByID(_ context.Context, id string) (*models.Student, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	return f.student, nil
}

func (f *fakeStudentRepo) ExistsByEmail(_ context.Context, email string) (bool, error) {
	return f.emailExists, f.existsErr
}

func (f *fakeStudentRepo) ListLedgers(_ context.Context) ([]models.StudentLedger, error) {
	return f.ledgers, f.ledgersErr
}

func newStudentService(repo *fakeStudentRepo, courses *fakeCourseRepo) *StudentService {
	svc := NewStudentService(repo, courses, nil, nil, nil)
	svc.now = func() time.Time { return time.Date(2024, 8, 1, 0, 0, 0, 0, time.UTC) }
	return svc
}

func validStudentRequest() CreateStudentRequest {
	return CreateStudentRequest{
		Name:          "Asha Verma",
		Email:         "asha@example.com",
		Phone:         "9876543210",
		CourseID:      "c1",
		AdmissionYear: 2023,
	}
}

func TestStudentCreateSuccess(t *testing.T) {
	repo := &fakeStudentRepo{}
	courses := &fakeCourseRepo{course: &models.Course{ID: "c1"}}
	svc := newStudentService(repo, courses)

	student, err := svc.Create(context.Background(), validStudentRequest())
	require.NoError(t, err)
	assert.Equal(t, "asha@example.com", student.Email)
	assert.Same(t, student, repo.created)
}

func TestStudentCreateInvalidPhone(t *testing.T) {
	svc := newStudentService(&fakeStudentRepo{}, &fakeCourseRepo{course: &models.Course{ID: "c1"}})

	for _, phone := range []string{"12345", "abcdefghij", "123456789012345678"} {
		req := validStudentRequest()
		req.Phone = phone
		_, err := svc.Create(context.Background(), req)
		require.Error(t, err, "phone %q", phone)
		assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
	}
}

func TestStudentCreateAdmissionYearRange(t *testing.T) {
	svc := newStudentService(&fakeStudentRepo{}, &fakeCourseRepo{course: &models.Course{ID: "c1"}})

	for _, year := range []int{2019, 2025} {
		req := validStudentRequest()
		req.AdmissionYear = year
		_, err := svc.Create(context.Background(), req)
		require.Error(t, err, "year %d", year)
		assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
	}
}

func TestStudentCreateDuplicateEmail(t *testing.T) {
	repo := &fakeStudentRepo{emailExists: true}
	svc := newStudentService(repo, &fakeCourseRepo{course: &models.Course{ID: "c1"}})

	_, err := svc.Create(context.Background(), validStudentRequest())
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrDuplicate.Code, appErrors.FromError(err).Code)
	assert.Nil(t, repo.created)
}

func TestStudentCreateCourseNotFound(t *testing.T) {
	svc := newStudentService(&fakeStudentRepo{}, &fakeCourseRepo{findErr: sql.ErrNoRows})

	_, err := svc.Create(context.Background(), validStudentRequest())
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrNotFound.Code, appErrors.FromError(err).Code)
}

func TestStudentLedgerStatusesAndSummary(t *testing.T) {
	repo := &fakeStudentRepo{ledgers: []models.StudentLedger{
		{ID: "s1", Name: "Asha Verma", CourseName: "B.Sc Computer Science", TotalFees: 90000, TotalPaid: 15000, BalanceDue: 75000},
		{ID: "s2", Name: "Ravi Kumar", CourseName: "B.Com", TotalFees: 60000, TotalPaid: 60000, BalanceDue: 0},
		{ID: "s3", Name: "Meena Iyer", CourseName: "B.Com", TotalFees: 60000, TotalPaid: 30000, BalanceDue: 30000},
	}}
	svc := newStudentService(repo, &fakeCourseRepo{})

	report, err := svc.Ledger(context.Background())
	require.NoError(t, err)
	require.Len(t, report.Students, 3)
	assert.Equal(t, LedgerPending, report.Students[0].Status)
	assert.Equal(t, LedgerPaid, report.Students[1].Status)
	assert.Equal(t, LedgerPartial, report.Students[2].Status)

	assert.Equal(t, 3, report.Summary.TotalStudents)
	assert.Equal(t, 210000.0, report.Summary.ExpectedRevenue)
	assert.Equal(t, 105000.0, report.Summary.Collected)
	assert.Equal(t, 105000.0, report.Summary.Pending)
	assert.InDelta(t, 50.0, report.Summary.CollectionRate, 0.001)
}

func TestStudentFindByIDNotFoundMapped(t *testing.T) {
	svc := newStudentService(&fakeStudentRepo{findErr: sql.ErrNoRows}, &fakeCourseRepo{})

	_, err := svc.FindByID(context.Background(), "missing")
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrNotFound.Code, appErrors.FromError(err).Code)
}
