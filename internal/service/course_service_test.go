package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Vedant491/college-fees-api/internal/models"
	appErrors "github.com/Vedant491/college-fees-api/pkg/errors"
)

type fakeCourseRepo struct {
	course     *models.Course
	findErr    error
	nameExists bool
	existsErr  error
	createErr  error
	created    *models.Course
	summaries  []models.CourseSummary
	listErr    error
}

func (f *fakeCourseRepo) Create(_ context.Context, course *models.Course) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.created = course
	return nil
}

func (f *fakeCourseRepo) FindByID(_ context.Context, id string) (*models.Course, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	return f.course, nil
}

func (f *fakeCourseRepo) ExistsByName(_ context.Context, name string) (bool, error) {
	return f.nameExists, f.existsErr
}

func (f *fakeCourseRepo) ListSummaries(_ context.Context) ([]models.CourseSummary, error) {
	return f.summaries, f.listErr
}

func TestCourseCreateSuccess(t *testing.T) {
	repo := &fakeCourseRepo{}
	svc := NewCourseService(repo, nil, nil, nil)

	course, err := svc.Create(context.Background(), CreateCourseRequest{
		Name:          "B.Sc Computer Science",
		DurationYears: 3,
		TotalFees:     90000,
	})
	require.NoError(t, err)
	assert.Equal(t, "B.Sc Computer Science", course.Name)
	assert.Same(t, course, repo.created)
}

func TestCourseCreateDuplicateName(t *testing.T) {
	repo := &fakeCourseRepo{nameExists: true}
	svc := NewCourseService(repo, nil, nil, nil)

	_, err := svc.Create(context.Background(), CreateCourseRequest{
		Name:          "B.Sc Computer Science",
		DurationYears: 3,
		TotalFees:     90000,
	})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrDuplicate.Code, appErrors.FromError(err).Code)
	assert.Nil(t, repo.created)
}

func TestCourseCreateDurationBounds(t *testing.T) {
	svc := NewCourseService(&fakeCourseRepo{}, nil, nil, nil)

	for _, duration := range []int{0, 7} {
		_, err := svc.Create(context.Background(), CreateCourseRequest{
			Name:          "MBA",
			DurationYears: duration,
			TotalFees:     200000,
		})
		require.Error(t, err)
		assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
	}
}

func TestCourseCreateRejectsZeroFees(t *testing.T) {
	svc := NewCourseService(&fakeCourseRepo{}, nil, nil, nil)

	_, err := svc.Create(context.Background(), CreateCourseRequest{
		Name:          "MBA",
		DurationYears: 2,
		TotalFees:     0,
	})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
}

func TestCourseList(t *testing.T) {
	repo := &fakeCourseRepo{summaries: []models.CourseSummary{
		{Course: models.Course{ID: "c1", Name: "B.Com"}, EnrolledStudents: 12, TotalCollected: 210000},
	}}
	svc := NewCourseService(repo, nil, nil, nil)

	summaries, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, summaries, 1)
	assert.Equal(t, 12, summaries[0].EnrolledStudents)
}
