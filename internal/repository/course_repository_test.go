package repository

import (
	"context"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Vedant491/college-fees-api/internal/models"
)

func newMock(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	sqlxdb := sqlx.NewDb(db, "sqlmock")
	return sqlxdb, mock, func() {
		db.Close()
	}
}

func TestCourseCreate(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewCourseRepository(db)

	mock.ExpectExec("INSERT INTO courses").WillReturnResult(sqlmock.NewResult(0, 1))

	course := &models.Course{Name: "B.Sc Computer Science", DurationYears: 3, TotalFees: 90000}
	err := repo.Create(context.Background(), course)
	require.NoError(t, err)
	assert.NotEmpty(t, course.ID)
	assert.False(t, course.CreatedAt.IsZero())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCourseExistsByName(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewCourseRepository(db)

	mock.ExpectQuery("SELECT 1 FROM courses WHERE name").
		WithArgs("B.Sc Computer Science").
		WillReturnRows(sqlmock.NewRows([]string{"?column?"}).AddRow(1))

	exists, err := repo.ExistsByName(context.Background(), "B.Sc Computer Science")
	require.NoError(t, err)
	assert.True(t, exists)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCourseExistsByNameNoRows(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewCourseRepository(db)

	mock.ExpectQuery("SELECT 1 FROM courses WHERE name").
		WithArgs("Unknown").
		WillReturnRows(sqlmock.NewRows([]string{"?column?"}))

	exists, err := repo.ExistsByName(context.Background(), "Unknown")
	require.NoError(t, err)
	assert.False(t, exists)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCourseListSummaries(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewCourseRepository(db)

	now := time.Now()
	rows := sqlmock.NewRows([]string{"id", "name", "duration_years", "total_fees", "created_at", "enrolled_students", "total_collected"}).
		AddRow("c1", "B.Com", 3, 60000.0, now, 12, 210000.0).
		AddRow("c2", "B.Sc Computer Science", 3, 90000.0, now, 8, 150000.0)
	mock.ExpectQuery("LEFT JOIN payments p ON p.student_id = s.id AND p.status").
		WithArgs(models.StatusCompleted).
		WillReturnRows(rows)

	summaries, err := repo.ListSummaries(context.Background())
	require.NoError(t, err)
	require.Len(t, summaries, 2)
	assert.Equal(t, "B.Com", summaries[0].Name)
	assert.Equal(t, 12, summaries[0].EnrolledStudents)
	assert.Equal(t, 150000.0, summaries[1].TotalCollected)
	assert.NoError(t, mock.ExpectationsWereMet())
}
