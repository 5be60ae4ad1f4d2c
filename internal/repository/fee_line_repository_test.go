package repository

import (
	"context"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Vedant491/college-fees-api/internal/models"
)

func TestFeeLineCreate(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewFeeLineRepository(db)

	mock.ExpectExec("INSERT INTO fees_structure").WillReturnResult(sqlmock.NewResult(0, 1))

	line := &models.FeeLine{CourseID: "c1", Semester: 1, Amount: 15000, Description: "Semester 1 tuition"}
	err := repo.Create(context.Background(), line)
	require.NoError(t, err)
	assert.NotEmpty(t, line.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFeeLineExists(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewFeeLineRepository(db)

	mock.ExpectQuery("SELECT 1 FROM fees_structure WHERE course_id").
		WithArgs("c1", 2).
		WillReturnRows(sqlmock.NewRows([]string{"?column?"}).AddRow(1))

	exists, err := repo.Exists(context.Background(), "c1", 2)
	require.NoError(t, err)
	assert.True(t, exists)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFeeLineListFilteredByCourse(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewFeeLineRepository(db)

	now := time.Now()
	rows := sqlmock.NewRows([]string{"id", "course_id", "semester", "amount", "description", "created_at", "course_name"}).
		AddRow("f1", "c1", 1, 15000.0, "Semester 1 tuition", now, "B.Sc Computer Science").
		AddRow("f2", "c1", 2, 15000.0, "Semester 2 tuition", now, "B.Sc Computer Science")
	mock.ExpectQuery(`WHERE f.course_id = \$1 ORDER BY f.semester`).
		WithArgs("c1").
		WillReturnRows(rows)

	lines, err := repo.List(context.Background(), "c1")
	require.NoError(t, err)
	require.Len(t, lines, 2)
	assert.Equal(t, 1, lines[0].Semester)
	assert.Equal(t, "B.Sc Computer Science", lines[0].CourseName)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFeeLineListAll(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewFeeLineRepository(db)

	rows := sqlmock.NewRows([]string{"id", "course_id", "semester", "amount", "description", "created_at", "course_name"}).
		AddRow("f1", "c1", 1, 15000.0, "", time.Now(), "B.Com")
	mock.ExpectQuery(`ORDER BY c.name, f.semester`).WillReturnRows(rows)

	lines, err := repo.List(context.Background(), "")
	require.NoError(t, err)
	require.Len(t, lines, 1)
	assert.NoError(t, mock.ExpectationsWereMet())
}
