package repository

import (
	"context"
	"database/sql"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Vedant491/college-fees-api/internal/models"
)

func TestStudentCreate(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewStudentRepository(db)

	mock.ExpectExec("INSERT INTO students").WillReturnResult(sqlmock.NewResult(0, 1))

	student := &models.Student{Name: "Asha Verma", Email: "asha@example.com", Phone: "9876543210", CourseID: "c1", AdmissionYear: 2023}
	err := repo.Create(context.Background(), student)
	require.NoError(t, err)
	assert.NotEmpty(t, student.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStudentFindByIDNotFound(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewStudentRepository(db)

	mock.ExpectQuery("SELECT id, name, email, phone, course_id, admission_year, created_at FROM students WHERE id").
		WithArgs("missing").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.FindByID(context.Background(), "missing")
	assert.ErrorIs(t, err, sql.ErrNoRows)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStudentListLedgers(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewStudentRepository(db)

	rows := sqlmock.NewRows([]string{"id", "name", "email", "phone", "course_name", "admission_year", "total_fees", "total_paid", "balance_due"}).
		AddRow("s1", "Asha Verma", "asha@example.com", "9876543210", "B.Sc Computer Science", 2023, 90000.0, 15000.0, 75000.0).
		AddRow("s2", "Ravi Kumar", "ravi@example.com", "9876500000", "B.Com", 2022, 60000.0, 60000.0, 0.0)
	mock.ExpectQuery("ORDER BY s.created_at DESC").
		WithArgs(models.StatusCompleted).
		WillReturnRows(rows)

	ledgers, err := repo.ListLedgers(context.Background())
	require.NoError(t, err)
	require.Len(t, ledgers, 2)
	assert.Equal(t, 75000.0, ledgers[0].BalanceDue)
	assert.Equal(t, 60000.0, ledgers[1].TotalPaid)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStudentCreatedAtPreserved(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewStudentRepository(db)

	mock.ExpectExec("INSERT INTO students").WillReturnResult(sqlmock.NewResult(0, 1))

	created := time.Date(2023, 6, 1, 0, 0, 0, 0, time.UTC)
	student := &models.Student{ID: "s1", Name: "Asha", Email: "a@example.com", Phone: "9876543210", CourseID: "c1", AdmissionYear: 2023, CreatedAt: created}
	err := repo.Create(context.Background(), student)
	require.NoError(t, err)
	assert.Equal(t, created, student.CreatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}
