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

func TestReceiptCreate(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewReceiptRepository(db)

	mock.ExpectExec("INSERT INTO receipts").WillReturnResult(sqlmock.NewResult(0, 1))

	receipt := &models.Receipt{ReceiptNumber: "RCPT-AB12CD34EF56AB78", PaymentID: "p1"}
	err := repo.Create(context.Background(), receipt)
	require.NoError(t, err)
	assert.NotEmpty(t, receipt.ID)
	assert.False(t, receipt.GeneratedAt.IsZero())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReceiptExistsForPayment(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewReceiptRepository(db)

	mock.ExpectQuery("SELECT 1 FROM receipts WHERE payment_id").
		WithArgs("p1").
		WillReturnRows(sqlmock.NewRows([]string{"?column?"}).AddRow(1))

	exists, err := repo.ExistsForPayment(context.Background(), "p1")
	require.NoError(t, err)
	assert.True(t, exists)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReceiptFindDocumentByNumber(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewReceiptRepository(db)

	now := time.Now()
	rows := sqlmock.NewRows([]string{
		"receipt_number", "generated_at",
		"payment_id", "payment_date", "amount_paid", "mode", "transaction_id", "remarks",
		"student_id", "student_name", "student_email", "student_phone",
		"course_name", "duration_years",
		"semester", "semester_fee", "fee_description",
	}).AddRow(
		"RCPT-AB12CD34EF56AB78", now,
		"p1", now, 15000.0, "UPI", "TXN123", nil,
		"s1", "Asha Verma", "asha@example.com", "9876543210",
		"B.Sc Computer Science", 3,
		1, 15000.0, "Semester 1 tuition",
	)
	mock.ExpectQuery(`WHERE rc.receipt_number = \$1`).
		WithArgs("RCPT-AB12CD34EF56AB78").
		WillReturnRows(rows)

	doc, err := repo.FindDocumentByNumber(context.Background(), "RCPT-AB12CD34EF56AB78")
	require.NoError(t, err)
	assert.Equal(t, "Asha Verma", doc.StudentName)
	assert.Equal(t, "B.Sc Computer Science", doc.CourseName)
	assert.Equal(t, 15000.0, doc.SemesterFee)
	require.NotNil(t, doc.TransactionID)
	assert.Equal(t, "TXN123", *doc.TransactionID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReceiptFindDocumentByNumberNotFound(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewReceiptRepository(db)

	mock.ExpectQuery(`WHERE rc.receipt_number = \$1`).
		WithArgs("RCPT-MISSING").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.FindDocumentByNumber(context.Background(), "RCPT-MISSING")
	assert.ErrorIs(t, err, sql.ErrNoRows)
	assert.NoError(t, mock.ExpectationsWereMet())
}
