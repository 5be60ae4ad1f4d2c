package export

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"

	"github.com/Vedant491/college-fees-api/internal/models"
)

// Letterhead carries the institution details printed at the top of a receipt.
type Letterhead struct {
	Name    string
	Address string
	Phone   string
	Email   string
}

// ReceiptPDFExporter renders a receipt document into a printable PDF.
type ReceiptPDFExporter struct{}

// NewReceiptPDFExporter constructs a receipt PDF exporter.
func NewReceiptPDFExporter() *ReceiptPDFExporter {
	return &ReceiptPDFExporter{}
}

// Render produces the fixed-layout receipt: letterhead, receipt number
// banner, student section, payment section, amounts and amount-in-words.
func (e *ReceiptPDFExporter) Render(head Letterhead, doc *models.ReceiptDocument) ([]byte, error) {
	if doc == nil {
		return nil, fmt.Errorf("receipt document is required")
	}
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(15, 15, 15)
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 18)
	pdf.CellFormat(0, 10, "COLLEGE FEES RECEIPT", "", 1, "C", false, 0, "")
	pdf.SetFont("Arial", "", 10)
	pdf.CellFormat(0, 6, head.Name, "", 1, "C", false, 0, "")
	pdf.CellFormat(0, 5, head.Address, "", 1, "C", false, 0, "")
	pdf.CellFormat(0, 5, fmt.Sprintf("Phone: %s | Email: %s", head.Phone, head.Email), "", 1, "C", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont("Arial", "B", 12)
	pdf.SetFillColor(230, 230, 250)
	pdf.CellFormat(0, 9, fmt.Sprintf("RECEIPT NO: %s", doc.ReceiptNumber), "1", 1, "C", true, 0, "")
	pdf.Ln(4)

	section := func(title string) {
		pdf.SetFont("Arial", "B", 12)
		pdf.CellFormat(0, 8, title, "B", 1, "", false, 0, "")
		pdf.Ln(1)
	}
	row := func(label, value string) {
		pdf.SetFont("Arial", "B", 10)
		pdf.CellFormat(55, 7, label, "", 0, "", false, 0, "")
		pdf.SetFont("Arial", "", 10)
		pdf.CellFormat(0, 7, value, "", 1, "", false, 0, "")
	}

	section("Student Information")
	row("Student ID:", doc.StudentID)
	row("Student Name:", doc.StudentName)
	row("Email:", doc.StudentEmail)
	row("Phone:", doc.StudentPhone)
	row("Course:", doc.CourseName)
	pdf.Ln(3)

	section("Payment Details")
	row("Payment ID:", doc.PaymentID)
	row("Payment Date:", doc.PaymentDate.Format("02-Jan-2006"))
	row("Receipt Date:", doc.GeneratedAt.Format("02-Jan-2006 15:04:05"))
	row("Semester:", fmt.Sprintf("Semester %d", doc.Semester))
	row("Fee Description:", doc.FeeDescription)
	row("Payment Mode:", doc.Mode)
	if doc.TransactionID != nil && *doc.TransactionID != "" {
		row("Transaction ID:", *doc.TransactionID)
	}
	if doc.Remarks != nil && *doc.Remarks != "" {
		row("Remarks:", *doc.Remarks)
	}
	pdf.Ln(3)

	section("Amount")
	row("Semester Fee:", fmt.Sprintf("Rs. %.2f", doc.SemesterFee))
	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(55, 8, "Amount Paid:", "T", 0, "", false, 0, "")
	pdf.CellFormat(0, 8, fmt.Sprintf("Rs. %.2f", doc.AmountPaid), "T", 1, "", false, 0, "")
	pdf.SetFont("Arial", "I", 10)
	pdf.MultiCell(0, 6, fmt.Sprintf("Amount in Words: %s", doc.AmountInWords), "", "", false)
	pdf.Ln(10)

	pdf.SetFont("Arial", "", 9)
	pdf.CellFormat(0, 6, "This is a computer-generated receipt and does not require a physical signature.", "", 1, "C", false, 0, "")

	buf := &bytes.Buffer{}
	if err := pdf.Output(buf); err != nil {
		return nil, fmt.Errorf("render receipt pdf: %w", err)
	}
	return buf.Bytes(), nil
}
