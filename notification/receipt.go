package notification

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"
)

// buildReceiptPDF renders the payment receipt attached to the confirmation
// mail for paid bookings.
func buildReceiptPDF(patientName, doctor, date, timeSlot, paymentRef string) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(0, 10, "SkinAI Hub - Consultation Receipt")
	pdf.Ln(14)

	pdf.SetFont("Arial", "", 12)
	lines := []string{
		fmt.Sprintf("Patient: %s", patientName),
		fmt.Sprintf("Doctor: %s", doctor),
		fmt.Sprintf("Date: %s", date),
		fmt.Sprintf("Time: %s", timeSlot),
		fmt.Sprintf("Payment reference: %s", paymentRef),
	}
	for _, line := range lines {
		pdf.Cell(0, 8, line)
		pdf.Ln(8)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
