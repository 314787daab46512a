package leave

import (
	"fmt"
	"io"
	"strconv"

	"github.com/jung-kurt/gofpdf"
)

// WriteSlip renders a one-page confirmation of a validated request.
func WriteSlip(w io.Writer, s Submission) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Leave Request", false)
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(40, 10, "Leave Request")
	pdf.Ln(12)
	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Leave type: %s (%s)", LeaveTypeLabel(s.LeaveType), s.LeaveType))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Start: %s%s", s.StartDate, halfMarker(s.HalfDayStart)))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("End: %s%s", s.EndDate, halfMarker(s.HalfDayEnd)))
	pdf.Ln(10)
	pdf.Cell(0, 8, "Reason: "+s.Reason)
	pdf.Ln(7)
	if s.OtherReason != "" {
		pdf.MultiCell(0, 7, "Details: "+s.OtherReason, "", "L", false)
		pdf.Ln(3)
	}
	pdf.Cell(0, 8, fmt.Sprintf("Business days: %d", s.BusinessDays))
	pdf.Ln(7)
	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, "Chargeable days: "+strconv.FormatFloat(s.ChargeableDays, 'f', -1, 64))

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("render leave slip: %w", err)
	}
	return nil
}

func halfMarker(half bool) string {
	if half {
		return " (half day)"
	}
	return ""
}
