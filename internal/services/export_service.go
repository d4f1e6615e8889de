package services

import (
	"fmt"
	"io"
	"os"

	"github.com/AlexNT-maker/auto-payroll-system/internal/models"
	"github.com/AlexNT-maker/auto-payroll-system/pkg/utils"

	"github.com/go-pdf/fpdf"
	"github.com/xuri/excelize/v2"
)

// payrollLabels are the table captions of the payroll documents.
type payrollLabels struct {
	Title      string
	Headers    []string
	GrandTotal string
}

var greekLabels = payrollLabels{
	Title:      "Μισθοδοσία: %s έως %s",
	Headers:    []string{"Εργαζόμενος", "Ημέρες", "Μισθός (€)", "Υπερωρία (€)", "Έξτρα (€)", "Σύνολο (€)", "Τράπεζα (€)", "Μετρητά (€)"},
	GrandTotal: "ΓΕΝΙΚΟ ΣΥΝΟΛΟ",
}

// latinLabels are used when no Unicode font is available for the PDF core fonts.
var latinLabels = payrollLabels{
	Title:      "Payroll: %s to %s",
	Headers:    []string{"Employee", "Days", "Wage (EUR)", "Overtime (EUR)", "Extras (EUR)", "Total (EUR)", "Bank (EUR)", "Cash (EUR)"},
	GrandTotal: "GRAND TOTAL",
}

// ExportService renders payroll reports as downloadable documents.
type ExportService interface {
	WritePayrollPDF(w io.Writer, report *models.PayrollReport) error
	WritePayrollXLSX(w io.Writer, report *models.PayrollReport) error
}

type exportService struct {
	fontPath string
}

// NewExportService creates an ExportService. fontPath points at a TrueType
// font with Greek glyphs; when empty or missing the PDF falls back to
// Helvetica with Latin captions.
func NewExportService(fontPath string) ExportService {
	return &exportService{fontPath: fontPath}
}

func payrollRow(p models.PaymentItem) []string {
	return []string{
		p.EmployeeName,
		fmt.Sprintf("%d", p.DaysWorked),
		fmt.Sprintf("%.2f", p.TotalWage),
		fmt.Sprintf("%.2f", p.TotalOvertime),
		fmt.Sprintf("%.2f", p.TotalExtra),
		fmt.Sprintf("%.2f", p.GrandTotal),
		fmt.Sprintf("%.2f", p.BankPay),
		fmt.Sprintf("%.2f", p.CashPay),
	}
}

func totalsRow(report *models.PayrollReport, label string) []string {
	return []string{label, "", "", "", "",
		fmt.Sprintf("%.2f", report.GrandTotal),
		fmt.Sprintf("%.2f", report.TotalBank),
		fmt.Sprintf("%.2f", report.TotalCash),
	}
}

func (s *exportService) WritePayrollPDF(w io.Writer, report *models.PayrollReport) error {
	pdf := fpdf.New("L", "mm", "A4", "")

	family, labels := "Helvetica", latinLabels
	if s.fontPath != "" {
		if _, err := os.Stat(s.fontPath); err == nil {
			pdf.AddUTF8Font("payroll", "", s.fontPath)
			pdf.AddUTF8Font("payroll", "B", s.fontPath)
			family, labels = "payroll", greekLabels
		} else {
			utils.LogWarn("PDF font not found, using Helvetica", map[string]interface{}{"font_path": s.fontPath})
		}
	}

	title := fmt.Sprintf(labels.Title, report.StartDate, report.EndDate)
	pdf.SetTitle(title, true)
	pdf.AddPage()

	pdf.SetFont(family, "B", 18)
	pdf.CellFormat(0, 12, title, "", 1, "C", false, 0, "")
	pdf.Ln(6)

	widths := []float64{70, 20, 28, 30, 28, 30, 30, 30}

	pdf.SetFont(family, "B", 10)
	pdf.SetFillColor(128, 128, 128)
	pdf.SetTextColor(245, 245, 245)
	for i, h := range labels.Headers {
		pdf.CellFormat(widths[i], 8, h, "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont(family, "", 10)
	pdf.SetTextColor(0, 0, 0)
	for _, p := range report.Payments {
		for i, cell := range payrollRow(p) {
			align, fill := "C", false
			switch i {
			case 0:
				align = "L"
			case 6:
				pdf.SetFillColor(240, 248, 255) // bank column
				fill = true
			case 7:
				pdf.SetFillColor(255, 255, 224) // cash column
				fill = true
			}
			pdf.CellFormat(widths[i], 7, cell, "1", 0, align, fill, 0, "")
		}
		pdf.Ln(-1)
	}

	pdf.SetFont(family, "B", 10)
	pdf.SetFillColor(211, 211, 211)
	for i, cell := range totalsRow(report, labels.GrandTotal) {
		align := "C"
		if i == 0 {
			align = "L"
		}
		pdf.CellFormat(widths[i], 8, cell, "1", 0, align, true, 0, "")
	}
	pdf.Ln(-1)

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("rendering payroll pdf: %w", err)
	}
	return nil
}

func (s *exportService) WritePayrollXLSX(w io.Writer, report *models.PayrollReport) error {
	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Μισθοδοσία"
	if err := f.SetSheetName(f.GetSheetName(0), sheetName); err != nil {
		return fmt.Errorf("naming payroll sheet: %w", err)
	}

	f.SetCellValue(sheetName, "A1", fmt.Sprintf(greekLabels.Title, report.StartDate, report.EndDate))

	for i, header := range greekLabels.Headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 3)
		f.SetCellValue(sheetName, cell, header)
	}
	if style, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}}); err == nil {
		last, _ := excelize.CoordinatesToCellName(len(greekLabels.Headers), 3)
		f.SetCellStyle(sheetName, "A3", last, style)
	}

	row := 4
	for _, p := range report.Payments {
		values := []interface{}{p.EmployeeName, p.DaysWorked, p.TotalWage, p.TotalOvertime, p.TotalExtra, p.GrandTotal, p.BankPay, p.CashPay}
		for i, v := range values {
			cell, _ := excelize.CoordinatesToCellName(i+1, row)
			f.SetCellValue(sheetName, cell, v)
		}
		row++
	}

	f.SetCellValue(sheetName, fmt.Sprintf("A%d", row), greekLabels.GrandTotal)
	f.SetCellValue(sheetName, fmt.Sprintf("F%d", row), report.GrandTotal)
	f.SetCellValue(sheetName, fmt.Sprintf("G%d", row), report.TotalBank)
	f.SetCellValue(sheetName, fmt.Sprintf("H%d", row), report.TotalCash)
	f.SetColWidth(sheetName, "A", "A", 30)

	if err := f.Write(w); err != nil {
		return fmt.Errorf("writing payroll xlsx: %w", err)
	}
	return nil
}
