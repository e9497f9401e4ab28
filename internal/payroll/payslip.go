package payroll

import (
	"bytes"
	"fmt"
	"time"

	"github.com/jung-kurt/gofpdf/v2"
	"github.com/shopspring/decimal"
	qrcode "github.com/skip2/go-qrcode"
)

const qrImageName = "payslip-qr"

type Payslip struct {
	Filename string
	Content  []byte
}

type payslipLine struct {
	label  string
	amount decimal.Decimal
}

// renderPayslip draws a one page A4 payslip. The QR code carries the payroll
// id and net pay so a printed copy can be checked against the record.
func renderPayslip(p Payroll) ([]byte, error) {
	qr, err := qrcode.Encode(payslipVerification(p), qrcode.Medium, 256)
	if err != nil {
		return nil, fmt.Errorf("encode payslip qr: %w", err)
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(fmt.Sprintf("Payslip %04d-%02d", p.Year, p.Month), false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 10, "PAYSLIP", "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(0, 6, periodLabel(p.Month, p.Year), "", 1, "C", false, 0, "")
	pdf.Ln(4)

	code, name, department, position := "-", "-", "-", "-"
	if p.Employee != nil {
		code = p.Employee.EmployeeCode
		name = p.Employee.FullName
		department = p.Employee.Department
		position = p.Employee.Position
	}
	for _, row := range [][2]string{
		{"Employee", name},
		{"Employee code", code},
		{"Department", department},
		{"Position", position},
		{"Working days", fmt.Sprintf("%d", p.WorkingDays)},
		{"Status", p.Status},
	} {
		pdf.SetFont("Helvetica", "B", 10)
		pdf.CellFormat(45, 6, row[0], "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 10)
		pdf.CellFormat(0, 6, row[1], "", 1, "L", false, 0, "")
	}
	pdf.Ln(4)

	writeSection(pdf, "Earnings", []payslipLine{
		{"Basic salary", p.BasicSalary},
		{"Adjusted basic", p.AdjustedBasic},
		{fmt.Sprintf("Overtime (%s h)", p.OvertimeHours.StringFixed(2)), p.OvertimePay},
		{"Allowances", p.Allowances},
		{"Deductions", p.Deductions.Neg()},
		{"Gross pay", p.GrossPay},
	})
	writeSection(pdf, "Withholdings", []payslipLine{
		{fmt.Sprintf("Income tax (%s)", p.TaxMode), p.Tax},
		{"Social insurance", p.SocialInsurance},
		{"Health insurance", p.HealthInsurance},
	})

	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(120, 8, "Net pay", "T", 0, "L", false, 0, "")
	pdf.CellFormat(60, 8, p.NetPay.StringFixed(2), "T", 1, "R", false, 0, "")
	pdf.Ln(6)

	opts := gofpdf.ImageOptions{ImageType: "PNG", ReadDpi: false}
	pdf.RegisterImageOptionsReader(qrImageName, opts, bytes.NewReader(qr))
	pdf.ImageOptions(qrImageName, 150, pdf.GetY(), 40, 40, false, opts, 0, "")
	pdf.SetFont("Helvetica", "", 8)
	pdf.CellFormat(0, 5, "Payroll "+p.ID.String(), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 5, "Generated "+time.Now().UTC().Format(time.RFC3339), "", 1, "L", false, 0, "")

	if err := pdf.Error(); err != nil {
		return nil, fmt.Errorf("render payslip: %w", err)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("write payslip: %w", err)
	}
	return buf.Bytes(), nil
}

func writeSection(pdf *gofpdf.Fpdf, title string, lines []payslipLine) {
	pdf.SetFont("Helvetica", "B", 11)
	pdf.SetFillColor(230, 230, 230)
	pdf.CellFormat(180, 7, title, "", 1, "L", true, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	for _, line := range lines {
		pdf.CellFormat(120, 6, line.label, "", 0, "L", false, 0, "")
		pdf.CellFormat(60, 6, line.amount.StringFixed(2), "", 1, "R", false, 0, "")
	}
	pdf.Ln(3)
}

func payslipVerification(p Payroll) string {
	return fmt.Sprintf("PAYSLIP|%s|%04d-%02d|%s", p.ID, p.Year, p.Month, p.NetPay.StringFixed(2))
}

func periodLabel(month, year int) string {
	return fmt.Sprintf("%s %d", time.Month(month).String(), year)
}
