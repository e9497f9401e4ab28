package payroll

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

const exportSheet = "Payroll"

var exportHeaders = []string{
	"Employee Code", "Employee Name", "Period", "Status", "Working Days",
	"Basic Salary", "Overtime Hours", "Overtime Pay", "Allowances", "Deductions",
	"Gross Pay", "Tax", "Social Insurance", "Health Insurance", "Net Pay",
}

// buildPayrollWorkbook writes one row per payroll with a header row and a
// totals row for the money columns.
func buildPayrollWorkbook(payrolls []Payroll) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", exportSheet); err != nil {
		return nil, fmt.Errorf("rename sheet: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#DDDDDD"}, Pattern: 1},
	})
	if err != nil {
		return nil, fmt.Errorf("header style: %w", err)
	}
	moneyStyle, err := f.NewStyle(&excelize.Style{NumFmt: 4})
	if err != nil {
		return nil, fmt.Errorf("money style: %w", err)
	}

	for i, header := range exportHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(exportSheet, cell, header); err != nil {
			return nil, err
		}
	}
	lastCol, _ := excelize.ColumnNumberToName(len(exportHeaders))
	if err := f.SetCellStyle(exportSheet, "A1", lastCol+"1", headerStyle); err != nil {
		return nil, err
	}
	if err := f.SetColWidth(exportSheet, "A", lastCol, 16); err != nil {
		return nil, err
	}

	row := 2
	for _, p := range payrolls {
		code, name := p.EmployeeID.String(), ""
		if p.Employee != nil {
			code = p.Employee.EmployeeCode
			name = p.Employee.FullName
		}
		values := []any{
			code,
			name,
			fmt.Sprintf("%04d-%02d", p.Year, p.Month),
			p.Status,
			p.WorkingDays,
			p.BasicSalary.InexactFloat64(),
			p.OvertimeHours.InexactFloat64(),
			p.OvertimePay.InexactFloat64(),
			p.Allowances.InexactFloat64(),
			p.Deductions.InexactFloat64(),
			p.GrossPay.InexactFloat64(),
			p.Tax.InexactFloat64(),
			p.SocialInsurance.InexactFloat64(),
			p.HealthInsurance.InexactFloat64(),
			p.NetPay.InexactFloat64(),
		}
		cell, _ := excelize.CoordinatesToCellName(1, row)
		if err := f.SetSheetRow(exportSheet, cell, &values); err != nil {
			return nil, fmt.Errorf("write row %d: %w", row, err)
		}
		row++
	}

	if len(payrolls) > 0 {
		totalRow := row
		if err := f.SetCellValue(exportSheet, fmt.Sprintf("A%d", totalRow), "TOTAL"); err != nil {
			return nil, err
		}
		for col := 6; col <= len(exportHeaders); col++ {
			name, _ := excelize.ColumnNumberToName(col)
			formula := fmt.Sprintf("SUM(%s2:%s%d)", name, name, totalRow-1)
			if err := f.SetCellFormula(exportSheet, fmt.Sprintf("%s%d", name, totalRow), formula); err != nil {
				return nil, err
			}
		}
		if err := f.SetCellStyle(exportSheet, "F2", fmt.Sprintf("%s%d", lastCol, totalRow), moneyStyle); err != nil {
			return nil, err
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return buf.Bytes(), nil
}
