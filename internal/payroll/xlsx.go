package payroll

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

const (
	XLSXFileName = "Nómina.xlsx"
	sheetName    = "Nómina"
)

var xlsxHeaders = []string{
	"Nombre", "Apellidos", "Cargo", "Género", "Salario por día", "Días trabajados",
	"Otros ingresos", "Pagos salud", "Aportes pensiones", "Sueldo",
}

// ExportXLSX writes the payroll as a spreadsheet next to the text export.
func ExportXLSX(dir string, employees []Employee) (string, error) {
	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(sheetName)
	if err != nil {
		return "", fmt.Errorf("error creating sheet: %w", err)
	}
	f.SetActiveSheet(index)
	_ = f.DeleteSheet("Sheet1")

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#DDEBF7"}, Pattern: 1},
		Font:      &excelize.Font{Bold: true},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	for i, header := range xlsxHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheetName, cell, header)
		_ = f.SetCellStyle(sheetName, cell, cell, headerStyle)
	}

	for i, e := range employees {
		row := i + 2
		values := []interface{}{
			e.Name,
			e.Surname,
			e.Role.Label(),
			e.Gender.Label(),
			e.DailyWage.InexactFloat64(),
			e.DaysWorked,
			e.OtherIncome.InexactFloat64(),
			e.HealthDeduction.InexactFloat64(),
			e.PensionDeduction.InexactFloat64(),
			ComputePay(e).InexactFloat64(),
		}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row)
			_ = f.SetCellValue(sheetName, cell, v)
		}
	}

	totalRow := len(employees) + 2
	labelCell, _ := excelize.CoordinatesToCellName(len(xlsxHeaders)-1, totalRow)
	totalCell, _ := excelize.CoordinatesToCellName(len(xlsxHeaders), totalRow)
	_ = f.SetCellValue(sheetName, labelCell, "Total nómina")
	_ = f.SetCellValue(sheetName, totalCell, Total(employees).InexactFloat64())

	totalStyle, _ := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	_ = f.SetCellStyle(sheetName, labelCell, totalCell, totalStyle)

	_ = f.SetColWidth(sheetName, "A", "B", 20)
	_ = f.SetColWidth(sheetName, "C", "J", 16)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return "", fmt.Errorf("error rendering workbook: %w", err)
	}
	return writeAtomic(dir, XLSXFileName, buf.Bytes())
}
