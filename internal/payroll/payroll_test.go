package payroll

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func sampleEmployees() []Employee {
	return []Employee{
		{
			Name: "Ana", Surname: "Pérez", Role: RoleDirectivo, Gender: GenderFemenino,
			DailyWage: dec("100"), DaysWorked: 30, OtherIncome: dec("50"),
			HealthDeduction: dec("20"), PensionDeduction: dec("30"),
		},
		{
			Name: "Luis", Surname: "Gómez", Role: RoleOperativo, Gender: GenderMasculino,
			DailyWage: dec("80.5"), DaysWorked: 10, OtherIncome: dec("0"),
			HealthDeduction: dec("5.25"), PensionDeduction: dec("4.75"),
		},
	}
}

func TestComputePay(t *testing.T) {
	emps := sampleEmployees()
	assert.True(t, dec("3000").Equal(ComputePay(emps[0])), ComputePay(emps[0]).String())
	assert.True(t, dec("795").Equal(ComputePay(emps[1])), ComputePay(emps[1]).String())

	t.Run("Deterministic", func(t *testing.T) {
		assert.True(t, ComputePay(emps[0]).Equal(ComputePay(emps[0])))
	})

	t.Run("NegativeAllowed", func(t *testing.T) {
		e := Employee{DailyWage: dec("1"), DaysWorked: 1, HealthDeduction: dec("10")}
		assert.True(t, dec("-9").Equal(ComputePay(e)))
	})
}

func TestList_TotalDoesNotAccumulate(t *testing.T) {
	l := NewList()
	assert.True(t, l.Total().IsZero())

	for _, e := range sampleEmployees() {
		l.Add(e)
	}
	assert.Equal(t, 2, l.Len())

	first := l.Total()
	second := l.Total()
	assert.True(t, dec("3795").Equal(first))
	assert.True(t, first.Equal(second))

	_ = l.Table()
	_ = l.Text()
	assert.True(t, dec("3795").Equal(l.Total()))
}

func TestList_Table(t *testing.T) {
	l := NewList()
	for _, e := range sampleEmployees() {
		l.Add(e)
	}

	table := l.Table()
	require.Len(t, table.Rows, 2)
	assert.Equal(t, Row{Name: "Ana", Surname: "Pérez", Pay: "3000.00"}, table.Rows[0])
	assert.Equal(t, Row{Name: "Luis", Surname: "Gómez", Pay: "795.00"}, table.Rows[1])
	assert.Equal(t, "3795.00", table.Total)
}

func TestList_AllReturnsCopy(t *testing.T) {
	l := NewList()
	l.Add(sampleEmployees()[0])
	all := l.All()
	all[0].Name = "changed"
	assert.Equal(t, "Ana", l.All()[0].Name)
}

func TestText(t *testing.T) {
	text := Text(sampleEmployees())

	expectedFirst := "Nombre = Ana\n" +
		"Apellidos = Pérez\n" +
		"Cargo = Directivo\n" +
		"Género = Femenino\n" +
		"Salario = $100.00\n" +
		"Días trabajados = 30\n" +
		"Otros ingresos = $50.00\n" +
		"Pagos salud = $20.00\n" +
		"Aportes pensiones = $30.00\n" +
		"---------\n"
	assert.True(t, strings.HasPrefix(text, expectedFirst), text)
	assert.Contains(t, text, "Cargo = Operativo\n")
	assert.Contains(t, text, "Salario = $80.50\n")
	assert.True(t, strings.HasSuffix(text, "Total nómina = $3795.00"))
	assert.Equal(t, 2, strings.Count(text, "---------\n"))

	assert.Equal(t, "Total nómina = $0.00", Text(nil))
}

func TestExport(t *testing.T) {
	dir := t.TempDir()

	path, err := Export(dir, sampleEmployees())
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "Nómina.txt"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, Text(sampleEmployees()), string(data))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "no temp files left behind")
}

func TestExport_Overwrites(t *testing.T) {
	dir := t.TempDir()
	_, err := Export(dir, sampleEmployees())
	require.NoError(t, err)

	path, err := Export(dir, nil)
	require.NoError(t, err)
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "Total nómina = $0.00", string(data))
}

func TestExport_BadDirectory(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "file")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o644))

	_, err := Export(filepath.Join(blocker, "sub"), sampleEmployees())
	assert.Error(t, err)
}

func TestExportXLSX(t *testing.T) {
	dir := t.TempDir()

	path, err := ExportXLSX(dir, sampleEmployees())
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, XLSXFileName), path)

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	name, err := f.GetCellValue(sheetName, "A2")
	require.NoError(t, err)
	assert.Equal(t, "Ana", name)

	role, err := f.GetCellValue(sheetName, "C3")
	require.NoError(t, err)
	assert.Equal(t, "Operativo", role)

	label, err := f.GetCellValue(sheetName, "I4")
	require.NoError(t, err)
	assert.Equal(t, "Total nómina", label)

	total, err := f.GetCellValue(sheetName, "J4")
	require.NoError(t, err)
	assert.Equal(t, "3795", total)
}
