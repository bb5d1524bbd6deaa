package payroll

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const ExportFileName = "Nómina.txt"

// Text renders the export body: one block per employee and the total line.
func Text(employees []Employee) string {
	var b strings.Builder
	for _, e := range employees {
		fmt.Fprintf(&b, "Nombre = %s\n", e.Name)
		fmt.Fprintf(&b, "Apellidos = %s\n", e.Surname)
		fmt.Fprintf(&b, "Cargo = %s\n", e.Role.Label())
		fmt.Fprintf(&b, "Género = %s\n", e.Gender.Label())
		fmt.Fprintf(&b, "Salario = $%s\n", e.DailyWage.StringFixed(2))
		fmt.Fprintf(&b, "Días trabajados = %d\n", e.DaysWorked)
		fmt.Fprintf(&b, "Otros ingresos = $%s\n", e.OtherIncome.StringFixed(2))
		fmt.Fprintf(&b, "Pagos salud = $%s\n", e.HealthDeduction.StringFixed(2))
		fmt.Fprintf(&b, "Aportes pensiones = $%s\n", e.PensionDeduction.StringFixed(2))
		b.WriteString("---------\n")
	}
	fmt.Fprintf(&b, "Total nómina = $%s", Total(employees).StringFixed(2))
	return b.String()
}

func (l *List) Text() string {
	return Text(l.All())
}

// Export writes the payroll text to dir/Nómina.txt and returns the path. The
// content goes to a temporary file first so a failed write leaves nothing
// behind under the final name.
func Export(dir string, employees []Employee) (string, error) {
	return writeAtomic(dir, ExportFileName, []byte(Text(employees)))
}

func writeAtomic(dir, name string, data []byte) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create export directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".nomina-*.tmp")
	if err != nil {
		return "", fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return "", fmt.Errorf("write payroll: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return "", fmt.Errorf("close payroll: %w", err)
	}

	path := filepath.Join(dir, name)
	if err := os.Rename(tmpName, path); err != nil {
		return "", fmt.Errorf("save payroll: %w", err)
	}
	return path, nil
}
