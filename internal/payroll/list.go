package payroll

import (
	"sync"

	"github.com/shopspring/decimal"
)

// Row is one line of the payroll table.
type Row struct {
	Name    string `json:"name"`
	Surname string `json:"surname"`
	Pay     string `json:"pay"`
}

// Table is the computed payroll view.
type Table struct {
	Rows  []Row  `json:"rows"`
	Total string `json:"total"`
}

// List is the ordered employee list.
type List struct {
	mu        sync.RWMutex
	employees []Employee
}

func NewList() *List {
	return &List{}
}

func (l *List) Add(e Employee) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.employees = append(l.employees, e)
}

func (l *List) All() []Employee {
	l.mu.RLock()
	defer l.mu.RUnlock()
	out := make([]Employee, len(l.employees))
	copy(out, l.employees)
	return out
}

func (l *List) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.employees)
}

// Total sums the pay of every employee. It is recomputed on each call.
func (l *List) Total() decimal.Decimal {
	return Total(l.All())
}

func Total(employees []Employee) decimal.Decimal {
	total := decimal.Zero
	for _, e := range employees {
		total = total.Add(ComputePay(e))
	}
	return total
}

// Table builds the NOMBRE / APELLIDOS / SUELDO view with its total.
func (l *List) Table() Table {
	employees := l.All()
	rows := make([]Row, 0, len(employees))
	for _, e := range employees {
		rows = append(rows, Row{Name: e.Name, Surname: e.Surname, Pay: ComputePay(e).StringFixed(2)})
	}
	return Table{Rows: rows, Total: Total(employees).StringFixed(2)}
}
