package payroll

import "github.com/shopspring/decimal"

// Employee is immutable after creation; pay is derived from its fields only.
type Employee struct {
	Name             string          `json:"name"`
	Surname          string          `json:"surname"`
	Role             Role            `json:"role"`
	Gender           Gender          `json:"gender"`
	DailyWage        decimal.Decimal `json:"daily_wage"`
	DaysWorked       int             `json:"days_worked"`
	OtherIncome      decimal.Decimal `json:"other_income"`
	HealthDeduction  decimal.Decimal `json:"health_deduction"`
	PensionDeduction decimal.Decimal `json:"pension_deduction"`
}

// ComputePay returns wage × days + other income − health − pension.
// Negative results are allowed.
func ComputePay(e Employee) decimal.Decimal {
	return e.DailyWage.
		Mul(decimal.NewFromInt(int64(e.DaysWorked))).
		Add(e.OtherIncome).
		Sub(e.HealthDeduction).
		Sub(e.PensionDeduction)
}

func (e Employee) Pay() decimal.Decimal {
	return ComputePay(e)
}
