package payroll

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// DefaultDaysWorked is used when the days field is left blank.
const DefaultDaysWorked = 30

// EmployeeForm is the raw add-employee input.
type EmployeeForm struct {
	Name             string `json:"name" yaml:"name"`
	Surname          string `json:"surname" yaml:"surname"`
	Role             string `json:"role" yaml:"role"`
	Gender           string `json:"gender" yaml:"gender"`
	DailyWage        string `json:"daily_wage" yaml:"daily_wage"`
	DaysWorked       string `json:"days_worked" yaml:"days_worked"`
	OtherIncome      string `json:"other_income" yaml:"other_income"`
	HealthDeduction  string `json:"health_deduction" yaml:"health_deduction"`
	PensionDeduction string `json:"pension_deduction" yaml:"pension_deduction"`
}

// Parse validates the form. Role and gender fall back to the first option when
// left empty; every amount must parse as a number.
func (f EmployeeForm) Parse() (Employee, error) {
	name := strings.TrimSpace(f.Name)
	surname := strings.TrimSpace(f.Surname)
	if name == "" || surname == "" {
		return Employee{}, ErrMissingField
	}

	role := RoleDirectivo
	if strings.TrimSpace(f.Role) != "" {
		r, err := ParseRole(f.Role)
		if err != nil {
			return Employee{}, err
		}
		role = r
	}

	gender := GenderMasculino
	if strings.TrimSpace(f.Gender) != "" {
		g, err := ParseGender(f.Gender)
		if err != nil {
			return Employee{}, err
		}
		gender = g
	}

	wage, err := ParseAmount("daily_wage", f.DailyWage)
	if err != nil {
		return Employee{}, err
	}

	days, err := ParseDays(f.DaysWorked)
	if err != nil {
		return Employee{}, err
	}

	other, err := ParseAmount("other_income", f.OtherIncome)
	if err != nil {
		return Employee{}, err
	}
	health, err := ParseAmount("health_deduction", f.HealthDeduction)
	if err != nil {
		return Employee{}, err
	}
	pension, err := ParseAmount("pension_deduction", f.PensionDeduction)
	if err != nil {
		return Employee{}, err
	}

	return Employee{
		Name:             name,
		Surname:          surname,
		Role:             role,
		Gender:           gender,
		DailyWage:        wage,
		DaysWorked:       days,
		OtherIncome:      other,
		HealthDeduction:  health,
		PensionDeduction: pension,
	}, nil
}

// ParseAmount accepts "1500", "1500.50" and "1500,50".
func ParseAmount(field, raw string) (decimal.Decimal, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return decimal.Zero, fmt.Errorf("%s: %w", field, ErrMissingField)
	}
	if !strings.Contains(s, ".") {
		s = strings.Replace(s, ",", ".", 1)
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%s %q: %w", field, raw, ErrInvalidNumber)
	}
	return d, nil
}

// ParseDays parses the days-worked field; blank means DefaultDaysWorked.
func ParseDays(raw string) (int, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return DefaultDaysWorked, nil
	}
	days, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("days_worked %q: %w", s, ErrInvalidNumber)
	}
	return days, nil
}
