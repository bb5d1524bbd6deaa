package service

import (
	"context"

	"oficina/internal/domain"
	"oficina/internal/events"
	"oficina/internal/metrics"
	"oficina/internal/payroll"

	"github.com/rs/zerolog"
)

const toolPayroll = "payroll"

type PayrollService struct {
	list     *payroll.List
	eventBus domain.EventPublisher
	logger   *zerolog.Logger
}

func NewPayrollService(list *payroll.List, eventBus domain.EventPublisher, logger *zerolog.Logger) *PayrollService {
	return &PayrollService{
		list:     list,
		eventBus: eventBus,
		logger:   logger,
	}
}

func (s *PayrollService) AddEmployee(ctx context.Context, form payroll.EmployeeForm) (payroll.Employee, error) {
	l := requestLogger(ctx, s.logger)

	e, err := form.Parse()
	if err != nil {
		metrics.IncOperation(toolPayroll, "add_employee", metrics.ResultRejected)
		l.Warn().Err(err).Msg("employee rejected")
		return payroll.Employee{}, err
	}

	s.list.Add(e)
	count := s.list.Len()
	total, _ := s.list.Total().Float64()
	metrics.IncOperation(toolPayroll, "add_employee", metrics.ResultOK)
	metrics.SetPayroll(count, total)

	l.Info().Str("name", e.Name).Str("surname", e.Surname).Str("role", e.Role.Code()).Int("count", count).Msg("employee added")

	if s.eventBus != nil {
		err := s.eventBus.PublishJSON(events.EventEmployeeAdded, events.EmployeeEventPayload{
			Name:    e.Name,
			Surname: e.Surname,
			Role:    e.Role.Code(),
			Pay:     e.Pay().StringFixed(2),
			Count:   count,
		})
		if err != nil {
			l.Error().Err(err).Str("event", events.EventEmployeeAdded).Msg("publish event")
		}
	}
	return e, nil
}

func (s *PayrollService) Employees(ctx context.Context) []payroll.Employee {
	return s.list.All()
}

func (s *PayrollService) Table(ctx context.Context) payroll.Table {
	return s.list.Table()
}

// Export writes Nómina.txt, and Nómina.xlsx when asked, into dir. Both files
// come from the same snapshot of the list.
func (s *PayrollService) Export(ctx context.Context, dir string, withXLSX bool) ([]string, error) {
	l := requestLogger(ctx, s.logger)
	employees := s.list.All()

	path, err := payroll.Export(dir, employees)
	if err != nil {
		metrics.IncOperation(toolPayroll, "export", metrics.ResultError)
		l.Error().Err(err).Str("dir", dir).Msg("payroll export failed")
		return nil, err
	}
	files := []string{path}

	if withXLSX {
		xlsxPath, err := payroll.ExportXLSX(dir, employees)
		if err != nil {
			metrics.IncOperation(toolPayroll, "export", metrics.ResultError)
			l.Error().Err(err).Str("dir", dir).Msg("payroll spreadsheet export failed")
			return files, err
		}
		files = append(files, xlsxPath)
	}

	metrics.IncOperation(toolPayroll, "export", metrics.ResultOK)
	total := payroll.Total(employees).StringFixed(2)
	l.Info().Strs("files", files).Int("employees", len(employees)).Str("total", total).Msg("payroll exported")

	if s.eventBus != nil {
		err := s.eventBus.PublishJSON(events.EventPayrollExported, events.ExportEventPayload{
			Files:     files,
			Employees: len(employees),
			Total:     total,
		})
		if err != nil {
			l.Error().Err(err).Str("event", events.EventPayrollExported).Msg("publish event")
		}
	}
	return files, nil
}
