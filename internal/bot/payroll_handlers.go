package bot

import (
	"context"
	"fmt"
	"html"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"oficina/internal/models"
	"oficina/internal/payroll"
)

const (
	keyName        = "name"
	keySurname     = "surname"
	keyRole        = "role"
	keyGender      = "gender"
	keyDailyWage   = "daily_wage"
	keyDaysWorked  = "days_worked"
	keyOtherIncome = "other_income"
	keyHealth      = "health"
)

type amountStep struct {
	key    string
	next   string
	prompt string
}

var amountSteps = map[string]amountStep{
	models.StateEmployeeDailyWage:   {keyDailyWage, models.StateEmployeeDaysWorked, "Días trabajados:"},
	models.StateEmployeeOtherIncome: {keyOtherIncome, models.StateEmployeeHealth, "Pagos de salud:"},
	models.StateEmployeeHealth:      {keyHealth, models.StateEmployeePension, "Aportes a pensiones:"},
}

func (b *Bot) startAddEmployee(ctx context.Context, chatID, userID int64) {
	b.setUserState(ctx, userID, models.StateEmployeeName, nil)
	b.sendMessage(chatID, "👤 Agregar empleado\n\nNombre:")
}

func (b *Bot) handleEmployeeName(ctx context.Context, chatID, userID int64, state *models.UserState, input string) {
	if input == "" {
		b.sendError(chatID, payroll.ErrMissingField)
		return
	}
	if state.CurrentStep == models.StateEmployeeName {
		b.setUserState(ctx, userID, models.StateEmployeeSurname, state.With(keyName, input))
		b.sendMessage(chatID, "Apellidos:")
		return
	}
	b.setUserState(ctx, userID, models.StateEmployeeRole, state.With(keySurname, input))
	b.sendInline(chatID, "Cargo:", roleKeyboard())
}

func (b *Bot) handleEmployeeRole(ctx context.Context, chatID, userID int64, state *models.UserState, input string) {
	role, err := payroll.ParseRole(input)
	if err != nil {
		b.sendError(chatID, err)
		return
	}
	b.setUserState(ctx, userID, models.StateEmployeeGender, state.With(keyRole, role.Code()))
	b.sendInline(chatID, fmt.Sprintf("Cargo: %s.\nGénero:", role.Label()), genderKeyboard())
}

func (b *Bot) handleEmployeeGender(ctx context.Context, chatID, userID int64, state *models.UserState, input string) {
	gender, err := payroll.ParseGender(input)
	if err != nil {
		b.sendError(chatID, err)
		return
	}
	b.setUserState(ctx, userID, models.StateEmployeeDailyWage, state.With(keyGender, gender.Code()))
	b.sendMessage(chatID, fmt.Sprintf("Género: %s.\nSalario por día:", gender.Label()))
}

func (b *Bot) handleEmployeeAmount(ctx context.Context, chatID, userID int64, state *models.UserState, input string) {
	step := amountSteps[state.CurrentStep]
	if _, err := payroll.ParseAmount(step.key, input); err != nil {
		b.sendError(chatID, err)
		return
	}
	b.setUserState(ctx, userID, step.next, state.With(step.key, input))
	if step.next == models.StateEmployeeDaysWorked {
		b.sendInline(chatID, step.prompt, daysKeyboard())
		return
	}
	b.sendMessage(chatID, step.prompt)
}

// handleEmployeeDays takes an empty input as the default month.
func (b *Bot) handleEmployeeDays(ctx context.Context, chatID, userID int64, state *models.UserState, input string) {
	if _, err := payroll.ParseDays(input); err != nil {
		b.sendError(chatID, err)
		return
	}
	b.setUserState(ctx, userID, models.StateEmployeeOtherIncome, state.With(keyDaysWorked, input))
	b.sendMessage(chatID, "Otros ingresos:")
}

func (b *Bot) handleEmployeePension(ctx context.Context, chatID, userID int64, state *models.UserState, input string) {
	if _, err := payroll.ParseAmount("pension_deduction", input); err != nil {
		b.sendError(chatID, err)
		return
	}

	form := payroll.EmployeeForm{
		Name:             state.GetString(keyName),
		Surname:          state.GetString(keySurname),
		Role:             state.GetString(keyRole),
		Gender:           state.GetString(keyGender),
		DailyWage:        state.GetString(keyDailyWage),
		DaysWorked:       state.GetString(keyDaysWorked),
		OtherIncome:      state.GetString(keyOtherIncome),
		HealthDeduction:  state.GetString(keyHealth),
		PensionDeduction: input,
	}

	employee, err := b.payrollService.AddEmployee(ctx, form)
	if err != nil {
		b.abortFlow(ctx, chatID, userID, err)
		return
	}

	b.finishFlow(ctx, chatID, userID, "employee", fmt.Sprintf(
		"✅ Empleado agregado: %s %s (%s). Sueldo: $%s",
		employee.Name, employee.Surname, employee.Role.Label(), employee.Pay().StringFixed(2)))
}

func (b *Bot) showPayroll(ctx context.Context, chatID int64) {
	table := b.payrollService.Table(ctx)
	if len(table.Rows) == 0 {
		b.handleMainMenu(chatID, "No hay empleados registrados.")
		return
	}
	b.sendHTML(chatID, renderPayrollTable(table))
}

// renderPayrollTable lays the table out in a <pre> block so columns line up.
func renderPayrollTable(table payroll.Table) string {
	headers := [3]string{"NOMBRE", "APELLIDOS", "SUELDO"}
	widths := [3]int{}
	for i, h := range headers {
		widths[i] = utf8.RuneCountInString(h)
	}
	for _, r := range table.Rows {
		for i, v := range [3]string{r.Name, r.Surname, r.Pay} {
			if n := utf8.RuneCountInString(v); n > widths[i] {
				widths[i] = n
			}
		}
	}

	var sb strings.Builder
	writeRow := func(cells [3]string) {
		for i, c := range cells {
			pad := widths[i] - utf8.RuneCountInString(c)
			if i == 2 {
				sb.WriteString(strings.Repeat(" ", pad) + html.EscapeString(c))
				continue
			}
			sb.WriteString(html.EscapeString(c) + strings.Repeat(" ", pad) + "  ")
		}
		sb.WriteString("\n")
	}

	sb.WriteString("<pre>")
	writeRow(headers)
	for _, r := range table.Rows {
		writeRow([3]string{r.Name, r.Surname, r.Pay})
	}
	sb.WriteString("</pre>\n")
	sb.WriteString(fmt.Sprintf("<b>Total nómina: $%s</b>", html.EscapeString(table.Total)))
	return sb.String()
}

func (b *Bot) savePayroll(ctx context.Context, chatID int64) {
	files, err := b.payrollService.Export(ctx, b.config.Exports.Path, true)
	if err != nil {
		b.handleMainMenu(chatID, fmt.Sprintf("❌ No se pudo guardar la nómina: %v", err))
		return
	}

	for _, path := range files {
		if _, err := b.tgService.SendDocument(chatID, path); err != nil {
			b.logger.Error().Err(err).Str("path", path).Msg("Failed to send export")
		}
	}

	names := make([]string, 0, len(files))
	for _, path := range files {
		names = append(names, filepath.Base(path))
	}
	b.handleMainMenu(chatID, fmt.Sprintf("💾 Nómina guardada: %s", strings.Join(names, ", ")))
}
