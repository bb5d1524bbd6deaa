package bot

import (
	"context"
	"strings"

	"oficina/internal/models"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/rs/zerolog"
)

func (b *Bot) handleMessage(ctx context.Context, message *tgbotapi.Message) {
	if message == nil || message.From == nil {
		return
	}
	if b.metrics != nil {
		b.metrics.MessagesProcessed.Inc()
	}

	userID := message.From.ID
	chatID := message.Chat.ID
	text := strings.TrimSpace(message.Text)

	zerolog.Ctx(ctx).Debug().
		Int64("user_id", userID).
		Str("username", message.From.UserName).
		Str("text", text).
		Msg("Handling message")

	// Menu buttons abandon whatever form was open, like closing its window.
	switch text {
	case cmdStart:
		b.clearUserState(ctx, userID)
		b.handleMainMenu(chatID, "¡Bienvenido! Elija una opción:")
		return
	case cmdCancel, btnCancel:
		b.clearUserState(ctx, userID)
		b.handleMainMenu(chatID, "Formulario cancelado.")
		return
	case btnRooms:
		b.clearUserState(ctx, userID)
		b.showRooms(ctx, chatID)
		return
	case btnCheckIn:
		b.startCheckIn(ctx, chatID, userID)
		return
	case btnCheckout:
		b.startCheckout(ctx, chatID, userID)
		return
	case btnAddEmployee:
		b.startAddEmployee(ctx, chatID, userID)
		return
	case btnPayroll:
		b.clearUserState(ctx, userID)
		b.showPayroll(ctx, chatID)
		return
	case btnSavePayroll:
		b.clearUserState(ctx, userID)
		b.savePayroll(ctx, chatID)
		return
	case btnNewContact:
		b.startAddContact(ctx, chatID, userID)
		return
	case btnContacts:
		b.clearUserState(ctx, userID)
		b.showContacts(ctx, chatID)
		return
	}

	state := b.getUserState(ctx, userID)
	if state.Idle() || !b.handleStep(ctx, chatID, userID, state, text) {
		b.handleMainMenu(chatID, "Elija una opción del menú.")
	}
}

// handleStep feeds input into the open form. It reports false when no form
// is waiting for text.
func (b *Bot) handleStep(ctx context.Context, chatID, userID int64, state *models.UserState, input string) bool {
	switch state.CurrentStep {
	case models.StateCheckInRoom:
		b.handleCheckInRoom(ctx, chatID, userID, state, input)
	case models.StateCheckInDate:
		b.handleCheckInDate(ctx, chatID, userID, state, input)
	case models.StateCheckInFirstName, models.StateCheckInLastName:
		b.handleCheckInName(ctx, chatID, userID, state, input)
	case models.StateCheckInIDNumber:
		b.handleCheckInIDNumber(ctx, chatID, userID, state, input)

	case models.StateCheckoutRoom:
		b.handleCheckoutRoom(ctx, chatID, userID, state, input)
	case models.StateCheckoutDate:
		b.handleCheckoutDate(ctx, chatID, userID, state, input)
	case models.StateCheckoutConfirm:
		b.sendMessage(chatID, "Use los botones para registrar la salida o cancelar.")

	case models.StateEmployeeName, models.StateEmployeeSurname:
		b.handleEmployeeName(ctx, chatID, userID, state, input)
	case models.StateEmployeeRole:
		b.handleEmployeeRole(ctx, chatID, userID, state, input)
	case models.StateEmployeeGender:
		b.handleEmployeeGender(ctx, chatID, userID, state, input)
	case models.StateEmployeeDailyWage, models.StateEmployeeOtherIncome, models.StateEmployeeHealth:
		b.handleEmployeeAmount(ctx, chatID, userID, state, input)
	case models.StateEmployeeDaysWorked:
		b.handleEmployeeDays(ctx, chatID, userID, state, input)
	case models.StateEmployeePension:
		b.handleEmployeePension(ctx, chatID, userID, state, input)

	case models.StateContactNames, models.StateContactSurnames, models.StateContactAddress, models.StateContactPhone:
		b.handleContactField(ctx, chatID, userID, state, input)
	case models.StateContactBirthDate:
		b.handleContactBirthDate(ctx, chatID, userID, state, input)
	case models.StateContactEmail:
		b.handleContactEmail(ctx, chatID, userID, state, input)

	default:
		return false
	}
	return true
}

func (b *Bot) handleMainMenu(chatID int64, text string) {
	b.sendWithKeyboard(chatID, text, mainKeyboard())
}

// finishFlow closes a completed form and shows the menu again.
func (b *Bot) finishFlow(ctx context.Context, chatID, userID int64, flow, text string) {
	b.clearUserState(ctx, userID)
	b.metrics.flowCompleted(flow)
	b.handleMainMenu(chatID, text)
}

// abortFlow closes a form that failed on submit.
func (b *Bot) abortFlow(ctx context.Context, chatID, userID int64, err error) {
	b.clearUserState(ctx, userID)
	b.sendError(chatID, err)
	b.handleMainMenu(chatID, "Elija una opción del menú.")
}
