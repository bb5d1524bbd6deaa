package bot

import (
	"context"
	"strings"

	"oficina/internal/calendar"
	"oficina/internal/models"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/rs/zerolog"
)

// dateSteps are the steps that accept a day picked on the calendar.
var dateSteps = map[string]bool{
	models.StateCheckInDate:      true,
	models.StateCheckoutDate:     true,
	models.StateContactBirthDate: true,
}

func (b *Bot) handleCallbackQuery(ctx context.Context, callback *tgbotapi.CallbackQuery) {
	if b.metrics != nil {
		b.metrics.CallbacksProcessed.Inc()
	}

	userID := callback.From.ID
	data := callback.Data

	zerolog.Ctx(ctx).Debug().
		Int64("user_id", userID).
		Str("data", data).
		Msg("Handling callback query")

	if err := b.tgService.AnswerCallback(callback.ID, ""); err != nil {
		zerolog.Ctx(ctx).Warn().Err(err).Msg("Failed to answer callback")
	}

	if callback.Message == nil {
		return
	}
	chatID := callback.Message.Chat.ID

	kind, value, _ := strings.Cut(data, callbackSep)
	state := b.getUserState(ctx, userID)

	switch kind {
	case cbNoop:

	case cbCalendarNav:
		month, err := calendar.ParseKey(value)
		if err != nil {
			return
		}
		keyboard := GenerateCalendarKeyboard(month)
		if _, err := b.tgService.EditMessage(chatID, callback.Message.MessageID, callback.Message.Text, &keyboard); err != nil {
			zerolog.Ctx(ctx).Warn().Err(err).Msg("Failed to flip calendar")
		}

	case cbCalendarDay:
		if !dateSteps[state.CurrentStep] {
			b.sendMessage(chatID, "Este calendario ya no está activo.")
			return
		}
		b.handleStep(ctx, chatID, userID, state, value)

	case cbRoom:
		if state.CurrentStep != models.StateCheckInRoom && state.CurrentStep != models.StateCheckoutRoom {
			b.sendMessage(chatID, "Esta lista ya no está activa.")
			return
		}
		b.handleStep(ctx, chatID, userID, state, value)

	case cbRole:
		if state.CurrentStep == models.StateEmployeeRole {
			b.handleEmployeeRole(ctx, chatID, userID, state, value)
		}

	case cbGender:
		if state.CurrentStep == models.StateEmployeeGender {
			b.handleEmployeeGender(ctx, chatID, userID, state, value)
		}

	case cbDaysDefault:
		if state.CurrentStep == models.StateEmployeeDaysWorked {
			b.handleEmployeeDays(ctx, chatID, userID, state, "")
		}

	case cbCheckoutOK:
		b.commitCheckout(ctx, chatID, userID)

	case cbCheckoutAbort:
		if state.CurrentStep == models.StateCheckoutConfirm {
			b.cancelCheckout(ctx, chatID, userID)
		}
	}
}
