package bot

import (
	"context"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/rs/zerolog"
)

// updateSender returns who sent the update and where to answer. Both are zero
// for update kinds the bot ignores.
func updateSender(update tgbotapi.Update) (userID, chatID int64) {
	switch {
	case update.Message != nil && update.Message.From != nil:
		return update.Message.From.ID, update.Message.Chat.ID
	case update.CallbackQuery != nil:
		userID = update.CallbackQuery.From.ID
		if update.CallbackQuery.Message != nil {
			chatID = update.CallbackQuery.Message.Chat.ID
		}
		return userID, chatID
	}
	return 0, 0
}

// withRecovery runs handler and turns a panic into a logged error and an
// apology in the chat. The open form is left as it was.
func (b *Bot) withRecovery(ctx context.Context, chatID int64, handler func()) {
	defer func() {
		if r := recover(); r != nil {
			if b.metrics != nil {
				b.metrics.ErrorsTotal.Inc()
			}
			zerolog.Ctx(ctx).Error().Interface("panic", r).Int64("chat_id", chatID).Msg("Recovered from panic in update handler")
			if chatID != 0 {
				b.sendMessage(chatID, "❌ Ocurrió un error inesperado. Intente de nuevo.")
			}
		}
	}()
	handler()
}

// allowUpdate applies the per-user message limit. A failing limiter lets the
// update through.
func (b *Bot) allowUpdate(ctx context.Context, userID int64) bool {
	window := time.Duration(b.config.Bot.RateLimitWindow) * time.Second
	allowed, err := b.stateService.CheckRateLimit(ctx, userID, b.config.Bot.RateLimitMessages, window)
	if err != nil {
		zerolog.Ctx(ctx).Error().Err(err).Int64("user_id", userID).Msg("Rate limit check failed")
		return true
	}
	if !allowed {
		zerolog.Ctx(ctx).Warn().Int64("user_id", userID).Msg("Rate limit exceeded")
		if b.metrics != nil {
			b.metrics.RateLimited.Inc()
		}
	}
	return allowed
}
