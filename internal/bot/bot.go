package bot

import (
	"context"
	"os"
	"time"

	"oficina/internal/config"
	"oficina/internal/domain"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const updateTimeout = 30 * time.Second

type Bot struct {
	tgService      domain.TelegramService
	config         *config.Config
	stateService   domain.StateManager
	hotelService   domain.HotelService
	payrollService domain.PayrollService
	contactService domain.ContactService
	metrics        *Metrics
	logger         *zerolog.Logger
	now            func() time.Time
}

func NewBot(
	tgService domain.TelegramService,
	config *config.Config,
	stateService domain.StateManager,
	hotelService domain.HotelService,
	payrollService domain.PayrollService,
	contactService domain.ContactService,
	metrics *Metrics,
	logger *zerolog.Logger,
) *Bot {
	if logger == nil {
		l := zerolog.New(os.Stdout).With().Timestamp().Logger()
		logger = &l
	}

	return &Bot{
		tgService:      tgService,
		config:         config,
		stateService:   stateService,
		hotelService:   hotelService,
		payrollService: payrollService,
		contactService: contactService,
		metrics:        metrics,
		logger:         logger,
		now:            time.Now,
	}
}

func (b *Bot) Start(ctx context.Context) {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	updates := b.tgService.GetUpdatesChan(u)

	b.logger.Info().Str("username", b.tgService.GetSelf().UserName).Msg("Authorized on account")

	for {
		select {
		case <-ctx.Done():
			b.logger.Info().Msg("Bot stopping...")
			b.tgService.StopReceivingUpdates()
			return
		case update, ok := <-updates:
			if !ok {
				return
			}
			b.processUpdate(ctx, update)
		}
	}
}

func (b *Bot) processUpdate(ctx context.Context, update tgbotapi.Update) {
	start := time.Now()
	defer func() {
		if b.metrics != nil {
			b.metrics.UpdateProcessingTime.Observe(time.Since(start).Seconds())
		}
	}()

	updateCtx, cancel := context.WithTimeout(ctx, updateTimeout)
	defer cancel()

	l := b.logger.With().
		Str("request_id", uuid.New().String()).
		Int("update_id", update.UpdateID).
		Logger()
	updateCtx = l.WithContext(updateCtx)

	userID, chatID := updateSender(update)
	if userID == 0 {
		return
	}

	b.withRecovery(updateCtx, chatID, func() {
		if !b.allowUpdate(updateCtx, userID) {
			if update.Message != nil {
				b.sendMessage(chatID, "⚠️ Está enviando mensajes demasiado rápido. Espere un momento.")
			}
			return
		}

		if update.CallbackQuery != nil {
			b.handleCallbackQuery(updateCtx, update.CallbackQuery)
			return
		}

		b.handleMessage(updateCtx, update.Message)
	})
}
