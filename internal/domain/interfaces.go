package domain

import (
	"context"
	"time"

	"oficina/internal/contacts"
	"oficina/internal/hotel"
	"oficina/internal/models"
	"oficina/internal/payroll"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

type StateRepository interface {
	GetState(ctx context.Context, userID int64) (*models.UserState, error)
	SetState(ctx context.Context, state *models.UserState) error
	ClearState(ctx context.Context, userID int64) error
	CheckRateLimit(ctx context.Context, userID int64, limit int, window time.Duration) (bool, error)
}

type StateManager interface {
	GetUserState(ctx context.Context, userID int64) (*models.UserState, error)
	SetUserState(ctx context.Context, userID int64, step string, data map[string]interface{}) error
	ClearUserState(ctx context.Context, userID int64) error
	CheckRateLimit(ctx context.Context, userID int64, limit int, window time.Duration) (bool, error)
}

type EventPublisher interface {
	PublishJSON(eventType string, payload interface{}) error
}

type TelegramSender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
	Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error)
	GetUpdatesChan(config tgbotapi.UpdateConfig) tgbotapi.UpdatesChannel
	GetSelf() tgbotapi.User
	StopReceivingUpdates()
}

type TelegramService interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
	Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error)
	SendMessage(chatID int64, text string) (tgbotapi.Message, error)
	SendHTML(chatID int64, text string) (tgbotapi.Message, error)
	SendWithKeyboard(chatID int64, text string, keyboard tgbotapi.ReplyKeyboardMarkup) (tgbotapi.Message, error)
	SendWithInlineKeyboard(chatID int64, text string, keyboard tgbotapi.InlineKeyboardMarkup) (tgbotapi.Message, error)
	EditMessage(chatID int64, messageID int, text string, keyboard *tgbotapi.InlineKeyboardMarkup) (tgbotapi.Message, error)
	SendDocument(chatID int64, path string) (tgbotapi.Message, error)
	AnswerCallback(callbackID string, text string) error
	GetUpdatesChan(config tgbotapi.UpdateConfig) tgbotapi.UpdatesChannel
	GetSelf() tgbotapi.User
	StopReceivingUpdates()
}

type HotelService interface {
	Rooms(ctx context.Context) []hotel.Room
	Room(ctx context.Context, number int) (hotel.Room, error)
	CheckInDate(ctx context.Context, number int) (time.Time, error)
	CheckIn(ctx context.Context, form hotel.CheckInForm) (hotel.Room, error)
	QuoteCheckout(ctx context.Context, form hotel.CheckoutForm) (hotel.Quote, error)
	CommitCheckout(ctx context.Context, quote hotel.Quote) (hotel.Stay, error)
}

type PayrollService interface {
	AddEmployee(ctx context.Context, form payroll.EmployeeForm) (payroll.Employee, error)
	Employees(ctx context.Context) []payroll.Employee
	Table(ctx context.Context) payroll.Table
	Export(ctx context.Context, dir string, withXLSX bool) ([]string, error)
}

type ContactService interface {
	AddContact(ctx context.Context, form contacts.ContactForm) (contacts.Contact, error)
	Contacts(ctx context.Context) []contacts.Contact
}
