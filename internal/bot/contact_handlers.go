package bot

import (
	"context"
	"fmt"
	"strings"

	"oficina/internal/calendar"
	"oficina/internal/contacts"
	"oficina/internal/models"
)

const (
	keyNames     = "names"
	keySurnames  = "surnames"
	keyBirthDate = "birth_date"
	keyAddress   = "address"
	keyPhone     = "phone"
)

type textStep struct {
	key    string
	next   string
	prompt string
}

var contactSteps = map[string]textStep{
	models.StateContactNames:    {keyNames, models.StateContactSurnames, "Apellidos:"},
	models.StateContactSurnames: {keySurnames, models.StateContactBirthDate, "Fecha de nacimiento (elija en el calendario o escriba AAAA-MM-DD):"},
	models.StateContactAddress:  {keyAddress, models.StateContactPhone, "Teléfono:"},
	models.StateContactPhone:    {keyPhone, models.StateContactEmail, "Correo electrónico:"},
}

func (b *Bot) startAddContact(ctx context.Context, chatID, userID int64) {
	b.setUserState(ctx, userID, models.StateContactNames, nil)
	b.sendMessage(chatID, "📇 Nuevo contacto\n\nNombres:")
}

func (b *Bot) handleContactField(ctx context.Context, chatID, userID int64, state *models.UserState, input string) {
	if input == "" {
		b.sendError(chatID, contacts.ErrEmptyField)
		return
	}
	step := contactSteps[state.CurrentStep]
	b.setUserState(ctx, userID, step.next, state.With(step.key, input))
	if step.next == models.StateContactBirthDate {
		b.sendInline(chatID, step.prompt, GenerateCalendarKeyboard(calendar.MonthOf(b.now())))
		return
	}
	b.sendMessage(chatID, step.prompt)
}

func (b *Bot) handleContactBirthDate(ctx context.Context, chatID, userID int64, state *models.UserState, input string) {
	date, err := calendar.Parse(input)
	if err != nil {
		b.sendError(chatID, contacts.ErrInvalidBirthDate)
		return
	}
	b.setUserState(ctx, userID, models.StateContactAddress, state.With(keyBirthDate, calendar.Format(date)))
	b.sendMessage(chatID, fmt.Sprintf("Fecha de nacimiento: %s.\nDirección:", calendar.Format(date)))
}

func (b *Bot) handleContactEmail(ctx context.Context, chatID, userID int64, state *models.UserState, input string) {
	if input == "" {
		b.sendError(chatID, contacts.ErrEmptyField)
		return
	}

	contact, err := b.contactService.AddContact(ctx, contacts.ContactForm{
		Names:     state.GetString(keyNames),
		Surnames:  state.GetString(keySurnames),
		BirthDate: state.GetString(keyBirthDate),
		Address:   state.GetString(keyAddress),
		Phone:     state.GetString(keyPhone),
		Email:     input,
	})
	if err != nil {
		b.abortFlow(ctx, chatID, userID, err)
		return
	}

	b.finishFlow(ctx, chatID, userID, "contact", "✅ Contacto guardado:\n"+contact.String())
}

func (b *Bot) showContacts(ctx context.Context, chatID int64) {
	list := b.contactService.Contacts(ctx)
	if len(list) == 0 {
		b.handleMainMenu(chatID, "La agenda está vacía.")
		return
	}

	var sb strings.Builder
	sb.WriteString("📋 Contactos\n\n")
	for i, c := range list {
		sb.WriteString(fmt.Sprintf("%d. %s\n", i+1, c.String()))
	}
	b.handleMainMenu(chatID, sb.String())
}
