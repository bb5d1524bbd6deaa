package service

import (
	"context"

	"oficina/internal/config"
	"oficina/internal/contacts"
	"oficina/internal/hotel"
	"oficina/internal/payroll"

	"github.com/rs/zerolog"
)

// Office owns the records of the three tools. Services borrow them.
type Office struct {
	Roster   *hotel.Roster
	Payroll  *payroll.List
	Contacts *contacts.Book
}

func NewOffice(cfg config.HotelConfig) *Office {
	return &Office{
		Roster:   hotel.NewRosterWithRates(cfg.LowerRate, cfg.HigherRate),
		Payroll:  payroll.NewList(),
		Contacts: contacts.NewBook(),
	}
}

// requestLogger prefers the per-request logger carried by ctx.
func requestLogger(ctx context.Context, fallback *zerolog.Logger) *zerolog.Logger {
	if l := zerolog.Ctx(ctx); l.GetLevel() != zerolog.Disabled {
		return l
	}
	if fallback == nil {
		nop := zerolog.Nop()
		return &nop
	}
	return fallback
}
