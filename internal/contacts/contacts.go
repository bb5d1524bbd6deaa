package contacts

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"
)

const DateLayout = "2006-01-02"

var (
	ErrEmptyField       = errors.New("no se permiten campos vacíos")
	ErrInvalidBirthDate = errors.New("seleccione una fecha válida (YYYY-MM-DD)")
)

type Contact struct {
	Names     string    `json:"names"`
	Surnames  string    `json:"surnames"`
	BirthDate time.Time `json:"birth_date"`
	Address   string    `json:"address"`
	Phone     string    `json:"phone"`
	Email     string    `json:"email"`
}

// String is the display line used in the contact list.
func (c Contact) String() string {
	return strings.Join([]string{
		c.Names,
		c.Surnames,
		c.BirthDate.Format(DateLayout),
		c.Address,
		c.Phone,
		c.Email,
	}, " - ")
}

// ContactForm holds the raw form fields; BirthDate is what the date picker produced.
type ContactForm struct {
	Names     string `json:"names"`
	Surnames  string `json:"surnames"`
	BirthDate string `json:"birth_date"`
	Address   string `json:"address"`
	Phone     string `json:"phone"`
	Email     string `json:"email"`
}

func (f ContactForm) Parse() (Contact, error) {
	c := Contact{
		Names:    strings.TrimSpace(f.Names),
		Surnames: strings.TrimSpace(f.Surnames),
		Address:  strings.TrimSpace(f.Address),
		Phone:    strings.TrimSpace(f.Phone),
		Email:    strings.TrimSpace(f.Email),
	}
	for _, v := range []string{c.Names, c.Surnames, c.Address, c.Phone, c.Email} {
		if v == "" {
			return Contact{}, ErrEmptyField
		}
	}

	raw := strings.TrimSpace(f.BirthDate)
	if raw == "" {
		return Contact{}, ErrInvalidBirthDate
	}
	birth, err := time.Parse(DateLayout, raw)
	if err != nil {
		return Contact{}, fmt.Errorf("%q: %w", raw, ErrInvalidBirthDate)
	}
	c.BirthDate = birth
	return c, nil
}

// Book is an ordered, append-only contact list.
type Book struct {
	mu       sync.RWMutex
	contacts []Contact
}

func NewBook() *Book {
	return &Book{}
}

// Add validates the form and appends the contact. A rejected form leaves the
// book unchanged.
func (b *Book) Add(f ContactForm) (Contact, error) {
	c, err := f.Parse()
	if err != nil {
		return Contact{}, err
	}
	b.mu.Lock()
	b.contacts = append(b.contacts, c)
	b.mu.Unlock()
	return c, nil
}

func (b *Book) All() []Contact {
	b.mu.RLock()
	defer b.mu.RUnlock()
	out := make([]Contact, len(b.contacts))
	copy(out, b.contacts)
	return out
}

func (b *Book) Len() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.contacts)
}

// Lines returns the display line of every contact in insertion order.
func (b *Book) Lines() []string {
	all := b.All()
	lines := make([]string, 0, len(all))
	for _, c := range all {
		lines = append(lines, c.String())
	}
	return lines
}
