package payroll

import (
	"encoding/json"
	"fmt"
	"strings"
)

type Role int

const (
	RoleDirectivo Role = iota + 1
	RoleEstrategico
	RoleOperativo
)

var roleLabels = map[Role]string{
	RoleDirectivo:   "Directivo",
	RoleEstrategico: "Estratégico",
	RoleOperativo:   "Operativo",
}

var roleCodes = map[Role]string{
	RoleDirectivo:   "directivo",
	RoleEstrategico: "estrategico",
	RoleOperativo:   "operativo",
}

// Roles lists every role in display order.
func Roles() []Role {
	return []Role{RoleDirectivo, RoleEstrategico, RoleOperativo}
}

func (r Role) Label() string {
	if l, ok := roleLabels[r]; ok {
		return l
	}
	return fmt.Sprintf("Role(%d)", int(r))
}

func (r Role) Code() string {
	return roleCodes[r]
}

func (r Role) Valid() bool {
	_, ok := roleLabels[r]
	return ok
}

// ParseRole accepts a code ("estrategico") or a display label ("Estratégico").
func ParseRole(s string) (Role, error) {
	key := normalizeKey(s)
	for _, r := range Roles() {
		if key == r.Code() || key == normalizeKey(r.Label()) {
			return r, nil
		}
	}
	return 0, fmt.Errorf("%q: %w", s, ErrInvalidRole)
}

func (r Role) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.Code())
}

func (r *Role) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseRole(s)
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}

type Gender int

const (
	GenderMasculino Gender = iota + 1
	GenderFemenino
)

var genderLabels = map[Gender]string{
	GenderMasculino: "Masculino",
	GenderFemenino:  "Femenino",
}

var genderCodes = map[Gender]string{
	GenderMasculino: "masculino",
	GenderFemenino:  "femenino",
}

func Genders() []Gender {
	return []Gender{GenderMasculino, GenderFemenino}
}

func (g Gender) Label() string {
	if l, ok := genderLabels[g]; ok {
		return l
	}
	return fmt.Sprintf("Gender(%d)", int(g))
}

func (g Gender) Code() string {
	return genderCodes[g]
}

func (g Gender) Valid() bool {
	_, ok := genderLabels[g]
	return ok
}

func ParseGender(s string) (Gender, error) {
	key := normalizeKey(s)
	for _, g := range Genders() {
		if key == g.Code() || key == normalizeKey(g.Label()) {
			return g, nil
		}
	}
	return 0, fmt.Errorf("%q: %w", s, ErrInvalidGender)
}

func (g Gender) MarshalJSON() ([]byte, error) {
	return json.Marshal(g.Code())
}

func (g *Gender) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseGender(s)
	if err != nil {
		return err
	}
	*g = parsed
	return nil
}

var accentReplacer = strings.NewReplacer("á", "a", "é", "e", "í", "i", "ó", "o", "ú", "u")

func normalizeKey(s string) string {
	return accentReplacer.Replace(strings.ToLower(strings.TrimSpace(s)))
}
