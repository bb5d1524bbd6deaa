package models

import (
	"strconv"
	"strings"
)

// UserState is the draft of the form a user is filling in the bot. Draft
// values are the raw strings the user typed or picked; they are parsed only
// when the form is submitted.
type UserState struct {
	UserID      int64
	CurrentStep string
	TempData    map[string]interface{}
}

// Idle reports whether the user has no form open.
func (s *UserState) Idle() bool {
	return s == nil || s.CurrentStep == ""
}

func (s *UserState) GetString(key string) string {
	if s == nil || s.TempData == nil {
		return ""
	}
	if str, ok := s.TempData[key].(string); ok {
		return str
	}
	return ""
}

// GetInt reads a number stored either as a digit string or as a JSON number.
func (s *UserState) GetInt(key string) int {
	if s == nil || s.TempData == nil {
		return 0
	}
	switch v := s.TempData[key].(type) {
	case int:
		return v
	case int64:
		return int(v)
	case float64:
		return int(v)
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return 0
		}
		return n
	default:
		return 0
	}
}

// With returns a copy of the draft data with key set.
func (s *UserState) With(key string, value string) map[string]interface{} {
	data := make(map[string]interface{}, len(s.TempData)+1)
	for k, v := range s.TempData {
		data[k] = v
	}
	data[key] = value
	return data
}
