package models

import "oficina/internal/hotel"

const (
	ParseModeMarkdown = "Markdown"
	ParseModeHTML     = "HTML"
)

// Conversation steps of the bot forms.
const (
	StateCheckInRoom      = "checkin_room"
	StateCheckInDate      = "checkin_date"
	StateCheckInFirstName = "checkin_first_name"
	StateCheckInLastName  = "checkin_last_name"
	StateCheckInIDNumber  = "checkin_id_number"

	StateCheckoutRoom    = "checkout_room"
	StateCheckoutDate    = "checkout_date"
	StateCheckoutConfirm = "checkout_confirm"

	StateEmployeeName        = "employee_name"
	StateEmployeeSurname     = "employee_surname"
	StateEmployeeRole        = "employee_role"
	StateEmployeeGender      = "employee_gender"
	StateEmployeeDailyWage   = "employee_daily_wage"
	StateEmployeeDaysWorked  = "employee_days_worked"
	StateEmployeeOtherIncome = "employee_other_income"
	StateEmployeeHealth      = "employee_health"
	StateEmployeePension     = "employee_pension"

	StateContactNames     = "contact_names"
	StateContactSurnames  = "contact_surnames"
	StateContactBirthDate = "contact_birth_date"
	StateContactAddress   = "contact_address"
	StateContactPhone     = "contact_phone"
	StateContactEmail     = "contact_email"
)

const (
	// DefaultStateTTL is how long an unfinished form draft is kept, in seconds.
	DefaultStateTTL = 24 * 60 * 60

	// RateLimitMessages is the number of messages allowed per window.
	RateLimitMessages = 20

	// RateLimitWindow is the message rate limit window, in seconds.
	RateLimitWindow = 60

	DefaultLowerRate  = hotel.DefaultLowerRate
	DefaultHigherRate = hotel.DefaultHigherRate
)
