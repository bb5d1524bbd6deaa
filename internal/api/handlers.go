package api

import (
	"errors"
	"io"
	"net/http"
	"strconv"
	"time"

	"oficina/internal/calendar"
	"oficina/internal/contacts"
	"oficina/internal/hotel"
	"oficina/internal/payroll"

	"github.com/gorilla/mux"
)

func roomNumber(r *http.Request) (int, error) {
	return hotel.ParseRoomNumber(mux.Vars(r)["number"])
}

func (s *HTTPServer) handleRooms(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"rooms": s.services.Hotel.Rooms(r.Context())})
}

func (s *HTTPServer) handleRoom(w http.ResponseWriter, r *http.Request) {
	number, err := roomNumber(r)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	room, err := s.services.Hotel.Room(r.Context(), number)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, room)
}

type checkInRequest struct {
	Date      string `json:"date"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	IDNumber  string `json:"id_number"`
}

func (s *HTTPServer) handleCheckIn(w http.ResponseWriter, r *http.Request) {
	var body checkInRequest
	if err := decodeJSON(r, &body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	room, err := s.services.Hotel.CheckIn(r.Context(), hotel.CheckInForm{
		Room:      mux.Vars(r)["number"],
		Date:      body.Date,
		FirstName: body.FirstName,
		LastName:  body.LastName,
		IDNumber:  body.IDNumber,
	})
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, room)
}

type quoteRequest struct {
	Date string `json:"date"`
}

func (s *HTTPServer) handleQuote(w http.ResponseWriter, r *http.Request) {
	var body quoteRequest
	if err := decodeJSON(r, &body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	quote, err := s.services.Hotel.QuoteCheckout(r.Context(), hotel.CheckoutForm{
		Room: mux.Vars(r)["number"],
		Date: body.Date,
	})
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, quote)
}

// handleCheckout commits a quote returned by the quote endpoint.
func (s *HTTPServer) handleCheckout(w http.ResponseWriter, r *http.Request) {
	number, err := roomNumber(r)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	var quote hotel.Quote
	if err := decodeJSON(r, &quote); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if quote.Room == 0 {
		quote.Room = number
	}
	if quote.Room != number {
		writeError(w, http.StatusBadRequest, "quote is for another room")
		return
	}

	stay, err := s.services.Hotel.CommitCheckout(r.Context(), quote)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, stay)
}

func (s *HTTPServer) handlePayroll(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.services.Payroll.Table(r.Context()))
}

func (s *HTTPServer) handleEmployees(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"employees": s.services.Payroll.Employees(r.Context())})
}

func (s *HTTPServer) handleAddEmployee(w http.ResponseWriter, r *http.Request) {
	var form payroll.EmployeeForm
	if err := decodeJSON(r, &form); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	employee, err := s.services.Payroll.AddEmployee(r.Context(), form)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{
		"employee": employee,
		"pay":      employee.Pay().StringFixed(2),
	})
}

type exportRequest struct {
	XLSX bool `json:"xlsx"`
}

func (s *HTTPServer) handleExport(w http.ResponseWriter, r *http.Request) {
	var body exportRequest
	if err := decodeJSON(r, &body); err != nil && !errors.Is(err, io.EOF) {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	files, err := s.services.Payroll.Export(r.Context(), s.exportDir, body.XLSX)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"files": files})
}

func (s *HTTPServer) handleContacts(w http.ResponseWriter, r *http.Request) {
	list := s.services.Contacts.Contacts(r.Context())
	lines := make([]string, 0, len(list))
	for _, c := range list {
		lines = append(lines, c.String())
	}
	writeJSON(w, http.StatusOK, map[string]any{"contacts": list, "lines": lines})
}

func (s *HTTPServer) handleAddContact(w http.ResponseWriter, r *http.Request) {
	var form contacts.ContactForm
	if err := decodeJSON(r, &form); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	contact, err := s.services.Contacts.AddContact(r.Context(), form)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, contact)
}

type calendarResponse struct {
	Title string   `json:"title"`
	Month string   `json:"month"`
	Prev  string   `json:"prev"`
	Next  string   `json:"next"`
	Weeks [][7]int `json:"weeks"`
}

func (s *HTTPServer) handleCalendar(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	year, yerr := strconv.Atoi(vars["year"])
	month, merr := strconv.Atoi(vars["month"])
	if yerr != nil || merr != nil || month < 1 || month > 12 || year < 1 {
		writeDomainError(w, calendar.ErrInvalidDate)
		return
	}

	m := calendar.Month{Year: year, Month: time.Month(month)}
	writeJSON(w, http.StatusOK, calendarResponse{
		Title: calendar.Title(m),
		Month: m.Key(),
		Prev:  m.Prev().Key(),
		Next:  m.Next().Key(),
		Weeks: calendar.Grid(m),
	})
}
