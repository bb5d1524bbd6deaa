package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"oficina/internal/config"
	"oficina/internal/domain"
	"oficina/internal/metrics"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
)

// Services are the tools the API exposes.
type Services struct {
	Hotel    domain.HotelService
	Payroll  domain.PayrollService
	Contacts domain.ContactService
}

// HTTPServer exposes the office tools as a JSON API.
type HTTPServer struct {
	cfg       config.APIConfig
	services  Services
	exportDir string
	server    *http.Server
	router    *mux.Router
	auth      *HTTPAuth
	logger    *zerolog.Logger
}

func NewHTTPServer(cfg config.APIConfig, services Services, exportDir string, logger *zerolog.Logger) *HTTPServer {
	if logger == nil {
		nop := zerolog.Nop()
		logger = &nop
	}

	srv := &HTTPServer{
		cfg:       cfg,
		services:  services,
		exportDir: exportDir,
		router:    mux.NewRouter(),
		auth:      NewHTTPAuth(cfg),
		logger:    logger,
	}
	srv.routes()

	srv.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler:           srv.router,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      15 * time.Second,
	}

	return srv
}

func (s *HTTPServer) routes() {
	s.router.Use(loggingMiddleware(s.logger))
	s.router.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, "not found")
	})
	s.router.MethodNotAllowedHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
	})

	s.router.HandleFunc("/healthz", s.handleHealth).Methods(http.MethodGet)
	s.router.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)

	v1 := s.router.PathPrefix("/api/v1").Subrouter()
	v1.Use(s.auth.Wrap)

	v1.HandleFunc("/hotel/rooms", s.handleRooms).Methods(http.MethodGet)
	v1.HandleFunc("/hotel/rooms/{number}", s.handleRoom).Methods(http.MethodGet)
	v1.HandleFunc("/hotel/rooms/{number}/check-in", s.handleCheckIn).Methods(http.MethodPost)
	v1.HandleFunc("/hotel/rooms/{number}/quote", s.handleQuote).Methods(http.MethodPost)
	v1.HandleFunc("/hotel/rooms/{number}/check-out", s.handleCheckout).Methods(http.MethodPost)

	v1.HandleFunc("/payroll", s.handlePayroll).Methods(http.MethodGet)
	v1.HandleFunc("/payroll/employees", s.handleEmployees).Methods(http.MethodGet)
	v1.HandleFunc("/payroll/employees", s.handleAddEmployee).Methods(http.MethodPost)
	v1.HandleFunc("/payroll/export", s.handleExport).Methods(http.MethodPost)

	v1.HandleFunc("/contacts", s.handleContacts).Methods(http.MethodGet)
	v1.HandleFunc("/contacts", s.handleAddContact).Methods(http.MethodPost)

	v1.HandleFunc("/calendar/{year:[0-9]+}/{month:[0-9]+}", s.handleCalendar).Methods(http.MethodGet)
}

// Handler returns the routed handler, for tests and embedding.
func (s *HTTPServer) Handler() http.Handler {
	return s.router
}

func (s *HTTPServer) Start() error {
	if s.server == nil {
		return fmt.Errorf("http server is not initialized")
	}
	s.logger.Info().Str("addr", s.server.Addr).Msg("HTTP API listening")
	if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *HTTPServer) Shutdown(ctx context.Context) error {
	if s.server == nil {
		return nil
	}
	return s.server.Shutdown(ctx)
}

func (s *HTTPServer) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func loggingMiddleware(logger *zerolog.Logger) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			requestID := r.Header.Get("X-Request-ID")
			if requestID == "" {
				requestID = uuid.New().String()
			}
			l := logger.With().Str("request_id", requestID).Logger()
			w.Header().Set("X-Request-ID", requestID)

			recorder := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(recorder, r.WithContext(l.WithContext(r.Context())))

			route := r.URL.Path
			if current := mux.CurrentRoute(r); current != nil {
				if tpl, err := current.GetPathTemplate(); err == nil {
					route = tpl
				}
			}
			metrics.IncHTTP(route, strconv.Itoa(recorder.status))

			l.Info().
				Str("method", r.Method).
				Str("path", r.URL.Path).
				Int("status", recorder.status).
				Dur("dur", time.Since(start)).
				Msg("http request")
		})
	}
}

func decodeJSON(r *http.Request, dst interface{}) error {
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	return decoder.Decode(dst)
}

func writeJSON(w http.ResponseWriter, statusCode int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, statusCode int, message string) {
	writeJSON(w, statusCode, map[string]string{"error": message})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}
