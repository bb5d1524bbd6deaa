package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "oficina"

var (
	once sync.Once

	httpRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests by route and status code.",
		},
		[]string{"route", "code"},
	)

	operations = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "operations_total",
			Help:      "Domain operations by tool, operation and result.",
		},
		[]string{"tool", "operation", "result"},
	)

	roomsOccupied = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "hotel_rooms_occupied",
		Help:      "Rooms currently occupied.",
	})

	employees = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "payroll_employees",
		Help:      "Employees on the payroll list.",
	})

	payrollTotal = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "payroll_total",
		Help:      "Current payroll total.",
	})

	contacts = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "contacts",
		Help:      "Contacts recorded in the book.",
	})
)

// Register registers the collectors on the default registry. Safe to call multiple times.
func Register() {
	once.Do(func() {
		prometheus.MustRegister(httpRequests, operations, roomsOccupied, employees, payrollTotal, contacts)
	})
}

func IncHTTP(route, code string) {
	httpRequests.WithLabelValues(route, code).Inc()
}

// Operation results.
const (
	ResultOK       = "ok"
	ResultRejected = "rejected"
	ResultError    = "error"
)

func IncOperation(tool, operation, result string) {
	operations.WithLabelValues(tool, operation, result).Inc()
}

func SetRoomsOccupied(n int) {
	roomsOccupied.Set(float64(n))
}

func SetPayroll(count int, total float64) {
	employees.Set(float64(count))
	payrollTotal.Set(total)
}

func SetContacts(n int) {
	contacts.Set(float64(n))
}
