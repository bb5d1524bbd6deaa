package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func value(t *testing.T, m prometheus.Metric) float64 {
	t.Helper()
	var out dto.Metric
	require.NoError(t, m.Write(&out))
	if out.Counter != nil {
		return out.GetCounter().GetValue()
	}
	return out.GetGauge().GetValue()
}

func TestMetrics(t *testing.T) {
	Register()
	Register()

	IncHTTP("/api/v1/contacts", "201")
	assert.Equal(t, 1.0, value(t, httpRequests.WithLabelValues("/api/v1/contacts", "201")))

	IncOperation("hotel", "check_in", ResultOK)
	IncOperation("hotel", "check_in", ResultOK)
	IncOperation("hotel", "check_in", ResultRejected)
	assert.Equal(t, 2.0, value(t, operations.WithLabelValues("hotel", "check_in", ResultOK)))
	assert.Equal(t, 1.0, value(t, operations.WithLabelValues("hotel", "check_in", ResultRejected)))

	SetRoomsOccupied(3)
	assert.Equal(t, 3.0, value(t, roomsOccupied))

	SetPayroll(2, 3795.5)
	assert.Equal(t, 2.0, value(t, employees))
	assert.Equal(t, 3795.5, value(t, payrollTotal))

	SetContacts(4)
	assert.Equal(t, 4.0, value(t, contacts))
}
