package metrics

import "github.com/prometheus/client_golang/prometheus"

// BookingMetrics expõe contadores do fluxo de agendamento e da API.
type BookingMetrics struct {
	appointmentsCreated prometheus.Counter
	statusChanges       *prometheus.CounterVec
	paymentsExpired     prometheus.Counter
	activeSessions      prometheus.Gauge
	requestLatency      *prometheus.HistogramVec
}

func NewBookingMetrics(reg prometheus.Registerer) *BookingMetrics {
	m := &BookingMetrics{
		appointmentsCreated: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "beleza",
			Subsystem: "booking",
			Name:      "appointments_created_total",
			Help:      "Total de agendamentos finalizados",
		}),
		statusChanges: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "beleza",
			Subsystem: "booking",
			Name:      "status_changes_total",
			Help:      "Mudanças de status por origem",
		}, []string{"status", "payment_status", "source"}),
		paymentsExpired: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "beleza",
			Subsystem: "booking",
			Name:      "payments_expired_total",
			Help:      "Contadores de pagamento que chegaram a zero",
		}),
		activeSessions: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "beleza",
			Subsystem: "booking",
			Name:      "active_sessions",
			Help:      "Sessões de agendamento em memória",
		}),
		requestLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "beleza",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Latência das requisições HTTP",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route", "status"}),
	}
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	reg.MustRegister(
		m.appointmentsCreated,
		m.statusChanges,
		m.paymentsExpired,
		m.activeSessions,
		m.requestLatency,
	)
	return m
}

func (m *BookingMetrics) AppointmentCreated() {
	if m == nil {
		return
	}
	m.appointmentsCreated.Inc()
}

func (m *BookingMetrics) StatusChanged(status, paymentStatus, source string) {
	if m == nil {
		return
	}
	m.statusChanges.WithLabelValues(status, paymentStatus, source).Inc()
}

func (m *BookingMetrics) PaymentTimedOut() {
	if m == nil {
		return
	}
	m.paymentsExpired.Inc()
}

func (m *BookingMetrics) SetActiveSessions(n int) {
	if m == nil {
		return
	}
	m.activeSessions.Set(float64(n))
}

func (m *BookingMetrics) ObserveRequest(method, route, status string, seconds float64) {
	if m == nil {
		return
	}
	m.requestLatency.WithLabelValues(method, route, status).Observe(seconds)
}
