package csp

import "github.com/prometheus/client_golang/prometheus"

// channelMetrics holds the Prometheus collectors shared by every
// Channel registered against a single RegisterMetrics call. Channels
// are distinguished by their name label.
type channelMetrics struct {
	puts  *prometheus.CounterVec
	takes *prometheus.CounterVec
}

// RegisterMetrics registers channel put/take counters with reg and
// returns a value suitable for WithMetrics. Passing the same
// *channelMetrics to several New calls aggregates their counts under
// one registration, distinguished by each channel's name label.
func RegisterMetrics(reg prometheus.Registerer, namespace string) (*channelMetrics, error) {
	m := &channelMetrics{
		puts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "csp",
			Name:      "puts_total",
			Help:      "Number of values accepted by a channel's Put.",
		}, []string{"channel"}),
		takes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "csp",
			Name:      "takes_total",
			Help:      "Number of values delivered to a channel's Take.",
		}, []string{"channel"}),
	}

	if err := reg.Register(m.puts); err != nil {
		return nil, err
	}
	if err := reg.Register(m.takes); err != nil {
		return nil, err
	}

	return m, nil
}

func (m *channelMetrics) observePut(name string) {
	m.puts.WithLabelValues(name).Inc()
}

func (m *channelMetrics) observeTake(name string) {
	m.takes.WithLabelValues(name).Inc()
}
