// Package metrics exposes loss recovery statistics as Prometheus metrics.
package metrics

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/yjfxfjch/mvfst/internal/protocol"
	"github.com/yjfxfjch/mvfst/internal/utils"
	"github.com/yjfxfjch/mvfst/logging"
)

const metricNamespace = "mvfst"

var (
	packetsLost = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: metricNamespace,
			Name:      "packets_lost_total",
			Help:      "packets declared lost",
		},
		[]string{"space", "trigger"},
	)
	persistentCongestion = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: metricNamespace,
			Name:      "persistent_congestion_total",
			Help:      "persistent congestion episodes",
		},
		[]string{"space"},
	)
	bytesSent = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: metricNamespace,
			Name:      "bytes_sent",
			Help:      "total bytes sent on the connection",
		},
	)
	bytesAcked = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: metricNamespace,
			Name:      "bytes_acked",
			Help:      "total bytes acknowledged by the peer",
		},
	)
	packetsOutstanding = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: metricNamespace,
			Name:      "packets_outstanding",
			Help:      "packets awaiting acknowledgement",
		},
	)
	smoothedRTT = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: metricNamespace,
			Name:      "smoothed_rtt_seconds",
			Help:      "smoothed round trip time estimate",
		},
	)
)

type connectionTracer struct{}

var _ logging.ConnectionTracer = connectionTracer{}

// NewConnectionTracer creates a new tracer using the default Prometheus registerer.
func NewConnectionTracer() logging.ConnectionTracer {
	return NewConnectionTracerWithRegisterer(prometheus.DefaultRegisterer)
}

// NewConnectionTracerWithRegisterer creates a new tracer using a given Prometheus registerer.
func NewConnectionTracerWithRegisterer(registerer prometheus.Registerer) logging.ConnectionTracer {
	for _, c := range [...]prometheus.Collector{
		packetsLost,
		persistentCongestion,
		bytesSent,
		bytesAcked,
		packetsOutstanding,
		smoothedRTT,
	} {
		if err := registerer.Register(c); err != nil {
			if ok := errors.As(err, &prometheus.AlreadyRegisteredError{}); !ok {
				panic(err)
			}
		}
	}
	return connectionTracer{}
}

func (connectionTracer) UpdatedMetrics(rttStats *utils.RTTStats, totalBytesSent, totalBytesAcked protocol.ByteCount, outstanding int) {
	bytesSent.Set(float64(totalBytesSent))
	bytesAcked.Set(float64(totalBytesAcked))
	packetsOutstanding.Set(float64(outstanding))
	smoothedRTT.Set(rttStats.SmoothedRTT().Seconds())
}

func (connectionTracer) LostPacket(space protocol.PacketNumberSpace, _ protocol.PacketNumber, reason logging.PacketLossReason) {
	packetsLost.WithLabelValues(space.String(), reason.String()).Inc()
}

func (connectionTracer) PersistentCongestion(space protocol.PacketNumberSpace, _ int) {
	persistentCongestion.WithLabelValues(space.String()).Inc()
}

func (connectionTracer) Close() {}
