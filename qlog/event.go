package qlog

import (
	"time"

	"github.com/francoispqt/gojay"
	"github.com/yjfxfjch/mvfst/internal/protocol"
)

type eventDetails interface {
	Category() category
	Name() string
	gojay.MarshalerJSONObject
}

type event struct {
	RelativeTime time.Duration
	eventDetails
}

var _ gojay.MarshalerJSONObject = event{}

func (e event) IsNil() bool { return false }
func (e event) MarshalJSONObject(enc *gojay.Encoder) {
	enc.FloatKey("time", milliseconds(e.RelativeTime))
	enc.StringKey("name", e.Category().String()+":"+e.Name())
	enc.ObjectKey("data", e.eventDetails)
}

func milliseconds(dur time.Duration) float64 { return float64(dur.Nanoseconds()) / 1e6 }

type eventMetricsUpdated struct {
	MinRTT      time.Duration
	SmoothedRTT time.Duration
	LatestRTT   time.Duration
	RTTVariance time.Duration

	TotalBytesSent     protocol.ByteCount
	TotalBytesAcked    protocol.ByteCount
	PacketsOutstanding int
}

var _ eventDetails = &eventMetricsUpdated{}

func (e eventMetricsUpdated) Category() category { return categoryRecovery }
func (e eventMetricsUpdated) Name() string       { return "metrics_updated" }
func (e eventMetricsUpdated) IsNil() bool        { return false }

func (e eventMetricsUpdated) MarshalJSONObject(enc *gojay.Encoder) {
	enc.FloatKey("min_rtt", milliseconds(e.MinRTT))
	enc.FloatKey("smoothed_rtt", milliseconds(e.SmoothedRTT))
	enc.FloatKey("latest_rtt", milliseconds(e.LatestRTT))
	enc.FloatKey("rtt_variance", milliseconds(e.RTTVariance))
	enc.Uint64Key("total_bytes_sent", uint64(e.TotalBytesSent))
	enc.Uint64Key("total_bytes_acked", uint64(e.TotalBytesAcked))
	enc.Uint64Key("packets_outstanding", uint64(e.PacketsOutstanding))
}

type eventPacketLost struct {
	Space        protocol.PacketNumberSpace
	PacketNumber protocol.PacketNumber
	Trigger      string
}

var _ eventDetails = &eventPacketLost{}

func (e eventPacketLost) Category() category { return categoryRecovery }
func (e eventPacketLost) Name() string       { return "packet_lost" }
func (e eventPacketLost) IsNil() bool        { return false }

func (e eventPacketLost) MarshalJSONObject(enc *gojay.Encoder) {
	enc.StringKey("packet_number_space", e.Space.String())
	enc.Int64Key("packet_number", int64(e.PacketNumber))
	enc.StringKey("trigger", e.Trigger)
}

type eventPersistentCongestion struct {
	Space          protocol.PacketNumberSpace
	NumLostPackets int
}

var _ eventDetails = &eventPersistentCongestion{}

func (e eventPersistentCongestion) Category() category { return categoryRecovery }
func (e eventPersistentCongestion) Name() string       { return "persistent_congestion" }
func (e eventPersistentCongestion) IsNil() bool        { return false }

func (e eventPersistentCongestion) MarshalJSONObject(enc *gojay.Encoder) {
	enc.StringKey("packet_number_space", e.Space.String())
	enc.IntKey("num_lost_packets", e.NumLostPackets)
}
