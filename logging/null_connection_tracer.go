package logging

import (
	"github.com/yjfxfjch/mvfst/internal/protocol"
	"github.com/yjfxfjch/mvfst/internal/utils"
)

// The NullConnectionTracer is a ConnectionTracer that does nothing.
// It is useful for embedding.
type NullConnectionTracer struct{}

var _ ConnectionTracer = &NullConnectionTracer{}

func (n NullConnectionTracer) UpdatedMetrics(*utils.RTTStats, protocol.ByteCount, protocol.ByteCount, int) {
}
func (n NullConnectionTracer) LostPacket(protocol.PacketNumberSpace, protocol.PacketNumber, PacketLossReason) {
}
func (n NullConnectionTracer) PersistentCongestion(protocol.PacketNumberSpace, int) {}
func (n NullConnectionTracer) Close()                                              {}
