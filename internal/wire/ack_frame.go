package wire

import (
	"time"

	"github.com/yjfxfjch/mvfst/internal/protocol"
)

// A ReadAckFrame is an incoming ACK frame, as produced by the frame codec.
// AckBlocks are sorted descending by their End value. The codec is trusted to
// deliver the blocks in that order, no re-sort happens here.
type ReadAckFrame struct {
	AckBlocks    []AckBlock
	LargestAcked protocol.PacketNumber
	AckDelay     time.Duration
}

// LowestAcked returns the smallest packet number acknowledged by the frame.
func (f *ReadAckFrame) LowestAcked() protocol.PacketNumber {
	return f.AckBlocks[len(f.AckBlocks)-1].Start
}

// A WriteAckFrame is an ACK frame this endpoint sent (or is about to send) to
// the peer. AckBlocks are sorted descending by their End value.
type WriteAckFrame struct {
	AckBlocks []AckBlock
}

// LargestAcked returns the largest packet number acknowledged by the frame.
func (f *WriteAckFrame) LargestAcked() protocol.PacketNumber {
	if len(f.AckBlocks) == 0 {
		return protocol.InvalidPacketNumber
	}
	return f.AckBlocks[0].End
}
