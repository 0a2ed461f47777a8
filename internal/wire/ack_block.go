package wire

import "github.com/yjfxfjch/mvfst/internal/protocol"

// An AckBlock is an inclusive range of acknowledged packet numbers.
// Within a frame, blocks are ordered descending by their End value.
type AckBlock struct {
	Start protocol.PacketNumber
	End   protocol.PacketNumber
}

// Len returns the number of packet numbers covered by this block.
func (b AckBlock) Len() protocol.PacketNumber {
	return b.End - b.Start + 1
}
