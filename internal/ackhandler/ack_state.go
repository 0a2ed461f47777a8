package ackhandler

import (
	"github.com/yjfxfjch/mvfst/internal/protocol"
	"github.com/yjfxfjch/mvfst/internal/utils"
	"github.com/yjfxfjch/mvfst/internal/wire"
)

// AckState tracks, per packet number space, which received peer packet
// numbers this endpoint still owes an acknowledgment for, plus the sent-side
// largest packet number the peer has acked.
type AckState struct {
	// Acks holds the packet numbers received from the peer that have not yet
	// been confirmed as acknowledged.
	Acks utils.IntervalSet
	// LargestReceivedPacketNum is the largest packet number received from the peer.
	LargestReceivedPacketNum protocol.PacketNumber
	// LargestAckedByPeer is the largest of our packet numbers the peer has acked.
	LargestAckedByPeer protocol.PacketNumber
}

// ReceivedPacket records an incoming peer packet number as needing an ack.
func (s *AckState) ReceivedPacket(pn protocol.PacketNumber) {
	s.Acks.Insert(pn, pn)
	if pn > s.LargestReceivedPacketNum {
		s.LargestReceivedPacketNum = pn
	}
}

// CommonAckVisitorForAckFrame withdraws the intervals covered by an
// acknowledged outgoing ACK frame from the ack state. It is meant to be
// called from an AckVisitor when the acked sent frame is a WriteAckFrame.
//
// We may remove the current largest acked packet here, but its receive time
// stays behind and is refreshed by the next received packet. This assumes the
// peer only ever issues increasing packet numbers.
func CommonAckVisitorForAckFrame(ackState *AckState, frame *wire.WriteAckFrame) {
	for _, block := range frame.AckBlocks {
		ackState.Acks.Withdraw(block.Start, block.End)
	}
	if len(frame.AckBlocks) == 0 {
		return
	}
	// Purge everything far below the largest acked, even intervals the peer
	// never explicitly acked, to bound the memory of the set.
	largestAcked := frame.AckBlocks[0].End
	if largestAcked > protocol.AckPurgingThresh {
		ackState.Acks.Withdraw(0, largestAcked-protocol.AckPurgingThresh)
	}
}
