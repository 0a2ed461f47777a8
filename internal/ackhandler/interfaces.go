package ackhandler

import (
	"time"

	"github.com/yjfxfjch/mvfst/internal/congestion"
	"github.com/yjfxfjch/mvfst/internal/protocol"
	"github.com/yjfxfjch/mvfst/internal/wire"
)

// An AckVisitor is invoked once per frame carried by a newly acked, eligible
// packet. Side effects only, errors have nowhere to go during reconciliation.
type AckVisitor func(p *Packet, f wire.Frame, ackFrame *wire.ReadAckFrame)

// LossContext describes the circumstances of a packet loss to the LossVisitor.
type LossContext struct {
	PacketNumberSpace protocol.PacketNumberSpace
	// Processed is set when the packet's associated send event was already
	// handled through another clone, so its frames need no retransmission.
	Processed bool
}

// A LossVisitor is invoked once per newly lost packet.
type LossVisitor func(p *Packet, ctx LossContext)

// A LossDetector determines which outstanding packets are now presumed lost.
// Implementations remove the lost packets from the store, keep the counters
// in sync, invoke the loss visitor and return nil when nothing was lost.
type LossDetector func(
	conn *Connection,
	largestAcked protocol.PacketNumber,
	lossVisitor LossVisitor,
	lossTime time.Time,
	pnSpace protocol.PacketNumberSpace,
) *congestion.LossEvent
