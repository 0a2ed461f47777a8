package ackhandler

import (
	"fmt"
	"time"

	"github.com/yjfxfjch/mvfst/internal/congestion"
	"github.com/yjfxfjch/mvfst/internal/protocol"
	"github.com/yjfxfjch/mvfst/internal/wire"
)

// ProcessAckFrame reconciles an incoming ACK frame against the outstanding
// packet store and produces one combined ack/loss notification for the
// congestion controller.
//
// The frame's ack blocks are sorted descending by their end packet number.
// For each block we look for a continuous range of outstanding packets acked
// by it, searching the store in reverse since the store is sorted ascending.
// The store interleaves all three packet number spaces, but an ack is always
// restrained to a single space, so packets from other spaces are skipped
// without being touched.
func ProcessAckFrame(
	conn *Connection,
	pnSpace protocol.PacketNumberSpace,
	frame *wire.ReadAckFrame,
	ackVisitor AckVisitor,
	lossVisitor LossVisitor,
	ackReceiveTime time.Time,
) {
	ack := &congestion.AckEvent{
		AckTime:            ackReceiveTime,
		LargestAckedPacket: protocol.InvalidPacketNumber,
		// Sizing the acked packets container like this is a heuristic, other
		// ack policies produce very different batch sizes.
		AckedPackets: make([]congestion.AckPacket, 0, protocol.DefaultRxPacketsBeforeAckAfterInit),
	}
	packets := &conn.Outstandings

	var initialPacketsAcked, handshakePacketsAcked, clonedPacketsAcked uint64
	var lastAckedPacketSentTime time.Time

	// cursor is the index of the highest store entry still to search.
	cursor := packets.lastIndexInSpace(pnSpace)
	for blockIdx := 0; blockIdx < len(frame.AckBlocks) && cursor >= 0; blockIdx++ {
		block := frame.AckBlocks[blockIdx]
		// In reverse order, find the first outstanding packet with a packet
		// number <= the end of the current block.
		i := packets.searchLE(cursor, block.End)
		if i < 0 {
			// All remaining packets are numbered above this block's end.
			// Blocks are iterated in descending end order, so no later block
			// can match either.
			if conn.logger.Debug() {
				conn.logger.Debugf("ack block [%d, %d] below all %d outstanding packets", block.Start, block.End, packets.Len())
			}
			break
		}

		// runEnd is the exclusive upper index of the contiguous run of
		// packets confirmed acked by this block but not yet erased.
		runEnd := i + 1
		for i >= 0 {
			p := packets.Packet(i)
			if p.PacketNumberSpace != pnSpace {
				// A packet from another space interrupts the run. Erase the
				// packets already confirmed acked above it, then step past it.
				packets.eraseRange(i+1, runEnd)
				i--
				runEnd = i + 1
				continue
			}
			if p.PacketNumber < block.Start {
				break
			}
			if conn.logger.Debug() {
				conn.logger.Debugf("acked packet %d (%s), handshake: %t", p.PacketNumber, p.PacketNumberSpace, p.IsHandshake)
			}
			needsProcess := p.AssociatedEvent == nil || packets.HasPacketEvent(*p.AssociatedEvent)
			if p.IsHandshake && needsProcess {
				switch p.PacketNumberSpace {
				case protocol.PacketNumberSpaceInitial:
					initialPacketsAcked++
				case protocol.PacketNumberSpaceHandshake:
					handshakePacketsAcked++
				default:
					panic(fmt.Sprintf("handshake-flow packet %d in space %s", p.PacketNumber, p.PacketNumberSpace))
				}
			}
			ack.AckedBytes += p.EncodedSize
			if p.AssociatedEvent != nil {
				clonedPacketsAcked++
			}
			// An ack receive time before the send time means clock skew
			// between the peer's delay report and our clock. Fall back to now
			// for this one sample.
			receiveTimeOrNow := ackReceiveTime
			if !ackReceiveTime.After(p.SendTime) {
				receiveTimeOrNow = time.Now()
			}
			rttSample := receiveTimeOrNow.Sub(p.SendTime)
			// Only the frame's largestAcked feeds the estimator.
			if p.PacketNumber == frame.LargestAcked {
				conn.RTTStats.UpdateRTT(rttSample, frame.AckDelay, ackReceiveTime)
			}
			// Only invoke the ack visitor if the packet has no associated
			// packet event, or the event is still pending.
			if needsProcess {
				for _, f := range p.Frames {
					ackVisitor(p, f, frame)
				}
				if p.AssociatedEvent != nil {
					packets.RemovePacketEvent(*p.AssociatedEvent)
				}
			}
			if ack.LargestAckedPacket == protocol.InvalidPacketNumber || ack.LargestAckedPacket < p.PacketNumber {
				ack.LargestAckedPacket = p.PacketNumber
				ack.LargestAckedPacketSentTime = p.SendTime
				ack.LargestAckedPacketAppLimited = p.IsAppLimited
			}
			if ackReceiveTime.After(p.SendTime) && (ack.MrttSample == 0 || rttSample < ack.MrttSample) {
				ack.MrttSample = rttSample
			}
			conn.LossState.TotalBytesAcked += p.EncodedSize
			conn.LossState.TotalBytesSentAtLastAck = conn.LossState.TotalBytesSent
			conn.LossState.TotalBytesAckedAtLastAck = conn.LossState.TotalBytesAcked
			if lastAckedPacketSentTime.IsZero() {
				lastAckedPacketSentTime = p.SendTime
			}
			conn.LossState.LastAckedTime = ackReceiveTime
			ack.AckedPackets = append(ack.AckedPackets, congestion.AckPacket{
				SentTime:            p.SendTime,
				EncodedSize:         p.EncodedSize,
				LastAckedPacketInfo: p.LastAckedPacketInfo,
				TotalBytesSentThen:  p.TotalBytesSent,
				AppLimited:          p.IsAppLimited,
			})
			i--
		}
		// Erase the last batch of continuous packets acked by this block and
		// move the cursor to the next search point.
		packets.eraseRange(i+1, runEnd)
		cursor = i
	}

	if !lastAckedPacketSentTime.IsZero() {
		conn.LossState.LastAckedPacketSentTime = lastAckedPacketSentTime
	}
	packets.subtractCounts(initialPacketsAcked, handshakePacketsAcked, clonedPacketsAcked)

	if conn.tracer != nil && ack.HasAckedPackets() {
		conn.tracer.UpdatedMetrics(conn.RTTStats, conn.LossState.TotalBytesSent, conn.LossState.TotalBytesAcked, packets.Len())
	}

	lossEvent := HandleAckForLoss(conn, lossVisitor, ack, pnSpace)
	if conn.CongestionController != nil && (ack.HasAckedPackets() || lossEvent != nil) {
		if lossEvent != nil {
			if lossEvent.SmallestLostSentTime.IsZero() || lossEvent.LargestLostSentTime.IsZero() {
				panic("loss event without lost packet send times")
			}
			// The span covers the entire lost range of this pass, not only
			// the longest contiguous lost run.
			lossEvent.PersistentCongestion = isPersistentCongestion(conn, lossEvent.SmallestLostSentTime, lossEvent.LargestLostSentTime)
			if lossEvent.PersistentCongestion && conn.tracer != nil {
				conn.tracer.PersistentCongestion(pnSpace, len(lossEvent.LostPackets))
			}
		}
		conn.CongestionController.OnPacketAckOrLoss(ack, lossEvent)
	}
}
