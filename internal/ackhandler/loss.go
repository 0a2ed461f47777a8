package ackhandler

import (
	"time"

	"github.com/yjfxfjch/mvfst/internal/congestion"
	"github.com/yjfxfjch/mvfst/internal/protocol"
	"github.com/yjfxfjch/mvfst/internal/utils"
	"github.com/yjfxfjch/mvfst/logging"
)

// HandleAckForLoss runs loss detection after an ack event. It updates the
// per-space largest-acked bookkeeping, invokes the configured loss detector
// and flags the loss-detection alarm for the timer layer.
func HandleAckForLoss(conn *Connection, lossVisitor LossVisitor, ack *congestion.AckEvent, pnSpace protocol.PacketNumberSpace) *congestion.LossEvent {
	ackState := conn.AckState(pnSpace)
	if ack.LargestAckedPacket != protocol.InvalidPacketNumber && ack.LargestAckedPacket > ackState.LargestAckedByPeer {
		ackState.LargestAckedByPeer = ack.LargestAckedPacket
	}
	detect := conn.DetectLostPackets
	if detect == nil {
		detect = DetectLostPackets
	}
	lossEvent := detect(conn, ackState.LargestAckedByPeer, lossVisitor, ack.AckTime, pnSpace)
	conn.PendingEvents.SetLossDetectionAlarm = conn.Outstandings.Len() > 0
	return lossEvent
}

// DetectLostPackets is the default loss detector: a packet is lost once the
// peer acked a packet more than the reordering threshold above it, or once it
// has been outstanding longer than the time threshold derived from the
// current RTT. Lost packets are removed from the store, the counters
// decremented and the loss visitor invoked. Packets below largestAcked that
// are not yet lost arm the per-space time-threshold deadline.
func DetectLostPackets(
	conn *Connection,
	largestAcked protocol.PacketNumber,
	lossVisitor LossVisitor,
	lossTime time.Time,
	pnSpace protocol.PacketNumberSpace,
) *congestion.LossEvent {
	conn.lossTimes[pnSpace] = time.Time{}
	if largestAcked == protocol.InvalidPacketNumber || conn.Outstandings.Len() == 0 {
		return nil
	}

	maxRTT := utils.MaxDuration(conn.RTTStats.LatestRTT(), conn.RTTStats.SmoothedRTT())
	delayUntilLost := utils.MaxDuration(
		time.Duration(protocol.TimeReorderingFraction*float64(maxRTT)),
		protocol.TimerGranularity,
	)

	var lossEvent *congestion.LossEvent
	packets := &conn.Outstandings
	i := 0
	for i < packets.Len() {
		p := packets.Packet(i)
		if p.PacketNumber >= largestAcked {
			break
		}
		if p.PacketNumberSpace != pnSpace {
			i++
			continue
		}
		lostByTimeout := lossTime.Sub(p.SendTime) > delayUntilLost
		lostByReorder := largestAcked-p.PacketNumber > protocol.PacketReorderingThreshold
		if !lostByTimeout && !lostByReorder {
			// Not lost yet. Arm the time threshold alarm for the earliest
			// candidate. This branch is entered at most once per pass.
			if conn.lossTimes[pnSpace].IsZero() {
				conn.lossTimes[pnSpace] = p.SendTime.Add(delayUntilLost)
			}
			i++
			continue
		}
		if conn.logger.Debug() {
			conn.logger.Debugf("lost packet %d (%s), by timeout: %t, by reorder: %t", p.PacketNumber, pnSpace, lostByTimeout, lostByReorder)
		}
		needsProcess := p.AssociatedEvent == nil || packets.HasPacketEvent(*p.AssociatedEvent)
		var initialLost, handshakeLost, clonedLost uint64
		if p.IsHandshake && needsProcess {
			if p.PacketNumberSpace == protocol.PacketNumberSpaceInitial {
				initialLost++
			} else {
				handshakeLost++
			}
		}
		if p.AssociatedEvent != nil {
			clonedLost++
		}
		if lossEvent == nil {
			lossEvent = congestion.NewLossEvent(lossTime)
		}
		lossEvent.AddLostPacket(p.PacketNumber, p.EncodedSize, p.SendTime)
		if lossVisitor != nil {
			lossVisitor(p, LossContext{PacketNumberSpace: pnSpace, Processed: !needsProcess})
		}
		if needsProcess && p.AssociatedEvent != nil {
			packets.RemovePacketEvent(*p.AssociatedEvent)
		}
		if conn.tracer != nil {
			reason := logging.PacketLossTimeThreshold
			if lostByReorder {
				reason = logging.PacketLossReorderingThreshold
			}
			conn.tracer.LostPacket(pnSpace, p.PacketNumber, reason)
		}
		packets.eraseRange(i, i+1)
		packets.subtractCounts(initialLost, handshakeLost, clonedLost)
	}
	return lossEvent
}

// isPersistentCongestion classifies a loss span: an episode longer than
// PersistentCongestionThreshold probe timeouts means the path was congested
// for the entire span.
func isPersistentCongestion(conn *Connection, smallestLostSentTime, largestLostSentTime time.Time) bool {
	congestionPeriod := conn.RTTStats.PTO(true) * protocol.PersistentCongestionThreshold
	return largestLostSentTime.Sub(smallestLostSentTime) > congestionPeriod
}
