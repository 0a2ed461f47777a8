package ackhandler

import (
	"fmt"
	"sort"

	"github.com/yjfxfjch/mvfst/internal/protocol"
)

// OutstandingPackets is the ordered store of sent-but-unacknowledged packets.
// Packets are ordered ascending by packet number, with the three packet
// number spaces interleaved in send order. The per-space counters always
// equal the corresponding subset sizes present in the store. A violation is
// a fatal programming error.
type OutstandingPackets struct {
	packets []*Packet

	initialPacketsCount   uint64
	handshakePacketsCount uint64
	clonedPacketsCount    uint64

	packetEvents map[protocol.PacketEvent]struct{}
}

// Append adds a freshly sent packet to the store and updates the counters.
func (o *OutstandingPackets) Append(p *Packet) {
	if n := len(o.packets); n > 0 && o.packets[n-1].PacketNumber >= p.PacketNumber &&
		o.packets[n-1].PacketNumberSpace == p.PacketNumberSpace {
		panic("OutstandingPackets: non-ascending packet number use")
	}
	o.packets = append(o.packets, p)
	if p.IsHandshake {
		if p.PacketNumberSpace == protocol.PacketNumberSpaceInitial {
			o.initialPacketsCount++
		} else {
			o.handshakePacketsCount++
		}
	}
	if p.AssociatedEvent != nil {
		o.clonedPacketsCount++
	}
}

// Len returns the number of outstanding packets across all spaces.
func (o *OutstandingPackets) Len() int { return len(o.packets) }

// Packet returns the outstanding packet at index i.
func (o *OutstandingPackets) Packet(i int) *Packet { return o.packets[i] }

// CountInSpace returns the number of outstanding packets in the given space.
func (o *OutstandingPackets) CountInSpace(space protocol.PacketNumberSpace) int {
	var n int
	for _, p := range o.packets {
		if p.PacketNumberSpace == space {
			n++
		}
	}
	return n
}

// InitialPacketsCount returns the number of outstanding Initial handshake-flow packets.
func (o *OutstandingPackets) InitialPacketsCount() uint64 { return o.initialPacketsCount }

// HandshakePacketsCount returns the number of outstanding Handshake handshake-flow packets.
func (o *OutstandingPackets) HandshakePacketsCount() uint64 { return o.handshakePacketsCount }

// ClonedPacketsCount returns the number of outstanding cloned packets.
func (o *OutstandingPackets) ClonedPacketsCount() uint64 { return o.clonedPacketsCount }

// AddPacketEvent registers a pending packet event for a cloned send.
func (o *OutstandingPackets) AddPacketEvent(ev protocol.PacketEvent) {
	if o.packetEvents == nil {
		o.packetEvents = make(map[protocol.PacketEvent]struct{})
	}
	o.packetEvents[ev] = struct{}{}
}

// HasPacketEvent says if the event is still pending.
func (o *OutstandingPackets) HasPacketEvent(ev protocol.PacketEvent) bool {
	_, ok := o.packetEvents[ev]
	return ok
}

// RemovePacketEvent resolves a pending packet event.
func (o *OutstandingPackets) RemovePacketEvent(ev protocol.PacketEvent) {
	delete(o.packetEvents, ev)
}

// lastIndexInSpace returns the index of the highest outstanding packet in the
// given space, or -1 if the space has no outstanding packets.
func (o *OutstandingPackets) lastIndexInSpace(space protocol.PacketNumberSpace) int {
	for i := len(o.packets) - 1; i >= 0; i-- {
		if o.packets[i].PacketNumberSpace == space {
			return i
		}
	}
	return -1
}

// searchLE returns the largest index in [0, hi] holding a packet with number
// <= pn, or -1 if every packet in that range is numbered above pn.
// The range is scanned by binary search, relying on the ascending order of
// the store.
func (o *OutstandingPackets) searchLE(hi int, pn protocol.PacketNumber) int {
	j := sort.Search(hi+1, func(i int) bool { return o.packets[i].PacketNumber > pn })
	return j - 1
}

// eraseRange removes the packets in [from, to), shifting the remaining
// packets left. Removal never reorders the remaining elements.
func (o *OutstandingPackets) eraseRange(from, to int) {
	if from >= to {
		return
	}
	n := copy(o.packets[from:], o.packets[to:])
	tail := o.packets[from+n:]
	for i := range tail {
		tail[i] = nil
	}
	o.packets = o.packets[:from+n]
}

// subtractCounts updates the counters after an ack or loss processing pass.
// Counter underflow or a store smaller than its counted subsets indicates
// corrupted accounting and aborts.
func (o *OutstandingPackets) subtractCounts(initial, handshake, cloned uint64) {
	if o.initialPacketsCount < initial {
		panic(fmt.Sprintf("OutstandingPackets: initial packet count underflow (%d < %d)", o.initialPacketsCount, initial))
	}
	o.initialPacketsCount -= initial
	if o.handshakePacketsCount < handshake {
		panic(fmt.Sprintf("OutstandingPackets: handshake packet count underflow (%d < %d)", o.handshakePacketsCount, handshake))
	}
	o.handshakePacketsCount -= handshake
	if o.clonedPacketsCount < cloned {
		panic(fmt.Sprintf("OutstandingPackets: cloned packet count underflow (%d < %d)", o.clonedPacketsCount, cloned))
	}
	o.clonedPacketsCount -= cloned
	size := uint64(len(o.packets))
	if size < o.initialPacketsCount+o.handshakePacketsCount {
		panic(fmt.Sprintf("OutstandingPackets: store size %d below handshake-flow counts %d+%d", size, o.initialPacketsCount, o.handshakePacketsCount))
	}
	if size < o.clonedPacketsCount {
		panic(fmt.Sprintf("OutstandingPackets: store size %d below cloned count %d", size, o.clonedPacketsCount))
	}
}
