package ackhandler

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/yjfxfjch/mvfst/internal/protocol"
	"github.com/yjfxfjch/mvfst/internal/utils"
	"github.com/yjfxfjch/mvfst/internal/wire"
)

func TestAckStateReceivedPacket(t *testing.T) {
	var s AckState
	s.LargestReceivedPacketNum = protocol.InvalidPacketNumber

	s.ReceivedPacket(5)
	s.ReceivedPacket(6)
	s.ReceivedPacket(10)
	require.Equal(t, protocol.PacketNumber(10), s.LargestReceivedPacketNum)
	require.Equal(t, []utils.PacketInterval{
		{Start: 5, End: 6},
		{Start: 10, End: 10},
	}, s.Acks.Intervals())

	// reordered arrival doesn't regress the largest received
	s.ReceivedPacket(7)
	require.Equal(t, protocol.PacketNumber(10), s.LargestReceivedPacketNum)
	require.Equal(t, []utils.PacketInterval{
		{Start: 5, End: 7},
		{Start: 10, End: 10},
	}, s.Acks.Intervals())
}

func TestCommonAckVisitorWithdrawsAckedBlocks(t *testing.T) {
	var s AckState
	s.Acks.Insert(0, 5)
	s.Acks.Insert(8, 9)

	CommonAckVisitorForAckFrame(&s, &wire.WriteAckFrame{AckBlocks: []wire.AckBlock{
		{Start: 8, End: 9},
		{Start: 2, End: 4},
	}})
	require.Equal(t, []utils.PacketInterval{
		{Start: 0, End: 1},
		{Start: 5, End: 5},
	}, s.Acks.Intervals())
}

func TestCommonAckVisitorIsIdempotent(t *testing.T) {
	var s AckState
	s.Acks.Insert(0, 9)
	frame := &wire.WriteAckFrame{AckBlocks: []wire.AckBlock{{Start: 3, End: 5}}}
	CommonAckVisitorForAckFrame(&s, frame)
	CommonAckVisitorForAckFrame(&s, frame)
	require.Equal(t, []utils.PacketInterval{
		{Start: 0, End: 2},
		{Start: 6, End: 9},
	}, s.Acks.Intervals())
}

func TestCommonAckVisitorPurgesOldIntervals(t *testing.T) {
	var s AckState
	s.Acks.Insert(0, 2)
	s.Acks.Insert(5, 30)

	// largest acked 25: everything at or below 25 - 10 goes, even the
	// interval [0, 2] the peer never acked
	CommonAckVisitorForAckFrame(&s, &wire.WriteAckFrame{AckBlocks: []wire.AckBlock{
		{Start: 20, End: 25},
	}})
	require.Equal(t, []utils.PacketInterval{
		{Start: 16, End: 19},
		{Start: 26, End: 30},
	}, s.Acks.Intervals())
}

func TestCommonAckVisitorNoPurgeBelowThreshold(t *testing.T) {
	var s AckState
	s.Acks.Insert(0, 9)

	CommonAckVisitorForAckFrame(&s, &wire.WriteAckFrame{AckBlocks: []wire.AckBlock{
		{Start: 8, End: 9},
	}})
	require.Equal(t, []utils.PacketInterval{{Start: 0, End: 7}}, s.Acks.Intervals())
}

func TestCommonAckVisitorEmptyFrame(t *testing.T) {
	var s AckState
	s.Acks.Insert(0, 9)
	CommonAckVisitorForAckFrame(&s, &wire.WriteAckFrame{})
	require.Equal(t, []utils.PacketInterval{{Start: 0, End: 9}}, s.Acks.Intervals())
}
