package protocol

import "time"

// AckPurgingThresh is the distance below the largest acked packet beyond
// which old received-packet intervals are purged unconditionally.
const AckPurgingThresh PacketNumber = 10

// DefaultRxPacketsBeforeAckAfterInit is used to size the acked-packets
// container of an ack event. It is a heuristic, other implementations may
// have a very different acking policy.
const DefaultRxPacketsBeforeAckAfterInit = 10

// PacketReorderingThreshold is the maximum reordering in packets before
// packet threshold loss detection considers a packet lost.
const PacketReorderingThreshold PacketNumber = 3

// TimeReorderingFraction is the maximum reordering in time space before time
// based loss detection considers a packet lost. Specified as an RTT multiplier.
const TimeReorderingFraction = 9.0 / 8

// PersistentCongestionThreshold is the number of PTOs a loss span has to
// exceed before it is declared a persistent congestion episode.
const PersistentCongestionThreshold = 3

// TimerGranularity is the granularity of loss and pacing timers.
const TimerGranularity = time.Millisecond

// DefaultMaxAckDelay is the maximum ack delay assumed for the peer if it
// didn't negotiate one.
const DefaultMaxAckDelay = 25 * time.Millisecond

// DefaultUDPSendPacketLen is the default maximum size of an outgoing UDP datagram.
const DefaultUDPSendPacketLen ByteCount = 1252

// DefaultWriteConnectionDataPacketsLimit is the default number of packets
// written back-to-back in a single burst.
const DefaultWriteConnectionDataPacketsLimit uint64 = 5

// DefaultMinCwndInMss is the congestion window floor, in maximum-segment-size units.
const DefaultMinCwndInMss uint64 = 2

// DefaultPacingTimerTickInterval is the smallest pacing interval the timer
// layer can schedule.
const DefaultPacingTimerTickInterval = time.Millisecond
