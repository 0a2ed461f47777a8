package protocol

// A PacketNumber in QUIC
type PacketNumber int64

// InvalidPacketNumber is a packet number that is never used
const InvalidPacketNumber PacketNumber = -1

// A ByteCount in QUIC
type ByteCount int64

// A StreamID in QUIC
type StreamID int64

// MaxByteCount is the maximum value of a ByteCount
const MaxByteCount = ByteCount(1<<62 - 1)

// A PacketEvent identifies the original send that a cloned (probe or
// retransmission) packet duplicates. It is the packet number of that send.
type PacketEvent PacketNumber
