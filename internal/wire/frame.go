package wire

import "github.com/yjfxfjch/mvfst/internal/protocol"

// A Frame is a QUIC frame carried by a sent packet.
// Encoding and decoding belong to the codec layer, this package only models
// the frames the recovery core has to distinguish.
type Frame interface {
	isFrame()
}

// A PingFrame is a PING frame
type PingFrame struct{}

func (*PingFrame) isFrame() {}

// A StreamFrame carries stream data. Only the recovery-relevant attributes
// are modeled here.
type StreamFrame struct {
	StreamID protocol.StreamID
	Offset   protocol.ByteCount
	DataLen  protocol.ByteCount
	Fin      bool
}

func (*StreamFrame) isFrame() {}

func (*WriteAckFrame) isFrame() {}
