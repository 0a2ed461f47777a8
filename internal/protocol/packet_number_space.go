package protocol

// A PacketNumberSpace is the QUIC packet number space.
// Packet numbers are only comparable within the same space.
type PacketNumberSpace uint8

const (
	// PacketNumberSpaceInitial is the packet number space for Initial packets
	PacketNumberSpaceInitial PacketNumberSpace = iota
	// PacketNumberSpaceHandshake is the packet number space for Handshake packets
	PacketNumberSpaceHandshake
	// PacketNumberSpaceAppData is the packet number space for application data
	PacketNumberSpaceAppData
)

func (s PacketNumberSpace) String() string {
	switch s {
	case PacketNumberSpaceInitial:
		return "Initial"
	case PacketNumberSpaceHandshake:
		return "Handshake"
	case PacketNumberSpaceAppData:
		return "AppData"
	default:
		return "unknown"
	}
}
