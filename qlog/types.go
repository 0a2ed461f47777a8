package qlog

import "github.com/yjfxfjch/mvfst/logging"

type category uint8

const (
	categoryRecovery category = iota
)

func (c category) String() string {
	switch c {
	case categoryRecovery:
		return "recovery"
	default:
		return "unknown category"
	}
}

func lossTrigger(reason logging.PacketLossReason) string {
	switch reason {
	case logging.PacketLossReorderingThreshold:
		return "reordering_threshold"
	case logging.PacketLossTimeThreshold:
		return "time_threshold"
	default:
		return "unknown"
	}
}
