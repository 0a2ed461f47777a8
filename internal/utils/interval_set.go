package utils

import (
	"sort"

	"github.com/yjfxfjch/mvfst/internal/protocol"
)

// A PacketInterval is an inclusive range of packet numbers.
type PacketInterval struct {
	Start protocol.PacketNumber
	End   protocol.PacketNumber
}

// An IntervalSet is an ordered set of disjoint packet number intervals.
// Inserting merges adjacent and overlapping intervals, withdrawing splits
// them. The zero value is an empty set ready for use.
type IntervalSet struct {
	intervals []PacketInterval
}

// Insert adds the inclusive interval [start, end] to the set.
func (s *IntervalSet) Insert(start, end protocol.PacketNumber) {
	if start > end {
		panic("IntervalSet: invalid interval")
	}
	// the leftmost interval that overlaps or is adjacent
	i := sort.Search(len(s.intervals), func(i int) bool { return s.intervals[i].End >= start-1 })
	// one past the rightmost interval that overlaps or is adjacent
	j := sort.Search(len(s.intervals), func(i int) bool { return s.intervals[i].Start > end+1 })
	if i == j {
		s.intervals = append(s.intervals, PacketInterval{})
		copy(s.intervals[i+1:], s.intervals[i:])
		s.intervals[i] = PacketInterval{Start: start, End: end}
		return
	}
	merged := PacketInterval{
		Start: MinPacketNumber(start, s.intervals[i].Start),
		End:   MaxPacketNumber(end, s.intervals[j-1].End),
	}
	s.intervals[i] = merged
	s.intervals = append(s.intervals[:i+1], s.intervals[j:]...)
}

// Withdraw removes the inclusive interval [start, end] from the set.
// Withdrawing packet numbers that are not in the set is a no-op.
func (s *IntervalSet) Withdraw(start, end protocol.PacketNumber) {
	if start > end {
		panic("IntervalSet: invalid interval")
	}
	i := sort.Search(len(s.intervals), func(i int) bool { return s.intervals[i].End >= start })
	if i == len(s.intervals) {
		return
	}
	out := make([]PacketInterval, 0, len(s.intervals)+1)
	out = append(out, s.intervals[:i]...)
	for k := i; k < len(s.intervals); k++ {
		iv := s.intervals[k]
		if iv.Start > end {
			out = append(out, s.intervals[k:]...)
			break
		}
		if iv.Start < start {
			out = append(out, PacketInterval{Start: iv.Start, End: start - 1})
		}
		if iv.End > end {
			out = append(out, PacketInterval{Start: end + 1, End: iv.End})
		}
	}
	s.intervals = out
}

// Contains says if the given packet number is covered by the set.
func (s *IntervalSet) Contains(p protocol.PacketNumber) bool {
	i := sort.Search(len(s.intervals), func(i int) bool { return s.intervals[i].End >= p })
	return i < len(s.intervals) && s.intervals[i].Start <= p
}

// Empty says if the set contains no packet numbers.
func (s *IntervalSet) Empty() bool { return len(s.intervals) == 0 }

// Len returns the number of disjoint intervals in the set.
func (s *IntervalSet) Len() int { return len(s.intervals) }

// Intervals returns the intervals of the set, ordered ascending.
// The returned slice is owned by the set and must not be modified.
func (s *IntervalSet) Intervals() []PacketInterval { return s.intervals }

// Min returns the smallest packet number in the set.
// It must not be called on an empty set.
func (s *IntervalSet) Min() protocol.PacketNumber {
	if s.Empty() {
		panic("IntervalSet: Min called on empty set")
	}
	return s.intervals[0].Start
}

// Max returns the largest packet number in the set.
// It must not be called on an empty set.
func (s *IntervalSet) Max() protocol.PacketNumber {
	if s.Empty() {
		panic("IntervalSet: Max called on empty set")
	}
	return s.intervals[len(s.intervals)-1].End
}
