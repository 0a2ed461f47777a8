// Package qlog records loss recovery and congestion events in qlog format.
package qlog

import (
	"bytes"
	"fmt"
	"io"
	"log"
	"sync"
	"time"

	"github.com/francoispqt/gojay"

	"github.com/yjfxfjch/mvfst/internal/protocol"
	"github.com/yjfxfjch/mvfst/internal/utils"
	"github.com/yjfxfjch/mvfst/logging"
)

const eventChanSize = 50

type connectionTracer struct {
	mutex sync.Mutex

	w             io.WriteCloser
	referenceTime time.Time

	suffix     []byte
	events     chan event
	encodeErr  error
	runStopped chan struct{}
}

var _ logging.ConnectionTracer = &connectionTracer{}

// NewConnectionTracer creates a new tracer to record a qlog.
func NewConnectionTracer(w io.WriteCloser) logging.ConnectionTracer {
	t := &connectionTracer{
		w:             w,
		runStopped:    make(chan struct{}),
		events:        make(chan event, eventChanSize),
		referenceTime: time.Now(),
	}
	go t.run()
	return t
}

func (t *connectionTracer) run() {
	defer close(t.runStopped)
	buf := &bytes.Buffer{}
	enc := gojay.NewEncoder(buf)
	if err := enc.Encode(topLevel{trace: trace{
		CommonFields: commonFields{ReferenceTime: t.referenceTime},
	}}); err != nil {
		panic(fmt.Sprintf("qlog encoding into a bytes.Buffer failed: %s", err))
	}
	data := buf.Bytes()
	// The header ends with the closing brackets of the (still empty) events
	// array. Strip them off, stream the events, and append them on export.
	t.suffix = data[buf.Len()-3:]
	if _, err := t.w.Write(data[:buf.Len()-3]); err != nil {
		t.encodeErr = err
	}
	enc = gojay.NewEncoder(t.w)
	isFirst := true
	for ev := range t.events {
		if t.encodeErr != nil { // if encoding failed, just continue draining the event channel
			continue
		}
		if !isFirst {
			t.w.Write([]byte(","))
		}
		if err := enc.Encode(ev); err != nil {
			t.encodeErr = err
		}
		isFirst = false
	}
}

func (t *connectionTracer) Close() {
	if err := t.export(); err != nil {
		log.Printf("exporting qlog failed: %s\n", err)
	}
}

func (t *connectionTracer) export() error {
	close(t.events)
	<-t.runStopped
	if t.encodeErr != nil {
		return t.encodeErr
	}
	if _, err := t.w.Write(t.suffix); err != nil {
		return err
	}
	return t.w.Close()
}

func (t *connectionTracer) recordEvent(eventTime time.Time, details eventDetails) {
	t.events <- event{
		RelativeTime: eventTime.Sub(t.referenceTime),
		eventDetails: details,
	}
}

func (t *connectionTracer) UpdatedMetrics(rttStats *utils.RTTStats, totalBytesSent, totalBytesAcked protocol.ByteCount, packetsOutstanding int) {
	t.mutex.Lock()
	t.recordEvent(time.Now(), &eventMetricsUpdated{
		MinRTT:             rttStats.MinRTT(),
		SmoothedRTT:        rttStats.SmoothedRTT(),
		LatestRTT:          rttStats.LatestRTT(),
		RTTVariance:        rttStats.MeanDeviation(),
		TotalBytesSent:     totalBytesSent,
		TotalBytesAcked:    totalBytesAcked,
		PacketsOutstanding: packetsOutstanding,
	})
	t.mutex.Unlock()
}

func (t *connectionTracer) LostPacket(space protocol.PacketNumberSpace, pn protocol.PacketNumber, reason logging.PacketLossReason) {
	t.mutex.Lock()
	t.recordEvent(time.Now(), &eventPacketLost{
		Space:        space,
		PacketNumber: pn,
		Trigger:      lossTrigger(reason),
	})
	t.mutex.Unlock()
}

func (t *connectionTracer) PersistentCongestion(space protocol.PacketNumberSpace, numLostPackets int) {
	t.mutex.Lock()
	t.recordEvent(time.Now(), &eventPersistentCongestion{
		Space:          space,
		NumLostPackets: numLostPackets,
	})
	t.mutex.Unlock()
}
