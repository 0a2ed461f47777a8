package qlog

import (
	"time"

	"github.com/francoispqt/gojay"
)

type topLevel struct {
	trace trace
}

func (l topLevel) IsNil() bool { return false }
func (l topLevel) MarshalJSONObject(enc *gojay.Encoder) {
	enc.StringKey("qlog_version", "draft-02")
	enc.StringKey("title", "mvfst qlog")
	enc.ObjectKey("trace", l.trace)
}

type commonFields struct {
	ReferenceTime time.Time
}

func (f commonFields) IsNil() bool { return false }
func (f commonFields) MarshalJSONObject(enc *gojay.Encoder) {
	enc.FloatKey("reference_time", float64(f.ReferenceTime.UnixNano())/1e6)
	enc.StringKey("time_format", "relative")
}

type trace struct {
	CommonFields commonFields
}

func (t trace) IsNil() bool { return false }
func (t trace) MarshalJSONObject(enc *gojay.Encoder) {
	enc.ObjectKey("common_fields", t.CommonFields)
	enc.ArrayKey("events", events{})
}

type events []event

func (e events) IsNil() bool { return e == nil }
func (e events) MarshalJSONArray(enc *gojay.Encoder) {
	for _, ev := range e {
		enc.Object(ev)
	}
}
