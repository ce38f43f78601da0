package glide

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
)

// Record is one serialized reactor input. It holds only the Event; the
// time a replay sees is the event's own Now field. The format is explicitly not a
// stable interface, so this is JSON-lines rather than a versioned binary
// scheme: one JSON object per line.
type Record struct {
	Event Event
}

// Recorder appends Records to an io.Writer as they occur, one JSON object
// per line.
type Recorder struct {
	w io.Writer
	enc *json.Encoder
}

// NewRecorder wraps w for recording. The caller owns w's lifetime.
func NewRecorder(w io.Writer) *Recorder {
	return &Recorder{w: w, enc: json.NewEncoder(w)}
}

// Record appends one event to the trace.
func (r *Recorder) Record(evt Event) error {
	return r.enc.Encode(Record{Event: evt})
}

// Replayer reads back a sequence of Records previously written by a
// Recorder.
type Replayer struct {
	scan *bufio.Scanner
}

// NewReplayer wraps r for reading a previously recorded trace.
func NewReplayer(r io.Reader) *Replayer {
	scan := bufio.NewScanner(r)
	scan.Buffer(make([]byte, 0, 64*1024), 1<<20)
	return &Replayer{scan: scan}
}

// Next returns the next recorded Record, or io.EOF once the trace is
// exhausted.
func (p *Replayer) Next() (Record, error) {
	if !p.scan.Scan() {
		if err := p.scan.Err(); err != nil {
			return Record{}, err
		}
		return Record{}, io.EOF
	}
	var rec Record
	if err := json.Unmarshal(p.scan.Bytes(), &rec); err != nil {
		return Record{}, fmt.Errorf("glide: malformed trace record: %w", err)
	}
	return rec, nil
}

// ReplayAll feeds every Record in the trace into reactor's Handle method
// in order, constructing a deterministic request stream. It starts no goroutine; Handle is called
// directly and synchronously so replay is itself deterministic and
// doesn't depend on goroutine scheduling.
func ReplayAll(p *Replayer, reactor *Reactor) ([]Request, error) {
	var all []Request
	for {
		rec, err := p.Next()
		if err == io.EOF {
			return all, nil
		}
		if err != nil {
			return all, err
		}
		all = append(all, reactor.Handle(rec.Event)...)
	}
}
