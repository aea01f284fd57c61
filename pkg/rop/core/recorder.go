package core

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

type Event string

const (
	EventApplied   Event = "applied"
	EventSkipped   Event = "skipped"
	EventRecovered Event = "recovered"
	EventFailed    Event = "failed"
)

// StepRecord is the journal entry for one step pulled by the locomotive.
type StepRecord struct {
	Index     int
	Kind      Kind
	Node      uuid.UUID
	Event     Event
	StartedAt time.Time
	Duration  time.Duration
	Err       error
}

// Recorder journals the steps of the runs it is attached to. It may be shared
// by concurrent runs; records are appended in arrival order.
type Recorder struct {
	mu      sync.Mutex
	records []StepRecord
}

func NewRecorder() *Recorder {
	return &Recorder{}
}

// Records returns a copy of the journal.
func (r *Recorder) Records() []StepRecord {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]StepRecord, len(r.records))
	copy(out, r.records)
	return out
}

// Events returns the event of every record, in order.
func (r *Recorder) Events() []Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Event, len(r.records))
	for i, rec := range r.records {
		out[i] = rec.Event
	}
	return out
}

func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.records = nil
}

func (r *Recorder) add(rec StepRecord) {
	if r == nil {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.records = append(r.records, rec)
}
