package recorder

import (
	"io"
	"sync"

	"github.com/goccy/go-json"
	"github.com/roadrunner-server/errors"
	"github.com/roadrunner-server/logquery/invocation"
)

// Matcher selects recorded invocations. String renders what the matcher looks for
// and is used verbatim in verification failures.
type Matcher interface {
	Match(r invocation.Record) bool
	String() string
}

// Recorder is the recorded-invocation store. It is safe for concurrent writers.
type Recorder struct {
	mu      sync.RWMutex
	records []invocation.Record
	hooks   []func(invocation.Record)
}

func New() *Recorder {
	return &Recorder{}
}

func (r *Recorder) add(rec invocation.Record) {
	r.mu.Lock()
	r.records = append(r.records, rec)
	hooks := r.hooks
	r.mu.Unlock()

	for _, h := range hooks {
		h(rec)
	}
}

// OnRecord registers a hook called after every recorded invocation. Hooks run on
// the logging goroutine, outside the store lock.
func (r *Recorder) OnRecord(hook func(invocation.Record)) {
	r.mu.Lock()
	// copy so add can iterate the old slice without the lock
	hooks := make([]func(invocation.Record), len(r.hooks), len(r.hooks)+1)
	copy(hooks, r.hooks)
	r.hooks = append(hooks, hook)
	r.mu.Unlock()
}

// All returns a snapshot of the recorded invocations in call order.
func (r *Recorder) All() []invocation.Record {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ret := make([]invocation.Record, len(r.records))
	copy(ret, r.records)
	return ret
}

func (r *Recorder) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.records)
}

// Reset drops the recorded history. Hooks are kept.
func (r *Recorder) Reset() {
	r.mu.Lock()
	r.records = nil
	r.mu.Unlock()
}

// Count returns how many recorded invocations satisfy m.
func (r *Recorder) Count(m Matcher) int {
	return count(r.All(), m)
}

// Verify checks that the number of invocations matched by m satisfies times.
// The history is read once, so concurrent writers cannot change the outcome
// halfway through.
func (r *Recorder) Verify(m Matcher, times Times, failMessage string) error {
	return verify(r.All(), m, times, failMessage)
}

// Category returns a view restricted to invocations made by the named logger.
func (r *Recorder) Category(name string) *View {
	return &View{rec: r, name: name}
}

// WriteJSON writes the recorded history as JSON lines.
func (r *Recorder) WriteJSON(w io.Writer) error {
	const op = errors.Op("recorder_write_json")

	enc := json.NewEncoder(w)
	for _, rec := range r.All() {
		if err := enc.Encode(rec); err != nil {
			return errors.E(op, err)
		}
	}

	return nil
}

func count(records []invocation.Record, m Matcher) int {
	n := 0
	for i := range records {
		if m.Match(records[i]) {
			n++
		}
	}
	return n
}

func verify(records []invocation.Record, m Matcher, times Times, failMessage string) error {
	n := count(records, m)
	if times.Validate(n) {
		return nil
	}

	return &VerificationError{
		FailMessage: failMessage,
		Expected:    times,
		Actual:      n,
		Expression:  m.String(),
		Performed:   records,
	}
}

// View is the part of a Recorder's history made by one named logger.
type View struct {
	rec  *Recorder
	name string
}

func (v *View) All() []invocation.Record {
	all := v.rec.All()
	ret := all[:0]
	for i := range all {
		if all[i].Logger == v.name {
			ret = append(ret, all[i])
		}
	}
	return ret
}

func (v *View) Count(m Matcher) int {
	return count(v.All(), m)
}

func (v *View) Verify(m Matcher, times Times, failMessage string) error {
	return verify(v.All(), m, times, failMessage)
}
