package invocation

import (
	"strconv"

	"go.uber.org/zap/zapcore"
)

// EventID identifies a logged event. Name is optional.
type EventID struct {
	ID   int
	Name string
}

var _ zapcore.ObjectMarshaler = EventID{}

// NewEventID returns an unnamed event id.
func NewEventID(id int) EventID {
	return EventID{ID: id}
}

// Equal compares ids only, two events with the same id and different names are equal.
func (e EventID) Equal(other EventID) bool {
	return e.ID == other.ID
}

func (e EventID) String() string {
	if e.Name == "" {
		return strconv.Itoa(e.ID)
	}
	return strconv.Itoa(e.ID) + "(" + e.Name + ")"
}

func (e EventID) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	enc.AddInt("id", e.ID)
	if e.Name != "" {
		enc.AddString("name", e.Name)
	}
	return nil
}
