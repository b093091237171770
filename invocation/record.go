package invocation

import (
	"reflect"
	"strconv"
	"time"

	"github.com/goccy/go-json"
)

// Record is one captured log call.
type Record struct {
	Level   Level
	EventID EventID
	Message string
	// Err is nil when the call carried no error.
	Err error

	// Logger is the name of the logger that made the call, empty for the root logger.
	Logger string
	Time   time.Time
}

// String renders the record the way it reads in a verification failure.
func (r Record) String() string {
	errRepr := "nil"
	if msg, ok := errorText(r.Err); ok {
		errRepr = strconv.Quote(msg)
	}

	return "logger.Log(" + r.Level.String() + ", " + r.EventID.String() + ", " + strconv.Quote(r.Message) + ", " + errRepr + ")"
}

type jsonRecord struct {
	Time      time.Time `json:"time"`
	Logger    string    `json:"logger,omitempty"`
	Level     string    `json:"level"`
	EventID   int       `json:"event_id"`
	EventName string    `json:"event_name,omitempty"`
	Message   string    `json:"message"`
	Error     *string   `json:"error"`
}

func (r Record) MarshalJSON() ([]byte, error) {
	jr := jsonRecord{
		Time:      r.Time,
		Logger:    r.Logger,
		Level:     r.Level.String(),
		EventID:   r.EventID.ID,
		EventName: r.EventID.Name,
		Message:   r.Message,
	}

	if msg, ok := errorText(r.Err); ok {
		jr.Error = &msg
	}

	return json.Marshal(jr)
}

// errorText returns the message of err. A nil err, or a nil pointer stored in a
// non-nil error interface, has no message.
func errorText(err error) (string, bool) {
	if err == nil {
		return "", false
	}

	if v := reflect.ValueOf(err); v.Kind() == reflect.Pointer && v.IsNil() {
		return "", false
	}

	return err.Error(), true
}
