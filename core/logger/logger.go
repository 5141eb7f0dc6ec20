package logger

import (
	"encoding/json"
	"fmt"
	"io"
	"math/rand"
	"time"
)

// Event is one loggable interpreter occurrence. Exactly one of the typed
// fields is set per event.
type Event struct {
	// TimestampMicros is the event time in microseconds since the epoch.
	TimestampMicros int64  `json:"timestamp_micros"`
	SessionID       string `json:"session_id,omitempty"`

	RunCommand *RunCommand `json:"run_command,omitempty"`
	Builtin    *Builtin    `json:"builtin,omitempty"`
	ReadFault  *ReadFault  `json:"read_fault,omitempty"`
}

// RunCommand records an external program invocation. Error is set when the
// child could not be started.
type RunCommand struct {
	Command []string `json:"command"`
	Error   string   `json:"error,omitempty"`
}

// Builtin records a command handled in-process.
type Builtin struct {
	Name string `json:"name"`
}

// ReadFault records a line reader failure that ended the loop.
type ReadFault struct {
	Error string `json:"error"`
}

// Recorder is a callback that stores events in an external datastore.
type Recorder func(e *Event) error

// Logger captures interaction events to show how the shell is being used.
type Logger struct {
	Record Recorder

	// now overrides the time source in tests.
	now func() time.Time
}

// NewJSONLinesRecorder creates a Logger that exports events in newline
// delimited JSON object format.
func NewJSONLinesRecorder(w io.Writer) *Logger {
	return &Logger{
		Record: func(e *Event) error {
			entry, err := json.Marshal(e)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(w, string(entry))
			return err
		},
	}
}

// NewNopRecorder creates a Logger that discards every event.
func NewNopRecorder() *Logger {
	return &Logger{
		Record: func(e *Event) error { return nil },
	}
}

func (l *Logger) timeNow() time.Time {
	if l.now != nil {
		return l.now()
	}
	return time.Now()
}

// NewSession creates a logger with attached session ID.
func (l *Logger) NewSession() *SessionLogger {
	return &SessionLogger{Logger: l, sessionID: fmt.Sprintf("%d", rand.Uint64())}
}

// Sessionless creates a logger without a session ID.
func (l *Logger) Sessionless() *SessionLogger {
	return &SessionLogger{Logger: l}
}

// SessionLogger logs events with a shared session ID.
type SessionLogger struct {
	*Logger
	sessionID string
}

// Record stamps the event with the session ID and time, then stores it.
func (l *SessionLogger) Record(e *Event) error {
	e.TimestampMicros = l.timeNow().UnixNano() / int64(time.Microsecond)
	e.SessionID = l.sessionID

	return l.Logger.Record(e)
}
