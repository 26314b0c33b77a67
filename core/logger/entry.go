package logger

// LogEntry is a single line of the event log. Exactly one of the event fields
// is set.
type LogEntry struct {
	TimestampMicros int64  `json:"timestamp_micros"`
	SessionID       string `json:"session_id,omitempty"`

	SessionStart *SessionStart `json:"session_start,omitempty"`
	Dispatch     *Dispatch     `json:"dispatch,omitempty"`
	SessionEnd   *SessionEnd   `json:"session_end,omitempty"`
}

// LogType is implemented by every event that can be stored in a LogEntry.
type LogType interface {
	setOn(le *LogEntry)
}

// GetLogType returns the event held by the entry or nil if it holds none.
func (le *LogEntry) GetLogType() LogType {
	switch {
	case le.SessionStart != nil:
		return le.SessionStart
	case le.Dispatch != nil:
		return le.Dispatch
	case le.SessionEnd != nil:
		return le.SessionEnd
	default:
		return nil
	}
}

// SessionStart is logged when the interpreter begins reading input.
type SessionStart struct {
	// Mode is "interactive", "batch" or "command".
	Mode    string `json:"mode"`
	Workdir string `json:"workdir"`
	Pid     int    `json:"pid"`
}

func (e *SessionStart) setOn(le *LogEntry) { le.SessionStart = e }

// Dispatch is logged once for every non-blank line.
type Dispatch struct {
	Line   string   `json:"line"`
	Tokens []string `json:"tokens,omitempty"`
	// Route is the path the line took: builtin, exec, redirect or pipeline.
	// It is empty when the line failed before a route was chosen.
	Route          string   `json:"route,omitempty"`
	ResolvedPaths  []string `json:"resolved_paths,omitempty"`
	Status         string   `json:"status"`
	ErrorKind      string   `json:"error_kind,omitempty"`
	Error          string   `json:"error,omitempty"`
	DurationMicros int64    `json:"duration_micros"`
}

func (e *Dispatch) setOn(le *LogEntry) { le.Dispatch = e }

// SessionEnd is logged when the interpreter stops reading input.
type SessionEnd struct {
	ExitCode   int `json:"exit_code"`
	Dispatches int `json:"dispatches"`
}

func (e *SessionEnd) setOn(le *LogEntry) { le.SessionEnd = e }
