package logger

import (
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
)

// Report holds statistics about the logged events.
type Report struct {
	LogEntries     int        `json:"log_entries"`
	InvalidEntries StrCounter `json:"unknown_log_entries,omitempty"`

	Session  SessionReport  `json:"session_report"`
	Dispatch DispatchReport `json:"dispatch_report"`
}

func (r *Report) Update(le *LogEntry) {
	r.LogEntries++

	switch event := le.GetLogType().(type) {
	case *SessionStart:
		r.Session.updateStart(event)
	case *SessionEnd:
		r.Session.updateEnd(event)
	case *Dispatch:
		r.Dispatch.update(event)
	default:
		r.InvalidEntries.Increment(fmt.Sprintf("%T", event))
	}
}

type SessionReport struct {
	Count int `json:"count"`
	// Modes counts sessions by how input was supplied.
	Modes     StrCounter `json:"modes"`
	ExitCodes StrCounter `json:"exit_codes"`
}

func (r *SessionReport) updateStart(e *SessionStart) {
	r.Count++
	r.Modes.Increment(e.Mode)
}

func (r *SessionReport) updateEnd(e *SessionEnd) {
	r.ExitCodes.Increment(strconv.Itoa(e.ExitCode))
}

type DispatchReport struct {
	Count int `json:"count"`
	// Name of the command as typed
	CommandNames StrCounter `json:"command_names"`
	// Absolute paths programs resolved to
	ResolvedCommandPaths StrCounter `json:"resolved_command_paths"`
	Routes               StrCounter `json:"routes"`
	Statuses             StrCounter `json:"statuses"`
	ErrorKinds           StrCounter `json:"error_kinds"`

	Failures *PathCounter `json:"failures"`
}

func (r *DispatchReport) update(d *Dispatch) {
	if r.Failures == nil {
		r.Failures = NewPathCounter("command", "kind", "error")
	}

	r.Count++
	command := ""
	if len(d.Tokens) > 0 {
		command = d.Tokens[0]
		r.CommandNames.Increment(command)
	}
	for _, path := range d.ResolvedPaths {
		r.ResolvedCommandPaths.Increment(path)
	}
	if d.Route != "" {
		r.Routes.Increment(d.Route)
	}
	r.Statuses.Increment(d.Status)

	if d.ErrorKind != "" {
		r.ErrorKinds.Increment(d.ErrorKind)
		r.Failures.Increment(command, d.ErrorKind, d.Error)
	}
}

// StrCounter counts the number of strings seen.
type StrCounter struct {
	internal map[string]int
}

// Increment adds one to the given key.
func (s *StrCounter) Increment(toAdd string) {
	if s.internal == nil {
		s.internal = make(map[string]int)
	}

	s.internal[toAdd]++
}

// Get returns the count for key.
func (s *StrCounter) Get(key string) int {
	return s.internal[key]
}

// MarshalJSON implements custom JSON marshaler.
func (s StrCounter) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.internal)
}

func NewPathCounter(cols ...string) *PathCounter {
	return &PathCounter{
		cols:     cols,
		internal: make(map[string]int),
	}
}

// PathCounter counts tuples of strings, one per column.
type PathCounter struct {
	cols     []string
	internal map[string]int
}

// Increment adds one to the given key.
func (ctr *PathCounter) Increment(toAdd ...string) {
	if len(toAdd) != len(ctr.cols) {
		panic("wrong number of columns to add")
	}

	ctr.internal[toKey(toAdd...)]++
}

// Get returns the count for the tuple.
func (ctr *PathCounter) Get(vals ...string) int {
	return ctr.internal[toKey(vals...)]
}

// MarshalJSON implements custom JSON marshaler.
func (ctr *PathCounter) MarshalJSON() ([]byte, error) {
	type Count struct {
		Count  int               `json:"count"`
		Fields map[string]string `json:"event"`
		Path   string            `json:"-"`
	}

	out := []Count{}
	for k, v := range ctr.internal {
		count := Count{
			Count:  v,
			Path:   k,
			Fields: make(map[string]string),
		}

		splitPath := fromKey(k)
		for colNum, colVal := range ctr.cols {
			count.Fields[colVal] = splitPath[colNum]
		}

		out = append(out, count)
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Count == out[j].Count {
			return out[i].Path < out[j].Path
		}
		return out[i].Count > out[j].Count
	})

	return json.Marshal(out)
}

func toKey(vals ...string) string {
	key, _ := json.Marshal(vals)
	return string(key)
}

func fromKey(key string) (out []string) {
	json.Unmarshal([]byte(key), &out)
	return
}
