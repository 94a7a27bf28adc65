package analysis

import (
	"errors"
	"log/slog"
	"strings"
)

// FailureNotice is shown to the user when an upload fails for any reason.
const FailureNotice = "Backend not reachable. Ensure the analyzer is running."

// State is the analyze panel's position in the upload workflow.
type State int

const (
	StateIdle State = iota
	StateLoading
	StateDone
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateLoading:
		return "loading"
	case StateDone:
		return "done"
	default:
		return "unknown"
	}
}

var errEmptyResult = errors.New("analysis service returned no result")

// Workflow tracks one upload at a time: idle, loading, then either a result
// or a failure notice that sends it back to idle.
type Workflow struct {
	state  State
	file   string
	result *Result
	notice string
	err    error
}

// NewWorkflow returns an idle workflow.
func NewWorkflow() *Workflow {
	return &Workflow{}
}

// Start enters the loading state for file and drops any previous result.
// It refuses to start while another upload is in flight.
func (w *Workflow) Start(file string) bool {
	if w.state == StateLoading {
		return false
	}
	w.state = StateLoading
	w.file = strings.TrimSpace(file)
	w.result = nil
	w.notice = ""
	w.err = nil
	return true
}

// Complete stores the result of the in-flight upload.
func (w *Workflow) Complete(result *Result) {
	if w.state != StateLoading {
		slog.Warn("analysis_stale_completion", "state", w.state.String())
		return
	}
	if result == nil {
		w.Fail(errEmptyResult)
		return
	}
	w.state = StateDone
	w.result = result
}

// Fail ends the in-flight upload without a result and raises the notice.
func (w *Workflow) Fail(err error) {
	if w.state != StateLoading {
		slog.Warn("analysis_stale_failure", "state", w.state.String(), "error", err)
		return
	}
	slog.Error("analysis_failed", "file", w.file, "error", err)
	w.state = StateIdle
	w.result = nil
	w.err = err
	w.notice = FailureNotice
}

// Reset returns a finished workflow to idle ("Start Over").
func (w *Workflow) Reset() {
	if w.state == StateLoading {
		return
	}
	w.state = StateIdle
	w.file = ""
	w.result = nil
}

// TakeNotice returns the pending failure notice once.
func (w *Workflow) TakeNotice() (string, bool) {
	if w.notice == "" {
		return "", false
	}
	n := w.notice
	w.notice = ""
	return n, true
}

// State returns the current state.
func (w *Workflow) State() State { return w.state }

// Loading reports whether an upload is in flight.
func (w *Workflow) Loading() bool { return w.state == StateLoading }

// Result returns the last successful result, or nil.
func (w *Workflow) Result() *Result { return w.result }

// File returns the document being (or last) analyzed.
func (w *Workflow) File() string { return w.file }

// Err returns the error of the last failed upload.
func (w *Workflow) Err() error { return w.err }
