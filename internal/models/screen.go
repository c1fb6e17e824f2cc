package models

import "fmt"

// ScreenStatus enumerates presentation states of a home screen visit.
type ScreenStatus string

const (
	ScreenLoading ScreenStatus = "loading"
	ScreenReady   ScreenStatus = "ready"
	ScreenError   ScreenStatus = "error"
)

// Collections read from the remote data store.
const (
	CollectionClass  = "class"
	CollectionLesson = "lesson"
)

// RemoteReadFailure is the only failure kind surfaced by the teacher screen.
type RemoteReadFailure struct {
	Collection string `json:"collection"`
	Message    string `json:"message"`
	Err        error  `json:"-"`
}

// NewRemoteReadFailure wraps a read error, keeping its message verbatim.
func NewRemoteReadFailure(collection string, err error) *RemoteReadFailure {
	msg := ""
	if err != nil {
		msg = err.Error()
	}
	return &RemoteReadFailure{Collection: collection, Message: msg, Err: err}
}

func (e *RemoteReadFailure) Error() string {
	if e == nil {
		return "<nil>"
	}
	return fmt.Sprintf("read %s: %s", e.Collection, e.Message)
}

func (e *RemoteReadFailure) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ScreenState is the teacher screen's state. Exactly one of the variants is populated:
// loading carries nothing, ready carries both collections, error carries the failure.
type ScreenState struct {
	Status  ScreenStatus
	Classes []Class
	Lessons []DisplayLesson
	Failure *RemoteReadFailure
}

// Loading is the initial state of every screen visit.
func Loading() ScreenState {
	return ScreenState{Status: ScreenLoading}
}

// Ready holds a successful snapshot. Nil slices are normalised to empty ones.
func Ready(classes []Class, lessons []DisplayLesson) ScreenState {
	if classes == nil {
		classes = []Class{}
	}
	if lessons == nil {
		lessons = []DisplayLesson{}
	}
	return ScreenState{Status: ScreenReady, Classes: classes, Lessons: lessons}
}

// Failed holds a read failure and nothing else.
func Failed(failure *RemoteReadFailure) ScreenState {
	return ScreenState{Status: ScreenError, Failure: failure}
}
