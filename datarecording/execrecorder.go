package datarecording

import (
	"os"
	"strings"
	"time"
)

// ExecTable is the table that holds the metadata of a run.
const ExecTable = "exec_info"

// ExecInfo is one property of a run.
type ExecInfo struct {
	Property string
	Value    string
}

// ExecRecorder records how and when a program was run next to the data it
// produced.
type ExecRecorder struct {
	recorder DataRecorder
	entries  []ExecInfo
}

// NewExecRecorder creates the exec_info table in the recorder.
func NewExecRecorder(recorder DataRecorder) *ExecRecorder {
	recorder.CreateTable(ExecTable, ExecInfo{})

	return &ExecRecorder{recorder: recorder}
}

// Start records the start time, command line and working directory.
func (e *ExecRecorder) Start() {
	e.Set("Start Time", now())
	e.Set("Command", strings.Join(os.Args, " "))

	wd, err := os.Getwd()
	if err == nil {
		e.Set("Working Directory", wd)
	}
}

// Set records an arbitrary property.
func (e *ExecRecorder) Set(property, value string) {
	e.entries = append(e.entries, ExecInfo{Property: property, Value: value})
}

// End records the end time and hands every entry to the recorder.
func (e *ExecRecorder) End() {
	e.Set("End Time", now())

	for _, entry := range e.entries {
		e.recorder.InsertData(ExecTable, entry)
	}

	e.entries = nil

	e.recorder.Flush()
}

func now() string {
	return time.Now().Format("2006-01-02 15:04:05.000000000")
}
