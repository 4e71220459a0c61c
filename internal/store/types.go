package store

import "time"

type Run struct {
	ID       int64
	Project  string
	RanAt    time.Time
	Bindings int
	Edges    int
	Errors   int
	Warnings int
}

type DiagnosticRecord struct {
	RunID      int64
	Pass       string
	Severity   string
	Key        string
	EntryPoint bool
	Message    string
}
