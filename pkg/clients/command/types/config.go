package types

import "time"

type CommandConfig struct {
	Command          string
	Args             []string
	Env              []string
	WorkingDirectory string
	// Timeout overrides the default maximum run time of the client when set
	Timeout time.Duration
	// StreamOutput copies stdout and stderr to the log as the process writes them
	StreamOutput bool
}

// CommandResult holds the captured output of a process which ran to completion
// or was killed on timeout
type CommandResult struct {
	ID       string
	PID      int
	Stdout   string
	Stderr   string
	ExitCode int
	Duration time.Duration
}
