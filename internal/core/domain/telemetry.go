package domain

// LogLevel represents the severity of a log message, mirroring the standard slog levels.
type LogLevel int

const (
	// LogLevelDebug represents debug-level verbosity.
	LogLevelDebug LogLevel = -4
	// LogLevelInfo represents informational verbosity.
	LogLevelInfo LogLevel = 0
	// LogLevelWarn represents warning verbosity.
	LogLevelWarn LogLevel = 4
	// LogLevelError represents error verbosity.
	LogLevelError LogLevel = 8
)

// String returns the string representation of the LogLevel.
func (l LogLevel) String() string {
	switch l {
	case LogLevelDebug:
		return "DEBUG"
	case LogLevelInfo:
		return "INFO"
	case LogLevelWarn:
		return "WARN"
	case LogLevelError:
		return "ERROR"
	default:
		return "INFO"
	}
}

// StepStatus is the final state of a recorded unit of work.
type StepStatus string

const (
	// StepRunning is a step that was started but never finished.
	StepRunning StepStatus = "running"
	// StepDone is a step that finished and produced output.
	StepDone StepStatus = "done"
	// StepCached is a step satisfied by an existing output.
	StepCached StepStatus = "cached"
	// StepFailed is a step that finished with an error.
	StepFailed StepStatus = "failed"
)

// Step is a recorded unit of work as read back after a run.
type Step struct {
	Name   string
	Status StepStatus
	Err    string
}
