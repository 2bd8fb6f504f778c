package anonymize

import "fmt"

// Job is the configuration for a single run over one directory.
type Job struct {
	Directory string
	Algorithm Algorithm
	Prefix    string
	DryRun    bool

	// Tracker is notified once per regular file. Optional.
	Tracker Tracker
}

// Logger receives one record per event. *logging.Logger satisfies it.
type Logger interface {
	Info(format string, args ...any)
	Warn(format string, args ...any)
	Error(format string, args ...any)
}

// Status is the terminal state of one directory entry.
type Status int

const (
	StatusRenamed Status = iota
	StatusPreviewed
	StatusSkipped
	StatusFailed
)

func (s Status) String() string {
	switch s {
	case StatusRenamed:
		return "renamed"
	case StatusPreviewed:
		return "previewed"
	case StatusSkipped:
		return "skipped"
	case StatusFailed:
		return "failed"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// FileOutcome records what happened to one directory entry.
type FileOutcome struct {
	Name    string
	NewName string
	Status  Status
	Reason  string // set for skipped entries
	Err     error  // set for failed entries
}

// Report collects outcomes in processing order.
type Report struct {
	Directory string
	DryRun    bool
	Outcomes  []FileOutcome
}

// Counts tallies outcomes by status.
type Counts struct {
	Renamed   int
	Previewed int
	Skipped   int
	Failed    int
}

// Total is the number of entries visited.
func (c Counts) Total() int {
	return c.Renamed + c.Previewed + c.Skipped + c.Failed
}

func (c Counts) String() string {
	return fmt.Sprintf("processed %d entries: %d renamed, %d previewed, %d skipped, %d failed",
		c.Total(), c.Renamed, c.Previewed, c.Skipped, c.Failed)
}

// Counts tallies the report.
func (r *Report) Counts() Counts {
	var c Counts
	for _, o := range r.Outcomes {
		switch o.Status {
		case StatusRenamed:
			c.Renamed++
		case StatusPreviewed:
			c.Previewed++
		case StatusSkipped:
			c.Skipped++
		case StatusFailed:
			c.Failed++
		}
	}
	return c
}

// Failures returns the failed outcomes.
func (r *Report) Failures() []FileOutcome {
	var failed []FileOutcome
	for _, o := range r.Outcomes {
		if o.Status == StatusFailed {
			failed = append(failed, o)
		}
	}
	return failed
}

func (r *Report) add(o FileOutcome) {
	r.Outcomes = append(r.Outcomes, o)
}
