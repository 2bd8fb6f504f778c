package anonymize

import (
	"io"

	"github.com/schollz/progressbar/v3"
)

// Tracker follows progress through the regular files of a run.
type Tracker interface {
	Start(total int)
	Advance(name string)
	Finish()
}

type noopTracker struct{}

func (noopTracker) Start(int)      {}
func (noopTracker) Advance(string) {}
func (noopTracker) Finish()        {}

// progressTracker renders a progress bar to w
type progressTracker struct {
	w   io.Writer
	bar *progressbar.ProgressBar
}

// NewProgressTracker returns a Tracker drawing a progress bar on w.
func NewProgressTracker(w io.Writer) Tracker {
	return &progressTracker{w: w}
}

func (pt *progressTracker) Start(total int) {
	pt.bar = progressbar.NewOptions(total,
		progressbar.OptionSetWriter(pt.w),
		progressbar.OptionSetDescription("Anonymizing"),
		progressbar.OptionShowCount(),
		progressbar.OptionSetPredictTime(false),
		progressbar.OptionClearOnFinish(),
	)
}

func (pt *progressTracker) Advance(name string) {
	if pt.bar == nil {
		return
	}
	pt.bar.Describe(name)
	_ = pt.bar.Add(1)
}

func (pt *progressTracker) Finish() {
	if pt.bar == nil {
		return
	}
	_ = pt.bar.Finish()
}
