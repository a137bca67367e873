package progress

import (
	"fmt"
	"time"

	"shipctl/internal/cli/output"
)

// Steps reports a fixed sequence of named steps as they run. Deployment
// steps are strictly sequential, so there is no spinner or repaint logic;
// each step prints a start line and a completion line.
type Steps struct {
	verb      string
	startTime time.Time
	completed int
	failed    int
}

func NewSteps(verb string) *Steps {
	return &Steps{verb: verb, startTime: time.Now()}
}

func (s *Steps) Start(name string) {
	output.PrintStep(fmt.Sprintf("%s %s", s.verb, output.Bold(name)))
}

func (s *Steps) Complete(name string, err error) {
	if err != nil {
		s.failed++
		output.PrintError(fmt.Sprintf("%s failed", name))
		return
	}
	s.completed++
}

// Summary reports completed step count and elapsed time.
func (s *Steps) Summary() string {
	return fmt.Sprintf(
		"%d %s completed in %s",
		s.completed,
		output.Plural(s.completed, "step", "steps"),
		FormatDuration(time.Since(s.startTime)),
	)
}

// FormatDuration renders a duration with sensible precision for CLI output.
func FormatDuration(d time.Duration) string {
	if d < time.Second {
		return fmt.Sprintf("%dms", d.Milliseconds())
	}
	if d < time.Minute {
		return fmt.Sprintf("%.1fs", d.Seconds())
	}
	return fmt.Sprintf("%dm%ds", int(d.Minutes()), int(d.Seconds())%60)
}
