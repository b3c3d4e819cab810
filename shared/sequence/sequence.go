// Package sequence runs per-actor timed task sequences. A Runner holds at most
// one sequence; starting another cancels the one in flight. Runners are advanced
// once per tick by the owning simulation and never block.
package sequence

type stepKind int

const (
	stepWait stepKind = iota
	stepUntil
	stepDo
)

// Step is one element of a sequence: a timed wait, a predicate wait, or a
// mutation that runs between waits.
type Step struct {
	kind     stepKind
	duration float64
	until    func() bool
	do       func()
}

// Wait suspends the sequence for the given number of seconds.
func Wait(seconds float64) Step {
	return Step{kind: stepWait, duration: seconds}
}

// Until suspends the sequence until pred reports true. The predicate is polled
// once per Advance while the step is current.
func Until(pred func() bool) Step {
	return Step{kind: stepUntil, until: pred}
}

// Do runs fn and moves straight on to the next step.
func Do(fn func()) Step {
	return Step{kind: stepDo, do: fn}
}

// Stats counts runner lifecycle events.
type Stats struct {
	Started   int
	Cancelled int
	Completed int
}

// Runner executes a single cancellable sequence.
type Runner struct {
	name      string
	steps     []Step
	pos       int
	remaining float64
	waiting   bool
	gen       uint64
	stats     Stats
}

// Start cancels any running sequence and begins a new one. It reports whether a
// previous sequence was cancelled.
func (r *Runner) Start(name string, steps ...Step) bool {
	cancelled := r.Stop()
	r.gen++
	r.name = name
	r.steps = steps
	r.pos = 0
	r.waiting = false
	r.remaining = 0
	r.stats.Started++
	if len(steps) == 0 {
		r.finish()
	}
	return cancelled
}

// Stop cancels the running sequence, if any. No pending step runs afterward.
func (r *Runner) Stop() bool {
	if !r.IsRunning() {
		return false
	}
	r.gen++
	r.steps = nil
	r.pos = 0
	r.waiting = false
	r.stats.Cancelled++
	return true
}

// IsRunning reports whether a sequence is in flight.
func (r *Runner) IsRunning() bool {
	return r.steps != nil
}

// Name returns the name of the running sequence, or "" when idle.
func (r *Runner) Name() string {
	if !r.IsRunning() {
		return ""
	}
	return r.name
}

// Stats returns a copy of the lifecycle counters.
func (r *Runner) Stats() Stats {
	return r.stats
}

// Advance moves the sequence forward by dt seconds. Time left over from a
// finished wait carries into the following waits of the same call. A step that
// starts or stops this runner ends the call immediately.
func (r *Runner) Advance(dt float64) {
	budget := dt
	gen := r.gen

	for r.IsRunning() && r.pos < len(r.steps) {
		step := r.steps[r.pos]
		switch step.kind {
		case stepDo:
			if step.do != nil {
				step.do()
			}
			if r.gen != gen {
				return
			}
			r.pos++

		case stepWait:
			if !r.waiting {
				r.waiting = true
				r.remaining = step.duration
			}
			if r.remaining > budget {
				r.remaining -= budget
				return
			}
			budget -= r.remaining
			r.remaining = 0
			r.waiting = false
			r.pos++

		case stepUntil:
			ok := step.until == nil || step.until()
			if r.gen != gen || !ok {
				return
			}
			r.pos++
		}
	}

	if r.IsRunning() && r.pos >= len(r.steps) {
		r.finish()
	}
}

func (r *Runner) finish() {
	r.steps = nil
	r.pos = 0
	r.waiting = false
	r.stats.Completed++
}
