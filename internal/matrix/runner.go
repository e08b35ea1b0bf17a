package matrix

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"
)

// LoopState tracks where the driver loop is in its lifecycle.
type LoopState int32

const (
	StateIdle LoopState = iota
	StateRunning
	StateStopping
	StateStopped
)

func (s LoopState) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateRunning:
		return "running"
	case StateStopping:
		return "stopping"
	case StateStopped:
		return "stopped"
	}
	return "unknown"
}

// Status is the periodic observational report the loop emits.
type Status struct {
	Frame int
	Time  time.Time
	Shape string
}

// Runner drives the animation at a target interval until its context is
// canceled, then clears the screen. Frame pacing uses the monotonic clock;
// between frame checks the loop yields for a millisecond so it stays
// responsive to cancellation without sleeping a whole interval.
type Runner struct {
	mat         *Matrix
	interval    time.Duration
	statusEvery time.Duration
	statusFn    func(Status)
	state       atomic.Int32
}

func NewRunner(m *Matrix, interval time.Duration) *Runner {
	r := &Runner{
		mat:         m,
		interval:    interval,
		statusEvery: time.Second,
		statusFn: func(s Status) {
			fmt.Printf("\rFrame: %d | Time: %s | Shape: %s", s.Frame, s.Time.Format("15:04:05"), s.Shape)
		},
	}
	r.state.Store(int32(StateIdle))
	return r
}

// SetStatusFunc replaces the status sink. Full-screen backends draw the
// status themselves instead of printing to stdout. nil disables it.
func (r *Runner) SetStatusFunc(fn func(Status)) { r.statusFn = fn }

// SetStatusInterval changes how often the status line is emitted.
func (r *Runner) SetStatusInterval(d time.Duration) { r.statusEvery = d }

func (r *Runner) State() LoopState { return LoopState(r.state.Load()) }

// Run sets the initial shape and animates until ctx is canceled. The cancel
// path is the expected exit: cleanup always runs exactly once and Run
// returns nil. Only a bad initial shape is an error, reported before any
// frame is drawn.
func (r *Runner) Run(ctx context.Context, initialShape string) error {
	if err := r.mat.SetTargetShape(initialShape); err != nil {
		return err
	}
	r.mat.InitDisplay()
	r.state.Store(int32(StateRunning))
	defer func() {
		r.state.Store(int32(StateStopping))
		r.mat.Cleanup()
		r.state.Store(int32(StateStopped))
	}()

	frames := 0
	lastFrame := time.Now()
	lastStatus := time.Now()
	for {
		select {
		case <-ctx.Done():
			return nil
		default:
		}

		now := time.Now()
		if now.Sub(lastFrame) >= r.interval {
			r.mat.UpdateFrame()
			frames++
			lastFrame = now
		}
		if r.statusFn != nil && now.Sub(lastStatus) >= r.statusEvery {
			r.statusFn(Status{Frame: frames, Time: now, Shape: r.mat.Shape()})
			lastStatus = now
		}

		time.Sleep(time.Millisecond)
	}
}
