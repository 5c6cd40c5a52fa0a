// Package loop drives the frame cycle: event draining, timing, simulation
// steps, rendering and frame pacing.
package loop

import (
	"context"
	"os"
	"time"
)

type State int

const (
	Running State = iota
	Quit
)

func (s State) String() string {
	if s == Quit {
		return "quit"
	}
	return "running"
}

// Clock abstracts wall time so pacing can be tested.
type Clock interface {
	Now() time.Time
	Sleep(d time.Duration)
}

type SystemClock struct{}

func (SystemClock) Now() time.Time        { return time.Now() }
func (SystemClock) Sleep(d time.Duration) { time.Sleep(d) }

// Events drains every pending event and reports whether any of them asked
// the program to quit.
type Events interface {
	QuitRequested() bool
}

// SignalEvents turns OS signals delivered on C into quit events.
type SignalEvents struct {
	C <-chan os.Signal
}

func (s SignalEvents) QuitRequested() bool {
	quit := false
	for {
		select {
		case <-s.C:
			quit = true
		default:
			return quit
		}
	}
}

// Stepper advances the simulation by dt seconds.
type Stepper interface {
	Step(dt float32)
}

type Options struct {
	FPS int
	// SubSteps is the number of update and render passes per frame. The
	// first pass advances by the time since the previous frame, later passes
	// by zero.
	SubSteps int
	// Pace sleeps the remainder of the frame interval after every pass.
	Pace bool
	// Render is called after every update pass when set.
	Render func()
}

type Loop struct {
	world    Stepper
	events   Events
	clock    Clock
	render   func()
	interval time.Duration
	subSteps int
	pace     bool

	state  State
	last   time.Time
	frames int

	Paused bool
}

func New(world Stepper, events Events, clock Clock, opts Options) *Loop {
	if opts.SubSteps < 1 {
		opts.SubSteps = 1
	}
	if opts.FPS < 1 {
		opts.FPS = 60
	}
	return &Loop{
		world:    world,
		events:   events,
		clock:    clock,
		render:   opts.Render,
		interval: time.Second / time.Duration(opts.FPS),
		subSteps: opts.SubSteps,
		pace:     opts.Pace,
		last:     clock.Now(),
	}
}

func (l *Loop) State() State { return l.state }

// Frames returns the number of completed iterations.
func (l *Loop) Frames() int { return l.frames }

// Interval is the target duration of one frame.
func (l *Loop) Interval() time.Duration { return l.interval }

// Tick runs one iteration and reports whether the loop has quit. Once the
// loop is in the Quit state every further call returns true immediately.
func (l *Loop) Tick() bool {
	if l.state == Quit {
		return true
	}
	if l.events != nil && l.events.QuitRequested() {
		l.state = Quit
		return true
	}

	frame := l.clock.Now()
	dt := frame.Sub(l.last)
	l.last = frame

	for i := 0; i < l.subSteps; i++ {
		start := frame
		if i > 0 {
			start = l.clock.Now()
			dt = 0
		}
		if !l.Paused {
			l.world.Step(float32(dt.Seconds()))
		}
		if l.render != nil {
			l.render()
		}
		if l.pace {
			if spent := l.clock.Now().Sub(start); spent < l.interval {
				l.clock.Sleep(l.interval - spent)
			}
		}
	}
	l.frames++
	return false
}

// Run ticks until the loop quits, ctx is done, or maxFrames iterations
// completed. maxFrames of zero means no limit.
func (l *Loop) Run(ctx context.Context, maxFrames int) error {
	for maxFrames == 0 || l.frames < maxFrames {
		if err := ctx.Err(); err != nil {
			return err
		}
		if l.Tick() {
			return nil
		}
	}
	return nil
}
