// Package schedule debounces text changes into parse attempts.
//
// Every text change restarts a quiet-period timer; the parse runs only
// once input settles. A newer change cancels the pending attempt, so the
// outcome stream only ever reflects the latest text state.
package schedule

import (
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/jacoelho/vy/internal/clock"
	"github.com/jacoelho/vy/internal/tree"
)

// DefaultQuiet is the debounce interval between the last keystroke and
// the parse attempt. Reparsing every keystroke is too jittery for large
// documents; longer intervals make the tree feel stale.
const DefaultQuiet = 100 * time.Millisecond

// Phase discriminates the three mutually exclusive outcome states.
type Phase int

const (
	// PhaseEmpty means blank input: no tree and no error.
	PhaseEmpty Phase = iota
	// PhaseFailed means the parser rejected the text.
	PhaseFailed
	// PhaseParsed means a fresh tree was built.
	PhaseParsed
)

// Outcome is the result of one settled parse attempt. Tree and Err are
// mutually exclusive. Revision identifies the attempt that produced it.
type Outcome struct {
	Phase    Phase
	Tree     *tree.Node
	Err      string
	Revision string
	At       time.Time
}

// ParseFunc is the external parser collaborator.
type ParseFunc func(text string) (any, error)

// Scheduler owns the debounce timer. Notify callbacks are delivered in
// the order their debounce windows close and must not call back into
// the scheduler.
type Scheduler struct {
	mu      sync.Mutex
	quiet   time.Duration
	name    string
	parse   ParseFunc
	notify  func(Outcome)
	timer   *time.Timer
	seq     uint64
	stopped bool
}

// New creates a scheduler. quiet values <= 0 fall back to DefaultQuiet.
func New(quiet time.Duration, parse ParseFunc, notify func(Outcome)) *Scheduler {
	if quiet <= 0 {
		quiet = DefaultQuiet
	}

	return &Scheduler{
		quiet:  quiet,
		name:   tree.DefaultRootKey,
		parse:  parse,
		notify: notify,
	}
}

// SetName sets the root key used for trees built from later attempts,
// usually the name of the opened file.
func (s *Scheduler) SetName(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if name == "" {
		name = tree.DefaultRootKey
	}
	s.name = name
}

// Schedule records a text change. Blank input resolves to PhaseEmpty
// immediately; anything else waits out the quiet period first. A second
// call within the quiet period cancels the pending attempt without any
// observable effect.
func (s *Scheduler) Schedule(text string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.stopped {
		return
	}

	s.seq++
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}

	if strings.TrimSpace(text) == "" {
		s.deliver(Outcome{
			Phase:    PhaseEmpty,
			Revision: uuid.New().String(),
			At:       clock.Now(),
		})
		return
	}

	generation := s.seq
	s.timer = time.AfterFunc(s.quiet, func() {
		s.fire(generation, text)
	})
}

// fire runs a settled parse attempt. The parse itself happens outside
// the lock so new keystrokes never wait on it; the generation check is
// repeated before delivery to reject attempts superseded mid-parse.
func (s *Scheduler) fire(generation uint64, text string) {
	s.mu.Lock()
	if s.stopped || generation != s.seq {
		s.mu.Unlock()
		return
	}
	s.timer = nil
	name := s.name
	parse := s.parse
	s.mu.Unlock()

	outcome := Outcome{
		Revision: uuid.New().String(),
		At:       clock.Now(),
	}

	value, err := parse(text)
	if err != nil {
		outcome.Phase = PhaseFailed
		outcome.Err = err.Error()
	} else {
		outcome.Phase = PhaseParsed
		outcome.Tree = tree.Build(name, value)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.stopped || generation != s.seq {
		return
	}

	s.deliver(outcome)
}

// deliver runs the notify callback under the scheduler lock, which
// serialises outcomes in window-close order.
func (s *Scheduler) deliver(outcome Outcome) {
	if s.notify != nil {
		s.notify(outcome)
	}
}

// Stop cancels any pending attempt. Later Schedule calls are ignored.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.stopped = true
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
}
