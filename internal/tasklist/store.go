// Package tasklist provides an ordered list of checkable tasks with a timed
// "undo last add". It backs both the milestone checklist and the goal tracker.
package tasklist

import (
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// DefaultUndoWindow is how long the most recent add stays undoable.
const DefaultUndoWindow = 30 * time.Second

// ID identifies a task for the lifetime of its store. IDs increase with
// creation order and are never reused.
type ID uint64

// Task is a single checkable list item.
type Task struct {
	ID    ID
	Title string
	Done  bool
}

// PendingUndo describes the add that UndoLastAdd would revert.
type PendingUndo struct {
	TaskID   ID
	Title    string
	Deadline time.Time
}

// Progress summarizes completion of the list.
type Progress struct {
	Completed int
	Total     int
	Percent   int
}

// Options configures a Store.
type Options struct {
	// RejectEmpty makes Add return ErrTitleRequired for a blank title.
	// Otherwise blank titles are ignored without an error.
	RejectEmpty bool

	// UndoWindow defaults to DefaultUndoWindow.
	UndoWindow time.Duration

	// Clock defaults to SystemClock.
	Clock Clock

	// Logger receives debug events. Nil disables logging.
	Logger *zerolog.Logger

	// Seed titles are appended in order at construction. They are not
	// undoable.
	Seed []string

	// Name labels log events (e.g. "milestones", "goals").
	Name string
}

// Store is safe for concurrent use; the expiry callback of the system clock
// runs on its own goroutine.
type Store struct {
	mu     sync.Mutex
	opts   Options
	log    zerolog.Logger
	tasks  []Task
	nextID ID
	closed bool

	pending    PendingUndo
	hasPending bool
	timer      Timer
	generation uint64 // bumped on every add so stale expiries are ignored
}

// New returns an empty store configured by opts.
func New(opts Options) *Store {
	if opts.UndoWindow <= 0 {
		opts.UndoWindow = DefaultUndoWindow
	}
	if opts.Clock == nil {
		opts.Clock = SystemClock()
	}

	logger := zerolog.Nop()
	if opts.Logger != nil {
		logger = opts.Logger.With().Str("list", opts.Name).Logger()
	}

	s := &Store{opts: opts, log: logger, nextID: 1}
	for _, raw := range opts.Seed {
		if title := strings.TrimSpace(raw); title != "" {
			s.appendLocked(title)
		}
	}
	return s
}

func (s *Store) appendLocked(title string) Task {
	t := Task{ID: s.nextID, Title: title}
	s.nextID++
	s.tasks = append(s.tasks, t)
	return t
}

// Add trims rawTitle and appends a new task, making it the pending undo.
// A blank title leaves the store unchanged: it returns ErrTitleRequired when
// RejectEmpty is set, or a zero Task and nil otherwise.
func (s *Store) Add(rawTitle string) (Task, error) {
	title := strings.TrimSpace(rawTitle)

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return Task{}, ErrClosed
	}
	if title == "" {
		if s.opts.RejectEmpty {
			return Task{}, ErrTitleRequired
		}
		return Task{}, nil
	}

	t := s.appendLocked(title)

	s.stopTimerLocked()
	s.generation++
	gen := s.generation
	s.pending = PendingUndo{
		TaskID:   t.ID,
		Title:    t.Title,
		Deadline: s.opts.Clock.Now().Add(s.opts.UndoWindow),
	}
	s.hasPending = true
	s.timer = s.opts.Clock.AfterFunc(s.opts.UndoWindow, func() { s.expire(gen) })

	s.log.Debug().Uint64("id", uint64(t.ID)).Str("title", t.Title).Msg("task added")
	return t, nil
}

// expire clears the pending undo if it still belongs to the add that
// scheduled it.
func (s *Store) expire(gen uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.hasPending || s.generation != gen {
		return
	}
	s.log.Debug().Uint64("id", uint64(s.pending.TaskID)).Msg("undo expired")
	s.clearPendingLocked()
}

func (s *Store) stopTimerLocked() {
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
}

func (s *Store) clearPendingLocked() {
	s.stopTimerLocked()
	s.pending = PendingUndo{}
	s.hasPending = false
}

func (s *Store) indexLocked(id ID) int {
	for i, t := range s.tasks {
		if t.ID == id {
			return i
		}
	}
	return -1
}

// Toggle flips Done for the task with the given id. Unknown ids are ignored.
func (s *Store) Toggle(id ID) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if i := s.indexLocked(id); i >= 0 {
		s.tasks[i].Done = !s.tasks[i].Done
	}
}

// Delete removes the task with the given id. Unknown ids are ignored. The
// pending undo is left in place; undoing a deleted task is a no-op.
func (s *Store) Delete(id ID) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if i := s.indexLocked(id); i >= 0 {
		s.removeLocked(i)
	}
}

func (s *Store) removeLocked(i int) {
	s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)
}

// UndoLastAdd removes the most recently added task if its undo window is
// still open. It reports the removed task and whether one was removed.
// Calling it with no pending undo does nothing.
func (s *Store) UndoLastAdd() (Task, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.hasPending {
		return Task{}, false
	}

	p := s.pending
	s.clearPendingLocked()

	i := s.indexLocked(p.TaskID)
	if i < 0 {
		return Task{}, false
	}
	removed := s.tasks[i]
	s.removeLocked(i)

	s.log.Debug().Uint64("id", uint64(p.TaskID)).Str("title", p.Title).Msg("add undone")
	return removed, true
}

// Pending returns the active pending undo, if any.
func (s *Store) Pending() (PendingUndo, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.pending, s.hasPending
}

// UndoRemaining returns how long the pending undo stays valid, or 0.
func (s *Store) UndoRemaining() time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.hasPending {
		return 0
	}
	d := s.pending.Deadline.Sub(s.opts.Clock.Now())
	if d < 0 {
		return 0
	}
	return d
}

// Tasks returns a copy of the list in insertion order.
func (s *Store) Tasks() []Task {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]Task, len(s.tasks))
	copy(out, s.tasks)
	return out
}

// Len returns the number of tasks.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.tasks)
}

// Progress returns completed and total counts with a percentage rounded
// half up.
func (s *Store) Progress() Progress {
	s.mu.Lock()
	defer s.mu.Unlock()

	p := Progress{Total: len(s.tasks)}
	for _, t := range s.tasks {
		if t.Done {
			p.Completed++
		}
	}
	if p.Total > 0 {
		p.Percent = (p.Completed*200 + p.Total) / (p.Total * 2)
	}
	return p
}

// Close cancels the pending undo timer. Add fails with ErrClosed afterwards.
// Close is idempotent.
func (s *Store) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return
	}
	s.clearPendingLocked()
	s.closed = true
}
