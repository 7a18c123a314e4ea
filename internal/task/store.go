package task

import "github.com/google/uuid"

// ChangeKind identifies the mutation that produced a Change.
type ChangeKind int

const (
	// ChangeAdded means a task was appended.
	ChangeAdded ChangeKind = iota
	// ChangeStarred means a task's starred flag flipped.
	ChangeStarred
	// ChangeDeleted means a task was removed.
	ChangeDeleted
)

// String returns the change kind name.
func (k ChangeKind) String() string {
	switch k {
	case ChangeAdded:
		return "added"
	case ChangeStarred:
		return "starred"
	case ChangeDeleted:
		return "deleted"
	default:
		return "unknown"
	}
}

// Change describes one completed mutation.
type Change struct {
	Kind ChangeKind
	// Index is the position the task occupied (added, starred) or used to
	// occupy (deleted).
	Index int
	// Task is the task after the change; for deletions, the removed task.
	Task Task
	// Len is the list length after the change.
	Len int
}

// Observer is called synchronously after every mutation.
type Observer func(change Change)

// Subscription represents an active observer registration.
type Subscription struct {
	id    uint64
	store *Store
}

// Unsubscribe removes this subscription. Safe to call more than once.
func (s *Subscription) Unsubscribe() {
	if s == nil || s.store == nil {
		return
	}
	s.store.unsubscribe(s.id)
	s.store = nil
}

// Store is the ordered task list.
//
// A Store is not safe for concurrent use; all calls are expected from the
// goroutine running the UI event loop.
type Store struct {
	tasks     []Task
	observers []observerEntry
	nextID    uint64
	newID     func() ID
}

type observerEntry struct {
	id uint64
	fn Observer
}

// Option configures a Store.
type Option func(*Store)

// WithIDGenerator replaces the uuid generator, mainly for tests.
func WithIDGenerator(gen func() ID) Option {
	return func(s *Store) {
		if gen != nil {
			s.newID = gen
		}
	}
}

// NewStore creates an empty store.
func NewStore(opts ...Option) *Store {
	s := &Store{newID: uuid.New}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Add appends a task with the given text. Blank text (empty after trimming
// whitespace) is ignored and Add returns false. The text is stored exactly
// as given.
func (s *Store) Add(text string) (Task, bool) {
	if IsBlank(text) {
		return Task{}, false
	}

	t := Task{ID: s.newID(), Text: text}
	s.tasks = append(s.tasks, t)
	s.notify(Change{Kind: ChangeAdded, Index: len(s.tasks) - 1, Task: t, Len: len(s.tasks)})
	return t, true
}

// ToggleStar flips the starred flag of the task at index and returns it.
// It panics with *IndexError if index is out of range.
func (s *Store) ToggleStar(index int) Task {
	s.check("toggle star", index)

	s.tasks[index].Starred = !s.tasks[index].Starred
	t := s.tasks[index]
	s.notify(Change{Kind: ChangeStarred, Index: index, Task: t, Len: len(s.tasks)})
	return t
}

// Delete removes the task at index and returns it. Later tasks shift down
// by one position. It panics with *IndexError if index is out of range.
func (s *Store) Delete(index int) Task {
	s.check("delete", index)

	t := s.tasks[index]
	s.tasks = append(s.tasks[:index], s.tasks[index+1:]...)
	s.notify(Change{Kind: ChangeDeleted, Index: index, Task: t, Len: len(s.tasks)})
	return t
}

// Len returns the number of tasks.
func (s *Store) Len() int {
	return len(s.tasks)
}

// At returns the task at index. It panics with *IndexError if index is out
// of range.
func (s *Store) At(index int) Task {
	s.check("at", index)
	return s.tasks[index]
}

// Tasks returns a copy of the list in order.
func (s *Store) Tasks() []Task {
	out := make([]Task, len(s.tasks))
	copy(out, s.tasks)
	return out
}

// Index returns the current index of the task with the given ID, or -1.
func (s *Store) Index(id ID) int {
	for i, t := range s.tasks {
		if t.ID == id {
			return i
		}
	}
	return -1
}

// Subscribe registers an observer for all mutations. Observers run in
// registration order.
func (s *Store) Subscribe(fn Observer) *Subscription {
	id := s.nextID
	s.nextID++
	s.observers = append(s.observers, observerEntry{id: id, fn: fn})
	return &Subscription{id: id, store: s}
}

func (s *Store) unsubscribe(id uint64) {
	for i, o := range s.observers {
		if o.id == id {
			s.observers = append(s.observers[:i], s.observers[i+1:]...)
			return
		}
	}
}

func (s *Store) notify(change Change) {
	// Copy so observers may unsubscribe while being notified.
	observers := make([]observerEntry, len(s.observers))
	copy(observers, s.observers)
	for _, o := range observers {
		o.fn(change)
	}
}

func (s *Store) check(op string, index int) {
	if index < 0 || index >= len(s.tasks) {
		panic(&IndexError{Op: op, Index: index, Len: len(s.tasks)})
	}
}
