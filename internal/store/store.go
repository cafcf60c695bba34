// Package store implements the in-memory normalized document store that is
// the single source of truth for the authoring console. It owns the eight
// entity tables plus the subject singleton, and every mutation (create,
// partial update, delete, link) goes through it, which is what makes the
// cascading-delete and many-to-many invariants enforceable.
//
// The store is purely in-memory; durability is the persistence collaborator's
// job. Observers registered with Subscribe are notified after every completed
// mutation so that collaborator can snapshot the state.
package store

import (
	"errors"
	"fmt"
	"sync"

	"github.com/nafeer/studio/internal/entities"
	"github.com/nafeer/studio/internal/identifier"
)

// ErrNotFound is returned when an update or link operation references an id
// absent from its table. Deletes of missing ids are no-ops.
var ErrNotFound = errors.New("not found")

// Store is the aggregate root. All methods are safe for concurrent use; each
// exported operation is a single critical section, so a cascade is never
// observable half-applied.
type Store struct {
	mu    sync.RWMutex
	newID func(prefix string) string

	subject   *entities.Subject
	units     []entities.Unit
	lessons   []entities.Lesson
	sections  []entities.Section
	blocks    []entities.Block
	tags      []entities.Tag
	concepts  []entities.Concept
	feedItems []entities.FeedItem
	questions []entities.Question
	exams     []entities.Exam

	obsMu        sync.Mutex
	observers    map[int]func()
	nextObserver int
}

// New creates an empty store.
func New() *Store {
	return &Store{
		newID:     identifier.New,
		observers: make(map[int]func()),
	}
}

// Subscribe registers fn to run after every completed mutation and returns a
// function that removes the subscription. Observers run synchronously on the
// mutating goroutine, outside the store's lock.
func (s *Store) Subscribe(fn func()) (unsubscribe func()) {
	s.obsMu.Lock()
	defer s.obsMu.Unlock()

	id := s.nextObserver
	s.nextObserver++
	s.observers[id] = fn

	return func() {
		s.obsMu.Lock()
		defer s.obsMu.Unlock()
		delete(s.observers, id)
	}
}

func (s *Store) notify() {
	s.obsMu.Lock()
	fns := make([]func(), 0, len(s.observers))
	for _, fn := range s.observers {
		fns = append(fns, fn)
	}
	s.obsMu.Unlock()

	for _, fn := range fns {
		fn()
	}
}

// Snapshot is a copy of every table, taken at a single point in time.
// Derived views (status, progress, export) are computed over snapshots so
// they never race with mutations.
type Snapshot struct {
	Subject   *entities.Subject
	Units     []entities.Unit
	Lessons   []entities.Lesson
	Sections  []entities.Section
	Blocks    []entities.Block
	Tags      []entities.Tag
	Concepts  []entities.Concept
	FeedItems []entities.FeedItem
	Questions []entities.Question
	Exams     []entities.Exam
}

// Snapshot returns a consistent copy of all tables.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var subject *entities.Subject
	if s.subject != nil {
		copied := *s.subject
		subject = &copied
	}

	return Snapshot{
		Subject:   subject,
		Units:     append([]entities.Unit(nil), s.units...),
		Lessons:   append([]entities.Lesson(nil), s.lessons...),
		Sections:  append([]entities.Section(nil), s.sections...),
		Blocks:    append([]entities.Block(nil), s.blocks...),
		Tags:      append([]entities.Tag(nil), s.tags...),
		Concepts:  append([]entities.Concept(nil), s.concepts...),
		FeedItems: append([]entities.FeedItem(nil), s.feedItems...),
		Questions: append([]entities.Question(nil), s.questions...),
		Exams:     append([]entities.Exam(nil), s.exams...),
	}
}

// Replace swaps every table for the contents of snap in one step. Used by
// the importer, which builds and validates the full table set before calling
// so that a failed import never partially mutates the store. The store takes
// ownership of the snapshot's slices.
func (s *Store) Replace(snap Snapshot) {
	s.mu.Lock()
	s.subject = snap.Subject
	s.units = snap.Units
	s.lessons = snap.Lessons
	s.sections = snap.Sections
	s.blocks = snap.Blocks
	s.tags = snap.Tags
	s.concepts = snap.Concepts
	s.feedItems = snap.FeedItems
	s.questions = snap.Questions
	s.exams = snap.Exams
	s.mu.Unlock()
	s.notify()
}

// ResetAll clears every table and the subject. Irreversible from the store's
// perspective.
func (s *Store) ResetAll() {
	s.Replace(Snapshot{})
}

// SetSubject replaces the subject singleton, assigning an id if absent.
// Existing units and lessons are intentionally left untouched; scaffolding a
// fresh subject is a separate, explicit operation.
func (s *Store) SetSubject(subject entities.Subject) entities.Subject {
	s.mu.Lock()
	if subject.ID == "" {
		subject.ID = s.newID("subj")
	}
	s.subject = &subject
	s.mu.Unlock()
	s.notify()
	return subject
}

// Subject returns a copy of the subject singleton, or nil when unset.
func (s *Store) Subject() *entities.Subject {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.subject == nil {
		return nil
	}
	copied := *s.subject
	return &copied
}

func notFound(kind, id string) error {
	return fmt.Errorf("%s %s: %w", kind, id, ErrNotFound)
}

// appendUnique appends id to ids unless already present. Link operations are
// idempotent by contract.
func appendUnique(ids []string, id string) []string {
	for _, existing := range ids {
		if existing == id {
			return ids
		}
	}
	return append(ids, id)
}

// removeID returns ids without id; removing an absent id is a no-op. A new
// slice is always allocated so previously taken snapshots are unaffected.
func removeID(ids []string, id string) []string {
	out := make([]string, 0, len(ids))
	for _, existing := range ids {
		if existing != id {
			out = append(out, existing)
		}
	}
	return out
}
