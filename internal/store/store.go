package store

import (
	"sync"
	"sync/atomic"

	"go-backoffice-console/internal/model"
	"go-backoffice-console/pkg/clock"
	"go-backoffice-console/pkg/idcodec"
)

// Keyed is anything addressable by its display id.
type Keyed interface {
	Key() string
}

// Listener is called after every change, outside the store lock.
type Listener func(model.Change)

// Sequence numbers changes. Stores sharing one Sequence produce a single
// ordering across entities.
type Sequence struct {
	n atomic.Uint64
}

func (q *Sequence) next() uint64 { return q.n.Add(1) }

// Current returns the last number handed out.
func (q *Sequence) Current() uint64 { return q.n.Load() }

// Store is the authoritative in-memory list for one entity plus its UI
// selection set and changelog.
type Store[T Keyed] struct {
	entity string
	clock  clock.Clock
	seq    *Sequence

	mu        sync.RWMutex
	items     []T
	selected  map[string]bool
	log       []model.Change
	maxLog    int
	listeners []Listener
}

const defaultMaxLog = 500

// New creates an empty store. A nil seq gives the store its own numbering.
func New[T Keyed](entity string, clk clock.Clock, seq *Sequence) *Store[T] {
	if clk == nil {
		clk = clock.RealClock{}
	}
	if seq == nil {
		seq = &Sequence{}
	}
	return &Store[T]{
		entity:   entity,
		clock:    clk,
		seq:      seq,
		selected: make(map[string]bool),
		maxLog:   defaultMaxLog,
	}
}

func (s *Store[T]) Entity() string { return s.entity }

// Subscribe registers l for every future change.
func (s *Store[T]) Subscribe(l Listener) {
	s.mu.Lock()
	s.listeners = append(s.listeners, l)
	s.mu.Unlock()
}

// All returns a copy of the list in display order.
func (s *Store[T]) All() []T {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]T, len(s.items))
	copy(out, s.items)
	return out
}

func (s *Store[T]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}

func (s *Store[T]) Get(id string) (T, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if i := s.indexOf(id); i >= 0 {
		return s.items[i], true
	}
	var zero T
	return zero, false
}

// Replace swaps in a freshly loaded list. Selections of ids that are gone are dropped.
func (s *Store[T]) Replace(items []T) {
	s.mu.Lock()
	s.items = make([]T, len(items))
	copy(s.items, items)
	keep := make(map[string]bool, len(items))
	for _, it := range items {
		if s.selected[it.Key()] {
			keep[it.Key()] = true
		}
	}
	s.selected = keep
	c := s.record(model.OpReplace, nil)
	s.mu.Unlock()
	s.notify(c)
}

// Upsert replaces items in place by id and prepends unknown ones.
func (s *Store[T]) Upsert(items ...T) {
	if len(items) == 0 {
		return
	}
	s.mu.Lock()
	ids := make([]string, 0, len(items))
	for _, it := range items {
		ids = append(ids, it.Key())
		if i := s.indexOf(it.Key()); i >= 0 {
			s.items[i] = it
			continue
		}
		s.items = append([]T{it}, s.items...)
	}
	c := s.record(model.OpUpsert, ids)
	s.mu.Unlock()
	s.notify(c)
}

// Remove deletes the given ids and returns the ones that were present.
func (s *Store[T]) Remove(ids ...string) []string {
	drop := make(map[string]bool, len(ids))
	for _, id := range ids {
		drop[id] = true
	}
	s.mu.Lock()
	kept := s.items[:0]
	var removed []string
	for _, it := range s.items {
		if drop[it.Key()] {
			removed = append(removed, it.Key())
			delete(s.selected, it.Key())
			continue
		}
		kept = append(kept, it)
	}
	var zero T
	for i := len(kept); i < len(s.items); i++ {
		s.items[i] = zero
	}
	s.items = kept
	if len(removed) == 0 {
		s.mu.Unlock()
		return nil
	}
	c := s.record(model.OpRemove, removed)
	s.mu.Unlock()
	s.notify(c)
	return removed
}

// Toggle flips the selection of id and returns the new state. Unknown ids stay unselected.
func (s *Store[T]) Toggle(id string) bool {
	s.mu.Lock()
	if s.indexOf(id) < 0 {
		s.mu.Unlock()
		return false
	}
	on := !s.selected[id]
	if on {
		s.selected[id] = true
	} else {
		delete(s.selected, id)
	}
	c := s.record(model.OpSelect, []string{id})
	s.mu.Unlock()
	s.notify(c)
	return on
}

// SetSelected selects or deselects every listed id that exists.
func (s *Store[T]) SetSelected(on bool, ids ...string) {
	s.mu.Lock()
	var touched []string
	for _, id := range ids {
		if s.indexOf(id) < 0 {
			continue
		}
		if on {
			s.selected[id] = true
		} else {
			delete(s.selected, id)
		}
		touched = append(touched, id)
	}
	if len(touched) == 0 {
		s.mu.Unlock()
		return
	}
	c := s.record(model.OpSelect, touched)
	s.mu.Unlock()
	s.notify(c)
}

func (s *Store[T]) IsSelected(id string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.selected[id]
}

// Selected returns the selected ids in display order.
func (s *Store[T]) Selected() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]string, 0, len(s.selected))
	for _, it := range s.items {
		if s.selected[it.Key()] {
			out = append(out, it.Key())
		}
	}
	return out
}

func (s *Store[T]) ClearSelection() {
	s.mu.Lock()
	if len(s.selected) == 0 {
		s.mu.Unlock()
		return
	}
	ids := make([]string, 0, len(s.selected))
	for id := range s.selected {
		ids = append(ids, id)
	}
	s.selected = make(map[string]bool)
	c := s.record(model.OpSelect, ids)
	s.mu.Unlock()
	s.notify(c)
}

// Since returns the retained changes with a sequence number greater than seq.
func (s *Store[T]) Since(seq uint64) []model.Change {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []model.Change
	for _, c := range s.log {
		if c.Seq > seq {
			out = append(out, c)
		}
	}
	return out
}

func (s *Store[T]) indexOf(id string) int {
	for i, it := range s.items {
		if it.Key() == id {
			return i
		}
	}
	return -1
}

// record must be called with mu held.
func (s *Store[T]) record(op model.ChangeOp, ids []string) model.Change {
	c := model.Change{Seq: s.seq.next(), Entity: s.entity, Op: op, IDs: ids, At: s.clock.Now()}
	s.log = append(s.log, c)
	if len(s.log) > s.maxLog {
		s.log = s.log[len(s.log)-s.maxLog:]
	}
	return c
}

func (s *Store[T]) notify(c model.Change) {
	s.mu.RLock()
	ls := make([]Listener, len(s.listeners))
	copy(ls, s.listeners)
	s.mu.RUnlock()
	for _, l := range ls {
		l(c)
	}
}

// NextID allocates max(existing)+1 among ids of the given kind.
func (s *Store[T]) NextID(kind idcodec.Kind) string {
	return s.NextIDAbove(kind, 0)
}

// NextIDAbove is NextID with the numbering starting after floor.
func (s *Store[T]) NextIDAbove(kind idcodec.Kind, floor int64) string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	highest := floor
	for _, it := range s.items {
		if idcodec.PrefixOf(it.Key()) != kind.Prefix {
			continue
		}
		if n, err := kind.Parse(it.Key()); err == nil && n > highest {
			highest = n
		}
	}
	return kind.Format(highest + 1)
}
