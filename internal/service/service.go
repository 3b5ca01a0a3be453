package service

import (
	"errors"
	"strings"
	"sync"

	"go-backoffice-console/internal/store"
	"go-backoffice-console/pkg/validator"
)

var (
	ErrNotFound          = errors.New("record not found")
	ErrDetailUnavailable = errors.New("details are unavailable")
)

// ValidationError lists every rule a submitted form broke.
type ValidationError struct {
	Messages []string
}

func (e *ValidationError) Error() string {
	return "validation failed: " + strings.Join(e.Messages, "; ")
}

// BackendError marks a write the REST backend refused or never answered.
type BackendError struct {
	Op  string
	Err error
}

func (e *BackendError) Error() string { return e.Op + ": " + e.Err.Error() }

func (e *BackendError) Unwrap() error { return e.Err }

// check runs the struct tags of v and adds the extra messages of
// cross-field rules.
func check(v any, extra ...string) error {
	var msgs []string
	for _, e := range validator.ValidateStruct(v) {
		msgs = append(msgs, e.String())
	}
	msgs = append(msgs, extra...)
	if len(msgs) == 0 {
		return nil
	}
	return &ValidationError{Messages: msgs}
}

// Selection is the UI selection set of one entity list.
type Selection interface {
	Toggle(id string) (bool, error)
	IsSelected(id string) bool
	Selected() []string
	ClearSelection()
}

type selection[T store.Keyed] struct {
	store *store.Store[T]
}

func (s selection[T]) Toggle(id string) (bool, error) {
	if _, ok := s.store.Get(id); !ok {
		return false, ErrNotFound
	}
	return s.store.Toggle(id), nil
}

func (s selection[T]) IsSelected(id string) bool { return s.store.IsSelected(id) }

func (s selection[T]) Selected() []string { return s.store.Selected() }

func (s selection[T]) ClearSelection() { s.store.ClearSelection() }

// loader runs a list load once, and again on every refresh.
type loader struct {
	mu     sync.Mutex
	loaded bool
}

func (l *loader) ensure(refresh bool, load func()) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.loaded && !refresh {
		return
	}
	load()
	l.loaded = true
}
