package activities

import (
	"slices"
	"sync"

	"mergington-activities/src/models"
)

// Registry owns the activity catalog and every roster in it.
//
// A single lock serializes all roster mutations, so the duplicate and
// capacity checks in Enroll cannot race with another signup.
type Registry struct {
	mu         sync.RWMutex
	seed       map[string]models.Activity
	activities map[string]*models.Activity
	observe    RosterObserver
}

// RosterObserver is told the new roster size after every change. It runs
// while the registry lock is held, so calls arrive in mutation order and
// must not call back into the registry.
type RosterObserver func(name string, size, capacity int)

// Option configures a Registry.
type Option func(*Registry)

// WithRosterObserver registers fn for roster changes.
func WithRosterObserver(fn RosterObserver) Option {
	return func(r *Registry) {
		r.observe = fn
	}
}

// NewRegistry validates catalog and builds a registry from a private copy of it.
func NewRegistry(catalog map[string]models.Activity, opts ...Option) (*Registry, error) {
	if err := validateCatalog(catalog); err != nil {
		return nil, err
	}
	seed := make(map[string]models.Activity, len(catalog))
	for name, a := range catalog {
		seed[name] = a.Clone()
	}
	r := &Registry{
		seed:       seed,
		activities: cloneCatalog(seed),
	}
	for _, opt := range opts {
		opt(r)
	}
	r.observeAll()
	return r, nil
}

// notify must be called with r.mu held.
func (r *Registry) notify(name string, a *models.Activity) {
	if r.observe != nil {
		r.observe(name, len(a.Participants), a.MaxParticipants)
	}
}

func (r *Registry) observeAll() {
	for name, a := range r.activities {
		r.notify(name, a)
	}
}

// List returns a snapshot of every activity keyed by name.
func (r *Registry) List() map[string]models.Activity {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make(map[string]models.Activity, len(r.activities))
	for name, a := range r.activities {
		out[name] = a.Clone()
	}
	return out
}

// Get returns a snapshot of one activity.
func (r *Registry) Get(name string) (models.Activity, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	a, ok := r.activities[name]
	if !ok {
		return models.Activity{}, ErrActivityNotFound
	}
	return a.Clone(), nil
}

// Enroll appends email to the activity roster.
// Checks run in order: activity exists, not already enrolled, not full.
func (r *Registry) Enroll(name, email string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	a, ok := r.activities[name]
	if !ok {
		return ErrActivityNotFound
	}
	if slices.Contains(a.Participants, email) {
		return ErrAlreadyEnrolled
	}
	if len(a.Participants) >= a.MaxParticipants {
		return ErrActivityFull
	}
	a.Participants = append(a.Participants, email)
	r.notify(name, a)
	return nil
}

// Withdraw removes email from the activity roster.
func (r *Registry) Withdraw(name, email string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	a, ok := r.activities[name]
	if !ok {
		return ErrActivityNotFound
	}
	participants, removed := removeParticipant(a.Participants, email)
	if !removed {
		return ErrParticipantNotFound
	}
	a.Participants = participants
	r.notify(name, a)
	return nil
}

// Reset puts every roster back to the seed catalog.
func (r *Registry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.activities = cloneCatalog(r.seed)
	r.observeAll()
}
