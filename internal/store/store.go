package store

import (
	"fmt"
	"sync"

	"github.com/jonathan/jobseeker-profile/internal/types"
)

// Store guards the profile. Readers get deep copies.
type Store struct {
	mu      sync.RWMutex
	profile types.Profile
	version int
}

// New creates a store seeded with p.
func New(p types.Profile) *Store {
	return &Store{profile: p.Clone()}
}

// Profile returns a copy of the current profile.
func (s *Store) Profile() types.Profile {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.profile.Clone()
}

// Version counts successfully applied updates.
func (s *Store) Version() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.version
}

// Apply merges a confirmed update. On error the profile is unchanged.
func (s *Store) Apply(ev types.UpdateSuccess) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next, err := Reduce(s.profile, ev)
	if err != nil {
		return err
	}
	s.profile = next
	s.version++
	return nil
}

// Initial returns the data a form for target should start from: the collection
// item for indexed kinds, nothing for add kinds, and the profile otherwise.
func (s *Store) Initial(target types.EditTarget) (any, error) {
	if target.Kind.Creates() {
		return nil, nil
	}

	p := s.Profile()
	if !target.Kind.Indexed() {
		return &p, nil
	}
	if target.Index == nil {
		return nil, fmt.Errorf("edit %s: index is required", target.Kind)
	}

	i := *target.Index
	switch target.Kind {
	case types.KindExperience:
		return itemAt(target, p.WorkExperience, i)
	case types.KindEducation:
		return itemAt(target, p.Education, i)
	default:
		return itemAt(target, p.Certifications, i)
	}
}

func itemAt[T any](target types.EditTarget, items []T, i int) (any, error) {
	if i < 0 || i >= len(items) {
		return nil, fmt.Errorf("edit %s: index %d out of range [0,%d)", target.Kind, i, len(items))
	}
	item := items[i]
	return &item, nil
}
