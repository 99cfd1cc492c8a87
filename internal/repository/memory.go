package repository

import (
	"context"
	"sync"

	basis_errors "basis/internal"
	"basis/internal/avgprice"

	"github.com/google/uuid"
)

// memoryProfileRepository keeps profiles in a mutex-guarded map. Used by
// tests and offline tooling; profiles are deep-copied on the way in and
// out so callers never alias stored state.
type memoryProfileRepository struct {
	mu       sync.RWMutex
	profiles map[uuid.UUID]*avgprice.Profile
}

func NewMemoryProfileRepository() ProfileRepository {
	return &memoryProfileRepository{
		profiles: make(map[uuid.UUID]*avgprice.Profile),
	}
}

func (r *memoryProfileRepository) LoadProfile(ctx context.Context, id uuid.UUID) (*avgprice.Profile, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	profile, ok := r.profiles[id]
	if !ok {
		return nil, basis_errors.ErrProfileNotFound{ProfileID: id}
	}
	return profile.DeepCopy(), nil
}

func (r *memoryProfileRepository) SaveProfile(ctx context.Context, profile *avgprice.Profile) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if existing, ok := r.profiles[profile.ID]; ok && existing.Version != profile.Version {
		return basis_errors.ErrStaleProfile{ProfileID: profile.ID, Version: profile.Version}
	}
	profile.Version++
	r.profiles[profile.ID] = profile.DeepCopy()
	return nil
}

func (r *memoryProfileRepository) DeleteProfile(ctx context.Context, profile *avgprice.Profile) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.profiles[profile.ID]; !ok {
		return basis_errors.ErrProfileNotFound{ProfileID: profile.ID}
	}
	delete(r.profiles, profile.ID)
	return nil
}

func (r *memoryProfileRepository) ListProfileIDs(ctx context.Context) ([]uuid.UUID, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]uuid.UUID, 0, len(r.profiles))
	for id := range r.profiles {
		out = append(out, id)
	}
	return out, nil
}
