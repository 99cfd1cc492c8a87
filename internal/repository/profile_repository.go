package repository

import (
	"context"

	"basis/internal/avgprice"

	"github.com/google/uuid"
)

//go:generate mockgen -source=profile_repository.go -destination=mock_profile_repository.go -package=repository

// ProfileRepository is the sole persistence boundary of the engine.
// LoadProfile hydrates a profile with its entire line history, never a
// page of it: the totalizer depends on lines from earlier years to
// establish the avg cost at the start of the requested year.
type ProfileRepository interface {
	LoadProfile(ctx context.Context, id uuid.UUID) (*avgprice.Profile, error)
	SaveProfile(ctx context.Context, profile *avgprice.Profile) error
	DeleteProfile(ctx context.Context, profile *avgprice.Profile) error
	ListProfileIDs(ctx context.Context) ([]uuid.UUID, error)
}
