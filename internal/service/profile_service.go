package service

import (
	"context"
	"fmt"
	"time"

	"basis/internal/avgprice"
	"basis/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ProfileService orchestrates profile mutations against the repository:
// load, mutate through the aggregate, save. All cost-basis math stays
// inside the avgprice package.
type ProfileService interface {
	CreateProfile(ctx context.Context, name string, asset avgprice.Asset, currency string, method avgprice.CalculationMethod) (*avgprice.Profile, error)
	GetProfile(ctx context.Context, id uuid.UUID) (*avgprice.Profile, error)
	AddLine(ctx context.Context, profileID uuid.UUID, date time.Time, displayOrder int32, lineType avgprice.LineType, quantity, unitPrice decimal.Decimal, comment string) (uuid.UUID, error)
	RemoveLine(ctx context.Context, profileID, lineID uuid.UUID) error
	DeleteProfile(ctx context.Context, id uuid.UUID) error
}

type profileServiceHandler struct {
	repo repository.ProfileRepository
}

func NewProfileService(repo repository.ProfileRepository) ProfileService {
	return profileServiceHandler{repo: repo}
}

func (h profileServiceHandler) CreateProfile(ctx context.Context, name string, asset avgprice.Asset, currency string, method avgprice.CalculationMethod) (*avgprice.Profile, error) {
	profile, err := avgprice.NewProfile(name, asset, currency, method)
	if err != nil {
		return nil, err
	}
	if err := h.repo.SaveProfile(ctx, profile); err != nil {
		return nil, fmt.Errorf("failed to save new profile: %w", err)
	}
	return profile, nil
}

func (h profileServiceHandler) GetProfile(ctx context.Context, id uuid.UUID) (*avgprice.Profile, error) {
	return h.repo.LoadProfile(ctx, id)
}

func (h profileServiceHandler) AddLine(ctx context.Context, profileID uuid.UUID, date time.Time, displayOrder int32, lineType avgprice.LineType, quantity, unitPrice decimal.Decimal, comment string) (uuid.UUID, error) {
	profile, err := h.repo.LoadProfile(ctx, profileID)
	if err != nil {
		return uuid.Nil, err
	}
	lineID, err := profile.AddLine(date, displayOrder, lineType, quantity, unitPrice, comment)
	if err != nil {
		return uuid.Nil, err
	}
	if err := h.repo.SaveProfile(ctx, profile); err != nil {
		return uuid.Nil, err
	}
	return lineID, nil
}

func (h profileServiceHandler) RemoveLine(ctx context.Context, profileID, lineID uuid.UUID) error {
	profile, err := h.repo.LoadProfile(ctx, profileID)
	if err != nil {
		return err
	}
	if err := profile.RemoveLine(lineID); err != nil {
		return err
	}
	return h.repo.SaveProfile(ctx, profile)
}

func (h profileServiceHandler) DeleteProfile(ctx context.Context, id uuid.UUID) error {
	profile, err := h.repo.LoadProfile(ctx, id)
	if err != nil {
		return err
	}
	return h.repo.DeleteProfile(ctx, profile)
}
