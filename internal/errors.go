package basis_errors

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type ErrMixedCurrency struct {
	ProfileID uuid.UUID
	Want      string
	Got       string
}

func (e ErrMixedCurrency) Error() string {
	return fmt.Sprintf("cannot total profiles with mixed currencies: profile %s uses %s, expected %s", e.ProfileID, e.Got, e.Want)
}

type ErrInsufficientQuantity struct {
	LineID    uuid.UUID
	Requested decimal.Decimal
	Available decimal.Decimal
}

func (e ErrInsufficientQuantity) Error() string {
	return fmt.Sprintf("line %s sells %s but only %s is held at that point in history", e.LineID, e.Requested, e.Available)
}

type ErrInvalidLine struct {
	Field   string
	Message string
}

func (e ErrInvalidLine) Error() string {
	return fmt.Sprintf("invalid line %s: %s", e.Field, e.Message)
}

type ErrLineNotFound struct {
	ProfileID uuid.UUID
	LineID    uuid.UUID
}

func (e ErrLineNotFound) Error() string {
	return fmt.Sprintf("profile %s has no line %s", e.ProfileID, e.LineID)
}

type ErrProfileNotFound struct {
	ProfileID uuid.UUID
}

func (e ErrProfileNotFound) Error() string {
	return fmt.Sprintf("profile %s does not exist", e.ProfileID)
}

type ErrStaleProfile struct {
	ProfileID uuid.UUID
	Version   int32
}

func (e ErrStaleProfile) Error() string {
	return fmt.Sprintf("profile %s was modified concurrently (expected version %d)", e.ProfileID, e.Version)
}
