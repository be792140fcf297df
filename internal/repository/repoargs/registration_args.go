package repoargs

import (
	"time"

	"github.com/kursusin/affiliate-backend/internal/domain"
	"github.com/shopspring/decimal"
)

type CreateRegistration struct {
	AffiliateID      int64
	ProgramID        int64
	StudentName      string
	StudentEmail     string
	StudentPhone     string
	RegistrationFee  decimal.Decimal
	CommissionAmount decimal.Decimal
}

// UpdateRegistrationStatus sets the confirmation status. ConfirmedBy and
// ConfirmedAt must be nil unless Status is confirmed.
type UpdateRegistrationStatus struct {
	ID          int64
	Status      domain.RegistrationStatusType
	ConfirmedBy *int64
	ConfirmedAt *time.Time
}

type RegistrationFilter struct {
	Status *domain.RegistrationStatusType
}

// RegistrationStats aggregates an affiliate's registrations by status.
type RegistrationStats struct {
	Total               int64
	Pending             int64
	Confirmed           int64
	Cancelled           int64
	ConfirmedFees       decimal.Decimal
	ConfirmedCommission decimal.Decimal
}
