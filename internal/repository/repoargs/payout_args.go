package repoargs

import (
	"time"

	"github.com/google/uuid"
	"github.com/kursusin/affiliate-backend/internal/domain"
	"github.com/shopspring/decimal"
)

type CreatePayout struct {
	AffiliateID int64
	Amount      decimal.Decimal
	Reference   uuid.UUID
}

// UpdatePayoutStatus moves a payout through its status machine. ProcessedBy is
// recorded when an admin takes the payout into processing; ProcessedAt only on
// terminal states.
type UpdatePayoutStatus struct {
	ID            int64
	Status        domain.PayoutStatusType
	ProcessedBy   *int64
	ProcessedAt   *time.Time
	FailureReason string
}

type PayoutFilter struct {
	Status *domain.PayoutStatusType
}

type StatusCount struct {
	Status string
	Count  int64
}
