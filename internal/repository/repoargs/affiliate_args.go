package repoargs

import (
	"time"

	"github.com/kursusin/affiliate-backend/internal/domain"
	"github.com/shopspring/decimal"
)

type CreateAffiliate struct {
	UserID              int64
	ReferralCode        string
	CommissionRate      decimal.Decimal
	PayoutMethod        domain.PayoutMethodType
	PayoutAccountName   string
	PayoutAccountNumber string
}

// UpdateAffiliateStatus sets the approval status. ApprovedBy and ApprovedAt
// must be nil unless Status is approved.
type UpdateAffiliateStatus struct {
	ID         int64
	Status     domain.AffiliateStatusType
	ApprovedBy *int64
	ApprovedAt *time.Time
}
