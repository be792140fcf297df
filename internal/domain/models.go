package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type User struct {
	ID                int64
	CreatedAt         time.Time
	UpdatedAt         time.Time
	Email             string
	FullName          string
	Role              RoleType
	EncryptedPassword string
}

type Affiliate struct {
	ID                  int64
	CreatedAt           time.Time
	UpdatedAt           time.Time
	UserID              int64
	ReferralCode        string
	CommissionRate      decimal.Decimal
	PayoutMethod        PayoutMethodType
	PayoutAccountName   string
	PayoutAccountNumber string
	Status              AffiliateStatusType
	ApprovedBy          *int64
	ApprovedAt          *time.Time
}

type Program struct {
	ID          int64
	CreatedAt   time.Time
	UpdatedAt   time.Time
	Name        string
	Description string
	Category    string
	Location    string
	Price       decimal.Decimal
	Active      bool
}

// StudentRegistration links an affiliate and a program to an end customer.
// RegistrationFee and CommissionAmount are snapshots taken at creation time;
// later price or rate changes never retro-apply.
type StudentRegistration struct {
	ID               int64
	CreatedAt        time.Time
	UpdatedAt        time.Time
	AffiliateID      int64
	ProgramID        int64
	StudentName      string
	StudentEmail     string
	StudentPhone     string
	RegistrationFee  decimal.Decimal
	CommissionAmount decimal.Decimal
	Status           RegistrationStatusType
	ConfirmedBy      *int64
	ConfirmedAt      *time.Time
}

type CommissionPayout struct {
	ID            int64
	CreatedAt     time.Time
	UpdatedAt     time.Time
	AffiliateID   int64
	Amount        decimal.Decimal
	Reference     uuid.UUID
	Status        PayoutStatusType
	ProcessedBy   *int64
	ProcessedAt   *time.Time
	FailureReason string
}

// PayoutDisbursement is a payout joined with the destination account of its
// affiliate, as needed by the disbursement gateway.
type PayoutDisbursement struct {
	Payout        CommissionPayout
	Method        PayoutMethodType
	AccountName   string
	AccountNumber string
}
