package domain

type RoleType string

const (
	RoleAdmin     RoleType = "admin"
	RoleAffiliate RoleType = "affiliate"
)

type PayoutMethodType string

const (
	PayoutMethodBankTransfer PayoutMethodType = "bank_transfer"
	PayoutMethodEWallet      PayoutMethodType = "e_wallet"
)

type AffiliateStatusType string

const (
	AffiliateStatusPending   AffiliateStatusType = "pending"
	AffiliateStatusApproved  AffiliateStatusType = "approved"
	AffiliateStatusRejected  AffiliateStatusType = "rejected"
	AffiliateStatusSuspended AffiliateStatusType = "suspended"
)

type RegistrationStatusType string

const (
	RegistrationStatusPending   RegistrationStatusType = "pending"
	RegistrationStatusConfirmed RegistrationStatusType = "confirmed"
	RegistrationStatusCancelled RegistrationStatusType = "cancelled"
)

type PayoutStatusType string

const (
	PayoutStatusPending    PayoutStatusType = "pending"
	PayoutStatusProcessing PayoutStatusType = "processing"
	PayoutStatusCompleted  PayoutStatusType = "completed"
	PayoutStatusFailed     PayoutStatusType = "failed"
)

var affiliateTransitions = map[AffiliateStatusType][]AffiliateStatusType{
	AffiliateStatusPending:   {AffiliateStatusApproved, AffiliateStatusRejected},
	AffiliateStatusApproved:  {AffiliateStatusSuspended},
	AffiliateStatusSuspended: {AffiliateStatusApproved},
}

// CanTransitionTo reports whether the affiliate status machine allows moving
// to target. Rejected is terminal.
func (s AffiliateStatusType) CanTransitionTo(target AffiliateStatusType) bool {
	return containsStatus(affiliateTransitions[s], target)
}

var registrationTransitions = map[RegistrationStatusType][]RegistrationStatusType{
	RegistrationStatusPending: {RegistrationStatusConfirmed, RegistrationStatusCancelled},
	// confirmed -> cancelled covers the refund case.
	RegistrationStatusConfirmed: {RegistrationStatusCancelled},
}

// CanTransitionTo reports whether the registration status machine allows
// moving to target. Cancelled is terminal.
func (s RegistrationStatusType) CanTransitionTo(target RegistrationStatusType) bool {
	return containsStatus(registrationTransitions[s], target)
}

var payoutTransitions = map[PayoutStatusType][]PayoutStatusType{
	PayoutStatusPending:    {PayoutStatusProcessing, PayoutStatusFailed},
	PayoutStatusProcessing: {PayoutStatusCompleted, PayoutStatusFailed},
}

// CanTransitionTo reports whether the payout status machine allows moving to
// target. Completed and failed are terminal.
func (s PayoutStatusType) CanTransitionTo(target PayoutStatusType) bool {
	return containsStatus(payoutTransitions[s], target)
}

// IsTerminal reports whether the payout status is final.
func (s PayoutStatusType) IsTerminal() bool {
	return s == PayoutStatusCompleted || s == PayoutStatusFailed
}

func containsStatus[T comparable](list []T, target T) bool {
	for _, s := range list {
		if s == target {
			return true
		}
	}
	return false
}
