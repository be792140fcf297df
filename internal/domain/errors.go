package domain

import (
	"errors"
	"fmt"
)

var (
	ErrRecordNotFound    = errors.New("record not found")
	ErrPasswordMissMatch = errors.New("password mismatch")
	ErrDuplicateKey      = errors.New("duplicate key")
	ErrUnknown           = errors.New("unknown error")

	ErrNotEnoughBalance     = errors.New("not enough balance")
	ErrBelowMinimumPayout   = errors.New("amount below minimum payout")
	ErrAffiliateNotApproved = errors.New("affiliate not approved")
	ErrProgramInactive      = errors.New("program inactive")
	ErrReferralCodeTaken    = errors.New("referral code taken")
)

type InvalidTransitionError struct {
	From string
	To   string
}

func NewInvalidTransitionError(from, to string) error {
	return &InvalidTransitionError{From: from, To: to}
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("status transition from %s to %s is not allowed", e.From, e.To)
}
