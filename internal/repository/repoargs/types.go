package repoargs

import "github.com/shopspring/decimal"

type RepositoryName string

const (
	UserRepoName         RepositoryName = "user"
	AffiliateRepoName    RepositoryName = "affiliate"
	ProgramRepoName      RepositoryName = "program"
	RegistrationRepoName RepositoryName = "student_registration"
	PayoutRepoName       RepositoryName = "commission_payout"
)

// BalanceAggregation carries the three sums the balance formula is built from.
type BalanceAggregation struct {
	ConfirmedCommission decimal.Decimal
	CompletedPayouts    decimal.Decimal
	HeldPayouts         decimal.Decimal
}
