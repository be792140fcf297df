package disburse

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"

	"github.com/kursusin/affiliate-backend/internal/domain"
	"github.com/kursusin/affiliate-backend/internal/transport/disburse/client"
)

type Client interface {
	Disburse(ctx context.Context, disbursement domain.PayoutDisbursement) (*client.Response, error)
}

type Servicer interface {
	PayoutsForDisbursement(ctx context.Context, limit uint) ([]domain.PayoutDisbursement, error)
	CompleteDisbursement(
		ctx context.Context,
		id int64,
		success bool,
		failureReason string,
	) (*domain.CommissionPayout, error)
}
