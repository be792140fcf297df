package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/kursusin/affiliate-backend/internal/domain"
	"github.com/kursusin/affiliate-backend/internal/repository/repoargs"
)

type PayoutsHandler struct {
	payoutSvs PayoutServicer
}

func NewPayoutsHandler(payoutSvs PayoutServicer) *PayoutsHandler {
	return &PayoutsHandler{
		payoutSvs: payoutSvs,
	}
}

type BalanceResponse struct {
	TotalEarned  float64 `json:"total_earned"`
	PaidOut      float64 `json:"paid_out"`
	OnHold       float64 `json:"on_hold"`
	Available    float64 `json:"available"`
	Withdrawable float64 `json:"withdrawable"`
}

// Balance GET RouteGroup + AffiliateBalanceRoute.
func (h *PayoutsHandler) Balance(c *gin.Context) {
	currentUserID := getUserIDFromContext(c)

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	balance, err := h.payoutSvs.GetBalanceByUserID(reqCtx, currentUserID)
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			c.AbortWithStatus(http.StatusNotFound)
			return
		}
		_ = c.AbortWithError(http.StatusInternalServerError, err).SetType(gin.ErrorTypePrivate)
		return
	}

	c.JSON(http.StatusOK, &BalanceResponse{
		TotalEarned:  balance.TotalEarned.InexactFloat64(),
		PaidOut:      balance.PaidOut.InexactFloat64(),
		OnHold:       balance.OnHold.InexactFloat64(),
		Available:    balance.Available.InexactFloat64(),
		Withdrawable: balance.Withdrawable.InexactFloat64(),
	})
}

type PayoutResponse struct {
	ID            int64                   `json:"id"`
	AffiliateID   int64                   `json:"affiliate_id"`
	Amount        string                  `json:"amount"`
	Reference     uuid.UUID               `json:"reference"`
	Status        domain.PayoutStatusType `json:"status"`
	ProcessedAt   *time.Time              `json:"processed_at,omitempty"`
	FailureReason string                  `json:"failure_reason,omitempty"`
	CreatedAt     time.Time               `json:"created_at"`
}

func payoutToResponse(payout *domain.CommissionPayout) PayoutResponse {
	return PayoutResponse{
		ID:            payout.ID,
		AffiliateID:   payout.AffiliateID,
		Amount:        payout.Amount.String(),
		Reference:     payout.Reference,
		Status:        payout.Status,
		ProcessedAt:   payout.ProcessedAt,
		FailureReason: payout.FailureReason,
		CreatedAt:     payout.CreatedAt,
	}
}

type PayoutRequestParams struct {
	Amount decimal.Decimal `binding:"required,positive_decimal" json:"amount"`
}

// Request POST RouteGroup + AffiliatePayoutsRoute. Creates a pending payout
// against the available balance.
func (h *PayoutsHandler) Request(c *gin.Context) {
	currentUserID := getUserIDFromContext(c)

	var params PayoutRequestParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		_ = c.AbortWithError(http.StatusBadRequest, bindErr).SetType(gin.ErrorTypeBind)
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	payout, err := h.payoutSvs.RequestByUserID(reqCtx, currentUserID, params.Amount)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotEnoughBalance),
			errors.Is(err, domain.ErrBelowMinimumPayout):
			_ = c.Error(err)
			c.AbortWithStatus(http.StatusPaymentRequired)
		case errors.Is(err, domain.ErrAffiliateNotApproved):
			_ = c.AbortWithError(http.StatusForbidden, domain.ErrAffiliateNotApproved).
				SetType(gin.ErrorTypePublic)
		case errors.Is(err, domain.ErrRecordNotFound):
			c.AbortWithStatus(http.StatusNotFound)
		default:
			_ = c.AbortWithError(http.StatusInternalServerError, err).SetType(gin.ErrorTypePrivate)
		}
		return
	}

	c.JSON(http.StatusCreated, payoutToResponse(payout))
}

// OwnIndex GET RouteGroup + AffiliatePayoutsRoute.
func (h *PayoutsHandler) OwnIndex(c *gin.Context) {
	currentUserID := getUserIDFromContext(c)

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	payouts, err := h.payoutSvs.GetByUserID(reqCtx, currentUserID)
	if err != nil {
		_ = c.AbortWithError(http.StatusInternalServerError, err).SetType(gin.ErrorTypePrivate)
		return
	}

	if len(payouts) == 0 {
		c.AbortWithStatus(http.StatusNoContent)
		return
	}

	response := make([]PayoutResponse, len(payouts))
	for i := range payouts {
		response[i] = payoutToResponse(&payouts[i])
	}
	c.JSON(http.StatusOK, response)
}

// Index GET RouteGroup + AdminPayoutsRoute. Supports ?status=.
func (h *PayoutsHandler) Index(c *gin.Context) {
	var filter repoargs.PayoutFilter
	if raw := c.Query("status"); raw != "" {
		status := domain.PayoutStatusType(raw)
		filter.Status = &status
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	payouts, err := h.payoutSvs.List(reqCtx, filter)
	if err != nil {
		_ = c.AbortWithError(http.StatusInternalServerError, err).SetType(gin.ErrorTypePrivate)
		return
	}

	response := make([]PayoutResponse, len(payouts))
	for i := range payouts {
		response[i] = payoutToResponse(&payouts[i])
	}
	c.JSON(http.StatusOK, response)
}

type PayoutStatusParams struct {
	Status        domain.PayoutStatusType `binding:"required,oneof=processing completed failed" json:"status"`
	FailureReason string                  `binding:"max=500"                                     json:"failure_reason"`
}

// UpdateStatus PATCH RouteGroup + AdminPayoutStatusRoute. Moves a payout
// through its machine by hand, for deployments without a gateway.
func (h *PayoutsHandler) UpdateStatus(c *gin.Context) {
	id, ok := getIDParam(c)
	if !ok {
		return
	}

	var params PayoutStatusParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		_ = c.AbortWithError(http.StatusBadRequest, bindErr).SetType(gin.ErrorTypeBind)
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	payout, err := h.payoutSvs.UpdateStatus(reqCtx, id, params.Status,
		getUserIDFromContext(c), params.FailureReason)
	if err != nil {
		var transitionErr *domain.InvalidTransitionError
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			c.AbortWithStatus(http.StatusNotFound)
		case errors.As(err, &transitionErr):
			_ = c.AbortWithError(http.StatusConflict, transitionErr).SetType(gin.ErrorTypePublic)
		default:
			_ = c.AbortWithError(http.StatusInternalServerError, err).SetType(gin.ErrorTypePrivate)
		}
		return
	}

	c.JSON(http.StatusOK, payoutToResponse(payout))
}
