package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kursusin/affiliate-backend/internal/domain"
)

type StatsHandler struct {
	statsSvs StatsServicer
}

func NewStatsHandler(statsSvs StatsServicer) *StatsHandler {
	return &StatsHandler{
		statsSvs: statsSvs,
	}
}

type RegistrationStatsResponse struct {
	Total               int64   `json:"total"`
	Pending             int64   `json:"pending"`
	Confirmed           int64   `json:"confirmed"`
	Cancelled           int64   `json:"cancelled"`
	ConfirmedFees       float64 `json:"confirmed_fees"`
	ConfirmedCommission float64 `json:"confirmed_commission"`
}

type AdminStatsResponse struct {
	AffiliatesByStatus  map[string]int64          `json:"affiliates_by_status"`
	PayoutsByStatus     map[string]int64          `json:"payouts_by_status"`
	ActivePrograms      int64                     `json:"active_programs"`
	Registrations       RegistrationStatsResponse `json:"registrations"`
	ConfirmedRevenue    float64                   `json:"confirmed_revenue"`
	CommissionLiability float64                   `json:"commission_liability"`
	CompletedPayouts    float64                   `json:"completed_payouts"`
}

// AdminStats GET RouteGroup + AdminStatsRoute.
func (h *StatsHandler) AdminStats(c *gin.Context) {
	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	stats, err := h.statsSvs.AdminStats(reqCtx)
	if err != nil {
		_ = c.AbortWithError(http.StatusInternalServerError, err).SetType(gin.ErrorTypePrivate)
		return
	}

	c.JSON(http.StatusOK, &AdminStatsResponse{
		AffiliatesByStatus: stats.AffiliatesByStatus,
		PayoutsByStatus:    stats.PayoutsByStatus,
		ActivePrograms:     stats.ActivePrograms,
		Registrations: RegistrationStatsResponse{
			Total:               stats.Registrations.Total,
			Pending:             stats.Registrations.Pending,
			Confirmed:           stats.Registrations.Confirmed,
			Cancelled:           stats.Registrations.Cancelled,
			ConfirmedFees:       stats.Registrations.ConfirmedFees.InexactFloat64(),
			ConfirmedCommission: stats.Registrations.ConfirmedCommission.InexactFloat64(),
		},
		ConfirmedRevenue:    stats.ConfirmedRevenue.InexactFloat64(),
		CommissionLiability: stats.CommissionLiability.InexactFloat64(),
		CompletedPayouts:    stats.CompletedPayoutTotal.InexactFloat64(),
	})
}

type AffiliateStatsResponse struct {
	Registrations RegistrationStatsResponse `json:"registrations"`
	Balance       BalanceResponse           `json:"balance"`
}

// AffiliateStats GET RouteGroup + AffiliateStatsRoute.
func (h *StatsHandler) AffiliateStats(c *gin.Context) {
	currentUserID := getUserIDFromContext(c)

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	stats, err := h.statsSvs.AffiliateStatsByUserID(reqCtx, currentUserID)
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			c.AbortWithStatus(http.StatusNotFound)
			return
		}
		_ = c.AbortWithError(http.StatusInternalServerError, err).SetType(gin.ErrorTypePrivate)
		return
	}

	c.JSON(http.StatusOK, &AffiliateStatsResponse{
		Registrations: RegistrationStatsResponse{
			Total:               stats.Registrations.Total,
			Pending:             stats.Registrations.Pending,
			Confirmed:           stats.Registrations.Confirmed,
			Cancelled:           stats.Registrations.Cancelled,
			ConfirmedFees:       stats.Registrations.ConfirmedFees.InexactFloat64(),
			ConfirmedCommission: stats.Registrations.ConfirmedCommission.InexactFloat64(),
		},
		Balance: BalanceResponse{
			TotalEarned:  stats.Balance.TotalEarned.InexactFloat64(),
			PaidOut:      stats.Balance.PaidOut.InexactFloat64(),
			OnHold:       stats.Balance.OnHold.InexactFloat64(),
			Available:    stats.Balance.Available.InexactFloat64(),
			Withdrawable: stats.Balance.Withdrawable.InexactFloat64(),
		},
	})
}
