package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/kursusin/affiliate-backend/internal/domain"
)

type AffiliatesHandler struct {
	affiliateSvs AffiliateServicer
}

func NewAffiliatesHandler(affiliateSvs AffiliateServicer) *AffiliatesHandler {
	return &AffiliatesHandler{
		affiliateSvs: affiliateSvs,
	}
}

type AffiliateResponse struct {
	ID                  int64                      `json:"id"`
	UserID              int64                      `json:"user_id"`
	ReferralCode        string                     `json:"referral_code"`
	CommissionRate      string                     `json:"commission_rate"`
	PayoutMethod        domain.PayoutMethodType    `json:"payout_method"`
	PayoutAccountName   string                     `json:"payout_account_name"`
	PayoutAccountNumber string                     `json:"payout_account_number"`
	Status              domain.AffiliateStatusType `json:"status"`
	ApprovedBy          *int64                     `json:"approved_by,omitempty"`
	ApprovedAt          *time.Time                 `json:"approved_at,omitempty"`
	CreatedAt           time.Time                  `json:"created_at"`
}

func affiliateToResponse(affiliate *domain.Affiliate) AffiliateResponse {
	return AffiliateResponse{
		ID:                  affiliate.ID,
		UserID:              affiliate.UserID,
		ReferralCode:        affiliate.ReferralCode,
		CommissionRate:      affiliate.CommissionRate.String(),
		PayoutMethod:        affiliate.PayoutMethod,
		PayoutAccountName:   affiliate.PayoutAccountName,
		PayoutAccountNumber: affiliate.PayoutAccountNumber,
		Status:              affiliate.Status,
		ApprovedBy:          affiliate.ApprovedBy,
		ApprovedAt:          affiliate.ApprovedAt,
		CreatedAt:           affiliate.CreatedAt,
	}
}

// Profile GET RouteGroup + AffiliateProfileRoute. Returns the affiliate row of
// the current user.
func (h *AffiliatesHandler) Profile(c *gin.Context) {
	currentUserID := getUserIDFromContext(c)

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	affiliate, err := h.affiliateSvs.GetByUserID(reqCtx, currentUserID)
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			c.AbortWithStatus(http.StatusNotFound)
			return
		}
		_ = c.AbortWithError(http.StatusInternalServerError, err).SetType(gin.ErrorTypePrivate)
		return
	}

	c.JSON(http.StatusOK, affiliateToResponse(affiliate))
}

// Index GET RouteGroup + AdminAffiliatesRoute.
func (h *AffiliatesHandler) Index(c *gin.Context) {
	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	affiliates, err := h.affiliateSvs.List(reqCtx, affiliateStatusFromQuery(c))
	if err != nil {
		_ = c.AbortWithError(http.StatusInternalServerError, err).SetType(gin.ErrorTypePrivate)
		return
	}

	response := make([]AffiliateResponse, len(affiliates))
	for i := range affiliates {
		response[i] = affiliateToResponse(&affiliates[i])
	}
	c.JSON(http.StatusOK, response)
}

type AffiliateStatusParams struct {
	Status domain.AffiliateStatusType `binding:"required,oneof=approved rejected suspended" json:"status"`
}

// UpdateStatus PATCH RouteGroup + AdminAffiliateStatusRoute. Approves, rejects
// or suspends an affiliate.
func (h *AffiliatesHandler) UpdateStatus(c *gin.Context) {
	id, ok := getIDParam(c)
	if !ok {
		return
	}

	var params AffiliateStatusParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		_ = c.AbortWithError(http.StatusBadRequest, bindErr).SetType(gin.ErrorTypeBind)
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	affiliate, err := h.affiliateSvs.UpdateStatus(reqCtx, id, params.Status, getUserIDFromContext(c))
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

	c.JSON(http.StatusOK, affiliateToResponse(affiliate))
}
