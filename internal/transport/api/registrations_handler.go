package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/kursusin/affiliate-backend/internal/domain"
	"github.com/kursusin/affiliate-backend/internal/repository/repoargs"
	"github.com/kursusin/affiliate-backend/internal/service"
)

type RegistrationsHandler struct {
	registrationSvs RegistrationServicer
}

func NewRegistrationsHandler(registrationSvs RegistrationServicer) *RegistrationsHandler {
	return &RegistrationsHandler{
		registrationSvs: registrationSvs,
	}
}

type RegistrationResponse struct {
	ID               int64                         `json:"id"`
	AffiliateID      int64                         `json:"affiliate_id"`
	ProgramID        int64                         `json:"program_id"`
	StudentName      string                        `json:"student_name"`
	StudentEmail     string                        `json:"student_email"`
	StudentPhone     string                        `json:"student_phone"`
	RegistrationFee  string                        `json:"registration_fee"`
	CommissionAmount string                        `json:"commission_amount"`
	Status           domain.RegistrationStatusType `json:"status"`
	ConfirmedBy      *int64                        `json:"confirmed_by,omitempty"`
	ConfirmedAt      *time.Time                    `json:"confirmed_at,omitempty"`
	CreatedAt        time.Time                     `json:"created_at"`
}

func registrationToResponse(registration *domain.StudentRegistration) RegistrationResponse {
	return RegistrationResponse{
		ID:               registration.ID,
		AffiliateID:      registration.AffiliateID,
		ProgramID:        registration.ProgramID,
		StudentName:      registration.StudentName,
		StudentEmail:     registration.StudentEmail,
		StudentPhone:     registration.StudentPhone,
		RegistrationFee:  registration.RegistrationFee.String(),
		CommissionAmount: registration.CommissionAmount.String(),
		Status:           registration.Status,
		ConfirmedBy:      registration.ConfirmedBy,
		ConfirmedAt:      registration.ConfirmedAt,
		CreatedAt:        registration.CreatedAt,
	}
}

type RegistrationCreateParams struct {
	ReferralCode string `binding:"required,len=8"         json:"referral_code"`
	ProgramID    int64  `binding:"required,gt=0"          json:"program_id"`
	StudentName  string `binding:"required,min=1,max=120" json:"student_name"`
	StudentEmail string `binding:"required,email,max=255" json:"student_email"`
	StudentPhone string `binding:"required,min=6,max=32"  json:"student_phone"`
}

// Create POST RouteGroup + PublicRegistrationsRoute. The landing page calls
// this without auth; attribution runs through the referral code.
func (h *RegistrationsHandler) Create(c *gin.Context) {
	var params RegistrationCreateParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		var valErrs validator.ValidationErrors
		if errors.As(bindErr, &valErrs) {
			c.AbortWithStatusJSON(http.StatusUnprocessableEntity, gin.H{"error": valErrs.Error()})
			return
		}
		_ = c.AbortWithError(http.StatusBadRequest, bindErr).SetType(gin.ErrorTypeBind)
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	registration, err := h.registrationSvs.Create(reqCtx, service.CreateRegistrationArgs{
		ReferralCode: params.ReferralCode,
		ProgramID:    params.ProgramID,
		StudentName:  params.StudentName,
		StudentEmail: params.StudentEmail,
		StudentPhone: params.StudentPhone,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound),
			errors.Is(err, domain.ErrAffiliateNotApproved):
			_ = c.AbortWithError(http.StatusUnprocessableEntity, errors.New("unknown referral code")).
				SetType(gin.ErrorTypePublic)
		case errors.Is(err, domain.ErrProgramInactive):
			_ = c.AbortWithError(http.StatusUnprocessableEntity, errors.New("program is not active")).
				SetType(gin.ErrorTypePublic)
		default:
			_ = c.AbortWithError(http.StatusInternalServerError, err).SetType(gin.ErrorTypePrivate)
		}
		return
	}

	c.JSON(http.StatusCreated, registrationToResponse(registration))
}

// OwnIndex GET RouteGroup + AffiliateRegistrationsRoute.
func (h *RegistrationsHandler) OwnIndex(c *gin.Context) {
	currentUserID := getUserIDFromContext(c)

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	registrations, err := h.registrationSvs.GetByUserID(reqCtx, currentUserID)
	if err != nil {
		_ = c.AbortWithError(http.StatusInternalServerError, err).SetType(gin.ErrorTypePrivate)
		return
	}

	if len(registrations) == 0 {
		c.AbortWithStatus(http.StatusNoContent)
		return
	}

	response := make([]RegistrationResponse, len(registrations))
	for i := range registrations {
		response[i] = registrationToResponse(&registrations[i])
	}
	c.JSON(http.StatusOK, response)
}

// Index GET RouteGroup + AdminRegistrationsRoute. Supports ?status=.
func (h *RegistrationsHandler) Index(c *gin.Context) {
	var filter repoargs.RegistrationFilter
	if raw := c.Query("status"); raw != "" {
		status := domain.RegistrationStatusType(raw)
		filter.Status = &status
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	registrations, err := h.registrationSvs.List(reqCtx, filter)
	if err != nil {
		_ = c.AbortWithError(http.StatusInternalServerError, err).SetType(gin.ErrorTypePrivate)
		return
	}

	response := make([]RegistrationResponse, len(registrations))
	for i := range registrations {
		response[i] = registrationToResponse(&registrations[i])
	}
	c.JSON(http.StatusOK, response)
}

type RegistrationStatusParams struct {
	Status domain.RegistrationStatusType `binding:"required,oneof=confirmed cancelled" json:"status"`
}

// UpdateStatus PATCH RouteGroup + AdminRegistrationStatusRoute. Confirms or
// cancels a registration.
func (h *RegistrationsHandler) UpdateStatus(c *gin.Context) {
	id, ok := getIDParam(c)
	if !ok {
		return
	}

	var params RegistrationStatusParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		_ = c.AbortWithError(http.StatusBadRequest, bindErr).SetType(gin.ErrorTypeBind)
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	registration, err := h.registrationSvs.UpdateStatus(reqCtx, id, params.Status, getUserIDFromContext(c))
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

	c.JSON(http.StatusOK, registrationToResponse(registration))
}
