package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/kursusin/affiliate-backend/internal/domain"
	"github.com/kursusin/affiliate-backend/internal/service"
)

type AuthHandler struct {
	userService UserServicer
}

func NewAuthHandler(userService UserServicer) *AuthHandler {
	return &AuthHandler{
		userService: userService,
	}
}

type UserRegisterParams struct {
	Email    string          `binding:"required,email,max=255"          json:"email"`
	FullName string          `binding:"required,min=1,max=120"         json:"full_name"`
	Password string          `binding:"required,min=6,max=255"         json:"password"`
	Role     domain.RoleType `binding:"required,oneof=admin affiliate" json:"role"`

	PayoutMethod        domain.PayoutMethodType `binding:"required_if=Role affiliate,omitempty,oneof=bank_transfer e_wallet" json:"payout_method"`
	PayoutAccountName   string                  `binding:"required_if=Role affiliate,max=120"                                json:"payout_account_name"`
	PayoutAccountNumber string                  `binding:"required_if=Role affiliate,max=64"                                 json:"payout_account_number"`
}

type UserResponse struct {
	ID        int64           `json:"id"`
	Email     string          `json:"email"`
	FullName  string          `json:"full_name"`
	Role      domain.RoleType `json:"role"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

func userToResponse(user *domain.User) UserResponse {
	return UserResponse{
		ID:        user.ID,
		Email:     user.Email,
		FullName:  user.FullName,
		Role:      user.Role,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
}

// Register POST RouteGroup + RegisterRoute. Creates the user and, for the
// affiliate role, the affiliate profile with its referral code.
func (h *AuthHandler) Register(c *gin.Context) {
	var params UserRegisterParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		var valErrs validator.ValidationErrors
		if errors.As(bindErr, &valErrs) {
			c.AbortWithStatusJSON(http.StatusUnprocessableEntity, gin.H{"error": valErrs.Error()})
			return
		}
		_ = c.AbortWithError(http.StatusBadRequest, bindErr).
			SetType(gin.ErrorTypeBind)
		return
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	user, affiliate, jwtToken, createErr := h.userService.Register(ctx, service.RegisterUserArgs{
		Email:               params.Email,
		FullName:            params.FullName,
		Password:            params.Password,
		Role:                params.Role,
		PayoutMethod:        params.PayoutMethod,
		PayoutAccountName:   params.PayoutAccountName,
		PayoutAccountNumber: params.PayoutAccountNumber,
	})
	if createErr != nil {
		if errors.Is(createErr, domain.ErrDuplicateKey) {
			_ = c.AbortWithError(http.StatusConflict, errors.New("user with this email already exists")).
				SetType(gin.ErrorTypePublic)
			return
		}
		_ = c.AbortWithError(http.StatusInternalServerError, createErr).
			SetType(gin.ErrorTypePrivate)
		return
	}

	c.Header("Authorization", "Bearer "+jwtToken)

	response := gin.H{"user": userToResponse(user)}
	if affiliate != nil {
		response["affiliate"] = affiliateToResponse(affiliate)
	}
	c.JSON(http.StatusCreated, response)
}

type UserLoginParams struct {
	Email    string `binding:"required,email"         json:"email"`
	Password string `binding:"required,min=6,max=255" json:"password"`
}

// Login POST RouteGroup + LoginRoute. Authenticates by email/password pair.
func (h *AuthHandler) Login(c *gin.Context) {
	var params UserLoginParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		_ = c.AbortWithError(http.StatusBadRequest, bindErr).
			SetType(gin.ErrorTypeBind)
		return
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	user, token, err := h.userService.Login(ctx, service.LoginUserArgs{
		Email:    params.Email,
		Password: params.Password,
	})

	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) || errors.Is(err, domain.ErrPasswordMissMatch) {
			_ = c.Error(err)
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
			return
		}
		_ = c.AbortWithError(http.StatusInternalServerError, err).SetType(gin.ErrorTypePrivate)
		return
	}
	c.Header("Authorization", "Bearer "+token)

	c.JSON(http.StatusOK, gin.H{"user": userToResponse(user)})
}
