package api

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/kursusin/affiliate-backend/internal/domain"
	"github.com/kursusin/affiliate-backend/internal/repository/repoargs"
)

type ProgramsHandler struct {
	programSvs ProgramServicer
}

func NewProgramsHandler(programSvs ProgramServicer) *ProgramsHandler {
	return &ProgramsHandler{
		programSvs: programSvs,
	}
}

type ProgramResponse struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	Location    string    `json:"location"`
	Price       string    `json:"price"`
	Active      bool      `json:"active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func programToResponse(program *domain.Program) ProgramResponse {
	return ProgramResponse{
		ID:          program.ID,
		Name:        program.Name,
		Description: program.Description,
		Category:    program.Category,
		Location:    program.Location,
		Price:       program.Price.String(),
		Active:      program.Active,
		CreatedAt:   program.CreatedAt,
		UpdatedAt:   program.UpdatedAt,
	}
}

type ProgramCreateParams struct {
	Name        string          `binding:"required,min=1,max=255"    json:"name"`
	Description string          `binding:"max=2000"                  json:"description"`
	Category    string          `binding:"max=120"                   json:"category"`
	Location    string          `binding:"max=120"                   json:"location"`
	Price       decimal.Decimal `binding:"required,positive_decimal" json:"price"`
	Active      *bool           `json:"active"`
}

// Create POST RouteGroup + AdminProgramsRoute. New programs default to active.
func (h *ProgramsHandler) Create(c *gin.Context) {
	var params ProgramCreateParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		_ = c.AbortWithError(http.StatusBadRequest, bindErr).SetType(gin.ErrorTypeBind)
		return
	}

	active := true
	if params.Active != nil {
		active = *params.Active
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	program, err := h.programSvs.Create(reqCtx, repoargs.CreateProgram{
		Name:        params.Name,
		Description: params.Description,
		Category:    params.Category,
		Location:    params.Location,
		Price:       params.Price,
		Active:      active,
	})
	if err != nil {
		_ = c.AbortWithError(http.StatusInternalServerError, err).SetType(gin.ErrorTypePrivate)
		return
	}

	c.JSON(http.StatusCreated, programToResponse(program))
}

// Index GET RouteGroup + AdminProgramsRoute. Supports ?active=true|false.
func (h *ProgramsHandler) Index(c *gin.Context) {
	var filter repoargs.ProgramFilter
	if raw := c.Query("active"); raw != "" {
		active, parseErr := strconv.ParseBool(raw)
		if parseErr != nil {
			_ = c.AbortWithError(http.StatusBadRequest, parseErr).SetType(gin.ErrorTypeBind)
			return
		}
		filter.Active = &active
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	programs, err := h.programSvs.List(reqCtx, filter)
	if err != nil {
		_ = c.AbortWithError(http.StatusInternalServerError, err).SetType(gin.ErrorTypePrivate)
		return
	}

	response := make([]ProgramResponse, len(programs))
	for i := range programs {
		response[i] = programToResponse(&programs[i])
	}
	c.JSON(http.StatusOK, response)
}

type ProgramUpdateParams struct {
	Name        *string          `binding:"omitempty,min=1,max=255"    json:"name"`
	Description *string          `binding:"omitempty,max=2000"         json:"description"`
	Category    *string          `binding:"omitempty,max=120"          json:"category"`
	Location    *string          `binding:"omitempty,max=120"          json:"location"`
	Price       *decimal.Decimal `binding:"omitempty,positive_decimal" json:"price"`
	Active      *bool            `json:"active"`
}

// Update PATCH RouteGroup + AdminProgramRoute. Only the fields present in the
// body change; deactivation happens here via active=false.
func (h *ProgramsHandler) Update(c *gin.Context) {
	id, ok := getIDParam(c)
	if !ok {
		return
	}

	var params ProgramUpdateParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		_ = c.AbortWithError(http.StatusBadRequest, bindErr).SetType(gin.ErrorTypeBind)
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	program, err := h.programSvs.Update(reqCtx, repoargs.UpdateProgram{
		ID:          id,
		Name:        params.Name,
		Description: params.Description,
		Category:    params.Category,
		Location:    params.Location,
		Price:       params.Price,
		Active:      params.Active,
	})
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			c.AbortWithStatus(http.StatusNotFound)
			return
		}
		_ = c.AbortWithError(http.StatusInternalServerError, err).SetType(gin.ErrorTypePrivate)
		return
	}

	c.JSON(http.StatusOK, programToResponse(program))
}
