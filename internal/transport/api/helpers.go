package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/kursusin/affiliate-backend/internal/domain"
	"github.com/kursusin/affiliate-backend/internal/transport/api/middlewares"
)

// getUserIDFromContext reads the current user id set by
// middlewares.AuthRequired. Returns 0 when absent.
func getUserIDFromContext(c *gin.Context) int64 {
	stored, exist := c.Get(middlewares.CurrentUserIDKey)
	if !exist {
		return 0
	}
	userID, ok := stored.(int64)
	if !ok {
		return 0
	}
	return userID
}

// getIDParam parses the :id route param. Aborts with 404 on garbage so an
// unparseable id reads the same as a missing record.
func getIDParam(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.AbortWithStatus(http.StatusNotFound)
		return 0, false
	}
	return id, true
}

func affiliateStatusFromQuery(c *gin.Context) *domain.AffiliateStatusType {
	raw := c.Query("status")
	if raw == "" {
		return nil
	}
	status := domain.AffiliateStatusType(raw)
	return &status
}
