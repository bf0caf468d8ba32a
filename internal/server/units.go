package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	unitsdomain "github.com/smallbiznis/barflow/internal/units/domain"
)

func (s *Server) ListConversionRules(c *gin.Context) {
	resp, err := s.unitsSvc.ListRules(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) CreateConversionRule(c *gin.Context) {
	var req unitsdomain.CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	resp, err := s.unitsSvc.CreateRule(c.Request.Context(), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func isUnitsValidationError(err error) bool {
	switch err {
	case unitsdomain.ErrInvalidAccount,
		unitsdomain.ErrInvalidUnit,
		unitsdomain.ErrInvalidFactor,
		unitsdomain.ErrNoConversionRule:
		return true
	default:
		return false
	}
}
