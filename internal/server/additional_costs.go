package server

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	eventdomain "github.com/smallbiznis/barflow/internal/event/domain"
)

func (s *Server) AddAdditionalCost(c *gin.Context) {
	var req eventdomain.AddCostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	resp, err := s.eventSvc.AddCost(c.Request.Context(), strings.TrimSpace(c.Param("id")), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) UpdateAdditionalCost(c *gin.Context) {
	var req eventdomain.UpdateCostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	resp, err := s.eventSvc.UpdateCost(c.Request.Context(),
		strings.TrimSpace(c.Param("id")),
		strings.TrimSpace(c.Param("costId")),
		req,
	)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) RemoveAdditionalCost(c *gin.Context) {
	err := s.eventSvc.RemoveCost(c.Request.Context(),
		strings.TrimSpace(c.Param("id")),
		strings.TrimSpace(c.Param("costId")),
	)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": gin.H{"deleted": true}})
}
