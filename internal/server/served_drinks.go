package server

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	eventdomain "github.com/smallbiznis/barflow/internal/event/domain"
)

func (s *Server) AddServedDrink(c *gin.Context) {
	var req eventdomain.AddServedDrinkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	resp, err := s.eventSvc.AddServedDrink(c.Request.Context(), strings.TrimSpace(c.Param("id")), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) UpdateServedDrink(c *gin.Context) {
	var req eventdomain.UpdateServedDrinkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	resp, err := s.eventSvc.UpdateServedDrink(c.Request.Context(),
		strings.TrimSpace(c.Param("id")),
		strings.TrimSpace(c.Param("lineId")),
		req,
	)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) RemoveServedDrink(c *gin.Context) {
	err := s.eventSvc.RemoveServedDrink(c.Request.Context(),
		strings.TrimSpace(c.Param("id")),
		strings.TrimSpace(c.Param("lineId")),
	)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": gin.H{"deleted": true}})
}
