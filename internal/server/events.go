package server

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	eventdomain "github.com/smallbiznis/barflow/internal/event/domain"
)

func (s *Server) CreateEvent(c *gin.Context) {
	var req eventdomain.CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	resp, err := s.eventSvc.Create(c.Request.Context(), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) ListEvents(c *gin.Context) {
	resp, err := s.eventSvc.List(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) GetEvent(c *gin.Context) {
	resp, err := s.eventSvc.Get(c.Request.Context(), strings.TrimSpace(c.Param("id")))
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) UpdateEvent(c *gin.Context) {
	var req eventdomain.UpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	resp, err := s.eventSvc.Update(c.Request.Context(), strings.TrimSpace(c.Param("id")), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) DeleteEvent(c *gin.Context) {
	if err := s.eventSvc.Delete(c.Request.Context(), strings.TrimSpace(c.Param("id"))); err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": gin.H{"deleted": true}})
}

func isEventValidationError(err error) bool {
	switch err {
	case eventdomain.ErrInvalidAccount,
		eventdomain.ErrInvalidID,
		eventdomain.ErrInvalidGuests,
		eventdomain.ErrInvalidDuration,
		eventdomain.ErrInvalidRating,
		eventdomain.ErrInvalidEstimate,
		eventdomain.ErrInvalidQuantity,
		eventdomain.ErrInvalidDescription,
		eventdomain.ErrInvalidUnitCost,
		eventdomain.ErrDrinkCostNotCalculated:
		return true
	default:
		return false
	}
}

func isEventNotFoundError(err error) bool {
	switch err {
	case eventdomain.ErrNotFound,
		eventdomain.ErrClientNotFound,
		eventdomain.ErrDrinkNotFound,
		eventdomain.ErrLineNotFound,
		eventdomain.ErrCostNotFound:
		return true
	default:
		return false
	}
}
