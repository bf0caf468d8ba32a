package server

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	clientdomain "github.com/smallbiznis/barflow/internal/client/domain"
)

func (s *Server) CreateClient(c *gin.Context) {
	var req clientdomain.CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	resp, err := s.clientSvc.Create(c.Request.Context(), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) ListClients(c *gin.Context) {
	resp, err := s.clientSvc.List(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) GetClient(c *gin.Context) {
	resp, err := s.clientSvc.Get(c.Request.Context(), strings.TrimSpace(c.Param("id")))
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) UpdateClient(c *gin.Context) {
	var req clientdomain.UpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	resp, err := s.clientSvc.Update(c.Request.Context(), strings.TrimSpace(c.Param("id")), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) DeleteClient(c *gin.Context) {
	if err := s.clientSvc.Delete(c.Request.Context(), strings.TrimSpace(c.Param("id"))); err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": gin.H{"deleted": true}})
}

func isClientValidationError(err error) bool {
	switch err {
	case clientdomain.ErrInvalidAccount,
		clientdomain.ErrInvalidName,
		clientdomain.ErrInvalidID:
		return true
	default:
		return false
	}
}

func isClientNotFoundError(err error) bool {
	return err == clientdomain.ErrNotFound
}
