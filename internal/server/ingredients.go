package server

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	ingredientdomain "github.com/smallbiznis/barflow/internal/ingredient/domain"
)

func (s *Server) CreateIngredient(c *gin.Context) {
	var req ingredientdomain.CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	resp, err := s.ingredientSvc.Create(c.Request.Context(), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) ListIngredients(c *gin.Context) {
	resp, err := s.ingredientSvc.List(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) GetIngredient(c *gin.Context) {
	resp, err := s.ingredientSvc.Get(c.Request.Context(), strings.TrimSpace(c.Param("id")))
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) UpdateIngredient(c *gin.Context) {
	var req ingredientdomain.UpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	resp, err := s.ingredientSvc.Update(c.Request.Context(), strings.TrimSpace(c.Param("id")), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) DeleteIngredient(c *gin.Context) {
	if err := s.ingredientSvc.Delete(c.Request.Context(), strings.TrimSpace(c.Param("id"))); err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": gin.H{"deleted": true}})
}

func isIngredientValidationError(err error) bool {
	switch err {
	case ingredientdomain.ErrInvalidAccount,
		ingredientdomain.ErrInvalidName,
		ingredientdomain.ErrInvalidPurchasePrice,
		ingredientdomain.ErrInvalidBaseQuantity,
		ingredientdomain.ErrInvalidBaseUnit,
		ingredientdomain.ErrInvalidWastage,
		ingredientdomain.ErrInvalidBatchSize,
		ingredientdomain.ErrInvalidID:
		return true
	default:
		return false
	}
}

func isIngredientNotFoundError(err error) bool {
	return err == ingredientdomain.ErrNotFound
}
