package server

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	recipedomain "github.com/smallbiznis/barflow/internal/recipe/domain"
)

func (s *Server) AddRecipeLine(c *gin.Context) {
	var req recipedomain.AddLineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	resp, err := s.recipeSvc.AddLine(c.Request.Context(), strings.TrimSpace(c.Param("id")), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) UpdateRecipeLine(c *gin.Context) {
	var req recipedomain.UpdateLineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	resp, err := s.recipeSvc.UpdateLine(c.Request.Context(),
		strings.TrimSpace(c.Param("id")),
		strings.TrimSpace(c.Param("ingredientId")),
		req,
	)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) RemoveRecipeLine(c *gin.Context) {
	err := s.recipeSvc.RemoveLine(c.Request.Context(),
		strings.TrimSpace(c.Param("id")),
		strings.TrimSpace(c.Param("ingredientId")),
	)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": gin.H{"deleted": true}})
}

func isRecipeValidationError(err error) bool {
	switch err {
	case recipedomain.ErrInvalidAccount,
		recipedomain.ErrInvalidID,
		recipedomain.ErrInvalidQuantity,
		recipedomain.ErrInvalidUnit:
		return true
	default:
		return false
	}
}

func isRecipeNotFoundError(err error) bool {
	switch err {
	case recipedomain.ErrDrinkNotFound,
		recipedomain.ErrIngredientNotFound,
		recipedomain.ErrLineNotFound:
		return true
	default:
		return false
	}
}
