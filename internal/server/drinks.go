package server

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	drinkdomain "github.com/smallbiznis/barflow/internal/drink/domain"
)

func (s *Server) CreateDrink(c *gin.Context) {
	var req drinkdomain.CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	resp, err := s.drinkSvc.Create(c.Request.Context(), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) ListDrinks(c *gin.Context) {
	resp, err := s.drinkSvc.List(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) GetDrink(c *gin.Context) {
	resp, err := s.drinkSvc.Get(c.Request.Context(), strings.TrimSpace(c.Param("id")))
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) UpdateDrink(c *gin.Context) {
	var req drinkdomain.UpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	resp, err := s.drinkSvc.Update(c.Request.Context(), strings.TrimSpace(c.Param("id")), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) DeleteDrink(c *gin.Context) {
	if err := s.drinkSvc.Delete(c.Request.Context(), strings.TrimSpace(c.Param("id"))); err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": gin.H{"deleted": true}})
}

func isDrinkValidationError(err error) bool {
	switch err {
	case drinkdomain.ErrInvalidAccount,
		drinkdomain.ErrInvalidName,
		drinkdomain.ErrInvalidID:
		return true
	default:
		return false
	}
}

func isDrinkNotFoundError(err error) bool {
	switch err {
	case drinkdomain.ErrNotFound,
		drinkdomain.ErrIngredientNotFound:
		return true
	default:
		return false
	}
}
