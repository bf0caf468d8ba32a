package server

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	purchaselistdomain "github.com/smallbiznis/barflow/internal/purchaselist/domain"
)

func (s *Server) AddPurchaseListItem(c *gin.Context) {
	var req purchaselistdomain.AddItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	resp, err := s.purchaseListSvc.AddItem(c.Request.Context(), strings.TrimSpace(c.Param("id")), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) UpdatePurchaseListItem(c *gin.Context) {
	var req purchaselistdomain.UpdateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	resp, err := s.purchaseListSvc.UpdateItem(c.Request.Context(),
		strings.TrimSpace(c.Param("id")),
		strings.TrimSpace(c.Param("itemId")),
		req,
	)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) RemovePurchaseListItem(c *gin.Context) {
	err := s.purchaseListSvc.RemoveItem(c.Request.Context(),
		strings.TrimSpace(c.Param("id")),
		strings.TrimSpace(c.Param("itemId")),
	)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": gin.H{"deleted": true}})
}
