package server

import (
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/smallbiznis/barflow/internal/providers/pdf"
	purchaselistdomain "github.com/smallbiznis/barflow/internal/purchaselist/domain"
)

func (s *Server) GeneratePurchaseList(c *gin.Context) {
	var req purchaselistdomain.GenerateRequest
	if err := c.ShouldBindJSON(&req); err != nil && err != io.EOF {
		AbortWithError(c, invalidRequestError())
		return
	}

	resp, err := s.purchaseListSvc.Generate(c.Request.Context(), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) ListPurchaseLists(c *gin.Context) {
	resp, err := s.purchaseListSvc.List(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) GetPurchaseList(c *gin.Context) {
	resp, err := s.purchaseListSvc.Get(c.Request.Context(), strings.TrimSpace(c.Param("id")))
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) UpdatePurchaseList(c *gin.Context) {
	var req purchaselistdomain.UpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	resp, err := s.purchaseListSvc.Update(c.Request.Context(), strings.TrimSpace(c.Param("id")), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) DeletePurchaseList(c *gin.Context) {
	if err := s.purchaseListSvc.Delete(c.Request.Context(), strings.TrimSpace(c.Param("id"))); err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": gin.H{"deleted": true}})
}

func (s *Server) RenderPurchaseList(c *gin.Context) {
	list, err := s.purchaseListSvc.Get(c.Request.Context(), strings.TrimSpace(c.Param("id")))
	if err != nil {
		AbortWithError(c, err)
		return
	}

	data := pdf.PurchaseListData{
		Reference:      list.Reference,
		Status:         list.Status,
		GenerationDate: list.GenerationDate.Format("2006-01-02 15:04"),
		EventLabel:     "-",
	}
	if list.EventID != nil {
		data.EventLabel = list.EventID.String()
	}

	for _, item := range list.Items {
		row := pdf.PurchaseListItem{
			IngredientName: item.IngredientID.String(),
			Quantity:       formatAmount(item.RequiredQuantity),
			Unit:           item.RequiredUnit,
			BatchSize:      "-",
			TotalBatches:   "-",
		}
		if ingredient, err := s.ingredientSvc.Get(c.Request.Context(), item.IngredientID.String()); err == nil {
			row.IngredientName = ingredient.Name
		}
		if item.SuggestedBatchSize != nil {
			row.BatchSize = formatAmount(*item.SuggestedBatchSize)
		}
		if item.SuggestedTotalBatches != nil {
			row.TotalBatches = formatAmount(*item.SuggestedTotalBatches)
		}
		data.Items = append(data.Items, row)
	}

	doc, err := s.pdfProvider.GeneratePurchaseList(c.Request.Context(), data)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="purchase-list-`+list.Reference+`.pdf"`)
	c.DataFromReader(http.StatusOK, -1, "application/pdf", doc, nil)
}

func formatAmount(value float64) string {
	return strconv.FormatFloat(value, 'f', -1, 64)
}

func isPurchaseListValidationError(err error) bool {
	switch err {
	case purchaselistdomain.ErrInvalidAccount,
		purchaselistdomain.ErrInvalidID,
		purchaselistdomain.ErrInvalidQuantity,
		purchaselistdomain.ErrInvalidUnit,
		purchaselistdomain.ErrInvalidStatus:
		return true
	default:
		return false
	}
}

func isPurchaseListNotFoundError(err error) bool {
	switch err {
	case purchaselistdomain.ErrNotFound,
		purchaselistdomain.ErrItemNotFound,
		purchaselistdomain.ErrEventNotFound,
		purchaselistdomain.ErrIngredientNotFound:
		return true
	default:
		return false
	}
}
