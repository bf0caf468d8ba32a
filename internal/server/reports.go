package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	reportdomain "github.com/smallbiznis/barflow/internal/report/domain"
)

func (s *Server) MonthlyEventsReport(c *gin.Context) {
	resp, err := s.reportSvc.MonthlyEvents(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) ProfitSummaryReport(c *gin.Context) {
	resp, err := s.reportSvc.ProfitSummary(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) DrinkCostDistributionReport(c *gin.Context) {
	resp, err := s.reportSvc.DrinkCostDistribution(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) PurchaseListReport(c *gin.Context) {
	resp, err := s.reportSvc.PurchaseLists(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func isReportValidationError(err error) bool {
	return err == reportdomain.ErrInvalidAccount
}
