package service

import (
	"context"
	"sort"

	"github.com/smallbiznis/barflow/internal/accountcontext"
	reportdomain "github.com/smallbiznis/barflow/internal/report/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Params struct {
	fx.In

	DB   *gorm.DB
	Log  *zap.Logger
	Repo reportdomain.Repository
}

type Service struct {
	db   *gorm.DB
	log  *zap.Logger
	repo reportdomain.Repository
}

func New(p Params) reportdomain.Service {
	return &Service{
		db:   p.DB,
		log:  p.Log.Named("report.service"),
		repo: p.Repo,
	}
}

func (s *Service) MonthlyEvents(ctx context.Context) ([]reportdomain.MonthlyEventsRow, error) {
	accountID, ok := accountcontext.AccountIDFromContext(ctx)
	if !ok || accountID == 0 {
		return nil, reportdomain.ErrInvalidAccount
	}

	facts, err := s.repo.EventFacts(ctx, s.db, accountID)
	if err != nil {
		return nil, err
	}

	byMonth := map[string]*reportdomain.MonthlyEventsRow{}
	for _, fact := range facts {
		month := fact.EventDate.Format("2006-01")
		row, seen := byMonth[month]
		if !seen {
			row = &reportdomain.MonthlyEventsRow{Month: month}
			byMonth[month] = row
		}
		row.EventCount++
		row.TotalGuests += fact.NumGuests
		row.EstimatedTotalDrinks += fact.EstimatedTotalDrinks
	}

	rows := make([]reportdomain.MonthlyEventsRow, 0, len(byMonth))
	for _, row := range byMonth {
		rows = append(rows, *row)
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].Month < rows[j].Month })
	return rows, nil
}

func (s *Service) ProfitSummary(ctx context.Context) (*reportdomain.ProfitSummary, error) {
	accountID, ok := accountcontext.AccountIDFromContext(ctx)
	if !ok || accountID == 0 {
		return nil, reportdomain.ErrInvalidAccount
	}

	facts, err := s.repo.EventFacts(ctx, s.db, accountID)
	if err != nil {
		return nil, err
	}

	summary := &reportdomain.ProfitSummary{}
	var marginSum float64
	for _, fact := range facts {
		summary.EventCount++
		summary.TotalInvestment += fact.TotalInvestment
		summary.GrossProfit += fact.GrossProfit
		marginSum += fact.ProfitMargin
	}
	if summary.EventCount > 0 {
		summary.AverageMargin = marginSum / float64(summary.EventCount)
	}
	return summary, nil
}

func (s *Service) DrinkCostDistribution(ctx context.Context) ([]reportdomain.DrinkCostRow, error) {
	accountID, ok := accountcontext.AccountIDFromContext(ctx)
	if !ok || accountID == 0 {
		return nil, reportdomain.ErrInvalidAccount
	}
	return s.repo.DrinkCosts(ctx, s.db, accountID)
}

func (s *Service) PurchaseLists(ctx context.Context) ([]reportdomain.PurchaseListRow, error) {
	accountID, ok := accountcontext.AccountIDFromContext(ctx)
	if !ok || accountID == 0 {
		return nil, reportdomain.ErrInvalidAccount
	}
	return s.repo.PurchaseListSummary(ctx, s.db, accountID)
}
