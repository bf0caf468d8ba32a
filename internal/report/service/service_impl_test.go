package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/glebarez/sqlite"
	"github.com/smallbiznis/barflow/internal/accountcontext"
	drinkdomain "github.com/smallbiznis/barflow/internal/drink/domain"
	eventdomain "github.com/smallbiznis/barflow/internal/event/domain"
	purchaselistdomain "github.com/smallbiznis/barflow/internal/purchaselist/domain"
	reportdomain "github.com/smallbiznis/barflow/internal/report/domain"
	reportrepository "github.com/smallbiznis/barflow/internal/report/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type reportFixture struct {
	svc   reportdomain.Service
	ctx   context.Context
	db    *gorm.DB
	node  *snowflake.Node
	accID snowflake.ID
}

func setupReportService(t *testing.T) *reportFixture {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&drinkdomain.Drink{},
		&eventdomain.Event{},
		&purchaselistdomain.PurchaseList{},
		&purchaselistdomain.PurchaseListItem{},
	))

	node, err := snowflake.NewNode(1)
	require.NoError(t, err)

	svc := New(Params{
		DB:   db,
		Log:  zap.NewNop(),
		Repo: reportrepository.Provide(),
	})

	accID := node.Generate()
	ctx := accountcontext.WithAccountID(context.Background(), int64(accID))
	return &reportFixture{svc: svc, ctx: ctx, db: db, node: node, accID: accID}
}

func (f *reportFixture) seedEvent(t *testing.T, date time.Time, guests int, drinks, investment, profit, margin float64) {
	t.Helper()

	event := &eventdomain.Event{
		ID:                     f.node.Generate(),
		AccountID:              f.accID,
		ClientID:               f.node.Generate(),
		EventDate:              date,
		NumGuests:              guests,
		DurationHours:          4,
		EstimatedTotalDrinks:   drinks,
		TotalInvestment:        investment,
		GrossProfit:            profit,
		ProfitMarginPercentage: margin,
		CreatedAt:              date,
		UpdatedAt:              date,
	}
	require.NoError(t, f.db.Create(event).Error)
}

func TestMonthlyEventsGroupsByMonth(t *testing.T) {
	f := setupReportService(t)

	f.seedEvent(t, time.Date(2026, 7, 4, 0, 0, 0, 0, time.UTC), 40, 160, 0, 0, 0)
	f.seedEvent(t, time.Date(2026, 7, 18, 0, 0, 0, 0, time.UTC), 60, 240, 0, 0, 0)
	f.seedEvent(t, time.Date(2026, 8, 2, 0, 0, 0, 0, time.UTC), 100, 400, 0, 0, 0)

	rows, err := f.svc.MonthlyEvents(f.ctx)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, "2026-07", rows[0].Month)
	assert.Equal(t, int64(2), rows[0].EventCount)
	assert.Equal(t, int64(100), rows[0].TotalGuests)
	assert.InDelta(t, 400.0, rows[0].EstimatedTotalDrinks, 1e-9)

	assert.Equal(t, "2026-08", rows[1].Month)
	assert.Equal(t, int64(1), rows[1].EventCount)
}

func TestProfitSummary(t *testing.T) {
	f := setupReportService(t)

	f.seedEvent(t, time.Date(2026, 7, 4, 0, 0, 0, 0, time.UTC), 40, 160, 1000, 300, 30)
	f.seedEvent(t, time.Date(2026, 8, 2, 0, 0, 0, 0, time.UTC), 60, 240, 2000, 500, 20)

	summary, err := f.svc.ProfitSummary(f.ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), summary.EventCount)
	assert.InDelta(t, 3000.0, summary.TotalInvestment, 1e-9)
	assert.InDelta(t, 800.0, summary.GrossProfit, 1e-9)
	assert.InDelta(t, 25.0, summary.AverageMargin, 1e-9)
}

func TestDrinkCostDistribution(t *testing.T) {
	f := setupReportService(t)

	now := time.Now().UTC()
	cheap, pricey := 1.5, 4.0
	for name, cost := range map[string]*float64{"House Soda": &cheap, "Old Fashioned": &pricey} {
		require.NoError(t, f.db.Create(&drinkdomain.Drink{
			ID:                 f.node.Generate(),
			AccountID:          f.accID,
			Name:               name,
			CalculatedUnitCost: cost,
			CreatedAt:          now,
			UpdatedAt:          now,
		}).Error)
	}

	rows, err := f.svc.DrinkCostDistribution(f.ctx)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "Old Fashioned", rows[0].Name)
	require.NotNil(t, rows[0].UnitCost)
	assert.Equal(t, 4.0, *rows[0].UnitCost)
}

func TestPurchaseListSummaryCountsItems(t *testing.T) {
	f := setupReportService(t)

	now := time.Now().UTC()
	list := &purchaselistdomain.PurchaseList{
		ID:             f.node.Generate(),
		AccountID:      f.accID,
		Reference:      "01JC0000000000000000000000",
		Status:         purchaselistdomain.StatusGenerated,
		GenerationDate: now,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	require.NoError(t, f.db.Create(list).Error)

	for i := 0; i < 3; i++ {
		require.NoError(t, f.db.Create(&purchaselistdomain.PurchaseListItem{
			ID:               f.node.Generate(),
			AccountID:        f.accID,
			PurchaseListID:   list.ID,
			IngredientID:     f.node.Generate(),
			RequiredQuantity: 1,
			RequiredUnit:     "un",
			CreatedAt:        now,
			UpdatedAt:        now,
		}).Error)
	}

	rows, err := f.svc.PurchaseLists(f.ctx)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, list.Reference, rows[0].Reference)
	assert.Equal(t, int64(3), rows[0].ItemCount)
}
