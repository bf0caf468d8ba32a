package domain

import (
	"context"
	"errors"
	"time"

	"github.com/bwmarrin/snowflake"
	"gorm.io/gorm"
)

type Service interface {
	MonthlyEvents(ctx context.Context) ([]MonthlyEventsRow, error)
	ProfitSummary(ctx context.Context) (*ProfitSummary, error)
	DrinkCostDistribution(ctx context.Context) ([]DrinkCostRow, error)
	PurchaseLists(ctx context.Context) ([]PurchaseListRow, error)
}

// MonthlyEventsRow aggregates one calendar month of bookings.
type MonthlyEventsRow struct {
	Month                string  `json:"month"`
	EventCount           int64   `json:"event_count"`
	TotalGuests          int64   `json:"total_guests"`
	EstimatedTotalDrinks float64 `json:"estimated_total_drinks"`
}

type ProfitSummary struct {
	EventCount      int64   `json:"event_count"`
	TotalInvestment float64 `json:"total_investment"`
	GrossProfit     float64 `json:"gross_profit"`
	AverageMargin   float64 `json:"average_margin"`
}

type DrinkCostRow struct {
	DrinkID  snowflake.ID `json:"drink_id"`
	Name     string       `json:"name"`
	UnitCost *float64     `json:"unit_cost,omitempty"`
}

type PurchaseListRow struct {
	PurchaseListID snowflake.ID `json:"purchase_list_id"`
	Reference      string       `json:"reference"`
	Status         string       `json:"status"`
	GenerationDate time.Time    `json:"generation_date"`
	ItemCount      int64        `json:"item_count"`
}

// EventFacts is the raw per-event slice the reporting queries read;
// the services do the calendar grouping so the SQL stays portable
// across dialects.
type EventFacts struct {
	EventDate            time.Time
	NumGuests            int64
	EstimatedTotalDrinks float64
	TotalInvestment      float64
	GrossProfit          float64
	ProfitMargin         float64
}

type Repository interface {
	EventFacts(ctx context.Context, db *gorm.DB, accountID snowflake.ID) ([]EventFacts, error)
	DrinkCosts(ctx context.Context, db *gorm.DB, accountID snowflake.ID) ([]DrinkCostRow, error)
	PurchaseListSummary(ctx context.Context, db *gorm.DB, accountID snowflake.ID) ([]PurchaseListRow, error)
}

var ErrInvalidAccount = errors.New("invalid_account")
