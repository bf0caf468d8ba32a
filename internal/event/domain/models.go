package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
	"gorm.io/datatypes"
)

// Event is a booked engagement. EstimatedTotalDrinks is derived from
// guests, duration and rating; TotalInvestment and GrossProfit are
// opaque accounting figures read only by the reporting queries.
type Event struct {
	ID                     snowflake.ID      `json:"id" gorm:"primaryKey"`
	AccountID              snowflake.ID      `json:"account_id" gorm:"column:account_id;not null;index"`
	ClientID               snowflake.ID      `json:"client_id" gorm:"column:client_id;not null;index"`
	EventDate              time.Time         `json:"event_date" gorm:"not null"`
	Location               string            `json:"location,omitempty" gorm:"type:text"`
	NumGuests              int               `json:"num_guests" gorm:"not null"`
	DurationHours          float64           `json:"duration_hours" gorm:"type:numeric;not null"`
	PublicRating           float64           `json:"public_rating" gorm:"type:numeric;not null;default:0"`
	DistanceKm             float64           `json:"distance_km" gorm:"type:numeric;not null;default:0"`
	ProfitMarginPercentage float64           `json:"profit_margin_percentage" gorm:"type:numeric;not null;default:0"`
	EstimatedTotalDrinks   float64           `json:"estimated_total_drinks" gorm:"type:numeric;not null;default:0"`
	TotalInvestment        float64           `json:"total_investment" gorm:"type:numeric;not null;default:0"`
	GrossProfit            float64           `json:"gross_profit" gorm:"type:numeric;not null;default:0"`
	Metadata               datatypes.JSONMap `json:"metadata,omitempty" gorm:"type:jsonb"`
	CreatedAt              time.Time         `json:"created_at" gorm:"not null;default:CURRENT_TIMESTAMP"`
	UpdatedAt              time.Time         `json:"updated_at" gorm:"not null;default:CURRENT_TIMESTAMP"`
}

func (Event) TableName() string { return "events" }

// ServedDrinkLine records a drink poured at an event. UnitCostAtEvent
// is snapshotted from the drink at creation time and is only changed
// by an explicit caller override, never by later recipe edits.
type ServedDrinkLine struct {
	ID               snowflake.ID `json:"id" gorm:"primaryKey"`
	AccountID        snowflake.ID `json:"account_id" gorm:"column:account_id;not null;index"`
	EventID          snowflake.ID `json:"event_id" gorm:"column:event_id;not null;index"`
	DrinkID          snowflake.ID `json:"drink_id" gorm:"column:drink_id;not null"`
	ServedQuantity   float64      `json:"served_quantity" gorm:"type:numeric;not null"`
	UnitCostAtEvent  *float64     `json:"unit_cost_at_event,omitempty" gorm:"type:numeric"`
	TotalCostAtEvent *float64     `json:"total_cost_at_event,omitempty" gorm:"type:numeric"`
	CreatedAt        time.Time    `json:"created_at" gorm:"not null;default:CURRENT_TIMESTAMP"`
	UpdatedAt        time.Time    `json:"updated_at" gorm:"not null;default:CURRENT_TIMESTAMP"`
}

func (ServedDrinkLine) TableName() string { return "event_served_drinks" }

type AdditionalCostLine struct {
	ID          snowflake.ID `json:"id" gorm:"primaryKey"`
	AccountID   snowflake.ID `json:"account_id" gorm:"column:account_id;not null;index"`
	EventID     snowflake.ID `json:"event_id" gorm:"column:event_id;not null;index"`
	Description string       `json:"description" gorm:"type:text;not null"`
	Quantity    float64      `json:"quantity" gorm:"type:numeric;not null"`
	Unit        string       `json:"unit,omitempty" gorm:"type:text"`
	UnitCost    float64      `json:"unit_cost" gorm:"type:numeric;not null"`
	TotalCost   float64      `json:"total_cost" gorm:"type:numeric;not null"`
	CreatedAt   time.Time    `json:"created_at" gorm:"not null;default:CURRENT_TIMESTAMP"`
	UpdatedAt   time.Time    `json:"updated_at" gorm:"not null;default:CURRENT_TIMESTAMP"`
}

func (AdditionalCostLine) TableName() string { return "event_additional_costs" }
