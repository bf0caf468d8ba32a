package domain

import (
	"context"
	"errors"
	"time"

	"github.com/bwmarrin/snowflake"
	"gorm.io/datatypes"
)

type Service interface {
	Create(ctx context.Context, req CreateRequest) (*Response, error)
	List(ctx context.Context) ([]Response, error)
	Get(ctx context.Context, id string) (*Response, error)
	Update(ctx context.Context, id string, req UpdateRequest) (*Response, error)
	Delete(ctx context.Context, id string) error

	AddServedDrink(ctx context.Context, eventID string, req AddServedDrinkRequest) (*ServedDrinkResponse, error)
	UpdateServedDrink(ctx context.Context, eventID, lineID string, req UpdateServedDrinkRequest) (*ServedDrinkResponse, error)
	RemoveServedDrink(ctx context.Context, eventID, lineID string) error

	AddCost(ctx context.Context, eventID string, req AddCostRequest) (*CostResponse, error)
	UpdateCost(ctx context.Context, eventID, costID string, req UpdateCostRequest) (*CostResponse, error)
	RemoveCost(ctx context.Context, eventID, costID string) error
}

type CreateRequest struct {
	ClientID               string                 `json:"client_id"`
	EventDate              time.Time              `json:"event_date"`
	Location               string                 `json:"location"`
	NumGuests              int                    `json:"num_guests"`
	DurationHours          float64                `json:"duration_hours"`
	PublicRating           *float64               `json:"public_rating"`
	DistanceKm             float64                `json:"distance_km"`
	ProfitMarginPercentage float64                `json:"profit_margin_percentage"`
	TotalInvestment        float64                `json:"total_investment"`
	GrossProfit            float64                `json:"gross_profit"`
	Metadata               map[string]interface{} `json:"metadata"`
}

type UpdateRequest struct {
	ClientID               *string                `json:"client_id"`
	EventDate              *time.Time             `json:"event_date"`
	Location               *string                `json:"location"`
	NumGuests              *int                   `json:"num_guests"`
	DurationHours          *float64               `json:"duration_hours"`
	PublicRating           *float64               `json:"public_rating"`
	DistanceKm             *float64               `json:"distance_km"`
	ProfitMarginPercentage *float64               `json:"profit_margin_percentage"`
	TotalInvestment        *float64               `json:"total_investment"`
	GrossProfit            *float64               `json:"gross_profit"`
	Metadata               map[string]interface{} `json:"metadata"`
}

type Response struct {
	ID                     snowflake.ID      `json:"id"`
	AccountID              snowflake.ID      `json:"account_id"`
	ClientID               snowflake.ID      `json:"client_id"`
	EventDate              time.Time         `json:"event_date"`
	Location               string            `json:"location,omitempty"`
	NumGuests              int               `json:"num_guests"`
	DurationHours          float64           `json:"duration_hours"`
	PublicRating           float64           `json:"public_rating"`
	DistanceKm             float64           `json:"distance_km"`
	ProfitMarginPercentage float64           `json:"profit_margin_percentage"`
	EstimatedTotalDrinks   float64           `json:"estimated_total_drinks"`
	TotalInvestment        float64           `json:"total_investment"`
	GrossProfit            float64           `json:"gross_profit"`
	Metadata               datatypes.JSONMap `json:"metadata,omitempty"`
	CreatedAt              time.Time         `json:"created_at"`
	UpdatedAt              time.Time         `json:"updated_at"`
}

type AddServedDrinkRequest struct {
	DrinkID         string   `json:"drink_id"`
	ServedQuantity  float64  `json:"served_quantity"`
	UnitCostAtEvent *float64 `json:"unit_cost_at_event"`
}

type UpdateServedDrinkRequest struct {
	ServedQuantity  *float64 `json:"served_quantity"`
	UnitCostAtEvent *float64 `json:"unit_cost_at_event"`
}

type ServedDrinkResponse struct {
	ID               snowflake.ID `json:"id"`
	AccountID        snowflake.ID `json:"account_id"`
	EventID          snowflake.ID `json:"event_id"`
	DrinkID          snowflake.ID `json:"drink_id"`
	ServedQuantity   float64      `json:"served_quantity"`
	UnitCostAtEvent  *float64     `json:"unit_cost_at_event,omitempty"`
	TotalCostAtEvent *float64     `json:"total_cost_at_event,omitempty"`
	CreatedAt        time.Time    `json:"created_at"`
	UpdatedAt        time.Time    `json:"updated_at"`
}

type AddCostRequest struct {
	Description string  `json:"description"`
	Quantity    float64 `json:"quantity"`
	Unit        string  `json:"unit"`
	UnitCost    float64 `json:"unit_cost"`
}

type UpdateCostRequest struct {
	Description *string  `json:"description"`
	Quantity    *float64 `json:"quantity"`
	Unit        *string  `json:"unit"`
	UnitCost    *float64 `json:"unit_cost"`
}

type CostResponse struct {
	ID          snowflake.ID `json:"id"`
	AccountID   snowflake.ID `json:"account_id"`
	EventID     snowflake.ID `json:"event_id"`
	Description string       `json:"description"`
	Quantity    float64      `json:"quantity"`
	Unit        string       `json:"unit,omitempty"`
	UnitCost    float64      `json:"unit_cost"`
	TotalCost   float64      `json:"total_cost"`
	CreatedAt   time.Time    `json:"created_at"`
	UpdatedAt   time.Time    `json:"updated_at"`
}

var (
	ErrInvalidAccount         = errors.New("invalid_account")
	ErrInvalidID              = errors.New("invalid_id")
	ErrInvalidGuests          = errors.New("invalid_guests")
	ErrInvalidDuration        = errors.New("invalid_duration")
	ErrInvalidRating          = errors.New("invalid_rating")
	ErrInvalidEstimate        = errors.New("invalid_estimate")
	ErrInvalidQuantity        = errors.New("invalid_quantity")
	ErrInvalidDescription     = errors.New("invalid_description")
	ErrInvalidUnitCost        = errors.New("invalid_unit_cost")
	ErrNotFound               = errors.New("event_not_found")
	ErrClientNotFound         = errors.New("client_not_found")
	ErrDrinkNotFound          = errors.New("drink_not_found")
	ErrLineNotFound           = errors.New("line_not_found")
	ErrCostNotFound           = errors.New("cost_not_found")
	ErrDrinkCostNotCalculated = errors.New("drink_cost_not_calculated")
)
