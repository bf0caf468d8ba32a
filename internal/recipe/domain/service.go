package domain

import (
	"context"
	"errors"
	"time"

	"github.com/bwmarrin/snowflake"
)

// Service mutates drink recipes. Every mutation is a two-step unit of
// work: write the line, then refresh the owning drink's cost. A failed
// refresh after a committed write surfaces as ErrCostRefreshFailed.
type Service interface {
	AddLine(ctx context.Context, drinkID string, req AddLineRequest) (*Response, error)
	UpdateLine(ctx context.Context, drinkID, ingredientID string, req UpdateLineRequest) (*Response, error)
	RemoveLine(ctx context.Context, drinkID, ingredientID string) error
}

type AddLineRequest struct {
	IngredientID     string  `json:"ingredient_id"`
	RequiredQuantity float64 `json:"required_quantity"`
	RecipeUnit       string  `json:"recipe_unit"`
}

type UpdateLineRequest struct {
	RequiredQuantity *float64 `json:"required_quantity"`
	RecipeUnit       *string  `json:"recipe_unit"`
}

type Response struct {
	ID               snowflake.ID `json:"id"`
	AccountID        snowflake.ID `json:"account_id"`
	DrinkID          snowflake.ID `json:"drink_id"`
	IngredientID     snowflake.ID `json:"ingredient_id"`
	RequiredQuantity float64      `json:"required_quantity"`
	RecipeUnit       string       `json:"recipe_unit"`
	DrinkUnitCost    float64      `json:"drink_unit_cost"`
	CreatedAt        time.Time    `json:"created_at"`
	UpdatedAt        time.Time    `json:"updated_at"`
}

var (
	ErrInvalidAccount     = errors.New("invalid_account")
	ErrInvalidID          = errors.New("invalid_id")
	ErrInvalidQuantity    = errors.New("invalid_quantity")
	ErrInvalidUnit        = errors.New("invalid_unit")
	ErrDrinkNotFound      = errors.New("drink_not_found")
	ErrIngredientNotFound = errors.New("ingredient_not_found")
	ErrLineNotFound       = errors.New("line_not_found")
	ErrCostRefreshFailed  = errors.New("cost_refresh_failed")
)
