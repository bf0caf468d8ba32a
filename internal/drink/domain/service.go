package domain

import (
	"context"
	"errors"
	"time"

	"github.com/bwmarrin/snowflake"
)

type Service interface {
	Create(ctx context.Context, req CreateRequest) (*Response, error)
	List(ctx context.Context) ([]Response, error)
	Get(ctx context.Context, id string) (*Response, error)
	Update(ctx context.Context, id string, req UpdateRequest) (*Response, error)
	Delete(ctx context.Context, id string) error

	// Recalculate folds the recipe lines into a fresh unit cost and
	// persists it. It is idempotent for an unchanged recipe.
	Recalculate(ctx context.Context, drinkID snowflake.ID) (float64, error)
}

type CreateRequest struct {
	Name string `json:"name"`
	Type string `json:"type"`
}

type UpdateRequest struct {
	Name *string `json:"name"`
	Type *string `json:"type"`
}

type Response struct {
	ID                 snowflake.ID `json:"id"`
	AccountID          snowflake.ID `json:"account_id"`
	Name               string       `json:"name"`
	Type               string       `json:"type,omitempty"`
	Code               string       `json:"code,omitempty"`
	CalculatedUnitCost *float64     `json:"calculated_unit_cost,omitempty"`
	CreatedAt          time.Time    `json:"created_at"`
	UpdatedAt          time.Time    `json:"updated_at"`
}

var (
	ErrInvalidAccount     = errors.New("invalid_account")
	ErrInvalidName        = errors.New("invalid_name")
	ErrInvalidID          = errors.New("invalid_id")
	ErrNotFound           = errors.New("not_found")
	ErrIngredientNotFound = errors.New("ingredient_not_found")
)
