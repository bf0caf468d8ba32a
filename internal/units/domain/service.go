package domain

import (
	"context"
	"errors"
	"time"

	"github.com/bwmarrin/snowflake"
)

// Service converts ingredient quantities between units.
type Service interface {
	// Convert returns qty expressed in the target unit. Unknown pairs
	// fall back to a 1:1 conversion unless strict mode is enabled.
	Convert(ctx context.Context, qty float64, from, to string) (float64, error)
	ListRules(ctx context.Context) ([]Response, error)
	CreateRule(ctx context.Context, req CreateRequest) (*Response, error)
}

type CreateRequest struct {
	FromUnit string  `json:"from_unit"`
	ToUnit   string  `json:"to_unit"`
	Factor   float64 `json:"factor"`
}

type Response struct {
	ID        snowflake.ID `json:"id"`
	AccountID snowflake.ID `json:"account_id"`
	FromUnit  string       `json:"from_unit"`
	ToUnit    string       `json:"to_unit"`
	Factor    float64      `json:"factor"`
	CreatedAt time.Time    `json:"created_at"`
	UpdatedAt time.Time    `json:"updated_at"`
}

var (
	ErrInvalidAccount   = errors.New("invalid_account")
	ErrInvalidUnit      = errors.New("invalid_unit")
	ErrInvalidFactor    = errors.New("invalid_factor")
	ErrNoConversionRule = errors.New("no_conversion_rule")
)
