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
}

type CreateRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
	City    string `json:"city"`
	TaxID   string `json:"tax_id"`
}

type UpdateRequest struct {
	Name    *string `json:"name"`
	Email   *string `json:"email"`
	Phone   *string `json:"phone"`
	Address *string `json:"address"`
	City    *string `json:"city"`
	TaxID   *string `json:"tax_id"`
}

type Response struct {
	ID        snowflake.ID `json:"id"`
	AccountID snowflake.ID `json:"account_id"`
	Name      string       `json:"name"`
	Email     string       `json:"email,omitempty"`
	Phone     string       `json:"phone,omitempty"`
	Address   string       `json:"address,omitempty"`
	City      string       `json:"city,omitempty"`
	TaxID     string       `json:"tax_id,omitempty"`
	CreatedAt time.Time    `json:"created_at"`
	UpdatedAt time.Time    `json:"updated_at"`
}

var (
	ErrInvalidAccount = errors.New("invalid_account")
	ErrInvalidName    = errors.New("invalid_name")
	ErrInvalidID      = errors.New("invalid_id")
	ErrNotFound       = errors.New("not_found")
)
