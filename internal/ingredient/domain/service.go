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
	Name                 string     `json:"name"`
	Supplier             string     `json:"supplier"`
	QuotationDate        *time.Time `json:"quotation_date"`
	PurchasePrice        float64    `json:"purchase_price"`
	BasePurchaseQuantity float64    `json:"base_purchase_quantity"`
	BasePurchaseUnit     string     `json:"base_purchase_unit"`
	WastagePercentage    *float64   `json:"wastage_percentage"`
	SuggestedBatchSize   *float64   `json:"suggested_batch_size"`
}

type UpdateRequest struct {
	Name                 *string    `json:"name"`
	Supplier             *string    `json:"supplier"`
	QuotationDate        *time.Time `json:"quotation_date"`
	PurchasePrice        *float64   `json:"purchase_price"`
	BasePurchaseQuantity *float64   `json:"base_purchase_quantity"`
	BasePurchaseUnit     *string    `json:"base_purchase_unit"`
	WastagePercentage    *float64   `json:"wastage_percentage"`
	SuggestedBatchSize   *float64   `json:"suggested_batch_size"`
}

type Response struct {
	ID                   snowflake.ID `json:"id"`
	AccountID            snowflake.ID `json:"account_id"`
	Name                 string       `json:"name"`
	Supplier             string       `json:"supplier,omitempty"`
	QuotationDate        *time.Time   `json:"quotation_date,omitempty"`
	PurchasePrice        float64      `json:"purchase_price"`
	BasePurchaseQuantity float64      `json:"base_purchase_quantity"`
	BasePurchaseUnit     string       `json:"base_purchase_unit"`
	WastagePercentage    float64      `json:"wastage_percentage"`
	SuggestedBatchSize   *float64     `json:"suggested_batch_size,omitempty"`
	CostPerBaseUnit      float64      `json:"cost_per_base_unit"`
	RealCostPerBaseUnit  float64      `json:"real_cost_per_base_unit"`
	CreatedAt            time.Time    `json:"created_at"`
	UpdatedAt            time.Time    `json:"updated_at"`
}

var (
	ErrInvalidAccount       = errors.New("invalid_account")
	ErrInvalidName          = errors.New("invalid_name")
	ErrInvalidPurchasePrice = errors.New("invalid_purchase_price")
	ErrInvalidBaseQuantity  = errors.New("invalid_base_quantity")
	ErrInvalidBaseUnit      = errors.New("invalid_base_unit")
	ErrInvalidWastage       = errors.New("invalid_wastage")
	ErrInvalidBatchSize     = errors.New("invalid_batch_size")
	ErrInvalidID            = errors.New("invalid_id")
	ErrNotFound             = errors.New("not_found")
)
