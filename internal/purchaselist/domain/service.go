package domain

import (
	"context"
	"errors"
	"time"

	"github.com/bwmarrin/snowflake"
	"gorm.io/datatypes"
)

type Service interface {
	// Plan projects ingredient demand for a set of events without
	// writing anything. An empty scope yields an empty slice.
	Plan(ctx context.Context, eventIDs []string) ([]PlannedItem, error)
	// Generate runs Plan and materializes the result as a new list.
	Generate(ctx context.Context, req GenerateRequest) (*Response, error)

	List(ctx context.Context) ([]Response, error)
	Get(ctx context.Context, id string) (*Response, error)
	Update(ctx context.Context, id string, req UpdateRequest) (*Response, error)
	Delete(ctx context.Context, id string) error

	AddItem(ctx context.Context, listID string, req AddItemRequest) (*ItemResponse, error)
	UpdateItem(ctx context.Context, listID, itemID string, req UpdateItemRequest) (*ItemResponse, error)
	RemoveItem(ctx context.Context, listID, itemID string) error
}

// PlannedItem is one aggregated ingredient requirement, expressed in
// the ingredient's base purchase unit.
type PlannedItem struct {
	IngredientID          snowflake.ID `json:"ingredient_id"`
	IngredientName        string       `json:"ingredient_name"`
	RequiredQuantity      float64      `json:"required_quantity"`
	RequiredUnit          string       `json:"required_unit"`
	SuggestedBatchSize    *float64     `json:"suggested_batch_size,omitempty"`
	SuggestedTotalBatches *float64     `json:"suggested_total_batches,omitempty"`
}

type GenerateRequest struct {
	EventIDs []string               `json:"event_ids"`
	Metadata map[string]interface{} `json:"metadata"`
}

type UpdateRequest struct {
	Status   *string                `json:"status"`
	Metadata map[string]interface{} `json:"metadata"`
}

type Response struct {
	ID             snowflake.ID      `json:"id"`
	AccountID      snowflake.ID      `json:"account_id"`
	Reference      string            `json:"reference"`
	Status         string            `json:"status"`
	GenerationDate time.Time         `json:"generation_date"`
	EventID        *snowflake.ID     `json:"event_id,omitempty"`
	Metadata       datatypes.JSONMap `json:"metadata,omitempty"`
	Items          []ItemResponse    `json:"items,omitempty"`
	CreatedAt      time.Time         `json:"created_at"`
	UpdatedAt      time.Time         `json:"updated_at"`
}

type AddItemRequest struct {
	IngredientID       string   `json:"ingredient_id"`
	RequiredQuantity   float64  `json:"required_quantity"`
	RequiredUnit       string   `json:"required_unit"`
	SuggestedBatchSize *float64 `json:"suggested_batch_size"`
}

type UpdateItemRequest struct {
	RequiredQuantity   *float64 `json:"required_quantity"`
	RequiredUnit       *string  `json:"required_unit"`
	SuggestedBatchSize *float64 `json:"suggested_batch_size"`
}

type ItemResponse struct {
	ID                    snowflake.ID `json:"id"`
	AccountID             snowflake.ID `json:"account_id"`
	PurchaseListID        snowflake.ID `json:"purchase_list_id"`
	IngredientID          snowflake.ID `json:"ingredient_id"`
	RequiredQuantity      float64      `json:"required_quantity"`
	RequiredUnit          string       `json:"required_unit"`
	BatchUnit             string       `json:"batch_unit,omitempty"`
	SuggestedBatchSize    *float64     `json:"suggested_batch_size,omitempty"`
	SuggestedTotalBatches *float64     `json:"suggested_total_batches,omitempty"`
	CreatedAt             time.Time    `json:"created_at"`
	UpdatedAt             time.Time    `json:"updated_at"`
}

var (
	ErrInvalidAccount     = errors.New("invalid_account")
	ErrInvalidID          = errors.New("invalid_id")
	ErrInvalidQuantity    = errors.New("invalid_quantity")
	ErrInvalidUnit        = errors.New("invalid_unit")
	ErrInvalidStatus      = errors.New("invalid_status")
	ErrNotFound           = errors.New("purchase_list_not_found")
	ErrItemNotFound       = errors.New("item_not_found")
	ErrEventNotFound      = errors.New("event_not_found")
	ErrIngredientNotFound = errors.New("ingredient_not_found")
)
