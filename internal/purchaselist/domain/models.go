package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
	"gorm.io/datatypes"
)

const StatusGenerated = "GENERATED"

// PurchaseList is a materialized shopping plan. Reference is a ULID
// unique per account.
type PurchaseList struct {
	ID             snowflake.ID      `json:"id" gorm:"primaryKey"`
	AccountID      snowflake.ID      `json:"account_id" gorm:"column:account_id;not null;index"`
	Reference      string            `json:"reference" gorm:"type:text;not null;uniqueIndex:uidx_purchase_lists_reference,composite:account_id"`
	Status         string            `json:"status" gorm:"type:text;not null;default:GENERATED"`
	GenerationDate time.Time         `json:"generation_date" gorm:"not null;default:CURRENT_TIMESTAMP"`
	EventID        *snowflake.ID     `json:"event_id,omitempty" gorm:"column:event_id"`
	Metadata       datatypes.JSONMap `json:"metadata,omitempty" gorm:"type:jsonb"`
	CreatedAt      time.Time         `json:"created_at" gorm:"not null;default:CURRENT_TIMESTAMP"`
	UpdatedAt      time.Time         `json:"updated_at" gorm:"not null;default:CURRENT_TIMESTAMP"`
}

func (PurchaseList) TableName() string { return "purchase_lists" }

// PurchaseListItem aggregates one ingredient's requirement across the
// planned scope. Quantities are kept in the ingredient's base unit so
// batch math stays unit-consistent.
type PurchaseListItem struct {
	ID                    snowflake.ID `json:"id" gorm:"primaryKey"`
	AccountID             snowflake.ID `json:"account_id" gorm:"column:account_id;not null;index"`
	PurchaseListID        snowflake.ID `json:"purchase_list_id" gorm:"column:purchase_list_id;not null;index"`
	IngredientID          snowflake.ID `json:"ingredient_id" gorm:"column:ingredient_id;not null"`
	RequiredQuantity      float64      `json:"required_quantity" gorm:"type:numeric;not null"`
	RequiredUnit          string       `json:"required_unit" gorm:"type:text;not null"`
	BatchUnit             string       `json:"batch_unit,omitempty" gorm:"type:text"`
	SuggestedBatchSize    *float64     `json:"suggested_batch_size,omitempty" gorm:"type:numeric"`
	SuggestedTotalBatches *float64     `json:"suggested_total_batches,omitempty" gorm:"type:numeric"`
	CreatedAt             time.Time    `json:"created_at" gorm:"not null;default:CURRENT_TIMESTAMP"`
	UpdatedAt             time.Time    `json:"updated_at" gorm:"not null;default:CURRENT_TIMESTAMP"`
}

func (PurchaseListItem) TableName() string { return "purchase_list_items" }
