package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
)

// Ingredient is a purchasable stock item. The two cost fields are
// derived from the purchase inputs and never written by callers.
type Ingredient struct {
	ID                   snowflake.ID `json:"id" gorm:"primaryKey"`
	AccountID            snowflake.ID `json:"account_id" gorm:"column:account_id;not null;index"`
	Name                 string       `json:"name" gorm:"type:text;not null"`
	Supplier             string       `json:"supplier,omitempty" gorm:"type:text"`
	QuotationDate        *time.Time   `json:"quotation_date,omitempty" gorm:"type:date"`
	PurchasePrice        float64      `json:"purchase_price" gorm:"type:numeric;not null"`
	BasePurchaseQuantity float64      `json:"base_purchase_quantity" gorm:"type:numeric;not null"`
	BasePurchaseUnit     string       `json:"base_purchase_unit" gorm:"type:text;not null"`
	WastagePercentage    float64      `json:"wastage_percentage" gorm:"type:numeric;not null;default:0.05"`
	SuggestedBatchSize   *float64     `json:"suggested_batch_size,omitempty" gorm:"type:numeric"`
	CostPerBaseUnit      float64      `json:"cost_per_base_unit" gorm:"type:numeric;not null;default:0"`
	RealCostPerBaseUnit  float64      `json:"real_cost_per_base_unit" gorm:"type:numeric;not null;default:0"`
	CreatedAt            time.Time    `json:"created_at" gorm:"not null;default:CURRENT_TIMESTAMP"`
	UpdatedAt            time.Time    `json:"updated_at" gorm:"not null;default:CURRENT_TIMESTAMP"`
}

func (Ingredient) TableName() string { return "ingredients" }
