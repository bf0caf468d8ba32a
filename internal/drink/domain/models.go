package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
)

// Drink is a menu item priced by aggregating its recipe lines.
// CalculatedUnitCost is nil until the first aggregation ran; creation
// initializes it to zero for a drink without recipe lines.
type Drink struct {
	ID                 snowflake.ID `json:"id" gorm:"primaryKey"`
	AccountID          snowflake.ID `json:"account_id" gorm:"column:account_id;not null;index"`
	Name               string       `json:"name" gorm:"type:text;not null"`
	Type               string       `json:"type,omitempty" gorm:"type:text"`
	Code               string       `json:"code,omitempty" gorm:"type:text"`
	CalculatedUnitCost *float64     `json:"calculated_unit_cost,omitempty" gorm:"type:numeric"`
	CreatedAt          time.Time    `json:"created_at" gorm:"not null;default:CURRENT_TIMESTAMP"`
	UpdatedAt          time.Time    `json:"updated_at" gorm:"not null;default:CURRENT_TIMESTAMP"`
}

func (Drink) TableName() string { return "drinks" }
