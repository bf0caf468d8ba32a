package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
)

// ConversionRule converts quantities between two measurement units.
// Rules with AccountID zero are the shared defaults seeded at startup;
// account-scoped rules take precedence over them.
type ConversionRule struct {
	ID        snowflake.ID `json:"id" gorm:"primaryKey"`
	AccountID snowflake.ID `json:"account_id" gorm:"column:account_id;not null;default:0;index"`
	FromUnit  string       `json:"from_unit" gorm:"type:text;not null"`
	ToUnit    string       `json:"to_unit" gorm:"type:text;not null"`
	Factor    float64      `json:"factor" gorm:"type:numeric;not null"`
	CreatedAt time.Time    `json:"created_at" gorm:"not null;default:CURRENT_TIMESTAMP"`
	UpdatedAt time.Time    `json:"updated_at" gorm:"not null;default:CURRENT_TIMESTAMP"`
}

func (ConversionRule) TableName() string { return "unit_conversion_rules" }

// DefaultRule is a seed entry for the shared conversion table.
type DefaultRule struct {
	From   string
	To     string
	Factor float64
}

// DefaultRules covers the metric kitchen units every account starts with.
var DefaultRules = []DefaultRule{
	{From: "ml", To: "l", Factor: 0.001},
	{From: "l", To: "ml", Factor: 1000},
	{From: "cl", To: "ml", Factor: 10},
	{From: "ml", To: "cl", Factor: 0.1},
	{From: "cl", To: "l", Factor: 0.01},
	{From: "l", To: "cl", Factor: 100},
	{From: "g", To: "kg", Factor: 0.001},
	{From: "kg", To: "g", Factor: 1000},
	{From: "un", To: "un", Factor: 1},
}
