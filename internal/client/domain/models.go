package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
)

// Client is a customer the account caters events for.
type Client struct {
	ID        snowflake.ID `json:"id" gorm:"primaryKey"`
	AccountID snowflake.ID `json:"account_id" gorm:"column:account_id;not null;index"`
	Name      string       `json:"name" gorm:"type:text;not null"`
	Email     string       `json:"email,omitempty" gorm:"type:text"`
	Phone     string       `json:"phone,omitempty" gorm:"type:text"`
	Address   string       `json:"address,omitempty" gorm:"type:text"`
	City      string       `json:"city,omitempty" gorm:"type:text"`
	TaxID     string       `json:"tax_id,omitempty" gorm:"column:tax_id;type:text"`
	CreatedAt time.Time    `json:"created_at" gorm:"not null;default:CURRENT_TIMESTAMP"`
	UpdatedAt time.Time    `json:"updated_at" gorm:"not null;default:CURRENT_TIMESTAMP"`
}

func (Client) TableName() string { return "clients" }
