package domain

import (
	"context"

	"github.com/bwmarrin/snowflake"
	"gorm.io/gorm"
)

type Repository interface {
	Insert(ctx context.Context, db *gorm.DB, rule *ConversionRule) error
	FindRule(ctx context.Context, db *gorm.DB, accountID snowflake.ID, from, to string) (*ConversionRule, error)
	List(ctx context.Context, db *gorm.DB, accountID snowflake.ID) ([]ConversionRule, error)
}
