package domain

import (
	"context"

	"github.com/bwmarrin/snowflake"
	"gorm.io/gorm"
)

type Repository interface {
	Insert(ctx context.Context, db *gorm.DB, drink *Drink) error
	FindByID(ctx context.Context, db *gorm.DB, accountID, id snowflake.ID) (*Drink, error)
	List(ctx context.Context, db *gorm.DB, accountID snowflake.ID) ([]Drink, error)
	Update(ctx context.Context, db *gorm.DB, drink *Drink) error
	Delete(ctx context.Context, db *gorm.DB, accountID, id snowflake.ID) error
}
