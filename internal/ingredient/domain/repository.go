package domain

import (
	"context"

	"github.com/bwmarrin/snowflake"
	"gorm.io/gorm"
)

type Repository interface {
	Insert(ctx context.Context, db *gorm.DB, ingredient *Ingredient) error
	FindByID(ctx context.Context, db *gorm.DB, accountID, id snowflake.ID) (*Ingredient, error)
	List(ctx context.Context, db *gorm.DB, accountID snowflake.ID) ([]Ingredient, error)
	Update(ctx context.Context, db *gorm.DB, ingredient *Ingredient) error
	Delete(ctx context.Context, db *gorm.DB, accountID, id snowflake.ID) error
}
