package domain

import (
	"context"

	"github.com/bwmarrin/snowflake"
	"gorm.io/gorm"
)

type Repository interface {
	Insert(ctx context.Context, db *gorm.DB, line *RecipeLine) error
	FindLine(ctx context.Context, db *gorm.DB, accountID, drinkID, ingredientID snowflake.ID) (*RecipeLine, error)
	ListByDrink(ctx context.Context, db *gorm.DB, accountID, drinkID snowflake.ID) ([]RecipeLine, error)
	Update(ctx context.Context, db *gorm.DB, line *RecipeLine) error
	Delete(ctx context.Context, db *gorm.DB, accountID, drinkID, ingredientID snowflake.ID) error
}
