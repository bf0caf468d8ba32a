package repository

import (
	"context"
	"errors"

	"github.com/bwmarrin/snowflake"
	recipedomain "github.com/smallbiznis/barflow/internal/recipe/domain"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() recipedomain.Repository {
	return &repo{}
}

func (r *repo) Insert(ctx context.Context, db *gorm.DB, line *recipedomain.RecipeLine) error {
	return db.WithContext(ctx).Create(line).Error
}

func (r *repo) FindLine(ctx context.Context, db *gorm.DB, accountID, drinkID, ingredientID snowflake.ID) (*recipedomain.RecipeLine, error) {
	var line recipedomain.RecipeLine
	err := db.WithContext(ctx).
		Where("account_id = ? AND drink_id = ? AND ingredient_id = ?", accountID, drinkID, ingredientID).
		First(&line).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &line, nil
}

func (r *repo) ListByDrink(ctx context.Context, db *gorm.DB, accountID, drinkID snowflake.ID) ([]recipedomain.RecipeLine, error) {
	var items []recipedomain.RecipeLine
	err := db.WithContext(ctx).
		Where("account_id = ? AND drink_id = ?", accountID, drinkID).
		Order("created_at ASC").
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (r *repo) Update(ctx context.Context, db *gorm.DB, line *recipedomain.RecipeLine) error {
	return db.WithContext(ctx).Save(line).Error
}

func (r *repo) Delete(ctx context.Context, db *gorm.DB, accountID, drinkID, ingredientID snowflake.ID) error {
	return db.WithContext(ctx).
		Where("account_id = ? AND drink_id = ? AND ingredient_id = ?", accountID, drinkID, ingredientID).
		Delete(&recipedomain.RecipeLine{}).Error
}
