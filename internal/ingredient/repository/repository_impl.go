package repository

import (
	"context"
	"errors"

	"github.com/bwmarrin/snowflake"
	ingredientdomain "github.com/smallbiznis/barflow/internal/ingredient/domain"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() ingredientdomain.Repository {
	return &repo{}
}

func (r *repo) Insert(ctx context.Context, db *gorm.DB, ingredient *ingredientdomain.Ingredient) error {
	return db.WithContext(ctx).Create(ingredient).Error
}

func (r *repo) FindByID(ctx context.Context, db *gorm.DB, accountID, id snowflake.ID) (*ingredientdomain.Ingredient, error) {
	var ingredient ingredientdomain.Ingredient
	err := db.WithContext(ctx).
		Where("account_id = ? AND id = ?", accountID, id).
		First(&ingredient).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &ingredient, nil
}

func (r *repo) List(ctx context.Context, db *gorm.DB, accountID snowflake.ID) ([]ingredientdomain.Ingredient, error) {
	var items []ingredientdomain.Ingredient
	err := db.WithContext(ctx).
		Where("account_id = ?", accountID).
		Order("name ASC").
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (r *repo) Update(ctx context.Context, db *gorm.DB, ingredient *ingredientdomain.Ingredient) error {
	return db.WithContext(ctx).Save(ingredient).Error
}

func (r *repo) Delete(ctx context.Context, db *gorm.DB, accountID, id snowflake.ID) error {
	return db.WithContext(ctx).
		Where("account_id = ? AND id = ?", accountID, id).
		Delete(&ingredientdomain.Ingredient{}).Error
}
