package repository

import (
	"context"
	"errors"

	"github.com/bwmarrin/snowflake"
	drinkdomain "github.com/smallbiznis/barflow/internal/drink/domain"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() drinkdomain.Repository {
	return &repo{}
}

func (r *repo) Insert(ctx context.Context, db *gorm.DB, drink *drinkdomain.Drink) error {
	return db.WithContext(ctx).Create(drink).Error
}

func (r *repo) FindByID(ctx context.Context, db *gorm.DB, accountID, id snowflake.ID) (*drinkdomain.Drink, error) {
	var drink drinkdomain.Drink
	err := db.WithContext(ctx).
		Where("account_id = ? AND id = ?", accountID, id).
		First(&drink).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &drink, nil
}

func (r *repo) List(ctx context.Context, db *gorm.DB, accountID snowflake.ID) ([]drinkdomain.Drink, error) {
	var items []drinkdomain.Drink
	err := db.WithContext(ctx).
		Where("account_id = ?", accountID).
		Order("name ASC").
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (r *repo) Update(ctx context.Context, db *gorm.DB, drink *drinkdomain.Drink) error {
	return db.WithContext(ctx).Save(drink).Error
}

func (r *repo) Delete(ctx context.Context, db *gorm.DB, accountID, id snowflake.ID) error {
	return db.WithContext(ctx).
		Where("account_id = ? AND id = ?", accountID, id).
		Delete(&drinkdomain.Drink{}).Error
}
