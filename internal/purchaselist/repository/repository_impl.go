package repository

import (
	"context"
	"errors"

	"github.com/bwmarrin/snowflake"
	purchaselistdomain "github.com/smallbiznis/barflow/internal/purchaselist/domain"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() purchaselistdomain.Repository {
	return &repo{}
}

func (r *repo) Insert(ctx context.Context, db *gorm.DB, list *purchaselistdomain.PurchaseList) error {
	return db.WithContext(ctx).Create(list).Error
}

func (r *repo) FindByID(ctx context.Context, db *gorm.DB, accountID, id snowflake.ID) (*purchaselistdomain.PurchaseList, error) {
	var list purchaselistdomain.PurchaseList
	err := db.WithContext(ctx).
		Where("account_id = ? AND id = ?", accountID, id).
		First(&list).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &list, nil
}

func (r *repo) List(ctx context.Context, db *gorm.DB, accountID snowflake.ID) ([]purchaselistdomain.PurchaseList, error) {
	var items []purchaselistdomain.PurchaseList
	err := db.WithContext(ctx).
		Where("account_id = ?", accountID).
		Order("generation_date DESC").
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (r *repo) Update(ctx context.Context, db *gorm.DB, list *purchaselistdomain.PurchaseList) error {
	return db.WithContext(ctx).Save(list).Error
}

func (r *repo) Delete(ctx context.Context, db *gorm.DB, accountID, id snowflake.ID) error {
	return db.WithContext(ctx).
		Where("account_id = ? AND id = ?", accountID, id).
		Delete(&purchaselistdomain.PurchaseList{}).Error
}
