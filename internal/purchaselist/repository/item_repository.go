package repository

import (
	"context"
	"errors"

	"github.com/bwmarrin/snowflake"
	purchaselistdomain "github.com/smallbiznis/barflow/internal/purchaselist/domain"
	"gorm.io/gorm"
)

type itemRepo struct{}

func ProvideItems() purchaselistdomain.ItemRepository {
	return &itemRepo{}
}

func (r *itemRepo) Insert(ctx context.Context, db *gorm.DB, item *purchaselistdomain.PurchaseListItem) error {
	return db.WithContext(ctx).Create(item).Error
}

func (r *itemRepo) FindByID(ctx context.Context, db *gorm.DB, accountID, listID, id snowflake.ID) (*purchaselistdomain.PurchaseListItem, error) {
	var item purchaselistdomain.PurchaseListItem
	err := db.WithContext(ctx).
		Where("account_id = ? AND purchase_list_id = ? AND id = ?", accountID, listID, id).
		First(&item).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &item, nil
}

func (r *itemRepo) ListByList(ctx context.Context, db *gorm.DB, accountID, listID snowflake.ID) ([]purchaselistdomain.PurchaseListItem, error) {
	var items []purchaselistdomain.PurchaseListItem
	err := db.WithContext(ctx).
		Where("account_id = ? AND purchase_list_id = ?", accountID, listID).
		Order("created_at ASC").
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (r *itemRepo) Update(ctx context.Context, db *gorm.DB, item *purchaselistdomain.PurchaseListItem) error {
	return db.WithContext(ctx).Save(item).Error
}

func (r *itemRepo) Delete(ctx context.Context, db *gorm.DB, accountID, listID, id snowflake.ID) error {
	return db.WithContext(ctx).
		Where("account_id = ? AND purchase_list_id = ? AND id = ?", accountID, listID, id).
		Delete(&purchaselistdomain.PurchaseListItem{}).Error
}
