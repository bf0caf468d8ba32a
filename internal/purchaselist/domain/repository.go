package domain

import (
	"context"

	"github.com/bwmarrin/snowflake"
	"gorm.io/gorm"
)

type Repository interface {
	Insert(ctx context.Context, db *gorm.DB, list *PurchaseList) error
	FindByID(ctx context.Context, db *gorm.DB, accountID, id snowflake.ID) (*PurchaseList, error)
	List(ctx context.Context, db *gorm.DB, accountID snowflake.ID) ([]PurchaseList, error)
	Update(ctx context.Context, db *gorm.DB, list *PurchaseList) error
	Delete(ctx context.Context, db *gorm.DB, accountID, id snowflake.ID) error
}

type ItemRepository interface {
	Insert(ctx context.Context, db *gorm.DB, item *PurchaseListItem) error
	FindByID(ctx context.Context, db *gorm.DB, accountID, listID, id snowflake.ID) (*PurchaseListItem, error)
	ListByList(ctx context.Context, db *gorm.DB, accountID, listID snowflake.ID) ([]PurchaseListItem, error)
	Update(ctx context.Context, db *gorm.DB, item *PurchaseListItem) error
	Delete(ctx context.Context, db *gorm.DB, accountID, listID, id snowflake.ID) error
}
