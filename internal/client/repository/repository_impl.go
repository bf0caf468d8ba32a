package repository

import (
	"context"
	"errors"

	"github.com/bwmarrin/snowflake"
	clientdomain "github.com/smallbiznis/barflow/internal/client/domain"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() clientdomain.Repository {
	return &repo{}
}

func (r *repo) Insert(ctx context.Context, db *gorm.DB, client *clientdomain.Client) error {
	return db.WithContext(ctx).Create(client).Error
}

func (r *repo) FindByID(ctx context.Context, db *gorm.DB, accountID, id snowflake.ID) (*clientdomain.Client, error) {
	var client clientdomain.Client
	err := db.WithContext(ctx).
		Where("account_id = ? AND id = ?", accountID, id).
		First(&client).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &client, nil
}

func (r *repo) List(ctx context.Context, db *gorm.DB, accountID snowflake.ID) ([]clientdomain.Client, error) {
	var items []clientdomain.Client
	err := db.WithContext(ctx).
		Where("account_id = ?", accountID).
		Order("created_at ASC").
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (r *repo) Update(ctx context.Context, db *gorm.DB, client *clientdomain.Client) error {
	return db.WithContext(ctx).Save(client).Error
}

func (r *repo) Delete(ctx context.Context, db *gorm.DB, accountID, id snowflake.ID) error {
	return db.WithContext(ctx).
		Where("account_id = ? AND id = ?", accountID, id).
		Delete(&clientdomain.Client{}).Error
}
