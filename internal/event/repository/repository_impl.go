package repository

import (
	"context"
	"errors"

	"github.com/bwmarrin/snowflake"
	eventdomain "github.com/smallbiznis/barflow/internal/event/domain"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() eventdomain.Repository {
	return &repo{}
}

func (r *repo) Insert(ctx context.Context, db *gorm.DB, event *eventdomain.Event) error {
	return db.WithContext(ctx).Create(event).Error
}

func (r *repo) FindByID(ctx context.Context, db *gorm.DB, accountID, id snowflake.ID) (*eventdomain.Event, error) {
	var event eventdomain.Event
	err := db.WithContext(ctx).
		Where("account_id = ? AND id = ?", accountID, id).
		First(&event).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &event, nil
}

func (r *repo) List(ctx context.Context, db *gorm.DB, accountID snowflake.ID) ([]eventdomain.Event, error) {
	var items []eventdomain.Event
	err := db.WithContext(ctx).
		Where("account_id = ?", accountID).
		Order("event_date DESC").
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (r *repo) Update(ctx context.Context, db *gorm.DB, event *eventdomain.Event) error {
	return db.WithContext(ctx).Save(event).Error
}

func (r *repo) Delete(ctx context.Context, db *gorm.DB, accountID, id snowflake.ID) error {
	return db.WithContext(ctx).
		Where("account_id = ? AND id = ?", accountID, id).
		Delete(&eventdomain.Event{}).Error
}
