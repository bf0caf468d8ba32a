package repository

import (
	"context"
	"errors"

	"github.com/bwmarrin/snowflake"
	eventdomain "github.com/smallbiznis/barflow/internal/event/domain"
	"gorm.io/gorm"
)

type servedDrinkRepo struct{}

func ProvideServedDrinks() eventdomain.ServedDrinkRepository {
	return &servedDrinkRepo{}
}

func (r *servedDrinkRepo) Insert(ctx context.Context, db *gorm.DB, line *eventdomain.ServedDrinkLine) error {
	return db.WithContext(ctx).Create(line).Error
}

func (r *servedDrinkRepo) FindByID(ctx context.Context, db *gorm.DB, accountID, eventID, id snowflake.ID) (*eventdomain.ServedDrinkLine, error) {
	var line eventdomain.ServedDrinkLine
	err := db.WithContext(ctx).
		Where("account_id = ? AND event_id = ? AND id = ?", accountID, eventID, id).
		First(&line).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &line, nil
}

func (r *servedDrinkRepo) ListByEvent(ctx context.Context, db *gorm.DB, accountID, eventID snowflake.ID) ([]eventdomain.ServedDrinkLine, error) {
	var items []eventdomain.ServedDrinkLine
	err := db.WithContext(ctx).
		Where("account_id = ? AND event_id = ?", accountID, eventID).
		Order("created_at ASC").
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (r *servedDrinkRepo) Update(ctx context.Context, db *gorm.DB, line *eventdomain.ServedDrinkLine) error {
	return db.WithContext(ctx).Save(line).Error
}

func (r *servedDrinkRepo) Delete(ctx context.Context, db *gorm.DB, accountID, eventID, id snowflake.ID) error {
	return db.WithContext(ctx).
		Where("account_id = ? AND event_id = ? AND id = ?", accountID, eventID, id).
		Delete(&eventdomain.ServedDrinkLine{}).Error
}
