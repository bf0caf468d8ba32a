package repository

import (
	"context"

	"github.com/bwmarrin/snowflake"
	eventdomain "github.com/smallbiznis/barflow/internal/event/domain"
	"github.com/smallbiznis/barflow/pkg/db/option"
	"github.com/smallbiznis/barflow/pkg/repository"
	"gorm.io/gorm"
)

// additionalCostRepo reads through the generic store. Cost lines are
// plain rows keyed by account and event, so struct filters cover every
// lookup.
type additionalCostRepo struct{}

func ProvideAdditionalCosts() eventdomain.AdditionalCostRepository {
	return &additionalCostRepo{}
}

func (r *additionalCostRepo) store(db *gorm.DB) repository.Repository[eventdomain.AdditionalCostLine] {
	return repository.ProvideStore[eventdomain.AdditionalCostLine](db)
}

func (r *additionalCostRepo) Insert(ctx context.Context, db *gorm.DB, line *eventdomain.AdditionalCostLine) error {
	return r.store(db).Create(ctx, line)
}

func (r *additionalCostRepo) FindByID(ctx context.Context, db *gorm.DB, accountID, eventID, id snowflake.ID) (*eventdomain.AdditionalCostLine, error) {
	return r.store(db).FindOne(ctx, &eventdomain.AdditionalCostLine{
		ID:        id,
		AccountID: accountID,
		EventID:   eventID,
	})
}

func (r *additionalCostRepo) ListByEvent(ctx context.Context, db *gorm.DB, accountID, eventID snowflake.ID) ([]eventdomain.AdditionalCostLine, error) {
	lines, err := r.store(db).Find(ctx, &eventdomain.AdditionalCostLine{
		AccountID: accountID,
		EventID:   eventID,
	}, option.WithOrderBy("created_at ASC"))
	if err != nil {
		return nil, err
	}

	items := make([]eventdomain.AdditionalCostLine, 0, len(lines))
	for _, line := range lines {
		items = append(items, *line)
	}
	return items, nil
}

func (r *additionalCostRepo) Update(ctx context.Context, db *gorm.DB, line *eventdomain.AdditionalCostLine) error {
	return db.WithContext(ctx).Save(line).Error
}

func (r *additionalCostRepo) Delete(ctx context.Context, db *gorm.DB, accountID, eventID, id snowflake.ID) error {
	return db.WithContext(ctx).
		Where("account_id = ? AND event_id = ? AND id = ?", accountID, eventID, id).
		Delete(&eventdomain.AdditionalCostLine{}).Error
}
