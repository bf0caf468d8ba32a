package domain

import (
	"context"

	"github.com/bwmarrin/snowflake"
	"gorm.io/gorm"
)

type Repository interface {
	Insert(ctx context.Context, db *gorm.DB, event *Event) error
	FindByID(ctx context.Context, db *gorm.DB, accountID, id snowflake.ID) (*Event, error)
	List(ctx context.Context, db *gorm.DB, accountID snowflake.ID) ([]Event, error)
	Update(ctx context.Context, db *gorm.DB, event *Event) error
	Delete(ctx context.Context, db *gorm.DB, accountID, id snowflake.ID) error
}

type ServedDrinkRepository interface {
	Insert(ctx context.Context, db *gorm.DB, line *ServedDrinkLine) error
	FindByID(ctx context.Context, db *gorm.DB, accountID, eventID, id snowflake.ID) (*ServedDrinkLine, error)
	ListByEvent(ctx context.Context, db *gorm.DB, accountID, eventID snowflake.ID) ([]ServedDrinkLine, error)
	Update(ctx context.Context, db *gorm.DB, line *ServedDrinkLine) error
	Delete(ctx context.Context, db *gorm.DB, accountID, eventID, id snowflake.ID) error
}

type AdditionalCostRepository interface {
	Insert(ctx context.Context, db *gorm.DB, line *AdditionalCostLine) error
	FindByID(ctx context.Context, db *gorm.DB, accountID, eventID, id snowflake.ID) (*AdditionalCostLine, error)
	ListByEvent(ctx context.Context, db *gorm.DB, accountID, eventID snowflake.ID) ([]AdditionalCostLine, error)
	Update(ctx context.Context, db *gorm.DB, line *AdditionalCostLine) error
	Delete(ctx context.Context, db *gorm.DB, accountID, eventID, id snowflake.ID) error
}
