package repository

import (
	"context"

	"github.com/bwmarrin/snowflake"
	unitsdomain "github.com/smallbiznis/barflow/internal/units/domain"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() unitsdomain.Repository {
	return &repo{}
}

func (r *repo) Insert(ctx context.Context, db *gorm.DB, rule *unitsdomain.ConversionRule) error {
	return db.WithContext(ctx).Create(rule).Error
}

func (r *repo) FindRule(ctx context.Context, db *gorm.DB, accountID snowflake.ID, from, to string) (*unitsdomain.ConversionRule, error) {
	var rule unitsdomain.ConversionRule
	err := db.WithContext(ctx).Raw(
		`SELECT id, account_id, from_unit, to_unit, factor, created_at, updated_at
		 FROM unit_conversion_rules
		 WHERE (account_id = ? OR account_id = 0) AND from_unit = ? AND to_unit = ?
		 ORDER BY account_id DESC LIMIT 1`,
		accountID,
		from,
		to,
	).Scan(&rule).Error
	if err != nil {
		return nil, err
	}
	if rule.ID == 0 {
		return nil, nil
	}
	return &rule, nil
}

func (r *repo) List(ctx context.Context, db *gorm.DB, accountID snowflake.ID) ([]unitsdomain.ConversionRule, error) {
	var items []unitsdomain.ConversionRule
	err := db.WithContext(ctx).Raw(
		`SELECT id, account_id, from_unit, to_unit, factor, created_at, updated_at
		 FROM unit_conversion_rules
		 WHERE account_id = ? OR account_id = 0
		 ORDER BY from_unit ASC, to_unit ASC`,
		accountID,
	).Scan(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}
