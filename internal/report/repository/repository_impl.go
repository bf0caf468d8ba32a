package repository

import (
	"context"

	"github.com/bwmarrin/snowflake"
	reportdomain "github.com/smallbiznis/barflow/internal/report/domain"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() reportdomain.Repository {
	return &repo{}
}

func (r *repo) EventFacts(ctx context.Context, db *gorm.DB, accountID snowflake.ID) ([]reportdomain.EventFacts, error) {
	var rows []reportdomain.EventFacts
	err := db.WithContext(ctx).Raw(`
		SELECT
			event_date,
			num_guests,
			estimated_total_drinks,
			COALESCE(total_investment, 0)          AS total_investment,
			COALESCE(gross_profit, 0)              AS gross_profit,
			COALESCE(profit_margin_percentage, 0)  AS profit_margin
		FROM events
		WHERE account_id = ?
		ORDER BY event_date ASC
	`, accountID).Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *repo) DrinkCosts(ctx context.Context, db *gorm.DB, accountID snowflake.ID) ([]reportdomain.DrinkCostRow, error) {
	var rows []reportdomain.DrinkCostRow
	err := db.WithContext(ctx).Raw(`
		SELECT
			id                   AS drink_id,
			name,
			calculated_unit_cost AS unit_cost
		FROM drinks
		WHERE account_id = ?
		ORDER BY calculated_unit_cost DESC, name ASC
	`, accountID).Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *repo) PurchaseListSummary(ctx context.Context, db *gorm.DB, accountID snowflake.ID) ([]reportdomain.PurchaseListRow, error) {
	var rows []reportdomain.PurchaseListRow
	err := db.WithContext(ctx).Raw(`
		SELECT
			pl.id              AS purchase_list_id,
			pl.reference,
			pl.status,
			pl.generation_date,
			COUNT(i.id)        AS item_count
		FROM purchase_lists pl
		LEFT JOIN purchase_list_items i ON i.purchase_list_id = pl.id
		WHERE pl.account_id = ?
		GROUP BY pl.id, pl.reference, pl.status, pl.generation_date
		ORDER BY pl.generation_date DESC
	`, accountID).Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
