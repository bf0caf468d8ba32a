package seed

import (
	"time"

	"github.com/bwmarrin/snowflake"
	unitsdomain "github.com/smallbiznis/barflow/internal/units/domain"
	"gorm.io/gorm"
)

// EnsureDefaultConversionRules inserts the shared unit conversion rules
// when they are missing. Existing rows are left untouched so operators
// can tune the factors.
func EnsureDefaultConversionRules(conn *gorm.DB) error {
	node, err := snowflake.NewNode(1)
	if err != nil {
		return err
	}

	for _, rule := range unitsdomain.DefaultRules {
		var count int64
		err := conn.Model(&unitsdomain.ConversionRule{}).
			Where("account_id = 0 AND from_unit = ? AND to_unit = ?", rule.From, rule.To).
			Count(&count).Error
		if err != nil {
			return err
		}
		if count > 0 {
			continue
		}

		now := time.Now().UTC()
		entity := unitsdomain.ConversionRule{
			ID:        node.Generate(),
			AccountID: 0,
			FromUnit:  rule.From,
			ToUnit:    rule.To,
			Factor:    rule.Factor,
			CreatedAt: now,
			UpdatedAt: now,
		}
		if err := conn.Create(&entity).Error; err != nil {
			return err
		}
	}

	return nil
}
