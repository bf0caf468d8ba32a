package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
)

// RecipeLine links one ingredient into a drink's recipe. A drink holds
// at most one line per ingredient.
type RecipeLine struct {
	ID               snowflake.ID `json:"id" gorm:"primaryKey"`
	AccountID        snowflake.ID `json:"account_id" gorm:"column:account_id;not null;index"`
	DrinkID          snowflake.ID `json:"drink_id" gorm:"column:drink_id;not null;index;uniqueIndex:uidx_recipe_drink_ingredient"`
	IngredientID     snowflake.ID `json:"ingredient_id" gorm:"column:ingredient_id;not null;uniqueIndex:uidx_recipe_drink_ingredient"`
	RequiredQuantity float64      `json:"required_quantity" gorm:"type:numeric;not null"`
	RecipeUnit       string       `json:"recipe_unit" gorm:"type:text;not null"`
	CreatedAt        time.Time    `json:"created_at" gorm:"not null;default:CURRENT_TIMESTAMP"`
	UpdatedAt        time.Time    `json:"updated_at" gorm:"not null;default:CURRENT_TIMESTAMP"`
}

func (RecipeLine) TableName() string { return "recipe_ingredients" }
