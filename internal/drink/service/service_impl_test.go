package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/glebarez/sqlite"
	"github.com/smallbiznis/barflow/internal/accountcontext"
	"github.com/smallbiznis/barflow/internal/config"
	drinkdomain "github.com/smallbiznis/barflow/internal/drink/domain"
	drinkrepository "github.com/smallbiznis/barflow/internal/drink/repository"
	ingredientdomain "github.com/smallbiznis/barflow/internal/ingredient/domain"
	ingredientrepository "github.com/smallbiznis/barflow/internal/ingredient/repository"
	recipedomain "github.com/smallbiznis/barflow/internal/recipe/domain"
	reciperepository "github.com/smallbiznis/barflow/internal/recipe/repository"
	unitsdomain "github.com/smallbiznis/barflow/internal/units/domain"
	unitsrepository "github.com/smallbiznis/barflow/internal/units/repository"
	unitsservice "github.com/smallbiznis/barflow/internal/units/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type drinkFixture struct {
	svc   drinkdomain.Service
	ctx   context.Context
	db    *gorm.DB
	node  *snowflake.Node
	accID snowflake.ID
}

func setupDrinkService(t *testing.T) *drinkFixture {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&drinkdomain.Drink{},
		&ingredientdomain.Ingredient{},
		&recipedomain.RecipeLine{},
		&unitsdomain.ConversionRule{},
	))

	node, err := snowflake.NewNode(1)
	require.NoError(t, err)

	units := unitsservice.New(unitsservice.Params{
		DB:    db,
		Log:   zap.NewNop(),
		GenID: node,
		Repo:  unitsrepository.Provide(),
		Cfg:   config.Config{},
	})

	svc := New(Params{
		DB:             db,
		Log:            zap.NewNop(),
		GenID:          node,
		Repo:           drinkrepository.Provide(),
		RecipeRepo:     reciperepository.Provide(),
		IngredientRepo: ingredientrepository.Provide(),
		Units:          units,
	})

	accID := node.Generate()
	ctx := accountcontext.WithAccountID(context.Background(), int64(accID))
	return &drinkFixture{svc: svc, ctx: ctx, db: db, node: node, accID: accID}
}

func (f *drinkFixture) seedIngredient(t *testing.T, name, baseUnit string, realCost float64) snowflake.ID {
	t.Helper()

	now := time.Now().UTC()
	ing := &ingredientdomain.Ingredient{
		ID:                  f.node.Generate(),
		AccountID:           f.accID,
		Name:                name,
		BasePurchaseUnit:    baseUnit,
		RealCostPerBaseUnit: realCost,
		CreatedAt:           now,
		UpdatedAt:           now,
	}
	require.NoError(t, f.db.Create(ing).Error)
	return ing.ID
}

func (f *drinkFixture) seedLine(t *testing.T, drinkID, ingredientID snowflake.ID, qty float64, unit string) {
	t.Helper()

	now := time.Now().UTC()
	line := &recipedomain.RecipeLine{
		ID:               f.node.Generate(),
		AccountID:        f.accID,
		DrinkID:          drinkID,
		IngredientID:     ingredientID,
		RequiredQuantity: qty,
		RecipeUnit:       unit,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	require.NoError(t, f.db.Create(line).Error)
}

func TestCreateStartsAtZeroCost(t *testing.T) {
	f := setupDrinkService(t)

	resp, err := f.svc.Create(f.ctx, drinkdomain.CreateRequest{Name: "Dry Martini", Type: "cocktail"})
	require.NoError(t, err)
	require.NotNil(t, resp.CalculatedUnitCost)
	assert.Equal(t, 0.0, *resp.CalculatedUnitCost)
	assert.Equal(t, "dry-martini", resp.Code)
}

func TestRecalculateEmptyRecipe(t *testing.T) {
	f := setupDrinkService(t)

	created, err := f.svc.Create(f.ctx, drinkdomain.CreateRequest{Name: "Water"})
	require.NoError(t, err)

	total, err := f.svc.Recalculate(f.ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, 0.0, total)
}

func TestRecalculateSumsRecipeLines(t *testing.T) {
	f := setupDrinkService(t)

	created, err := f.svc.Create(f.ctx, drinkdomain.CreateRequest{Name: "Caipirinha"})
	require.NoError(t, err)

	cachaca := f.seedIngredient(t, "Cachaca", "ml", 0.1)
	lime := f.seedIngredient(t, "Lime", "un", 2)
	f.seedLine(t, created.ID, cachaca, 50, "ml")
	f.seedLine(t, created.ID, lime, 6, "un")

	total, err := f.svc.Recalculate(f.ctx, created.ID)
	require.NoError(t, err)
	assert.InDelta(t, 17.0, total, 1e-9)

	stored, err := f.svc.Get(f.ctx, created.ID.String())
	require.NoError(t, err)
	require.NotNil(t, stored.CalculatedUnitCost)
	assert.InDelta(t, 17.0, *stored.CalculatedUnitCost, 1e-9)
}

func TestRecalculateIsIdempotent(t *testing.T) {
	f := setupDrinkService(t)

	created, err := f.svc.Create(f.ctx, drinkdomain.CreateRequest{Name: "Mojito"})
	require.NoError(t, err)

	rum := f.seedIngredient(t, "Rum", "ml", 0.05)
	f.seedLine(t, created.ID, rum, 60, "ml")

	first, err := f.svc.Recalculate(f.ctx, created.ID)
	require.NoError(t, err)
	second, err := f.svc.Recalculate(f.ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestRecalculateConvertsRecipeUnits(t *testing.T) {
	f := setupDrinkService(t)

	created, err := f.svc.Create(f.ctx, drinkdomain.CreateRequest{Name: "Sangria"})
	require.NoError(t, err)

	// Wine is purchased by the litre, but the recipe measures in ml.
	wine := f.seedIngredient(t, "Red Wine", "l", 30)
	f.seedLine(t, created.ID, wine, 50, "ml")

	now := time.Now().UTC()
	require.NoError(t, f.db.Create(&unitsdomain.ConversionRule{
		ID:        f.node.Generate(),
		AccountID: f.accID,
		FromUnit:  "ml",
		ToUnit:    "l",
		Factor:    0.001,
		CreatedAt: now,
		UpdatedAt: now,
	}).Error)

	total, err := f.svc.Recalculate(f.ctx, created.ID)
	require.NoError(t, err)
	assert.InDelta(t, 1.5, total, 1e-9)
}

func TestRecalculateMissingIngredient(t *testing.T) {
	f := setupDrinkService(t)

	created, err := f.svc.Create(f.ctx, drinkdomain.CreateRequest{Name: "Ghost"})
	require.NoError(t, err)

	f.seedLine(t, created.ID, f.node.Generate(), 10, "ml")

	_, err = f.svc.Recalculate(f.ctx, created.ID)
	assert.ErrorIs(t, err, drinkdomain.ErrIngredientNotFound)
}

func TestRecalculateUnknownDrink(t *testing.T) {
	f := setupDrinkService(t)

	_, err := f.svc.Recalculate(f.ctx, f.node.Generate())
	assert.ErrorIs(t, err, drinkdomain.ErrNotFound)
}
