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
	drinkservice "github.com/smallbiznis/barflow/internal/drink/service"
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

type recipeFixture struct {
	svc    recipedomain.Service
	drinks drinkdomain.Service
	ctx    context.Context
	db     *gorm.DB
	node   *snowflake.Node
	accID  snowflake.ID
}

func setupRecipeService(t *testing.T) *recipeFixture {
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

	drinks := drinkservice.New(drinkservice.Params{
		DB:             db,
		Log:            zap.NewNop(),
		GenID:          node,
		Repo:           drinkrepository.Provide(),
		RecipeRepo:     reciperepository.Provide(),
		IngredientRepo: ingredientrepository.Provide(),
		Units:          units,
	})

	svc := New(Params{
		DB:             db,
		Log:            zap.NewNop(),
		GenID:          node,
		Repo:           reciperepository.Provide(),
		DrinkRepo:      drinkrepository.Provide(),
		IngredientRepo: ingredientrepository.Provide(),
		Drinks:         drinks,
	})

	accID := node.Generate()
	ctx := accountcontext.WithAccountID(context.Background(), int64(accID))
	return &recipeFixture{svc: svc, drinks: drinks, ctx: ctx, db: db, node: node, accID: accID}
}

func (f *recipeFixture) seedIngredient(t *testing.T, name, baseUnit string, realCost float64) snowflake.ID {
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

func TestAddLineRefreshesDrinkCost(t *testing.T) {
	f := setupRecipeService(t)

	drink, err := f.drinks.Create(f.ctx, drinkdomain.CreateRequest{Name: "Negroni"})
	require.NoError(t, err)
	gin := f.seedIngredient(t, "Gin", "ml", 0.04)

	resp, err := f.svc.AddLine(f.ctx, drink.ID.String(), recipedomain.AddLineRequest{
		IngredientID:     gin.String(),
		RequiredQuantity: 30,
		RecipeUnit:       "ML ",
	})
	require.NoError(t, err)
	assert.Equal(t, "ml", resp.RecipeUnit)
	assert.InDelta(t, 1.2, resp.DrinkUnitCost, 1e-9)

	stored, err := f.drinks.Get(f.ctx, drink.ID.String())
	require.NoError(t, err)
	require.NotNil(t, stored.CalculatedUnitCost)
	assert.InDelta(t, 1.2, *stored.CalculatedUnitCost, 1e-9)
}

func TestUpdateLineRefreshesDrinkCost(t *testing.T) {
	f := setupRecipeService(t)

	drink, err := f.drinks.Create(f.ctx, drinkdomain.CreateRequest{Name: "Whiskey Sour"})
	require.NoError(t, err)
	whiskey := f.seedIngredient(t, "Whiskey", "ml", 0.1)

	_, err = f.svc.AddLine(f.ctx, drink.ID.String(), recipedomain.AddLineRequest{
		IngredientID:     whiskey.String(),
		RequiredQuantity: 40,
		RecipeUnit:       "ml",
	})
	require.NoError(t, err)

	qty := 60.0
	resp, err := f.svc.UpdateLine(f.ctx, drink.ID.String(), whiskey.String(), recipedomain.UpdateLineRequest{
		RequiredQuantity: &qty,
	})
	require.NoError(t, err)
	assert.InDelta(t, 6.0, resp.DrinkUnitCost, 1e-9)
}

func TestRemoveLineRefreshesDrinkCost(t *testing.T) {
	f := setupRecipeService(t)

	drink, err := f.drinks.Create(f.ctx, drinkdomain.CreateRequest{Name: "Cuba Libre"})
	require.NoError(t, err)
	rum := f.seedIngredient(t, "Rum", "ml", 0.05)

	_, err = f.svc.AddLine(f.ctx, drink.ID.String(), recipedomain.AddLineRequest{
		IngredientID:     rum.String(),
		RequiredQuantity: 50,
		RecipeUnit:       "ml",
	})
	require.NoError(t, err)

	require.NoError(t, f.svc.RemoveLine(f.ctx, drink.ID.String(), rum.String()))

	stored, err := f.drinks.Get(f.ctx, drink.ID.String())
	require.NoError(t, err)
	require.NotNil(t, stored.CalculatedUnitCost)
	assert.Equal(t, 0.0, *stored.CalculatedUnitCost)
}

func TestAddLineValidatesOwnership(t *testing.T) {
	f := setupRecipeService(t)

	drink, err := f.drinks.Create(f.ctx, drinkdomain.CreateRequest{Name: "Orphan"})
	require.NoError(t, err)

	_, err = f.svc.AddLine(f.ctx, f.node.Generate().String(), recipedomain.AddLineRequest{
		IngredientID:     f.node.Generate().String(),
		RequiredQuantity: 10,
		RecipeUnit:       "ml",
	})
	assert.ErrorIs(t, err, recipedomain.ErrDrinkNotFound)

	_, err = f.svc.AddLine(f.ctx, drink.ID.String(), recipedomain.AddLineRequest{
		IngredientID:     f.node.Generate().String(),
		RequiredQuantity: 10,
		RecipeUnit:       "ml",
	})
	assert.ErrorIs(t, err, recipedomain.ErrIngredientNotFound)
}

func TestAddLineValidatesInputs(t *testing.T) {
	f := setupRecipeService(t)

	drink, err := f.drinks.Create(f.ctx, drinkdomain.CreateRequest{Name: "Spritz"})
	require.NoError(t, err)
	aperol := f.seedIngredient(t, "Aperol", "ml", 0.03)

	_, err = f.svc.AddLine(f.ctx, drink.ID.String(), recipedomain.AddLineRequest{
		IngredientID:     aperol.String(),
		RequiredQuantity: 0,
		RecipeUnit:       "ml",
	})
	assert.ErrorIs(t, err, recipedomain.ErrInvalidQuantity)

	_, err = f.svc.AddLine(f.ctx, drink.ID.String(), recipedomain.AddLineRequest{
		IngredientID:     aperol.String(),
		RequiredQuantity: 60,
		RecipeUnit:       "  ",
	})
	assert.ErrorIs(t, err, recipedomain.ErrInvalidUnit)
}

func TestUpdateUnknownLine(t *testing.T) {
	f := setupRecipeService(t)

	drink, err := f.drinks.Create(f.ctx, drinkdomain.CreateRequest{Name: "Empty"})
	require.NoError(t, err)

	qty := 10.0
	_, err = f.svc.UpdateLine(f.ctx, drink.ID.String(), f.node.Generate().String(), recipedomain.UpdateLineRequest{
		RequiredQuantity: &qty,
	})
	assert.ErrorIs(t, err, recipedomain.ErrLineNotFound)

	err = f.svc.RemoveLine(f.ctx, drink.ID.String(), f.node.Generate().String())
	assert.ErrorIs(t, err, recipedomain.ErrLineNotFound)
}
