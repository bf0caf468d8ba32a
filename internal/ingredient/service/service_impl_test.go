package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/bwmarrin/snowflake"
	"github.com/glebarez/sqlite"
	"github.com/smallbiznis/barflow/internal/accountcontext"
	ingredientdomain "github.com/smallbiznis/barflow/internal/ingredient/domain"
	ingredientrepository "github.com/smallbiznis/barflow/internal/ingredient/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func setupIngredientService(t *testing.T) (ingredientdomain.Service, context.Context) {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&ingredientdomain.Ingredient{}))

	node, err := snowflake.NewNode(1)
	require.NoError(t, err)

	svc := New(Params{
		DB:    db,
		Log:   zap.NewNop(),
		GenID: node,
		Repo:  ingredientrepository.Provide(),
	})

	ctx := accountcontext.WithAccountID(context.Background(), int64(node.Generate()))
	return svc, ctx
}

func TestCreateDerivesCosts(t *testing.T) {
	svc, ctx := setupIngredientService(t)

	resp, err := svc.Create(ctx, ingredientdomain.CreateRequest{
		Name:                 "Vodka",
		PurchasePrice:        10,
		BasePurchaseQuantity: 1000,
		BasePurchaseUnit:     "ml",
	})
	require.NoError(t, err)
	assert.InDelta(t, 0.01, resp.CostPerBaseUnit, 1e-9)
	assert.InDelta(t, 0.0105, resp.RealCostPerBaseUnit, 1e-9)
	assert.Equal(t, ingredientdomain.DefaultWastage, resp.WastagePercentage)
}

func TestCreateExplicitWastage(t *testing.T) {
	svc, ctx := setupIngredientService(t)

	wastage := 0.2
	resp, err := svc.Create(ctx, ingredientdomain.CreateRequest{
		Name:                 "Mint",
		PurchasePrice:        5,
		BasePurchaseQuantity: 100,
		BasePurchaseUnit:     "g",
		WastagePercentage:    &wastage,
	})
	require.NoError(t, err)
	assert.InDelta(t, 0.05, resp.CostPerBaseUnit, 1e-9)
	assert.InDelta(t, 0.06, resp.RealCostPerBaseUnit, 1e-9)
}

func TestCreateInvalidInputs(t *testing.T) {
	svc, ctx := setupIngredientService(t)

	_, err := svc.Create(ctx, ingredientdomain.CreateRequest{
		Name:                 "Rum",
		PurchasePrice:        -1,
		BasePurchaseQuantity: 700,
		BasePurchaseUnit:     "ml",
	})
	assert.ErrorIs(t, err, ingredientdomain.ErrInvalidPurchasePrice)

	_, err = svc.Create(ctx, ingredientdomain.CreateRequest{
		Name:                 "Rum",
		PurchasePrice:        10,
		BasePurchaseQuantity: 0,
		BasePurchaseUnit:     "ml",
	})
	assert.ErrorIs(t, err, ingredientdomain.ErrInvalidBaseQuantity)

	_, err = svc.Create(ctx, ingredientdomain.CreateRequest{
		Name:                 "",
		PurchasePrice:        10,
		BasePurchaseQuantity: 700,
		BasePurchaseUnit:     "ml",
	})
	assert.ErrorIs(t, err, ingredientdomain.ErrInvalidName)
}

func TestUpdateMergesThenRecomputes(t *testing.T) {
	svc, ctx := setupIngredientService(t)

	created, err := svc.Create(ctx, ingredientdomain.CreateRequest{
		Name:                 "Gin",
		PurchasePrice:        20,
		BasePurchaseQuantity: 1000,
		BasePurchaseUnit:     "ml",
	})
	require.NoError(t, err)

	// Patch only the price; quantity and wastage come from the stored row.
	price := 30.0
	updated, err := svc.Update(ctx, created.ID.String(), ingredientdomain.UpdateRequest{
		PurchasePrice: &price,
	})
	require.NoError(t, err)
	assert.InDelta(t, 0.03, updated.CostPerBaseUnit, 1e-9)
	assert.InDelta(t, 0.03*1.05, updated.RealCostPerBaseUnit, 1e-9)
	assert.Equal(t, 1000.0, updated.BasePurchaseQuantity)
}

func TestUpdateRejectsInvalidMerge(t *testing.T) {
	svc, ctx := setupIngredientService(t)

	created, err := svc.Create(ctx, ingredientdomain.CreateRequest{
		Name:                 "Tonic",
		PurchasePrice:        8,
		BasePurchaseQuantity: 2000,
		BasePurchaseUnit:     "ml",
	})
	require.NoError(t, err)

	qty := 0.0
	_, err = svc.Update(ctx, created.ID.String(), ingredientdomain.UpdateRequest{
		BasePurchaseQuantity: &qty,
	})
	assert.ErrorIs(t, err, ingredientdomain.ErrInvalidBaseQuantity)
}

func TestGetUnknownIngredient(t *testing.T) {
	svc, ctx := setupIngredientService(t)

	_, err := svc.Get(ctx, "12345")
	assert.ErrorIs(t, err, ingredientdomain.ErrNotFound)
}
