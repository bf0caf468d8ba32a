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
	eventdomain "github.com/smallbiznis/barflow/internal/event/domain"
	eventrepository "github.com/smallbiznis/barflow/internal/event/repository"
	ingredientdomain "github.com/smallbiznis/barflow/internal/ingredient/domain"
	ingredientrepository "github.com/smallbiznis/barflow/internal/ingredient/repository"
	purchaselistdomain "github.com/smallbiznis/barflow/internal/purchaselist/domain"
	purchaselistrepository "github.com/smallbiznis/barflow/internal/purchaselist/repository"
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

type plannerFixture struct {
	svc   purchaselistdomain.Service
	ctx   context.Context
	db    *gorm.DB
	node  *snowflake.Node
	accID snowflake.ID
}

func setupPlanner(t *testing.T) *plannerFixture {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&drinkdomain.Drink{},
		&ingredientdomain.Ingredient{},
		&recipedomain.RecipeLine{},
		&eventdomain.Event{},
		&purchaselistdomain.PurchaseList{},
		&purchaselistdomain.PurchaseListItem{},
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
		Repo:           purchaselistrepository.Provide(),
		ItemRepo:       purchaselistrepository.ProvideItems(),
		EventRepo:      eventrepository.Provide(),
		DrinkRepo:      drinkrepository.Provide(),
		RecipeRepo:     reciperepository.Provide(),
		IngredientRepo: ingredientrepository.Provide(),
		Units:          units,
	})

	accID := node.Generate()
	ctx := accountcontext.WithAccountID(context.Background(), int64(accID))
	return &plannerFixture{svc: svc, ctx: ctx, db: db, node: node, accID: accID}
}

func (f *plannerFixture) seedEvent(t *testing.T, estimatedDrinks float64) snowflake.ID {
	t.Helper()

	now := time.Now().UTC()
	event := &eventdomain.Event{
		ID:                   f.node.Generate(),
		AccountID:            f.accID,
		ClientID:             f.node.Generate(),
		EventDate:            now,
		NumGuests:            50,
		DurationHours:        4,
		PublicRating:         1,
		EstimatedTotalDrinks: estimatedDrinks,
		CreatedAt:            now,
		UpdatedAt:            now,
	}
	require.NoError(t, f.db.Create(event).Error)
	return event.ID
}

func (f *plannerFixture) seedDrink(t *testing.T, name string) snowflake.ID {
	t.Helper()

	now := time.Now().UTC()
	zero := 0.0
	drink := &drinkdomain.Drink{
		ID:                 f.node.Generate(),
		AccountID:          f.accID,
		Name:               name,
		CalculatedUnitCost: &zero,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
	require.NoError(t, f.db.Create(drink).Error)
	return drink.ID
}

func (f *plannerFixture) seedIngredient(t *testing.T, name, baseUnit string, batchSize *float64) snowflake.ID {
	t.Helper()

	now := time.Now().UTC()
	ing := &ingredientdomain.Ingredient{
		ID:                 f.node.Generate(),
		AccountID:          f.accID,
		Name:               name,
		BasePurchaseUnit:   baseUnit,
		SuggestedBatchSize: batchSize,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
	require.NoError(t, f.db.Create(ing).Error)
	return ing.ID
}

func (f *plannerFixture) seedLine(t *testing.T, drinkID, ingredientID snowflake.ID, qty float64, unit string) {
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

func TestPlanEmptyScope(t *testing.T) {
	f := setupPlanner(t)

	items, err := f.svc.Plan(f.ctx, nil)
	require.NoError(t, err)
	assert.Empty(t, items)
	assert.NotNil(t, items)
}

func TestPlanUnknownEvent(t *testing.T) {
	f := setupPlanner(t)
	f.seedDrink(t, "Filler")

	_, err := f.svc.Plan(f.ctx, []string{f.node.Generate().String()})
	assert.ErrorIs(t, err, purchaselistdomain.ErrEventNotFound)
}

func TestPlanAccumulatesAcrossDrinks(t *testing.T) {
	f := setupPlanner(t)

	// 100 estimated drinks over two drinks: 50 servings each.
	eventID := f.seedEvent(t, 100)
	caipirinha := f.seedDrink(t, "Caipirinha")
	mojito := f.seedDrink(t, "Mojito")

	batch := 1000.0
	vodka := f.seedIngredient(t, "Vodka", "ml", &batch)
	lime := f.seedIngredient(t, "Lime", "un", nil)

	f.seedLine(t, caipirinha, vodka, 50, "ml")
	f.seedLine(t, mojito, vodka, 30, "ml")
	f.seedLine(t, mojito, lime, 1, "un")

	items, err := f.svc.Plan(f.ctx, []string{eventID.String()})
	require.NoError(t, err)
	require.Len(t, items, 2)

	byName := map[string]purchaselistdomain.PlannedItem{}
	for _, item := range items {
		byName[item.IngredientName] = item
	}

	vodkaItem := byName["Vodka"]
	assert.InDelta(t, 4000.0, vodkaItem.RequiredQuantity, 1e-9)
	assert.Equal(t, "ml", vodkaItem.RequiredUnit)
	require.NotNil(t, vodkaItem.SuggestedTotalBatches)
	assert.Equal(t, 4.0, *vodkaItem.SuggestedTotalBatches)

	limeItem := byName["Lime"]
	assert.InDelta(t, 50.0, limeItem.RequiredQuantity, 1e-9)
	assert.Nil(t, limeItem.SuggestedTotalBatches)
}

func TestGenerateMaterializesPlan(t *testing.T) {
	f := setupPlanner(t)

	eventID := f.seedEvent(t, 60)
	drink := f.seedDrink(t, "Gin Tonic")
	batch := 700.0
	gin := f.seedIngredient(t, "Gin", "ml", &batch)
	f.seedLine(t, drink, gin, 50, "ml")

	resp, err := f.svc.Generate(f.ctx, purchaselistdomain.GenerateRequest{
		EventIDs: []string{eventID.String()},
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Reference)
	assert.Equal(t, purchaselistdomain.StatusGenerated, resp.Status)
	require.NotNil(t, resp.EventID)
	assert.Equal(t, eventID, *resp.EventID)

	require.Len(t, resp.Items, 1)
	item := resp.Items[0]
	assert.InDelta(t, 3000.0, item.RequiredQuantity, 1e-9)
	require.NotNil(t, item.SuggestedTotalBatches)
	assert.Equal(t, 5.0, *item.SuggestedTotalBatches)

	stored, err := f.svc.Get(f.ctx, resp.ID.String())
	require.NoError(t, err)
	assert.Len(t, stored.Items, 1)
}

func TestItemBatchRecomputeOnUpdate(t *testing.T) {
	f := setupPlanner(t)

	resp, err := f.svc.Generate(f.ctx, purchaselistdomain.GenerateRequest{})
	require.NoError(t, err)

	batch := 1000.0
	sugar := f.seedIngredient(t, "Sugar", "g", &batch)

	item, err := f.svc.AddItem(f.ctx, resp.ID.String(), purchaselistdomain.AddItemRequest{
		IngredientID:     sugar.String(),
		RequiredQuantity: 2500,
		RequiredUnit:     "g",
	})
	require.NoError(t, err)
	require.NotNil(t, item.SuggestedTotalBatches)
	assert.Equal(t, 3.0, *item.SuggestedTotalBatches)

	qty := 3100.0
	updated, err := f.svc.UpdateItem(f.ctx, resp.ID.String(), item.ID.String(), purchaselistdomain.UpdateItemRequest{
		RequiredQuantity: &qty,
	})
	require.NoError(t, err)
	require.NotNil(t, updated.SuggestedTotalBatches)
	assert.Equal(t, 4.0, *updated.SuggestedTotalBatches)
}
