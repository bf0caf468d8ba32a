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
	unitsdomain "github.com/smallbiznis/barflow/internal/units/domain"
	unitsrepository "github.com/smallbiznis/barflow/internal/units/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func setupUnitsService(t *testing.T, strict bool) (unitsdomain.Service, *gorm.DB, *snowflake.Node) {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(&unitsdomain.ConversionRule{}))

	node, err := snowflake.NewNode(1)
	require.NoError(t, err)

	svc := New(Params{
		DB:    db,
		Log:   zap.NewNop(),
		GenID: node,
		Repo:  unitsrepository.Provide(),
		Cfg:   config.Config{UnitsStrict: strict},
	})

	return svc, db, node
}

func seedRule(t *testing.T, db *gorm.DB, node *snowflake.Node, accountID snowflake.ID, from, to string, factor float64) {
	t.Helper()
	now := time.Now().UTC()
	require.NoError(t, db.Create(&unitsdomain.ConversionRule{
		ID:        node.Generate(),
		AccountID: accountID,
		FromUnit:  from,
		ToUnit:    to,
		Factor:    factor,
		CreatedAt: now,
		UpdatedAt: now,
	}).Error)
}

func TestConvertIdentity(t *testing.T) {
	svc, _, _ := setupUnitsService(t, false)

	got, err := svc.Convert(context.Background(), 42.5, "ml", "ml")
	require.NoError(t, err)
	assert.Equal(t, 42.5, got)
}

func TestConvertDirectRule(t *testing.T) {
	svc, db, node := setupUnitsService(t, false)
	seedRule(t, db, node, 0, "ml", "l", 0.001)

	got, err := svc.Convert(context.Background(), 1500, "ml", "l")
	require.NoError(t, err)
	assert.InDelta(t, 1.5, got, 1e-9)
}

func TestConvertReverseRule(t *testing.T) {
	svc, db, node := setupUnitsService(t, false)
	seedRule(t, db, node, 0, "ml", "l", 0.001)

	got, err := svc.Convert(context.Background(), 2, "l", "ml")
	require.NoError(t, err)
	assert.InDelta(t, 2000, got, 1e-9)
}

func TestConvertAccountRulePrecedence(t *testing.T) {
	svc, db, node := setupUnitsService(t, false)
	accountID := node.Generate()
	seedRule(t, db, node, 0, "shot", "ml", 30)
	seedRule(t, db, node, accountID, "shot", "ml", 40)

	ctx := accountcontext.WithAccountID(context.Background(), int64(accountID))
	got, err := svc.Convert(ctx, 2, "shot", "ml")
	require.NoError(t, err)
	assert.InDelta(t, 80, got, 1e-9)
}

func TestConvertUnknownPairFallsBack(t *testing.T) {
	svc, _, _ := setupUnitsService(t, false)

	got, err := svc.Convert(context.Background(), 7, "dash", "splash")
	require.NoError(t, err)
	assert.Equal(t, 7.0, got)
}

func TestConvertUnknownPairStrict(t *testing.T) {
	svc, _, _ := setupUnitsService(t, true)

	_, err := svc.Convert(context.Background(), 7, "dash", "splash")
	assert.ErrorIs(t, err, unitsdomain.ErrNoConversionRule)
}

func TestConvertNormalizesUnits(t *testing.T) {
	svc, db, node := setupUnitsService(t, false)
	seedRule(t, db, node, 0, "g", "kg", 0.001)

	got, err := svc.Convert(context.Background(), 500, " G ", "Kg")
	require.NoError(t, err)
	assert.InDelta(t, 0.5, got, 1e-9)
}

func TestCreateRuleValidation(t *testing.T) {
	svc, _, node := setupUnitsService(t, false)
	ctx := accountcontext.WithAccountID(context.Background(), int64(node.Generate()))

	_, err := svc.CreateRule(ctx, unitsdomain.CreateRequest{FromUnit: "", ToUnit: "ml", Factor: 1})
	assert.ErrorIs(t, err, unitsdomain.ErrInvalidUnit)

	_, err = svc.CreateRule(ctx, unitsdomain.CreateRequest{FromUnit: "oz", ToUnit: "ml", Factor: 0})
	assert.ErrorIs(t, err, unitsdomain.ErrInvalidFactor)

	resp, err := svc.CreateRule(ctx, unitsdomain.CreateRequest{FromUnit: "Oz", ToUnit: "ML", Factor: 29.57})
	require.NoError(t, err)
	assert.Equal(t, "oz", resp.FromUnit)
	assert.Equal(t, "ml", resp.ToUnit)
}

func TestCreateRuleRequiresAccount(t *testing.T) {
	svc, _, _ := setupUnitsService(t, false)

	_, err := svc.CreateRule(context.Background(), unitsdomain.CreateRequest{FromUnit: "oz", ToUnit: "ml", Factor: 29.57})
	assert.ErrorIs(t, err, unitsdomain.ErrInvalidAccount)
}
