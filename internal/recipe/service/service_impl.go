package service

import (
	"context"
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/smallbiznis/barflow/internal/accountcontext"
	drinkdomain "github.com/smallbiznis/barflow/internal/drink/domain"
	ingredientdomain "github.com/smallbiznis/barflow/internal/ingredient/domain"
	recipedomain "github.com/smallbiznis/barflow/internal/recipe/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Params struct {
	fx.In

	DB             *gorm.DB
	Log            *zap.Logger
	GenID          *snowflake.Node
	Repo           recipedomain.Repository
	DrinkRepo      drinkdomain.Repository
	IngredientRepo ingredientdomain.Repository
	Drinks         drinkdomain.Service
}

type Service struct {
	db             *gorm.DB
	log            *zap.Logger
	genID          *snowflake.Node
	repo           recipedomain.Repository
	drinkRepo      drinkdomain.Repository
	ingredientRepo ingredientdomain.Repository
	drinks         drinkdomain.Service
}

func New(p Params) recipedomain.Service {
	return &Service{
		db:             p.DB,
		log:            p.Log.Named("recipe.service"),
		genID:          p.GenID,
		repo:           p.Repo,
		drinkRepo:      p.DrinkRepo,
		ingredientRepo: p.IngredientRepo,
		drinks:         p.Drinks,
	}
}

func (s *Service) AddLine(ctx context.Context, drinkID string, req recipedomain.AddLineRequest) (*recipedomain.Response, error) {
	accountID, ok := accountcontext.AccountIDFromContext(ctx)
	if !ok || accountID == 0 {
		return nil, recipedomain.ErrInvalidAccount
	}

	did, err := parseID(drinkID)
	if err != nil {
		return nil, err
	}
	iid, err := parseID(req.IngredientID)
	if err != nil {
		return nil, err
	}

	if req.RequiredQuantity <= 0 {
		return nil, recipedomain.ErrInvalidQuantity
	}
	unit := strings.ToLower(strings.TrimSpace(req.RecipeUnit))
	if unit == "" {
		return nil, recipedomain.ErrInvalidUnit
	}

	if err := s.checkOwnership(ctx, accountID, did, iid); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	line := &recipedomain.RecipeLine{
		ID:               s.genID.Generate(),
		AccountID:        accountID,
		DrinkID:          did,
		IngredientID:     iid,
		RequiredQuantity: req.RequiredQuantity,
		RecipeUnit:       unit,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	if err := s.repo.Insert(ctx, s.db, line); err != nil {
		return nil, err
	}

	return s.refreshed(ctx, line)
}

func (s *Service) UpdateLine(ctx context.Context, drinkID, ingredientID string, req recipedomain.UpdateLineRequest) (*recipedomain.Response, error) {
	accountID, ok := accountcontext.AccountIDFromContext(ctx)
	if !ok || accountID == 0 {
		return nil, recipedomain.ErrInvalidAccount
	}

	did, err := parseID(drinkID)
	if err != nil {
		return nil, err
	}
	iid, err := parseID(ingredientID)
	if err != nil {
		return nil, err
	}

	line, err := s.repo.FindLine(ctx, s.db, accountID, did, iid)
	if err != nil {
		return nil, err
	}
	if line == nil {
		return nil, recipedomain.ErrLineNotFound
	}

	if req.RequiredQuantity != nil {
		if *req.RequiredQuantity <= 0 {
			return nil, recipedomain.ErrInvalidQuantity
		}
		line.RequiredQuantity = *req.RequiredQuantity
	}
	if req.RecipeUnit != nil {
		unit := strings.ToLower(strings.TrimSpace(*req.RecipeUnit))
		if unit == "" {
			return nil, recipedomain.ErrInvalidUnit
		}
		line.RecipeUnit = unit
	}
	line.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, s.db, line); err != nil {
		return nil, err
	}

	return s.refreshed(ctx, line)
}

func (s *Service) RemoveLine(ctx context.Context, drinkID, ingredientID string) error {
	accountID, ok := accountcontext.AccountIDFromContext(ctx)
	if !ok || accountID == 0 {
		return recipedomain.ErrInvalidAccount
	}

	did, err := parseID(drinkID)
	if err != nil {
		return err
	}
	iid, err := parseID(ingredientID)
	if err != nil {
		return err
	}

	line, err := s.repo.FindLine(ctx, s.db, accountID, did, iid)
	if err != nil {
		return err
	}
	if line == nil {
		return recipedomain.ErrLineNotFound
	}

	if err := s.repo.Delete(ctx, s.db, accountID, did, iid); err != nil {
		return err
	}

	if _, err := s.drinks.Recalculate(ctx, did); err != nil {
		s.log.Error("cost refresh after line removal failed",
			zap.String("drink_id", did.String()), zap.Error(err))
		return recipedomain.ErrCostRefreshFailed
	}
	return nil
}

func (s *Service) checkOwnership(ctx context.Context, accountID, drinkID, ingredientID snowflake.ID) error {
	drink, err := s.drinkRepo.FindByID(ctx, s.db, accountID, drinkID)
	if err != nil {
		return err
	}
	if drink == nil {
		return recipedomain.ErrDrinkNotFound
	}

	ingredient, err := s.ingredientRepo.FindByID(ctx, s.db, accountID, ingredientID)
	if err != nil {
		return err
	}
	if ingredient == nil {
		return recipedomain.ErrIngredientNotFound
	}
	return nil
}

// refreshed runs the second half of the unit of work: the line is
// already committed, so a recompute failure is reported but the write
// is not rolled back.
func (s *Service) refreshed(ctx context.Context, line *recipedomain.RecipeLine) (*recipedomain.Response, error) {
	cost, err := s.drinks.Recalculate(ctx, line.DrinkID)
	if err != nil {
		s.log.Error("cost refresh after line write failed",
			zap.String("drink_id", line.DrinkID.String()), zap.Error(err))
		return nil, recipedomain.ErrCostRefreshFailed
	}

	return &recipedomain.Response{
		ID:               line.ID,
		AccountID:        line.AccountID,
		DrinkID:          line.DrinkID,
		IngredientID:     line.IngredientID,
		RequiredQuantity: line.RequiredQuantity,
		RecipeUnit:       line.RecipeUnit,
		DrinkUnitCost:    cost,
		CreatedAt:        line.CreatedAt,
		UpdatedAt:        line.UpdatedAt,
	}, nil
}

func parseID(id string) (snowflake.ID, error) {
	parsed, err := snowflake.ParseString(strings.TrimSpace(id))
	if err != nil {
		return 0, recipedomain.ErrInvalidID
	}
	return parsed, nil
}
