package service

import (
	"context"
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/gosimple/slug"
	"github.com/smallbiznis/barflow/internal/accountcontext"
	drinkdomain "github.com/smallbiznis/barflow/internal/drink/domain"
	ingredientdomain "github.com/smallbiznis/barflow/internal/ingredient/domain"
	recipedomain "github.com/smallbiznis/barflow/internal/recipe/domain"
	unitsdomain "github.com/smallbiznis/barflow/internal/units/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Params struct {
	fx.In

	DB             *gorm.DB
	Log            *zap.Logger
	GenID          *snowflake.Node
	Repo           drinkdomain.Repository
	RecipeRepo     recipedomain.Repository
	IngredientRepo ingredientdomain.Repository
	Units          unitsdomain.Service
}

type Service struct {
	db             *gorm.DB
	log            *zap.Logger
	genID          *snowflake.Node
	repo           drinkdomain.Repository
	recipeRepo     recipedomain.Repository
	ingredientRepo ingredientdomain.Repository
	units          unitsdomain.Service
}

func New(p Params) drinkdomain.Service {
	return &Service{
		db:             p.DB,
		log:            p.Log.Named("drink.service"),
		genID:          p.GenID,
		repo:           p.Repo,
		recipeRepo:     p.RecipeRepo,
		ingredientRepo: p.IngredientRepo,
		units:          p.Units,
	}
}

func (s *Service) Create(ctx context.Context, req drinkdomain.CreateRequest) (*drinkdomain.Response, error) {
	accountID, ok := accountcontext.AccountIDFromContext(ctx)
	if !ok || accountID == 0 {
		return nil, drinkdomain.ErrInvalidAccount
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, drinkdomain.ErrInvalidName
	}

	// A drink starts with an empty recipe, which aggregates to zero.
	zero := 0.0
	now := time.Now().UTC()
	entity := &drinkdomain.Drink{
		ID:                 s.genID.Generate(),
		AccountID:          accountID,
		Name:               name,
		Type:               strings.TrimSpace(req.Type),
		Code:               slug.Make(name),
		CalculatedUnitCost: &zero,
		CreatedAt:          now,
		UpdatedAt:          now,
	}

	if err := s.repo.Insert(ctx, s.db, entity); err != nil {
		return nil, err
	}

	return toResponse(entity), nil
}

func (s *Service) List(ctx context.Context) ([]drinkdomain.Response, error) {
	accountID, ok := accountcontext.AccountIDFromContext(ctx)
	if !ok || accountID == 0 {
		return nil, drinkdomain.ErrInvalidAccount
	}

	items, err := s.repo.List(ctx, s.db, accountID)
	if err != nil {
		return nil, err
	}

	resp := make([]drinkdomain.Response, 0, len(items))
	for i := range items {
		resp = append(resp, *toResponse(&items[i]))
	}
	return resp, nil
}

func (s *Service) Get(ctx context.Context, id string) (*drinkdomain.Response, error) {
	entity, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	return toResponse(entity), nil
}

func (s *Service) Update(ctx context.Context, id string, req drinkdomain.UpdateRequest) (*drinkdomain.Response, error) {
	entity, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, drinkdomain.ErrInvalidName
		}
		entity.Name = name
		entity.Code = slug.Make(name)
	}
	if req.Type != nil {
		entity.Type = strings.TrimSpace(*req.Type)
	}
	entity.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, s.db, entity); err != nil {
		return nil, err
	}

	return toResponse(entity), nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	entity, err := s.find(ctx, id)
	if err != nil {
		return err
	}
	return s.repo.Delete(ctx, s.db, entity.AccountID, entity.ID)
}

func (s *Service) Recalculate(ctx context.Context, drinkID snowflake.ID) (float64, error) {
	accountID, ok := accountcontext.AccountIDFromContext(ctx)
	if !ok || accountID == 0 {
		return 0, drinkdomain.ErrInvalidAccount
	}

	entity, err := s.repo.FindByID(ctx, s.db, accountID, drinkID)
	if err != nil {
		return 0, err
	}
	if entity == nil {
		return 0, drinkdomain.ErrNotFound
	}

	lines, err := s.recipeRepo.ListByDrink(ctx, s.db, accountID, drinkID)
	if err != nil {
		return 0, err
	}

	var total float64
	for i := range lines {
		line := &lines[i]

		ingredient, err := s.ingredientRepo.FindByID(ctx, s.db, accountID, line.IngredientID)
		if err != nil {
			return 0, err
		}
		if ingredient == nil {
			return 0, drinkdomain.ErrIngredientNotFound
		}

		qty, err := s.units.Convert(ctx, line.RequiredQuantity, line.RecipeUnit, ingredient.BasePurchaseUnit)
		if err != nil {
			return 0, err
		}

		total += qty * ingredient.RealCostPerBaseUnit
	}

	entity.CalculatedUnitCost = &total
	entity.UpdatedAt = time.Now().UTC()
	if err := s.repo.Update(ctx, s.db, entity); err != nil {
		return 0, err
	}

	s.log.Debug("drink cost recalculated",
		zap.String("drink_id", drinkID.String()),
		zap.Int("lines", len(lines)),
		zap.Float64("unit_cost", total),
	)

	return total, nil
}

func (s *Service) find(ctx context.Context, id string) (*drinkdomain.Drink, error) {
	accountID, ok := accountcontext.AccountIDFromContext(ctx)
	if !ok || accountID == 0 {
		return nil, drinkdomain.ErrInvalidAccount
	}

	drinkID, err := snowflake.ParseString(strings.TrimSpace(id))
	if err != nil {
		return nil, drinkdomain.ErrInvalidID
	}

	entity, err := s.repo.FindByID(ctx, s.db, accountID, drinkID)
	if err != nil {
		return nil, err
	}
	if entity == nil {
		return nil, drinkdomain.ErrNotFound
	}
	return entity, nil
}

func toResponse(d *drinkdomain.Drink) *drinkdomain.Response {
	return &drinkdomain.Response{
		ID:                 d.ID,
		AccountID:          d.AccountID,
		Name:               d.Name,
		Type:               d.Type,
		Code:               d.Code,
		CalculatedUnitCost: d.CalculatedUnitCost,
		CreatedAt:          d.CreatedAt,
		UpdatedAt:          d.UpdatedAt,
	}
}
