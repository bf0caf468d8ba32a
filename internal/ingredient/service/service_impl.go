package service

import (
	"context"
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/smallbiznis/barflow/internal/accountcontext"
	ingredientdomain "github.com/smallbiznis/barflow/internal/ingredient/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Params struct {
	fx.In

	DB    *gorm.DB
	Log   *zap.Logger
	GenID *snowflake.Node
	Repo  ingredientdomain.Repository
}

type Service struct {
	db    *gorm.DB
	log   *zap.Logger
	genID *snowflake.Node
	repo  ingredientdomain.Repository
}

func New(p Params) ingredientdomain.Service {
	return &Service{
		db:    p.DB,
		log:   p.Log.Named("ingredient.service"),
		genID: p.GenID,
		repo:  p.Repo,
	}
}

func (s *Service) Create(ctx context.Context, req ingredientdomain.CreateRequest) (*ingredientdomain.Response, error) {
	accountID, ok := accountcontext.AccountIDFromContext(ctx)
	if !ok || accountID == 0 {
		return nil, ingredientdomain.ErrInvalidAccount
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, ingredientdomain.ErrInvalidName
	}
	baseUnit := strings.TrimSpace(req.BasePurchaseUnit)
	if baseUnit == "" {
		return nil, ingredientdomain.ErrInvalidBaseUnit
	}

	wastage := ingredientdomain.DefaultWastage
	if req.WastagePercentage != nil {
		wastage = *req.WastagePercentage
	}
	if req.SuggestedBatchSize != nil && *req.SuggestedBatchSize <= 0 {
		return nil, ingredientdomain.ErrInvalidBatchSize
	}

	costPerUnit, realCost, err := ingredientdomain.ComputeCosts(req.PurchasePrice, req.BasePurchaseQuantity, wastage)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	entity := &ingredientdomain.Ingredient{
		ID:                   s.genID.Generate(),
		AccountID:            accountID,
		Name:                 name,
		Supplier:             strings.TrimSpace(req.Supplier),
		QuotationDate:        req.QuotationDate,
		PurchasePrice:        req.PurchasePrice,
		BasePurchaseQuantity: req.BasePurchaseQuantity,
		BasePurchaseUnit:     baseUnit,
		WastagePercentage:    wastage,
		SuggestedBatchSize:   req.SuggestedBatchSize,
		CostPerBaseUnit:      costPerUnit,
		RealCostPerBaseUnit:  realCost,
		CreatedAt:            now,
		UpdatedAt:            now,
	}

	if err := s.repo.Insert(ctx, s.db, entity); err != nil {
		return nil, err
	}

	return toResponse(entity), nil
}

func (s *Service) List(ctx context.Context) ([]ingredientdomain.Response, error) {
	accountID, ok := accountcontext.AccountIDFromContext(ctx)
	if !ok || accountID == 0 {
		return nil, ingredientdomain.ErrInvalidAccount
	}

	items, err := s.repo.List(ctx, s.db, accountID)
	if err != nil {
		return nil, err
	}

	resp := make([]ingredientdomain.Response, 0, len(items))
	for i := range items {
		resp = append(resp, *toResponse(&items[i]))
	}
	return resp, nil
}

func (s *Service) Get(ctx context.Context, id string) (*ingredientdomain.Response, error) {
	entity, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	return toResponse(entity), nil
}

// Update merges the patch over stored values, then recomputes both
// derived costs from the merged inputs. Callers can never set the
// derived fields directly.
func (s *Service) Update(ctx context.Context, id string, req ingredientdomain.UpdateRequest) (*ingredientdomain.Response, error) {
	entity, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, ingredientdomain.ErrInvalidName
		}
		entity.Name = name
	}
	if req.Supplier != nil {
		entity.Supplier = strings.TrimSpace(*req.Supplier)
	}
	if req.QuotationDate != nil {
		entity.QuotationDate = req.QuotationDate
	}
	if req.PurchasePrice != nil {
		entity.PurchasePrice = *req.PurchasePrice
	}
	if req.BasePurchaseQuantity != nil {
		entity.BasePurchaseQuantity = *req.BasePurchaseQuantity
	}
	if req.BasePurchaseUnit != nil {
		baseUnit := strings.TrimSpace(*req.BasePurchaseUnit)
		if baseUnit == "" {
			return nil, ingredientdomain.ErrInvalidBaseUnit
		}
		entity.BasePurchaseUnit = baseUnit
	}
	if req.WastagePercentage != nil {
		entity.WastagePercentage = *req.WastagePercentage
	}
	if req.SuggestedBatchSize != nil {
		if *req.SuggestedBatchSize <= 0 {
			return nil, ingredientdomain.ErrInvalidBatchSize
		}
		entity.SuggestedBatchSize = req.SuggestedBatchSize
	}

	costPerUnit, realCost, err := ingredientdomain.ComputeCosts(
		entity.PurchasePrice,
		entity.BasePurchaseQuantity,
		entity.WastagePercentage,
	)
	if err != nil {
		return nil, err
	}
	entity.CostPerBaseUnit = costPerUnit
	entity.RealCostPerBaseUnit = realCost
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

func (s *Service) find(ctx context.Context, id string) (*ingredientdomain.Ingredient, error) {
	accountID, ok := accountcontext.AccountIDFromContext(ctx)
	if !ok || accountID == 0 {
		return nil, ingredientdomain.ErrInvalidAccount
	}

	ingredientID, err := snowflake.ParseString(strings.TrimSpace(id))
	if err != nil {
		return nil, ingredientdomain.ErrInvalidID
	}

	entity, err := s.repo.FindByID(ctx, s.db, accountID, ingredientID)
	if err != nil {
		return nil, err
	}
	if entity == nil {
		return nil, ingredientdomain.ErrNotFound
	}
	return entity, nil
}

func toResponse(i *ingredientdomain.Ingredient) *ingredientdomain.Response {
	return &ingredientdomain.Response{
		ID:                   i.ID,
		AccountID:            i.AccountID,
		Name:                 i.Name,
		Supplier:             i.Supplier,
		QuotationDate:        i.QuotationDate,
		PurchasePrice:        i.PurchasePrice,
		BasePurchaseQuantity: i.BasePurchaseQuantity,
		BasePurchaseUnit:     i.BasePurchaseUnit,
		WastagePercentage:    i.WastagePercentage,
		SuggestedBatchSize:   i.SuggestedBatchSize,
		CostPerBaseUnit:      i.CostPerBaseUnit,
		RealCostPerBaseUnit:  i.RealCostPerBaseUnit,
		CreatedAt:            i.CreatedAt,
		UpdatedAt:            i.UpdatedAt,
	}
}
