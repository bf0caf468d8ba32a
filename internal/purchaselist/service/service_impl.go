package service

import (
	"context"
	"math"
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/oklog/ulid/v2"
	"github.com/smallbiznis/barflow/internal/accountcontext"
	drinkdomain "github.com/smallbiznis/barflow/internal/drink/domain"
	eventdomain "github.com/smallbiznis/barflow/internal/event/domain"
	ingredientdomain "github.com/smallbiznis/barflow/internal/ingredient/domain"
	purchaselistdomain "github.com/smallbiznis/barflow/internal/purchaselist/domain"
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
	Repo           purchaselistdomain.Repository
	ItemRepo       purchaselistdomain.ItemRepository
	EventRepo      eventdomain.Repository
	DrinkRepo      drinkdomain.Repository
	RecipeRepo     recipedomain.Repository
	IngredientRepo ingredientdomain.Repository
	Units          unitsdomain.Service
}

type Service struct {
	db             *gorm.DB
	log            *zap.Logger
	genID          *snowflake.Node
	repo           purchaselistdomain.Repository
	itemRepo       purchaselistdomain.ItemRepository
	eventRepo      eventdomain.Repository
	drinkRepo      drinkdomain.Repository
	recipeRepo     recipedomain.Repository
	ingredientRepo ingredientdomain.Repository
	units          unitsdomain.Service
}

func New(p Params) purchaselistdomain.Service {
	return &Service{
		db:             p.DB,
		log:            p.Log.Named("purchaselist.service"),
		genID:          p.GenID,
		repo:           p.Repo,
		itemRepo:       p.ItemRepo,
		eventRepo:      p.EventRepo,
		drinkRepo:      p.DrinkRepo,
		recipeRepo:     p.RecipeRepo,
		ingredientRepo: p.IngredientRepo,
		units:          p.Units,
	}
}

// accumulator carries one ingredient's running total in base units.
type accumulator struct {
	ingredient *ingredientdomain.Ingredient
	quantity   float64
}

func (s *Service) Plan(ctx context.Context, eventIDs []string) ([]purchaselistdomain.PlannedItem, error) {
	accountID, ok := accountcontext.AccountIDFromContext(ctx)
	if !ok || accountID == 0 {
		return nil, purchaselistdomain.ErrInvalidAccount
	}

	items := []purchaselistdomain.PlannedItem{}
	if len(eventIDs) == 0 {
		return items, nil
	}

	drinks, err := s.drinkRepo.List(ctx, s.db, accountID)
	if err != nil {
		return nil, err
	}
	if len(drinks) == 0 {
		return items, nil
	}

	totals := map[snowflake.ID]*accumulator{}
	order := []snowflake.ID{}

	for _, raw := range eventIDs {
		eventID, err := snowflake.ParseString(strings.TrimSpace(raw))
		if err != nil {
			return nil, purchaselistdomain.ErrInvalidID
		}
		event, err := s.eventRepo.FindByID(ctx, s.db, accountID, eventID)
		if err != nil {
			return nil, err
		}
		if event == nil {
			return nil, purchaselistdomain.ErrEventNotFound
		}

		// Demand is split evenly across the account's drinks.
		perDrink := event.EstimatedTotalDrinks / float64(len(drinks))

		for i := range drinks {
			lines, err := s.recipeRepo.ListByDrink(ctx, s.db, accountID, drinks[i].ID)
			if err != nil {
				return nil, err
			}

			for j := range lines {
				line := &lines[j]

				acc, seen := totals[line.IngredientID]
				if !seen {
					ingredient, err := s.ingredientRepo.FindByID(ctx, s.db, accountID, line.IngredientID)
					if err != nil {
						return nil, err
					}
					if ingredient == nil {
						return nil, purchaselistdomain.ErrIngredientNotFound
					}
					acc = &accumulator{ingredient: ingredient}
					totals[line.IngredientID] = acc
					order = append(order, line.IngredientID)
				}

				qty, err := s.units.Convert(ctx, perDrink*line.RequiredQuantity, line.RecipeUnit, acc.ingredient.BasePurchaseUnit)
				if err != nil {
					return nil, err
				}
				acc.quantity += qty
			}
		}
	}

	for _, id := range order {
		acc := totals[id]
		items = append(items, purchaselistdomain.PlannedItem{
			IngredientID:          id,
			IngredientName:        acc.ingredient.Name,
			RequiredQuantity:      acc.quantity,
			RequiredUnit:          acc.ingredient.BasePurchaseUnit,
			SuggestedBatchSize:    acc.ingredient.SuggestedBatchSize,
			SuggestedTotalBatches: computeBatches(acc.quantity, acc.ingredient.SuggestedBatchSize),
		})
	}
	return items, nil
}

func (s *Service) Generate(ctx context.Context, req purchaselistdomain.GenerateRequest) (*purchaselistdomain.Response, error) {
	accountID, ok := accountcontext.AccountIDFromContext(ctx)
	if !ok || accountID == 0 {
		return nil, purchaselistdomain.ErrInvalidAccount
	}

	planned, err := s.Plan(ctx, req.EventIDs)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	list := &purchaselistdomain.PurchaseList{
		ID:             s.genID.Generate(),
		AccountID:      accountID,
		Reference:      ulid.Make().String(),
		Status:         purchaselistdomain.StatusGenerated,
		GenerationDate: now,
		Metadata:       req.Metadata,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if len(req.EventIDs) == 1 {
		eventID, err := snowflake.ParseString(strings.TrimSpace(req.EventIDs[0]))
		if err == nil {
			list.EventID = &eventID
		}
	}

	if err := s.repo.Insert(ctx, s.db, list); err != nil {
		return nil, err
	}

	resp := toResponse(list)
	for _, p := range planned {
		item := &purchaselistdomain.PurchaseListItem{
			ID:                    s.genID.Generate(),
			AccountID:             accountID,
			PurchaseListID:        list.ID,
			IngredientID:          p.IngredientID,
			RequiredQuantity:      p.RequiredQuantity,
			RequiredUnit:          p.RequiredUnit,
			BatchUnit:             p.RequiredUnit,
			SuggestedBatchSize:    p.SuggestedBatchSize,
			SuggestedTotalBatches: p.SuggestedTotalBatches,
			CreatedAt:             now,
			UpdatedAt:             now,
		}
		if err := s.itemRepo.Insert(ctx, s.db, item); err != nil {
			return nil, err
		}
		resp.Items = append(resp.Items, *toItemResponse(item))
	}

	s.log.Info("purchase list generated",
		zap.String("reference", list.Reference),
		zap.Int("events", len(req.EventIDs)),
		zap.Int("items", len(resp.Items)),
	)

	return resp, nil
}

func (s *Service) List(ctx context.Context) ([]purchaselistdomain.Response, error) {
	accountID, ok := accountcontext.AccountIDFromContext(ctx)
	if !ok || accountID == 0 {
		return nil, purchaselistdomain.ErrInvalidAccount
	}

	lists, err := s.repo.List(ctx, s.db, accountID)
	if err != nil {
		return nil, err
	}

	resp := make([]purchaselistdomain.Response, 0, len(lists))
	for i := range lists {
		resp = append(resp, *toResponse(&lists[i]))
	}
	return resp, nil
}

func (s *Service) Get(ctx context.Context, id string) (*purchaselistdomain.Response, error) {
	list, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}

	items, err := s.itemRepo.ListByList(ctx, s.db, list.AccountID, list.ID)
	if err != nil {
		return nil, err
	}

	resp := toResponse(list)
	for i := range items {
		resp.Items = append(resp.Items, *toItemResponse(&items[i]))
	}
	return resp, nil
}

func (s *Service) Update(ctx context.Context, id string, req purchaselistdomain.UpdateRequest) (*purchaselistdomain.Response, error) {
	list, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Status != nil {
		status := strings.ToUpper(strings.TrimSpace(*req.Status))
		if status == "" {
			return nil, purchaselistdomain.ErrInvalidStatus
		}
		list.Status = status
	}
	if req.Metadata != nil {
		list.Metadata = req.Metadata
	}
	list.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, s.db, list); err != nil {
		return nil, err
	}

	return toResponse(list), nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	list, err := s.find(ctx, id)
	if err != nil {
		return err
	}
	return s.repo.Delete(ctx, s.db, list.AccountID, list.ID)
}

func (s *Service) AddItem(ctx context.Context, listID string, req purchaselistdomain.AddItemRequest) (*purchaselistdomain.ItemResponse, error) {
	list, err := s.find(ctx, listID)
	if err != nil {
		return nil, err
	}

	ingredientID, err := snowflake.ParseString(strings.TrimSpace(req.IngredientID))
	if err != nil {
		return nil, purchaselistdomain.ErrInvalidID
	}
	ingredient, err := s.ingredientRepo.FindByID(ctx, s.db, list.AccountID, ingredientID)
	if err != nil {
		return nil, err
	}
	if ingredient == nil {
		return nil, purchaselistdomain.ErrIngredientNotFound
	}

	if req.RequiredQuantity <= 0 {
		return nil, purchaselistdomain.ErrInvalidQuantity
	}
	unit := strings.ToLower(strings.TrimSpace(req.RequiredUnit))
	if unit == "" {
		unit = ingredient.BasePurchaseUnit
	}

	batchSize := ingredient.SuggestedBatchSize
	if req.SuggestedBatchSize != nil {
		batchSize = req.SuggestedBatchSize
	}

	baseQty, err := s.units.Convert(ctx, req.RequiredQuantity, unit, ingredient.BasePurchaseUnit)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	item := &purchaselistdomain.PurchaseListItem{
		ID:                    s.genID.Generate(),
		AccountID:             list.AccountID,
		PurchaseListID:        list.ID,
		IngredientID:          ingredientID,
		RequiredQuantity:      req.RequiredQuantity,
		RequiredUnit:          unit,
		BatchUnit:             ingredient.BasePurchaseUnit,
		SuggestedBatchSize:    batchSize,
		SuggestedTotalBatches: computeBatches(baseQty, batchSize),
		CreatedAt:             now,
		UpdatedAt:             now,
	}

	if err := s.itemRepo.Insert(ctx, s.db, item); err != nil {
		return nil, err
	}

	return toItemResponse(item), nil
}

func (s *Service) UpdateItem(ctx context.Context, listID, itemID string, req purchaselistdomain.UpdateItemRequest) (*purchaselistdomain.ItemResponse, error) {
	list, err := s.find(ctx, listID)
	if err != nil {
		return nil, err
	}

	id, err := snowflake.ParseString(strings.TrimSpace(itemID))
	if err != nil {
		return nil, purchaselistdomain.ErrInvalidID
	}

	item, err := s.itemRepo.FindByID(ctx, s.db, list.AccountID, list.ID, id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, purchaselistdomain.ErrItemNotFound
	}

	if req.RequiredQuantity != nil {
		if *req.RequiredQuantity <= 0 {
			return nil, purchaselistdomain.ErrInvalidQuantity
		}
		item.RequiredQuantity = *req.RequiredQuantity
	}
	if req.RequiredUnit != nil {
		unit := strings.ToLower(strings.TrimSpace(*req.RequiredUnit))
		if unit == "" {
			return nil, purchaselistdomain.ErrInvalidUnit
		}
		item.RequiredUnit = unit
	}
	if req.SuggestedBatchSize != nil {
		item.SuggestedBatchSize = req.SuggestedBatchSize
	}

	baseQty, err := s.units.Convert(ctx, item.RequiredQuantity, item.RequiredUnit, item.BatchUnit)
	if err != nil {
		return nil, err
	}
	item.SuggestedTotalBatches = computeBatches(baseQty, item.SuggestedBatchSize)
	item.UpdatedAt = time.Now().UTC()

	if err := s.itemRepo.Update(ctx, s.db, item); err != nil {
		return nil, err
	}

	return toItemResponse(item), nil
}

func (s *Service) RemoveItem(ctx context.Context, listID, itemID string) error {
	list, err := s.find(ctx, listID)
	if err != nil {
		return err
	}

	id, err := snowflake.ParseString(strings.TrimSpace(itemID))
	if err != nil {
		return purchaselistdomain.ErrInvalidID
	}

	item, err := s.itemRepo.FindByID(ctx, s.db, list.AccountID, list.ID, id)
	if err != nil {
		return err
	}
	if item == nil {
		return purchaselistdomain.ErrItemNotFound
	}

	return s.itemRepo.Delete(ctx, s.db, list.AccountID, list.ID, id)
}

func (s *Service) find(ctx context.Context, id string) (*purchaselistdomain.PurchaseList, error) {
	accountID, ok := accountcontext.AccountIDFromContext(ctx)
	if !ok || accountID == 0 {
		return nil, purchaselistdomain.ErrInvalidAccount
	}

	listID, err := snowflake.ParseString(strings.TrimSpace(id))
	if err != nil {
		return nil, purchaselistdomain.ErrInvalidID
	}

	list, err := s.repo.FindByID(ctx, s.db, accountID, listID)
	if err != nil {
		return nil, err
	}
	if list == nil {
		return nil, purchaselistdomain.ErrNotFound
	}
	return list, nil
}

func computeBatches(baseQty float64, batchSize *float64) *float64 {
	if batchSize == nil || *batchSize <= 0 {
		return nil
	}
	batches := math.Ceil(baseQty / *batchSize)
	return &batches
}

func toResponse(l *purchaselistdomain.PurchaseList) *purchaselistdomain.Response {
	return &purchaselistdomain.Response{
		ID:             l.ID,
		AccountID:      l.AccountID,
		Reference:      l.Reference,
		Status:         l.Status,
		GenerationDate: l.GenerationDate,
		EventID:        l.EventID,
		Metadata:       l.Metadata,
		CreatedAt:      l.CreatedAt,
		UpdatedAt:      l.UpdatedAt,
	}
}

func toItemResponse(i *purchaselistdomain.PurchaseListItem) *purchaselistdomain.ItemResponse {
	return &purchaselistdomain.ItemResponse{
		ID:                    i.ID,
		AccountID:             i.AccountID,
		PurchaseListID:        i.PurchaseListID,
		IngredientID:          i.IngredientID,
		RequiredQuantity:      i.RequiredQuantity,
		RequiredUnit:          i.RequiredUnit,
		BatchUnit:             i.BatchUnit,
		SuggestedBatchSize:    i.SuggestedBatchSize,
		SuggestedTotalBatches: i.SuggestedTotalBatches,
		CreatedAt:             i.CreatedAt,
		UpdatedAt:             i.UpdatedAt,
	}
}
