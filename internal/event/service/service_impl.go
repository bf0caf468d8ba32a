package service

import (
	"context"
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/smallbiznis/barflow/internal/accountcontext"
	clientdomain "github.com/smallbiznis/barflow/internal/client/domain"
	drinkdomain "github.com/smallbiznis/barflow/internal/drink/domain"
	eventdomain "github.com/smallbiznis/barflow/internal/event/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Params struct {
	fx.In

	DB         *gorm.DB
	Log        *zap.Logger
	GenID      *snowflake.Node
	Repo       eventdomain.Repository
	ServedRepo eventdomain.ServedDrinkRepository
	CostRepo   eventdomain.AdditionalCostRepository
	ClientRepo clientdomain.Repository
	DrinkRepo  drinkdomain.Repository
}

type Service struct {
	db         *gorm.DB
	log        *zap.Logger
	genID      *snowflake.Node
	repo       eventdomain.Repository
	servedRepo eventdomain.ServedDrinkRepository
	costRepo   eventdomain.AdditionalCostRepository
	clientRepo clientdomain.Repository
	drinkRepo  drinkdomain.Repository
}

func New(p Params) eventdomain.Service {
	return &Service{
		db:         p.DB,
		log:        p.Log.Named("event.service"),
		genID:      p.GenID,
		repo:       p.Repo,
		servedRepo: p.ServedRepo,
		costRepo:   p.CostRepo,
		clientRepo: p.ClientRepo,
		drinkRepo:  p.DrinkRepo,
	}
}

func (s *Service) Create(ctx context.Context, req eventdomain.CreateRequest) (*eventdomain.Response, error) {
	accountID, ok := accountcontext.AccountIDFromContext(ctx)
	if !ok || accountID == 0 {
		return nil, eventdomain.ErrInvalidAccount
	}

	clientID, err := snowflake.ParseString(strings.TrimSpace(req.ClientID))
	if err != nil {
		return nil, eventdomain.ErrInvalidID
	}
	client, err := s.clientRepo.FindByID(ctx, s.db, accountID, clientID)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, eventdomain.ErrClientNotFound
	}

	rating := 0.0
	if req.PublicRating != nil {
		rating = *req.PublicRating
	}

	estimate, err := eventdomain.EstimateDemand(req.NumGuests, req.DurationHours, rating)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	entity := &eventdomain.Event{
		ID:                     s.genID.Generate(),
		AccountID:              accountID,
		ClientID:               clientID,
		EventDate:              req.EventDate,
		Location:               strings.TrimSpace(req.Location),
		NumGuests:              req.NumGuests,
		DurationHours:          req.DurationHours,
		PublicRating:           rating,
		DistanceKm:             req.DistanceKm,
		ProfitMarginPercentage: req.ProfitMarginPercentage,
		EstimatedTotalDrinks:   estimate,
		TotalInvestment:        req.TotalInvestment,
		GrossProfit:            req.GrossProfit,
		Metadata:               req.Metadata,
		CreatedAt:              now,
		UpdatedAt:              now,
	}

	if err := s.repo.Insert(ctx, s.db, entity); err != nil {
		return nil, err
	}

	return toResponse(entity), nil
}

func (s *Service) List(ctx context.Context) ([]eventdomain.Response, error) {
	accountID, ok := accountcontext.AccountIDFromContext(ctx)
	if !ok || accountID == 0 {
		return nil, eventdomain.ErrInvalidAccount
	}

	items, err := s.repo.List(ctx, s.db, accountID)
	if err != nil {
		return nil, err
	}

	resp := make([]eventdomain.Response, 0, len(items))
	for i := range items {
		resp = append(resp, *toResponse(&items[i]))
	}
	return resp, nil
}

func (s *Service) Get(ctx context.Context, id string) (*eventdomain.Response, error) {
	entity, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	return toResponse(entity), nil
}

func (s *Service) Update(ctx context.Context, id string, req eventdomain.UpdateRequest) (*eventdomain.Response, error) {
	entity, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.ClientID != nil {
		clientID, err := snowflake.ParseString(strings.TrimSpace(*req.ClientID))
		if err != nil {
			return nil, eventdomain.ErrInvalidID
		}
		client, err := s.clientRepo.FindByID(ctx, s.db, entity.AccountID, clientID)
		if err != nil {
			return nil, err
		}
		if client == nil {
			return nil, eventdomain.ErrClientNotFound
		}
		entity.ClientID = clientID
	}
	if req.EventDate != nil {
		entity.EventDate = *req.EventDate
	}
	if req.Location != nil {
		entity.Location = strings.TrimSpace(*req.Location)
	}
	if req.NumGuests != nil {
		entity.NumGuests = *req.NumGuests
	}
	if req.DurationHours != nil {
		entity.DurationHours = *req.DurationHours
	}
	if req.PublicRating != nil {
		entity.PublicRating = *req.PublicRating
	}
	if req.DistanceKm != nil {
		entity.DistanceKm = *req.DistanceKm
	}
	if req.ProfitMarginPercentage != nil {
		entity.ProfitMarginPercentage = *req.ProfitMarginPercentage
	}
	if req.TotalInvestment != nil {
		entity.TotalInvestment = *req.TotalInvestment
	}
	if req.GrossProfit != nil {
		entity.GrossProfit = *req.GrossProfit
	}
	if req.Metadata != nil {
		entity.Metadata = req.Metadata
	}

	// The estimate always reflects the merged inputs.
	estimate, err := eventdomain.EstimateDemand(entity.NumGuests, entity.DurationHours, entity.PublicRating)
	if err != nil {
		return nil, err
	}
	entity.EstimatedTotalDrinks = estimate
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

func (s *Service) AddServedDrink(ctx context.Context, eventID string, req eventdomain.AddServedDrinkRequest) (*eventdomain.ServedDrinkResponse, error) {
	event, err := s.find(ctx, eventID)
	if err != nil {
		return nil, err
	}

	drinkID, err := snowflake.ParseString(strings.TrimSpace(req.DrinkID))
	if err != nil {
		return nil, eventdomain.ErrInvalidID
	}
	drink, err := s.drinkRepo.FindByID(ctx, s.db, event.AccountID, drinkID)
	if err != nil {
		return nil, err
	}
	if drink == nil {
		return nil, eventdomain.ErrDrinkNotFound
	}

	if req.ServedQuantity <= 0 {
		return nil, eventdomain.ErrInvalidQuantity
	}

	// Snapshot the drink's cost at serving time. Later recipe edits
	// must not move the recorded line.
	unitCost := req.UnitCostAtEvent
	if unitCost == nil {
		if drink.CalculatedUnitCost == nil {
			return nil, eventdomain.ErrDrinkCostNotCalculated
		}
		snapshot := *drink.CalculatedUnitCost
		unitCost = &snapshot
	}
	total := req.ServedQuantity * *unitCost

	now := time.Now().UTC()
	line := &eventdomain.ServedDrinkLine{
		ID:               s.genID.Generate(),
		AccountID:        event.AccountID,
		EventID:          event.ID,
		DrinkID:          drinkID,
		ServedQuantity:   req.ServedQuantity,
		UnitCostAtEvent:  unitCost,
		TotalCostAtEvent: &total,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	if err := s.servedRepo.Insert(ctx, s.db, line); err != nil {
		return nil, err
	}

	return toServedDrinkResponse(line), nil
}

func (s *Service) UpdateServedDrink(ctx context.Context, eventID, lineID string, req eventdomain.UpdateServedDrinkRequest) (*eventdomain.ServedDrinkResponse, error) {
	event, err := s.find(ctx, eventID)
	if err != nil {
		return nil, err
	}

	id, err := snowflake.ParseString(strings.TrimSpace(lineID))
	if err != nil {
		return nil, eventdomain.ErrInvalidID
	}

	line, err := s.servedRepo.FindByID(ctx, s.db, event.AccountID, event.ID, id)
	if err != nil {
		return nil, err
	}
	if line == nil {
		return nil, eventdomain.ErrLineNotFound
	}

	if req.ServedQuantity != nil {
		if *req.ServedQuantity <= 0 {
			return nil, eventdomain.ErrInvalidQuantity
		}
		line.ServedQuantity = *req.ServedQuantity
	}
	if req.UnitCostAtEvent != nil {
		line.UnitCostAtEvent = req.UnitCostAtEvent
	}

	if line.UnitCostAtEvent != nil {
		total := line.ServedQuantity * *line.UnitCostAtEvent
		line.TotalCostAtEvent = &total
	} else {
		line.TotalCostAtEvent = nil
	}
	line.UpdatedAt = time.Now().UTC()

	if err := s.servedRepo.Update(ctx, s.db, line); err != nil {
		return nil, err
	}

	return toServedDrinkResponse(line), nil
}

func (s *Service) RemoveServedDrink(ctx context.Context, eventID, lineID string) error {
	event, err := s.find(ctx, eventID)
	if err != nil {
		return err
	}

	id, err := snowflake.ParseString(strings.TrimSpace(lineID))
	if err != nil {
		return eventdomain.ErrInvalidID
	}

	line, err := s.servedRepo.FindByID(ctx, s.db, event.AccountID, event.ID, id)
	if err != nil {
		return err
	}
	if line == nil {
		return eventdomain.ErrLineNotFound
	}

	return s.servedRepo.Delete(ctx, s.db, event.AccountID, event.ID, id)
}

func (s *Service) AddCost(ctx context.Context, eventID string, req eventdomain.AddCostRequest) (*eventdomain.CostResponse, error) {
	event, err := s.find(ctx, eventID)
	if err != nil {
		return nil, err
	}

	description := strings.TrimSpace(req.Description)
	if description == "" {
		return nil, eventdomain.ErrInvalidDescription
	}
	if req.Quantity <= 0 {
		return nil, eventdomain.ErrInvalidQuantity
	}
	if req.UnitCost < 0 {
		return nil, eventdomain.ErrInvalidUnitCost
	}

	now := time.Now().UTC()
	line := &eventdomain.AdditionalCostLine{
		ID:          s.genID.Generate(),
		AccountID:   event.AccountID,
		EventID:     event.ID,
		Description: description,
		Quantity:    req.Quantity,
		Unit:        strings.TrimSpace(req.Unit),
		UnitCost:    req.UnitCost,
		TotalCost:   req.Quantity * req.UnitCost,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.costRepo.Insert(ctx, s.db, line); err != nil {
		return nil, err
	}

	return toCostResponse(line), nil
}

func (s *Service) UpdateCost(ctx context.Context, eventID, costID string, req eventdomain.UpdateCostRequest) (*eventdomain.CostResponse, error) {
	event, err := s.find(ctx, eventID)
	if err != nil {
		return nil, err
	}

	id, err := snowflake.ParseString(strings.TrimSpace(costID))
	if err != nil {
		return nil, eventdomain.ErrInvalidID
	}

	line, err := s.costRepo.FindByID(ctx, s.db, event.AccountID, event.ID, id)
	if err != nil {
		return nil, err
	}
	if line == nil {
		return nil, eventdomain.ErrCostNotFound
	}

	if req.Description != nil {
		description := strings.TrimSpace(*req.Description)
		if description == "" {
			return nil, eventdomain.ErrInvalidDescription
		}
		line.Description = description
	}
	if req.Quantity != nil {
		if *req.Quantity <= 0 {
			return nil, eventdomain.ErrInvalidQuantity
		}
		line.Quantity = *req.Quantity
	}
	if req.Unit != nil {
		line.Unit = strings.TrimSpace(*req.Unit)
	}
	if req.UnitCost != nil {
		if *req.UnitCost < 0 {
			return nil, eventdomain.ErrInvalidUnitCost
		}
		line.UnitCost = *req.UnitCost
	}

	line.TotalCost = line.Quantity * line.UnitCost
	line.UpdatedAt = time.Now().UTC()

	if err := s.costRepo.Update(ctx, s.db, line); err != nil {
		return nil, err
	}

	return toCostResponse(line), nil
}

func (s *Service) RemoveCost(ctx context.Context, eventID, costID string) error {
	event, err := s.find(ctx, eventID)
	if err != nil {
		return err
	}

	id, err := snowflake.ParseString(strings.TrimSpace(costID))
	if err != nil {
		return eventdomain.ErrInvalidID
	}

	line, err := s.costRepo.FindByID(ctx, s.db, event.AccountID, event.ID, id)
	if err != nil {
		return err
	}
	if line == nil {
		return eventdomain.ErrCostNotFound
	}

	return s.costRepo.Delete(ctx, s.db, event.AccountID, event.ID, id)
}

func (s *Service) find(ctx context.Context, id string) (*eventdomain.Event, error) {
	accountID, ok := accountcontext.AccountIDFromContext(ctx)
	if !ok || accountID == 0 {
		return nil, eventdomain.ErrInvalidAccount
	}

	eventID, err := snowflake.ParseString(strings.TrimSpace(id))
	if err != nil {
		return nil, eventdomain.ErrInvalidID
	}

	entity, err := s.repo.FindByID(ctx, s.db, accountID, eventID)
	if err != nil {
		return nil, err
	}
	if entity == nil {
		return nil, eventdomain.ErrNotFound
	}
	return entity, nil
}

func toResponse(e *eventdomain.Event) *eventdomain.Response {
	return &eventdomain.Response{
		ID:                     e.ID,
		AccountID:              e.AccountID,
		ClientID:               e.ClientID,
		EventDate:              e.EventDate,
		Location:               e.Location,
		NumGuests:              e.NumGuests,
		DurationHours:          e.DurationHours,
		PublicRating:           e.PublicRating,
		DistanceKm:             e.DistanceKm,
		ProfitMarginPercentage: e.ProfitMarginPercentage,
		EstimatedTotalDrinks:   e.EstimatedTotalDrinks,
		TotalInvestment:        e.TotalInvestment,
		GrossProfit:            e.GrossProfit,
		Metadata:               e.Metadata,
		CreatedAt:              e.CreatedAt,
		UpdatedAt:              e.UpdatedAt,
	}
}

func toServedDrinkResponse(l *eventdomain.ServedDrinkLine) *eventdomain.ServedDrinkResponse {
	return &eventdomain.ServedDrinkResponse{
		ID:               l.ID,
		AccountID:        l.AccountID,
		EventID:          l.EventID,
		DrinkID:          l.DrinkID,
		ServedQuantity:   l.ServedQuantity,
		UnitCostAtEvent:  l.UnitCostAtEvent,
		TotalCostAtEvent: l.TotalCostAtEvent,
		CreatedAt:        l.CreatedAt,
		UpdatedAt:        l.UpdatedAt,
	}
}

func toCostResponse(l *eventdomain.AdditionalCostLine) *eventdomain.CostResponse {
	return &eventdomain.CostResponse{
		ID:          l.ID,
		AccountID:   l.AccountID,
		EventID:     l.EventID,
		Description: l.Description,
		Quantity:    l.Quantity,
		Unit:        l.Unit,
		UnitCost:    l.UnitCost,
		TotalCost:   l.TotalCost,
		CreatedAt:   l.CreatedAt,
		UpdatedAt:   l.UpdatedAt,
	}
}
