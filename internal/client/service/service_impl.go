package service

import (
	"context"
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/smallbiznis/barflow/internal/accountcontext"
	clientdomain "github.com/smallbiznis/barflow/internal/client/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Params struct {
	fx.In

	DB    *gorm.DB
	Log   *zap.Logger
	GenID *snowflake.Node
	Repo  clientdomain.Repository
}

type Service struct {
	db    *gorm.DB
	log   *zap.Logger
	genID *snowflake.Node
	repo  clientdomain.Repository
}

func New(p Params) clientdomain.Service {
	return &Service{
		db:    p.DB,
		log:   p.Log.Named("client.service"),
		genID: p.GenID,
		repo:  p.Repo,
	}
}

func (s *Service) Create(ctx context.Context, req clientdomain.CreateRequest) (*clientdomain.Response, error) {
	accountID, ok := accountcontext.AccountIDFromContext(ctx)
	if !ok || accountID == 0 {
		return nil, clientdomain.ErrInvalidAccount
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, clientdomain.ErrInvalidName
	}

	now := time.Now().UTC()
	entity := &clientdomain.Client{
		ID:        s.genID.Generate(),
		AccountID: accountID,
		Name:      name,
		Email:     strings.TrimSpace(req.Email),
		Phone:     strings.TrimSpace(req.Phone),
		Address:   strings.TrimSpace(req.Address),
		City:      strings.TrimSpace(req.City),
		TaxID:     strings.TrimSpace(req.TaxID),
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.repo.Insert(ctx, s.db, entity); err != nil {
		return nil, err
	}

	return toResponse(entity), nil
}

func (s *Service) List(ctx context.Context) ([]clientdomain.Response, error) {
	accountID, ok := accountcontext.AccountIDFromContext(ctx)
	if !ok || accountID == 0 {
		return nil, clientdomain.ErrInvalidAccount
	}

	items, err := s.repo.List(ctx, s.db, accountID)
	if err != nil {
		return nil, err
	}

	resp := make([]clientdomain.Response, 0, len(items))
	for i := range items {
		resp = append(resp, *toResponse(&items[i]))
	}
	return resp, nil
}

func (s *Service) Get(ctx context.Context, id string) (*clientdomain.Response, error) {
	entity, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	return toResponse(entity), nil
}

func (s *Service) Update(ctx context.Context, id string, req clientdomain.UpdateRequest) (*clientdomain.Response, error) {
	entity, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, clientdomain.ErrInvalidName
		}
		entity.Name = name
	}
	if req.Email != nil {
		entity.Email = strings.TrimSpace(*req.Email)
	}
	if req.Phone != nil {
		entity.Phone = strings.TrimSpace(*req.Phone)
	}
	if req.Address != nil {
		entity.Address = strings.TrimSpace(*req.Address)
	}
	if req.City != nil {
		entity.City = strings.TrimSpace(*req.City)
	}
	if req.TaxID != nil {
		entity.TaxID = strings.TrimSpace(*req.TaxID)
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

func (s *Service) find(ctx context.Context, id string) (*clientdomain.Client, error) {
	accountID, ok := accountcontext.AccountIDFromContext(ctx)
	if !ok || accountID == 0 {
		return nil, clientdomain.ErrInvalidAccount
	}

	clientID, err := snowflake.ParseString(strings.TrimSpace(id))
	if err != nil {
		return nil, clientdomain.ErrInvalidID
	}

	entity, err := s.repo.FindByID(ctx, s.db, accountID, clientID)
	if err != nil {
		return nil, err
	}
	if entity == nil {
		return nil, clientdomain.ErrNotFound
	}
	return entity, nil
}

func toResponse(c *clientdomain.Client) *clientdomain.Response {
	return &clientdomain.Response{
		ID:        c.ID,
		AccountID: c.AccountID,
		Name:      c.Name,
		Email:     c.Email,
		Phone:     c.Phone,
		Address:   c.Address,
		City:      c.City,
		TaxID:     c.TaxID,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}
