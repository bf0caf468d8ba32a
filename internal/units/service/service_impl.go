package service

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/fsnotify/fsnotify"
	"github.com/smallbiznis/barflow/internal/accountcontext"
	"github.com/smallbiznis/barflow/internal/config"
	unitsdomain "github.com/smallbiznis/barflow/internal/units/domain"
	"github.com/spf13/viper"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Params struct {
	fx.In

	DB    *gorm.DB
	Log   *zap.Logger
	GenID *snowflake.Node
	Repo  unitsdomain.Repository
	Cfg   config.Config
}

type Service struct {
	db     *gorm.DB
	log    *zap.Logger
	genID  *snowflake.Node
	repo   unitsdomain.Repository
	strict bool

	mu        sync.RWMutex
	fileRules map[string]float64
}

func New(p Params) unitsdomain.Service {
	s := &Service{
		db:        p.DB,
		log:       p.Log.Named("units.service"),
		genID:     p.GenID,
		repo:      p.Repo,
		strict:    p.Cfg.UnitsStrict,
		fileRules: map[string]float64{},
	}

	if path := strings.TrimSpace(p.Cfg.UnitsRulesFile); path != "" {
		s.watchRulesFile(path)
	}

	return s
}

func (s *Service) Convert(ctx context.Context, qty float64, from, to string) (float64, error) {
	from = normalizeUnit(from)
	to = normalizeUnit(to)
	if from == "" || to == "" {
		return 0, unitsdomain.ErrInvalidUnit
	}
	if from == to {
		return qty, nil
	}

	if factor, ok := s.fileFactor(from, to); ok {
		return qty * factor, nil
	}
	if factor, ok := s.fileFactor(to, from); ok && factor != 0 {
		return qty / factor, nil
	}

	accountID, _ := accountcontext.AccountIDFromContext(ctx)

	rule, err := s.repo.FindRule(ctx, s.db, accountID, from, to)
	if err != nil {
		return 0, err
	}
	if rule != nil {
		return qty * rule.Factor, nil
	}

	reverse, err := s.repo.FindRule(ctx, s.db, accountID, to, from)
	if err != nil {
		return 0, err
	}
	if reverse != nil && reverse.Factor != 0 {
		return qty / reverse.Factor, nil
	}

	if s.strict {
		return 0, unitsdomain.ErrNoConversionRule
	}

	// Unknown pair: assume the quantities are already compatible.
	s.log.Debug("conversion fallback", zap.String("from", from), zap.String("to", to))
	return qty, nil
}

func (s *Service) ListRules(ctx context.Context) ([]unitsdomain.Response, error) {
	accountID, ok := accountcontext.AccountIDFromContext(ctx)
	if !ok || accountID == 0 {
		return nil, unitsdomain.ErrInvalidAccount
	}

	items, err := s.repo.List(ctx, s.db, accountID)
	if err != nil {
		return nil, err
	}

	resp := make([]unitsdomain.Response, 0, len(items))
	for i := range items {
		resp = append(resp, *toResponse(&items[i]))
	}
	return resp, nil
}

func (s *Service) CreateRule(ctx context.Context, req unitsdomain.CreateRequest) (*unitsdomain.Response, error) {
	accountID, ok := accountcontext.AccountIDFromContext(ctx)
	if !ok || accountID == 0 {
		return nil, unitsdomain.ErrInvalidAccount
	}

	from := normalizeUnit(req.FromUnit)
	to := normalizeUnit(req.ToUnit)
	if from == "" || to == "" {
		return nil, unitsdomain.ErrInvalidUnit
	}
	if req.Factor <= 0 {
		return nil, unitsdomain.ErrInvalidFactor
	}

	now := time.Now().UTC()
	entity := &unitsdomain.ConversionRule{
		ID:        s.genID.Generate(),
		AccountID: accountID,
		FromUnit:  from,
		ToUnit:    to,
		Factor:    req.Factor,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.repo.Insert(ctx, s.db, entity); err != nil {
		return nil, err
	}

	return toResponse(entity), nil
}

func (s *Service) fileFactor(from, to string) (float64, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	factor, ok := s.fileRules[from+"|"+to]
	return factor, ok
}

type fileRule struct {
	From   string  `mapstructure:"from"`
	To     string  `mapstructure:"to"`
	Factor float64 `mapstructure:"factor"`
}

func (s *Service) watchRulesFile(path string) {
	v := viper.New()
	v.SetConfigFile(path)

	if err := v.ReadInConfig(); err != nil {
		s.log.Warn("units rules file unreadable", zap.String("path", path), zap.Error(err))
		return
	}
	s.applyFileRules(v)

	v.OnConfigChange(func(_ fsnotify.Event) {
		s.applyFileRules(v)
	})
	v.WatchConfig()
}

func (s *Service) applyFileRules(v *viper.Viper) {
	var rules []fileRule
	if err := v.UnmarshalKey("rules", &rules); err != nil {
		s.log.Warn("units rules file invalid", zap.Error(err))
		return
	}

	next := make(map[string]float64, len(rules))
	for _, rule := range rules {
		from := normalizeUnit(rule.From)
		to := normalizeUnit(rule.To)
		if from == "" || to == "" || rule.Factor <= 0 {
			continue
		}
		next[from+"|"+to] = rule.Factor
	}

	s.mu.Lock()
	s.fileRules = next
	s.mu.Unlock()

	s.log.Info("units rules reloaded", zap.Int("count", len(next)))
}

func toResponse(rule *unitsdomain.ConversionRule) *unitsdomain.Response {
	return &unitsdomain.Response{
		ID:        rule.ID,
		AccountID: rule.AccountID,
		FromUnit:  rule.FromUnit,
		ToUnit:    rule.ToUnit,
		Factor:    rule.Factor,
		CreatedAt: rule.CreatedAt,
		UpdatedAt: rule.UpdatedAt,
	}
}

func normalizeUnit(unit string) string {
	return strings.ToLower(strings.TrimSpace(unit))
}
