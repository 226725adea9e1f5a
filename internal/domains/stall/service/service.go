package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"fairhall/config"
	"fairhall/infras/otel"
	"fairhall/internal/domains/stall/model"
	"fairhall/internal/domains/stall/model/dto"
	"fairhall/internal/domains/stall/repository"
	"fairhall/shared"
	"fairhall/shared/cache"
	"fairhall/shared/constant"
	"fairhall/shared/failure"
	"fairhall/shared/timezone"
)

const (
	cacheGetAllStalls = "stalls:list"
	cacheStallStats   = "stalls:stats"
)

type Stall interface {
	GetAll(ctx context.Context) (dto.GetStallsResponse, error)
	Stats(ctx context.Context) (dto.StatsResponse, error)
	Request(ctx context.Context, req dto.RequestStallsRequest) error
	Cancel(ctx context.Context, stallID string) error
	Approve(ctx context.Context, stallID string) error
	Reject(ctx context.Context, stallID string) error
	Generate(ctx context.Context, req dto.GenerateStallsRequest) error
	Delete(ctx context.Context, stallID string) error
}

type serviceImpl struct {
	repo  repository.Stall
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func New(repo repository.Stall, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Stall {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

func (s *serviceImpl) GetAll(ctx context.Context) (res dto.GetStallsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".stall.GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetAllStalls)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		return res, nil
	}

	stalls, err := s.repo.GetAll(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to get stalls")

		return res, fmt.Errorf("failed to get stalls: %w", err)
	}

	res.FromModels(stalls)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save stalls to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Stats(ctx context.Context) (res dto.StatsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".stall.Stats")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheStallStats)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		return res, nil
	}

	stalls, err := s.repo.GetAll(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to get stalls for stats")

		return res, fmt.Errorf("failed to get stalls: %w", err)
	}

	res.FromStats(model.CountStats(stalls))

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save stall stats to cache")
		}
	}()

	return res, nil
}

// Request places a pending booking on each selected stall in one
// load-modify-save pass. The selection applies toggle semantics, so a
// duplicated id deselects itself and picks beyond the limit are dropped.
func (s *serviceImpl) Request(ctx context.Context, req dto.RequestStallsRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".stall.Request")
	defer scope.End()
	defer scope.TraceIfError(err)

	businessName, _ := ctx.Value(constant.ContextKeyBusinessName).(string)
	email, _ := ctx.Value(constant.ContextKeyUserEmail).(string)

	if businessName == constant.Empty {
		return failure.BadRequestFromString("business name is required to request a stall")
	}

	selection := model.NewSelection(s.cfg.Hall.SelectionLimit)
	for _, id := range req.StallIDs {
		selection.Toggle(id)
	}

	if selection.Len() == 0 {
		return failure.BadRequestFromString("no stalls selected")
	}

	stalls, err := s.repo.GetAll(ctx)
	if err != nil {
		return fmt.Errorf("failed to get stalls: %w", err)
	}

	now := timezone.Now()

	for _, id := range selection.IDs() {
		idx := indexOf(stalls, id)
		if idx < 0 {
			return failure.NotFound("stall not found")
		}

		if !stalls[idx].Request(businessName, email, now) {
			return failure.Conflict(fmt.Sprintf("stall %s is no longer available", id))
		}
	}

	if err = s.repo.Replace(ctx, stalls); err != nil {
		return err
	}

	s.invalidate(ctx)

	return nil
}

// Cancel releases the caller's stall. A mismatched or missing identity
// leaves the stall untouched.
func (s *serviceImpl) Cancel(ctx context.Context, stallID string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".stall.Cancel")
	defer scope.End()
	defer scope.TraceIfError(err)

	businessName, _ := ctx.Value(constant.ContextKeyBusinessName).(string)

	stalls, err := s.repo.GetAll(ctx)
	if err != nil {
		return fmt.Errorf("failed to get stalls: %w", err)
	}

	idx := indexOf(stalls, stallID)
	if idx < 0 {
		return failure.NotFound("stall not found")
	}

	if !stalls[idx].Cancel(businessName) {
		return nil
	}

	if err = s.repo.Replace(ctx, stalls); err != nil {
		return err
	}

	s.invalidate(ctx)

	return nil
}

func (s *serviceImpl) Approve(ctx context.Context, stallID string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".stall.Approve")
	defer scope.End()
	defer scope.TraceIfError(err)

	return s.adjudicate(ctx, stallID, func(stall *model.Stall) bool {
		return stall.Approve(timezone.Now())
	})
}

func (s *serviceImpl) Reject(ctx context.Context, stallID string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".stall.Reject")
	defer scope.End()
	defer scope.TraceIfError(err)

	return s.adjudicate(ctx, stallID, func(stall *model.Stall) bool {
		return stall.Reject()
	})
}

// adjudicate applies an admin decision to one stall. A guard that does not
// fire is a safe no-op, not an error.
func (s *serviceImpl) adjudicate(ctx context.Context, stallID string, decide func(*model.Stall) bool) error {
	stalls, err := s.repo.GetAll(ctx)
	if err != nil {
		return fmt.Errorf("failed to get stalls: %w", err)
	}

	idx := indexOf(stalls, stallID)
	if idx < 0 {
		return failure.NotFound("stall not found")
	}

	if !decide(&stalls[idx]) {
		return nil
	}

	if err = s.repo.Replace(ctx, stalls); err != nil {
		return err
	}

	s.invalidate(ctx)

	return nil
}

// Generate replaces the whole inventory. Existing reservations block the
// overwrite unless the request confirms the discard.
func (s *serviceImpl) Generate(ctx context.Context, req dto.GenerateStallsRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".stall.Generate")
	defer scope.End()
	defer scope.TraceIfError(err)

	if req.Small+req.Medium+req.Large == 0 {
		return failure.BadRequestFromString("at least one stall is required")
	}

	stalls, err := s.repo.GetAll(ctx)
	if err != nil {
		return fmt.Errorf("failed to get stalls: %w", err)
	}

	stats := model.CountStats(stalls)
	if stats.Reserved+stats.Pending > 0 && !req.Confirm {
		return failure.ConfirmationRequired
	}

	if err = s.repo.Replace(ctx, model.GenerateFromConfig(req.ToConfig())); err != nil {
		return err
	}

	s.invalidate(ctx)

	return nil
}

func (s *serviceImpl) Delete(ctx context.Context, stallID string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".stall.Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	stalls, err := s.repo.GetAll(ctx)
	if err != nil {
		return fmt.Errorf("failed to get stalls: %w", err)
	}

	idx := indexOf(stalls, stallID)
	if idx < 0 {
		return failure.NotFound("stall not found")
	}

	stalls = append(stalls[:idx], stalls[idx+1:]...)

	if err = s.repo.Replace(ctx, stalls); err != nil {
		return err
	}

	s.invalidate(ctx)

	return nil
}

func (s *serviceImpl) invalidate(ctx context.Context) {
	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllStalls)
		shared.InvalidateCaches(c, s.cache, cacheStallStats)
	}()
}

func indexOf(stalls []model.Stall, id string) int {
	for i := range stalls {
		if stalls[i].ID == id {
			return i
		}
	}

	return -1
}
