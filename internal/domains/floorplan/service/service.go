package service

import (
	"context"
	"fmt"
	"math"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"fairhall/config"
	"fairhall/infras/otel"
	"fairhall/infras/s3"
	"fairhall/internal/domains/floorplan/model"
	"fairhall/internal/domains/floorplan/model/dto"
	"fairhall/internal/domains/floorplan/repository"
	stallModel "fairhall/internal/domains/stall/model"
	stallDto "fairhall/internal/domains/stall/model/dto"
	stallRepo "fairhall/internal/domains/stall/repository"
	"fairhall/shared/base64"
	"fairhall/shared/constant"
	"fairhall/shared/failure"
)

type FloorPlan interface {
	Get(ctx context.Context) (dto.FloorPlanResponse, error)
	Upload(ctx context.Context, req dto.UploadFloorPlanRequest) (dto.UploadFloorPlanResponse, error)
	Clear(ctx context.Context, req dto.ClearFloorPlanRequest) error
	SetPosition(ctx context.Context, req dto.PositionRequest) error
	Locate(ctx context.Context, req dto.LocateRequest) (dto.LocateResponse, error)
}

type serviceImpl struct {
	repo   repository.FloorPlan
	stalls stallRepo.Stall
	cfg    *config.Config
	otel   otel.Otel
	s3     s3.S3
}

func New(repo repository.FloorPlan, stalls stallRepo.Stall, cfg *config.Config, otel otel.Otel, s3 s3.S3) FloorPlan {
	return &serviceImpl{
		repo:   repo,
		stalls: stalls,
		cfg:    cfg,
		otel:   otel,
		s3:     s3,
	}
}

func (s *serviceImpl) Get(ctx context.Context) (res dto.FloorPlanResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".floorplan.Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	image, err := s.repo.Get(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to get floor plan")

		return res, fmt.Errorf("failed to get floor plan: %w", err)
	}

	res.Image = image

	return res, nil
}

// Upload stores the data URI as the hall map and, when S3 is enabled,
// mirrors the decoded bytes to the bucket.
func (s *serviceImpl) Upload(ctx context.Context, req dto.UploadFloorPlanRequest) (res dto.UploadFloorPlanResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".floorplan.Upload")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = s.repo.Set(ctx, req.Image); err != nil {
		return res, err
	}

	if !s.cfg.External.S3.Enable {
		return res, nil
	}

	data, err := base64.DecodePayload(req.Image)
	if err != nil {
		log.Error().Err(err).Msg("failed to decode floor plan payload for mirroring")

		return res, failure.BadRequestFromString("floor plan image is not a valid data URI")
	}

	contentType := base64.GetContentType(req.Image)
	fileName := uuid.NewString() + extensionFor(contentType)

	url, err := s.s3.UploadFileBytes(ctx, s.cfg.External.S3.BucketName, model.ObjectDirectory, fileName, contentType, data)
	if err != nil {
		log.Error().Err(err).Msg("failed to mirror floor plan to S3")

		return res, fmt.Errorf("failed to mirror floor plan: %w", err)
	}

	res.ImageURL = url

	return res, nil
}

// Clear removes the map and detaches every stall from it in one pass.
func (s *serviceImpl) Clear(ctx context.Context, req dto.ClearFloorPlanRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".floorplan.Clear")
	defer scope.End()
	defer scope.TraceIfError(err)

	if !req.Confirm {
		return failure.Conflict("stall positions would be discarded, confirmation required")
	}

	if err = s.repo.Clear(ctx); err != nil {
		return err
	}

	stalls, err := s.stalls.GetAll(ctx)
	if err != nil {
		return fmt.Errorf("failed to get stalls: %w", err)
	}

	changed := false
	for i := range stalls {
		if stalls[i].MapPosition != nil {
			stalls[i].MapPosition = nil
			changed = true
		}
	}

	if !changed {
		return nil
	}

	return s.stalls.Replace(ctx, stalls)
}

func (s *serviceImpl) SetPosition(ctx context.Context, req dto.PositionRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".floorplan.SetPosition")
	defer scope.End()
	defer scope.TraceIfError(err)

	stalls, err := s.stalls.GetAll(ctx)
	if err != nil {
		return fmt.Errorf("failed to get stalls: %w", err)
	}

	idx := -1
	for i := range stalls {
		if stalls[i].ID == req.StallID {
			idx = i

			break
		}
	}

	if idx < 0 {
		return failure.NotFound("stall not found")
	}

	stalls[idx].MapPosition = &stallModel.MapPosition{X: req.X, Y: req.Y}

	return s.stalls.Replace(ctx, stalls)
}

// Locate hit-tests a click against the positioned stalls. The nearest stall
// within tolerance wins; reserved and pending stalls never match.
func (s *serviceImpl) Locate(ctx context.Context, req dto.LocateRequest) (res dto.LocateResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".floorplan.Locate")
	defer scope.End()
	defer scope.TraceIfError(err)

	stalls, err := s.stalls.GetAll(ctx)
	if err != nil {
		return res, fmt.Errorf("failed to get stalls: %w", err)
	}

	tolerance := s.cfg.Hall.MapHitTolerance
	best := -1
	bestDistance := math.MaxFloat64

	for i := range stalls {
		if stalls[i].MapPosition == nil || stalls[i].Status != stallModel.StatusAvailable {
			continue
		}

		dx := stalls[i].MapPosition.X - req.X
		dy := stalls[i].MapPosition.Y - req.Y

		distance := math.Sqrt(dx*dx + dy*dy)
		if distance <= tolerance && distance < bestDistance {
			best = i
			bestDistance = distance
		}
	}

	if best < 0 {
		return res, nil
	}

	res.Found = true
	res.Stall = new(stallDto.StallResponse)
	res.Stall.FromModel(stalls[best])

	return res, nil
}

func extensionFor(contentType string) string {
	_, subtype, found := strings.Cut(contentType, "/")
	if !found || subtype == constant.Empty {
		return constant.Empty
	}

	if subtype == "svg+xml" {
		return ".svg"
	}

	return "." + subtype
}
