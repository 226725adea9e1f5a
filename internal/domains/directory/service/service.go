package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"fairhall/config"
	"fairhall/infras/otel"
	"fairhall/internal/domains/directory/model"
	"fairhall/internal/domains/directory/model/dto"
	"fairhall/internal/domains/directory/repository"
	"fairhall/shared/constant"
	"fairhall/shared/failure"
	"fairhall/shared/password"
)

type Admin interface {
	GetAll(ctx context.Context) (dto.GetAdminsResponse, error)
	Create(ctx context.Context, req dto.CreateAdminRequest) error
	Update(ctx context.Context, req dto.UpdateAdminRequest, id string) error
	Delete(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo repository.Admin
	cfg  *config.Config
	otel otel.Otel
}

func New(repo repository.Admin, cfg *config.Config, otel otel.Otel) Admin {
	return &serviceImpl{
		repo: repo,
		cfg:  cfg,
		otel: otel,
	}
}

func (s *serviceImpl) GetAll(ctx context.Context) (res dto.GetAdminsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".admin.GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	admins, err := s.repo.GetAll(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to get admins")

		return res, fmt.Errorf("failed to get admins: %w", err)
	}

	res.FromModels(admins)

	return res, nil
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateAdminRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".admin.Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	admins, err := s.repo.GetAll(ctx)
	if err != nil {
		return fmt.Errorf("failed to get admins: %w", err)
	}

	if emailTaken(admins, req.Email, constant.Empty) {
		return failure.EmailRegistered
	}

	hash, err := password.Hash(req.Password)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	admins = append(admins, model.Admin{
		ID:       uuid.NewString(),
		Name:     req.Name,
		Email:    req.Email,
		Password: hash,
		Role:     constant.RoleAdmin,
	})

	return s.repo.Replace(ctx, admins)
}

// Update edits name and email, and the password only when one is supplied.
// Email uniqueness is checked against every other account.
func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateAdminRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".admin.Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	admins, err := s.repo.GetAll(ctx)
	if err != nil {
		return fmt.Errorf("failed to get admins: %w", err)
	}

	idx := indexOf(admins, id)
	if idx < 0 {
		return failure.NotFound("admin not found")
	}

	if emailTaken(admins, req.Email, id) {
		return failure.EmailRegistered
	}

	admins[idx].Name = req.Name
	admins[idx].Email = req.Email

	if req.Password != constant.Empty {
		hash, err := password.Hash(req.Password)
		if err != nil {
			return fmt.Errorf("failed to hash password: %w", err)
		}

		admins[idx].Password = hash
	}

	return s.repo.Replace(ctx, admins)
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".admin.Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	admins, err := s.repo.GetAll(ctx)
	if err != nil {
		return fmt.Errorf("failed to get admins: %w", err)
	}

	idx := indexOf(admins, id)
	if idx < 0 {
		return failure.NotFound("admin not found")
	}

	admins = append(admins[:idx], admins[idx+1:]...)

	return s.repo.Replace(ctx, admins)
}

func emailTaken(admins []model.Admin, email, excludeID string) bool {
	for _, admin := range admins {
		if admin.ID == excludeID {
			continue
		}

		if strings.EqualFold(admin.Email, email) {
			return true
		}
	}

	return false
}

func indexOf(admins []model.Admin, id string) int {
	for i := range admins {
		if admins[i].ID == id {
			return i
		}
	}

	return -1
}
