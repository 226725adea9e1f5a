package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"fairhall/config"
	"fairhall/infras/otel"
	"fairhall/internal/domains/directory/model"
	"fairhall/shared/blobstore"
	"fairhall/shared/constant"
	"fairhall/shared/password"
)

type Admin interface {
	GetAll(ctx context.Context) ([]model.Admin, error)
	Replace(ctx context.Context, admins []model.Admin) error
	FindByEmail(ctx context.Context, email string) (model.Admin, bool, error)
	Watch(ctx context.Context)
}

type repositoryImpl struct {
	store blobstore.Store
	feed  blobstore.Feed
	cfg   *config.Config
	otel  otel.Otel

	mu       sync.RWMutex
	snapshot []model.Admin
	loaded   bool
}

func New(store blobstore.Store, feed blobstore.Feed, cfg *config.Config, otel otel.Otel) Admin {
	return &repositoryImpl{
		store: store,
		feed:  feed,
		cfg:   cfg,
		otel:  otel,
	}
}

func (repo *repositoryImpl) GetAll(ctx context.Context) (admins []model.Admin, err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".admin.GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	repo.mu.RLock()
	if repo.loaded {
		admins = cloneAdmins(repo.snapshot)
		repo.mu.RUnlock()

		return admins, nil
	}
	repo.mu.RUnlock()

	return repo.load(ctx)
}

func (repo *repositoryImpl) Replace(ctx context.Context, admins []model.Admin) (err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".admin.Replace")
	defer scope.End()
	defer scope.TraceIfError(err)

	value, err := json.Marshal(admins)
	if err != nil {
		return fmt.Errorf("failed to marshal admins: %w", err)
	}

	if err = repo.store.Save(ctx, constant.BlobKeyAdmins, value); err != nil {
		return err
	}

	repo.mu.Lock()
	repo.snapshot = cloneAdmins(admins)
	repo.loaded = true
	repo.mu.Unlock()

	if err := repo.feed.Publish(ctx, constant.BlobKeyAdmins); err != nil {
		log.Error().Err(err).Msg("failed to publish admin change event")
	}

	return nil
}

func (repo *repositoryImpl) FindByEmail(ctx context.Context, email string) (model.Admin, bool, error) {
	admins, err := repo.GetAll(ctx)
	if err != nil {
		return model.Admin{}, false, err
	}

	for _, admin := range admins {
		if strings.EqualFold(admin.Email, email) {
			return admin, true, nil
		}
	}

	return model.Admin{}, false, nil
}

func (repo *repositoryImpl) Watch(ctx context.Context) {
	repo.feed.Subscribe(ctx, func(event blobstore.Event) {
		if event.Key != constant.BlobKeyAdmins {
			return
		}

		repo.mu.Lock()
		repo.loaded = false
		repo.snapshot = nil
		repo.mu.Unlock()
	})
}

func (repo *repositoryImpl) load(ctx context.Context) ([]model.Admin, error) {
	value, err := repo.store.Load(ctx, constant.BlobKeyAdmins)
	if err != nil && !errors.Is(err, blobstore.ErrNotFound) {
		return nil, err
	}

	var admins []model.Admin
	if err == nil {
		if err := json.Unmarshal(value, &admins); err != nil {
			log.Error().Err(err).Msg("malformed admin blob, reseeding directory")
			admins = nil
		}
	}

	if admins == nil {
		admins = repo.seed()

		if err := repo.Replace(ctx, admins); err != nil {
			return nil, err
		}

		return cloneAdmins(admins), nil
	}

	repo.mu.Lock()
	repo.snapshot = cloneAdmins(admins)
	repo.loaded = true
	repo.mu.Unlock()

	return admins, nil
}

// seed creates the two demo staff accounts the portals ship with.
func (repo *repositoryImpl) seed() []model.Admin {
	if !repo.cfg.Hall.SeedDemoData {
		return []model.Admin{}
	}

	demo := []struct {
		name  string
		email string
		pass  string
	}{
		{"Fair Admin", "admin@bookfair.example", "admin123"},
		{"Hall Manager", "manager@bookfair.example", "manager123"},
	}

	admins := make([]model.Admin, 0, len(demo))
	for _, d := range demo {
		hash, err := password.Hash(d.pass)
		if err != nil {
			log.Error().Err(err).Str("email", d.email).Msg("failed to hash demo admin password")

			continue
		}

		admins = append(admins, model.Admin{
			ID:       uuid.NewString(),
			Name:     d.name,
			Email:    d.email,
			Password: hash,
			Role:     constant.RoleAdmin,
		})
	}

	return admins
}

func cloneAdmins(admins []model.Admin) []model.Admin {
	out := make([]model.Admin, len(admins))
	copy(out, admins)

	return out
}
