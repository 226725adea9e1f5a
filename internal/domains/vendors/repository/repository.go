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
	"fairhall/internal/domains/vendors/model"
	"fairhall/shared/blobstore"
	"fairhall/shared/constant"
	"fairhall/shared/password"
)

type Vendor interface {
	GetAll(ctx context.Context) ([]model.Vendor, error)
	Replace(ctx context.Context, vendors []model.Vendor) error
	FindByEmail(ctx context.Context, email string) (model.Vendor, bool, error)
	Watch(ctx context.Context)
}

type repositoryImpl struct {
	store blobstore.Store
	feed  blobstore.Feed
	cfg   *config.Config
	otel  otel.Otel

	mu       sync.RWMutex
	snapshot []model.Vendor
	loaded   bool
}

func New(store blobstore.Store, feed blobstore.Feed, cfg *config.Config, otel otel.Otel) Vendor {
	return &repositoryImpl{
		store: store,
		feed:  feed,
		cfg:   cfg,
		otel:  otel,
	}
}

func (repo *repositoryImpl) GetAll(ctx context.Context) (vendors []model.Vendor, err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".vendor.GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	repo.mu.RLock()
	if repo.loaded {
		vendors = cloneVendors(repo.snapshot)
		repo.mu.RUnlock()

		return vendors, nil
	}
	repo.mu.RUnlock()

	return repo.load(ctx)
}

func (repo *repositoryImpl) Replace(ctx context.Context, vendors []model.Vendor) (err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".vendor.Replace")
	defer scope.End()
	defer scope.TraceIfError(err)

	value, err := json.Marshal(vendors)
	if err != nil {
		return fmt.Errorf("failed to marshal vendors: %w", err)
	}

	if err = repo.store.Save(ctx, constant.BlobKeyVendor, value); err != nil {
		return err
	}

	repo.mu.Lock()
	repo.snapshot = cloneVendors(vendors)
	repo.loaded = true
	repo.mu.Unlock()

	if err := repo.feed.Publish(ctx, constant.BlobKeyVendor); err != nil {
		log.Error().Err(err).Msg("failed to publish vendor change event")
	}

	return nil
}

func (repo *repositoryImpl) FindByEmail(ctx context.Context, email string) (model.Vendor, bool, error) {
	vendors, err := repo.GetAll(ctx)
	if err != nil {
		return model.Vendor{}, false, err
	}

	for _, vendor := range vendors {
		if strings.EqualFold(vendor.Email, email) {
			return vendor, true, nil
		}
	}

	return model.Vendor{}, false, nil
}

func (repo *repositoryImpl) Watch(ctx context.Context) {
	repo.feed.Subscribe(ctx, func(event blobstore.Event) {
		if event.Key != constant.BlobKeyVendor {
			return
		}

		repo.mu.Lock()
		repo.loaded = false
		repo.snapshot = nil
		repo.mu.Unlock()
	})
}

func (repo *repositoryImpl) load(ctx context.Context) ([]model.Vendor, error) {
	value, err := repo.store.Load(ctx, constant.BlobKeyVendor)
	if err != nil && !errors.Is(err, blobstore.ErrNotFound) {
		return nil, err
	}

	var vendors []model.Vendor
	if err == nil {
		if err := json.Unmarshal(value, &vendors); err != nil {
			log.Error().Err(err).Msg("malformed vendor blob, reseeding registry")
			vendors = nil
		}
	}

	if vendors == nil {
		vendors = repo.seed()

		if err := repo.Replace(ctx, vendors); err != nil {
			return nil, err
		}

		return cloneVendors(vendors), nil
	}

	repo.mu.Lock()
	repo.snapshot = cloneVendors(vendors)
	repo.loaded = true
	repo.mu.Unlock()

	return vendors, nil
}

func (repo *repositoryImpl) seed() []model.Vendor {
	if !repo.cfg.Hall.SeedDemoData {
		return []model.Vendor{}
	}

	hash, err := password.Hash("vendor123")
	if err != nil {
		log.Error().Err(err).Msg("failed to hash demo vendor password")

		return []model.Vendor{}
	}

	return []model.Vendor{
		{
			ID:           uuid.NewString(),
			BusinessName: "Demo Books",
			Email:        "vendor@bookfair.example",
			Password:     hash,
		},
	}
}

func cloneVendors(vendors []model.Vendor) []model.Vendor {
	out := make([]model.Vendor, len(vendors))
	copy(out, vendors)

	return out
}
