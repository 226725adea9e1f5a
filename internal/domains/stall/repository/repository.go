package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/rs/zerolog/log"

	"fairhall/config"
	"fairhall/infras/otel"
	"fairhall/internal/domains/stall/model"
	"fairhall/shared/blobstore"
	"fairhall/shared/constant"
	"fairhall/shared/timezone"
)

// Stall reads and overwrites the whole inventory as one document. Mutations
// go through Replace so a load-modify-save pass is the only write path.
type Stall interface {
	GetAll(ctx context.Context) ([]model.Stall, error)
	Replace(ctx context.Context, stalls []model.Stall) error
	Watch(ctx context.Context)
}

type repositoryImpl struct {
	store blobstore.Store
	feed  blobstore.Feed
	cfg   *config.Config
	otel  otel.Otel

	mu       sync.RWMutex
	snapshot []model.Stall
	loaded   bool
}

func New(store blobstore.Store, feed blobstore.Feed, cfg *config.Config, otel otel.Otel) Stall {
	return &repositoryImpl{
		store: store,
		feed:  feed,
		cfg:   cfg,
		otel:  otel,
	}
}

func (repo *repositoryImpl) GetAll(ctx context.Context) (stalls []model.Stall, err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".stall.GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	repo.mu.RLock()
	if repo.loaded {
		stalls = cloneStalls(repo.snapshot)
		repo.mu.RUnlock()

		return stalls, nil
	}
	repo.mu.RUnlock()

	return repo.load(ctx)
}

func (repo *repositoryImpl) Replace(ctx context.Context, stalls []model.Stall) (err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".stall.Replace")
	defer scope.End()
	defer scope.TraceIfError(err)

	value, err := json.Marshal(stalls)
	if err != nil {
		return fmt.Errorf("failed to marshal stalls: %w", err)
	}

	if err = repo.store.Save(ctx, constant.BlobKeyStalls, value); err != nil {
		return err
	}

	repo.mu.Lock()
	repo.snapshot = cloneStalls(stalls)
	repo.loaded = true
	repo.mu.Unlock()

	if err := repo.feed.Publish(ctx, constant.BlobKeyStalls); err != nil {
		log.Error().Err(err).Msg("failed to publish stall change event")
	}

	return nil
}

// Watch drops the in-memory snapshot whenever another instance overwrites
// the inventory, so the next read picks up the foreign write.
func (repo *repositoryImpl) Watch(ctx context.Context) {
	repo.feed.Subscribe(ctx, func(event blobstore.Event) {
		if event.Key != constant.BlobKeyStalls {
			return
		}

		repo.mu.Lock()
		repo.loaded = false
		repo.snapshot = nil
		repo.mu.Unlock()
	})
}

// load reads the blob, falling back to a freshly generated inventory when
// the blob is absent or malformed.
func (repo *repositoryImpl) load(ctx context.Context) ([]model.Stall, error) {
	value, err := repo.store.Load(ctx, constant.BlobKeyStalls)
	if err != nil && !errors.Is(err, blobstore.ErrNotFound) {
		return nil, err
	}

	var stalls []model.Stall
	if err == nil {
		if err := json.Unmarshal(value, &stalls); err != nil {
			log.Error().Err(err).Msg("malformed stall blob, regenerating inventory")
			stalls = nil
		}
	}

	if stalls == nil {
		stalls = repo.seed()

		if err := repo.Replace(ctx, stalls); err != nil {
			return nil, err
		}

		return cloneStalls(stalls), nil
	}

	repo.mu.Lock()
	repo.snapshot = cloneStalls(stalls)
	repo.loaded = true
	repo.mu.Unlock()

	return stalls, nil
}

func (repo *repositoryImpl) seed() []model.Stall {
	if repo.cfg.Hall.SeedDemoData {
		return model.DefaultLayout(timezone.Now())
	}

	return []model.Stall{}
}

func cloneStalls(stalls []model.Stall) []model.Stall {
	out := make([]model.Stall, len(stalls))
	copy(out, stalls)

	return out
}
