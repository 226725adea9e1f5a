package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/rs/zerolog/log"

	"fairhall/infras/otel"
	"fairhall/shared/blobstore"
	"fairhall/shared/constant"
)

// FloorPlan persists the hall map as a single data-URI string. An absent
// blob is a normal state: the hall simply has no map yet.
type FloorPlan interface {
	Get(ctx context.Context) (string, error)
	Set(ctx context.Context, dataURI string) error
	Clear(ctx context.Context) error
	Watch(ctx context.Context)
}

type repositoryImpl struct {
	store blobstore.Store
	feed  blobstore.Feed
	otel  otel.Otel

	mu       sync.RWMutex
	snapshot string
	loaded   bool
}

func New(store blobstore.Store, feed blobstore.Feed, otel otel.Otel) FloorPlan {
	return &repositoryImpl{
		store: store,
		feed:  feed,
		otel:  otel,
	}
}

func (repo *repositoryImpl) Get(ctx context.Context) (dataURI string, err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".floorplan.Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	repo.mu.RLock()
	if repo.loaded {
		dataURI = repo.snapshot
		repo.mu.RUnlock()

		return dataURI, nil
	}
	repo.mu.RUnlock()

	value, err := repo.store.Load(ctx, constant.BlobKeyMap)
	if err != nil {
		if errors.Is(err, blobstore.ErrNotFound) {
			repo.remember(constant.Empty)

			return constant.Empty, nil
		}

		return constant.Empty, err
	}

	if err := json.Unmarshal(value, &dataURI); err != nil {
		log.Error().Err(err).Msg("malformed floor plan blob, treating as absent")

		return constant.Empty, nil
	}

	repo.remember(dataURI)

	return dataURI, nil
}

func (repo *repositoryImpl) Set(ctx context.Context, dataURI string) (err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".floorplan.Set")
	defer scope.End()
	defer scope.TraceIfError(err)

	value, err := json.Marshal(dataURI)
	if err != nil {
		return fmt.Errorf("failed to marshal floor plan: %w", err)
	}

	if err = repo.store.Save(ctx, constant.BlobKeyMap, value); err != nil {
		return err
	}

	repo.remember(dataURI)

	if err := repo.feed.Publish(ctx, constant.BlobKeyMap); err != nil {
		log.Error().Err(err).Msg("failed to publish floor plan change event")
	}

	return nil
}

func (repo *repositoryImpl) Clear(ctx context.Context) (err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".floorplan.Clear")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = repo.store.Delete(ctx, constant.BlobKeyMap); err != nil {
		return err
	}

	repo.remember(constant.Empty)

	if err := repo.feed.Publish(ctx, constant.BlobKeyMap); err != nil {
		log.Error().Err(err).Msg("failed to publish floor plan change event")
	}

	return nil
}

func (repo *repositoryImpl) Watch(ctx context.Context) {
	repo.feed.Subscribe(ctx, func(event blobstore.Event) {
		if event.Key != constant.BlobKeyMap {
			return
		}

		repo.mu.Lock()
		repo.loaded = false
		repo.snapshot = constant.Empty
		repo.mu.Unlock()
	})
}

func (repo *repositoryImpl) remember(dataURI string) {
	repo.mu.Lock()
	repo.snapshot = dataURI
	repo.loaded = true
	repo.mu.Unlock()
}
