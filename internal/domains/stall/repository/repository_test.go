package repository_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"fairhall/config"
	"fairhall/infras/otel/mocks"
	"fairhall/internal/domains/stall/model"
	"fairhall/internal/domains/stall/repository"
	"fairhall/shared/blobstore"
	blobstoreMocks "fairhall/shared/blobstore/mocks"
	"fairhall/shared/constant"
)

func newRepository(t *testing.T, seed bool) (repository.Stall, blobstore.Store, *blobstoreMocks.MockFeed) {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	store := blobstore.NewMemory()
	mockFeed := blobstoreMocks.NewMockFeed(ctrl)

	cfg := &config.Config{}
	cfg.Hall.SeedDemoData = seed

	return repository.New(store, mockFeed, cfg, mocks.NewOtel()), store, mockFeed
}

func persistedStalls(t *testing.T, store blobstore.Store) []model.Stall {
	t.Helper()

	value, err := store.Load(context.Background(), constant.BlobKeyStalls)
	assert.NoError(t, err)

	var stalls []model.Stall
	assert.NoError(t, json.Unmarshal(value, &stalls))

	return stalls
}

func TestGetAll_MissingBlobSeedsDefaultLayout(t *testing.T) {
	repo, store, mockFeed := newRepository(t, true)
	ctx := context.Background()

	mockFeed.EXPECT().Publish(gomock.Any(), constant.BlobKeyStalls).Return(nil)

	stalls, err := repo.GetAll(ctx)

	assert.NoError(t, err)
	assert.Len(t, stalls, 48)
	assert.Len(t, persistedStalls(t, store), 48)
}

func TestGetAll_MissingBlobWithoutSeedData(t *testing.T) {
	repo, store, mockFeed := newRepository(t, false)

	mockFeed.EXPECT().Publish(gomock.Any(), constant.BlobKeyStalls).Return(nil)

	stalls, err := repo.GetAll(context.Background())

	assert.NoError(t, err)
	assert.Empty(t, stalls)
	assert.Empty(t, persistedStalls(t, store))
}

func TestGetAll_MalformedBlobRegenerates(t *testing.T) {
	repo, store, mockFeed := newRepository(t, true)
	ctx := context.Background()

	err := store.Save(ctx, constant.BlobKeyStalls, json.RawMessage(`{"corrupt":`))
	assert.NoError(t, err)

	mockFeed.EXPECT().Publish(gomock.Any(), constant.BlobKeyStalls).Return(nil)

	stalls, err := repo.GetAll(ctx)

	assert.NoError(t, err)
	assert.Len(t, stalls, 48)
	assert.Len(t, persistedStalls(t, store), 48)
}

func TestWatch_ForeignEventReloadsSnapshot(t *testing.T) {
	repo, store, mockFeed := newRepository(t, true)
	ctx := context.Background()

	var onEvent func(blobstore.Event)
	mockFeed.EXPECT().Subscribe(gomock.Any(), gomock.Any()).Do(func(_ context.Context, handler func(blobstore.Event)) {
		onEvent = handler
	})

	repo.Watch(ctx)

	first, err := json.Marshal([]model.Stall{{ID: "A1", Size: model.SizeSmall, Price: 100, Status: model.StatusAvailable}})
	assert.NoError(t, err)
	assert.NoError(t, store.Save(ctx, constant.BlobKeyStalls, first))

	stalls, err := repo.GetAll(ctx)
	assert.NoError(t, err)
	assert.Len(t, stalls, 1)

	second, err := json.Marshal([]model.Stall{
		{ID: "A1", Size: model.SizeSmall, Price: 100, Status: model.StatusAvailable},
		{ID: "A2", Size: model.SizeMedium, Price: 150, Status: model.StatusAvailable},
	})
	assert.NoError(t, err)
	assert.NoError(t, store.Save(ctx, constant.BlobKeyStalls, second))

	// Still the cached snapshot until a change event arrives.
	stalls, err = repo.GetAll(ctx)
	assert.NoError(t, err)
	assert.Len(t, stalls, 1)

	onEvent(blobstore.Event{Key: constant.BlobKeyStalls, Origin: "other-instance"})

	stalls, err = repo.GetAll(ctx)
	assert.NoError(t, err)
	assert.Len(t, stalls, 2)
}

func TestWatch_UnrelatedEventKeepsSnapshot(t *testing.T) {
	repo, store, mockFeed := newRepository(t, true)
	ctx := context.Background()

	var onEvent func(blobstore.Event)
	mockFeed.EXPECT().Subscribe(gomock.Any(), gomock.Any()).Do(func(_ context.Context, handler func(blobstore.Event)) {
		onEvent = handler
	})

	repo.Watch(ctx)

	value, err := json.Marshal([]model.Stall{{ID: "A1", Size: model.SizeSmall, Price: 100, Status: model.StatusAvailable}})
	assert.NoError(t, err)
	assert.NoError(t, store.Save(ctx, constant.BlobKeyStalls, value))

	stalls, err := repo.GetAll(ctx)
	assert.NoError(t, err)
	assert.Len(t, stalls, 1)

	assert.NoError(t, store.Delete(ctx, constant.BlobKeyStalls))

	onEvent(blobstore.Event{Key: constant.BlobKeyMap, Origin: "other-instance"})

	stalls, err = repo.GetAll(ctx)
	assert.NoError(t, err)
	assert.Len(t, stalls, 1)
}
