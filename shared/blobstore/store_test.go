package blobstore_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"

	"fairhall/shared/blobstore"
)

func TestMemoryStore_RoundTrip(t *testing.T) {
	store := blobstore.NewMemory()
	ctx := context.Background()

	payload := json.RawMessage(`[{"id":"A1","size":"small","status":"available"}]`)

	err := store.Save(ctx, "tradeHallStalls", payload)
	assert.NoError(t, err)

	loaded, err := store.Load(ctx, "tradeHallStalls")
	assert.NoError(t, err)
	assert.JSONEq(t, string(payload), string(loaded))
}

func TestMemoryStore_LoadMissing(t *testing.T) {
	store := blobstore.NewMemory()

	_, err := store.Load(context.Background(), "tradeHallMap")
	assert.ErrorIs(t, err, blobstore.ErrNotFound)
}

func TestMemoryStore_SaveOverwrites(t *testing.T) {
	store := blobstore.NewMemory()
	ctx := context.Background()

	assert.NoError(t, store.Save(ctx, "tradeHallStalls", json.RawMessage(`["first"]`)))
	assert.NoError(t, store.Save(ctx, "tradeHallStalls", json.RawMessage(`["second"]`)))

	loaded, err := store.Load(ctx, "tradeHallStalls")
	assert.NoError(t, err)
	assert.JSONEq(t, `["second"]`, string(loaded))
}

func TestMemoryStore_Delete(t *testing.T) {
	store := blobstore.NewMemory()
	ctx := context.Background()

	assert.NoError(t, store.Save(ctx, "bookfairAdmins", json.RawMessage(`[]`)))
	assert.NoError(t, store.Delete(ctx, "bookfairAdmins"))

	_, err := store.Load(ctx, "bookfairAdmins")
	assert.ErrorIs(t, err, blobstore.ErrNotFound)

	// deleting an absent key is a no-op
	assert.NoError(t, store.Delete(ctx, "bookfairAdmins"))
}
