// Package blobstore persists whole JSON collections under well-known keys.
// Each key holds one document; Save is a total overwrite, so the last writer
// wins by design of the storage model.
package blobstore

//go:generate go run go.uber.org/mock/mockgen -source=./store.go -destination=./mocks/store_mock.go -package=mocks

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"fairhall/infras/otel"
	"fairhall/infras/postgres"
	"fairhall/shared/constant"
	"fairhall/shared/logger"
	"fairhall/shared/timezone"
)

var ErrNotFound = errors.New("blob not found")

const (
	queryGet = `SELECT blob_key, value, modified_at FROM hall_blobs WHERE blob_key = $1`

	queryUpsert = `INSERT INTO hall_blobs (blob_key, value, modified_at)
		VALUES (:blob_key, :value, :modified_at)
		ON CONFLICT (blob_key) DO UPDATE
		SET value = EXCLUDED.value, modified_at = EXCLUDED.modified_at`

	queryDelete = `DELETE FROM hall_blobs WHERE blob_key = $1`
)

type blobRow struct {
	Key        string    `db:"blob_key"`
	Value      []byte    `db:"value"`
	ModifiedAt time.Time `db:"modified_at"`
}

type Store interface {
	Load(ctx context.Context, key string) (json.RawMessage, error)
	Save(ctx context.Context, key string, value json.RawMessage) error
	Delete(ctx context.Context, key string) error
}

type storeImpl struct {
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Store {
	return &storeImpl{
		db:   db,
		otel: otel,
	}
}

func (s *storeImpl) Load(ctx context.Context, key string) (value json.RawMessage, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelStoreScopeName, constant.OtelStoreScopeName+".Load")
	defer scope.End()

	scope.SetAttribute(constant.OtelBlobKeyAttribute, key)

	var row blobRow
	err = s.db.Read.GetContext(ctx, &row, queryGet, key)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}

		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return nil, fmt.Errorf("failed to load blob (%s): %w", key, err)
	}

	return row.Value, nil
}

func (s *storeImpl) Save(ctx context.Context, key string, value json.RawMessage) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelStoreScopeName, constant.OtelStoreScopeName+".Save")
	defer scope.End()
	defer scope.TraceIfError(err)

	scope.SetAttribute(constant.OtelBlobKeyAttribute, key)

	row := blobRow{
		Key:        key,
		Value:      value,
		ModifiedAt: timezone.Now(),
	}

	_, err = s.db.Write.NamedExecContext(ctx, queryUpsert, row)
	if err != nil {
		logger.ErrorWithStack(err)

		return fmt.Errorf("failed to save blob (%s): %w", key, err)
	}

	return nil
}

func (s *storeImpl) Delete(ctx context.Context, key string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelStoreScopeName, constant.OtelStoreScopeName+".Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	scope.SetAttribute(constant.OtelBlobKeyAttribute, key)

	_, err = s.db.Write.ExecContext(ctx, queryDelete, key)
	if err != nil {
		logger.ErrorWithStack(err)

		return fmt.Errorf("failed to delete blob (%s): %w", key, err)
	}

	return nil
}
