package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"fairhall/config"
	"fairhall/infras/otel/mocks"
	stallMocks "fairhall/internal/domains/stall/mocks"
	"fairhall/internal/domains/stall/model"
	"fairhall/internal/domains/stall/model/dto"
	"fairhall/internal/domains/stall/service"
	cacheMocks "fairhall/shared/cache/mocks"
	"fairhall/shared/constant"
	"fairhall/shared/failure"
)

func newService(t *testing.T) (service.Stall, *stallMocks.MockStall, *cacheMocks.MockRedisCache) {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockRepo := stallMocks.NewMockStall(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600
	cfg.Hall.SelectionLimit = 3

	return service.New(mockRepo, cfg, mockCache, mockOtel), mockRepo, mockCache
}

func vendorContext(businessName, email string) context.Context {
	ctx := context.WithValue(context.Background(), constant.ContextKeyBusinessName, businessName)

	return context.WithValue(ctx, constant.ContextKeyUserEmail, email)
}

func inventory() []model.Stall {
	reserved := model.Stall{ID: "A3", Size: model.SizeMedium, Price: 150, Status: model.StatusAvailable}
	reserved.Request("Inkwell Press", "ink@example.com", time.Now())
	reserved.Approve(time.Now())

	pending := model.Stall{ID: "A4", Size: model.SizeLarge, Price: 200, Status: model.StatusAvailable}
	pending.Request("Chapter One", "chapter@example.com", time.Now())

	return []model.Stall{
		{ID: "A1", Size: model.SizeSmall, Price: 100, Status: model.StatusAvailable},
		{ID: "A2", Size: model.SizeSmall, Price: 100, Status: model.StatusAvailable},
		reserved,
		pending,
		{ID: "A5", Size: model.SizeSmall, Price: 100, Status: model.StatusAvailable},
		{ID: "A6", Size: model.SizeSmall, Price: 100, Status: model.StatusAvailable},
	}
}

func TestStallService_GetAll(t *testing.T) {
	svc, mockRepo, mockCache := newService(t)

	tests := []struct {
		name      string
		setupMock func()
		wantErr   bool
		wantLen   int
	}{
		{
			name: "cache miss, loaded from repository",
			setupMock: func() {
				mockCache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))

				mockRepo.EXPECT().
					GetAll(gomock.Any()).
					Return(inventory(), nil)

				mockCache.EXPECT().
					Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantLen: 6,
		},
		{
			name: "cache hit",
			setupMock: func() {
				mockCache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)
			},
		},
		{
			name: "repository error",
			setupMock: func() {
				mockCache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))

				mockRepo.EXPECT().
					GetAll(gomock.Any()).
					Return(nil, errors.New("storage error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			res, err := svc.GetAll(context.Background())

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				if tt.wantLen > 0 {
					assert.Len(t, res.Stalls, tt.wantLen)
				}
			}
		})
	}
}

func TestStallService_Stats(t *testing.T) {
	svc, mockRepo, mockCache := newService(t)

	mockCache.EXPECT().
		Get(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(errors.New("cache miss"))

	mockRepo.EXPECT().
		GetAll(gomock.Any()).
		Return(inventory(), nil)

	mockCache.EXPECT().
		Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil).
		AnyTimes()

	res, err := svc.Stats(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, 6, res.Total)
	assert.Equal(t, 4, res.Available)
	assert.Equal(t, 1, res.Pending)
	assert.Equal(t, 1, res.Reserved)
}

func TestStallService_Request(t *testing.T) {
	tests := []struct {
		name        string
		ctx         context.Context
		req         dto.RequestStallsRequest
		setupMock   func(repo *stallMocks.MockStall, cache *cacheMocks.MockRedisCache, replaced *[]model.Stall)
		wantErr     bool
		wantCode    int
		wantPending []string
	}{
		{
			name: "successful batch request",
			ctx:  vendorContext("Page Turner Books", "books@example.com"),
			req:  dto.RequestStallsRequest{StallIDs: []string{"A1", "A2"}},
			setupMock: func(repo *stallMocks.MockStall, cache *cacheMocks.MockRedisCache, replaced *[]model.Stall) {
				repo.EXPECT().GetAll(gomock.Any()).Return(inventory(), nil)
				repo.EXPECT().
					Replace(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, stalls []model.Stall) error {
						*replaced = stalls
						return nil
					})
				cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
			},
			wantPending: []string{"A1", "A2"},
		},
		{
			name: "selection caps at three, fourth pick dropped",
			ctx:  vendorContext("Page Turner Books", "books@example.com"),
			req:  dto.RequestStallsRequest{StallIDs: []string{"A1", "A2", "A5", "A6"}},
			setupMock: func(repo *stallMocks.MockStall, cache *cacheMocks.MockRedisCache, replaced *[]model.Stall) {
				repo.EXPECT().GetAll(gomock.Any()).Return(inventory(), nil)
				repo.EXPECT().
					Replace(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, stalls []model.Stall) error {
						*replaced = stalls
						return nil
					})
				cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
			},
			wantPending: []string{"A1", "A2", "A5"},
		},
		{
			name:      "duplicated id toggles itself out",
			ctx:       vendorContext("Page Turner Books", "books@example.com"),
			req:       dto.RequestStallsRequest{StallIDs: []string{"A1", "A1"}},
			setupMock: func(*stallMocks.MockStall, *cacheMocks.MockRedisCache, *[]model.Stall) {},
			wantErr:   true,
			wantCode:  400,
		},
		{
			name:      "missing business name",
			ctx:       vendorContext("", "books@example.com"),
			req:       dto.RequestStallsRequest{StallIDs: []string{"A1"}},
			setupMock: func(*stallMocks.MockStall, *cacheMocks.MockRedisCache, *[]model.Stall) {},
			wantErr:   true,
			wantCode:  400,
		},
		{
			name: "stall already reserved",
			ctx:  vendorContext("Page Turner Books", "books@example.com"),
			req:  dto.RequestStallsRequest{StallIDs: []string{"A3"}},
			setupMock: func(repo *stallMocks.MockStall, _ *cacheMocks.MockRedisCache, _ *[]model.Stall) {
				repo.EXPECT().GetAll(gomock.Any()).Return(inventory(), nil)
			},
			wantErr:  true,
			wantCode: 409,
		},
		{
			name: "unknown stall id",
			ctx:  vendorContext("Page Turner Books", "books@example.com"),
			req:  dto.RequestStallsRequest{StallIDs: []string{"Z9"}},
			setupMock: func(repo *stallMocks.MockStall, _ *cacheMocks.MockRedisCache, _ *[]model.Stall) {
				repo.EXPECT().GetAll(gomock.Any()).Return(inventory(), nil)
			},
			wantErr:  true,
			wantCode: 404,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, mockRepo, mockCache := newService(t)

			var replaced []model.Stall
			tt.setupMock(mockRepo, mockCache, &replaced)

			err := svc.Request(tt.ctx, tt.req)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			assert.NoError(t, err)

			pending := []string{}
			for _, s := range replaced {
				if s.Status == model.StatusPending && s.BusinessName == "Page Turner Books" {
					pending = append(pending, s.ID)
					assert.Equal(t, "books@example.com", s.Email)
					assert.NotNil(t, s.RequestDate)
				}
			}
			assert.Equal(t, tt.wantPending, pending)
		})
	}
}

func TestStallService_Approve(t *testing.T) {
	t.Run("pending stall becomes reserved", func(t *testing.T) {
		svc, mockRepo, mockCache := newService(t)

		var replaced []model.Stall
		mockRepo.EXPECT().GetAll(gomock.Any()).Return(inventory(), nil)
		mockRepo.EXPECT().
			Replace(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, stalls []model.Stall) error {
				replaced = stalls
				return nil
			})
		mockCache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

		assert.NoError(t, svc.Approve(context.Background(), "A4"))

		assert.Equal(t, model.StatusReserved, replaced[3].Status)
		assert.Equal(t, "Chapter One", replaced[3].BusinessName)
		assert.NotNil(t, replaced[3].ApprovedDate)
	})

	t.Run("approving a reserved stall is a safe no-op", func(t *testing.T) {
		svc, mockRepo, _ := newService(t)

		mockRepo.EXPECT().GetAll(gomock.Any()).Return(inventory(), nil)

		assert.NoError(t, svc.Approve(context.Background(), "A3"))
	})

	t.Run("unknown stall", func(t *testing.T) {
		svc, mockRepo, _ := newService(t)

		mockRepo.EXPECT().GetAll(gomock.Any()).Return(inventory(), nil)

		err := svc.Approve(context.Background(), "Z9")
		assert.Error(t, err)
		assert.Equal(t, 404, failure.GetCode(err))
	})
}

func TestStallService_Reject(t *testing.T) {
	t.Run("pending request is cleared", func(t *testing.T) {
		svc, mockRepo, mockCache := newService(t)

		var replaced []model.Stall
		mockRepo.EXPECT().GetAll(gomock.Any()).Return(inventory(), nil)
		mockRepo.EXPECT().
			Replace(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, stalls []model.Stall) error {
				replaced = stalls
				return nil
			})
		mockCache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

		assert.NoError(t, svc.Reject(context.Background(), "A4"))

		assert.Equal(t, model.StatusAvailable, replaced[3].Status)
		assert.Empty(t, replaced[3].BusinessName)
		assert.Empty(t, replaced[3].Email)
		assert.Nil(t, replaced[3].RequestDate)
	})

	t.Run("rejecting an available stall is a safe no-op", func(t *testing.T) {
		svc, mockRepo, _ := newService(t)

		mockRepo.EXPECT().GetAll(gomock.Any()).Return(inventory(), nil)

		assert.NoError(t, svc.Reject(context.Background(), "A1"))
	})
}

func TestStallService_Cancel(t *testing.T) {
	t.Run("owner cancels a reserved stall", func(t *testing.T) {
		svc, mockRepo, mockCache := newService(t)

		var replaced []model.Stall
		mockRepo.EXPECT().GetAll(gomock.Any()).Return(inventory(), nil)
		mockRepo.EXPECT().
			Replace(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, stalls []model.Stall) error {
				replaced = stalls
				return nil
			})
		mockCache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

		assert.NoError(t, svc.Cancel(vendorContext("Inkwell Press", "ink@example.com"), "A3"))

		assert.Equal(t, model.StatusAvailable, replaced[2].Status)
		assert.Empty(t, replaced[2].BusinessName)
	})

	t.Run("owner cancels their own pending request", func(t *testing.T) {
		svc, mockRepo, mockCache := newService(t)

		var replaced []model.Stall
		mockRepo.EXPECT().GetAll(gomock.Any()).Return(inventory(), nil)
		mockRepo.EXPECT().
			Replace(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, stalls []model.Stall) error {
				replaced = stalls
				return nil
			})
		mockCache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

		assert.NoError(t, svc.Cancel(vendorContext("Chapter One", "chapter@example.com"), "A4"))

		assert.Equal(t, model.StatusAvailable, replaced[3].Status)
	})

	t.Run("mismatched business name leaves the stall untouched", func(t *testing.T) {
		svc, mockRepo, _ := newService(t)

		mockRepo.EXPECT().GetAll(gomock.Any()).Return(inventory(), nil)

		assert.NoError(t, svc.Cancel(vendorContext("Page Turner Books", "books@example.com"), "A3"))
	})

	t.Run("unknown stall", func(t *testing.T) {
		svc, mockRepo, _ := newService(t)

		mockRepo.EXPECT().GetAll(gomock.Any()).Return(inventory(), nil)

		err := svc.Cancel(vendorContext("Inkwell Press", "ink@example.com"), "Z9")
		assert.Error(t, err)
		assert.Equal(t, 404, failure.GetCode(err))
	})
}

func TestStallService_Generate(t *testing.T) {
	t.Run("existing bookings require confirmation", func(t *testing.T) {
		svc, mockRepo, _ := newService(t)

		mockRepo.EXPECT().GetAll(gomock.Any()).Return(inventory(), nil)

		err := svc.Generate(context.Background(), dto.GenerateStallsRequest{
			Small:   5,
			Pattern: "alphanumeric",
		})
		assert.Error(t, err)
		assert.Equal(t, 409, failure.GetCode(err))
	})

	t.Run("confirmed regeneration replaces the inventory", func(t *testing.T) {
		svc, mockRepo, mockCache := newService(t)

		var replaced []model.Stall
		mockRepo.EXPECT().GetAll(gomock.Any()).Return(inventory(), nil)
		mockRepo.EXPECT().
			Replace(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, stalls []model.Stall) error {
				replaced = stalls
				return nil
			})
		mockCache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

		err := svc.Generate(context.Background(), dto.GenerateStallsRequest{
			Small:   2,
			Medium:  1,
			Pattern: "numeric",
			Prefix:  "S-",
			Confirm: true,
		})
		assert.NoError(t, err)

		assert.Len(t, replaced, 3)
		assert.Equal(t, "S-1", replaced[0].ID)
		assert.Equal(t, model.SizeMedium, replaced[2].Size)
	})

	t.Run("empty inventory request is rejected", func(t *testing.T) {
		svc, _, _ := newService(t)

		err := svc.Generate(context.Background(), dto.GenerateStallsRequest{Pattern: "numeric"})
		assert.Error(t, err)
		assert.Equal(t, 400, failure.GetCode(err))
	})
}

func TestStallService_Delete(t *testing.T) {
	t.Run("successful deletion", func(t *testing.T) {
		svc, mockRepo, mockCache := newService(t)

		var replaced []model.Stall
		mockRepo.EXPECT().GetAll(gomock.Any()).Return(inventory(), nil)
		mockRepo.EXPECT().
			Replace(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, stalls []model.Stall) error {
				replaced = stalls
				return nil
			})
		mockCache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

		assert.NoError(t, svc.Delete(context.Background(), "A1"))

		assert.Len(t, replaced, 5)
		for _, s := range replaced {
			assert.NotEqual(t, "A1", s.ID)
		}
	})

	t.Run("unknown stall", func(t *testing.T) {
		svc, mockRepo, _ := newService(t)

		mockRepo.EXPECT().GetAll(gomock.Any()).Return(inventory(), nil)

		err := svc.Delete(context.Background(), "Z9")
		assert.Error(t, err)
		assert.Equal(t, 404, failure.GetCode(err))
	})
}
