package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"fairhall/config"
	s3Mocks "fairhall/infras/s3/mocks"
	"fairhall/infras/otel/mocks"
	floorplanMocks "fairhall/internal/domains/floorplan/mocks"
	"fairhall/internal/domains/floorplan/model/dto"
	"fairhall/internal/domains/floorplan/service"
	stallMocks "fairhall/internal/domains/stall/mocks"
	stallModel "fairhall/internal/domains/stall/model"
	"fairhall/shared/failure"
)

const pngURI = "data:image/png;base64,iVBORw0KGgoAAAANSUhEUg=="

type fixture struct {
	svc    service.FloorPlan
	repo   *floorplanMocks.MockFloorPlan
	stalls *stallMocks.MockStall
	s3     *s3Mocks.MockS3
	cfg    *config.Config
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	f := &fixture{
		repo:   floorplanMocks.NewMockFloorPlan(ctrl),
		stalls: stallMocks.NewMockStall(ctrl),
		s3:     s3Mocks.NewMockS3(ctrl),
		cfg:    &config.Config{},
	}
	f.cfg.Hall.MapHitTolerance = 8

	f.svc = service.New(f.repo, f.stalls, f.cfg, mocks.NewOtel(), f.s3)

	return f
}

func positionedStalls() []stallModel.Stall {
	return []stallModel.Stall{
		{ID: "A1", Size: stallModel.SizeSmall, Price: 100, Status: stallModel.StatusAvailable, MapPosition: &stallModel.MapPosition{X: 50, Y: 50}},
		{ID: "A2", Size: stallModel.SizeSmall, Price: 100, Status: stallModel.StatusAvailable, MapPosition: &stallModel.MapPosition{X: 10, Y: 10}},
	}
}

func TestFloorPlanService_Get(t *testing.T) {
	f := newFixture(t)

	f.repo.EXPECT().Get(gomock.Any()).Return(pngURI, nil)

	res, err := f.svc.Get(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, pngURI, res.Image)
}

func TestFloorPlanService_Upload(t *testing.T) {
	t.Run("stored without S3 mirror", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().Set(gomock.Any(), pngURI).Return(nil)

		res, err := f.svc.Upload(context.Background(), dto.UploadFloorPlanRequest{Image: pngURI})

		assert.NoError(t, err)
		assert.Empty(t, res.ImageURL)
	})

	t.Run("mirrored to S3 when enabled", func(t *testing.T) {
		f := newFixture(t)
		f.cfg.External.S3.Enable = true
		f.cfg.External.S3.BucketName = "fairhall"

		f.repo.EXPECT().Set(gomock.Any(), pngURI).Return(nil)
		f.s3.EXPECT().
			UploadFileBytes(gomock.Any(), "fairhall", "floorplan", gomock.Any(), "image/png", gomock.Any()).
			Return("https://cdn.example.com/fairhall/floorplan/map.png", nil)

		res, err := f.svc.Upload(context.Background(), dto.UploadFloorPlanRequest{Image: pngURI})

		assert.NoError(t, err)
		assert.Equal(t, "https://cdn.example.com/fairhall/floorplan/map.png", res.ImageURL)
	})
}

func TestFloorPlanService_Clear(t *testing.T) {
	t.Run("requires confirmation", func(t *testing.T) {
		f := newFixture(t)

		err := f.svc.Clear(context.Background(), dto.ClearFloorPlanRequest{})

		assert.Error(t, err)
		assert.Equal(t, 409, failure.GetCode(err))
	})

	t.Run("clears the map and every stall position", func(t *testing.T) {
		f := newFixture(t)

		var replaced []stallModel.Stall
		f.repo.EXPECT().Clear(gomock.Any()).Return(nil)
		f.stalls.EXPECT().GetAll(gomock.Any()).Return(positionedStalls(), nil)
		f.stalls.EXPECT().
			Replace(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, stalls []stallModel.Stall) error {
				replaced = stalls
				return nil
			})

		assert.NoError(t, f.svc.Clear(context.Background(), dto.ClearFloorPlanRequest{Confirm: true}))

		for _, s := range replaced {
			assert.Nil(t, s.MapPosition, s.ID)
		}
	})

	t.Run("no stall rewrite when nothing is positioned", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().Clear(gomock.Any()).Return(nil)
		f.stalls.EXPECT().GetAll(gomock.Any()).Return([]stallModel.Stall{
			{ID: "A1", Status: stallModel.StatusAvailable},
		}, nil)

		assert.NoError(t, f.svc.Clear(context.Background(), dto.ClearFloorPlanRequest{Confirm: true}))
	})
}

func TestFloorPlanService_SetPosition(t *testing.T) {
	t.Run("assigns a position", func(t *testing.T) {
		f := newFixture(t)

		var replaced []stallModel.Stall
		f.stalls.EXPECT().GetAll(gomock.Any()).Return(positionedStalls(), nil)
		f.stalls.EXPECT().
			Replace(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, stalls []stallModel.Stall) error {
				replaced = stalls
				return nil
			})

		err := f.svc.SetPosition(context.Background(), dto.PositionRequest{StallID: "A2", X: 75, Y: 25})

		assert.NoError(t, err)
		assert.Equal(t, &stallModel.MapPosition{X: 75, Y: 25}, replaced[1].MapPosition)
	})

	t.Run("unknown stall", func(t *testing.T) {
		f := newFixture(t)

		f.stalls.EXPECT().GetAll(gomock.Any()).Return(positionedStalls(), nil)

		err := f.svc.SetPosition(context.Background(), dto.PositionRequest{StallID: "Z9", X: 75, Y: 25})

		assert.Error(t, err)
		assert.Equal(t, 404, failure.GetCode(err))
	})
}

func TestFloorPlanService_Locate(t *testing.T) {
	t.Run("click near a stall finds it", func(t *testing.T) {
		f := newFixture(t)

		f.stalls.EXPECT().GetAll(gomock.Any()).Return(positionedStalls(), nil)

		res, err := f.svc.Locate(context.Background(), dto.LocateRequest{X: 52, Y: 51})

		assert.NoError(t, err)
		assert.True(t, res.Found)
		assert.Equal(t, "A1", res.Stall.ID)
	})

	t.Run("click in empty space finds nothing", func(t *testing.T) {
		f := newFixture(t)

		f.stalls.EXPECT().GetAll(gomock.Any()).Return(positionedStalls(), nil)

		res, err := f.svc.Locate(context.Background(), dto.LocateRequest{X: 90, Y: 90})

		assert.NoError(t, err)
		assert.False(t, res.Found)
		assert.Nil(t, res.Stall)
	})

	t.Run("reserved and pending stalls never match", func(t *testing.T) {
		f := newFixture(t)

		stalls := positionedStalls()
		stalls[0].Status = stallModel.StatusReserved
		stalls = append(stalls, stallModel.Stall{
			ID:          "A3",
			Status:      stallModel.StatusPending,
			MapPosition: &stallModel.MapPosition{X: 52, Y: 52},
		})

		f.stalls.EXPECT().GetAll(gomock.Any()).Return(stalls, nil)

		res, err := f.svc.Locate(context.Background(), dto.LocateRequest{X: 52, Y: 51})

		assert.NoError(t, err)
		assert.False(t, res.Found)
	})

	t.Run("nearest of two candidates wins", func(t *testing.T) {
		f := newFixture(t)

		stalls := positionedStalls()
		stalls = append(stalls, stallModel.Stall{
			ID:          "A3",
			Status:      stallModel.StatusAvailable,
			MapPosition: &stallModel.MapPosition{X: 55, Y: 55},
		})

		f.stalls.EXPECT().GetAll(gomock.Any()).Return(stalls, nil)

		res, err := f.svc.Locate(context.Background(), dto.LocateRequest{X: 51, Y: 51})

		assert.NoError(t, err)
		assert.True(t, res.Found)
		assert.Equal(t, "A1", res.Stall.ID)
	})
}
