package model_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"fairhall/internal/domains/stall/model"
)

func TestGenerateFromConfig_SizeOrderAndIDs(t *testing.T) {
	stalls := model.GenerateFromConfig(model.GenerateConfig{
		Small:   2,
		Medium:  1,
		Pattern: model.NamingAlphanumeric,
	})

	assert.Len(t, stalls, 3)
	assert.Equal(t, "A1", stalls[0].ID)
	assert.Equal(t, "A2", stalls[1].ID)
	assert.Equal(t, "A3", stalls[2].ID)
	assert.Equal(t, model.SizeSmall, stalls[0].Size)
	assert.Equal(t, model.SizeSmall, stalls[1].Size)
	assert.Equal(t, model.SizeMedium, stalls[2].Size)
	assert.Equal(t, 100, stalls[0].Price)
	assert.Equal(t, 150, stalls[2].Price)

	for _, s := range stalls {
		assert.Equal(t, model.StatusAvailable, s.Status)
	}
}

func TestGenerateFromConfig_AlphanumericWrapsAtTen(t *testing.T) {
	stalls := model.GenerateFromConfig(model.GenerateConfig{
		Small:   12,
		Pattern: model.NamingAlphanumeric,
	})

	assert.Equal(t, "A10", stalls[9].ID)
	assert.Equal(t, "B1", stalls[10].ID)
	assert.Equal(t, "B2", stalls[11].ID)
}

func TestGenerateFromConfig_NumericWithPrefix(t *testing.T) {
	stalls := model.GenerateFromConfig(model.GenerateConfig{
		Large:   3,
		Pattern: model.NamingNumeric,
		Prefix:  "HALL-",
	})

	assert.Equal(t, "HALL-1", stalls[0].ID)
	assert.Equal(t, "HALL-3", stalls[2].ID)
	assert.Equal(t, model.SizeLarge, stalls[1].Size)
	assert.Equal(t, 200, stalls[1].Price)
}

func TestSelection_ToggleAndCap(t *testing.T) {
	sel := model.NewSelection(3)

	assert.True(t, sel.Toggle("A1"))
	assert.True(t, sel.Toggle("A2"))
	assert.True(t, sel.Toggle("A3"))

	// fourth pick is silently ignored
	assert.False(t, sel.Toggle("A4"))
	assert.Equal(t, []string{"A1", "A2", "A3"}, sel.IDs())

	// toggling a picked id removes it and frees a slot
	assert.False(t, sel.Toggle("A2"))
	assert.Equal(t, []string{"A1", "A3"}, sel.IDs())
	assert.True(t, sel.Toggle("A4"))
	assert.Equal(t, 3, sel.Len())
}

func TestStall_RequestOnlyWhenAvailable(t *testing.T) {
	now := time.Now()

	stall := model.Stall{ID: "A1", Status: model.StatusAvailable}
	assert.True(t, stall.Request("Page Turner Books", "books@example.com", now))
	assert.Equal(t, model.StatusPending, stall.Status)
	assert.Equal(t, "Page Turner Books", stall.BusinessName)
	assert.NotNil(t, stall.RequestDate)
	assert.Nil(t, stall.ApprovedDate)

	// a second request against the same stall does not transition
	assert.False(t, stall.Request("Inkwell Press", "ink@example.com", now))
	assert.Equal(t, "Page Turner Books", stall.BusinessName)
}

func TestStall_ApproveIdempotent(t *testing.T) {
	now := time.Now()

	stall := model.Stall{ID: "A1", Status: model.StatusAvailable}
	stall.Request("Page Turner Books", "books@example.com", now)

	assert.True(t, stall.Approve(now))
	assert.Equal(t, model.StatusReserved, stall.Status)
	assert.NotNil(t, stall.ApprovedDate)

	// approving again is a safe no-op
	assert.False(t, stall.Approve(now.Add(time.Hour)))
	assert.Equal(t, now, *stall.ApprovedDate)
}

func TestStall_RejectClearsIdentity(t *testing.T) {
	now := time.Now()

	stall := model.Stall{ID: "A1", Status: model.StatusAvailable}
	stall.Request("Page Turner Books", "books@example.com", now)

	assert.True(t, stall.Reject())
	assert.Equal(t, model.StatusAvailable, stall.Status)
	assert.Empty(t, stall.BusinessName)
	assert.Empty(t, stall.Email)
	assert.Nil(t, stall.RequestDate)

	// rejecting a non-pending stall is a safe no-op
	assert.False(t, stall.Reject())
}

func TestStall_CancelOwnershipGuard(t *testing.T) {
	now := time.Now()

	stall := model.Stall{ID: "A1", Status: model.StatusAvailable}
	stall.Request("Page Turner Books", "books@example.com", now)
	stall.Approve(now)

	// a different business cannot cancel
	assert.False(t, stall.Cancel("Inkwell Press"))
	assert.Equal(t, model.StatusReserved, stall.Status)

	// nor can an empty identity
	assert.False(t, stall.Cancel(""))

	assert.True(t, stall.Cancel("Page Turner Books"))
	assert.Equal(t, model.StatusAvailable, stall.Status)
	assert.Empty(t, stall.BusinessName)
	assert.Nil(t, stall.ApprovedDate)
}

func TestStall_CancelPendingRequest(t *testing.T) {
	now := time.Now()

	stall := model.Stall{ID: "A1", Status: model.StatusAvailable}
	stall.Request("Page Turner Books", "books@example.com", now)

	assert.True(t, stall.Cancel("Page Turner Books"))
	assert.Equal(t, model.StatusAvailable, stall.Status)
}

func TestDefaultLayout(t *testing.T) {
	now := time.Now()
	stalls := model.DefaultLayout(now)

	assert.Len(t, stalls, 48)

	stats := model.CountStats(stalls)
	assert.Equal(t, 48, stats.Total)
	assert.Equal(t, stats.Total, stats.Available+stats.Pending+stats.Reserved)
	assert.NotZero(t, stats.Reserved)
	assert.Zero(t, stats.Pending)

	for _, s := range stalls {
		assert.NotNil(t, s.MapPosition, s.ID)
		assert.GreaterOrEqual(t, s.MapPosition.X, 0.0)
		assert.LessOrEqual(t, s.MapPosition.X, 100.0)
		assert.GreaterOrEqual(t, s.MapPosition.Y, 0.0)
		assert.LessOrEqual(t, s.MapPosition.Y, 100.0)
		assert.Equal(t, model.DefaultPrice(s.Size), s.Price)

		if s.Status == model.StatusReserved {
			assert.NotEmpty(t, s.BusinessName)
			assert.NotEmpty(t, s.Email)
			assert.NotNil(t, s.ApprovedDate)
		} else {
			assert.Empty(t, s.BusinessName)
		}
	}
}
