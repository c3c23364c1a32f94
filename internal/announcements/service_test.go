package announcements_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goshen-supply/storefront/internal/announcements"
	"github.com/goshen-supply/storefront/internal/shared"
	_ "github.com/goshen-supply/storefront/testing"
)

func TestCreateStampsUTCTime(t *testing.T) {
	svc := announcements.NewService(announcements.NewMemoryRepository())
	fixed := time.Date(2025, 3, 14, 9, 26, 53, 0, time.FixedZone("CET", 3600))
	svc.SetClockForTest(func() time.Time { return fixed })

	ad, err := svc.Create(context.Background(), announcements.CreateInput{Content: "Spring sale"})
	require.NoError(t, err)
	assert.NotZero(t, ad.ID)
	assert.Equal(t, fixed.UTC(), ad.DatePosted)
	assert.Equal(t, time.UTC, ad.DatePosted.Location())
}

func TestCreateEmptyContentLeavesStoreUnchanged(t *testing.T) {
	svc := announcements.NewService(announcements.NewMemoryRepository())
	ctx := context.Background()

	_, err := svc.Create(ctx, announcements.CreateInput{Content: ""})
	assert.ErrorIs(t, err, shared.ErrValidation)

	ads, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, ads)
}

func TestListReturnsNewestFirst(t *testing.T) {
	svc := announcements.NewService(announcements.NewMemoryRepository())
	ctx := context.Background()

	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	clock := base
	svc.SetClockForTest(func() time.Time { return clock })

	for i, content := range []string{"first", "second", "third"} {
		clock = base.Add(time.Duration(i) * time.Minute)
		_, err := svc.Create(ctx, announcements.CreateInput{Content: content})
		require.NoError(t, err)
	}

	ads, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, ads, 3)
	assert.Equal(t, "third", ads[0].Content)
	assert.Equal(t, "second", ads[1].Content)
	assert.Equal(t, "first", ads[2].Content)
}

func TestDeleteLifecycle(t *testing.T) {
	svc := announcements.NewService(announcements.NewMemoryRepository())
	ctx := context.Background()

	ad, err := svc.Create(ctx, announcements.CreateInput{Content: "Going away soon"})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, ad.ID))

	ads, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, ads)

	assert.ErrorIs(t, svc.Delete(ctx, ad.ID), shared.ErrNotFound)
	assert.ErrorIs(t, svc.Delete(ctx, 0), shared.ErrNotFound)
}
