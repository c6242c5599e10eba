package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/association-manager/association-api/internal/domain"
	"github.com/association-manager/association-api/internal/service"
)

func TestConfigureBounds(t *testing.T) {
	t.Run("first configuration creates the single row", func(t *testing.T) {
		svc := service.NewSettingsService(&fakeSettingsRepo{})

		created, err := svc.ConfigureBounds(context.Background(), domain.CotisationBounds{Lower: 50, Upper: 500})
		require.NoError(t, err)
		assert.Equal(t, uint(1), created.ID)
		assert.Equal(t, 50.0, created.Lower)
		assert.Equal(t, 500.0, created.Upper)
	})

	t.Run("a second configuration is refused", func(t *testing.T) {
		svc := service.NewSettingsService(&fakeSettingsRepo{})
		ctx := context.Background()

		_, err := svc.ConfigureBounds(ctx, domain.CotisationBounds{Lower: 50, Upper: 500})
		require.NoError(t, err)

		_, err = svc.ConfigureBounds(ctx, domain.CotisationBounds{Lower: 10, Upper: 100})
		assert.ErrorIs(t, err, service.ErrBoundsAlreadyConfigured)
	})

	t.Run("inverted or negative bounds are refused", func(t *testing.T) {
		svc := service.NewSettingsService(&fakeSettingsRepo{})
		ctx := context.Background()

		_, err := svc.ConfigureBounds(ctx, domain.CotisationBounds{Lower: 500, Upper: 50})
		assert.ErrorIs(t, err, domain.ErrInvalidBounds)

		_, err = svc.ConfigureBounds(ctx, domain.CotisationBounds{Lower: -1, Upper: 50})
		assert.ErrorIs(t, err, domain.ErrInvalidBounds)
	})
}

func TestUpdateBounds(t *testing.T) {
	svc := service.NewSettingsService(&fakeSettingsRepo{})
	ctx := context.Background()

	_, err := svc.UpdateBounds(ctx, domain.CotisationBounds{Lower: 10, Upper: 100})
	assert.ErrorIs(t, err, service.ErrBoundsNotConfigured)

	_, err = svc.ConfigureBounds(ctx, domain.CotisationBounds{Lower: 50, Upper: 500})
	require.NoError(t, err)

	updated, err := svc.UpdateBounds(ctx, domain.CotisationBounds{Lower: 10, Upper: 100})
	require.NoError(t, err)
	assert.Equal(t, uint(1), updated.ID)
	assert.Equal(t, 10.0, updated.Lower)

	bounds, err := svc.GetBounds(ctx)
	require.NoError(t, err)
	assert.Equal(t, 100.0, bounds.Upper)
}

func TestCheckCotisation(t *testing.T) {
	t.Run("unconfigured bounds accept any positive amount", func(t *testing.T) {
		svc := service.NewSettingsService(&fakeSettingsRepo{})
		ctx := context.Background()

		assert.NoError(t, svc.CheckCotisation(ctx, 0))
		assert.NoError(t, svc.CheckCotisation(ctx, 1000000))
		assert.ErrorIs(t, svc.CheckCotisation(ctx, -1), domain.ErrNonPositiveAmount)
	})

	t.Run("configured bounds reject amounts outside the range", func(t *testing.T) {
		svc := service.NewSettingsService(&fakeSettingsRepo{})
		ctx := context.Background()

		_, err := svc.ConfigureBounds(ctx, domain.CotisationBounds{Lower: 50, Upper: 500})
		require.NoError(t, err)

		assert.NoError(t, svc.CheckCotisation(ctx, 50))
		assert.NoError(t, svc.CheckCotisation(ctx, 500))

		var outOfBounds *domain.OutOfBoundsError
		require.ErrorAs(t, svc.CheckCotisation(ctx, 49.99), &outOfBounds)
		assert.Equal(t, 50.0, outOfBounds.Lower)
		assert.Equal(t, 500.0, outOfBounds.Upper)

		assert.ErrorAs(t, svc.CheckCotisation(ctx, 501), &outOfBounds)
	})
}

func TestGetBounds(t *testing.T) {
	svc := service.NewSettingsService(&fakeSettingsRepo{})

	_, err := svc.GetBounds(context.Background())
	assert.ErrorIs(t, err, service.ErrBoundsNotConfigured)
}
