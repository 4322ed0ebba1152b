package service_test

import (
	"testing"

	"findme/internal/models"
	"findme/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocationServiceUpsertKeepsSingleRow(t *testing.T) {
	db := newTestDB(t)
	users := service.NewUserService(db)
	svc := service.NewLocationService(db)

	john, err := users.Create("john_doe", "john@example.com", "password1")
	require.NoError(t, err)

	first, err := svc.Upsert(john.ID, 40.7128, -74.0060)
	require.NoError(t, err)

	second, err := svc.Upsert(john.ID, 51.5074, -0.1278)
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
	assert.False(t, second.UpdatedAt.Before(first.UpdatedAt))

	var count int64
	require.NoError(t, db.Model(&models.UserLocation{}).Where("user_id = ?", john.ID).Count(&count).Error)
	assert.EqualValues(t, 1, count)

	got, err := svc.Get(john.ID)
	require.NoError(t, err)
	assert.Equal(t, 51.5074, got.Latitude)
	assert.Equal(t, -0.1278, got.Longitude)
}

func TestLocationServiceUnknownUser(t *testing.T) {
	db := newTestDB(t)
	svc := service.NewLocationService(db)

	_, err := svc.Upsert(9999, 1.0, 2.0)
	assert.ErrorIs(t, err, service.ErrUserNotFound)

	_, err = svc.Get(9999)
	assert.ErrorIs(t, err, service.ErrLocationNotFound)
}

func TestLocationServiceZeroCoordinates(t *testing.T) {
	db := newTestDB(t)
	users := service.NewUserService(db)
	svc := service.NewLocationService(db)

	u, err := users.Create("null_island", "null@example.com", "password1")
	require.NoError(t, err)

	// 0,0 is a legitimate position.
	loc, err := svc.Upsert(u.ID, 0, 0)
	require.NoError(t, err)
	assert.Zero(t, loc.Latitude)
	assert.Zero(t, loc.Longitude)
}
