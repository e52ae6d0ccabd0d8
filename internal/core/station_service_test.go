package core

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"petrolife-backend-go/internal/models"
)

func TestStationService_CreateStartsActive(t *testing.T) {
	svc := NewStationService(&fakeStationRepo{})

	station, err := svc.CreateStation(context.Background(), "dist-1", models.CreateStationRequest{
		Name:      "North Riyadh Station",
		Address:   "King Fahd Rd",
		Latitude:  24.77,
		Longitude: 46.73,
		FuelTypes: []string{"91", "95", "diesel"},
	})

	require.NoError(t, err)
	assert.NotEmpty(t, station.ID)
	assert.Equal(t, "dist-1", station.DistributorID)
	assert.True(t, station.IsActive)
}

func TestStationService_ListScopedToDistributor(t *testing.T) {
	svc := NewStationService(&fakeStationRepo{})

	_, err := svc.CreateStation(context.Background(), "dist-1", models.CreateStationRequest{Name: "A"})
	require.NoError(t, err)
	_, err = svc.CreateStation(context.Background(), "dist-2", models.CreateStationRequest{Name: "B"})
	require.NoError(t, err)

	own, err := svc.ListStations(context.Background(), "dist-1")
	require.NoError(t, err)
	require.Len(t, own, 1)
	assert.Equal(t, "A", own[0].Name)

	all, err := svc.ListAllStations(context.Background())
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestStationService_UpdateOwnershipAndDeactivation(t *testing.T) {
	svc := NewStationService(&fakeStationRepo{})

	created, err := svc.CreateStation(context.Background(), "dist-1", models.CreateStationRequest{Name: "A"})
	require.NoError(t, err)

	inactive := false
	_, err = svc.UpdateStation(context.Background(), "dist-2", created.ID, models.UpdateStationRequest{IsActive: &inactive})
	assert.ErrorIs(t, err, ErrForbiddenAccess)

	updated, err := svc.UpdateStation(context.Background(), "dist-1", created.ID, models.UpdateStationRequest{IsActive: &inactive})
	require.NoError(t, err)
	assert.False(t, updated.IsActive)
	assert.Equal(t, "A", updated.Name)
}

func TestStationService_Delete(t *testing.T) {
	svc := NewStationService(&fakeStationRepo{})

	created, err := svc.CreateStation(context.Background(), "dist-1", models.CreateStationRequest{Name: "A"})
	require.NoError(t, err)

	err = svc.DeleteStation(context.Background(), "dist-2", created.ID)
	assert.ErrorIs(t, err, ErrForbiddenAccess)

	err = svc.DeleteStation(context.Background(), "dist-1", created.ID)
	require.NoError(t, err)

	err = svc.DeleteStation(context.Background(), "dist-1", created.ID)
	assert.ErrorIs(t, err, ErrStationNotFound)
}
