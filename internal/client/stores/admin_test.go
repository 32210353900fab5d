package stores

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/aakcay5656/dropspot/internal/client/api"
	"github.com/aakcay5656/dropspot/internal/client/models"
)

func TestCreateDropReturnsServerPayload(t *testing.T) {
	start := time.Date(2026, 9, 10, 18, 0, 0, 0, time.UTC)
	fake := &fakeClient{
		CreateFn: func(ctx context.Context, params api.CreateDropParams) (*models.Drop, error) {
			require.Equal(t, "sneaker drop", params.Name)
			require.Equal(t, 50, params.TotalStock)
			return &models.Drop{ID: 7, Name: params.Name, TotalStock: params.TotalStock}, nil
		},
	}
	s := NewAdminStore(fake, testLogger())

	drop, err := s.CreateDrop(context.Background(), api.CreateDropParams{
		Name:             "sneaker drop",
		TotalStock:       50,
		ClaimWindowStart: start,
		ClaimWindowEnd:   start.Add(time.Hour),
	})
	require.NoError(t, err)
	require.Equal(t, int64(7), drop.ID)
	require.False(t, s.Busy())
	require.Empty(t, s.LastError())

	// no self-triggered refresh: re-fetching is the caller's job
	require.Equal(t, []string{"CreateDrop"}, fake.callLog())
}

func TestUpdateDropSendsPartialFields(t *testing.T) {
	var got api.UpdateDropParams
	fake := &fakeClient{
		UpdateFn: func(ctx context.Context, id int64, params api.UpdateDropParams) (*models.Drop, error) {
			got = params
			return &models.Drop{ID: id}, nil
		},
	}
	s := NewAdminStore(fake, testLogger())

	stock := 75
	_, err := s.UpdateDrop(context.Background(), 7, api.UpdateDropParams{TotalStock: &stock})
	require.NoError(t, err)
	require.NotNil(t, got.TotalStock)
	require.Equal(t, 75, *got.TotalStock)
	require.Nil(t, got.Name)
}

func TestDeleteDrop(t *testing.T) {
	var deleted int64
	fake := &fakeClient{
		DeleteFn: func(ctx context.Context, id int64) error {
			deleted = id
			return nil
		},
	}
	s := NewAdminStore(fake, testLogger())

	require.NoError(t, s.DeleteDrop(context.Background(), 7))
	require.Equal(t, int64(7), deleted)
	require.Equal(t, []string{"DeleteDrop"}, fake.callLog())
}

func TestAdminFailureIsIsolatedFromReadPath(t *testing.T) {
	fake := &fakeClient{
		ListDropsFn: func(ctx context.Context, params api.ListDropsParams) ([]models.Drop, error) {
			return dropsNamed("alpha"), nil
		},
		CreateFn: func(ctx context.Context, params api.CreateDropParams) (*models.Drop, error) {
			return nil, &api.Error{Status: 422, Message: "claim_window_end must be after claim_window_start"}
		},
	}
	drops := NewDropStore(fake, testLogger())
	admin := NewAdminStore(fake, testLogger())
	require.NoError(t, drops.FetchDrops(context.Background(), api.ListDropsParams{}))

	_, err := admin.CreateDrop(context.Background(), api.CreateDropParams{})
	require.Error(t, err)

	require.Equal(t, "claim_window_end must be after claim_window_start", admin.LastError())
	require.Empty(t, drops.LastError())
	require.Len(t, drops.Drops(), 1)
}

func TestAdminFallbackMessages(t *testing.T) {
	fake := &fakeClient{
		DeleteFn: func(ctx context.Context, id int64) error {
			return context.DeadlineExceeded
		},
	}
	s := NewAdminStore(fake, testLogger())

	require.Error(t, s.DeleteDrop(context.Background(), 1))
	require.Equal(t, "Failed to delete drop", s.LastError())
}
