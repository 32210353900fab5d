package stores

import (
	"context"

	"github.com/aakcay5656/dropspot/internal/client/api"
	"github.com/aakcay5656/dropspot/internal/client/models"
	"github.com/aakcay5656/dropspot/internal/logging"
)

// AdminStore owns the administrative create/update/delete operations on drop
// records. Its busy/error state is isolated from DropStore so an admin
// failure can never be misread as a read-path failure.
//
// Unlike DropStore's own mutations these do not self-trigger a list refresh:
// the admin view re-fetches explicitly after a batch of edits.
type AdminStore struct {
	state
	api api.Client
	log logging.Logger
}

func NewAdminStore(client api.Client, log logging.Logger) *AdminStore {
	return &AdminStore{
		api: client,
		log: log.With("store", "admin"),
	}
}

func (s *AdminStore) CreateDrop(ctx context.Context, params api.CreateDropParams) (*models.Drop, error) {
	s.begin()
	drop, err := s.api.CreateDrop(ctx, params)
	if err != nil {
		s.fail(normalize(err, "Failed to create drop"))
		return nil, err
	}
	s.end()
	s.log.Info(ctx, "drop created", "drop_id", drop.ID)
	return drop, nil
}

func (s *AdminStore) UpdateDrop(ctx context.Context, id int64, params api.UpdateDropParams) (*models.Drop, error) {
	s.begin()
	drop, err := s.api.UpdateDrop(ctx, id, params)
	if err != nil {
		s.fail(normalize(err, "Failed to update drop"))
		return nil, err
	}
	s.end()
	s.log.Info(ctx, "drop updated", "drop_id", id)
	return drop, nil
}

func (s *AdminStore) DeleteDrop(ctx context.Context, id int64) error {
	s.begin()
	if err := s.api.DeleteDrop(ctx, id); err != nil {
		s.fail(normalize(err, "Failed to delete drop"))
		return err
	}
	s.end()
	s.log.Info(ctx, "drop deleted", "drop_id", id)
	return nil
}
