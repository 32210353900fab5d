package stores

import (
	"context"

	"github.com/aakcay5656/dropspot/internal/client/api"
	"github.com/aakcay5656/dropspot/internal/client/models"
	"github.com/aakcay5656/dropspot/internal/logging"
)

// DropStore owns the local cache of drops: the full list and at most one
// selected detail. Both are independently fetched and independently
// stale-tolerant; no attempt is made to reconcile them into one snapshot.
//
// Mutations (join/leave/claim) never patch the cache locally. On success they
// re-fetch the whole list before returning — the server's ranking and stock
// accounting are authoritative, so re-synchronizing beats client-side
// arithmetic against a concurrently contended resource.
//
// Each cached query carries a generation counter: a response is applied only
// if no newer request for that query was issued meanwhile, so a slow stale
// response can never overwrite fresher state.
type DropStore struct {
	state
	api api.Client
	log logging.Logger

	drops    []models.Drop
	selected *models.Drop

	listIssued, listApplied     uint64
	detailIssued, detailApplied uint64
}

func NewDropStore(client api.Client, log logging.Logger) *DropStore {
	return &DropStore{
		api: client,
		log: log.With("store", "drops"),
	}
}

// FetchDrops replaces the cached list wholesale with the server's response.
// On failure the previous list is kept (stale but available) and the error is
// recorded and returned.
func (s *DropStore) FetchDrops(ctx context.Context, params api.ListDropsParams) error {
	s.begin()
	s.mu.Lock()
	s.listIssued++
	issued := s.listIssued
	s.mu.Unlock()

	drops, err := s.api.ListDrops(ctx, params)
	if err != nil {
		s.fail(normalize(err, "Failed to load drops"))
		return err
	}

	s.mu.Lock()
	if issued > s.listApplied {
		s.listApplied = issued
		s.drops = drops
	}
	s.mu.Unlock()

	s.end()
	return nil
}

// FetchDrop loads one drop into the selected slot. Same staleness and
// failure semantics as FetchDrops, scoped to the detail query.
func (s *DropStore) FetchDrop(ctx context.Context, id int64) (*models.Drop, error) {
	s.begin()
	s.mu.Lock()
	s.detailIssued++
	issued := s.detailIssued
	s.mu.Unlock()

	drop, err := s.api.GetDrop(ctx, id)
	if err != nil {
		s.fail(normalize(err, "Failed to load drop"))
		return nil, err
	}

	s.mu.Lock()
	if issued > s.detailApplied {
		s.detailApplied = issued
		s.selected = drop
	}
	s.mu.Unlock()

	s.end()
	return drop, nil
}

// JoinWaitlist joins the drop's waitlist and re-synchronizes the list before
// returning, so the caller never observes stale user_joined once the action
// has settled. A failed refresh lands on LastError without failing the join.
func (s *DropStore) JoinWaitlist(ctx context.Context, id int64) (*models.JoinResult, error) {
	s.begin()
	res, err := s.api.JoinWaitlist(ctx, id)
	if err != nil {
		s.fail(normalize(err, "Failed to join waitlist"))
		return nil, err
	}
	s.end()

	s.refreshAfterMutation(ctx, "join", id)
	return res, nil
}

// LeaveWaitlist removes the identity from the drop's waitlist, then
// re-synchronizes the list.
func (s *DropStore) LeaveWaitlist(ctx context.Context, id int64) error {
	s.begin()
	if err := s.api.LeaveWaitlist(ctx, id); err != nil {
		s.fail(normalize(err, "Failed to leave waitlist"))
		return err
	}
	s.end()

	s.refreshAfterMutation(ctx, "leave", id)
	return nil
}

// ClaimDrop redeems waitlist membership for a unit of stock, then
// re-synchronizes the list. The returned claim code is held transiently by
// the caller; the store does not retain it.
func (s *DropStore) ClaimDrop(ctx context.Context, id int64) (*models.ClaimResult, error) {
	s.begin()
	res, err := s.api.ClaimDrop(ctx, id)
	if err != nil {
		s.fail(normalize(err, "Claim failed"))
		return nil, err
	}
	s.end()

	s.refreshAfterMutation(ctx, "claim", id)
	return res, nil
}

func (s *DropStore) refreshAfterMutation(ctx context.Context, action string, id int64) {
	if err := s.FetchDrops(ctx, api.ListDropsParams{}); err != nil {
		s.log.Warn(ctx, "refresh after mutation failed", "action", action, "drop_id", id, "error", err)
	}
}

// Drops returns the cached list. The slice is shared for reading; callers
// must not modify it.
func (s *DropStore) Drops() []models.Drop {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.drops
}

// Selected returns the cached detail drop, or nil when none is loaded.
func (s *DropStore) Selected() *models.Drop {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.selected == nil {
		return nil
	}
	d := *s.selected
	return &d
}
