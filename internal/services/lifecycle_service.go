package services

import (
	"errors"
	"fmt"
	"time"

	"franchise_supply_backend/internal/models"
	"franchise_supply_backend/internal/repositories"
	"franchise_supply_backend/pkg/utils"
)

// Custom Errors
var (
	ErrRequestNotFound      = errors.New("inventory request not found")
	ErrInvalidRequestStatus = errors.New("invalid request status for this operation")
)

// Request status constants. Status is set by admin action; PendingStatus is
// the independent floor-staff confirmation axis.
const (
	StatusPending  = "pending"
	StatusAccepted = "accepted"
	StatusRejected = "rejected"

	PendingStatusNotConfirmed = "not_confirmed"
	PendingStatusConfirmed    = "confirmed"
)

// --- LifecycleService Interface ---

// LifecycleService owns every status/pending_status/flagged transition of an
// inventory request. The pending/past/reported views are pure queries over
// the store, so they can never drift from persisted state: a change becomes
// visible only after the store has accepted the corresponding write.
type LifecycleService interface {
	GetPendingOrders(restaurantID int64) ([]models.InventoryRequest, error)
	GetPastOrders(restaurantID int64) ([]models.InventoryRequest, error)
	GetReportedOrders(restaurantID int64) ([]models.InventoryRequest, error)
	ConfirmDelivery(restaurantID, requestID int64, employeeID string) (*models.InventoryRequest, error)
	ToggleFlag(restaurantID, requestID int64, note string) (*models.InventoryRequest, error)
	AttachNote(restaurantID, requestID int64, note string) (*models.InventoryRequest, error)
	SendNoteToAdmin(restaurantID, requestID int64) (*models.InventoryRequest, error)
}

type lifecycleService struct {
	requestRepo repositories.RequestRepository
}

// NewLifecycleService creates a new instance of LifecycleService.
func NewLifecycleService(rr repositories.RequestRepository) LifecycleService {
	return &lifecycleService{requestRepo: rr}
}

// --- Projections ---

// GetPendingOrders returns deliveries still awaiting floor-staff
// confirmation: status pending or accepted, not yet confirmed.
func (s *lifecycleService) GetPendingOrders(restaurantID int64) ([]models.InventoryRequest, error) {
	notConfirmed := PendingStatusNotConfirmed
	requests, err := s.requestRepo.GetRequests(models.RequestFilters{
		RestaurantID:  &restaurantID,
		Statuses:      []string{StatusPending, StatusAccepted},
		PendingStatus: &notConfirmed,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get pending orders: %w", err)
	}
	return requests, nil
}

// GetPastOrders returns confirmed deliveries.
func (s *lifecycleService) GetPastOrders(restaurantID int64) ([]models.InventoryRequest, error) {
	confirmed := PendingStatusConfirmed
	requests, err := s.requestRepo.GetRequests(models.RequestFilters{
		RestaurantID:  &restaurantID,
		PendingStatus: &confirmed,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get past orders: %w", err)
	}
	return requests, nil
}

// GetReportedOrders returns flagged requests. A flagged request without a
// note is never surfaced here; the note is part of the report.
func (s *lifecycleService) GetReportedOrders(restaurantID int64) ([]models.InventoryRequest, error) {
	flagged := true
	requests, err := s.requestRepo.GetRequests(models.RequestFilters{
		RestaurantID: &restaurantID,
		Flagged:      &flagged,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get reported orders: %w", err)
	}

	reported := make([]models.InventoryRequest, 0, len(requests))
	for _, req := range requests {
		if req.HasNote() {
			reported = append(reported, req)
		}
	}
	return reported, nil
}

// --- Transitions ---

// ConfirmDelivery records floor-staff confirmation of a physically received
// delivery. Confirming an already-confirmed request is a no-op returning the
// stored state, so a retried network call never double-applies.
func (s *lifecycleService) ConfirmDelivery(restaurantID, requestID int64, employeeID string) (*models.InventoryRequest, error) {
	if utils.IsEmpty(employeeID) {
		return nil, fmt.Errorf("%w: employee ID is required to confirm a delivery", ErrValidation)
	}

	req, err := s.getScopedRequest(restaurantID, requestID)
	if err != nil {
		return nil, err
	}

	if req.PendingStatus == PendingStatusConfirmed {
		return req, nil
	}
	if req.Status != StatusPending && req.Status != StatusAccepted {
		return nil, fmt.Errorf("%w: cannot confirm a %s request", ErrInvalidRequestStatus, req.Status)
	}

	confirmed := PendingStatusConfirmed
	updated, err := s.requestRepo.UpdateRequest(requestID, models.RequestPatch{PendingStatus: &confirmed}, time.Now().UTC())
	if err != nil {
		return nil, fmt.Errorf("failed to confirm delivery for request %d: %w", requestID, err)
	}
	return updated, nil
}

// ToggleFlag flips the flagged marker. Raising the flag requires a non-empty
// note describing the problem; lowering it clears the note. Status and
// pending status are never touched: flagging is an orthogonal dimension.
func (s *lifecycleService) ToggleFlag(restaurantID, requestID int64, note string) (*models.InventoryRequest, error) {
	req, err := s.getScopedRequest(restaurantID, requestID)
	if err != nil {
		return nil, err
	}

	var patch models.RequestPatch
	if req.Flagged {
		unflagged := false
		empty := ""
		patch = models.RequestPatch{Flagged: &unflagged, Notes: &empty}
	} else {
		if utils.IsEmpty(note) {
			return nil, fmt.Errorf("%w: a note is required to flag an order", ErrValidation)
		}
		flagged := true
		patch = models.RequestPatch{Flagged: &flagged, Notes: &note}
	}

	updated, err := s.requestRepo.UpdateRequest(requestID, patch, time.Now().UTC())
	if err != nil {
		return nil, fmt.Errorf("failed to toggle flag for request %d: %w", requestID, err)
	}
	return updated, nil
}

// AttachNote replaces the note on a request without changing anything else.
func (s *lifecycleService) AttachNote(restaurantID, requestID int64, note string) (*models.InventoryRequest, error) {
	if _, err := s.getScopedRequest(restaurantID, requestID); err != nil {
		return nil, err
	}

	updated, err := s.requestRepo.UpdateRequest(requestID, models.RequestPatch{Notes: &note}, time.Now().UTC())
	if err != nil {
		return nil, fmt.Errorf("failed to attach note to request %d: %w", requestID, err)
	}
	return updated, nil
}

// SendNoteToAdmin escalates the stored note to the admin-facing reported
// list by forcing the flag on. It is only meaningful with a non-empty note.
func (s *lifecycleService) SendNoteToAdmin(restaurantID, requestID int64) (*models.InventoryRequest, error) {
	req, err := s.getScopedRequest(restaurantID, requestID)
	if err != nil {
		return nil, err
	}
	if !req.HasNote() {
		return nil, fmt.Errorf("%w: a note must be attached before sending to admin", ErrValidation)
	}

	flagged := true
	updated, err := s.requestRepo.UpdateRequest(requestID, models.RequestPatch{Flagged: &flagged}, time.Now().UTC())
	if err != nil {
		return nil, fmt.Errorf("failed to send note to admin for request %d: %w", requestID, err)
	}
	return updated, nil
}

// getScopedRequest fetches a request and verifies it belongs to the given
// restaurant. A request of another restaurant is indistinguishable from a
// missing one.
func (s *lifecycleService) getScopedRequest(restaurantID, requestID int64) (*models.InventoryRequest, error) {
	req, err := s.requestRepo.GetRequestByID(requestID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrRequestNotFound
		}
		return nil, fmt.Errorf("failed to fetch request %d: %w", requestID, err)
	}
	if req.RestaurantID != restaurantID {
		return nil, ErrRequestNotFound
	}
	return req, nil
}
