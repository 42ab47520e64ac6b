package repositories

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"franchise_supply_backend/internal/models"

	"github.com/lib/pq" // For pq.Error and pq.Array
)

// RequestRepository defines the database operations the order lifecycle and
// billing components need from the inventory_requests table. InsertRequests
// is all-or-nothing: either every row is persisted or none is.
type RequestRepository interface {
	GetRequests(filters models.RequestFilters) ([]models.InventoryRequest, error)
	GetRequestByID(requestID int64) (*models.InventoryRequest, error)
	InsertRequests(requests []models.InventoryRequest) ([]models.InventoryRequest, error)
	UpdateRequest(requestID int64, patch models.RequestPatch, updatedAt time.Time) (*models.InventoryRequest, error)
}

type requestRepository struct {
	db *sql.DB
}

// NewRequestRepository creates a new instance of RequestRepository.
func NewRequestRepository(db *sql.DB) RequestRepository {
	return &requestRepository{db: db}
}

const requestColumns = `
	ir.id, ir.restaurant_id, ir.item_id, ir.quantity, ir.unit, ir.cost_per_unit,
	ir.timeline, ir.notes, ir.status, ir.pending_status, ir.flagged,
	ir.created_at, ir.updated_at,
	i.name as item_name`

func (r *requestRepository) GetRequests(filters models.RequestFilters) ([]models.InventoryRequest, error) {
	requests := []models.InventoryRequest{}

	var queryBuilder strings.Builder
	queryBuilder.WriteString(`SELECT ` + requestColumns + `
	FROM inventory_requests ir
	JOIN items i ON ir.item_id = i.id`)

	var conditions []string
	var args []interface{}
	argCounter := 1

	if filters.RestaurantID != nil {
		conditions = append(conditions, fmt.Sprintf("ir.restaurant_id = $%d", argCounter))
		args = append(args, *filters.RestaurantID)
		argCounter++
	}
	if len(filters.Statuses) > 0 {
		conditions = append(conditions, fmt.Sprintf("ir.status = ANY($%d)", argCounter))
		args = append(args, pq.Array(filters.Statuses))
		argCounter++
	}
	if filters.PendingStatus != nil && *filters.PendingStatus != "" {
		conditions = append(conditions, fmt.Sprintf("ir.pending_status = $%d", argCounter))
		args = append(args, *filters.PendingStatus)
		argCounter++
	}
	if filters.Flagged != nil {
		conditions = append(conditions, fmt.Sprintf("ir.flagged = $%d", argCounter))
		args = append(args, *filters.Flagged)
		argCounter++
	}

	if len(conditions) > 0 {
		queryBuilder.WriteString(" WHERE " + strings.Join(conditions, " AND "))
	}
	queryBuilder.WriteString(" ORDER BY ir.created_at DESC")

	rows, err := r.db.Query(queryBuilder.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("%w: querying inventory requests: %v", ErrDatabaseError, err)
	}
	defer rows.Close()

	for rows.Next() {
		req, err := scanRequest(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanning inventory request: %v", ErrDatabaseError, err)
		}
		requests = append(requests, *req)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterating inventory request rows: %v", ErrDatabaseError, err)
	}
	return requests, nil
}

func (r *requestRepository) GetRequestByID(requestID int64) (*models.InventoryRequest, error) {
	query := `SELECT ` + requestColumns + `
	FROM inventory_requests ir
	JOIN items i ON ir.item_id = i.id
	WHERE ir.id = $1`

	req, err := scanRequest(r.db.QueryRow(query, requestID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("%w: getting inventory request by ID %d: %v", ErrDatabaseError, requestID, err)
	}
	return req, nil
}

// InsertRequests persists every request in one transaction. The returned
// slice carries the store-assigned ids. On any failure the transaction is
// rolled back and no request is considered created.
func (r *requestRepository) InsertRequests(requests []models.InventoryRequest) ([]models.InventoryRequest, error) {
	tx, err := r.db.Begin()
	if err != nil {
		return nil, fmt.Errorf("%w: starting batch insert transaction: %v", ErrDatabaseError, err)
	}
	defer tx.Rollback()

	query := `INSERT INTO inventory_requests
	            (restaurant_id, item_id, quantity, unit, cost_per_unit, timeline,
	             notes, status, pending_status, flagged, created_at, updated_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	          RETURNING id`

	inserted := make([]models.InventoryRequest, 0, len(requests))
	for _, req := range requests {
		if req.CreatedAt.IsZero() {
			req.CreatedAt = time.Now().UTC()
		}
		if req.UpdatedAt.IsZero() {
			req.UpdatedAt = req.CreatedAt
		}

		err := tx.QueryRow(query,
			req.RestaurantID, req.ItemID, req.Quantity, req.Unit, req.CostPerUnit, req.Timeline,
			req.Notes, req.Status, req.PendingStatus, req.Flagged, req.CreatedAt, req.UpdatedAt,
		).Scan(&req.ID)
		if err != nil {
			var pqErr *pq.Error
			if errors.As(err, &pqErr) && pqErr.Code == "23503" {
				return nil, fmt.Errorf("%w: inserting inventory request (constraint: %s): %v", ErrDatabaseError, pqErr.Constraint, err)
			}
			return nil, fmt.Errorf("%w: inserting inventory request: %v", ErrDatabaseError, err)
		}
		inserted = append(inserted, req)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("%w: committing batch insert: %v", ErrDatabaseError, err)
	}
	return inserted, nil
}

// UpdateRequest applies a partial update to one request. Nil patch fields are
// left untouched; an empty Notes string stores NULL.
func (r *requestRepository) UpdateRequest(requestID int64, patch models.RequestPatch, updatedAt time.Time) (*models.InventoryRequest, error) {
	var sets []string
	var args []interface{}
	argCounter := 1

	if patch.PendingStatus != nil {
		sets = append(sets, fmt.Sprintf("pending_status = $%d", argCounter))
		args = append(args, *patch.PendingStatus)
		argCounter++
	}
	if patch.Flagged != nil {
		sets = append(sets, fmt.Sprintf("flagged = $%d", argCounter))
		args = append(args, *patch.Flagged)
		argCounter++
	}
	if patch.Notes != nil {
		sets = append(sets, fmt.Sprintf("notes = $%d", argCounter))
		args = append(args, sql.NullString{String: *patch.Notes, Valid: *patch.Notes != ""})
		argCounter++
	}

	sets = append(sets, fmt.Sprintf("updated_at = $%d", argCounter))
	args = append(args, updatedAt)
	argCounter++

	query := fmt.Sprintf("UPDATE inventory_requests SET %s WHERE id = $%d",
		strings.Join(sets, ", "), argCounter)
	args = append(args, requestID)

	result, err := r.db.Exec(query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: updating inventory request ID %d: %v", ErrDatabaseError, requestID, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("%w: getting rows affected for request update ID %d: %v", ErrDatabaseError, requestID, err)
	}
	if rowsAffected == 0 {
		return nil, ErrNotFound
	}
	return r.GetRequestByID(requestID)
}

func scanRequest(row rowScanner) (*models.InventoryRequest, error) {
	req := &models.InventoryRequest{}
	var timeline, notes sql.NullString

	err := row.Scan(
		&req.ID, &req.RestaurantID, &req.ItemID, &req.Quantity, &req.Unit, &req.CostPerUnit,
		&timeline, &notes, &req.Status, &req.PendingStatus, &req.Flagged,
		&req.CreatedAt, &req.UpdatedAt,
		&req.ItemName,
	)
	if err != nil {
		return nil, err
	}
	if timeline.Valid {
		t := timeline.String
		req.Timeline = &t
	}
	if notes.Valid {
		n := notes.String
		req.Notes = &n
	}
	return req, nil
}
