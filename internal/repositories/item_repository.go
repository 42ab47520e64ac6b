package repositories

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"franchise_supply_backend/internal/models"
)

// ItemRepository defines read access to the shared supply catalog.
// The dashboard treats the catalog as immutable.
type ItemRepository interface {
	GetItems(search string) ([]models.Item, error)
	GetItemByID(itemID int64) (*models.Item, error)
}

type itemRepository struct {
	db SQLExecutor
}

// NewItemRepository creates a new instance of ItemRepository.
func NewItemRepository(db *sql.DB) ItemRepository {
	return &itemRepository{db: db}
}

func (r *itemRepository) GetItems(search string) ([]models.Item, error) {
	items := []models.Item{}

	query := `SELECT id, name, item_description, unit, cost_per_unit,
	                 cut_off_day, cut_off_time, image_link, created_at
	          FROM items`
	var args []interface{}
	if term := strings.TrimSpace(search); term != "" {
		query += ` WHERE LOWER(name) LIKE $1`
		args = append(args, "%"+strings.ToLower(term)+"%")
	}
	query += ` ORDER BY name`

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: querying items: %v", ErrDatabaseError, err)
	}
	defer rows.Close()

	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanning item: %v", ErrDatabaseError, err)
		}
		items = append(items, *item)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterating item rows: %v", ErrDatabaseError, err)
	}
	return items, nil
}

func (r *itemRepository) GetItemByID(itemID int64) (*models.Item, error) {
	query := `SELECT id, name, item_description, unit, cost_per_unit,
	                 cut_off_day, cut_off_time, image_link, created_at
	          FROM items
	          WHERE id = $1`
	item, err := scanItem(r.db.QueryRow(query, itemID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("%w: getting item by ID %d: %v", ErrDatabaseError, itemID, err)
	}
	return item, nil
}

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanItem(row rowScanner) (*models.Item, error) {
	item := &models.Item{}
	var description, imageLink sql.NullString

	err := row.Scan(
		&item.ID, &item.Name, &description, &item.Unit, &item.CostPerUnit,
		&item.CutOffDay, &item.CutOffTime, &imageLink, &item.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	if description.Valid {
		d := description.String
		item.Description = &d
	}
	if imageLink.Valid {
		l := imageLink.String
		item.ImageLink = &l
	}
	return item, nil
}
