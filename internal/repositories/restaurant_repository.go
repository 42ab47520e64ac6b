package repositories

import (
	"database/sql"
	"errors"
	"fmt"

	"franchise_supply_backend/internal/models"
)

// RestaurantRepository defines read access to franchise locations. Name and
// location are always fetched fresh so a stale name never reaches an invoice.
type RestaurantRepository interface {
	GetRestaurantByID(restaurantID int64) (*models.Restaurant, error)
}

type restaurantRepository struct {
	db SQLExecutor
}

// NewRestaurantRepository creates a new instance of RestaurantRepository.
func NewRestaurantRepository(db *sql.DB) RestaurantRepository {
	return &restaurantRepository{db: db}
}

func (r *restaurantRepository) GetRestaurantByID(restaurantID int64) (*models.Restaurant, error) {
	restaurant := &models.Restaurant{}
	query := `SELECT id, name, location, created_at
	          FROM restaurants
	          WHERE id = $1`
	err := r.db.QueryRow(query, restaurantID).Scan(
		&restaurant.ID, &restaurant.Name, &restaurant.Location, &restaurant.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("%w: getting restaurant by ID %d: %v", ErrDatabaseError, restaurantID, err)
	}
	return restaurant, nil
}
