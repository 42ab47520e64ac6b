package services

import (
	"errors"
	"fmt"
	"time"

	"franchise_supply_backend/internal/models"
	"franchise_supply_backend/internal/repositories"
)

var ErrItemNotFound = errors.New("catalog item not found")

// CatalogService exposes the read-only item catalog the marketplace page
// renders. No mutation: the catalog is owned by the admin collaborator.
type CatalogService interface {
	GetItems(search string) ([]models.Item, error)
	GetItemByID(itemID int64) (*models.Item, error)
}

type catalogService struct {
	itemRepo repositories.ItemRepository
}

// NewCatalogService creates a new instance of CatalogService.
func NewCatalogService(ir repositories.ItemRepository) CatalogService {
	return &catalogService{itemRepo: ir}
}

func (s *catalogService) GetItems(search string) ([]models.Item, error) {
	items, err := s.itemRepo.GetItems(search)
	if err != nil {
		return nil, fmt.Errorf("failed to get catalog items: %w", err)
	}
	return items, nil
}

func (s *catalogService) GetItemByID(itemID int64) (*models.Item, error) {
	item, err := s.itemRepo.GetItemByID(itemID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, fmt.Errorf("%w: ID %d", ErrItemNotFound, itemID)
		}
		return nil, fmt.Errorf("failed to get item by ID %d: %w", itemID, err)
	}
	return item, nil
}

// FormatCutOff renders an item's ordering cut-off as a human label, e.g.
// "Friday at 2:00 PM". Unparseable times fall back to the raw value.
func FormatCutOff(day, timeOfDay string) string {
	for _, layout := range []string{"15:04:05", "15:04"} {
		if t, err := time.Parse(layout, timeOfDay); err == nil {
			return fmt.Sprintf("%s at %s", day, t.Format("3:04 PM"))
		}
	}
	return fmt.Sprintf("%s at %s", day, timeOfDay)
}
