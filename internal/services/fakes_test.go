package services

import (
	"sort"
	"time"

	"franchise_supply_backend/internal/models"
	"franchise_supply_backend/internal/repositories"

	"github.com/shopspring/decimal"
)

// In-memory repository fakes. They honor the same filter and error semantics
// as the SQL implementations so service behavior can be exercised without a
// database.

type fakeRequestRepo struct {
	requests  []models.InventoryRequest
	nextID    int64
	insertErr error
	updateErr error
	queryErr  error
}

func newFakeRequestRepo() *fakeRequestRepo {
	return &fakeRequestRepo{nextID: 1}
}

func (f *fakeRequestRepo) seed(req models.InventoryRequest) models.InventoryRequest {
	if req.ID == 0 {
		req.ID = f.nextID
	}
	if req.ID >= f.nextID {
		f.nextID = req.ID + 1
	}
	f.requests = append(f.requests, req)
	return req
}

func (f *fakeRequestRepo) GetRequests(filters models.RequestFilters) ([]models.InventoryRequest, error) {
	if f.queryErr != nil {
		return nil, f.queryErr
	}
	matched := []models.InventoryRequest{}
	for _, req := range f.requests {
		if filters.RestaurantID != nil && req.RestaurantID != *filters.RestaurantID {
			continue
		}
		if len(filters.Statuses) > 0 && !containsString(filters.Statuses, req.Status) {
			continue
		}
		if filters.PendingStatus != nil && req.PendingStatus != *filters.PendingStatus {
			continue
		}
		if filters.Flagged != nil && req.Flagged != *filters.Flagged {
			continue
		}
		matched = append(matched, req)
	}
	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].CreatedAt.After(matched[j].CreatedAt)
	})
	return matched, nil
}

func (f *fakeRequestRepo) GetRequestByID(requestID int64) (*models.InventoryRequest, error) {
	if f.queryErr != nil {
		return nil, f.queryErr
	}
	for _, req := range f.requests {
		if req.ID == requestID {
			r := req
			return &r, nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (f *fakeRequestRepo) InsertRequests(requests []models.InventoryRequest) ([]models.InventoryRequest, error) {
	if f.insertErr != nil {
		return nil, f.insertErr
	}
	inserted := make([]models.InventoryRequest, 0, len(requests))
	for _, req := range requests {
		req.ID = f.nextID
		f.nextID++
		f.requests = append(f.requests, req)
		inserted = append(inserted, req)
	}
	return inserted, nil
}

func (f *fakeRequestRepo) UpdateRequest(requestID int64, patch models.RequestPatch, updatedAt time.Time) (*models.InventoryRequest, error) {
	if f.updateErr != nil {
		return nil, f.updateErr
	}
	for i := range f.requests {
		if f.requests[i].ID != requestID {
			continue
		}
		if patch.PendingStatus != nil {
			f.requests[i].PendingStatus = *patch.PendingStatus
		}
		if patch.Flagged != nil {
			f.requests[i].Flagged = *patch.Flagged
		}
		if patch.Notes != nil {
			if *patch.Notes == "" {
				f.requests[i].Notes = nil
			} else {
				n := *patch.Notes
				f.requests[i].Notes = &n
			}
		}
		f.requests[i].UpdatedAt = updatedAt
		r := f.requests[i]
		return &r, nil
	}
	return nil, repositories.ErrNotFound
}

type fakeItemRepo struct {
	items map[int64]models.Item
}

func newFakeItemRepo(items ...models.Item) *fakeItemRepo {
	f := &fakeItemRepo{items: map[int64]models.Item{}}
	for _, item := range items {
		f.items[item.ID] = item
	}
	return f
}

func (f *fakeItemRepo) GetItems(search string) ([]models.Item, error) {
	items := []models.Item{}
	for _, item := range f.items {
		items = append(items, item)
	}
	sort.Slice(items, func(i, j int) bool { return items[i].Name < items[j].Name })
	return items, nil
}

func (f *fakeItemRepo) GetItemByID(itemID int64) (*models.Item, error) {
	item, ok := f.items[itemID]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	return &item, nil
}

type fakeRestaurantRepo struct {
	restaurants map[int64]models.Restaurant
}

func newFakeRestaurantRepo(restaurants ...models.Restaurant) *fakeRestaurantRepo {
	f := &fakeRestaurantRepo{restaurants: map[int64]models.Restaurant{}}
	for _, r := range restaurants {
		f.restaurants[r.ID] = r
	}
	return f
}

func (f *fakeRestaurantRepo) GetRestaurantByID(restaurantID int64) (*models.Restaurant, error) {
	r, ok := f.restaurants[restaurantID]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	return &r, nil
}

func containsString(values []string, value string) bool {
	for _, v := range values {
		if v == value {
			return true
		}
	}
	return false
}

func dec(value string) decimal.Decimal {
	return decimal.RequireFromString(value)
}

// Interface compliance checks.
var (
	_ repositories.RequestRepository    = (*fakeRequestRepo)(nil)
	_ repositories.ItemRepository       = (*fakeItemRepo)(nil)
	_ repositories.RestaurantRepository = (*fakeRestaurantRepo)(nil)
)
