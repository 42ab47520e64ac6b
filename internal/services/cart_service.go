package services

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"franchise_supply_backend/internal/models"
	"franchise_supply_backend/internal/repositories"
	"franchise_supply_backend/pkg/utils"

	"github.com/shopspring/decimal"
)

// Custom Errors
var (
	ErrValidation         = errors.New("validation error") // Generic validation error
	ErrRestaurantNotFound = errors.New("restaurant not found")
)

// CartService accumulates draft supply selections per restaurant and turns
// them into inventory requests. Submission is two-phase: the first call only
// moves the cart into a confirming state so staff get a chance to review a
// multi-item order before it is persisted.
type CartService interface {
	GetCart(restaurantID int64) *models.CartView
	AddItem(restaurantID, itemID int64, quantity int) (*models.CartView, error)
	UpdateQuantity(restaurantID, itemID int64, quantity int) (*models.CartView, error)
	SetLineNote(restaurantID, itemID int64, note string) (*models.CartView, error)
	RemoveItem(restaurantID, itemID int64) (*models.CartView, error)
	SubmitOrder(restaurantID int64, timeline string) (*models.SubmitResult, error)
}

// cart holds one restaurant's draft lines in insertion order. Carts of
// different restaurants share nothing beyond the map they live in.
type cart struct {
	lines      []models.CartLine
	confirming bool
}

func (c *cart) findLine(itemID int64) int {
	for i := range c.lines {
		if c.lines[i].ItemID == itemID {
			return i
		}
	}
	return -1
}

type cartService struct {
	mu             sync.Mutex
	carts          map[int64]*cart
	itemRepo       repositories.ItemRepository
	restaurantRepo repositories.RestaurantRepository
	requestRepo    repositories.RequestRepository
}

// NewCartService creates a new instance of CartService.
func NewCartService(
	ir repositories.ItemRepository,
	rr repositories.RestaurantRepository,
	reqr repositories.RequestRepository,
) CartService {
	return &cartService{
		carts:          make(map[int64]*cart),
		itemRepo:       ir,
		restaurantRepo: rr,
		requestRepo:    reqr,
	}
}

func (s *cartService) GetCart(restaurantID int64) *models.CartView {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.view(s.cartFor(restaurantID))
}

// AddItem puts an item into the cart, snapshotting its name, unit and cost at
// add time. Adding an item already in the cart replaces that line's quantity
// instead of creating a second line.
func (s *cartService) AddItem(restaurantID, itemID int64, quantity int) (*models.CartView, error) {
	if quantity < 1 {
		return nil, fmt.Errorf("%w: quantity must be at least 1", ErrValidation)
	}

	item, err := s.itemRepo.GetItemByID(itemID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, fmt.Errorf("%w: item ID %d", ErrItemNotFound, itemID)
		}
		return nil, fmt.Errorf("failed to fetch item %d: %w", itemID, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	c := s.cartFor(restaurantID)
	if i := c.findLine(itemID); i >= 0 {
		c.lines[i].Quantity = quantity
	} else {
		c.lines = append(c.lines, models.CartLine{
			ItemID:      item.ID,
			Name:        item.Name,
			Quantity:    quantity,
			Unit:        item.Unit,
			CostPerUnit: item.CostPerUnit,
		})
	}
	c.confirming = false
	return s.view(c), nil
}

func (s *cartService) UpdateQuantity(restaurantID, itemID int64, quantity int) (*models.CartView, error) {
	if quantity < 1 {
		return nil, fmt.Errorf("%w: quantity must be at least 1", ErrValidation)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	c := s.cartFor(restaurantID)
	i := c.findLine(itemID)
	if i < 0 {
		return nil, fmt.Errorf("%w: item ID %d is not in the cart", ErrItemNotFound, itemID)
	}
	c.lines[i].Quantity = quantity
	c.confirming = false
	return s.view(c), nil
}

func (s *cartService) SetLineNote(restaurantID, itemID int64, note string) (*models.CartView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c := s.cartFor(restaurantID)
	i := c.findLine(itemID)
	if i < 0 {
		return nil, fmt.Errorf("%w: item ID %d is not in the cart", ErrItemNotFound, itemID)
	}
	c.lines[i].Notes = note
	c.confirming = false
	return s.view(c), nil
}

func (s *cartService) RemoveItem(restaurantID, itemID int64) (*models.CartView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c := s.cartFor(restaurantID)
	i := c.findLine(itemID)
	if i < 0 {
		return nil, fmt.Errorf("%w: item ID %d is not in the cart", ErrItemNotFound, itemID)
	}
	c.lines = append(c.lines[:i], c.lines[i+1:]...)
	c.confirming = false
	return s.view(c), nil
}

// SubmitOrder turns the cart into inventory requests. The first call flips
// the cart to confirming and persists nothing; the second call inserts every
// line as one request row, all-or-nothing. If the store rejects the batch the
// cart keeps all its lines (and stays confirming) so staff can retry without
// re-entering anything.
func (s *cartService) SubmitOrder(restaurantID int64, timeline string) (*models.SubmitResult, error) {
	_, err := s.restaurantRepo.GetRestaurantByID(restaurantID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, fmt.Errorf("%w: ID %d", ErrRestaurantNotFound, restaurantID)
		}
		return nil, fmt.Errorf("failed to fetch restaurant %d: %w", restaurantID, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	c := s.cartFor(restaurantID)
	if len(c.lines) == 0 {
		return nil, fmt.Errorf("%w: cart is empty", ErrValidation)
	}

	if !c.confirming {
		c.confirming = true
		return &models.SubmitResult{Confirming: true}, nil
	}

	now := time.Now().UTC()
	requests := make([]models.InventoryRequest, 0, len(c.lines))
	for _, line := range c.lines {
		requests = append(requests, models.InventoryRequest{
			RestaurantID:  restaurantID,
			ItemID:        line.ItemID,
			Quantity:      line.Quantity,
			Unit:          line.Unit,
			CostPerUnit:   line.CostPerUnit,
			Timeline:      utils.NewNullString(timeline),
			Notes:         utils.NewNullString(line.Notes),
			Status:        StatusPending,
			PendingStatus: PendingStatusNotConfirmed,
			Flagged:       false,
			CreatedAt:     now,
			UpdatedAt:     now,
		})
	}

	inserted, err := s.requestRepo.InsertRequests(requests)
	if err != nil {
		return nil, fmt.Errorf("failed to submit order: %w", err)
	}

	delete(s.carts, restaurantID)
	return &models.SubmitResult{Requests: inserted}, nil
}

// cartFor must be called with s.mu held.
func (s *cartService) cartFor(restaurantID int64) *cart {
	c, ok := s.carts[restaurantID]
	if !ok {
		c = &cart{}
		s.carts[restaurantID] = c
	}
	return c
}

func (s *cartService) view(c *cart) *models.CartView {
	view := &models.CartView{
		Lines:      make([]models.CartLine, len(c.lines)),
		Subtotal:   decimal.Zero,
		Confirming: c.confirming,
	}
	for i, line := range c.lines {
		line.Amount = line.CostPerUnit.Mul(decimal.NewFromInt(int64(line.Quantity)))
		view.Lines[i] = line
		view.Subtotal = view.Subtotal.Add(line.Amount)
	}
	return view
}
