package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/nikolayk812/tilequote/internal/domain"
	"github.com/nikolayk812/tilequote/internal/port"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type tileGetter interface {
	GetTile(ctx context.Context, companyID, tileID uuid.UUID) (domain.Tile, error)
}

// CartService applies cart operations to the cart stored for a session.
// Every operation loads, mutates and saves the cart as one store update.
type CartService struct {
	store   port.CartStore
	catalog tileGetter
	logger  *zap.Logger
}

func NewCartService(store port.CartStore, catalog tileGetter, logger *zap.Logger) *CartService {
	return &CartService{
		store:   store,
		catalog: catalog,
		logger:  logger,
	}
}

func (s *CartService) Get(ctx context.Context, companyID uuid.UUID, sessionID string) (*domain.Cart, error) {
	cart, err := s.store.Load(ctx, cartSession(companyID, sessionID))
	if err != nil {
		return nil, fmt.Errorf("store.Load: %w", err)
	}

	return cart, nil
}

// Add puts quantity square feet of the tile into the cart, priced from the catalog.
func (s *CartService) Add(ctx context.Context, companyID uuid.UUID, sessionID string, tileID uuid.UUID, quantity decimal.Decimal) (*domain.Cart, error) {
	if !quantity.IsPositive() {
		return nil, domain.NewValidationError("quantity_sqft", "must be positive")
	}

	tile, err := s.catalog.GetTile(ctx, companyID, tileID)
	if err != nil {
		return nil, fmt.Errorf("catalog.GetTile: %w", err)
	}

	return s.mutate(ctx, companyID, sessionID, func(cart *domain.Cart) error {
		return cart.AddItem(tile, quantity)
	})
}

// AddRoom adds the square footage needed to cover the room, wastage included.
func (s *CartService) AddRoom(ctx context.Context, companyID uuid.UUID, sessionID string, tileID uuid.UUID, room domain.RoomSize) (*domain.Cart, domain.RoomEstimate, error) {
	estimate, err := room.Estimate()
	if err != nil {
		return nil, domain.RoomEstimate{}, err
	}

	cart, err := s.Add(ctx, companyID, sessionID, tileID, estimate.TotalSqft)
	if err != nil {
		return nil, domain.RoomEstimate{}, err
	}

	return cart, estimate, nil
}

func (s *CartService) Update(ctx context.Context, companyID uuid.UUID, sessionID string, tileID uuid.UUID, quantity decimal.Decimal) (*domain.Cart, error) {
	return s.mutate(ctx, companyID, sessionID, func(cart *domain.Cart) error {
		cart.UpdateQuantity(tileID, quantity)
		return nil
	})
}

func (s *CartService) Remove(ctx context.Context, companyID uuid.UUID, sessionID string, tileID uuid.UUID) (*domain.Cart, error) {
	return s.mutate(ctx, companyID, sessionID, func(cart *domain.Cart) error {
		cart.RemoveItem(tileID)
		return nil
	})
}

func (s *CartService) Clear(ctx context.Context, companyID uuid.UUID, sessionID string) error {
	if err := s.store.Delete(ctx, cartSession(companyID, sessionID)); err != nil {
		return fmt.Errorf("store.Delete: %w", err)
	}

	return nil
}

func (s *CartService) mutate(ctx context.Context, companyID uuid.UUID, sessionID string, fn func(cart *domain.Cart) error) (*domain.Cart, error) {
	session := cartSession(companyID, sessionID)

	cart, err := s.store.Update(ctx, session, fn)
	if err != nil {
		return nil, fmt.Errorf("store.Update: %w", err)
	}

	s.logger.Debug("cart saved",
		zap.String("session", session),
		zap.Int("lines", cart.Len()),
		zap.Stringer("total_sqft", cart.TotalSqft()))

	return cart, nil
}

// cartSession scopes a session to its company so carts never mix tenants' tiles.
func cartSession(companyID uuid.UUID, sessionID string) string {
	return companyID.String() + ":" + sessionID
}
