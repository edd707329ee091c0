package port

import (
	"context"

	"github.com/nikolayk812/tilequote/internal/domain"
)

// CartStore keeps the cart of a session between requests.
// Load returns an empty cart for an unknown session.
type CartStore interface {
	Load(ctx context.Context, sessionID string) (*domain.Cart, error)
	Save(ctx context.Context, sessionID string, cart *domain.Cart) error
	// Update applies fn to the stored cart and saves it without losing concurrent updates.
	Update(ctx context.Context, sessionID string, fn func(cart *domain.Cart) error) (*domain.Cart, error)
	Delete(ctx context.Context, sessionID string) error
}
