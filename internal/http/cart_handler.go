package http

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/nikolayk812/tilequote/internal/domain"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type CartService interface {
	Get(ctx context.Context, companyID uuid.UUID, sessionID string) (*domain.Cart, error)
	Add(ctx context.Context, companyID uuid.UUID, sessionID string, tileID uuid.UUID, quantity decimal.Decimal) (*domain.Cart, error)
	AddRoom(ctx context.Context, companyID uuid.UUID, sessionID string, tileID uuid.UUID, room domain.RoomSize) (*domain.Cart, domain.RoomEstimate, error)
	Update(ctx context.Context, companyID uuid.UUID, sessionID string, tileID uuid.UUID, quantity decimal.Decimal) (*domain.Cart, error)
	Remove(ctx context.Context, companyID uuid.UUID, sessionID string, tileID uuid.UUID) (*domain.Cart, error)
	Clear(ctx context.Context, companyID uuid.UUID, sessionID string) error
}

type CartHandler struct {
	carts  CartService
	logger *zap.Logger
}

func NewCartHandler(carts CartService, logger *zap.Logger) *CartHandler {
	return &CartHandler{
		carts:  carts,
		logger: logger,
	}
}

func (h *CartHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	user, _ := userFromContext(r.Context())

	cart, err := h.carts.Get(r.Context(), user.CompanyID, sessionID(r, user))
	if err != nil {
		respondServiceError(w, h.logger, err)
		return
	}

	respondJSON(w, http.StatusOK, toCartDTO(cart))
}

func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	user, _ := userFromContext(r.Context())

	var req AddItemRequestDTO
	if !decodeJSON(w, r, &req) {
		return
	}
	if req.TileID == uuid.Nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "tile_id is required")
		return
	}

	cart, err := h.carts.Add(r.Context(), user.CompanyID, sessionID(r, user), req.TileID, req.QuantitySqft)
	if err != nil {
		respondServiceError(w, h.logger, err)
		return
	}

	respondJSON(w, http.StatusCreated, toCartDTO(cart))
}

func (h *CartHandler) AddRoom(w http.ResponseWriter, r *http.Request) {
	user, _ := userFromContext(r.Context())

	var req AddRoomRequestDTO
	if !decodeJSON(w, r, &req) {
		return
	}
	if req.TileID == uuid.Nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "tile_id is required")
		return
	}

	cart, estimate, err := h.carts.AddRoom(r.Context(), user.CompanyID, sessionID(r, user), req.TileID, req.RoomRequestDTO.toDomain())
	if err != nil {
		respondServiceError(w, h.logger, err)
		return
	}

	respondJSON(w, http.StatusCreated, RoomCartDTO{Cart: toCartDTO(cart), Estimate: estimate})
}

func (h *CartHandler) UpdateQuantity(w http.ResponseWriter, r *http.Request) {
	user, _ := userFromContext(r.Context())

	tileID, ok := uuidParam(w, r, "tileID")
	if !ok {
		return
	}

	var req UpdateQuantityRequestDTO
	if !decodeJSON(w, r, &req) {
		return
	}
	if req.QuantitySqft == nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "quantity_sqft is required")
		return
	}

	cart, err := h.carts.Update(r.Context(), user.CompanyID, sessionID(r, user), tileID, *req.QuantitySqft)
	if err != nil {
		respondServiceError(w, h.logger, err)
		return
	}

	respondJSON(w, http.StatusOK, toCartDTO(cart))
}

func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	user, _ := userFromContext(r.Context())

	tileID, ok := uuidParam(w, r, "tileID")
	if !ok {
		return
	}

	cart, err := h.carts.Remove(r.Context(), user.CompanyID, sessionID(r, user), tileID)
	if err != nil {
		respondServiceError(w, h.logger, err)
		return
	}

	respondJSON(w, http.StatusOK, toCartDTO(cart))
}

func (h *CartHandler) ClearCart(w http.ResponseWriter, r *http.Request) {
	user, _ := userFromContext(r.Context())

	if err := h.carts.Clear(r.Context(), user.CompanyID, sessionID(r, user)); err != nil {
		respondServiceError(w, h.logger, err)
		return
	}

	respondJSON(w, http.StatusOK, toCartDTO(domain.NewCart()))
}
