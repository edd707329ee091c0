package http

import (
	"context"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/nikolayk812/tilequote/internal/domain"
	"github.com/nikolayk812/tilequote/internal/service"
	"go.uber.org/zap"
)

type CatalogService interface {
	ListTiles(ctx context.Context, companyID uuid.UUID, filter domain.TileFilter) (service.TilePage, error)
	GetTile(ctx context.Context, companyID, tileID uuid.UUID) (domain.Tile, error)
	CreateTile(ctx context.Context, tile domain.Tile) (domain.Tile, error)
	RegisterTile(ctx context.Context, companyID uuid.UUID, in service.RegisterTileInput) (domain.Tile, error)
	UpdateTile(ctx context.Context, tile domain.Tile) (domain.Tile, error)
	DeleteTile(ctx context.Context, companyID, tileID uuid.UUID) error
	Categories(ctx context.Context, companyID uuid.UUID) ([]string, error)
}

type TileHandler struct {
	catalog CatalogService
	logger  *zap.Logger
}

func NewTileHandler(catalog CatalogService, logger *zap.Logger) *TileHandler {
	return &TileHandler{
		catalog: catalog,
		logger:  logger,
	}
}

func (h *TileHandler) ListTiles(w http.ResponseWriter, r *http.Request) {
	user, _ := userFromContext(r.Context())

	query := r.URL.Query()
	filter := domain.TileFilter{
		Category: query.Get("category"),
		Search:   query.Get("q"),
	}
	// malformed paging values fall back to the defaults
	if l, err := strconv.Atoi(query.Get("limit")); err == nil {
		filter.Limit = l
	}
	if o, err := strconv.Atoi(query.Get("offset")); err == nil {
		filter.Offset = o
	}

	page, err := h.catalog.ListTiles(r.Context(), user.CompanyID, filter)
	if err != nil {
		respondServiceError(w, h.logger, err)
		return
	}

	respondJSON(w, http.StatusOK, page)
}

func (h *TileHandler) Categories(w http.ResponseWriter, r *http.Request) {
	user, _ := userFromContext(r.Context())

	categories, err := h.catalog.Categories(r.Context(), user.CompanyID)
	if err != nil {
		respondServiceError(w, h.logger, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string][]string{"categories": categories})
}

func (h *TileHandler) GetTile(w http.ResponseWriter, r *http.Request) {
	user, _ := userFromContext(r.Context())

	tileID, ok := uuidParam(w, r, "id")
	if !ok {
		return
	}

	tile, err := h.catalog.GetTile(r.Context(), user.CompanyID, tileID)
	if err != nil {
		respondServiceError(w, h.logger, err)
		return
	}

	respondJSON(w, http.StatusOK, tile)
}

func (h *TileHandler) CreateTile(w http.ResponseWriter, r *http.Request) {
	user, _ := userFromContext(r.Context())

	var req TileRequestDTO
	if !decodeJSON(w, r, &req) {
		return
	}

	tile, err := h.catalog.CreateTile(r.Context(), req.toDomain(user.CompanyID, uuid.Nil))
	if err != nil {
		respondServiceError(w, h.logger, err)
		return
	}

	respondJSON(w, http.StatusCreated, tile)
}

func (h *TileHandler) RegisterTile(w http.ResponseWriter, r *http.Request) {
	user, _ := userFromContext(r.Context())

	var req RegisterTileRequestDTO
	if !decodeJSON(w, r, &req) {
		return
	}

	tile, err := h.catalog.RegisterTile(r.Context(), user.CompanyID, service.RegisterTileInput{
		Code:     req.Code,
		Brand:    req.Brand,
		Category: req.Category,
		ImageURL: req.ImageURL,
		Packaging: domain.PackagingInput{
			HeightMM:     req.HeightMM,
			WidthMM:      req.WidthMM,
			PiecesPerBox: req.PiecesPerBox,
			PricePerBox:  req.PricePerBox,
		},
	})
	if err != nil {
		respondServiceError(w, h.logger, err)
		return
	}

	respondJSON(w, http.StatusCreated, tile)
}

func (h *TileHandler) UpdateTile(w http.ResponseWriter, r *http.Request) {
	user, _ := userFromContext(r.Context())

	tileID, ok := uuidParam(w, r, "id")
	if !ok {
		return
	}

	var req TileRequestDTO
	if !decodeJSON(w, r, &req) {
		return
	}

	tile, err := h.catalog.UpdateTile(r.Context(), req.toDomain(user.CompanyID, tileID))
	if err != nil {
		respondServiceError(w, h.logger, err)
		return
	}

	respondJSON(w, http.StatusOK, tile)
}

func (h *TileHandler) DeleteTile(w http.ResponseWriter, r *http.Request) {
	user, _ := userFromContext(r.Context())

	tileID, ok := uuidParam(w, r, "id")
	if !ok {
		return
	}

	if err := h.catalog.DeleteTile(r.Context(), user.CompanyID, tileID); err != nil {
		respondServiceError(w, h.logger, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// RoomCalculator estimates the square footage for a room without touching the cart.
func (h *TileHandler) RoomCalculator(w http.ResponseWriter, r *http.Request) {
	var req RoomRequestDTO
	if !decodeJSON(w, r, &req) {
		return
	}

	estimate, err := req.toDomain().Estimate()
	if err != nil {
		respondServiceError(w, h.logger, err)
		return
	}

	respondJSON(w, http.StatusOK, estimate)
}

func uuidParam(w http.ResponseWriter, r *http.Request, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, name))
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", name+" must be a UUID")
		return uuid.Nil, false
	}
	return id, true
}
