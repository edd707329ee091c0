package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/nikolayk812/tilequote/internal/domain"
	"github.com/nikolayk812/tilequote/internal/port"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

const defaultBrand = "Generic"

type CatalogService struct {
	tiles  port.TileRepository
	logger *zap.Logger
}

func NewCatalogService(tiles port.TileRepository, logger *zap.Logger) *CatalogService {
	return &CatalogService{
		tiles:  tiles,
		logger: logger,
	}
}

// RegisterTileInput describes a tile by its box packaging rather than its unit price.
type RegisterTileInput struct {
	Code      string
	Brand     string
	Category  string
	ImageURL  string
	Packaging domain.PackagingInput
}

type TilePage struct {
	Tiles []domain.Tile `json:"tiles"`
	Total int64         `json:"total"`
}

func (s *CatalogService) ListTiles(ctx context.Context, companyID uuid.UUID, filter domain.TileFilter) (TilePage, error) {
	tiles, total, err := s.tiles.ListTiles(ctx, companyID, filter)
	if err != nil {
		return TilePage{}, fmt.Errorf("tiles.ListTiles: %w", err)
	}

	return TilePage{Tiles: tiles, Total: total}, nil
}

func (s *CatalogService) GetTile(ctx context.Context, companyID, tileID uuid.UUID) (domain.Tile, error) {
	tile, err := s.tiles.GetTile(ctx, companyID, tileID)
	if err != nil {
		return domain.Tile{}, fmt.Errorf("tiles.GetTile: %w", err)
	}

	return tile, nil
}

func (s *CatalogService) CreateTile(ctx context.Context, tile domain.Tile) (domain.Tile, error) {
	if err := tile.Validate(); err != nil {
		return domain.Tile{}, err
	}

	created, err := s.tiles.CreateTile(ctx, tile)
	if err != nil {
		return domain.Tile{}, fmt.Errorf("tiles.CreateTile: %w", err)
	}

	s.logger.Info("tile created",
		zap.Stringer("company_id", created.CompanyID),
		zap.Stringer("tile_id", created.ID),
		zap.String("name", created.Name))

	return created, nil
}

// RegisterTile derives the per-square-foot price from the packaging and stores the tile.
// Nothing is stored when the input is invalid.
func (s *CatalogService) RegisterTile(ctx context.Context, companyID uuid.UUID, in RegisterTileInput) (domain.Tile, error) {
	code := strings.TrimSpace(in.Code)
	if code == "" {
		return domain.Tile{}, domain.NewValidationError("code", "is required")
	}

	price, err := domain.DerivePricePerSqft(in.Packaging)
	if err != nil {
		return domain.Tile{}, err
	}

	brand := strings.TrimSpace(in.Brand)
	if brand == "" {
		brand = defaultBrand
	}

	tile := domain.Tile{
		CompanyID:    companyID,
		Name:         code,
		Brand:        brand,
		Size:         in.Packaging.SizeLabel(),
		Category:     strings.TrimSpace(in.Category),
		PricePerSqft: price,
		StockSqft:    decimal.Zero,
		ImageURL:     in.ImageURL,
	}

	return s.CreateTile(ctx, tile)
}

func (s *CatalogService) UpdateTile(ctx context.Context, tile domain.Tile) (domain.Tile, error) {
	if err := tile.Validate(); err != nil {
		return domain.Tile{}, err
	}

	updated, err := s.tiles.UpdateTile(ctx, tile)
	if err != nil {
		return domain.Tile{}, fmt.Errorf("tiles.UpdateTile: %w", err)
	}

	return updated, nil
}

func (s *CatalogService) DeleteTile(ctx context.Context, companyID, tileID uuid.UUID) error {
	deleted, err := s.tiles.DeleteTile(ctx, companyID, tileID)
	if err != nil {
		return fmt.Errorf("tiles.DeleteTile: %w", err)
	}
	if !deleted {
		return fmt.Errorf("tile[%s]: %w", tileID, domain.ErrNotFound)
	}

	s.logger.Info("tile deleted", zap.Stringer("company_id", companyID), zap.Stringer("tile_id", tileID))

	return nil
}

func (s *CatalogService) Categories(ctx context.Context, companyID uuid.UUID) ([]string, error) {
	categories, err := s.tiles.ListCategories(ctx, companyID)
	if err != nil {
		return nil, fmt.Errorf("tiles.ListCategories: %w", err)
	}

	return categories, nil
}
