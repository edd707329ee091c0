package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nikolayk812/tilequote/internal/db"
	"github.com/nikolayk812/tilequote/internal/domain"
	"github.com/nikolayk812/tilequote/internal/port"
)

type tileRepository struct {
	q *db.Queries
}

func NewTile(pool *pgxpool.Pool) port.TileRepository {
	return &tileRepository{q: db.New(pool)}
}

func NewTileWithTx(tx pgx.Tx) port.TileRepository {
	return &tileRepository{q: db.New(tx)}
}

func (r *tileRepository) CreateTile(ctx context.Context, tile domain.Tile) (domain.Tile, error) {
	if tile.CompanyID == uuid.Nil {
		return domain.Tile{}, fmt.Errorf("companyID is empty")
	}

	row, err := r.q.CreateTile(ctx, db.CreateTileParams{
		CompanyID:    tile.CompanyID,
		Name:         tile.Name,
		Brand:        tile.Brand,
		Size:         tile.Size,
		Category:     tile.Category,
		PricePerSqft: tile.PricePerSqft,
		StockSqft:    tile.StockSqft,
		ImageUrl:     nullableString(tile.ImageURL),
	})
	if err != nil {
		return domain.Tile{}, mapError("q.CreateTile", err)
	}

	return mapTileToDomain(row), nil
}

func (r *tileRepository) UpdateTile(ctx context.Context, tile domain.Tile) (domain.Tile, error) {
	if tile.CompanyID == uuid.Nil {
		return domain.Tile{}, fmt.Errorf("companyID is empty")
	}

	row, err := r.q.UpdateTile(ctx, db.UpdateTileParams{
		CompanyID:    tile.CompanyID,
		ID:           tile.ID,
		Name:         tile.Name,
		Brand:        tile.Brand,
		Size:         tile.Size,
		Category:     tile.Category,
		PricePerSqft: tile.PricePerSqft,
		StockSqft:    tile.StockSqft,
		ImageUrl:     nullableString(tile.ImageURL),
	})
	if err != nil {
		return domain.Tile{}, mapError("q.UpdateTile", err)
	}

	return mapTileToDomain(row), nil
}

func (r *tileRepository) GetTile(ctx context.Context, companyID, tileID uuid.UUID) (domain.Tile, error) {
	if companyID == uuid.Nil {
		return domain.Tile{}, fmt.Errorf("companyID is empty")
	}

	row, err := r.q.GetTile(ctx, db.GetTileParams{CompanyID: companyID, ID: tileID})
	if err != nil {
		return domain.Tile{}, mapError("q.GetTile", err)
	}

	return mapTileToDomain(row), nil
}

func (r *tileRepository) ListTiles(ctx context.Context, companyID uuid.UUID, filter domain.TileFilter) ([]domain.Tile, int64, error) {
	if companyID == uuid.Nil {
		return nil, 0, fmt.Errorf("companyID is empty")
	}

	filter = filter.Normalize()
	pattern := likePattern(filter.Search)

	total, err := r.q.CountFilteredTiles(ctx, db.CountFilteredTilesParams{
		CompanyID: companyID,
		Category:  filter.Category,
		Pattern:   pattern,
	})
	if err != nil {
		return nil, 0, fmt.Errorf("q.CountFilteredTiles: %w", err)
	}

	rows, err := r.q.ListTiles(ctx, db.ListTilesParams{
		CompanyID: companyID,
		Category:  filter.Category,
		Pattern:   pattern,
		Limit:     int32(filter.Limit),
		Offset:    int32(filter.Offset),
	})
	if err != nil {
		return nil, 0, fmt.Errorf("q.ListTiles: %w", err)
	}

	tiles := make([]domain.Tile, 0, len(rows))
	for _, row := range rows {
		tiles = append(tiles, mapTileToDomain(row))
	}

	return tiles, total, nil
}

func (r *tileRepository) ListCategories(ctx context.Context, companyID uuid.UUID) ([]string, error) {
	if companyID == uuid.Nil {
		return nil, fmt.Errorf("companyID is empty")
	}

	categories, err := r.q.ListCategories(ctx, companyID)
	if err != nil {
		return nil, fmt.Errorf("q.ListCategories: %w", err)
	}

	return categories, nil
}

func (r *tileRepository) CountTiles(ctx context.Context, companyID uuid.UUID) (int64, error) {
	if companyID == uuid.Nil {
		return 0, fmt.Errorf("companyID is empty")
	}

	count, err := r.q.CountFilteredTiles(ctx, db.CountFilteredTilesParams{CompanyID: companyID})
	if err != nil {
		return 0, fmt.Errorf("q.CountFilteredTiles: %w", err)
	}

	return count, nil
}

func (r *tileRepository) DeleteTile(ctx context.Context, companyID, tileID uuid.UUID) (bool, error) {
	if companyID == uuid.Nil {
		return false, fmt.Errorf("companyID is empty")
	}

	rowsAffected, err := r.q.DeleteTile(ctx, db.DeleteTileParams{CompanyID: companyID, ID: tileID})
	if err != nil {
		return false, fmt.Errorf("q.DeleteTile: %w", err)
	}

	return rowsAffected > 0, nil
}

func mapTileToDomain(row db.Tile) domain.Tile {
	var imageURL string
	if row.ImageUrl != nil {
		imageURL = *row.ImageUrl
	}

	return domain.Tile{
		ID:           row.ID,
		CompanyID:    row.CompanyID,
		Name:         row.Name,
		Brand:        row.Brand,
		Size:         row.Size,
		Category:     row.Category,
		PricePerSqft: row.PricePerSqft,
		StockSqft:    row.StockSqft,
		ImageURL:     imageURL,
		CreatedAt:    row.CreatedAt,
		UpdatedAt:    row.UpdatedAt,
	}
}

// likePattern wraps search for ILIKE, escaping the wildcard characters it contains.
// An empty search yields an empty pattern, which disables the condition.
func likePattern(search string) string {
	search = strings.TrimSpace(search)
	if search == "" {
		return ""
	}

	escaped := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(search)
	return "%" + escaped + "%"
}

func nullableString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
