package repository_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/google/uuid"
	"github.com/nikolayk812/tilequote/internal/domain"
	"github.com/nikolayk812/tilequote/internal/repository"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *repositorySuite) TestCreateTile() {
	defer suite.deleteAll()

	company, _ := suite.createCompany()

	tests := []struct {
		name      string
		tile      domain.Tile
		wantError string
	}{
		{
			name: "create tile: ok",
			tile: randomTile(company.ID),
		},
		{
			name: "create tile without image: ok",
			tile: func() domain.Tile {
				tile := randomTile(company.ID)
				tile.ImageURL = ""
				return tile
			}(),
		},
		{
			name:      "create tile with empty company ID: error",
			tile:      randomTile(uuid.Nil),
			wantError: "companyID is empty",
		},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			t := suite.T()
			ctx := t.Context()

			created, err := suite.tiles.CreateTile(ctx, tt.tile)
			if tt.wantError != "" {
				require.EqualError(t, err, tt.wantError)
				return
			}
			require.NoError(t, err)
			assert.NotEqual(t, uuid.Nil, created.ID)

			got, err := suite.tiles.GetTile(ctx, company.ID, created.ID)
			require.NoError(t, err)
			assertTile(t, tt.tile, got)
		})
	}
}

func (suite *repositorySuite) TestUpdateTile() {
	defer suite.deleteAll()

	t := suite.T()
	ctx := t.Context()

	company, _ := suite.createCompany()
	tile := suite.createTile(company.ID)

	tile.Name = "TH007"
	tile.PricePerSqft = decimal.RequireFromString("3.23")
	tile.StockSqft = decimal.NewFromInt(250)
	tile.ImageURL = ""

	updated, err := suite.tiles.UpdateTile(ctx, tile)
	require.NoError(t, err)
	assertTile(t, tile, updated)
	assert.False(t, updated.UpdatedAt.Before(updated.CreatedAt))

	got, err := suite.tiles.GetTile(ctx, company.ID, tile.ID)
	require.NoError(t, err)
	assertTile(t, tile, got)

	// another company cannot see or update the tile
	other, _ := suite.createCompany()
	tile.CompanyID = other.ID
	_, err = suite.tiles.UpdateTile(ctx, tile)
	require.ErrorIs(t, err, repository.ErrNotFound)
}

func (suite *repositorySuite) TestGetTile_NotFound() {
	defer suite.deleteAll()

	t := suite.T()
	company, _ := suite.createCompany()

	_, err := suite.tiles.GetTile(t.Context(), company.ID, uuid.New())
	require.ErrorIs(t, err, repository.ErrNotFound)
}

func (suite *repositorySuite) TestListTiles() {
	defer suite.deleteAll()

	t := suite.T()
	ctx := t.Context()

	company, _ := suite.createCompany()
	other, _ := suite.createCompany()

	seed := []domain.Tile{
		{Name: "TH001", Brand: "Kajaria", Size: "600x1200mm", Category: "Bathroom"},
		{Name: "TH002", Brand: "Somany", Size: "600x600mm", Category: "Kitchen"},
		{Name: "MARBLE-X", Brand: "Kajaria", Size: "800x800mm", Category: "Living Room"},
		{Name: "100%_GRIP", Brand: "Orient", Size: "300x300mm", Category: "Bathroom"},
	}
	for _, tile := range seed {
		tile.CompanyID = company.ID
		tile.PricePerSqft = decimal.NewFromInt(2)
		_, err := suite.tiles.CreateTile(ctx, tile)
		require.NoError(t, err)
	}
	suite.createTile(other.ID)

	tests := []struct {
		name      string
		filter    domain.TileFilter
		wantNames []string
		wantTotal int64
	}{
		{
			name:      "all tiles newest first",
			filter:    domain.TileFilter{},
			wantNames: []string{"100%_GRIP", "MARBLE-X", "TH002", "TH001"},
			wantTotal: 4,
		},
		{
			name:      "by category",
			filter:    domain.TileFilter{Category: "Bathroom"},
			wantNames: []string{"100%_GRIP", "TH001"},
			wantTotal: 2,
		},
		{
			name:      "search brand case insensitive",
			filter:    domain.TileFilter{Search: "kajaria"},
			wantNames: []string{"MARBLE-X", "TH001"},
			wantTotal: 2,
		},
		{
			name:      "search size",
			filter:    domain.TileFilter{Search: "600x"},
			wantNames: []string{"TH002", "TH001"},
			wantTotal: 2,
		},
		{
			name:      "search treats wildcards literally",
			filter:    domain.TileFilter{Search: "%_"},
			wantNames: []string{"100%_GRIP"},
			wantTotal: 1,
		},
		{
			name:      "category and search",
			filter:    domain.TileFilter{Category: "Bathroom", Search: "th"},
			wantNames: []string{"TH001"},
			wantTotal: 1,
		},
		{
			name:      "paging keeps total",
			filter:    domain.TileFilter{Limit: 2, Offset: 1},
			wantNames: []string{"MARBLE-X", "TH002"},
			wantTotal: 4,
		},
		{
			name:      "no match",
			filter:    domain.TileFilter{Search: "granite"},
			wantNames: []string{},
			wantTotal: 0,
		},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			t := suite.T()

			tiles, total, err := suite.tiles.ListTiles(t.Context(), company.ID, tt.filter)
			require.NoError(t, err)

			names := make([]string, 0, len(tiles))
			for _, tile := range tiles {
				names = append(names, tile.Name)
			}
			assert.Equal(t, tt.wantNames, names)
			assert.Equal(t, tt.wantTotal, total)
		})
	}

	categories, err := suite.tiles.ListCategories(ctx, company.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"Bathroom", "Kitchen", "Living Room"}, categories)

	count, err := suite.tiles.CountTiles(ctx, company.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(4), count)
}

func (suite *repositorySuite) TestDeleteTile() {
	defer suite.deleteAll()

	t := suite.T()
	ctx := t.Context()

	company, _ := suite.createCompany()
	tile := suite.createTile(company.ID)

	deleted, err := suite.tiles.DeleteTile(ctx, company.ID, tile.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	deleted, err = suite.tiles.DeleteTile(ctx, company.ID, tile.ID)
	require.NoError(t, err)
	assert.False(t, deleted)

	_, err = suite.tiles.DeleteTile(ctx, uuid.Nil, tile.ID)
	require.EqualError(t, err, "companyID is empty")
}

func assertTile(t *testing.T, expected, actual domain.Tile) {
	t.Helper()

	opts := cmp.Options{
		cmpopts.IgnoreFields(domain.Tile{}, "ID", "CreatedAt", "UpdatedAt"),
		decimalComparer(),
	}

	diff := cmp.Diff(expected, actual, opts)
	assert.Empty(t, diff)

	assert.False(t, actual.CreatedAt.IsZero())
}
