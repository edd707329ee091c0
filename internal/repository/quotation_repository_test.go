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
	"golang.org/x/text/currency"
)

func (suite *repositorySuite) TestCreateQuotation() {
	defer suite.deleteAll()

	t := suite.T()
	ctx := t.Context()

	company, admin := suite.createCompany()
	tileA := suite.createTile(company.ID)
	tileB := suite.createTile(company.ID)

	cart := domain.NewCart()
	require.NoError(t, cart.AddItem(tileA, decimal.NewFromInt(10)))
	require.NoError(t, cart.AddItem(tileB, decimal.RequireFromString("5.5")))
	require.NoError(t, cart.AddItem(tileA, decimal.NewFromInt(3)))

	quotation := domain.NewQuotation(cart, company.ID, admin.ID, currency.EUR)

	created, err := suite.quotations.CreateQuotation(ctx, quotation)
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, created.ID)
	require.Len(t, created.Items, 2)
	assertQuotation(t, quotation, created)

	got, err := suite.quotations.GetQuotation(ctx, company.ID, created.ID)
	require.NoError(t, err)
	assertQuotation(t, quotation, got)
	assert.Equal(t, tileA.ID, got.Items[0].TileID)
	assert.Equal(t, tileB.ID, got.Items[1].TileID)

	// items keep the price they were quoted at
	_, err = suite.tiles.DeleteTile(ctx, company.ID, tileA.ID)
	require.NoError(t, err)
	got, err = suite.quotations.GetQuotation(ctx, company.ID, created.ID)
	require.NoError(t, err)
	assertQuotation(t, quotation, got)
}

func (suite *repositorySuite) TestCreateQuotation_Errors() {
	defer suite.deleteAll()

	company, admin := suite.createCompany()
	tile := suite.createTile(company.ID)

	tests := []struct {
		name      string
		quotation func() domain.Quotation
		wantError string
	}{
		{
			name: "empty company ID: error",
			quotation: func() domain.Quotation {
				cart := domain.NewCart()
				_ = cart.AddItem(tile, decimal.NewFromInt(1))
				return domain.NewQuotation(cart, uuid.Nil, admin.ID, currency.USD)
			},
			wantError: "companyID is empty",
		},
		{
			name: "no items: error",
			quotation: func() domain.Quotation {
				return domain.NewQuotation(domain.NewCart(), company.ID, admin.ID, currency.USD)
			},
			wantError: "quotation has no items",
		},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			t := suite.T()

			_, err := suite.quotations.CreateQuotation(t.Context(), tt.quotation())
			require.EqualError(t, err, tt.wantError)
		})
	}

	count, err := suite.quotations.CountQuotations(suite.T().Context(), company.ID)
	suite.Require().NoError(err)
	suite.Equal(int64(0), count)
}

func (suite *repositorySuite) TestCreateQuotation_RollsBack() {
	defer suite.deleteAll()

	t := suite.T()
	ctx := t.Context()

	company, admin := suite.createCompany()
	tile := suite.createTile(company.ID)

	cart := domain.NewCart()
	require.NoError(t, cart.AddItem(tile, decimal.NewFromInt(2)))
	quotation := domain.NewQuotation(cart, company.ID, admin.ID, currency.USD)
	// price_per_sqft is NUMERIC(12,2), this overflows it after the header is written
	quotation.Items[0].PricePerSqft = decimal.RequireFromString("99999999999999")

	_, err := suite.quotations.CreateQuotation(ctx, quotation)
	require.Error(t, err)

	count, err := suite.quotations.CountQuotations(ctx, company.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)
}

func (suite *repositorySuite) TestListQuotations() {
	defer suite.deleteAll()

	t := suite.T()
	ctx := t.Context()

	company, admin := suite.createCompany()
	other, otherAdmin := suite.createCompany()
	tile := suite.createTile(company.ID)

	var ids []uuid.UUID
	for i := 1; i <= 3; i++ {
		cart := domain.NewCart()
		require.NoError(t, cart.AddItem(tile, decimal.NewFromInt(int64(i))))
		created, err := suite.quotations.CreateQuotation(ctx, domain.NewQuotation(cart, company.ID, admin.ID, currency.USD))
		require.NoError(t, err)
		ids = append(ids, created.ID)
	}

	otherCart := domain.NewCart()
	require.NoError(t, otherCart.AddItem(suite.createTile(other.ID), decimal.NewFromInt(1)))
	_, err := suite.quotations.CreateQuotation(ctx, domain.NewQuotation(otherCart, other.ID, otherAdmin.ID, currency.USD))
	require.NoError(t, err)

	list, err := suite.quotations.ListQuotations(ctx, company.ID, 2)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, ids[2], list[0].ID)
	assert.Equal(t, ids[1], list[1].ID)
	assert.Empty(t, list[0].Items)

	count, err := suite.quotations.CountQuotations(ctx, company.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(3), count)

	_, err = suite.quotations.GetQuotation(ctx, other.ID, ids[0])
	require.ErrorIs(t, err, repository.ErrNotFound)
}

func assertQuotation(t *testing.T, expected, actual domain.Quotation) {
	t.Helper()

	opts := cmp.Options{
		cmpopts.IgnoreFields(domain.Quotation{}, "ID", "CreatedAt"),
		cmpopts.IgnoreFields(domain.QuotationItem{}, "ID"),
		decimalComparer(),
		currencyComparer(),
	}

	diff := cmp.Diff(expected, actual, opts)
	assert.Empty(t, diff)

	assert.False(t, actual.CreatedAt.IsZero())
}
