package repository_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/nikolayk812/tilequote/internal/domain"
	"github.com/nikolayk812/tilequote/internal/repository"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/currency"
)

func (suite *repositorySuite) TestRepositoriesShareTransaction() {
	defer suite.deleteAll()

	tests := []struct {
		name      string
		commit    bool
		wantFound bool
	}{
		{name: "commit keeps all rows", commit: true, wantFound: true},
		{name: "rollback discards all rows", commit: false, wantFound: false},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			t := suite.T()
			ctx := t.Context()

			tx, err := suite.pool.Begin(ctx)
			require.NoError(t, err)
			defer func() { _ = tx.Rollback(ctx) }()

			company, admin, err := repository.NewCompanyWithTx(tx).CreateCompanyWithAdmin(ctx,
				domain.Company{Name: "Tile House", Currency: currency.USD},
				domain.User{ID: uuid.New(), Email: uuid.NewString() + "@example.com"},
			)
			require.NoError(t, err)

			tile, err := repository.NewTileWithTx(tx).CreateTile(ctx, randomTile(company.ID))
			require.NoError(t, err)

			cart := domain.NewCart()
			require.NoError(t, cart.AddItem(tile, decimal.NewFromInt(4)))

			quotation, err := repository.NewQuotationWithTx(tx).CreateQuotation(ctx,
				domain.NewQuotation(cart, company.ID, admin.ID, company.Currency))
			require.NoError(t, err)

			if tt.commit {
				require.NoError(t, tx.Commit(ctx))
			} else {
				require.NoError(t, tx.Rollback(ctx))
			}

			_, err = suite.companies.GetCompany(ctx, company.ID)
			assertFound(t, tt.wantFound, err)

			_, err = suite.tiles.GetTile(ctx, company.ID, tile.ID)
			assertFound(t, tt.wantFound, err)

			_, err = suite.quotations.GetQuotation(ctx, company.ID, quotation.ID)
			assertFound(t, tt.wantFound, err)
		})
	}
}

func assertFound(t *testing.T, wantFound bool, err error) {
	t.Helper()

	if wantFound {
		assert.NoError(t, err)
		return
	}
	assert.ErrorIs(t, err, repository.ErrNotFound)
}
