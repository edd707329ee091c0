package repository_test

import (
	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/uuid"
	"github.com/nikolayk812/tilequote/internal/domain"
	"github.com/nikolayk812/tilequote/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/currency"
)

func (suite *repositorySuite) TestCreateCompanyWithAdmin() {
	defer suite.deleteAll()

	t := suite.T()
	ctx := t.Context()

	adminID := uuid.New()
	email := gofakeit.Email()

	company, admin, err := suite.companies.CreateCompanyWithAdmin(ctx,
		domain.Company{Name: "Tile House", Currency: currency.INR},
		domain.User{ID: adminID, Email: email, Role: domain.RoleWorker},
	)
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, company.ID)
	assert.Equal(t, "Tile House", company.Name)
	assert.Equal(t, "INR", company.Currency.String())

	assert.Equal(t, adminID, admin.ID)
	assert.Equal(t, company.ID, admin.CompanyID)
	assert.Equal(t, domain.RoleAdmin, admin.Role, "sign-up always creates an admin")

	got, err := suite.companies.GetCompany(ctx, company.ID)
	require.NoError(t, err)
	assert.Equal(t, company.Name, got.Name)
	assert.Equal(t, "INR", got.Currency.String())

	gotUser, err := suite.users.GetUser(ctx, adminID)
	require.NoError(t, err)
	assert.Equal(t, email, gotUser.Email)
}

func (suite *repositorySuite) TestCreateCompanyWithAdmin_DuplicateEmail() {
	defer suite.deleteAll()

	t := suite.T()
	ctx := t.Context()

	_, admin := suite.createCompany()

	_, _, err := suite.companies.CreateCompanyWithAdmin(ctx,
		domain.Company{Name: gofakeit.Company(), Currency: currency.USD},
		domain.User{ID: uuid.New(), Email: admin.Email},
	)
	require.ErrorIs(t, err, repository.ErrDuplicate)

	// the company insert was rolled back with the user insert
	var companies int
	err = suite.pool.QueryRow(ctx, "SELECT COUNT(*) FROM companies").Scan(&companies)
	require.NoError(t, err)
	assert.Equal(t, 1, companies)
}

func (suite *repositorySuite) TestUsers() {
	defer suite.deleteAll()

	t := suite.T()
	ctx := t.Context()

	company, admin := suite.createCompany()
	other, _ := suite.createCompany()

	worker, err := suite.users.CreateUser(ctx, domain.User{
		ID:        uuid.New(),
		Email:     gofakeit.Email(),
		CompanyID: company.ID,
		Role:      domain.RoleWorker,
	})
	require.NoError(t, err)
	assert.Equal(t, domain.RoleWorker, worker.Role)

	_, err = suite.users.CreateUser(ctx, domain.User{
		ID:        uuid.New(),
		Email:     gofakeit.Email(),
		CompanyID: company.ID,
		Role:      "owner",
	})
	require.EqualError(t, err, "role[owner] is not valid")

	_, err = suite.users.CreateUser(ctx, domain.User{
		ID:        uuid.New(),
		Email:     worker.Email,
		CompanyID: company.ID,
		Role:      domain.RoleWorker,
	})
	require.ErrorIs(t, err, repository.ErrDuplicate)

	users, err := suite.users.ListUsers(ctx, company.ID)
	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.ElementsMatch(t, []uuid.UUID{admin.ID, worker.ID}, []uuid.UUID{users[0].ID, users[1].ID})

	// deleting through another tenant does nothing
	deleted, err := suite.users.DeleteUser(ctx, other.ID, worker.ID)
	require.NoError(t, err)
	assert.False(t, deleted)

	deleted, err = suite.users.DeleteUser(ctx, company.ID, worker.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	_, err = suite.users.GetUser(ctx, worker.ID)
	require.ErrorIs(t, err, repository.ErrNotFound)
}
