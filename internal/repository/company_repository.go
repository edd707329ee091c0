package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nikolayk812/tilequote/internal/db"
	"github.com/nikolayk812/tilequote/internal/domain"
	"github.com/nikolayk812/tilequote/internal/port"
	"golang.org/x/text/currency"
)

type companyRepository struct {
	q    *db.Queries
	pool *pgxpool.Pool
}

func NewCompany(pool *pgxpool.Pool) port.CompanyRepository {
	return &companyRepository{
		q:    db.New(pool),
		pool: pool,
	}
}

func NewCompanyWithTx(tx pgx.Tx) port.CompanyRepository {
	return &companyRepository{
		q:    db.New(tx),
		pool: nil,
	}
}

type companyWithAdmin struct {
	company domain.Company
	admin   domain.User
}

// CreateCompanyWithAdmin creates the tenant and its first admin in one transaction.
func (r *companyRepository) CreateCompanyWithAdmin(ctx context.Context, company domain.Company, admin domain.User) (domain.Company, domain.User, error) {
	if company.Name == "" {
		return domain.Company{}, domain.User{}, fmt.Errorf("company name is empty")
	}
	if admin.ID == uuid.Nil {
		return domain.Company{}, domain.User{}, fmt.Errorf("userID is empty")
	}

	result, err := withTx(ctx, r.pool, r.q, func(q *db.Queries) (companyWithAdmin, error) {
		companyRow, err := q.CreateCompany(ctx, db.CreateCompanyParams{
			Name:     company.Name,
			Currency: company.Currency.String(),
		})
		if err != nil {
			return companyWithAdmin{}, mapError("q.CreateCompany", err)
		}

		userRow, err := q.CreateUser(ctx, db.CreateUserParams{
			ID:        admin.ID,
			Email:     admin.Email,
			CompanyID: companyRow.ID,
			Role:      string(domain.RoleAdmin),
		})
		if err != nil {
			return companyWithAdmin{}, mapError("q.CreateUser", err)
		}

		mappedCompany, err := mapCompanyToDomain(companyRow)
		if err != nil {
			return companyWithAdmin{}, fmt.Errorf("mapCompanyToDomain: %w", err)
		}

		return companyWithAdmin{company: mappedCompany, admin: mapUserToDomain(userRow)}, nil
	})
	if err != nil {
		return domain.Company{}, domain.User{}, err
	}

	return result.company, result.admin, nil
}

func (r *companyRepository) GetCompany(ctx context.Context, companyID uuid.UUID) (domain.Company, error) {
	if companyID == uuid.Nil {
		return domain.Company{}, fmt.Errorf("companyID is empty")
	}

	row, err := r.q.GetCompany(ctx, companyID)
	if err != nil {
		return domain.Company{}, mapError("q.GetCompany", err)
	}

	company, err := mapCompanyToDomain(row)
	if err != nil {
		return domain.Company{}, fmt.Errorf("mapCompanyToDomain: %w", err)
	}

	return company, nil
}

func mapCompanyToDomain(row db.Company) (domain.Company, error) {
	parsedCurrency, err := currency.ParseISO(row.Currency)
	if err != nil {
		return domain.Company{}, fmt.Errorf("currency[%s] is not valid: %w", row.Currency, err)
	}

	return domain.Company{
		ID:        row.ID,
		Name:      row.Name,
		Currency:  parsedCurrency,
		CreatedAt: row.CreatedAt,
	}, nil
}
