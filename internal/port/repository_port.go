package port

import (
	"context"

	"github.com/google/uuid"
	"github.com/nikolayk812/tilequote/internal/domain"
)

type TileRepository interface {
	CreateTile(ctx context.Context, tile domain.Tile) (domain.Tile, error)
	UpdateTile(ctx context.Context, tile domain.Tile) (domain.Tile, error)
	GetTile(ctx context.Context, companyID, tileID uuid.UUID) (domain.Tile, error)
	ListTiles(ctx context.Context, companyID uuid.UUID, filter domain.TileFilter) ([]domain.Tile, int64, error)
	ListCategories(ctx context.Context, companyID uuid.UUID) ([]string, error)
	CountTiles(ctx context.Context, companyID uuid.UUID) (int64, error)
	DeleteTile(ctx context.Context, companyID, tileID uuid.UUID) (bool, error)
}

type QuotationRepository interface {
	CreateQuotation(ctx context.Context, quotation domain.Quotation) (domain.Quotation, error)
	GetQuotation(ctx context.Context, companyID, quotationID uuid.UUID) (domain.Quotation, error)
	ListQuotations(ctx context.Context, companyID uuid.UUID, limit int) ([]domain.Quotation, error)
	CountQuotations(ctx context.Context, companyID uuid.UUID) (int64, error)
}

type CompanyRepository interface {
	CreateCompanyWithAdmin(ctx context.Context, company domain.Company, admin domain.User) (domain.Company, domain.User, error)
	GetCompany(ctx context.Context, companyID uuid.UUID) (domain.Company, error)
}

type UserRepository interface {
	GetUser(ctx context.Context, userID uuid.UUID) (domain.User, error)
	ListUsers(ctx context.Context, companyID uuid.UUID) ([]domain.User, error)
	CreateUser(ctx context.Context, user domain.User) (domain.User, error)
	DeleteUser(ctx context.Context, companyID, userID uuid.UUID) (bool, error)
}
