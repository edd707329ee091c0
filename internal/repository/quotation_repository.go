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

const defaultQuotationLimit = 50

type quotationRepository struct {
	q    *db.Queries
	pool *pgxpool.Pool
}

func NewQuotation(pool *pgxpool.Pool) port.QuotationRepository {
	return &quotationRepository{
		q:    db.New(pool),
		pool: pool,
	}
}

func NewQuotationWithTx(tx pgx.Tx) port.QuotationRepository {
	return &quotationRepository{
		q:    db.New(tx),
		pool: nil, // use provided transaction instead
	}
}

// CreateQuotation stores the header and all items atomically.
func (r *quotationRepository) CreateQuotation(ctx context.Context, quotation domain.Quotation) (domain.Quotation, error) {
	if quotation.CompanyID == uuid.Nil {
		return domain.Quotation{}, fmt.Errorf("companyID is empty")
	}
	if len(quotation.Items) == 0 {
		return domain.Quotation{}, fmt.Errorf("quotation has no items")
	}

	return withTx(ctx, r.pool, r.q, func(q *db.Queries) (domain.Quotation, error) {
		header, err := q.CreateQuotation(ctx, db.CreateQuotationParams{
			CompanyID:   quotation.CompanyID,
			CreatedBy:   quotation.CreatedBy,
			TotalSqft:   quotation.TotalSqft,
			TotalAmount: quotation.TotalAmount.Amount,
			Currency:    quotation.TotalAmount.Currency.String(),
		})
		if err != nil {
			return domain.Quotation{}, mapError("q.CreateQuotation", err)
		}

		items := make([]db.QuotationItem, 0, len(quotation.Items))
		for i, item := range quotation.Items {
			row, err := q.CreateQuotationItem(ctx, db.CreateQuotationItemParams{
				QuotationID:  header.ID,
				Position:     int32(i),
				TileID:       item.TileID,
				TileName:     item.TileName,
				QuantitySqft: item.QuantitySqft,
				PricePerSqft: item.PricePerSqft,
				TotalAmount:  item.TotalAmount,
			})
			if err != nil {
				return domain.Quotation{}, mapError("q.CreateQuotationItem", err)
			}
			items = append(items, row)
		}

		result, err := mapQuotationToDomain(header, items)
		if err != nil {
			return domain.Quotation{}, fmt.Errorf("mapQuotationToDomain: %w", err)
		}

		return result, nil
	})
}

func (r *quotationRepository) GetQuotation(ctx context.Context, companyID, quotationID uuid.UUID) (domain.Quotation, error) {
	if companyID == uuid.Nil {
		return domain.Quotation{}, fmt.Errorf("companyID is empty")
	}

	header, err := r.q.GetQuotation(ctx, db.GetQuotationParams{CompanyID: companyID, ID: quotationID})
	if err != nil {
		return domain.Quotation{}, mapError("q.GetQuotation", err)
	}

	items, err := r.q.ListQuotationItems(ctx, header.ID)
	if err != nil {
		return domain.Quotation{}, fmt.Errorf("q.ListQuotationItems: %w", err)
	}

	result, err := mapQuotationToDomain(header, items)
	if err != nil {
		return domain.Quotation{}, fmt.Errorf("mapQuotationToDomain: %w", err)
	}

	return result, nil
}

// ListQuotations returns headers only, newest first.
func (r *quotationRepository) ListQuotations(ctx context.Context, companyID uuid.UUID, limit int) ([]domain.Quotation, error) {
	if companyID == uuid.Nil {
		return nil, fmt.Errorf("companyID is empty")
	}
	if limit <= 0 {
		limit = defaultQuotationLimit
	}

	rows, err := r.q.ListQuotations(ctx, db.ListQuotationsParams{CompanyID: companyID, Limit: int32(limit)})
	if err != nil {
		return nil, fmt.Errorf("q.ListQuotations: %w", err)
	}

	quotations := make([]domain.Quotation, 0, len(rows))
	for _, row := range rows {
		quotation, err := mapQuotationToDomain(row, nil)
		if err != nil {
			return nil, fmt.Errorf("mapQuotationToDomain: %w", err)
		}
		quotations = append(quotations, quotation)
	}

	return quotations, nil
}

func (r *quotationRepository) CountQuotations(ctx context.Context, companyID uuid.UUID) (int64, error) {
	if companyID == uuid.Nil {
		return 0, fmt.Errorf("companyID is empty")
	}

	count, err := r.q.CountQuotations(ctx, companyID)
	if err != nil {
		return 0, fmt.Errorf("q.CountQuotations: %w", err)
	}

	return count, nil
}

func mapQuotationToDomain(header db.Quotation, rows []db.QuotationItem) (domain.Quotation, error) {
	parsedCurrency, err := currency.ParseISO(header.Currency)
	if err != nil {
		return domain.Quotation{}, fmt.Errorf("currency[%s] is not valid: %w", header.Currency, err)
	}

	var items []domain.QuotationItem
	for _, row := range rows {
		items = append(items, domain.QuotationItem{
			ID:           row.ID,
			TileID:       row.TileID,
			TileName:     row.TileName,
			QuantitySqft: row.QuantitySqft,
			PricePerSqft: row.PricePerSqft,
			TotalAmount:  row.TotalAmount,
		})
	}

	return domain.Quotation{
		ID:          header.ID,
		CompanyID:   header.CompanyID,
		CreatedBy:   header.CreatedBy,
		TotalSqft:   header.TotalSqft,
		TotalAmount: domain.NewMoney(header.TotalAmount, parsedCurrency),
		Items:       items,
		CreatedAt:   header.CreatedAt,
	}, nil
}
