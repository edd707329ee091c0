package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/nikolayk812/tilequote/internal/domain"
	"github.com/nikolayk812/tilequote/internal/port"
	"go.uber.org/zap"
)

type QuotationService struct {
	quotations port.QuotationRepository
	companies  port.CompanyRepository
	store      port.CartStore
	logger     *zap.Logger
}

func NewQuotationService(
	quotations port.QuotationRepository,
	companies port.CompanyRepository,
	store port.CartStore,
	logger *zap.Logger,
) *QuotationService {
	return &QuotationService{
		quotations: quotations,
		companies:  companies,
		store:      store,
		logger:     logger,
	}
}

// Checkout turns the session cart into a stored quotation priced in the company currency.
// The cart is cleared only after the quotation is stored.
func (s *QuotationService) Checkout(ctx context.Context, user domain.User, sessionID string) (domain.Quotation, error) {
	session := cartSession(user.CompanyID, sessionID)

	cart, err := s.store.Load(ctx, session)
	if err != nil {
		return domain.Quotation{}, fmt.Errorf("store.Load: %w", err)
	}
	if cart.IsEmpty() {
		return domain.Quotation{}, ErrEmptyCart
	}

	company, err := s.companies.GetCompany(ctx, user.CompanyID)
	if err != nil {
		return domain.Quotation{}, fmt.Errorf("companies.GetCompany: %w", err)
	}

	quotation := domain.NewQuotation(cart, company.ID, user.ID, company.Currency)

	saved, err := s.quotations.CreateQuotation(ctx, quotation)
	if err != nil {
		return domain.Quotation{}, fmt.Errorf("quotations.CreateQuotation: %w", err)
	}

	// the quotation is stored; a stale cart is only an inconvenience
	if err := s.store.Delete(ctx, session); err != nil {
		s.logger.Warn("failed to clear cart after checkout",
			zap.String("session", session),
			zap.Stringer("quotation_id", saved.ID),
			zap.Error(err))
	}

	s.logger.Info("quotation created",
		zap.Stringer("company_id", saved.CompanyID),
		zap.Stringer("quotation_id", saved.ID),
		zap.Int("items", len(saved.Items)),
		zap.Stringer("total", saved.TotalAmount))

	return saved, nil
}

func (s *QuotationService) Get(ctx context.Context, companyID, quotationID uuid.UUID) (domain.Quotation, error) {
	quotation, err := s.quotations.GetQuotation(ctx, companyID, quotationID)
	if err != nil {
		return domain.Quotation{}, fmt.Errorf("quotations.GetQuotation: %w", err)
	}

	return quotation, nil
}

func (s *QuotationService) List(ctx context.Context, companyID uuid.UUID, limit int) ([]domain.Quotation, error) {
	quotations, err := s.quotations.ListQuotations(ctx, companyID, limit)
	if err != nil {
		return nil, fmt.Errorf("quotations.ListQuotations: %w", err)
	}

	return quotations, nil
}
