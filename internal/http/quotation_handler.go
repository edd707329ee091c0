package http

import (
	"context"
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/nikolayk812/tilequote/internal/domain"
	"github.com/nikolayk812/tilequote/internal/service"
	"go.uber.org/zap"
)

type QuotationService interface {
	Checkout(ctx context.Context, user domain.User, sessionID string) (domain.Quotation, error)
	Get(ctx context.Context, companyID, quotationID uuid.UUID) (domain.Quotation, error)
	List(ctx context.Context, companyID uuid.UUID, limit int) ([]domain.Quotation, error)
}

type DashboardService interface {
	Summary(ctx context.Context, companyID uuid.UUID) (service.Summary, error)
}

type QuotationHandler struct {
	quotations QuotationService
	dashboard  DashboardService
	logger     *zap.Logger
}

func NewQuotationHandler(quotations QuotationService, dashboard DashboardService, logger *zap.Logger) *QuotationHandler {
	return &QuotationHandler{
		quotations: quotations,
		dashboard:  dashboard,
		logger:     logger,
	}
}

func (h *QuotationHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	user, _ := userFromContext(r.Context())

	quotation, err := h.quotations.Checkout(r.Context(), user, sessionID(r, user))
	if err != nil {
		respondServiceError(w, h.logger, err)
		return
	}

	respondJSON(w, http.StatusCreated, toQuotationDTO(quotation))
}

func (h *QuotationHandler) GetQuotation(w http.ResponseWriter, r *http.Request) {
	user, _ := userFromContext(r.Context())

	quotationID, ok := uuidParam(w, r, "id")
	if !ok {
		return
	}

	quotation, err := h.quotations.Get(r.Context(), user.CompanyID, quotationID)
	if err != nil {
		respondServiceError(w, h.logger, err)
		return
	}

	respondJSON(w, http.StatusOK, toQuotationDTO(quotation))
}

func (h *QuotationHandler) ListQuotations(w http.ResponseWriter, r *http.Request) {
	user, _ := userFromContext(r.Context())

	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	quotations, err := h.quotations.List(r.Context(), user.CompanyID, limit)
	if err != nil {
		respondServiceError(w, h.logger, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string][]QuotationDTO{"quotations": toQuotationDTOs(quotations)})
}

func (h *QuotationHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	user, _ := userFromContext(r.Context())

	summary, err := h.dashboard.Summary(r.Context(), user.CompanyID)
	if err != nil {
		respondServiceError(w, h.logger, err)
		return
	}

	respondJSON(w, http.StatusOK, DashboardDTO{
		TileCount:        summary.TileCount,
		QuotationCount:   summary.QuotationCount,
		RecentTiles:      summary.RecentTiles,
		RecentQuotations: toQuotationDTOs(summary.RecentQuotations),
	})
}
