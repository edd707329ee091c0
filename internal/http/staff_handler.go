package http

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/nikolayk812/tilequote/internal/domain"
	"github.com/nikolayk812/tilequote/internal/service"
	"go.uber.org/zap"
)

type StaffService interface {
	SignUp(ctx context.Context, in service.SignUpInput) (domain.Company, domain.User, error)
	ListWorkers(ctx context.Context, companyID uuid.UUID) ([]domain.User, error)
	AddWorker(ctx context.Context, admin domain.User, email string, role domain.Role) (domain.User, error)
	RemoveWorker(ctx context.Context, admin domain.User, userID uuid.UUID) error
}

type StaffHandler struct {
	staff  StaffService
	logger *zap.Logger
}

func NewStaffHandler(staff StaffService, logger *zap.Logger) *StaffHandler {
	return &StaffHandler{
		staff:  staff,
		logger: logger,
	}
}

func (h *StaffHandler) SignUp(w http.ResponseWriter, r *http.Request) {
	var req SignUpRequestDTO
	if !decodeJSON(w, r, &req) {
		return
	}

	company, admin, err := h.staff.SignUp(r.Context(), service.SignUpInput{
		CompanyName: req.CompanyName,
		Email:       req.Email,
		Currency:    req.Currency,
	})
	if err != nil {
		respondServiceError(w, h.logger, err)
		return
	}

	respondJSON(w, http.StatusCreated, SignUpDTO{
		Company: CompanyDTO{ID: company.ID, Name: company.Name, Currency: company.Currency.String()},
		Admin:   toUserDTO(admin),
	})
}

func (h *StaffHandler) ListWorkers(w http.ResponseWriter, r *http.Request) {
	user, _ := userFromContext(r.Context())

	users, err := h.staff.ListWorkers(r.Context(), user.CompanyID)
	if err != nil {
		respondServiceError(w, h.logger, err)
		return
	}

	dtos := make([]UserDTO, 0, len(users))
	for _, u := range users {
		dtos = append(dtos, toUserDTO(u))
	}

	respondJSON(w, http.StatusOK, map[string][]UserDTO{"workers": dtos})
}

func (h *StaffHandler) AddWorker(w http.ResponseWriter, r *http.Request) {
	admin, _ := userFromContext(r.Context())

	var req AddWorkerRequestDTO
	if !decodeJSON(w, r, &req) {
		return
	}

	user, err := h.staff.AddWorker(r.Context(), admin, req.Email, req.Role)
	if err != nil {
		respondServiceError(w, h.logger, err)
		return
	}

	respondJSON(w, http.StatusCreated, toUserDTO(user))
}

func (h *StaffHandler) RemoveWorker(w http.ResponseWriter, r *http.Request) {
	admin, _ := userFromContext(r.Context())

	userID, ok := uuidParam(w, r, "id")
	if !ok {
		return
	}

	if err := h.staff.RemoveWorker(r.Context(), admin, userID); err != nil {
		respondServiceError(w, h.logger, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
