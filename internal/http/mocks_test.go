package http

import (
	"context"

	"github.com/google/uuid"
	"github.com/nikolayk812/tilequote/internal/domain"
	"github.com/nikolayk812/tilequote/internal/service"
	"github.com/shopspring/decimal"
)

type usersMock struct {
	users map[uuid.UUID]domain.User
	err   error
}

func (m usersMock) GetUser(_ context.Context, userID uuid.UUID) (domain.User, error) {
	if m.err != nil {
		return domain.User{}, m.err
	}
	user, ok := m.users[userID]
	if !ok {
		return domain.User{}, domain.ErrNotFound
	}
	return user, nil
}

type catalogMock struct {
	tile     domain.Tile
	page     service.TilePage
	err      error
	filter   domain.TileFilter
	created  domain.Tile
	register service.RegisterTileInput
}

func (m *catalogMock) ListTiles(_ context.Context, _ uuid.UUID, filter domain.TileFilter) (service.TilePage, error) {
	m.filter = filter
	return m.page, m.err
}

func (m *catalogMock) GetTile(_ context.Context, _, _ uuid.UUID) (domain.Tile, error) {
	return m.tile, m.err
}

func (m *catalogMock) CreateTile(_ context.Context, tile domain.Tile) (domain.Tile, error) {
	m.created = tile
	if m.err != nil {
		return domain.Tile{}, m.err
	}
	tile.ID = uuid.New()
	return tile, nil
}

func (m *catalogMock) RegisterTile(_ context.Context, companyID uuid.UUID, in service.RegisterTileInput) (domain.Tile, error) {
	m.register = in
	if m.err != nil {
		return domain.Tile{}, m.err
	}
	return domain.Tile{ID: uuid.New(), CompanyID: companyID, Name: in.Code}, nil
}

func (m *catalogMock) UpdateTile(_ context.Context, tile domain.Tile) (domain.Tile, error) {
	m.created = tile
	return tile, m.err
}

func (m *catalogMock) DeleteTile(_ context.Context, _, _ uuid.UUID) error {
	return m.err
}

func (m *catalogMock) Categories(_ context.Context, _ uuid.UUID) ([]string, error) {
	return []string{"Bathroom"}, m.err
}

type cartsMock struct {
	cart      *domain.Cart
	err       error
	sessionID string
	quantity  decimal.Decimal
	room      domain.RoomSize
}

func (m *cartsMock) Get(_ context.Context, _ uuid.UUID, sessionID string) (*domain.Cart, error) {
	m.sessionID = sessionID
	return m.cart, m.err
}

func (m *cartsMock) Add(_ context.Context, _ uuid.UUID, sessionID string, _ uuid.UUID, quantity decimal.Decimal) (*domain.Cart, error) {
	m.sessionID = sessionID
	m.quantity = quantity
	return m.cart, m.err
}

func (m *cartsMock) AddRoom(_ context.Context, _ uuid.UUID, sessionID string, _ uuid.UUID, room domain.RoomSize) (*domain.Cart, domain.RoomEstimate, error) {
	m.sessionID = sessionID
	m.room = room
	if m.err != nil {
		return nil, domain.RoomEstimate{}, m.err
	}
	estimate, err := room.Estimate()
	return m.cart, estimate, err
}

func (m *cartsMock) Update(_ context.Context, _ uuid.UUID, sessionID string, _ uuid.UUID, quantity decimal.Decimal) (*domain.Cart, error) {
	m.sessionID = sessionID
	m.quantity = quantity
	return m.cart, m.err
}

func (m *cartsMock) Remove(_ context.Context, _ uuid.UUID, sessionID string, _ uuid.UUID) (*domain.Cart, error) {
	m.sessionID = sessionID
	return m.cart, m.err
}

func (m *cartsMock) Clear(_ context.Context, _ uuid.UUID, sessionID string) error {
	m.sessionID = sessionID
	return m.err
}

type quotationsMock struct {
	quotation domain.Quotation
	err       error
	limit     int
}

func (m *quotationsMock) Checkout(_ context.Context, _ domain.User, _ string) (domain.Quotation, error) {
	return m.quotation, m.err
}

func (m *quotationsMock) Get(_ context.Context, _, _ uuid.UUID) (domain.Quotation, error) {
	return m.quotation, m.err
}

func (m *quotationsMock) List(_ context.Context, _ uuid.UUID, limit int) ([]domain.Quotation, error) {
	m.limit = limit
	if m.err != nil {
		return nil, m.err
	}
	return []domain.Quotation{m.quotation}, nil
}

type dashboardMock struct {
	summary service.Summary
	err     error
}

func (m dashboardMock) Summary(_ context.Context, _ uuid.UUID) (service.Summary, error) {
	return m.summary, m.err
}

type staffMock struct {
	err     error
	removed uuid.UUID
}

func (m *staffMock) SignUp(_ context.Context, in service.SignUpInput) (domain.Company, domain.User, error) {
	if m.err != nil {
		return domain.Company{}, domain.User{}, m.err
	}
	company := domain.Company{ID: uuid.New(), Name: in.CompanyName}
	return company, domain.User{ID: uuid.New(), CompanyID: company.ID, Email: in.Email, Role: domain.RoleAdmin}, nil
}

func (m *staffMock) ListWorkers(_ context.Context, companyID uuid.UUID) ([]domain.User, error) {
	return []domain.User{{ID: uuid.New(), CompanyID: companyID, Role: domain.RoleWorker}}, m.err
}

func (m *staffMock) AddWorker(_ context.Context, admin domain.User, email string, role domain.Role) (domain.User, error) {
	if m.err != nil {
		return domain.User{}, m.err
	}
	return domain.User{ID: uuid.New(), CompanyID: admin.CompanyID, Email: email, Role: role}, nil
}

func (m *staffMock) RemoveWorker(_ context.Context, _ domain.User, userID uuid.UUID) error {
	m.removed = userID
	return m.err
}
