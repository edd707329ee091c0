package http

import (
	"time"

	"github.com/google/uuid"
	"github.com/nikolayk812/tilequote/internal/domain"
	"github.com/shopspring/decimal"
)

type TileRequestDTO struct {
	Name         string          `json:"name"`
	Brand        string          `json:"brand"`
	Size         string          `json:"size"`
	Category     string          `json:"category"`
	PricePerSqft decimal.Decimal `json:"price_per_sqft"`
	StockSqft    decimal.Decimal `json:"stock_sqft"`
	ImageURL     string          `json:"image_url"`
}

func (d TileRequestDTO) toDomain(companyID, tileID uuid.UUID) domain.Tile {
	return domain.Tile{
		ID:           tileID,
		CompanyID:    companyID,
		Name:         d.Name,
		Brand:        d.Brand,
		Size:         d.Size,
		Category:     d.Category,
		PricePerSqft: d.PricePerSqft,
		StockSqft:    d.StockSqft,
		ImageURL:     d.ImageURL,
	}
}

type RegisterTileRequestDTO struct {
	Code         string  `json:"code"`
	Brand        string  `json:"brand"`
	Category     string  `json:"category"`
	ImageURL     string  `json:"image_url"`
	HeightMM     float64 `json:"height_mm"`
	WidthMM      float64 `json:"width_mm"`
	PiecesPerBox float64 `json:"pieces_per_box"`
	PricePerBox  float64 `json:"price_per_box"`
}

type RoomRequestDTO struct {
	LengthFt       float64  `json:"length_ft"`
	WidthFt        float64  `json:"width_ft"`
	WastagePercent *float64 `json:"wastage_percent"`
}

func (d RoomRequestDTO) toDomain() domain.RoomSize {
	wastage := float64(domain.DefaultWastagePercent)
	if d.WastagePercent != nil {
		wastage = *d.WastagePercent
	}
	return domain.RoomSize{
		LengthFt:       d.LengthFt,
		WidthFt:        d.WidthFt,
		WastagePercent: wastage,
	}
}

type AddItemRequestDTO struct {
	TileID       uuid.UUID       `json:"tile_id"`
	QuantitySqft decimal.Decimal `json:"quantity_sqft"`
}

type AddRoomRequestDTO struct {
	TileID uuid.UUID `json:"tile_id"`
	RoomRequestDTO
}

// UpdateQuantityRequestDTO requires quantity_sqft. Zero or less removes the line.
type UpdateQuantityRequestDTO struct {
	QuantitySqft *decimal.Decimal `json:"quantity_sqft"`
}

type SignUpRequestDTO struct {
	CompanyName string `json:"company_name"`
	Email       string `json:"email"`
	Currency    string `json:"currency"`
}

type AddWorkerRequestDTO struct {
	Email string      `json:"email"`
	Role  domain.Role `json:"role"`
}

type CartLineDTO struct {
	Tile         domain.Tile     `json:"tile"`
	QuantitySqft decimal.Decimal `json:"quantity_sqft"`
	LineTotal    decimal.Decimal `json:"line_total"`
}

type CartDTO struct {
	Lines       []CartLineDTO   `json:"lines"`
	TotalSqft   decimal.Decimal `json:"total_sqft"`
	TotalAmount decimal.Decimal `json:"total_amount"`
}

func toCartDTO(cart *domain.Cart) CartDTO {
	lines := cart.Lines()
	dto := CartDTO{
		Lines:       make([]CartLineDTO, 0, len(lines)),
		TotalSqft:   cart.TotalSqft(),
		TotalAmount: cart.TotalAmount(),
	}
	for _, l := range lines {
		dto.Lines = append(dto.Lines, CartLineDTO{
			Tile:         l.Tile,
			QuantitySqft: l.QuantitySqft,
			LineTotal:    l.LineTotal(),
		})
	}
	return dto
}

type RoomCartDTO struct {
	Cart     CartDTO             `json:"cart"`
	Estimate domain.RoomEstimate `json:"estimate"`
}

type QuotationItemDTO struct {
	TileID       uuid.UUID       `json:"tile_id"`
	TileName     string          `json:"tile_name"`
	QuantitySqft decimal.Decimal `json:"quantity_sqft"`
	PricePerSqft decimal.Decimal `json:"price_per_sqft"`
	TotalAmount  decimal.Decimal `json:"total_amount"`
}

type QuotationDTO struct {
	ID          uuid.UUID          `json:"id"`
	Reference   string             `json:"reference"`
	CreatedBy   uuid.UUID          `json:"created_by"`
	TotalSqft   decimal.Decimal    `json:"total_sqft"`
	TotalAmount decimal.Decimal    `json:"total_amount"`
	Currency    string             `json:"currency"`
	Items       []QuotationItemDTO `json:"items,omitempty"`
	CreatedAt   time.Time          `json:"created_at"`
}

func toQuotationDTO(q domain.Quotation) QuotationDTO {
	dto := QuotationDTO{
		ID:          q.ID,
		Reference:   q.Reference(),
		CreatedBy:   q.CreatedBy,
		TotalSqft:   q.TotalSqft,
		TotalAmount: q.TotalAmount.Amount,
		Currency:    q.TotalAmount.Currency.String(),
		CreatedAt:   q.CreatedAt,
	}
	for _, item := range q.Items {
		dto.Items = append(dto.Items, QuotationItemDTO{
			TileID:       item.TileID,
			TileName:     item.TileName,
			QuantitySqft: item.QuantitySqft,
			PricePerSqft: item.PricePerSqft,
			TotalAmount:  item.TotalAmount,
		})
	}
	return dto
}

func toQuotationDTOs(quotations []domain.Quotation) []QuotationDTO {
	dtos := make([]QuotationDTO, 0, len(quotations))
	for _, q := range quotations {
		dtos = append(dtos, toQuotationDTO(q))
	}
	return dtos
}

type UserDTO struct {
	ID        uuid.UUID   `json:"id"`
	Email     string      `json:"email"`
	Role      domain.Role `json:"role"`
	CreatedAt time.Time   `json:"created_at"`
}

func toUserDTO(u domain.User) UserDTO {
	return UserDTO{ID: u.ID, Email: u.Email, Role: u.Role, CreatedAt: u.CreatedAt}
}

type CompanyDTO struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	Currency string    `json:"currency"`
}

type SignUpDTO struct {
	Company CompanyDTO `json:"company"`
	Admin   UserDTO    `json:"admin"`
}

type DashboardDTO struct {
	TileCount        int64          `json:"tile_count"`
	QuotationCount   int64          `json:"quotation_count"`
	RecentTiles      []domain.Tile  `json:"recent_tiles"`
	RecentQuotations []QuotationDTO `json:"recent_quotations"`
}
