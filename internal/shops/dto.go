package shops

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/mrtribble/brewlist/pkg/db/models"
)

// ShopDTO is the wire shape of a tracked shop. Field names match what
// the browser client reads, so they stay lowerCamel with shopID intact.
type ShopDTO struct {
	ShopID      int64     `json:"shopID"`
	ShopName    string    `json:"shopName"`
	Rating      float64   `json:"rating"`
	DateEntered time.Time `json:"dateEntered"`
	Favorited   bool      `json:"favorited"`
	Deleted     bool      `json:"deleted"`
}

// CreateShopDTO holds creation-time data for a new shop.
type CreateShopDTO struct {
	ShopName string
	Rating   float64
}

// FromModel maps a persisted shop into a DTO.
func FromModel(m *models.Shop) *ShopDTO {
	if m == nil {
		return nil
	}
	return &ShopDTO{
		ShopID:      m.ShopID,
		ShopName:    m.ShopName,
		Rating:      m.Rating.InexactFloat64(),
		DateEntered: m.DateEntered,
		Favorited:   m.Favorited,
		Deleted:     m.Deleted,
	}
}

// FromModels maps a result set into DTOs. Always returns a non-nil
// slice so an empty listing serializes as [] rather than null.
func FromModels(ms []models.Shop) []ShopDTO {
	dtos := make([]ShopDTO, 0, len(ms))
	for i := range ms {
		dtos = append(dtos, *FromModel(&ms[i]))
	}
	return dtos
}

// ToModel prepares the GORM model from creation DTO, supplying defaults.
func (c CreateShopDTO) ToModel() *models.Shop {
	return &models.Shop{
		ShopName:    c.ShopName,
		Rating:      decimal.NewFromFloat(c.Rating).Round(2),
		DateEntered: time.Now().UTC(),
		Favorited:   false,
		Deleted:     false,
	}
}
