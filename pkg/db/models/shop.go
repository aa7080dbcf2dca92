package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Shop is a single tracked coffee shop row. Rows are never hard-deleted
// through the API; Deleted flags them out of listings instead.
type Shop struct {
	ShopID      int64           `gorm:"column:ShopID;primaryKey;autoIncrement"`
	ShopName    string          `gorm:"column:ShopName;type:varchar(255);not null"`
	Rating      decimal.Decimal `gorm:"column:Rating;type:decimal(3,2);not null"`
	DateEntered time.Time       `gorm:"column:DateEntered;not null;autoCreateTime:false"`
	Favorited   bool            `gorm:"column:Favorited;not null"`
	Deleted     bool            `gorm:"column:Deleted;not null"`
}

func (Shop) TableName() string {
	return "shop"
}
