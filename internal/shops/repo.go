package shops

import (
	"context"

	"gorm.io/gorm"

	"github.com/mrtribble/brewlist/pkg/db"
	"github.com/mrtribble/brewlist/pkg/db/models"
	pkgerrors "github.com/mrtribble/brewlist/pkg/errors"
)

// Repository handles shop persistence.
type Repository struct {
	db *gorm.DB
}

// NewRepository binds a GORM DB to shop operations.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// List returns all non-deleted shops, best rated first.
func (r *Repository) List(ctx context.Context) ([]models.Shop, error) {
	var shops []models.Shop
	if err := r.db.WithContext(ctx).
		Where("Deleted = ?", false).
		Order("Rating DESC").
		Find(&shops).Error; err != nil {
		return nil, classify(err, "list shops")
	}
	return shops, nil
}

// Create persists a new shop row.
func (r *Repository) Create(ctx context.Context, dto CreateShopDTO) (*models.Shop, error) {
	shop := dto.ToModel()
	if err := r.db.WithContext(ctx).Create(shop).Error; err != nil {
		return nil, classify(err, "create shop")
	}
	return shop, nil
}

// FindActive loads a non-deleted shop by id.
func (r *Repository) FindActive(ctx context.Context, id int64) (*models.Shop, error) {
	var shop models.Shop
	if err := r.db.WithContext(ctx).
		Where("ShopID = ? AND Deleted = ?", id, false).
		First(&shop).Error; err != nil {
		return nil, classify(err, "find shop")
	}
	return &shop, nil
}

// SetFavorite stores the new favorited flag for a shop.
func (r *Repository) SetFavorite(ctx context.Context, id int64, favorited bool) error {
	res := r.db.WithContext(ctx).
		Model(&models.Shop{}).
		Where("ShopID = ?", id).
		Update("Favorited", favorited)
	if res.Error != nil {
		return classify(res.Error, "set favorite")
	}
	return nil
}

// SoftDelete flags a shop as deleted. Returns the number of rows
// touched: zero means the shop was absent or already deleted.
func (r *Repository) SoftDelete(ctx context.Context, id int64) (int64, error) {
	res := r.db.WithContext(ctx).
		Model(&models.Shop{}).
		Where("ShopID = ? AND Deleted = ?", id, false).
		Update("Deleted", true)
	if res.Error != nil {
		return 0, classify(res.Error, "soft delete shop")
	}
	return res.RowsAffected, nil
}

// missingTable is a variable so repository tests running on sqlite can
// classify their driver's missing-table error like the MySQL one.
var missingTable = db.IsMissingTable

// classify tags database failures the persistence layer can recognize.
// A missing shop table is its own condition so callers can surface the
// bootstrap hint instead of a generic dependency failure.
func classify(err error, op string) error {
	if missingTable(err) {
		return pkgerrors.Wrap(pkgerrors.CodeSchemaMissing, err, op)
	}
	return err
}
