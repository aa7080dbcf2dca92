package shops

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/mrtribble/brewlist/pkg/db/models"
	pkgerrors "github.com/mrtribble/brewlist/pkg/errors"
)

type shopRepository interface {
	List(ctx context.Context) ([]models.Shop, error)
	Create(ctx context.Context, dto CreateShopDTO) (*models.Shop, error)
	FindActive(ctx context.Context, id int64) (*models.Shop, error)
	SetFavorite(ctx context.Context, id int64, favorited bool) error
	SoftDelete(ctx context.Context, id int64) (int64, error)
}

// Service exposes shop operations.
type Service interface {
	List(ctx context.Context) ([]ShopDTO, error)
	Create(ctx context.Context, input CreateShopDTO) (*ShopDTO, error)
	ToggleFavorite(ctx context.Context, id int64) (bool, error)
	Delete(ctx context.Context, id int64) error
}

type service struct {
	repo shopRepository
}

// NewService builds a shop service. A nil repository is allowed: it
// produces a degraded service whose operations report NOT_CONFIGURED,
// matching a process started without a usable database.
func NewService(repo shopRepository) Service {
	return &service{repo: repo}
}

const maxRating = 5

func (s *service) List(ctx context.Context) ([]ShopDTO, error) {
	if s.repo == nil {
		return nil, pkgerrors.New(pkgerrors.CodeNotConfigured, "database not configured")
	}

	shops, err := s.repo.List(ctx)
	if err != nil {
		return nil, wrapRepoErr(err, "list shops")
	}
	return FromModels(shops), nil
}

func (s *service) Create(ctx context.Context, input CreateShopDTO) (*ShopDTO, error) {
	if s.repo == nil {
		return nil, pkgerrors.New(pkgerrors.CodeNotConfigured, "database not configured")
	}

	input.ShopName = strings.TrimSpace(input.ShopName)
	if input.ShopName == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "shopName is required")
	}
	if input.Rating < 0 || input.Rating > maxRating {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "rating must be between 0 and 5")
	}

	shop, err := s.repo.Create(ctx, input)
	if err != nil {
		return nil, wrapRepoErr(err, "create shop")
	}
	return FromModel(shop), nil
}

// ToggleFavorite reads the current flag and writes its inverse. Two
// concurrent toggles on the same shop can collapse into one; callers
// get the flag as this request left it either way.
func (s *service) ToggleFavorite(ctx context.Context, id int64) (bool, error) {
	if s.repo == nil {
		return false, pkgerrors.New(pkgerrors.CodeNotConfigured, "database not configured")
	}

	shop, err := s.repo.FindActive(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, pkgerrors.New(pkgerrors.CodeNotFound, "shop not found")
		}
		return false, wrapRepoErr(err, "load shop")
	}

	next := !shop.Favorited
	if err := s.repo.SetFavorite(ctx, id, next); err != nil {
		return false, wrapRepoErr(err, "toggle favorite")
	}
	return next, nil
}

func (s *service) Delete(ctx context.Context, id int64) error {
	if s.repo == nil {
		return pkgerrors.New(pkgerrors.CodeNotConfigured, "database not configured")
	}

	affected, err := s.repo.SoftDelete(ctx, id)
	if err != nil {
		return wrapRepoErr(err, "delete shop")
	}
	if affected == 0 {
		// Absent and already-deleted are indistinguishable on purpose.
		return pkgerrors.New(pkgerrors.CodeNotFound, "shop not found")
	}
	return nil
}

// wrapRepoErr folds uncoded repository failures into DEPENDENCY_ERROR
// while letting already-classified errors (schema missing) through.
func wrapRepoErr(err error, msg string) error {
	if appErr := pkgerrors.As(err); appErr != nil {
		return err
	}
	return pkgerrors.Wrap(pkgerrors.CodeDependency, err, msg)
}
