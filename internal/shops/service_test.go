package shops

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/mrtribble/brewlist/pkg/db/models"
	pkgerrors "github.com/mrtribble/brewlist/pkg/errors"
)

type stubRepo struct {
	listShops  []models.Shop
	listErr    error
	created    *CreateShopDTO
	createErr  error
	findShop   *models.Shop
	findErr    error
	setFav     *bool
	setFavErr  error
	deleted    int64
	deleteErr  error
	deletedIDs []int64
}

func (s *stubRepo) List(ctx context.Context) ([]models.Shop, error) {
	return s.listShops, s.listErr
}

func (s *stubRepo) Create(ctx context.Context, dto CreateShopDTO) (*models.Shop, error) {
	s.created = &dto
	if s.createErr != nil {
		return nil, s.createErr
	}
	m := dto.ToModel()
	m.ShopID = 1
	return m, nil
}

func (s *stubRepo) FindActive(ctx context.Context, id int64) (*models.Shop, error) {
	return s.findShop, s.findErr
}

func (s *stubRepo) SetFavorite(ctx context.Context, id int64, favorited bool) error {
	s.setFav = &favorited
	return s.setFavErr
}

func (s *stubRepo) SoftDelete(ctx context.Context, id int64) (int64, error) {
	s.deletedIDs = append(s.deletedIDs, id)
	return s.deleted, s.deleteErr
}

func errCode(err error) string {
	if appErr := pkgerrors.As(err); appErr != nil {
		return string(appErr.Code())
	}
	return ""
}

func TestServiceListMapsModels(t *testing.T) {
	repo := &stubRepo{listShops: []models.Shop{
		{ShopID: 7, ShopName: "Blue Bottle", Rating: decimal.NewFromFloat(4.25), Favorited: true},
	}}
	svc := NewService(repo)

	dtos, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, dtos, 1)
	require.EqualValues(t, 7, dtos[0].ShopID)
	require.Equal(t, "Blue Bottle", dtos[0].ShopName)
	require.InEpsilon(t, 4.25, dtos[0].Rating, 1e-9)
	require.True(t, dtos[0].Favorited)
}

func TestServiceListEmptyIsNotNil(t *testing.T) {
	svc := NewService(&stubRepo{})

	dtos, err := svc.List(context.Background())
	require.NoError(t, err)
	require.NotNil(t, dtos)
	require.Empty(t, dtos)
}

func TestServiceListWrapsRepoFailure(t *testing.T) {
	svc := NewService(&stubRepo{listErr: errors.New("connection refused")})

	_, err := svc.List(context.Background())
	require.Equal(t, "DEPENDENCY_ERROR", errCode(err))
}

func TestServiceListKeepsSchemaMissingCode(t *testing.T) {
	schemaErr := pkgerrors.Wrap(pkgerrors.CodeSchemaMissing, errors.New("no such table"), "list shops")
	svc := NewService(&stubRepo{listErr: schemaErr})

	_, err := svc.List(context.Background())
	require.Equal(t, "SCHEMA_MISSING", errCode(err))
}

func TestServiceCreateTrimsName(t *testing.T) {
	repo := &stubRepo{}
	svc := NewService(repo)

	dto, err := svc.Create(context.Background(), CreateShopDTO{ShopName: "  Verve  ", Rating: 4.5})
	require.NoError(t, err)
	require.Equal(t, "Verve", dto.ShopName)
	require.Equal(t, "Verve", repo.created.ShopName)
	require.False(t, dto.Deleted)
	require.False(t, dto.Favorited)
}

func TestServiceCreateRejectsBlankName(t *testing.T) {
	svc := NewService(&stubRepo{})

	_, err := svc.Create(context.Background(), CreateShopDTO{ShopName: "   ", Rating: 3})
	require.Equal(t, "VALIDATION_ERROR", errCode(err))
}

func TestServiceCreateRejectsOutOfRangeRating(t *testing.T) {
	svc := NewService(&stubRepo{})

	for _, rating := range []float64{-0.1, 5.1} {
		_, err := svc.Create(context.Background(), CreateShopDTO{ShopName: "Over", Rating: rating})
		require.Equal(t, "VALIDATION_ERROR", errCode(err))
	}
}

func TestServiceToggleFavoriteFlips(t *testing.T) {
	repo := &stubRepo{findShop: &models.Shop{ShopID: 3, Favorited: false}}
	svc := NewService(repo)

	favorited, err := svc.ToggleFavorite(context.Background(), 3)
	require.NoError(t, err)
	require.True(t, favorited)
	require.NotNil(t, repo.setFav)
	require.True(t, *repo.setFav)

	repo.findShop.Favorited = true
	favorited, err = svc.ToggleFavorite(context.Background(), 3)
	require.NoError(t, err)
	require.False(t, favorited)
}

func TestServiceToggleFavoriteNotFound(t *testing.T) {
	svc := NewService(&stubRepo{findErr: gorm.ErrRecordNotFound})

	_, err := svc.ToggleFavorite(context.Background(), 99)
	require.Equal(t, "NOT_FOUND", errCode(err))
}

func TestServiceDelete(t *testing.T) {
	repo := &stubRepo{deleted: 1}
	svc := NewService(repo)

	require.NoError(t, svc.Delete(context.Background(), 5))
	require.Equal(t, []int64{5}, repo.deletedIDs)
}

func TestServiceDeleteNotFoundWhenNoRows(t *testing.T) {
	svc := NewService(&stubRepo{deleted: 0})

	err := svc.Delete(context.Background(), 5)
	require.Equal(t, "NOT_FOUND", errCode(err))
}

func TestServiceNilRepoReportsNotConfigured(t *testing.T) {
	svc := NewService(nil)
	ctx := context.Background()

	_, err := svc.List(ctx)
	require.Equal(t, "NOT_CONFIGURED", errCode(err))

	_, err = svc.Create(ctx, CreateShopDTO{ShopName: "Any", Rating: 4})
	require.Equal(t, "NOT_CONFIGURED", errCode(err))

	_, err = svc.ToggleFavorite(ctx, 1)
	require.Equal(t, "NOT_CONFIGURED", errCode(err))

	require.Equal(t, "NOT_CONFIGURED", errCode(svc.Delete(ctx, 1)))
}
