package service

import (
	"context"
	"testing"

	"github.com/MKhiriev/billiard-pos/internal/logger"
	"github.com/MKhiriev/billiard-pos/internal/mock"
	"github.com/MKhiriev/billiard-pos/internal/store"
	"github.com/MKhiriev/billiard-pos/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestProductSvc(t *testing.T) (ProductService, *mock.MockProductRepository) {
	t.Helper()
	repo := mock.NewMockProductRepository(gomock.NewController(t))
	return NewProductService(repo, logger.Nop()), repo
}

func TestProductService_Create(t *testing.T) {
	svc, repo := newTestProductSvc(t)

	repo.EXPECT().
		CreateProduct(gomock.Any(), models.Product{Name: "Chalk", Price: 15000, Tags: []string{"blue", "chalk"}, Active: true}).
		Return(models.Product{ID: 1, Name: "Chalk"}, nil)

	created, err := svc.Create(context.Background(), models.Product{
		Name:   "  Chalk ",
		Price:  15000,
		Tags:   []string{"Blue", " chalk", "blue", ""},
		Active: true,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), created.ID)
}

func TestProductService_Create_Invalid(t *testing.T) {
	svc, _ := newTestProductSvc(t)

	_, err := svc.Create(context.Background(), models.Product{Name: "   "})
	assert.ErrorIs(t, err, ErrInvalidDataProvided)

	_, err = svc.Create(context.Background(), models.Product{Name: "x", Price: -1})
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestProductService_Get_NotFound(t *testing.T) {
	svc, repo := newTestProductSvc(t)
	repo.EXPECT().GetProduct(gomock.Any(), int64(9)).Return(models.Product{}, store.ErrProductNotFound)

	_, err := svc.Get(context.Background(), 9)
	assert.ErrorIs(t, err, store.ErrProductNotFound)
}

func TestProductService_List(t *testing.T) {
	svc, repo := newTestProductSvc(t)

	repo.EXPECT().
		ListProducts(gomock.Any(), models.ProductFilter{Page: 1, Limit: 20}).
		Return(models.ProductPage{Items: []models.Product{}, Page: 1, Limit: 20}, nil)

	page, err := svc.List(context.Background(), models.ProductFilter{Page: 0, Limit: 20})
	require.NoError(t, err)
	assert.Equal(t, 1, page.Page)

	_, err = svc.List(context.Background(), models.ProductFilter{Page: 1})
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestProductService_Update(t *testing.T) {
	svc, repo := newTestProductSvc(t)
	ctx := context.Background()

	_, err := svc.Update(ctx, 1, models.ProductUpdate{})
	assert.ErrorIs(t, err, ErrInvalidDataProvided)

	blank := "  "
	_, err = svc.Update(ctx, 1, models.ProductUpdate{Name: &blank})
	assert.ErrorIs(t, err, ErrInvalidDataProvided)

	repo.EXPECT().
		UpdateProduct(gomock.Any(), int64(1), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ int64, u models.ProductUpdate) (models.Product, error) {
			require.NotNil(t, u.Name)
			assert.Equal(t, "Cue", *u.Name)
			return models.Product{ID: 1, Name: *u.Name}, nil
		})

	name := " Cue "
	product, err := svc.Update(ctx, 1, models.ProductUpdate{Name: &name})
	require.NoError(t, err)
	assert.Equal(t, "Cue", product.Name)
}

func TestProductService_SetActiveAndPrice(t *testing.T) {
	svc, repo := newTestProductSvc(t)
	ctx := context.Background()

	active := false
	repo.EXPECT().UpdateProduct(gomock.Any(), int64(2), models.ProductUpdate{Active: &active}).
		Return(models.Product{ID: 2, Active: false}, nil)
	product, err := svc.SetActive(ctx, 2, false)
	require.NoError(t, err)
	assert.False(t, product.Active)

	price := 50000.0
	repo.EXPECT().UpdateProduct(gomock.Any(), int64(2), models.ProductUpdate{Price: &price}).
		Return(models.Product{ID: 2, Price: price}, nil)
	product, err = svc.SetPrice(ctx, 2, price)
	require.NoError(t, err)
	assert.Equal(t, price, product.Price)

	_, err = svc.SetPrice(ctx, 2, -5)
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestProductService_Tags(t *testing.T) {
	svc, repo := newTestProductSvc(t)
	ctx := context.Background()

	repo.EXPECT().AddProductTags(gomock.Any(), int64(3), []string{"drinks", "cold"}).
		Return(models.Product{ID: 3, Tags: []string{"drinks", "cold"}}, nil)
	_, err := svc.AddTags(ctx, 3, []string{"Drinks", "cold", "DRINKS"})
	require.NoError(t, err)

	repo.EXPECT().RemoveProductTags(gomock.Any(), int64(3), []string{"cold"}).
		Return(models.Product{ID: 3, Tags: []string{"drinks"}}, nil)
	product, err := svc.RemoveTags(ctx, 3, []string{" Cold "})
	require.NoError(t, err)
	assert.Equal(t, []string{"drinks"}, product.Tags)

	_, err = svc.AddTags(ctx, 3, []string{" ", ""})
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestProductService_SetImagesAndRemove(t *testing.T) {
	svc, repo := newTestProductSvc(t)
	ctx := context.Background()

	images := []string{"/uploads/products/1-a.png"}
	repo.EXPECT().SetProductImages(gomock.Any(), int64(4), images).Return(models.Product{ID: 4, Images: images}, nil)
	product, err := svc.SetImages(ctx, 4, images)
	require.NoError(t, err)
	assert.Equal(t, images, product.Images)

	repo.EXPECT().DeleteProduct(gomock.Any(), int64(4)).Return(nil)
	assert.NoError(t, svc.Remove(ctx, 4))

	repo.EXPECT().DeleteProduct(gomock.Any(), int64(4)).Return(store.ErrProductNotFound)
	assert.ErrorIs(t, svc.Remove(ctx, 4), store.ErrProductNotFound)
}
