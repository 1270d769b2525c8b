package wishlist

import (
	"context"
	"testing"

	"github.com/Viraj-016/buyhive-marketplace/internal/domain/catalog"
	"github.com/Viraj-016/buyhive-marketplace/internal/domain/shared"
	"github.com/Viraj-016/buyhive-marketplace/internal/domain/shared/valueobject"
	"github.com/Viraj-016/buyhive-marketplace/internal/domain/wishlist"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// MockWishlistRepository is a mock implementation of wishlist.Repository
type MockWishlistRepository struct {
	mock.Mock
}

func (m *MockWishlistRepository) FindByUser(ctx context.Context, userID uuid.UUID) (*wishlist.Wishlist, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*wishlist.Wishlist), args.Error(1)
}

func (m *MockWishlistRepository) FindOrCreateByUser(ctx context.Context, userID uuid.UUID) (*wishlist.Wishlist, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*wishlist.Wishlist), args.Error(1)
}

func (m *MockWishlistRepository) Save(ctx context.Context, w *wishlist.Wishlist) error {
	args := m.Called(ctx, w)
	return args.Error(0)
}

// MockProductRepository is a mock implementation of catalog.ProductRepository
type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) FindByID(ctx context.Context, id uuid.UUID) (*catalog.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Product), args.Error(1)
}

func (m *MockProductRepository) FindBySlug(ctx context.Context, slug string) (*catalog.Product, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Product), args.Error(1)
}

func (m *MockProductRepository) FindAll(ctx context.Context, filter shared.Filter) ([]catalog.Product, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]catalog.Product), args.Error(1)
}

func (m *MockProductRepository) FindByVendor(ctx context.Context, vendorID uuid.UUID, filter shared.Filter) ([]catalog.Product, error) {
	args := m.Called(ctx, vendorID, filter)
	return args.Get(0).([]catalog.Product), args.Error(1)
}

func (m *MockProductRepository) FindLowStock(ctx context.Context, vendorID uuid.UUID, threshold int) ([]catalog.Product, error) {
	args := m.Called(ctx, vendorID, threshold)
	return args.Get(0).([]catalog.Product), args.Error(1)
}

func (m *MockProductRepository) ExistsBySlug(ctx context.Context, slug string) (bool, error) {
	args := m.Called(ctx, slug)
	return args.Bool(0), args.Error(1)
}

func (m *MockProductRepository) Save(ctx context.Context, product *catalog.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

func (m *MockProductRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockProductRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockProductRepository) CountByVendor(ctx context.Context, vendorID uuid.UUID, activeOnly bool) (int64, error) {
	args := m.Called(ctx, vendorID, activeOnly)
	return args.Get(0).(int64), args.Error(1)
}

func newTestService() (*Service, *MockWishlistRepository, *MockProductRepository) {
	wishlistRepo := new(MockWishlistRepository)
	productRepo := new(MockProductRepository)
	svc := NewService(wishlistRepo, productRepo, zap.NewNop())
	return svc, wishlistRepo, productRepo
}

func newTestProduct(t *testing.T) *catalog.Product {
	t.Helper()
	price, err := valueobject.NewMoneyUSDFromString("24.99")
	require.NoError(t, err)
	product, err := catalog.NewProduct(uuid.New(), uuid.New(), "Beeswax Candle", "", price, 5)
	require.NoError(t, err)
	return product
}

func TestService_Toggle_AddsThenRemoves(t *testing.T) {
	svc, wishlistRepo, productRepo := newTestService()
	userID := uuid.New()
	product := newTestProduct(t)

	list, err := wishlist.NewWishlist(userID)
	require.NoError(t, err)

	productRepo.On("FindByID", mock.Anything, product.ID).Return(product, nil)
	wishlistRepo.On("FindOrCreateByUser", mock.Anything, userID).Return(list, nil)
	wishlistRepo.On("Save", mock.Anything, list).Return(nil)

	added, err := svc.Toggle(context.Background(), userID, product.ID)
	require.NoError(t, err)
	assert.True(t, added.Saved)
	assert.True(t, list.Contains(product.ID))

	removed, err := svc.Toggle(context.Background(), userID, product.ID)
	require.NoError(t, err)
	assert.False(t, removed.Saved)
	assert.False(t, list.Contains(product.ID))
}

func TestService_Toggle_UnknownProduct(t *testing.T) {
	svc, wishlistRepo, productRepo := newTestService()
	productID := uuid.New()

	productRepo.On("FindByID", mock.Anything, productID).Return(nil, shared.ErrNotFound)

	_, err := svc.Toggle(context.Background(), uuid.New(), productID)
	require.Error(t, err)

	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "PRODUCT_NOT_FOUND", domainErr.Code)
	wishlistRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestService_List_SkipsDeletedProducts(t *testing.T) {
	svc, wishlistRepo, productRepo := newTestService()
	userID := uuid.New()
	product := newTestProduct(t)
	deletedID := uuid.New()

	list, err := wishlist.NewWishlist(userID)
	require.NoError(t, err)
	_, err = list.Toggle(product.ID)
	require.NoError(t, err)
	_, err = list.Toggle(deletedID)
	require.NoError(t, err)

	wishlistRepo.On("FindOrCreateByUser", mock.Anything, userID).Return(list, nil)
	productRepo.On("FindByID", mock.Anything, product.ID).Return(product, nil)
	productRepo.On("FindByID", mock.Anything, deletedID).Return(nil, shared.ErrNotFound)

	results, err := svc.List(context.Background(), userID)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "Beeswax Candle", results[0].ProductName)
	assert.True(t, results[0].IsAvailable)
	assert.Equal(t, "24.99", results[0].BasePrice.String())
}

func TestService_Remove_NotSaved(t *testing.T) {
	svc, wishlistRepo, _ := newTestService()
	userID := uuid.New()

	list, err := wishlist.NewWishlist(userID)
	require.NoError(t, err)
	wishlistRepo.On("FindByUser", mock.Anything, userID).Return(list, nil)

	err = svc.Remove(context.Background(), userID, uuid.New())
	require.Error(t, err)

	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "ITEM_NOT_FOUND", domainErr.Code)
}

func TestService_Clear(t *testing.T) {
	svc, wishlistRepo, _ := newTestService()
	userID := uuid.New()

	list, err := wishlist.NewWishlist(userID)
	require.NoError(t, err)
	_, err = list.Toggle(uuid.New())
	require.NoError(t, err)

	wishlistRepo.On("FindByUser", mock.Anything, userID).Return(list, nil)
	wishlistRepo.On("Save", mock.Anything, list).Return(nil)

	require.NoError(t, svc.Clear(context.Background(), userID))
	assert.Empty(t, list.Items)
}
