package catalog

import (
	"context"
	"testing"

	"github.com/Viraj-016/buyhive-marketplace/internal/domain/catalog"
	"github.com/Viraj-016/buyhive-marketplace/internal/domain/shared"
	"github.com/Viraj-016/buyhive-marketplace/internal/domain/shared/valueobject"
	"github.com/Viraj-016/buyhive-marketplace/internal/domain/vendor"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

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

// MockCategoryRepository is a mock implementation of catalog.CategoryRepository
type MockCategoryRepository struct {
	mock.Mock
}

func (m *MockCategoryRepository) FindByID(ctx context.Context, id uuid.UUID) (*catalog.Category, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Category), args.Error(1)
}

func (m *MockCategoryRepository) FindBySlug(ctx context.Context, slug string) (*catalog.Category, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Category), args.Error(1)
}

func (m *MockCategoryRepository) FindAll(ctx context.Context, filter shared.Filter) ([]catalog.Category, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]catalog.Category), args.Error(1)
}

func (m *MockCategoryRepository) FindChildren(ctx context.Context, parentID uuid.UUID) ([]catalog.Category, error) {
	args := m.Called(ctx, parentID)
	return args.Get(0).([]catalog.Category), args.Error(1)
}

func (m *MockCategoryRepository) ExistsBySlug(ctx context.Context, slug string) (bool, error) {
	args := m.Called(ctx, slug)
	return args.Bool(0), args.Error(1)
}

func (m *MockCategoryRepository) Save(ctx context.Context, category *catalog.Category) error {
	args := m.Called(ctx, category)
	return args.Error(0)
}

func (m *MockCategoryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockProfileRepository is a mock implementation of vendor.ProfileRepository
type MockProfileRepository struct {
	mock.Mock
}

func (m *MockProfileRepository) FindByID(ctx context.Context, id uuid.UUID) (*vendor.Profile, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*vendor.Profile), args.Error(1)
}

func (m *MockProfileRepository) FindByUser(ctx context.Context, userID uuid.UUID) (*vendor.Profile, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*vendor.Profile), args.Error(1)
}

func (m *MockProfileRepository) FindAll(ctx context.Context, filter shared.Filter) ([]vendor.Profile, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]vendor.Profile), args.Error(1)
}

func (m *MockProfileRepository) FindByStatus(ctx context.Context, status vendor.Status, filter shared.Filter) ([]vendor.Profile, error) {
	args := m.Called(ctx, status, filter)
	return args.Get(0).([]vendor.Profile), args.Error(1)
}

func (m *MockProfileRepository) ExistsByBusinessName(ctx context.Context, businessName string) (bool, error) {
	args := m.Called(ctx, businessName)
	return args.Bool(0), args.Error(1)
}

func (m *MockProfileRepository) ExistsByUser(ctx context.Context, userID uuid.UUID) (bool, error) {
	args := m.Called(ctx, userID)
	return args.Bool(0), args.Error(1)
}

func (m *MockProfileRepository) Save(ctx context.Context, profile *vendor.Profile) error {
	args := m.Called(ctx, profile)
	return args.Error(0)
}

func (m *MockProfileRepository) SaveWithUserFlag(ctx context.Context, profile *vendor.Profile, isVendor bool) error {
	args := m.Called(ctx, profile, isVendor)
	return args.Error(0)
}

func (m *MockProfileRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func newApprovedProfile(t *testing.T) *vendor.Profile {
	t.Helper()
	profile, err := vendor.NewProfile(uuid.New(), "Honeycomb Goods", "", "", "")
	require.NoError(t, err)
	require.NoError(t, profile.Approve())
	profile.ClearDomainEvents()
	return profile
}

func newTestProduct(t *testing.T, vendorID uuid.UUID) *catalog.Product {
	t.Helper()
	price, err := valueobject.NewMoneyUSDFromString("24.99")
	require.NoError(t, err)
	product, err := catalog.NewProduct(vendorID, uuid.New(), "Beeswax Candle", "Hand poured", price, 40)
	require.NoError(t, err)
	return product
}

func newProductService() (*ProductService, *MockProductRepository, *MockCategoryRepository, *MockProfileRepository) {
	productRepo := new(MockProductRepository)
	categoryRepo := new(MockCategoryRepository)
	profileRepo := new(MockProfileRepository)
	svc := NewProductService(productRepo, categoryRepo, profileRepo, nil, zap.NewNop())
	return svc, productRepo, categoryRepo, profileRepo
}

func TestProductService_CreateProduct(t *testing.T) {
	svc, productRepo, categoryRepo, profileRepo := newProductService()
	profile := newApprovedProfile(t)
	category, err := catalog.NewCategory("Home", nil)
	require.NoError(t, err)

	profileRepo.On("FindByUser", mock.Anything, profile.UserID).Return(profile, nil)
	categoryRepo.On("FindByID", mock.Anything, category.ID).Return(category, nil)
	productRepo.On("ExistsBySlug", mock.Anything, "beeswax-candle").Return(false, nil)
	productRepo.On("Save", mock.Anything, mock.AnythingOfType("*catalog.Product")).Return(nil)

	result, err := svc.CreateProduct(context.Background(), CreateProductInput{
		UserID:      profile.UserID,
		CategoryID:  category.ID,
		Name:        "Beeswax Candle",
		Description: "Hand poured",
		BasePrice:   "24.99",
		Stock:       40,
	})
	require.NoError(t, err)
	assert.Equal(t, profile.ID, result.VendorID)
	assert.Equal(t, "beeswax-candle", result.Slug)
	assert.True(t, result.IsActive)
	productRepo.AssertExpectations(t)
}

func TestProductService_CreateProduct_SlugCollision(t *testing.T) {
	svc, productRepo, categoryRepo, profileRepo := newProductService()
	profile := newApprovedProfile(t)
	category, err := catalog.NewCategory("Home", nil)
	require.NoError(t, err)

	profileRepo.On("FindByUser", mock.Anything, profile.UserID).Return(profile, nil)
	categoryRepo.On("FindByID", mock.Anything, category.ID).Return(category, nil)
	productRepo.On("ExistsBySlug", mock.Anything, "beeswax-candle").Return(true, nil)
	productRepo.On("ExistsBySlug", mock.Anything, "beeswax-candle-2").Return(false, nil)
	productRepo.On("Save", mock.Anything, mock.AnythingOfType("*catalog.Product")).Return(nil)

	result, err := svc.CreateProduct(context.Background(), CreateProductInput{
		UserID:     profile.UserID,
		CategoryID: category.ID,
		Name:       "Beeswax Candle",
		BasePrice:  "24.99",
		Stock:      40,
	})
	require.NoError(t, err)
	assert.Equal(t, "beeswax-candle-2", result.Slug)
}

func TestProductService_CreateProduct_VendorNotApproved(t *testing.T) {
	svc, productRepo, _, profileRepo := newProductService()

	profile, err := vendor.NewProfile(uuid.New(), "Honeycomb Goods", "", "", "")
	require.NoError(t, err)
	profileRepo.On("FindByUser", mock.Anything, profile.UserID).Return(profile, nil)

	_, err = svc.CreateProduct(context.Background(), CreateProductInput{
		UserID:     profile.UserID,
		CategoryID: uuid.New(),
		Name:       "Beeswax Candle",
		BasePrice:  "24.99",
	})
	assert.ErrorIs(t, err, shared.ErrVendorNotApproved)
	productRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestProductService_UpdateProduct_OwnershipCheck(t *testing.T) {
	svc, productRepo, _, profileRepo := newProductService()
	profile := newApprovedProfile(t)
	foreign := newTestProduct(t, uuid.New())

	profileRepo.On("FindByUser", mock.Anything, profile.UserID).Return(profile, nil)
	productRepo.On("FindByID", mock.Anything, foreign.ID).Return(foreign, nil)

	_, err := svc.UpdateProduct(context.Background(), UpdateProductInput{
		UserID:     profile.UserID,
		ProductID:  foreign.ID,
		CategoryID: foreign.CategoryID,
		Name:       "Hijacked",
		BasePrice:  "1.00",
	})
	require.Error(t, err)

	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "PRODUCT_NOT_FOUND", domainErr.Code)
	productRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestProductService_AddVariant(t *testing.T) {
	svc, productRepo, _, profileRepo := newProductService()
	profile := newApprovedProfile(t)
	product := newTestProduct(t, profile.ID)

	profileRepo.On("FindByUser", mock.Anything, profile.UserID).Return(profile, nil)
	productRepo.On("FindByID", mock.Anything, product.ID).Return(product, nil)
	productRepo.On("Save", mock.Anything, product).Return(nil)

	result, err := svc.AddVariant(context.Background(), AddVariantInput{
		UserID:        profile.UserID,
		ProductID:     product.ID,
		Name:          "Large",
		SKU:           "candle-l",
		PriceModifier: "5.00",
		Stock:         10,
	})
	require.NoError(t, err)
	require.Len(t, result.Variants, 1)
	assert.Equal(t, "CANDLE-L", result.Variants[0].SKU)
	assert.Equal(t, "29.99", result.Variants[0].Price.String())
}

func TestProductService_SetPrimaryImage(t *testing.T) {
	svc, productRepo, _, profileRepo := newProductService()
	profile := newApprovedProfile(t)
	product := newTestProduct(t, profile.ID)

	first, err := product.AddImage("https://cdn.example.com/1.jpg", "", true)
	require.NoError(t, err)
	second, err := product.AddImage("https://cdn.example.com/2.jpg", "", false)
	require.NoError(t, err)

	profileRepo.On("FindByUser", mock.Anything, profile.UserID).Return(profile, nil)
	productRepo.On("FindByID", mock.Anything, product.ID).Return(product, nil)
	productRepo.On("Save", mock.Anything, product).Return(nil)

	result, err := svc.SetPrimaryImage(context.Background(), profile.UserID, product.ID, second.ID)
	require.NoError(t, err)

	primaries := 0
	for _, img := range result.Images {
		if img.IsPrimary {
			primaries++
			assert.Equal(t, second.ID, img.ID)
		}
		if img.ID == first.ID {
			assert.False(t, img.IsPrimary)
		}
	}
	assert.Equal(t, 1, primaries)
}

func TestProductService_GetProduct_NotFound(t *testing.T) {
	svc, productRepo, _, _ := newProductService()
	id := uuid.New()

	productRepo.On("FindByID", mock.Anything, id).Return(nil, shared.ErrNotFound)

	_, err := svc.GetProduct(context.Background(), id)
	require.Error(t, err)

	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "PRODUCT_NOT_FOUND", domainErr.Code)
}
