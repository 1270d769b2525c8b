package order

import (
	"context"
	"testing"

	"github.com/Viraj-016/buyhive-marketplace/internal/domain/order"
	"github.com/Viraj-016/buyhive-marketplace/internal/domain/shared"
	"github.com/Viraj-016/buyhive-marketplace/internal/domain/shared/valueobject"
	"github.com/Viraj-016/buyhive-marketplace/internal/domain/vendor"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// MockOrderRepository is a mock implementation of order.Repository
type MockOrderRepository struct {
	mock.Mock
}

func (m *MockOrderRepository) FindByID(ctx context.Context, id uuid.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) FindByOrderID(ctx context.Context, orderID uuid.UUID) (*order.Order, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) FindByCustomer(ctx context.Context, customerID uuid.UUID, filter shared.Filter) (*shared.Paginated[*order.Order], error) {
	args := m.Called(ctx, customerID, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*shared.Paginated[*order.Order]), args.Error(1)
}

func (m *MockOrderRepository) FindByVendor(ctx context.Context, vendorID uuid.UUID, status *order.Status, filter shared.Filter) (*shared.Paginated[*order.Order], error) {
	args := m.Called(ctx, vendorID, status, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*shared.Paginated[*order.Order]), args.Error(1)
}

func (m *MockOrderRepository) Save(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
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

func newOrderService() (*Service, *MockOrderRepository, *MockProfileRepository, *stubEventBus) {
	orderRepo := new(MockOrderRepository)
	profileRepo := new(MockProfileRepository)
	bus := &stubEventBus{}
	svc := NewService(orderRepo, profileRepo, bus, zap.NewNop())
	return svc, orderRepo, profileRepo, bus
}

func newPendingOrder(t *testing.T, customerID, vendorID uuid.UUID) *order.Order {
	t.Helper()
	o, err := order.NewOrder(customerID, vendorID, "1 Main St, Springfield, IL, 62704, US")
	require.NoError(t, err)
	price, err := valueobject.NewMoneyUSDFromString("24.99")
	require.NoError(t, err)
	_, err = o.AddItem(uuid.New(), "Beeswax Candle", nil, "", 2, price)
	require.NoError(t, err)
	o.ClearDomainEvents()
	return o
}

func newApprovedVendorProfile(t *testing.T) *vendor.Profile {
	t.Helper()
	profile, err := vendor.NewProfile(uuid.New(), "Honeycomb Goods", "", "", "")
	require.NoError(t, err)
	require.NoError(t, profile.Approve())
	profile.ClearDomainEvents()
	return profile
}

func TestService_CancelOrder(t *testing.T) {
	svc, orderRepo, _, _ := newOrderService()
	customerID := uuid.New()
	o := newPendingOrder(t, customerID, uuid.New())

	orderRepo.On("FindByOrderID", mock.Anything, o.OrderID).Return(o, nil)
	orderRepo.On("Save", mock.Anything, o).Return(nil)

	result, err := svc.CancelOrder(context.Background(), customerID, o.OrderID)
	require.NoError(t, err)
	assert.Equal(t, "cancelled", result.Status)
}

func TestService_CancelOrder_ShippedOrderRejected(t *testing.T) {
	svc, orderRepo, _, _ := newOrderService()
	customerID := uuid.New()
	o := newPendingOrder(t, customerID, uuid.New())
	require.NoError(t, o.MarkPaid("card", "mock_txn_test"))
	require.NoError(t, o.TransitionTo(order.StatusShipped))
	o.ClearDomainEvents()

	orderRepo.On("FindByOrderID", mock.Anything, o.OrderID).Return(o, nil)

	_, err := svc.CancelOrder(context.Background(), customerID, o.OrderID)
	require.Error(t, err)

	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "INVALID_STATUS_TRANSITION", domainErr.Code)
	assert.Equal(t, order.StatusShipped, o.Status)
	orderRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestService_GetCustomerOrder_ForeignOrderHidden(t *testing.T) {
	svc, orderRepo, _, _ := newOrderService()
	o := newPendingOrder(t, uuid.New(), uuid.New())

	orderRepo.On("FindByOrderID", mock.Anything, o.OrderID).Return(o, nil)

	_, err := svc.GetCustomerOrder(context.Background(), uuid.New(), o.OrderID)
	require.Error(t, err)

	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "ORDER_NOT_FOUND", domainErr.Code)
}

func TestService_UpdateStatus(t *testing.T) {
	svc, orderRepo, profileRepo, _ := newOrderService()
	profile := newApprovedVendorProfile(t)
	o := newPendingOrder(t, uuid.New(), profile.ID)
	require.NoError(t, o.MarkPaid("card", "mock_txn_test"))
	o.ClearDomainEvents()

	profileRepo.On("FindByUser", mock.Anything, profile.UserID).Return(profile, nil)
	orderRepo.On("FindByOrderID", mock.Anything, o.OrderID).Return(o, nil)
	orderRepo.On("Save", mock.Anything, o).Return(nil)

	result, err := svc.UpdateStatus(context.Background(), UpdateStatusInput{
		UserID:  profile.UserID,
		OrderID: o.OrderID,
		Status:  "shipped",
	})
	require.NoError(t, err)
	assert.Equal(t, "shipped", result.Status)
}

func TestService_UpdateStatus_ForeignOrderHidden(t *testing.T) {
	svc, orderRepo, profileRepo, _ := newOrderService()
	profile := newApprovedVendorProfile(t)
	o := newPendingOrder(t, uuid.New(), uuid.New())

	profileRepo.On("FindByUser", mock.Anything, profile.UserID).Return(profile, nil)
	orderRepo.On("FindByOrderID", mock.Anything, o.OrderID).Return(o, nil)

	_, err := svc.UpdateStatus(context.Background(), UpdateStatusInput{
		UserID:  profile.UserID,
		OrderID: o.OrderID,
		Status:  "processing",
	})
	require.Error(t, err)

	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "ORDER_NOT_FOUND", domainErr.Code)
	orderRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestService_SetTracking(t *testing.T) {
	svc, orderRepo, profileRepo, _ := newOrderService()
	profile := newApprovedVendorProfile(t)
	o := newPendingOrder(t, uuid.New(), profile.ID)

	profileRepo.On("FindByUser", mock.Anything, profile.UserID).Return(profile, nil)
	orderRepo.On("FindByOrderID", mock.Anything, o.OrderID).Return(o, nil)
	orderRepo.On("Save", mock.Anything, o).Return(nil)

	result, err := svc.SetTracking(context.Background(), SetTrackingInput{
		UserID:         profile.UserID,
		OrderID:        o.OrderID,
		TrackingNumber: "1Z999AA10123456784",
	})
	require.NoError(t, err)
	assert.Equal(t, "1Z999AA10123456784", result.TrackingNumber)
}

func TestService_ListVendorOrders_InvalidStatus(t *testing.T) {
	svc, _, profileRepo, _ := newOrderService()
	profile := newApprovedVendorProfile(t)

	profileRepo.On("FindByUser", mock.Anything, profile.UserID).Return(profile, nil)

	_, err := svc.ListVendorOrders(context.Background(), profile.UserID, ListOrdersInput{Status: "teleported"})
	require.Error(t, err)

	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "INVALID_STATUS", domainErr.Code)
}

func TestService_ListCustomerOrders(t *testing.T) {
	svc, orderRepo, _, _ := newOrderService()
	customerID := uuid.New()
	o := newPendingOrder(t, customerID, uuid.New())

	page := shared.NewPaginated([]*order.Order{o}, 1, 1, 20)
	orderRepo.On("FindByCustomer", mock.Anything, customerID, mock.Anything).Return(&page, nil)

	result, err := svc.ListCustomerOrders(context.Background(), customerID, ListOrdersInput{})
	require.NoError(t, err)
	require.Len(t, result.Orders, 1)
	assert.Equal(t, int64(1), result.Total)
	assert.Equal(t, "49.98", result.Orders[0].TotalAmount.String())
}
