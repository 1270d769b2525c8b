package order

import (
	"context"

	"github.com/Viraj-016/buyhive-marketplace/internal/domain/order"
	"github.com/Viraj-016/buyhive-marketplace/internal/domain/shared"
	"github.com/Viraj-016/buyhive-marketplace/internal/domain/vendor"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Service handles order history for customers and fulfillment for
// vendors. All lookups go through the public order ID.
type Service struct {
	orderRepo   order.Repository
	profileRepo vendor.ProfileRepository
	eventBus    shared.EventPublisher
	logger      *zap.Logger
}

// NewService creates a new order service
func NewService(
	orderRepo order.Repository,
	profileRepo vendor.ProfileRepository,
	eventBus shared.EventPublisher,
	logger *zap.Logger,
) *Service {
	return &Service{
		orderRepo:   orderRepo,
		profileRepo: profileRepo,
		eventBus:    eventBus,
		logger:      logger,
	}
}

// ListCustomerOrders returns the calling customer's orders, newest first
func (s *Service) ListCustomerOrders(ctx context.Context, userID uuid.UUID, input ListOrdersInput) (*OrderListResult, error) {
	filter := listFilter(input)

	page, err := s.orderRepo.FindByCustomer(ctx, userID, filter)
	if err != nil {
		s.logger.Error("Failed to list customer orders", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to load orders")
	}
	return toListResult(page), nil
}

// GetCustomerOrder returns one of the calling customer's orders
func (s *Service) GetCustomerOrder(ctx context.Context, userID, orderID uuid.UUID) (*OrderResult, error) {
	o, err := s.orderRepo.FindByOrderID(ctx, orderID)
	if err != nil || o.CustomerID != userID {
		return nil, shared.NewDomainError("ORDER_NOT_FOUND", "Order not found")
	}
	result := toOrderResult(o)
	return &result, nil
}

// CancelOrder cancels one of the calling customer's orders. Only
// orders that have not shipped can be cancelled.
func (s *Service) CancelOrder(ctx context.Context, userID, orderID uuid.UUID) (*OrderResult, error) {
	o, err := s.orderRepo.FindByOrderID(ctx, orderID)
	if err != nil || o.CustomerID != userID {
		return nil, shared.NewDomainError("ORDER_NOT_FOUND", "Order not found")
	}

	if err := o.TransitionTo(order.StatusCancelled); err != nil {
		return nil, err
	}

	if err := s.orderRepo.Save(ctx, o); err != nil {
		s.logger.Error("Failed to save order cancellation", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to cancel order")
	}
	s.publishEvents(ctx, o)

	s.logger.Info("Order cancelled",
		zap.String("order_id", o.OrderID.String()),
		zap.String("customer_id", userID.String()))

	result := toOrderResult(o)
	return &result, nil
}

// ListVendorOrders returns orders for the calling vendor, optionally
// filtered by status
func (s *Service) ListVendorOrders(ctx context.Context, userID uuid.UUID, input ListOrdersInput) (*OrderListResult, error) {
	profile, err := s.requireApprovedVendor(ctx, userID)
	if err != nil {
		return nil, err
	}

	var status *order.Status
	if input.Status != "" {
		parsed := order.Status(input.Status)
		if !parsed.IsValid() {
			return nil, shared.NewDomainError("INVALID_STATUS", "Unknown order status: "+input.Status)
		}
		status = &parsed
	}

	page, err := s.orderRepo.FindByVendor(ctx, profile.ID, status, listFilter(input))
	if err != nil {
		s.logger.Error("Failed to list vendor orders", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to load orders")
	}
	return toListResult(page), nil
}

// UpdateStatus moves one of the calling vendor's orders to a new
// fulfillment status
func (s *Service) UpdateStatus(ctx context.Context, input UpdateStatusInput) (*OrderResult, error) {
	o, err := s.findVendorOrder(ctx, input.UserID, input.OrderID)
	if err != nil {
		return nil, err
	}

	if err := o.TransitionTo(order.Status(input.Status)); err != nil {
		return nil, err
	}

	if err := s.orderRepo.Save(ctx, o); err != nil {
		s.logger.Error("Failed to save order status", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to update order")
	}
	s.publishEvents(ctx, o)

	s.logger.Info("Order status updated",
		zap.String("order_id", o.OrderID.String()),
		zap.String("status", o.Status.String()))

	result := toOrderResult(o)
	return &result, nil
}

// SetTracking records shipment details on one of the calling vendor's
// orders
func (s *Service) SetTracking(ctx context.Context, input SetTrackingInput) (*OrderResult, error) {
	o, err := s.findVendorOrder(ctx, input.UserID, input.OrderID)
	if err != nil {
		return nil, err
	}

	o.SetTracking(input.TrackingNumber, input.EstimatedDelivery)

	if err := s.orderRepo.Save(ctx, o); err != nil {
		s.logger.Error("Failed to save tracking details", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to update order")
	}

	result := toOrderResult(o)
	return &result, nil
}

func (s *Service) requireApprovedVendor(ctx context.Context, userID uuid.UUID) (*vendor.Profile, error) {
	profile, err := s.profileRepo.FindByUser(ctx, userID)
	if err != nil {
		return nil, shared.NewDomainError("VENDOR_NOT_FOUND", "No vendor profile for this account")
	}
	if !profile.IsApproved() {
		return nil, shared.ErrVendorNotApproved
	}
	return profile, nil
}

// findVendorOrder loads an order and verifies the calling vendor owns
// it. Foreign orders are reported as not found.
func (s *Service) findVendorOrder(ctx context.Context, userID, orderID uuid.UUID) (*order.Order, error) {
	profile, err := s.requireApprovedVendor(ctx, userID)
	if err != nil {
		return nil, err
	}
	o, err := s.orderRepo.FindByOrderID(ctx, orderID)
	if err != nil || o.VendorID != profile.ID {
		return nil, shared.NewDomainError("ORDER_NOT_FOUND", "Order not found")
	}
	return o, nil
}

func (s *Service) publishEvents(ctx context.Context, o *order.Order) {
	if err := s.eventBus.Publish(ctx, o.GetDomainEvents()...); err != nil {
		s.logger.Warn("Failed to publish order events", zap.Error(err))
	}
	o.ClearDomainEvents()
}

func listFilter(input ListOrdersInput) shared.Filter {
	filter := shared.DefaultFilter()
	if input.Page > 0 {
		filter.Page = input.Page
	}
	if input.PageSize > 0 {
		filter.PageSize = input.PageSize
	}
	return filter
}

func toListResult(page *shared.Paginated[*order.Order]) *OrderListResult {
	orders := make([]OrderResult, 0, len(page.Items))
	for _, o := range page.Items {
		orders = append(orders, toOrderResult(o))
	}
	return &OrderListResult{
		Orders:     orders,
		Total:      page.Total,
		Page:       page.Page,
		PageSize:   page.PageSize,
		TotalPages: page.TotalPages,
	}
}
