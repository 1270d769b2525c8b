package order

import (
	"context"
	"time"

	"github.com/Viraj-016/buyhive-marketplace/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Repository defines persistence operations for the Order aggregate
type Repository interface {
	// FindByID finds an order by its internal entity ID
	FindByID(ctx context.Context, id uuid.UUID) (*Order, error)
	// FindByOrderID finds an order by its public order identifier
	FindByOrderID(ctx context.Context, orderID uuid.UUID) (*Order, error)
	// FindByCustomer returns the customer's orders, newest first
	FindByCustomer(ctx context.Context, customerID uuid.UUID, filter shared.Filter) (*shared.Paginated[*Order], error)
	// FindByVendor returns the vendor's orders, optionally filtered by status
	FindByVendor(ctx context.Context, vendorID uuid.UUID, status *Status, filter shared.Filter) (*shared.Paginated[*Order], error)
	// Save persists an order and its items
	Save(ctx context.Context, o *Order) error
}

// StockDecrement is one product or variant quantity to subtract during
// checkout, applied inside the same transaction as order creation.
type StockDecrement struct {
	ProductID uuid.UUID
	VariantID *uuid.UUID
	Quantity  int
}

// CheckoutRepository is the atomic boundary of checkout: all orders are
// created, all stock decrements applied, and the cart emptied in one
// transaction. A failure at any point leaves no partial state.
type CheckoutRepository interface {
	CreateOrdersAndClearCart(ctx context.Context, orders []*Order, decrements []StockDecrement, cartID uuid.UUID) error
}

// ProductSales aggregates units sold for a single product
type ProductSales struct {
	ProductID   uuid.UUID
	ProductName string
	UnitsSold   int
}

// AnalyticsRepository exposes the aggregate queries behind the vendor
// dashboard. Revenue figures only count orders with completed payment.
type AnalyticsRepository interface {
	// CountByVendorAndStatus returns order counts grouped by status
	CountByVendorAndStatus(ctx context.Context, vendorID uuid.UUID) (map[Status]int64, error)
	// TotalRevenue returns the all-time paid revenue for a vendor
	TotalRevenue(ctx context.Context, vendorID uuid.UUID) (decimal.Decimal, error)
	// RevenueSince returns paid revenue for orders placed after the cutoff
	RevenueSince(ctx context.Context, vendorID uuid.UUID, since time.Time) (decimal.Decimal, error)
	// TopProducts returns the vendor's best-selling products by units
	// sold in orders placed after the cutoff
	TopProducts(ctx context.Context, vendorID uuid.UUID, since time.Time, limit int) ([]ProductSales, error)
}
