package order

import (
	"strings"
	"time"

	"github.com/Viraj-016/buyhive-marketplace/internal/domain/shared"
	"github.com/Viraj-016/buyhive-marketplace/internal/domain/shared/valueobject"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Status represents the fulfillment status of an order
type Status string

const (
	StatusPending    Status = "pending"
	StatusProcessing Status = "processing"
	StatusShipped    Status = "shipped"
	StatusDelivered  Status = "delivered"
	StatusCancelled  Status = "cancelled"
	StatusRefunded   Status = "refunded"
)

// IsValid checks if the status is a valid Status
func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusProcessing, StatusShipped, StatusDelivered, StatusCancelled, StatusRefunded:
		return true
	}
	return false
}

// String returns the string representation of Status
func (s Status) String() string {
	return string(s)
}

// CanTransitionTo checks if the status can transition to the target status
func (s Status) CanTransitionTo(target Status) bool {
	switch s {
	case StatusPending:
		return target == StatusProcessing || target == StatusCancelled
	case StatusProcessing:
		return target == StatusShipped || target == StatusCancelled
	case StatusShipped:
		return target == StatusDelivered
	case StatusDelivered:
		return target == StatusRefunded
	case StatusCancelled, StatusRefunded:
		return false // Terminal states
	}
	return false
}

// PaymentStatus represents the payment state of an order
type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "pending"
	PaymentStatusCompleted PaymentStatus = "completed"
	PaymentStatusFailed    PaymentStatus = "failed"
	PaymentStatusRefunded  PaymentStatus = "refunded"
)

// IsValid checks if the payment status is known
func (s PaymentStatus) IsValid() bool {
	switch s {
	case PaymentStatusPending, PaymentStatusCompleted, PaymentStatusFailed, PaymentStatusRefunded:
		return true
	}
	return false
}

// Item is a line in an order. PriceAtPurchase snapshots the unit price
// (base price + variant modifier) at checkout time and is immutable
// afterwards.
type Item struct {
	ID              uuid.UUID
	OrderID         uuid.UUID
	ProductID       uuid.UUID
	ProductName     string
	VariantID       *uuid.UUID
	VariantName     string
	Quantity        int
	PriceAtPurchase decimal.Decimal
	CreatedAt       time.Time
}

// NewItem creates a new order item with a frozen price snapshot
func NewItem(orderID, productID uuid.UUID, productName string, variantID *uuid.UUID, variantName string, quantity int, priceAtPurchase valueobject.Money) (*Item, error) {
	if productID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_PRODUCT", "Product ID cannot be empty")
	}
	if productName == "" {
		return nil, shared.NewDomainError("INVALID_PRODUCT_NAME", "Product name cannot be empty")
	}
	if quantity <= 0 {
		return nil, shared.NewDomainError("INVALID_QUANTITY", "Quantity must be positive")
	}
	if priceAtPurchase.IsNegative() {
		return nil, shared.NewDomainError("INVALID_PRICE", "Price cannot be negative")
	}

	return &Item{
		ID:              uuid.New(),
		OrderID:         orderID,
		ProductID:       productID,
		ProductName:     productName,
		VariantID:       variantID,
		VariantName:     variantName,
		Quantity:        quantity,
		PriceAtPurchase: priceAtPurchase.Amount(),
		CreatedAt:       time.Now(),
	}, nil
}

// LineTotal returns PriceAtPurchase * Quantity
func (i *Item) LineTotal() decimal.Decimal {
	return i.PriceAtPurchase.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// Order is a permanent, vendor-scoped purchase record. A checkout
// produces one order per distinct vendor in the cart. OrderID is the
// public identifier exposed to customers; the entity ID stays internal.
type Order struct {
	shared.BaseAggregateRoot
	OrderID           uuid.UUID
	CustomerID        uuid.UUID
	VendorID          uuid.UUID
	Items             []Item
	TotalAmount       decimal.Decimal
	Status            Status
	PaymentStatus     PaymentStatus
	PaymentMethod     string
	TransactionID     string
	ShippingAddress   string
	TrackingNumber    string
	EstimatedDelivery *time.Time
}

// NewOrder creates a new order for one vendor's share of a checkout
func NewOrder(customerID, vendorID uuid.UUID, shippingAddress string) (*Order, error) {
	if customerID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_CUSTOMER", "Customer ID cannot be empty")
	}
	if vendorID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_VENDOR", "Vendor ID cannot be empty")
	}
	if strings.TrimSpace(shippingAddress) == "" {
		return nil, shared.NewDomainError("INVALID_ADDRESS", "Shipping address cannot be empty")
	}

	order := &Order{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		OrderID:           uuid.New(),
		CustomerID:        customerID,
		VendorID:          vendorID,
		Items:             make([]Item, 0),
		TotalAmount:       decimal.Zero,
		Status:            StatusPending,
		PaymentStatus:     PaymentStatusPending,
		ShippingAddress:   shippingAddress,
	}

	order.AddDomainEvent(NewOrderPlacedEvent(order))

	return order, nil
}

// AddItem appends a line item and recalculates the total
func (o *Order) AddItem(productID uuid.UUID, productName string, variantID *uuid.UUID, variantName string, quantity int, priceAtPurchase valueobject.Money) (*Item, error) {
	item, err := NewItem(o.OrderID, productID, productName, variantID, variantName, quantity, priceAtPurchase)
	if err != nil {
		return nil, err
	}
	o.Items = append(o.Items, *item)
	o.recalculateTotal()
	o.UpdatedAt = time.Now()
	return item, nil
}

// MarkPaid records a successful payment authorization
func (o *Order) MarkPaid(method, transactionID string) error {
	if transactionID == "" {
		return shared.NewDomainError("INVALID_TRANSACTION", "Transaction ID cannot be empty")
	}
	o.PaymentMethod = method
	o.TransactionID = transactionID
	o.PaymentStatus = PaymentStatusCompleted
	o.Status = StatusProcessing
	o.UpdatedAt = time.Now()
	return nil
}

// TransitionTo moves the order to a new fulfillment status. Invalid
// transitions are rejected without mutating state.
func (o *Order) TransitionTo(target Status) error {
	if !target.IsValid() {
		return shared.NewDomainError("INVALID_STATUS", "Unknown order status: "+target.String())
	}
	if !o.Status.CanTransitionTo(target) {
		return shared.NewDomainError("INVALID_STATUS_TRANSITION",
			"Cannot transition order from "+o.Status.String()+" to "+target.String())
	}
	previous := o.Status
	o.Status = target
	if target == StatusRefunded {
		o.PaymentStatus = PaymentStatusRefunded
	}
	o.UpdatedAt = time.Now()

	o.AddDomainEvent(NewOrderStatusChangedEvent(o, previous))
	return nil
}

// SetTracking updates the vendor-supplied shipment details
func (o *Order) SetTracking(trackingNumber string, estimatedDelivery *time.Time) {
	o.TrackingNumber = trackingNumber
	o.EstimatedDelivery = estimatedDelivery
	o.UpdatedAt = time.Now()
}

// GetTotalMoney returns the order total as Money
func (o *Order) GetTotalMoney() valueobject.Money {
	return valueobject.NewMoneyUSD(o.TotalAmount)
}

// IsTerminal returns true if no further status transitions are allowed
func (o *Order) IsTerminal() bool {
	return o.Status == StatusCancelled || o.Status == StatusRefunded
}

func (o *Order) recalculateTotal() {
	total := decimal.Zero
	for _, item := range o.Items {
		total = total.Add(item.LineTotal())
	}
	o.TotalAmount = total
}
