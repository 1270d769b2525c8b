package order

import (
	"time"

	"github.com/Viraj-016/buyhive-marketplace/internal/domain/order"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CheckoutInput contains input for checking out the user's cart.
// The shipping address must be supplied explicitly and belong to the
// calling user.
type CheckoutInput struct {
	UserID        uuid.UUID
	AddressID     *uuid.UUID `json:"shipping_address_id" binding:"required"`
	PaymentMethod string     `json:"payment_method" binding:"required,oneof=card cod"`
}

// CheckoutResult lists the orders produced by a checkout, one per
// vendor represented in the cart
type CheckoutResult struct {
	Orders        []OrderResult   `json:"orders"`
	TransactionID string          `json:"transaction_id"`
	GrandTotal    decimal.Decimal `json:"grand_total"`
}

// ListOrdersInput pages through an order listing
type ListOrdersInput struct {
	Status   string `form:"status"`
	Page     int    `form:"page"`
	PageSize int    `form:"page_size"`
}

// UpdateStatusInput contains a vendor's fulfillment status change
type UpdateStatusInput struct {
	UserID  uuid.UUID
	OrderID uuid.UUID
	Status  string `json:"status" binding:"required"`
}

// SetTrackingInput contains vendor-supplied shipment details
type SetTrackingInput struct {
	UserID            uuid.UUID
	OrderID           uuid.UUID
	TrackingNumber    string     `json:"tracking_number" binding:"required,max=100"`
	EstimatedDelivery *time.Time `json:"estimated_delivery"`
}

// ItemResult is one order line returned to clients
type ItemResult struct {
	ID              uuid.UUID       `json:"id"`
	ProductID       uuid.UUID       `json:"product_id"`
	ProductName     string          `json:"product_name"`
	VariantID       *uuid.UUID      `json:"variant_id,omitempty"`
	VariantName     string          `json:"variant_name,omitempty"`
	Quantity        int             `json:"quantity"`
	PriceAtPurchase decimal.Decimal `json:"price_at_purchase"`
	LineTotal       decimal.Decimal `json:"line_total"`
}

// OrderResult is the order representation returned to clients
type OrderResult struct {
	OrderID           uuid.UUID       `json:"order_id"`
	CustomerID        uuid.UUID       `json:"customer_id"`
	VendorID          uuid.UUID       `json:"vendor_id"`
	Items             []ItemResult    `json:"items"`
	TotalAmount       decimal.Decimal `json:"total_amount"`
	Status            string          `json:"status"`
	PaymentStatus     string          `json:"payment_status"`
	PaymentMethod     string          `json:"payment_method"`
	ShippingAddress   string          `json:"shipping_address"`
	TrackingNumber    string          `json:"tracking_number,omitempty"`
	EstimatedDelivery *time.Time      `json:"estimated_delivery,omitempty"`
	CreatedAt         time.Time       `json:"created_at"`
}

// OrderListResult is one page of orders
type OrderListResult struct {
	Orders     []OrderResult `json:"orders"`
	Total      int64         `json:"total"`
	Page       int           `json:"page"`
	PageSize   int           `json:"page_size"`
	TotalPages int           `json:"total_pages"`
}

func toOrderResult(o *order.Order) OrderResult {
	items := make([]ItemResult, 0, len(o.Items))
	for i := range o.Items {
		item := &o.Items[i]
		items = append(items, ItemResult{
			ID:              item.ID,
			ProductID:       item.ProductID,
			ProductName:     item.ProductName,
			VariantID:       item.VariantID,
			VariantName:     item.VariantName,
			Quantity:        item.Quantity,
			PriceAtPurchase: item.PriceAtPurchase,
			LineTotal:       item.LineTotal(),
		})
	}
	return OrderResult{
		OrderID:           o.OrderID,
		CustomerID:        o.CustomerID,
		VendorID:          o.VendorID,
		Items:             items,
		TotalAmount:       o.TotalAmount,
		Status:            o.Status.String(),
		PaymentStatus:     string(o.PaymentStatus),
		PaymentMethod:     o.PaymentMethod,
		ShippingAddress:   o.ShippingAddress,
		TrackingNumber:    o.TrackingNumber,
		EstimatedDelivery: o.EstimatedDelivery,
		CreatedAt:         o.CreatedAt,
	}
}
