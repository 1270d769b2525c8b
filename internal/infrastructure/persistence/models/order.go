package models

import (
	"time"

	"github.com/Viraj-016/buyhive-marketplace/internal/domain/order"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderModel is the persistence model for the Order aggregate
type OrderModel struct {
	AggregateModel
	OrderID           uuid.UUID        `gorm:"type:uuid;not null;uniqueIndex"`
	CustomerID        uuid.UUID        `gorm:"type:uuid;not null;index"`
	VendorID          uuid.UUID        `gorm:"type:uuid;not null;index"`
	TotalAmount       decimal.Decimal  `gorm:"type:decimal(12,2);not null"`
	Status            string           `gorm:"type:varchar(20);not null;default:'pending';index"`
	PaymentStatus     string           `gorm:"type:varchar(20);not null;default:'pending'"`
	PaymentMethod     string           `gorm:"type:varchar(30)"`
	TransactionID     string           `gorm:"type:varchar(100)"`
	ShippingAddress   string           `gorm:"type:varchar(500);not null"`
	TrackingNumber    string           `gorm:"type:varchar(100)"`
	EstimatedDelivery *time.Time       `gorm:""`
	Items             []OrderItemModel `gorm:"foreignKey:OrderRef;references:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for GORM
func (OrderModel) TableName() string {
	return "orders"
}

// OrderItemModel is the persistence model for an order line. The price
// snapshot is immutable after checkout.
type OrderItemModel struct {
	ID              uuid.UUID       `gorm:"type:uuid;primary_key"`
	OrderRef        uuid.UUID       `gorm:"type:uuid;not null;index;column:order_id"`
	ProductID       uuid.UUID       `gorm:"type:uuid;not null;index"`
	ProductName     string          `gorm:"type:varchar(200);not null"`
	VariantID       *uuid.UUID      `gorm:"type:uuid"`
	VariantName     string          `gorm:"type:varchar(100)"`
	Quantity        int             `gorm:"not null"`
	PriceAtPurchase decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	CreatedAt       time.Time       `gorm:"not null"`
}

// TableName returns the table name for GORM
func (OrderItemModel) TableName() string {
	return "order_items"
}

// ToDomain converts the persistence model to a domain Order aggregate
func (m *OrderModel) ToDomain() *order.Order {
	items := make([]order.Item, len(m.Items))
	for i, item := range m.Items {
		items[i] = order.Item{
			ID:              item.ID,
			OrderID:         item.OrderRef,
			ProductID:       item.ProductID,
			ProductName:     item.ProductName,
			VariantID:       item.VariantID,
			VariantName:     item.VariantName,
			Quantity:        item.Quantity,
			PriceAtPurchase: item.PriceAtPurchase,
			CreatedAt:       item.CreatedAt,
		}
	}
	return &order.Order{
		BaseAggregateRoot: m.toAggregateRoot(),
		OrderID:           m.OrderID,
		CustomerID:        m.CustomerID,
		VendorID:          m.VendorID,
		Items:             items,
		TotalAmount:       m.TotalAmount,
		Status:            order.Status(m.Status),
		PaymentStatus:     order.PaymentStatus(m.PaymentStatus),
		PaymentMethod:     m.PaymentMethod,
		TransactionID:     m.TransactionID,
		ShippingAddress:   m.ShippingAddress,
		TrackingNumber:    m.TrackingNumber,
		EstimatedDelivery: m.EstimatedDelivery,
	}
}

// FromDomain populates the persistence model from a domain Order
func (m *OrderModel) FromDomain(o *order.Order) {
	m.FromDomainAggregateRoot(o.BaseAggregateRoot)
	m.OrderID = o.OrderID
	m.CustomerID = o.CustomerID
	m.VendorID = o.VendorID
	m.TotalAmount = o.TotalAmount
	m.Status = string(o.Status)
	m.PaymentStatus = string(o.PaymentStatus)
	m.PaymentMethod = o.PaymentMethod
	m.TransactionID = o.TransactionID
	m.ShippingAddress = o.ShippingAddress
	m.TrackingNumber = o.TrackingNumber
	m.EstimatedDelivery = o.EstimatedDelivery

	m.Items = make([]OrderItemModel, len(o.Items))
	for i, item := range o.Items {
		m.Items[i] = OrderItemModel{
			ID:              item.ID,
			OrderRef:        item.OrderID,
			ProductID:       item.ProductID,
			ProductName:     item.ProductName,
			VariantID:       item.VariantID,
			VariantName:     item.VariantName,
			Quantity:        item.Quantity,
			PriceAtPurchase: item.PriceAtPurchase,
			CreatedAt:       item.CreatedAt,
		}
	}
}

// OrderModelFromDomain creates a new persistence model from a domain Order
func OrderModelFromDomain(o *order.Order) *OrderModel {
	m := &OrderModel{}
	m.FromDomain(o)
	return m
}
