package persistence

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/Viraj-016/buyhive-marketplace/internal/domain/order"
	"github.com/Viraj-016/buyhive-marketplace/internal/domain/shared"
	"github.com/Viraj-016/buyhive-marketplace/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GormOrderRepository implements order.Repository and
// order.AnalyticsRepository using GORM
type GormOrderRepository struct {
	db *gorm.DB
}

// NewGormOrderRepository creates a new GormOrderRepository
func NewGormOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

// FindByID finds an order by its internal entity ID
func (r *GormOrderRepository) FindByID(ctx context.Context, id uuid.UUID) (*order.Order, error) {
	var model models.OrderModel
	if err := r.db.WithContext(ctx).
		Preload("Items").
		First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByOrderID finds an order by its public order identifier
func (r *GormOrderRepository) FindByOrderID(ctx context.Context, orderID uuid.UUID) (*order.Order, error) {
	var model models.OrderModel
	if err := r.db.WithContext(ctx).
		Preload("Items").
		Where("order_id = ?", orderID).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByCustomer finds the customer's orders, newest first
func (r *GormOrderRepository) FindByCustomer(ctx context.Context, customerID uuid.UUID, filter shared.Filter) (*shared.Paginated[*order.Order], error) {
	return r.findPaginated(ctx, r.db.WithContext(ctx).Model(&models.OrderModel{}).
		Where("customer_id = ?", customerID), filter)
}

// FindByVendor finds the vendor's orders, optionally filtered by status
func (r *GormOrderRepository) FindByVendor(ctx context.Context, vendorID uuid.UUID, status *order.Status, filter shared.Filter) (*shared.Paginated[*order.Order], error) {
	query := r.db.WithContext(ctx).Model(&models.OrderModel{}).
		Where("vendor_id = ?", vendorID)
	if status != nil {
		query = query.Where("status = ?", *status)
	}
	return r.findPaginated(ctx, query, filter)
}

// Save persists an order and its items
func (r *GormOrderRepository) Save(ctx context.Context, o *order.Order) error {
	model := models.OrderModelFromDomain(o)
	return r.db.WithContext(ctx).
		Session(&gorm.Session{FullSaveAssociations: true}).
		Save(model).Error
}

func (r *GormOrderRepository) findPaginated(ctx context.Context, query *gorm.DB, filter shared.Filter) (*shared.Paginated[*order.Order], error) {
	var total int64
	if err := query.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, err
	}

	if filter.Page <= 0 {
		filter.Page = 1
	}
	if filter.PageSize <= 0 {
		filter.PageSize = 20
	}
	offset := (filter.Page - 1) * filter.PageSize
	query = query.Offset(offset).Limit(filter.PageSize)

	if filter.OrderBy != "" {
		orderDir := "ASC"
		if strings.ToLower(filter.OrderDir) == "desc" {
			orderDir = "DESC"
		}
		query = query.Order(filter.OrderBy + " " + orderDir)
	} else {
		query = query.Order("created_at DESC")
	}

	var orderModels []models.OrderModel
	if err := query.Preload("Items").Find(&orderModels).Error; err != nil {
		return nil, err
	}

	orders := make([]*order.Order, len(orderModels))
	for i := range orderModels {
		orders[i] = orderModels[i].ToDomain()
	}
	page := shared.NewPaginated(orders, total, filter.Page, filter.PageSize)
	return &page, nil
}

// CountByVendorAndStatus returns order counts grouped by status
func (r *GormOrderRepository) CountByVendorAndStatus(ctx context.Context, vendorID uuid.UUID) (map[order.Status]int64, error) {
	var rows []struct {
		Status string
		Count  int64
	}
	if err := r.db.WithContext(ctx).
		Model(&models.OrderModel{}).
		Select("status, COUNT(*) AS count").
		Where("vendor_id = ?", vendorID).
		Group("status").
		Scan(&rows).Error; err != nil {
		return nil, err
	}

	counts := make(map[order.Status]int64, len(rows))
	for _, row := range rows {
		counts[order.Status(row.Status)] = row.Count
	}
	return counts, nil
}

// TotalRevenue returns the all-time paid revenue for a vendor
func (r *GormOrderRepository) TotalRevenue(ctx context.Context, vendorID uuid.UUID) (decimal.Decimal, error) {
	return r.sumRevenue(r.paidRevenueQuery(ctx, vendorID))
}

// RevenueSince returns paid revenue for orders placed after the cutoff
func (r *GormOrderRepository) RevenueSince(ctx context.Context, vendorID uuid.UUID, since time.Time) (decimal.Decimal, error) {
	return r.sumRevenue(r.paidRevenueQuery(ctx, vendorID).Where("created_at >= ?", since))
}

// TopProducts returns the vendor's best-selling products by units sold
// in orders placed after the cutoff
func (r *GormOrderRepository) TopProducts(ctx context.Context, vendorID uuid.UUID, since time.Time, limit int) ([]order.ProductSales, error) {
	var rows []struct {
		ProductID   uuid.UUID
		ProductName string
		UnitsSold   int
	}
	if err := r.db.WithContext(ctx).
		Table("order_items").
		Select("order_items.product_id, order_items.product_name, SUM(order_items.quantity) AS units_sold").
		Joins("JOIN orders ON orders.order_id = order_items.order_id").
		Where("orders.vendor_id = ? AND orders.payment_status = ? AND orders.status <> ? AND orders.created_at >= ?",
			vendorID, order.PaymentStatusCompleted, order.StatusCancelled, since).
		Group("order_items.product_id, order_items.product_name").
		Order("units_sold DESC").
		Limit(limit).
		Scan(&rows).Error; err != nil {
		return nil, err
	}

	sales := make([]order.ProductSales, len(rows))
	for i, row := range rows {
		sales[i] = order.ProductSales{
			ProductID:   row.ProductID,
			ProductName: row.ProductName,
			UnitsSold:   row.UnitsSold,
		}
	}
	return sales, nil
}

func (r *GormOrderRepository) paidRevenueQuery(ctx context.Context, vendorID uuid.UUID) *gorm.DB {
	return r.db.WithContext(ctx).
		Model(&models.OrderModel{}).
		Where("vendor_id = ? AND payment_status = ? AND status <> ?",
			vendorID, order.PaymentStatusCompleted, order.StatusCancelled)
}

func (r *GormOrderRepository) sumRevenue(query *gorm.DB) (decimal.Decimal, error) {
	var total decimal.NullDecimal
	if err := query.Select("SUM(total_amount)").Scan(&total).Error; err != nil {
		return decimal.Zero, err
	}
	if !total.Valid {
		return decimal.Zero, nil
	}
	return total.Decimal, nil
}

// Ensure GormOrderRepository implements the order repositories
var (
	_ order.Repository          = (*GormOrderRepository)(nil)
	_ order.AnalyticsRepository = (*GormOrderRepository)(nil)
)
