package order

import (
	"context"
	"fmt"

	"github.com/Viraj-016/buyhive-marketplace/internal/domain/cart"
	"github.com/Viraj-016/buyhive-marketplace/internal/domain/catalog"
	"github.com/Viraj-016/buyhive-marketplace/internal/domain/identity"
	"github.com/Viraj-016/buyhive-marketplace/internal/domain/order"
	"github.com/Viraj-016/buyhive-marketplace/internal/domain/shared"
	"github.com/Viraj-016/buyhive-marketplace/internal/domain/shared/valueobject"
	"github.com/Viraj-016/buyhive-marketplace/internal/infrastructure/payment"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// checkoutLine carries one cart line with its resolved product data
// through the checkout pipeline
type checkoutLine struct {
	product     *catalog.Product
	variantID   *uuid.UUID
	variantName string
	quantity    int
	unitPrice   decimal.Decimal
}

// CheckoutService converts the user's cart into orders. Stock is
// validated up front, then decremented inside the same transaction
// that creates the orders and clears the cart; a concurrent checkout
// between the two steps can still drive stock negative.
type CheckoutService struct {
	cartRepo     cart.Repository
	productRepo  catalog.ProductRepository
	addressRepo  identity.AddressRepository
	checkoutRepo order.CheckoutRepository
	gateway      payment.Gateway
	eventBus     shared.EventPublisher
	logger       *zap.Logger
}

// NewCheckoutService creates a new checkout service
func NewCheckoutService(
	cartRepo cart.Repository,
	productRepo catalog.ProductRepository,
	addressRepo identity.AddressRepository,
	checkoutRepo order.CheckoutRepository,
	gateway payment.Gateway,
	eventBus shared.EventPublisher,
	logger *zap.Logger,
) *CheckoutService {
	return &CheckoutService{
		cartRepo:     cartRepo,
		productRepo:  productRepo,
		addressRepo:  addressRepo,
		checkoutRepo: checkoutRepo,
		gateway:      gateway,
		eventBus:     eventBus,
		logger:       logger,
	}
}

// Checkout turns the cart into one paid order per vendor. The whole
// write (orders, stock decrements, cart clear) commits atomically.
func (s *CheckoutService) Checkout(ctx context.Context, input CheckoutInput) (*CheckoutResult, error) {
	userCart, err := s.cartRepo.FindByUser(ctx, input.UserID)
	if err != nil || userCart.IsEmpty() {
		return nil, shared.ErrEmptyCart
	}

	shippingAddress, err := s.resolveShippingAddress(ctx, input.UserID, input.AddressID)
	if err != nil {
		return nil, err
	}

	lines, err := s.resolveLines(ctx, userCart)
	if err != nil {
		return nil, err
	}

	orders, decrements, grandTotal, err := buildOrders(input.UserID, shippingAddress, lines)
	if err != nil {
		return nil, err
	}

	charge, err := s.gateway.Charge(ctx, payment.ChargeInput{
		CustomerID: input.UserID,
		Amount:     valueobject.NewMoneyUSD(grandTotal),
		Method:     input.PaymentMethod,
	})
	if err != nil {
		s.logger.Warn("Checkout payment declined",
			zap.String("user_id", input.UserID.String()),
			zap.Error(err))
		return nil, shared.NewDomainError("PAYMENT_FAILED", "Payment was declined")
	}

	for _, o := range orders {
		if err := o.MarkPaid(input.PaymentMethod, charge.TransactionID); err != nil {
			return nil, err
		}
	}

	if err := s.checkoutRepo.CreateOrdersAndClearCart(ctx, orders, decrements, userCart.ID); err != nil {
		s.logger.Error("Checkout transaction failed",
			zap.String("user_id", input.UserID.String()),
			zap.String("transaction_id", charge.TransactionID),
			zap.Error(err))
		if refundErr := s.gateway.Refund(ctx, charge.TransactionID, valueobject.NewMoneyUSD(grandTotal)); refundErr != nil {
			s.logger.Error("Refund after failed checkout also failed",
				zap.String("transaction_id", charge.TransactionID),
				zap.Error(refundErr))
		}
		return nil, shared.NewDomainError("CHECKOUT_FAILED", "Checkout could not be completed")
	}

	results := make([]OrderResult, 0, len(orders))
	for _, o := range orders {
		s.publishEvents(ctx, o)
		results = append(results, toOrderResult(o))
	}

	s.logger.Info("Checkout completed",
		zap.String("user_id", input.UserID.String()),
		zap.Int("order_count", len(orders)),
		zap.String("grand_total", grandTotal.String()))

	return &CheckoutResult{
		Orders:        results,
		TransactionID: charge.TransactionID,
		GrandTotal:    grandTotal,
	}, nil
}

// resolveShippingAddress requires an explicit address choice and
// verifies the caller owns it. Foreign addresses read as not found.
func (s *CheckoutService) resolveShippingAddress(ctx context.Context, userID uuid.UUID, addressID *uuid.UUID) (*identity.Address, error) {
	if addressID == nil {
		return nil, shared.NewDomainError("NO_SHIPPING_ADDRESS", "Shipping address ID is required")
	}
	address, err := s.addressRepo.FindByID(ctx, *addressID)
	if err != nil || address.UserID != userID {
		return nil, shared.NewDomainError("ADDRESS_NOT_FOUND", "Shipping address not found")
	}
	return address, nil
}

// resolveLines loads each cart line's product, verifies availability
// and freezes the unit price (base price + variant modifier)
func (s *CheckoutService) resolveLines(ctx context.Context, userCart *cart.Cart) ([]checkoutLine, error) {
	lines := make([]checkoutLine, 0, len(userCart.Items))
	for _, item := range userCart.Items {
		product, err := s.productRepo.FindByID(ctx, item.ProductID)
		if err != nil {
			return nil, shared.NewDomainError("PRODUCT_NOT_FOUND", "A product in the cart no longer exists")
		}
		if !product.IsActive {
			return nil, shared.NewDomainError("PRODUCT_UNAVAILABLE",
				fmt.Sprintf("%s is no longer available", product.Name))
		}

		line := checkoutLine{
			product:   product,
			variantID: item.VariantID,
			quantity:  item.Quantity,
			unitPrice: product.BasePrice,
		}
		available := product.Stock
		if item.VariantID != nil {
			variant := product.FindVariant(*item.VariantID)
			if variant == nil {
				return nil, shared.NewDomainError("VARIANT_NOT_FOUND",
					fmt.Sprintf("A variant of %s no longer exists", product.Name))
			}
			line.variantName = variant.Name
			line.unitPrice = variant.VariantPrice(product.BasePrice)
			available = variant.Stock
		}
		if item.Quantity > available {
			return nil, shared.NewDomainError("INSUFFICIENT_STOCK",
				fmt.Sprintf("Not enough stock for %s: %d available", product.Name, available))
		}
		lines = append(lines, line)
	}
	return lines, nil
}

// buildOrders groups the resolved lines by vendor, producing one order
// per vendor plus the stock decrements to apply at commit time
func buildOrders(customerID uuid.UUID, address *identity.Address, lines []checkoutLine) ([]*order.Order, []order.StockDecrement, decimal.Decimal, error) {
	snapshot := address.Snapshot()
	byVendor := make(map[uuid.UUID]*order.Order)
	ordered := make([]*order.Order, 0)
	decrements := make([]order.StockDecrement, 0, len(lines))
	grandTotal := decimal.Zero

	for _, line := range lines {
		vendorOrder, ok := byVendor[line.product.VendorID]
		if !ok {
			o, err := order.NewOrder(customerID, line.product.VendorID, snapshot)
			if err != nil {
				return nil, nil, decimal.Zero, err
			}
			byVendor[line.product.VendorID] = o
			ordered = append(ordered, o)
			vendorOrder = o
		}

		if _, err := vendorOrder.AddItem(
			line.product.ID,
			line.product.Name,
			line.variantID,
			line.variantName,
			line.quantity,
			valueobject.NewMoneyUSD(line.unitPrice),
		); err != nil {
			return nil, nil, decimal.Zero, err
		}

		decrements = append(decrements, order.StockDecrement{
			ProductID: line.product.ID,
			VariantID: line.variantID,
			Quantity:  line.quantity,
		})
		grandTotal = grandTotal.Add(line.unitPrice.Mul(decimal.NewFromInt(int64(line.quantity))))
	}

	return ordered, decrements, grandTotal, nil
}

func (s *CheckoutService) publishEvents(ctx context.Context, o *order.Order) {
	if err := s.eventBus.Publish(ctx, o.GetDomainEvents()...); err != nil {
		s.logger.Warn("Failed to publish order events", zap.Error(err))
	}
	o.ClearDomainEvents()
}
