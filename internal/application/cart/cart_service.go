package cart

import (
	"context"
	"fmt"

	"github.com/Viraj-016/buyhive-marketplace/internal/domain/cart"
	"github.com/Viraj-016/buyhive-marketplace/internal/domain/catalog"
	"github.com/Viraj-016/buyhive-marketplace/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// Service manages the per-user cart. Adding a line checks that the
// product is active and has enough stock for the merged quantity;
// stock can still drift before checkout, which re-validates.
type Service struct {
	cartRepo    cart.Repository
	productRepo catalog.ProductRepository
	logger      *zap.Logger
}

// NewService creates a new cart service
func NewService(cartRepo cart.Repository, productRepo catalog.ProductRepository, logger *zap.Logger) *Service {
	return &Service{
		cartRepo:    cartRepo,
		productRepo: productRepo,
		logger:      logger,
	}
}

// GetCart returns the user's cart with product details, creating an
// empty cart on first access
func (s *Service) GetCart(ctx context.Context, userID uuid.UUID) (*CartResult, error) {
	userCart, err := s.cartRepo.FindOrCreateByUser(ctx, userID)
	if err != nil {
		s.logger.Error("Failed to load cart", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to load cart")
	}
	return s.toCartResult(ctx, userCart)
}

// AddItem adds a product (optionally a variant) to the user's cart
func (s *Service) AddItem(ctx context.Context, input AddItemInput) (*CartResult, error) {
	product, err := s.productRepo.FindByID(ctx, input.ProductID)
	if err != nil {
		return nil, shared.NewDomainError("PRODUCT_NOT_FOUND", "Product not found")
	}
	if !product.IsActive {
		return nil, shared.NewDomainError("PRODUCT_UNAVAILABLE", "Product is not available")
	}

	available, err := availableStock(product, input.VariantID)
	if err != nil {
		return nil, err
	}

	userCart, err := s.cartRepo.FindOrCreateByUser(ctx, input.UserID)
	if err != nil {
		s.logger.Error("Failed to load cart", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to load cart")
	}

	requested := input.Quantity
	if existing := userCart.FindItem(input.ProductID, input.VariantID); existing != nil {
		requested += existing.Quantity
	}
	if requested > available {
		return nil, insufficientStock(product.Name, available)
	}

	if _, err := userCart.AddItem(input.ProductID, input.VariantID, input.Quantity); err != nil {
		return nil, err
	}

	if err := s.cartRepo.Save(ctx, userCart); err != nil {
		s.logger.Error("Failed to save cart", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to save cart")
	}
	return s.toCartResult(ctx, userCart)
}

// UpdateItemQuantity sets the quantity of an existing cart line
func (s *Service) UpdateItemQuantity(ctx context.Context, input UpdateItemInput) (*CartResult, error) {
	userCart, err := s.cartRepo.FindByUser(ctx, input.UserID)
	if err != nil {
		return nil, shared.NewDomainError("CART_NOT_FOUND", "Cart not found")
	}

	var line *cart.Item
	for i := range userCart.Items {
		if userCart.Items[i].ID == input.ItemID {
			line = &userCart.Items[i]
			break
		}
	}
	if line == nil {
		return nil, shared.NewDomainError("ITEM_NOT_FOUND", "Cart item not found")
	}

	product, err := s.productRepo.FindByID(ctx, line.ProductID)
	if err != nil {
		return nil, shared.NewDomainError("PRODUCT_NOT_FOUND", "Product not found")
	}
	available, err := availableStock(product, line.VariantID)
	if err != nil {
		return nil, err
	}
	if input.Quantity > available {
		return nil, insufficientStock(product.Name, available)
	}

	if err := userCart.UpdateItemQuantity(input.ItemID, input.Quantity); err != nil {
		if err == shared.ErrNotFound {
			return nil, shared.NewDomainError("ITEM_NOT_FOUND", "Cart item not found")
		}
		return nil, err
	}

	if err := s.cartRepo.Save(ctx, userCart); err != nil {
		s.logger.Error("Failed to save cart", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to save cart")
	}
	return s.toCartResult(ctx, userCart)
}

// RemoveItem removes a line from the user's cart
func (s *Service) RemoveItem(ctx context.Context, userID, itemID uuid.UUID) (*CartResult, error) {
	userCart, err := s.cartRepo.FindByUser(ctx, userID)
	if err != nil {
		return nil, shared.NewDomainError("CART_NOT_FOUND", "Cart not found")
	}

	if err := userCart.RemoveItem(itemID); err != nil {
		if err == shared.ErrNotFound {
			return nil, shared.NewDomainError("ITEM_NOT_FOUND", "Cart item not found")
		}
		return nil, err
	}

	if err := s.cartRepo.Save(ctx, userCart); err != nil {
		s.logger.Error("Failed to save cart", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to save cart")
	}
	return s.toCartResult(ctx, userCart)
}

// Clear removes all lines from the user's cart
func (s *Service) Clear(ctx context.Context, userID uuid.UUID) error {
	userCart, err := s.cartRepo.FindByUser(ctx, userID)
	if err != nil {
		// Nothing to clear
		return nil
	}
	if err := s.cartRepo.DeleteItems(ctx, userCart.ID); err != nil {
		s.logger.Error("Failed to clear cart", zap.Error(err))
		return shared.NewDomainError("INTERNAL_ERROR", "Failed to clear cart")
	}
	return nil
}

// toCartResult enriches cart lines with product name, unit price and
// stock availability. Lines whose product vanished are shown without
// details rather than dropped.
func (s *Service) toCartResult(ctx context.Context, userCart *cart.Cart) (*CartResult, error) {
	items := make([]ItemResult, 0, len(userCart.Items))
	subtotal := decimal.Zero

	for _, line := range userCart.Items {
		item := ItemResult{
			ID:        line.ID,
			ProductID: line.ProductID,
			VariantID: line.VariantID,
			Quantity:  line.Quantity,
			UnitPrice: decimal.Zero,
			LineTotal: decimal.Zero,
		}

		product, err := s.productRepo.FindByID(ctx, line.ProductID)
		if err == nil {
			item.ProductName = product.Name
			item.ProductSlug = product.Slug
			unitPrice := product.BasePrice
			available := product.Stock
			if line.VariantID != nil {
				if variant := product.FindVariant(*line.VariantID); variant != nil {
					item.VariantName = variant.Name
					unitPrice = variant.VariantPrice(product.BasePrice)
					available = variant.Stock
				}
			}
			if img := product.PrimaryImage(); img != nil {
				item.ImageURL = img.URL
			}
			item.UnitPrice = unitPrice
			item.LineTotal = unitPrice.Mul(decimal.NewFromInt(int64(line.Quantity)))
			item.InStock = product.IsActive && available >= line.Quantity
			subtotal = subtotal.Add(item.LineTotal)
		}

		items = append(items, item)
	}

	return &CartResult{
		ID:            userCart.ID,
		Items:         items,
		TotalQuantity: userCart.TotalQuantity(),
		Subtotal:      subtotal,
	}, nil
}

// availableStock returns the purchasable stock for a product or one of
// its variants
func availableStock(product *catalog.Product, variantID *uuid.UUID) (int, error) {
	if variantID == nil {
		return product.Stock, nil
	}
	variant := product.FindVariant(*variantID)
	if variant == nil {
		return 0, shared.NewDomainError("VARIANT_NOT_FOUND", "Variant not found")
	}
	return variant.Stock, nil
}

func insufficientStock(productName string, available int) error {
	return shared.NewDomainError("INSUFFICIENT_STOCK",
		fmt.Sprintf("Not enough stock for %s: %d available", productName, available))
}
