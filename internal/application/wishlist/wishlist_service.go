package wishlist

import (
	"context"
	"time"

	"github.com/Viraj-016/buyhive-marketplace/internal/domain/catalog"
	"github.com/Viraj-016/buyhive-marketplace/internal/domain/shared"
	"github.com/Viraj-016/buyhive-marketplace/internal/domain/wishlist"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// ItemResult is one saved product enriched with catalog details
type ItemResult struct {
	ProductID   uuid.UUID       `json:"product_id"`
	ProductName string          `json:"product_name"`
	ProductSlug string          `json:"product_slug"`
	ImageURL    string          `json:"image_url,omitempty"`
	BasePrice   decimal.Decimal `json:"base_price"`
	IsAvailable bool            `json:"is_available"`
	SavedAt     time.Time       `json:"saved_at"`
}

// ToggleResult reports the outcome of a wishlist toggle
type ToggleResult struct {
	ProductID uuid.UUID `json:"product_id"`
	Saved     bool      `json:"saved"`
}

// Service manages the per-user wishlist
type Service struct {
	wishlistRepo wishlist.Repository
	productRepo  catalog.ProductRepository
	logger       *zap.Logger
}

// NewService creates a new wishlist service
func NewService(wishlistRepo wishlist.Repository, productRepo catalog.ProductRepository, logger *zap.Logger) *Service {
	return &Service{
		wishlistRepo: wishlistRepo,
		productRepo:  productRepo,
		logger:       logger,
	}
}

// Toggle saves the product if absent or removes it if present
func (s *Service) Toggle(ctx context.Context, userID, productID uuid.UUID) (*ToggleResult, error) {
	if _, err := s.productRepo.FindByID(ctx, productID); err != nil {
		return nil, shared.NewDomainError("PRODUCT_NOT_FOUND", "Product not found")
	}

	list, err := s.wishlistRepo.FindOrCreateByUser(ctx, userID)
	if err != nil {
		s.logger.Error("Failed to load wishlist", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to update wishlist")
	}

	saved, err := list.Toggle(productID)
	if err != nil {
		return nil, err
	}

	if err := s.wishlistRepo.Save(ctx, list); err != nil {
		s.logger.Error("Failed to save wishlist", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to update wishlist")
	}

	return &ToggleResult{ProductID: productID, Saved: saved}, nil
}

// List returns the user's saved products with catalog details. Saved
// products that were deleted from the catalog are skipped.
func (s *Service) List(ctx context.Context, userID uuid.UUID) ([]ItemResult, error) {
	list, err := s.wishlistRepo.FindOrCreateByUser(ctx, userID)
	if err != nil {
		s.logger.Error("Failed to load wishlist", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to load wishlist")
	}

	results := make([]ItemResult, 0, len(list.Items))
	for _, item := range list.Items {
		product, err := s.productRepo.FindByID(ctx, item.ProductID)
		if err != nil {
			continue
		}
		result := ItemResult{
			ProductID:   product.ID,
			ProductName: product.Name,
			ProductSlug: product.Slug,
			BasePrice:   product.BasePrice,
			IsAvailable: product.IsActive && product.Stock > 0,
			SavedAt:     item.CreatedAt,
		}
		if img := product.PrimaryImage(); img != nil {
			result.ImageURL = img.URL
		}
		results = append(results, result)
	}
	return results, nil
}

// Remove deletes a saved product from the wishlist
func (s *Service) Remove(ctx context.Context, userID, productID uuid.UUID) error {
	list, err := s.wishlistRepo.FindByUser(ctx, userID)
	if err != nil {
		return shared.NewDomainError("WISHLIST_NOT_FOUND", "Wishlist not found")
	}
	if err := list.Remove(productID); err != nil {
		if err == shared.ErrNotFound {
			return shared.NewDomainError("ITEM_NOT_FOUND", "Product is not in the wishlist")
		}
		return err
	}
	if err := s.wishlistRepo.Save(ctx, list); err != nil {
		s.logger.Error("Failed to save wishlist", zap.Error(err))
		return shared.NewDomainError("INTERNAL_ERROR", "Failed to update wishlist")
	}
	return nil
}

// Clear removes all saved products
func (s *Service) Clear(ctx context.Context, userID uuid.UUID) error {
	list, err := s.wishlistRepo.FindByUser(ctx, userID)
	if err != nil {
		// Nothing to clear
		return nil
	}
	list.Clear()
	if err := s.wishlistRepo.Save(ctx, list); err != nil {
		s.logger.Error("Failed to save wishlist", zap.Error(err))
		return shared.NewDomainError("INTERNAL_ERROR", "Failed to update wishlist")
	}
	return nil
}
