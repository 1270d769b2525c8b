package catalog

import (
	"strings"
	"time"

	"github.com/Viraj-016/buyhive-marketplace/internal/domain/shared"
	"github.com/google/uuid"
)

// Review is a customer review of a product, unique per (product, user)
type Review struct {
	shared.BaseAggregateRoot
	ProductID  uuid.UUID
	UserID     uuid.UUID
	Rating     int
	Comment    string
	IsApproved bool
}

// NewReview creates a new review. Reviews start approved; moderation
// can hide them afterwards.
func NewReview(productID, userID uuid.UUID, rating int, comment string) (*Review, error) {
	if productID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_PRODUCT", "Product ID cannot be empty")
	}
	if userID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_USER", "User ID cannot be empty")
	}
	if rating < 1 || rating > 5 {
		return nil, shared.NewDomainError("INVALID_RATING", "Rating must be between 1 and 5")
	}

	return &Review{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		ProductID:         productID,
		UserID:            userID,
		Rating:            rating,
		Comment:           strings.TrimSpace(comment),
		IsApproved:        true,
	}, nil
}

// UpdateContent changes the rating and comment
func (r *Review) UpdateContent(rating int, comment string) error {
	if rating < 1 || rating > 5 {
		return shared.NewDomainError("INVALID_RATING", "Rating must be between 1 and 5")
	}
	r.Rating = rating
	r.Comment = strings.TrimSpace(comment)
	r.UpdatedAt = time.Now()
	return nil
}

// Hide removes the review from public listings
func (r *Review) Hide() {
	r.IsApproved = false
	r.UpdatedAt = time.Now()
}

// Approve restores the review to public listings
func (r *Review) Approve() {
	r.IsApproved = true
	r.UpdatedAt = time.Now()
}
