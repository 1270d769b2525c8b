package handler

import (
	catalogapp "github.com/Viraj-016/buyhive-marketplace/internal/application/catalog"
	"github.com/Viraj-016/buyhive-marketplace/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
)

// ReviewHandler handles product review HTTP requests
type ReviewHandler struct {
	BaseHandler
	reviewService *catalogapp.ReviewService
}

// NewReviewHandler creates a new review handler
func NewReviewHandler(reviewService *catalogapp.ReviewService) *ReviewHandler {
	return &ReviewHandler{reviewService: reviewService}
}

// ListByProduct returns a page of approved reviews with the running
// average rating
func (h *ReviewHandler) ListByProduct(c *gin.Context) {
	productID, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid product ID")
		return
	}

	var req dto.ListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.BadRequest(c, "Invalid query parameters")
		return
	}
	req.Normalize()

	result, err := h.reviewService.ListProductReviews(c.Request.Context(), productID, req.Page, req.PageSize)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, result)
}

// Create submits a review for a product
func (h *ReviewHandler) Create(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	productID, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid product ID")
		return
	}

	var input catalogapp.CreateReviewInput
	if err := c.ShouldBindJSON(&input); err != nil {
		h.BadRequest(c, "Invalid request body")
		return
	}
	input.UserID = userID
	input.ProductID = productID

	result, err := h.reviewService.CreateReview(c.Request.Context(), input)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, result)
}

// Update edits the calling user's review
func (h *ReviewHandler) Update(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	reviewID, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid review ID")
		return
	}

	var input catalogapp.UpdateReviewInput
	if err := c.ShouldBindJSON(&input); err != nil {
		h.BadRequest(c, "Invalid request body")
		return
	}
	input.UserID = userID
	input.ReviewID = reviewID

	result, err := h.reviewService.UpdateReview(c.Request.Context(), input)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, result)
}

// Delete removes the calling user's review
func (h *ReviewHandler) Delete(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	reviewID, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid review ID")
		return
	}

	if err := h.reviewService.DeleteReview(c.Request.Context(), userID, reviewID); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}

// Hide takes a review off the public listing (staff only)
func (h *ReviewHandler) Hide(c *gin.Context) {
	reviewID, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid review ID")
		return
	}

	if err := h.reviewService.HideReview(c.Request.Context(), reviewID); err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, gin.H{"message": "Review hidden"})
}
