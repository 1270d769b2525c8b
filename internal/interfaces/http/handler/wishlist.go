package handler

import (
	wishlistapp "github.com/Viraj-016/buyhive-marketplace/internal/application/wishlist"
	"github.com/gin-gonic/gin"
)

// WishlistHandler handles the calling user's wishlist
type WishlistHandler struct {
	BaseHandler
	wishlistService *wishlistapp.Service
}

// NewWishlistHandler creates a new wishlist handler
func NewWishlistHandler(wishlistService *wishlistapp.Service) *WishlistHandler {
	return &WishlistHandler{wishlistService: wishlistService}
}

// List returns the saved products with catalog details
func (h *WishlistHandler) List(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	results, err := h.wishlistService.List(c.Request.Context(), userID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, results)
}

// Toggle saves the product if absent or removes it if present
func (h *WishlistHandler) Toggle(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	productID, err := parseIDParam(c, "product_id")
	if err != nil {
		h.BadRequest(c, "Invalid product ID")
		return
	}

	result, err := h.wishlistService.Toggle(c.Request.Context(), userID, productID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, result)
}

// Remove deletes a product from the wishlist
func (h *WishlistHandler) Remove(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	productID, err := parseIDParam(c, "product_id")
	if err != nil {
		h.BadRequest(c, "Invalid product ID")
		return
	}

	if err := h.wishlistService.Remove(c.Request.Context(), userID, productID); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}

// Clear empties the wishlist
func (h *WishlistHandler) Clear(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	if err := h.wishlistService.Clear(c.Request.Context(), userID); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}
