package handler

import (
	catalogapp "github.com/Viraj-016/buyhive-marketplace/internal/application/catalog"
	"github.com/Viraj-016/buyhive-marketplace/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
)

// ProductHandler handles the public catalog and the vendor-facing
// product management endpoints
type ProductHandler struct {
	BaseHandler
	productService *catalogapp.ProductService
}

// NewProductHandler creates a new product handler
func NewProductHandler(productService *catalogapp.ProductService) *ProductHandler {
	return &ProductHandler{productService: productService}
}

// List returns the public product listing with optional filters
func (h *ProductHandler) List(c *gin.Context) {
	var input catalogapp.ListProductsInput
	if err := c.ShouldBindQuery(&input); err != nil {
		h.BadRequest(c, "Invalid query parameters")
		return
	}

	results, err := h.productService.ListProducts(c.Request.Context(), input)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, results)
}

// GetBySlug returns a product by its slug
func (h *ProductHandler) GetBySlug(c *gin.Context) {
	result, err := h.productService.GetProductBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, result)
}

// GetByID returns a product by its ID
func (h *ProductHandler) GetByID(c *gin.Context) {
	productID, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid product ID")
		return
	}

	result, err := h.productService.GetProduct(c.Request.Context(), productID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, result)
}

// ListOwn returns the calling vendor's products, inactive included
func (h *ProductHandler) ListOwn(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var req dto.ListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.BadRequest(c, "Invalid query parameters")
		return
	}
	req.Normalize()

	results, err := h.productService.ListVendorProducts(c.Request.Context(), userID, req.Page, req.PageSize)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, results)
}

// Create creates a product for the calling vendor
func (h *ProductHandler) Create(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var input catalogapp.CreateProductInput
	if err := c.ShouldBindJSON(&input); err != nil {
		h.BadRequest(c, "Invalid request body")
		return
	}
	input.UserID = userID

	result, err := h.productService.CreateProduct(c.Request.Context(), input)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, result)
}

// Update edits one of the calling vendor's products
func (h *ProductHandler) Update(c *gin.Context) {
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

	var input catalogapp.UpdateProductInput
	if err := c.ShouldBindJSON(&input); err != nil {
		h.BadRequest(c, "Invalid request body")
		return
	}
	input.UserID = userID
	input.ProductID = productID

	result, err := h.productService.UpdateProduct(c.Request.Context(), input)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, result)
}

// Delete removes one of the calling vendor's products
func (h *ProductHandler) Delete(c *gin.Context) {
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

	if err := h.productService.DeleteProduct(c.Request.Context(), userID, productID); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}

// Activate puts a product back on the public listing
func (h *ProductHandler) Activate(c *gin.Context) {
	h.setActive(c, true)
}

// Deactivate hides a product from the public listing
func (h *ProductHandler) Deactivate(c *gin.Context) {
	h.setActive(c, false)
}

func (h *ProductHandler) setActive(c *gin.Context, active bool) {
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

	result, err := h.productService.SetProductActive(c.Request.Context(), userID, productID, active)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, result)
}

type setFeaturedRequest struct {
	Featured bool `json:"featured"`
}

// SetFeatured toggles the storefront featured flag (staff only)
func (h *ProductHandler) SetFeatured(c *gin.Context) {
	productID, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid product ID")
		return
	}

	var req setFeaturedRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body")
		return
	}

	result, err := h.productService.SetProductFeatured(c.Request.Context(), productID, req.Featured)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, result)
}

// AddVariant adds a variant to one of the calling vendor's products
func (h *ProductHandler) AddVariant(c *gin.Context) {
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

	var input catalogapp.AddVariantInput
	if err := c.ShouldBindJSON(&input); err != nil {
		h.BadRequest(c, "Invalid request body")
		return
	}
	input.UserID = userID
	input.ProductID = productID

	result, err := h.productService.AddVariant(c.Request.Context(), input)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, result)
}

// UpdateVariant edits a variant's price modifier and stock
func (h *ProductHandler) UpdateVariant(c *gin.Context) {
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

	variantID, err := parseIDParam(c, "variant_id")
	if err != nil {
		h.BadRequest(c, "Invalid variant ID")
		return
	}

	var input catalogapp.UpdateVariantInput
	if err := c.ShouldBindJSON(&input); err != nil {
		h.BadRequest(c, "Invalid request body")
		return
	}
	input.UserID = userID
	input.ProductID = productID
	input.VariantID = variantID

	result, err := h.productService.UpdateVariant(c.Request.Context(), input)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, result)
}

// RemoveVariant deletes a variant from a product
func (h *ProductHandler) RemoveVariant(c *gin.Context) {
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

	variantID, err := parseIDParam(c, "variant_id")
	if err != nil {
		h.BadRequest(c, "Invalid variant ID")
		return
	}

	result, err := h.productService.RemoveVariant(c.Request.Context(), userID, productID, variantID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, result)
}

// AddImage attaches an image to one of the calling vendor's products
func (h *ProductHandler) AddImage(c *gin.Context) {
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

	var input catalogapp.AddImageInput
	if err := c.ShouldBindJSON(&input); err != nil {
		h.BadRequest(c, "Invalid request body")
		return
	}
	input.UserID = userID
	input.ProductID = productID

	result, err := h.productService.AddImage(c.Request.Context(), input)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, result)
}

// SetPrimaryImage makes an image the product's primary image
func (h *ProductHandler) SetPrimaryImage(c *gin.Context) {
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

	imageID, err := parseIDParam(c, "image_id")
	if err != nil {
		h.BadRequest(c, "Invalid image ID")
		return
	}

	result, err := h.productService.SetPrimaryImage(c.Request.Context(), userID, productID, imageID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, result)
}

// RemoveImage deletes an image from a product
func (h *ProductHandler) RemoveImage(c *gin.Context) {
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

	imageID, err := parseIDParam(c, "image_id")
	if err != nil {
		h.BadRequest(c, "Invalid image ID")
		return
	}

	result, err := h.productService.RemoveImage(c.Request.Context(), userID, productID, imageID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, result)
}
