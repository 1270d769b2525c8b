package handler

import (
	"github.com/Viraj-016/buyhive-marketplace/internal/application/vendor"
	"github.com/gin-gonic/gin"
)

// VendorHandler handles vendor applications, storefronts and the
// staff-side application review flow
type VendorHandler struct {
	BaseHandler
	vendorService    *vendor.Service
	analyticsService *vendor.AnalyticsService
}

// NewVendorHandler creates a new vendor handler
func NewVendorHandler(vendorService *vendor.Service, analyticsService *vendor.AnalyticsService) *VendorHandler {
	return &VendorHandler{
		vendorService:    vendorService,
		analyticsService: analyticsService,
	}
}

// Apply submits a vendor application for the calling user
func (h *VendorHandler) Apply(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var input vendor.ApplyInput
	if err := c.ShouldBindJSON(&input); err != nil {
		h.BadRequest(c, "Invalid request body")
		return
	}
	input.UserID = userID

	result, err := h.vendorService.Apply(c.Request.Context(), input)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, result)
}

// GetOwnProfile returns the calling user's vendor profile
func (h *VendorHandler) GetOwnProfile(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	result, err := h.vendorService.GetByUser(c.Request.Context(), userID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, result)
}

// GetByID returns a vendor's public storefront profile
func (h *VendorHandler) GetByID(c *gin.Context) {
	profileID, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid vendor ID")
		return
	}

	result, err := h.vendorService.GetByID(c.Request.Context(), profileID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, result)
}

// UpdateStorefront edits the calling vendor's storefront details
func (h *VendorHandler) UpdateStorefront(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var input vendor.UpdateStorefrontInput
	if err := c.ShouldBindJSON(&input); err != nil {
		h.BadRequest(c, "Invalid request body")
		return
	}
	input.UserID = userID

	result, err := h.vendorService.UpdateStorefront(c.Request.Context(), input)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, result)
}

// Dashboard returns the calling vendor's analytics dashboard
func (h *VendorHandler) Dashboard(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	result, err := h.analyticsService.Dashboard(c.Request.Context(), userID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, result)
}

// List returns vendor profiles filtered by status (staff only)
func (h *VendorHandler) List(c *gin.Context) {
	var input vendor.ListVendorsInput
	if err := c.ShouldBindQuery(&input); err != nil {
		h.BadRequest(c, "Invalid query parameters")
		return
	}

	results, err := h.vendorService.List(c.Request.Context(), input)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, results)
}

// ReviewApplication approves or rejects a pending application (staff only)
func (h *VendorHandler) ReviewApplication(c *gin.Context) {
	profileID, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid vendor ID")
		return
	}

	var input vendor.ReviewApplicationInput
	if err := c.ShouldBindJSON(&input); err != nil {
		h.BadRequest(c, "Invalid request body")
		return
	}
	input.ProfileID = profileID

	result, err := h.vendorService.ReviewApplication(c.Request.Context(), input)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, result)
}

// Suspend suspends an approved vendor (staff only)
func (h *VendorHandler) Suspend(c *gin.Context) {
	profileID, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid vendor ID")
		return
	}

	result, err := h.vendorService.Suspend(c.Request.Context(), profileID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, result)
}

// Reinstate restores a suspended vendor to approved (staff only)
func (h *VendorHandler) Reinstate(c *gin.Context) {
	profileID, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid vendor ID")
		return
	}

	result, err := h.vendorService.Reinstate(c.Request.Context(), profileID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, result)
}
