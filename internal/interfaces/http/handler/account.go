package handler

import (
	"github.com/Viraj-016/buyhive-marketplace/internal/application/identity"
	"github.com/gin-gonic/gin"
)

// AccountHandler handles the authenticated user's profile and addresses
type AccountHandler struct {
	BaseHandler
	userService    *identity.UserService
	addressService *identity.AddressService
}

// NewAccountHandler creates a new account handler
func NewAccountHandler(userService *identity.UserService, addressService *identity.AddressService) *AccountHandler {
	return &AccountHandler{
		userService:    userService,
		addressService: addressService,
	}
}

// GetProfile returns the calling user's account and profile details
func (h *AccountHandler) GetProfile(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	result, err := h.userService.GetProfile(c.Request.Context(), userID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, result)
}

// UpdateProfile updates the calling user's name and profile fields
func (h *AccountHandler) UpdateProfile(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var input identity.UpdateProfileInput
	if err := c.ShouldBindJSON(&input); err != nil {
		h.BadRequest(c, "Invalid request body")
		return
	}
	input.UserID = userID

	result, err := h.userService.UpdateProfile(c.Request.Context(), input)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, result)
}

// DeactivateAccount deactivates the calling user's account
func (h *AccountHandler) DeactivateAccount(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	if err := h.userService.DeactivateAccount(c.Request.Context(), userID); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}

// ListAddresses returns the calling user's addresses, defaults first
func (h *AccountHandler) ListAddresses(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	results, err := h.addressService.ListAddresses(c.Request.Context(), userID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, results)
}

// CreateAddress adds an address to the calling user's address book
func (h *AccountHandler) CreateAddress(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var input identity.CreateAddressInput
	if err := c.ShouldBindJSON(&input); err != nil {
		h.BadRequest(c, "Invalid request body")
		return
	}
	input.UserID = userID

	result, err := h.addressService.CreateAddress(c.Request.Context(), input)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, result)
}

// UpdateAddress edits one of the calling user's addresses
func (h *AccountHandler) UpdateAddress(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	addressID, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid address ID")
		return
	}

	var input identity.UpdateAddressInput
	if err := c.ShouldBindJSON(&input); err != nil {
		h.BadRequest(c, "Invalid request body")
		return
	}
	input.UserID = userID
	input.AddressID = addressID

	result, err := h.addressService.UpdateAddress(c.Request.Context(), input)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, result)
}

// SetDefaultAddress makes an address the default for its type
func (h *AccountHandler) SetDefaultAddress(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	addressID, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid address ID")
		return
	}

	if err := h.addressService.SetDefaultAddress(c.Request.Context(), userID, addressID); err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, gin.H{"message": "Default address updated"})
}

// DeleteAddress removes an address from the calling user's address book
func (h *AccountHandler) DeleteAddress(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	addressID, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid address ID")
		return
	}

	if err := h.addressService.DeleteAddress(c.Request.Context(), userID, addressID); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}
