package dto

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetHTTPStatus(t *testing.T) {
	tests := []struct {
		code string
		want int
	}{
		{"INVALID_CREDENTIALS", http.StatusUnauthorized},
		{"VENDOR_NOT_APPROVED", http.StatusForbidden},
		{"EMAIL_TAKEN", http.StatusConflict},
		{"ALREADY_REVIEWED", http.StatusConflict},
		{"INSUFFICIENT_STOCK", http.StatusBadRequest},
		{"EMPTY_CART", http.StatusBadRequest},
		{"NO_SHIPPING_ADDRESS", http.StatusBadRequest},
		{"INVALID_STATUS_TRANSITION", http.StatusBadRequest},
		{"PAYMENT_FAILED", http.StatusBadRequest},
		{"INTERNAL_ERROR", http.StatusInternalServerError},

		// Unlisted codes resolved by shape
		{"PRODUCT_NOT_FOUND", http.StatusNotFound},
		{"WISHLIST_NOT_FOUND", http.StatusNotFound},
		{"BUSINESS_NAME_TAKEN", http.StatusConflict},
		{"INVALID_PRICE", http.StatusBadRequest},
		{"INVALID_QUANTITY", http.StatusBadRequest},
		{"SOMETHING_ODD", http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			assert.Equal(t, tt.want, GetHTTPStatus(tt.code))
		})
	}
}

func TestNewSuccessResponseWithMeta(t *testing.T) {
	resp := NewSuccessResponseWithMeta([]string{"a", "b"}, 5, 1, 2)
	assert.True(t, resp.Success)
	assert.Equal(t, int64(5), resp.Meta.Total)
	assert.Equal(t, 3, resp.Meta.TotalPages)
}
